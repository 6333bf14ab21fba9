package text

import "testing"

func TestHighlightPlain(t *testing.T) {
	text, codes := Highlight("hello world")
	if text != "hello world" {
		t.Errorf("Expected %q, got %q", "hello world", text)
	}
	for i, code := range codes {
		if code != (ControlCodes{}) {
			t.Errorf("Position %d: expected no attributes, got %+v", i, code)
		}
	}
}

func TestHighlightBold(t *testing.T) {
	text, codes := Highlight("ab <b>cd</b> ef")
	if text != "ab cd ef" {
		t.Errorf("Expected %q, got %q", "ab cd ef", text)
	}
	for i, code := range codes {
		wantBold := i == 3 || i == 4
		if code.Bold != wantBold {
			t.Errorf("Position %d: expected bold=%v, got %+v", i, wantBold, code)
		}
	}
}

func TestHighlightLongForms(t *testing.T) {
	text, codes := Highlight("<bold>a</bold><underline>b</underline><reverse>c</reverse>")
	if text != "abc" {
		t.Fatalf("Expected %q, got %q", "abc", text)
	}
	if !codes[0].Bold || !codes[1].Underline || !codes[2].Reverse {
		t.Errorf("Expected bold/underline/reverse per character, got %+v", codes)
	}
}

func TestHighlightNesting(t *testing.T) {
	// Nested tags of the same kind only close at the outermost level.
	text, codes := Highlight("<b>a<b>b</b>c</b>d")
	if text != "abcd" {
		t.Fatalf("Expected %q, got %q", "abcd", text)
	}
	for i := 0; i < 3; i++ {
		if !codes[i].Bold {
			t.Errorf("Position %d: expected bold, got %+v", i, codes[i])
		}
	}
	if codes[3].Bold {
		t.Errorf("Expected bold off after outer close, got %+v", codes[3])
	}
}

func TestHighlightUnknownTagLiteral(t *testing.T) {
	text, codes := Highlight("a <blink>b</blink> c")
	if text != "a <blink>b</blink> c" {
		t.Errorf("Expected unknown tags rendered literally, got %q", text)
	}
	if len(codes) != len([]rune(text)) {
		t.Errorf("Expected %d codes, got %d", len([]rune(text)), len(codes))
	}
}

func TestHighlightSanitizedContent(t *testing.T) {
	text, _ := Highlight("x &lt;= <b>y</b> &amp; z")
	if text != "x <= y & z" {
		t.Errorf("Expected %q, got %q", "x <= y & z", text)
	}
}

func TestHighlightLinePairing(t *testing.T) {
	line := HighlightLine("<u>linked</u> text")
	if len([]rune(line.Text)) != len(line.Codes) {
		t.Errorf("Expected text length %d to match codes length %d", len([]rune(line.Text)), len(line.Codes))
	}
}
