package draw

import (
	"testing"

	"github.com/muurk/fedivt/internal/text"
)

func TestBoxBorders(t *testing.T) {
	top := BoxTop(5)
	if top.Text != "┌───┐" {
		t.Errorf("Expected %q, got %q", "┌───┐", top.Text)
	}
	if len(top.Codes) != 5 {
		t.Errorf("Expected 5 codes, got %d", len(top.Codes))
	}

	bottom := BoxBottom(5)
	if bottom.Text != "└───┘" {
		t.Errorf("Expected %q, got %q", "└───┘", bottom.Text)
	}
}

func TestBoxMiddlePads(t *testing.T) {
	line := BoxMiddle(text.HighlightLine("<b>hi</b>"), 6)
	if line.Text != "│hi  │" {
		t.Errorf("Expected %q, got %q", "│hi  │", line.Text)
	}
	if len(line.Codes) != 6 {
		t.Fatalf("Expected 6 codes, got %d", len(line.Codes))
	}
	if line.Codes[0].Bold || !line.Codes[1].Bold || !line.Codes[2].Bold || line.Codes[3].Bold {
		t.Errorf("Expected bold only on content, got %+v", line.Codes)
	}
}

func TestBoxMiddleTruncates(t *testing.T) {
	line := BoxMiddle(text.HighlightLine("abcdefgh"), 6)
	if line.Text != "│abcd│" {
		t.Errorf("Expected %q, got %q", "│abcd│", line.Text)
	}
}

func TestReplaceFromLeft(t *testing.T) {
	original := text.HighlightLine("..........")
	line := Replace(original, text.HighlightLine("<r>ab</r>"), 3)
	if line.Text != "...ab....." {
		t.Errorf("Expected %q, got %q", "...ab.....", line.Text)
	}
	if !line.Codes[3].Reverse || !line.Codes[4].Reverse || line.Codes[5].Reverse {
		t.Errorf("Expected reverse at columns 3-4, got %+v", line.Codes)
	}
}

func TestReplaceFromRight(t *testing.T) {
	original := text.HighlightLine("..........")
	line := Replace(original, text.HighlightLine("ab"), -1)
	if line.Text != ".......ab." {
		t.Errorf("Expected %q, got %q", ".......ab.", line.Text)
	}
}

func TestReplaceClampsRight(t *testing.T) {
	original := text.HighlightLine("....")
	line := Replace(original, text.HighlightLine("abcdef"), 2)
	if line.Text != "..ab" {
		t.Errorf("Expected %q, got %q", "..ab", line.Text)
	}
	if len(line.Codes) != 4 {
		t.Errorf("Expected length preserved, got %d codes", len(line.Codes))
	}
}

func TestReplaceClampsLeft(t *testing.T) {
	original := text.HighlightLine("....")

	line := Replace(original, text.HighlightLine("abcdef"), -2)
	if line.Text != "ef.." {
		t.Errorf("Expected %q, got %q", "ef..", line.Text)
	}

	// Entirely off the left edge leaves the original untouched.
	line = Replace(original, text.HighlightLine("abcdef"), -6)
	if line.Text != "...." {
		t.Errorf("Expected %q, got %q", "....", line.Text)
	}
}

func TestReplaceTextKeepsAttributes(t *testing.T) {
	original := text.HighlightLine("<u>.....</u>")
	line := ReplaceText(original, "ab", 1)
	if line.Text != ".ab.." {
		t.Errorf("Expected %q, got %q", ".ab..", line.Text)
	}
	for i, code := range line.Codes {
		if !code.Underline {
			t.Errorf("Position %d: expected original underline kept, got %+v", i, code)
		}
	}
}

func TestJoin(t *testing.T) {
	line := Join(text.HighlightLine("<b>a</b>"), text.HighlightLine("b"))
	if line.Text != "ab" {
		t.Errorf("Expected %q, got %q", "ab", line.Text)
	}
	if !line.Codes[0].Bold || line.Codes[1].Bold {
		t.Errorf("Expected bold only on first chunk, got %+v", line.Codes)
	}
}

func TestAccount(t *testing.T) {
	line := Account("Some Person", "user@example.com", 40)
	if line.Text != "Some Person @user@example.com" {
		t.Errorf("Expected %q, got %q", "Some Person @user@example.com", line.Text)
	}
	if !line.Codes[0].Bold {
		t.Errorf("Expected bold display name, got %+v", line.Codes[0])
	}
	if line.Codes[len(line.Codes)-1].Bold {
		t.Errorf("Expected unstyled username, got %+v", line.Codes)
	}
}

func TestAccountTruncates(t *testing.T) {
	line := Account("A Very Long Display Name", "user", 20)
	if line.Text != "A Very Long••• @user" {
		t.Errorf("Expected %q, got %q", "A Very Long••• @user", line.Text)
	}
	if len([]rune(line.Text)) != 20 {
		t.Errorf("Expected exactly 20 columns, got %d", len([]rune(line.Text)))
	}
}

func TestBoost(t *testing.T) {
	line := Boost("Someone", "user", 40)
	if line.Text != "Someone (@user) boosted" {
		t.Errorf("Expected %q, got %q", "Someone (@user) boosted", line.Text)
	}
	for i, code := range line.Codes {
		if code.Bold {
			t.Errorf("Position %d: expected no bold on boost line, got %+v", i, code)
		}
	}
}
