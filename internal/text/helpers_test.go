package text

import "testing"

func TestPad(t *testing.T) {
	if got := Pad("abc", 5); got != "abc  " {
		t.Errorf("Expected %q, got %q", "abc  ", got)
	}
	if got := Pad("abcdef", 4); got != "abcd" {
		t.Errorf("Expected %q, got %q", "abcd", got)
	}
}

func TestLPad(t *testing.T) {
	if got := LPad("abc", 5); got != "  abc" {
		t.Errorf("Expected %q, got %q", "  abc", got)
	}
	if got := LPad("abcdef", 4); got != "abcd" {
		t.Errorf("Expected %q, got %q", "abcd", got)
	}
}

func TestCenter(t *testing.T) {
	if got := Center("ab", 6); got != "  ab  " {
		t.Errorf("Expected %q, got %q", "  ab  ", got)
	}
	if got := Center("abc", 6); got != " abc  " {
		t.Errorf("Expected %q, got %q", " abc  ", got)
	}
	if got := Center("abcdef", 4); got != "bcde" {
		t.Errorf("Expected %q, got %q", "bcde", got)
	}
}

func TestObfuscate(t *testing.T) {
	if got := Obfuscate("secret"); got != "******" {
		t.Errorf("Expected %q, got %q", "******", got)
	}
}

func TestSpoiler(t *testing.T) {
	// Word shape survives so spoilered content wraps the same as its
	// reveal.
	if got := Spoiler("big twist\nhere"); got != "--- -----\n----" {
		t.Errorf("Expected %q, got %q", "--- -----\n----", got)
	}
}

func TestStripLow(t *testing.T) {
	if got := StripLow("a\x01b\tc\nd", false); got != "abcd" {
		t.Errorf("Expected %q, got %q", "abcd", got)
	}
	if got := StripLow("a\x01b\tc\nd", true); got != "ab\tc\nd" {
		t.Errorf("Expected %q, got %q", "ab\tc\nd", got)
	}
}

func TestSanitizeRoundTrip(t *testing.T) {
	original := "a < b && c > d"
	sanitized := Sanitize(original)
	if sanitized != "a &lt; b &amp;&amp; c &gt; d" {
		t.Errorf("Expected escaped string, got %q", sanitized)
	}
	if got := Unsanitize(sanitized); got != original {
		t.Errorf("Expected %q, got %q", original, got)
	}
}
