package text

import "strings"

// Pad right-pads line with spaces to exactly length characters, truncating
// if it is already longer.
func Pad(line string, length int) string {
	runes := []rune(line)
	if len(runes) >= length {
		return string(runes[:length])
	}
	return line + strings.Repeat(" ", length-len(runes))
}

// LPad left-pads line with spaces to exactly length characters, truncating
// if it is already longer.
func LPad(line string, length int) string {
	runes := []rune(line)
	if len(runes) >= length {
		return string(runes[:length])
	}
	return strings.Repeat(" ", length-len(runes)) + line
}

// Center centers line within length characters, cutting evenly from the
// left when it is too long.
func Center(line string, length int) string {
	runes := []rune(line)
	switch {
	case len(runes) == length:
		return line
	case len(runes) > length:
		leftCut := (len(runes) - length) / 2
		runes = runes[leftCut:]
		return string(runes[:length])
	default:
		leftAdd := (length - len(runes)) / 2
		return Pad(strings.Repeat(" ", leftAdd)+line, length)
	}
}

// Obfuscate replaces every character with an asterisk, for password entry.
func Obfuscate(line string) string {
	return strings.Repeat("*", len([]rune(line)))
}

// Spoiler replaces every non-whitespace character with a dash, preserving
// word shape and line structure so spoilered content wraps identically to
// its reveal.
func Spoiler(line string) string {
	var b strings.Builder
	for _, ch := range line {
		switch ch {
		case ' ', '\t', '\n':
			b.WriteRune(ch)
		default:
			b.WriteRune('-')
		}
	}
	return b.String()
}

// StripLow removes control characters below 0x20. With allowSafe, newlines
// and tabs are kept.
func StripLow(text string, allowSafe bool) string {
	var b strings.Builder
	for _, ch := range text {
		if ch < 0x20 {
			if allowSafe && (ch == '\t' || ch == '\n') {
				b.WriteRune(ch)
			}
			continue
		}
		b.WriteRune(ch)
	}
	return b.String()
}

// Sanitize escapes markup-significant characters so arbitrary content can
// be embedded in a Highlight format string.
func Sanitize(text string) string {
	text = strings.ReplaceAll(text, "&", "&amp;")
	text = strings.ReplaceAll(text, "<", "&lt;")
	text = strings.ReplaceAll(text, ">", "&gt;")
	return text
}

// Unsanitize reverses Sanitize.
func Unsanitize(text string) string {
	text = strings.ReplaceAll(text, "&lt;", "<")
	text = strings.ReplaceAll(text, "&gt;", ">")
	text = strings.ReplaceAll(text, "&amp;", "&")
	return text
}
