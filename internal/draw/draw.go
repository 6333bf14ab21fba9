package draw

import (
	"fmt"

	"github.com/muurk/fedivt/internal/text"
)

// BoxTop returns the top border of a width-column box.
func BoxTop(width int) text.Line {
	return text.Line{
		Text:  "┌" + repeatRune('─', width-2) + "┐",
		Codes: make([]text.ControlCodes, width),
	}
}

// BoxBottom returns the bottom border of a width-column box.
func BoxBottom(width int) text.Line {
	return text.Line{
		Text:  "└" + repeatRune('─', width-2) + "┘",
		Codes: make([]text.ControlCodes, width),
	}
}

// BoxMiddle wraps line in side borders, truncating or space-padding the
// content so the result is exactly width columns.
func BoxMiddle(line text.Line, width int) text.Line {
	runes := []rune(line.Text)
	codes := line.Codes
	if len(runes) > width-2 {
		runes = runes[:width-2]
		codes = codes[:width-2]
	}

	out := make([]rune, 0, width)
	outCodes := make([]text.ControlCodes, 0, width)

	out = append(out, '│')
	outCodes = append(outCodes, text.ControlCodes{})
	out = append(out, runes...)
	outCodes = append(outCodes, codes...)
	for i := len(runes); i < width-2; i++ {
		out = append(out, ' ')
		outCodes = append(outCodes, text.ControlCodes{})
	}
	out = append(out, '│')
	outCodes = append(outCodes, text.ControlCodes{})

	return text.Line{Text: string(out), Codes: outCodes}
}

// Replace overlays replacement onto original at offset, both text and
// attributes. A negative offset positions from the right edge: -1 leaves
// the replacement flush with the end of the line. The overlay is trimmed
// where it would run past either edge; original's length never changes.
func Replace(original text.Line, replacement text.Line, offset int) text.Line {
	origRunes := []rune(original.Text)
	replRunes := []rune(replacement.Text)
	replCodes := replacement.Codes

	if offset >= 0 {
		if offset+len(replRunes) > len(origRunes) {
			amount := len(origRunes) - offset
			replRunes = replRunes[:amount]
			replCodes = replCodes[:amount]
		}
	} else {
		offset = (len(origRunes) - len(replRunes)) + offset
		if offset < 0 {
			cut := -offset
			if cut > len(replRunes) {
				cut = len(replRunes)
			}
			replRunes = replRunes[cut:]
			replCodes = replCodes[cut:]
			offset = 0
		}
	}

	outRunes := make([]rune, 0, len(origRunes))
	outRunes = append(outRunes, origRunes[:offset]...)
	outRunes = append(outRunes, replRunes...)
	outRunes = append(outRunes, origRunes[offset+len(replRunes):]...)

	outCodes := make([]text.ControlCodes, 0, len(original.Codes))
	outCodes = append(outCodes, original.Codes[:offset]...)
	outCodes = append(outCodes, replCodes...)
	outCodes = append(outCodes, original.Codes[offset+len(replCodes):]...)

	return text.Line{Text: string(outRunes), Codes: outCodes}
}

// ReplaceText overlays plain text onto original at offset, keeping the
// original's attributes in place.
func ReplaceText(original text.Line, replacement string, offset int) text.Line {
	origRunes := []rune(original.Text)
	replRunes := []rune(replacement)

	if offset >= 0 {
		if offset+len(replRunes) > len(origRunes) {
			replRunes = replRunes[:len(origRunes)-offset]
		}
	} else {
		offset = (len(origRunes) - len(replRunes)) + offset
		if offset < 0 {
			cut := -offset
			if cut > len(replRunes) {
				cut = len(replRunes)
			}
			replRunes = replRunes[cut:]
			offset = 0
		}
	}

	outRunes := make([]rune, 0, len(origRunes))
	outRunes = append(outRunes, origRunes[:offset]...)
	outRunes = append(outRunes, replRunes...)
	outRunes = append(outRunes, origRunes[offset+len(replRunes):]...)

	codes := make([]text.ControlCodes, len(original.Codes))
	copy(codes, original.Codes)

	return text.Line{Text: string(outRunes), Codes: codes}
}

// Join concatenates styled chunks into one line.
func Join(chunks ...text.Line) text.Line {
	var outText string
	var outCodes []text.ControlCodes
	for _, chunk := range chunks {
		outText += chunk.Text
		outCodes = append(outCodes, chunk.Codes...)
	}
	return text.Line{Text: outText, Codes: outCodes}
}

// ellipsis marks a truncated display name.
const ellipsis = "•••"

// Account renders a display name in bold followed by the @username,
// truncating the name with a bullet ellipsis when both won't fit in width.
func Account(name, username string, width int) text.Line {
	name = text.Sanitize(name)
	rest := fmt.Sprintf(" @%s", text.Sanitize(username))

	leftover := width - len([]rune(rest))
	nameRunes := []rune(name)
	if len(nameRunes) > leftover {
		name = string(nameRunes[:leftover-3]) + ellipsis
	}

	return text.HighlightLine(fmt.Sprintf("<b>%s</b>%s", name, rest))
}

// Boost renders the attribution line for a boosted status.
func Boost(name, username string, width int) text.Line {
	name = text.Sanitize(name)
	rest := fmt.Sprintf(" (@%s) boosted", text.Sanitize(username))

	leftover := width - len([]rune(rest))
	nameRunes := []rune(name)
	if len(nameRunes) > leftover {
		name = string(nameRunes[:leftover-3]) + ellipsis
	}

	return text.HighlightLine(fmt.Sprintf("%s%s", name, rest))
}

func repeatRune(ch rune, count int) string {
	if count < 0 {
		count = 0
	}
	out := make([]rune, count)
	for i := range out {
		out[i] = ch
	}
	return string(out)
}
