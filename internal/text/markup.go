package text

import "strings"

// splitFormatted splits a format string into literal chunks and <...> tag
// chunks, leaving malformed tags attached to the surrounding text.
func splitFormatted(s string) []string {
	var accumulator []rune
	var parts []string

	for _, ch := range s {
		switch ch {
		case '<':
			if len(accumulator) > 0 {
				parts = append(parts, string(accumulator))
				accumulator = nil
			}
			accumulator = append(accumulator, ch)
		case '>':
			accumulator = append(accumulator, ch)
			if len(accumulator) > 0 && accumulator[0] == '<' {
				parts = append(parts, string(accumulator))
				accumulator = nil
			}
		default:
			accumulator = append(accumulator, ch)
		}
	}

	if len(accumulator) > 0 {
		parts = append(parts, string(accumulator))
	}
	return parts
}

// Highlight converts a restricted markup subset (<b>, <u>, <r> and their
// long forms, nestable) into text plus a parallel attribute array. Unknown
// constructs render as plain text; this is the graceful-degradation path
// for anything the markup collaborator doesn't understand.
func Highlight(s string) (string, []ControlCodes) {
	parts := splitFormatted(s)
	cur := ControlCodes{}

	bdepth := 0
	udepth := 0
	rdepth := 0

	var texts strings.Builder
	var codes []ControlCodes

	for _, part := range parts {
		if strings.HasPrefix(part, "<") && strings.HasSuffix(part, ">") {
			switch part {
			case "<b>", "<bold>":
				bdepth++
				if bdepth == 1 {
					cur.Bold = true
				}
			case "</b>", "</bold>":
				if bdepth == 1 {
					cur.Bold = false
				}
				bdepth--
				if bdepth < 0 {
					bdepth = 0
				}
			case "<u>", "<underline>":
				udepth++
				if udepth == 1 {
					cur.Underline = true
				}
			case "</u>", "</underline>":
				if udepth == 1 {
					cur.Underline = false
				}
				udepth--
				if udepth < 0 {
					udepth = 0
				}
			case "<r>", "<reverse>":
				rdepth++
				if rdepth == 1 {
					cur.Reverse = true
				}
			case "</r>", "</reverse>":
				if rdepth == 1 {
					cur.Reverse = false
				}
				rdepth--
				if rdepth < 0 {
					rdepth = 0
				}
			default:
				// Unknown tag: render it literally.
				literal := Unsanitize(part)
				texts.WriteString(literal)
				for range []rune(literal) {
					codes = append(codes, cur)
				}
			}
		} else {
			literal := Unsanitize(part)
			texts.WriteString(literal)
			for range []rune(literal) {
				codes = append(codes, cur)
			}
		}
	}

	return texts.String(), codes
}

// HighlightLine is Highlight packaged as a single styled line.
func HighlightLine(s string) Line {
	t, c := Highlight(s)
	return Line{Text: t, Codes: c}
}
