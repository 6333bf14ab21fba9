package text

import (
	"fmt"
	"unicode"
)

// Span is one wrapped line of text plus the metadata that traveled with
// each of its characters. The pairing is positional: Meta[i] belongs to the
// i-th character of Text.
type Span[T any] struct {
	Text string
	Meta []T
}

// WrapOptions control the whitespace post-processing of WordWrapOpt.
type WrapOptions struct {
	// StripTrailingSpaces drops whitespace runs at break points and trims
	// trailing spaces from every output line.
	StripTrailingSpaces bool
	// StripTrailingNewlines drops wholly empty lines from the end of the
	// output.
	StripTrailingNewlines bool
}

// trailingSentinel is a private non-printable stand-in for a trailing
// explicit newline, so the final empty line it implies survives wrapping
// and can be emitted when newline stripping is off. It is removed from all
// output.
const trailingSentinel = '\x08'

// WordWrap wraps text to width with both whitespace strip options enabled,
// which is what almost every caller wants.
func WordWrap[T any](text string, meta []T, width int) []Span[T] {
	return WordWrapOpt(text, meta, width, WrapOptions{
		StripTrailingSpaces:   true,
		StripTrailingNewlines: true,
	})
}

// WordWrapOpt word-wraps text, returning lines no longer than width along
// with each line's repositioned metadata. Break preference order: an
// embedded newline, then the rightmost whitespace at or before width, then
// the first alphanumeric after a punctuation run, and finally mid-word at
// exactly width if there is no better choice. Whitespace is treated the way
// a browser treats it, as word separation rather than positional
// formatting.
//
// The metadata slice must be exactly one entry per character of text;
// anything else is a defect in the caller and panics.
func WordWrapOpt[T any](text string, meta []T, width int, opts WrapOptions) []Span[T] {
	if text == "" {
		return []Span[T]{{Text: "", Meta: meta[:0]}}
	}

	runes := []rune(text)
	if len(runes) != len(meta) {
		panic(fmt.Sprintf("text: metadata length %d must match text length %d", len(meta), len(runes)))
	}

	// Only unix line endings are handled past this point; normalize the
	// rest, keeping the metadata paired.
	normRunes := make([]rune, 0, len(runes))
	normMeta := make([]T, 0, len(meta))
	for i := 0; i < len(runes); i++ {
		if runes[i] == '\r' {
			if i+1 < len(runes) && runes[i+1] == '\n' {
				continue
			}
			normRunes = append(normRunes, '\n')
			normMeta = append(normMeta, meta[i])
			continue
		}
		normRunes = append(normRunes, runes[i])
		normMeta = append(normMeta, meta[i])
	}
	runes, meta = normRunes, normMeta

	if len(runes) > 0 && runes[len(runes)-1] == '\n' {
		var zero T
		runes = append(runes, trailingSentinel)
		meta = append(meta, zero)
	}

	// One pass to find every potential wrap point.
	var wrapPoints []int
	lastPunctuation := false
	for i, ch := range runes {
		switch {
		case ch == ' ' || ch == '\t' || ch == '\n':
			lastPunctuation = false
			wrapPoints = append(wrapPoints, i)
		case isBreakPunctuation(ch):
			lastPunctuation = true
		case unicode.IsLetter(ch) || unicode.IsDigit(ch):
			if lastPunctuation {
				wrapPoints = append(wrapPoints, i)
			}
			lastPunctuation = false
		}
	}

	type runeSpan struct {
		text []rune
		meta []T
	}
	var outLines []runeSpan

	// Repeatedly separate out lines using the wrap points, and possibly in
	// the middle of a word if there is no choice.
	for len(runes) > 0 {
		var relevantPoints []int
		for _, x := range wrapPoints {
			if x <= width {
				relevantPoints = append(relevantPoints, x)
			}
		}

		// An embedded newline wins over everything else.
		newLine := false
		for _, pos := range relevantPoints {
			if runes[pos] == '\n' {
				outLines = append(outLines, runeSpan{runes[:pos], meta[:pos]})
				runes = runes[pos+1:]
				meta = meta[pos+1:]
				// Zero-location wrap points are kept because the text can
				// contain consecutive newlines.
				wrapPoints = shiftWrapPoints(wrapPoints, pos+1)
				newLine = true
				break
			}
		}
		if newLine {
			continue
		}

		if len(runes) > width && len(relevantPoints) > 0 {
			pos := relevantPoints[len(relevantPoints)-1]

			if runes[pos] == ' ' || runes[pos] == '\t' {
				if opts.StripTrailingSpaces {
					// The space doesn't appear at the end of this line or
					// the start of the next, so drop the whole run.
					outLines = append(outLines, runeSpan{runes[:pos], meta[:pos]})

					spot := -1
					for i := pos + 1; i < len(runes); i++ {
						if runes[i] != ' ' && runes[i] != '\t' {
							spot = i
							break
						}
					}

					if spot >= 0 {
						runes = runes[spot:]
						meta = meta[spot:]
						wrapPoints = shiftWrapPoints(wrapPoints, spot)
					} else {
						runes = nil
						meta = nil
						wrapPoints = nil
					}
				} else if pos == width && !isSpaceOrTab(runes[pos-1]) {
					// The one case where a space is still elided: it is
					// being replaced by the inserted line break itself.
					outLines = append(outLines, runeSpan{runes[:pos], meta[:pos]})

					spot := pos + 1
					runes = runes[spot:]
					meta = meta[spot:]

					if len(runes) == 0 {
						// The replacement newline implies a final empty
						// line; newline stripping removes it if unwanted.
						outLines = append(outLines, runeSpan{nil, meta[:0]})
					}

					wrapPoints = shiftWrapPoints(wrapPoints, spot)
				} else {
					spot := len(runes)
					for i := pos + 1; i < len(runes); i++ {
						if !isSpaceOrTab(runes[i]) {
							spot = i
							break
						}
					}

					// If the whitespace run carries past the width, break
					// arbitrarily at the width instead.
					if spot > width {
						spot = width
					}

					outLines = append(outLines, runeSpan{runes[:spot], meta[:spot]})
					runes = runes[spot:]
					meta = meta[spot:]
					wrapPoints = shiftWrapPoints(wrapPoints, spot)
				}
			} else {
				// Wrapping mid-word at a punctuation point; both sides keep
				// their content.
				outLines = append(outLines, runeSpan{runes[:pos], meta[:pos]})
				runes = runes[pos:]
				meta = meta[pos:]
				wrapPoints = shiftWrapPoints(wrapPoints, pos)
			}
		} else {
			// No choice but to break mid-word at exactly the width.
			cut := width
			if cut > len(runes) {
				cut = len(runes)
			}
			outLines = append(outLines, runeSpan{runes[:cut], meta[:cut]})
			runes = runes[cut:]
			meta = meta[cut:]
			wrapPoints = shiftWrapPoints(wrapPoints, cut)
		}
	}

	// Post-process: remove the sentinel, optionally trim trailing spaces,
	// optionally drop empty trailing lines.
	result := make([]Span[T], 0, len(outLines))
	for _, line := range outLines {
		lr, lm := line.text, line.meta

		if len(lr) == 1 && lr[0] == trailingSentinel {
			lr, lm = nil, lm[:0]
		}

		if opts.StripTrailingSpaces {
			for len(lr) > 0 && lr[len(lr)-1] == ' ' {
				lr = lr[:len(lr)-1]
				lm = lm[:len(lm)-1]
			}
		}

		result = append(result, Span[T]{Text: string(lr), Meta: lm})
	}

	if opts.StripTrailingNewlines {
		for len(result) > 0 && result[len(result)-1].Text == "" {
			result = result[:len(result)-1]
		}
	}

	return result
}

// WrapLine is WordWrap specialized to styled lines, which is the shape
// every rendering caller works with.
func WrapLine(text string, codes []ControlCodes, width int) []Line {
	return wrapToLines(WordWrap(text, codes, width))
}

// WrapLineOpt is WordWrapOpt specialized to styled lines.
func WrapLineOpt(text string, codes []ControlCodes, width int, opts WrapOptions) []Line {
	return wrapToLines(WordWrapOpt(text, codes, width, opts))
}

func wrapToLines(spans []Span[ControlCodes]) []Line {
	lines := make([]Line, len(spans))
	for i, s := range spans {
		lines[i] = Line{Text: s.Text, Codes: s.Meta}
	}
	return lines
}

func isBreakPunctuation(ch rune) bool {
	switch ch {
	case '-', '+', ';', '~', '(', ')', '[', ']', '{', '}', '<', '>':
		return true
	}
	return false
}

func isSpaceOrTab(ch rune) bool {
	return ch == ' ' || ch == '\t'
}

// shiftWrapPoints rebases every wrap point after the front of the text was
// consumed by delta characters, discarding points that fell off.
func shiftWrapPoints(points []int, delta int) []int {
	kept := points[:0]
	for _, x := range points {
		if x-delta >= 0 {
			kept = append(kept, x-delta)
		}
	}
	return kept
}
