package text

import (
	"github.com/muurk/fedivt/internal/clip"
	"github.com/muurk/fedivt/internal/logging"
	"github.com/muurk/fedivt/internal/terminal"
)

// Display paints styled lines into a device region, emitting as few bytes
// as it can get away with. The bounds may extend past the device in any
// direction; content is trimmed, never wrapped. Cursor position and
// attribute state come from the terminal's shadow, so no slow cursor-report
// round trips happen here.
func Display(t terminal.Terminal, lines []Line, bounds clip.BoundingRectangle) {
	// Skip everything that cannot intersect the device. Coordinates are
	// 1-based, (1, 1) being the top left per the VT-100 manual.
	if bounds.Bottom <= 1 {
		return
	}
	if bounds.Top > t.Rows() {
		return
	}
	if bounds.Right <= 1 {
		return
	}
	if bounds.Left > t.Columns() {
		return
	}

	// Off the top or the left: drop leading rows/columns from the content
	// itself so the remainder lines up with the first visible cell.
	if bounds.Top < 1 {
		amount := -(bounds.Top - 1)
		if amount >= len(lines) {
			lines = nil
		} else {
			lines = lines[amount:]
		}
	}
	if bounds.Left < 1 {
		amount := -(bounds.Left - 1)
		trimmed := make([]Line, len(lines))
		for i, line := range lines {
			runes := []rune(line.Text)
			if amount >= len(runes) {
				trimmed[i] = Line{Text: "", Codes: line.Codes[:0]}
			} else {
				trimmed[i] = Line{Text: string(runes[amount:]), Codes: line.Codes[amount:]}
			}
		}
		lines = trimmed
	}

	bounds = bounds.Clip(clip.BoundingRectangle{
		Top:    1,
		Bottom: t.Rows() + 1,
		Left:   1,
		Right:  t.Columns() + 1,
	})
	if bounds.Width() == 0 || bounds.Height() == 0 {
		return
	}

	// Anything past the bottom of the region never gets painted.
	if len(lines) > bounds.Height() {
		lines = lines[:bounds.Height()]
	}

	// Pick up the attribute state where the last paint left off.
	last := ControlCodes{
		Bold:      t.Bolded(),
		Underline: t.Underlined(),
		Reverse:   t.Reversed(),
	}

	// Move to where we're drawing, preferring the one-byte newline advance
	// over a full cursor-addressing sequence when it works out.
	row, col := t.FetchCursor()
	if row != bounds.Top || col != bounds.Left {
		if row == bounds.Top-1 && bounds.Left == 1 {
			t.SendText("\n")
		} else {
			t.MoveCursor(bounds.Top, bounds.Left)
		}
		row, col = bounds.Top, bounds.Left
	}

	for i, line := range lines {
		if i != 0 {
			row++
			col = bounds.Left
			if col == 1 {
				t.SendText("\n")
			} else {
				t.MoveCursor(row, col)
			}
		}

		runes := []rune(line.Text)
		codes := line.Codes
		if len(runes) > bounds.Width() {
			runes = runes[:bounds.Width()]
			codes = codes[:bounds.Width()]
		}

		for pos := range runes {
			for _, cmd := range codes[pos].CodesFrom(last) {
				t.SendCommand(cmd)
			}
			last = codes[pos]
			t.SendText(string(runes[pos]))

			// If we supported wide glyphs, this is where the column would
			// advance by two.
			col++
			if col >= bounds.Right {
				break
			}
		}
	}

	logging.LogPaint("display", len(lines))
}
