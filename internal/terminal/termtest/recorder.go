// Package termtest provides an in-memory Terminal implementation for
// tests. It mirrors the shadow-state behavior of the real device driver
// and records every emitted operation so tests can assert on exactly what
// would have gone over the link.
package termtest

import (
	"fmt"
	"io"

	"github.com/muurk/fedivt/internal/terminal"
)

// Recorder is a fake terminal. Operations are appended to Ops in emission
// order; shadow state tracks them the same way the VT-100 driver does.
type Recorder struct {
	RowCount int
	ColCount int

	// Ops is the ordered operation log, one human-readable entry per
	// primitive emission.
	Ops []string

	// Queued inputs returned by RecvInput in order.
	Inputs []terminal.Input

	row        int
	col        int
	bolded     bool
	underlined bool
	reversed   bool

	savedRow        int
	savedCol        int
	savedBolded     bool
	savedUnderlined bool
	savedReversed   bool

	err error
}

// New returns a Recorder with the given extents and the cursor at (1, 1).
func New(rows, cols int) *Recorder {
	return &Recorder{RowCount: rows, ColCount: cols, row: 1, col: 1}
}

func (r *Recorder) Rows() int    { return r.RowCount }
func (r *Recorder) Columns() int { return r.ColCount }

func (r *Recorder) MoveCursor(row, col int) {
	r.Ops = append(r.Ops, fmt.Sprintf("move(%d,%d)", row, col))
	r.row, r.col = row, col
}

func (r *Recorder) SendCommand(cmd terminal.Command) {
	r.Ops = append(r.Ops, fmt.Sprintf("cmd(%s)", commandName(cmd)))
	switch cmd {
	case terminal.SetNormal:
		r.bolded, r.underlined, r.reversed = false, false, false
	case terminal.SetBold:
		r.bolded = true
	case terminal.SetUnderline:
		r.underlined = true
	case terminal.SetReverse:
		r.reversed = true
	case terminal.SaveCursor:
		r.savedRow, r.savedCol = r.row, r.col
		r.savedBolded, r.savedUnderlined, r.savedReversed = r.bolded, r.underlined, r.reversed
	case terminal.RestoreCursor:
		r.row, r.col = r.savedRow, r.savedCol
		r.bolded, r.underlined, r.reversed = r.savedBolded, r.savedUnderlined, r.savedReversed
	case terminal.MoveCursorUp:
		if r.row > 1 {
			r.row--
		}
	case terminal.MoveCursorDown:
		if r.row < r.RowCount {
			r.row++
		}
	}
}

func (r *Recorder) SendText(text string) {
	r.Ops = append(r.Ops, fmt.Sprintf("text(%s)", text))
	for _, ch := range text {
		if ch == '\n' {
			if r.row < r.RowCount {
				r.row++
			}
			r.col = 1
		} else {
			r.col++
		}
	}
}

func (r *Recorder) SetScrollRegion(top, bottom int) {
	r.Ops = append(r.Ops, fmt.Sprintf("region(%d,%d)", top, bottom))
	r.row, r.col = 1, 1
}

func (r *Recorder) ClearScrollRegion() {
	r.Ops = append(r.Ops, "region(clear)")
	r.row, r.col = 1, 1
}

func (r *Recorder) FetchCursor() (int, int) { return r.row, r.col }

func (r *Recorder) Bolded() bool     { return r.bolded }
func (r *Recorder) Underlined() bool { return r.underlined }
func (r *Recorder) Reversed() bool   { return r.reversed }

func (r *Recorder) RecvInput() (terminal.Input, error) {
	if len(r.Inputs) == 0 {
		return "", io.EOF
	}
	in := r.Inputs[0]
	r.Inputs = r.Inputs[1:]
	return in, nil
}

func (r *Recorder) PeekInput() (terminal.Input, error) {
	if len(r.Inputs) == 0 {
		return "", nil
	}
	return r.Inputs[0], nil
}

func (r *Recorder) Reset() {
	r.Ops = append(r.Ops, "reset")
	r.row, r.col = 1, 1
	r.bolded, r.underlined, r.reversed = false, false, false
}

func (r *Recorder) Err() error   { return r.err }
func (r *Recorder) Close() error { return nil }

// SetCursor positions the shadow cursor without recording an operation,
// for arranging test preconditions.
func (r *Recorder) SetCursor(row, col int) {
	r.row, r.col = row, col
}

// ClearOps discards the recorded log, keeping all state.
func (r *Recorder) ClearOps() {
	r.Ops = nil
}

// TextPayload concatenates the payloads of every text op in the log.
func (r *Recorder) TextPayload() string {
	var out string
	for _, op := range r.Ops {
		if len(op) > 6 && op[:5] == "text(" {
			out += op[5 : len(op)-1]
		}
	}
	return out
}

func commandName(cmd terminal.Command) string {
	switch cmd {
	case terminal.SetNormal:
		return "SetNormal"
	case terminal.SetBold:
		return "SetBold"
	case terminal.SetUnderline:
		return "SetUnderline"
	case terminal.SetReverse:
		return "SetReverse"
	case terminal.ClearScreen:
		return "ClearScreen"
	case terminal.ClearLine:
		return "ClearLine"
	case terminal.ClearToEndOfLine:
		return "ClearToEndOfLine"
	case terminal.SaveCursor:
		return "SaveCursor"
	case terminal.RestoreCursor:
		return "RestoreCursor"
	case terminal.MoveCursorUp:
		return "MoveCursorUp"
	case terminal.MoveCursorDown:
		return "MoveCursorDown"
	case terminal.DoubleHeightTop:
		return "DoubleHeightTop"
	case terminal.DoubleHeightBottom:
		return "DoubleHeightBottom"
	case terminal.NormalSize:
		return "NormalSize"
	}
	return fmt.Sprintf("Command(%d)", cmd)
}
