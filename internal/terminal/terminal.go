package terminal

import (
	"errors"
)

// Command identifies one of the terminal's primitive operations. Each
// transport maps commands to the corresponding VT-100 escape sequence.
type Command int

const (
	SetNormal Command = iota
	SetBold
	SetUnderline
	SetReverse
	ClearScreen
	ClearLine
	ClearToEndOfLine
	SaveCursor
	RestoreCursor
	// MoveCursorUp is a reverse index: at the top of the scroll region it
	// scrolls the region contents down one row.
	MoveCursorUp
	// MoveCursorDown is an index: at the bottom of the scroll region it
	// scrolls the region contents up one row.
	MoveCursorDown
	DoubleHeightTop
	DoubleHeightBottom
	NormalSize
)

// Input is a decoded unit of terminal input: either a printable byte
// sequence or one of the Key constants below.
type Input string

const (
	KeyUp        Input = "\x1b[A"
	KeyDown      Input = "\x1b[B"
	KeyRight     Input = "\x1b[C"
	KeyLeft      Input = "\x1b[D"
	KeyEnter     Input = "\r"
	KeyTab       Input = "\t"
	KeyBackspace Input = "\x08"
	KeyDelete    Input = "\x7f"
	KeyCtrlC     Input = "\x03"
)

// ErrTerminalGone indicates the link to the terminal was lost. Any session
// in progress must be abandoned and rebuilt after a reconnect.
var ErrTerminalGone = errors.New("terminal: link lost")

// Terminal is the device abstraction the renderer paints against. All
// output is written directly and in order; nothing is buffered for a later
// flush.
type Terminal interface {
	// Rows and Columns report the device extents.
	Rows() int
	Columns() int

	// MoveCursor issues explicit cursor addressing (1-based coordinates).
	MoveCursor(row, col int)
	// SendCommand issues one primitive operation.
	SendCommand(cmd Command)
	// SendText writes text at the current cursor position.
	SendText(text string)

	// SetScrollRegion restricts scrolling to rows top..bottom inclusive;
	// ClearScrollRegion restores the full screen.
	SetScrollRegion(top, bottom int)
	ClearScrollRegion()

	// FetchCursor returns the shadow cursor position. The device itself is
	// queried exactly once, at session start.
	FetchCursor() (row, col int)

	// Bolded, Underlined and Reversed report the shadow attribute state.
	Bolded() bool
	Underlined() bool
	Reversed() bool

	// RecvInput blocks for the next decoded input. PeekInput reports input
	// that is already queued without blocking; it returns "" when nothing
	// is pending.
	RecvInput() (Input, error)
	PeekInput() (Input, error)

	// Reset restores the terminal to a sane state (normal attributes, full
	// scroll region, cleared screen).
	Reset()

	// Err returns the sticky write error, if any output has failed.
	Err() error

	// Close tears down the transport.
	Close() error
}
