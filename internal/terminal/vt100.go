package terminal

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/muurk/fedivt/internal/logging"
)

// commandBytes is the wire encoding for each primitive operation.
var commandBytes = map[Command]string{
	SetNormal:          "\x1b[0m",
	SetBold:            "\x1b[1m",
	SetUnderline:       "\x1b[4m",
	SetReverse:         "\x1b[7m",
	ClearScreen:        "\x1b[2J",
	ClearLine:          "\x1b[2K",
	ClearToEndOfLine:   "\x1b[K",
	SaveCursor:         "\x1b7",
	RestoreCursor:      "\x1b8",
	MoveCursorUp:       "\x1bM",
	MoveCursorDown:     "\x1bD",
	DoubleHeightTop:    "\x1b#3",
	DoubleHeightBottom: "\x1b#4",
	NormalSize:         "\x1b#5",
}

// vt100 implements Terminal over any byte stream. It owns the shadow state:
// the in-memory record of the device's cursor position and attribute mode.
type vt100 struct {
	rw     io.ReadWriter
	reader *bufio.Reader

	rows    int
	columns int

	// Shadow state. Mutated only by the output methods below, so it tracks
	// exactly what was emitted.
	row        int
	col        int
	bolded     bool
	underlined bool
	reversed   bool

	// DECSC keeps position and attributes together; so does the shadow.
	savedRow        int
	savedCol        int
	savedBolded     bool
	savedUnderlined bool
	savedReversed   bool

	err error
}

// newVT100 wraps rw, switches the device into the requested column mode and
// newline mode, and seeds the cursor shadow with a one-shot DSR query.
func newVT100(rw io.ReadWriter, wide bool) (*vt100, error) {
	t := &vt100{
		rw:      rw,
		reader:  bufio.NewReader(rw),
		rows:    24,
		columns: 80,
	}
	if wide {
		t.columns = 132
		t.write("\x1b[?3h")
	} else {
		t.write("\x1b[?3l")
	}

	// Newline mode: LF acts as CR+LF, which is what the cheap one-byte row
	// advance in the paint path relies on.
	t.write("\x1b[20h")
	t.write(commandBytes[SetNormal])

	row, col, err := t.queryCursor()
	if err != nil {
		return nil, err
	}
	t.row, t.col = row, col

	if t.err != nil {
		return nil, t.err
	}
	return t, nil
}

func (t *vt100) write(s string) {
	if t.err != nil {
		return
	}
	if _, err := io.WriteString(t.rw, s); err != nil {
		t.err = fmt.Errorf("%w: %v", ErrTerminalGone, err)
		logging.Warn("Terminal write failed", zap.Error(err))
	}
}

// queryCursor performs the only cursor-report round trip of a session: a
// DSR request answered by ESC [ row ; col R.
func (t *vt100) queryCursor() (int, int, error) {
	t.write("\x1b[6n")
	if t.err != nil {
		return 0, 0, t.err
	}

	// Scan for the CSI introducer, then read digits ; digits R.
	for {
		b, err := t.reader.ReadByte()
		if err != nil {
			return 0, 0, fmt.Errorf("%w: %v", ErrTerminalGone, err)
		}
		if b != 0x1b {
			continue
		}
		b, err = t.reader.ReadByte()
		if err != nil {
			return 0, 0, fmt.Errorf("%w: %v", ErrTerminalGone, err)
		}
		if b != '[' {
			continue
		}

		var resp strings.Builder
		for {
			b, err = t.reader.ReadByte()
			if err != nil {
				return 0, 0, fmt.Errorf("%w: %v", ErrTerminalGone, err)
			}
			if b == 'R' {
				break
			}
			resp.WriteByte(b)
		}

		var row, col int
		if _, err := fmt.Sscanf(resp.String(), "%d;%d", &row, &col); err != nil {
			return 0, 0, fmt.Errorf("terminal: malformed cursor report %q", resp.String())
		}
		return row, col, nil
	}
}

func (t *vt100) Rows() int    { return t.rows }
func (t *vt100) Columns() int { return t.columns }

func (t *vt100) MoveCursor(row, col int) {
	t.write(fmt.Sprintf("\x1b[%d;%dH", row, col))
	t.row, t.col = row, col
}

func (t *vt100) SendCommand(cmd Command) {
	seq, ok := commandBytes[cmd]
	if !ok {
		panic(fmt.Sprintf("terminal: unknown command %d", cmd))
	}
	t.write(seq)

	switch cmd {
	case SetNormal:
		t.bolded, t.underlined, t.reversed = false, false, false
	case SetBold:
		t.bolded = true
	case SetUnderline:
		t.underlined = true
	case SetReverse:
		t.reversed = true
	case SaveCursor:
		t.savedRow, t.savedCol = t.row, t.col
		t.savedBolded, t.savedUnderlined, t.savedReversed = t.bolded, t.underlined, t.reversed
	case RestoreCursor:
		t.row, t.col = t.savedRow, t.savedCol
		t.bolded, t.underlined, t.reversed = t.savedBolded, t.savedUnderlined, t.savedReversed
	case MoveCursorUp:
		if t.row > 1 {
			t.row--
		}
	case MoveCursorDown:
		if t.row < t.rows {
			t.row++
		}
	}
}

func (t *vt100) SendText(text string) {
	t.write(text)
	for _, ch := range text {
		if ch == '\n' {
			// Newline mode makes LF behave as CR+LF.
			if t.row < t.rows {
				t.row++
			}
			t.col = 1
		} else {
			t.col++
		}
	}
}

func (t *vt100) SetScrollRegion(top, bottom int) {
	t.write(fmt.Sprintf("\x1b[%d;%dr", top, bottom))
	// DECSTBM homes the cursor.
	t.row, t.col = 1, 1
}

func (t *vt100) ClearScrollRegion() {
	t.write("\x1b[r")
	t.row, t.col = 1, 1
}

func (t *vt100) FetchCursor() (int, int) {
	return t.row, t.col
}

func (t *vt100) Bolded() bool    { return t.bolded }
func (t *vt100) Underlined() bool { return t.underlined }
func (t *vt100) Reversed() bool  { return t.reversed }

func (t *vt100) Reset() {
	t.write("\x1b[r")
	t.write(commandBytes[SetNormal])
	t.write(commandBytes[ClearScreen])
	t.MoveCursor(1, 1)
}

func (t *vt100) Err() error {
	return t.err
}
