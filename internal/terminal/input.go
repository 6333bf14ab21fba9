package terminal

import (
	"fmt"
)

// RecvInput blocks until one decoded input unit is available. Arrow keys
// arrive as three-byte CSI sequences and are folded into the Key constants;
// everything else is returned byte for byte.
func (t *vt100) RecvInput() (Input, error) {
	b, err := t.reader.ReadByte()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTerminalGone, err)
	}

	if b != 0x1b {
		return Input(b), nil
	}

	// Escape sequence. If the rest hasn't arrived yet this blocks, which is
	// fine: a bare ESC key is not part of the input vocabulary.
	next, err := t.reader.ReadByte()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTerminalGone, err)
	}
	if next != '[' && next != 'O' {
		// Not a CSI/SS3 sequence; surface the pair as-is.
		return Input([]byte{b, next}), nil
	}

	final, err := t.reader.ReadByte()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTerminalGone, err)
	}
	switch final {
	case 'A':
		return KeyUp, nil
	case 'B':
		return KeyDown, nil
	case 'C':
		return KeyRight, nil
	case 'D':
		return KeyLeft, nil
	}
	return Input([]byte{b, next, final}), nil
}

// PeekInput reports the next input only when its bytes are already queued
// in the read buffer; it never blocks. The session loop uses this to
// collapse held-down arrow keys so scroll requests don't pile up and desync
// the device.
func (t *vt100) PeekInput() (Input, error) {
	n := t.reader.Buffered()
	if n == 0 {
		return "", nil
	}

	buf, err := t.reader.Peek(n)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTerminalGone, err)
	}

	if buf[0] != 0x1b {
		return Input(buf[0]), nil
	}
	if n >= 3 && (buf[1] == '[' || buf[1] == 'O') {
		switch buf[2] {
		case 'A':
			return KeyUp, nil
		case 'B':
			return KeyDown, nil
		case 'C':
			return KeyRight, nil
		case 'D':
			return KeyLeft, nil
		}
		return Input(buf[:3]), nil
	}

	// Incomplete escape sequence; don't guess.
	return "", nil
}
