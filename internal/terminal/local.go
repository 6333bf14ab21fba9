package terminal

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/muurk/fedivt/internal/logging"
)

// localTerminal drives the controlling tty directly, for testing against a
// terminal emulator without real hardware on a serial line.
type localTerminal struct {
	*vt100
	fd       int
	oldState *term.State
}

type stdinout struct{}

func (stdinout) Read(p []byte) (int, error)  { return os.Stdin.Read(p) }
func (stdinout) Write(p []byte) (int, error) { return os.Stdout.Write(p) }

// ConnectLocal puts the controlling tty into raw mode and performs terminal
// session setup on it.
func ConnectLocal(wide bool) (Terminal, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return nil, fmt.Errorf("terminal: stdin is not a tty")
	}

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("terminal: raw mode: %w", err)
	}

	vt, err := newVT100(stdinout{}, wide)
	if err != nil {
		term.Restore(fd, oldState)
		return nil, err
	}

	// Trust the emulator's real geometry when it disagrees with the VT-100
	// defaults; everything downstream sizes itself from Rows/Columns.
	if w, h, err := term.GetSize(fd); err == nil && w > 0 && h > 0 {
		vt.columns = w
		vt.rows = h
	}

	logging.LogConnection("local-tty", "terminal_attached")
	return &localTerminal{vt100: vt, fd: fd, oldState: oldState}, nil
}

func (t *localTerminal) Close() error {
	t.Reset()
	logging.LogConnection("local-tty", "terminal_detached")
	return term.Restore(t.fd, t.oldState)
}

var _ io.ReadWriter = stdinout{}
