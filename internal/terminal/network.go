package terminal

import (
	"fmt"
	"net"
	"time"

	"go.uber.org/zap"

	"github.com/muurk/fedivt/internal/logging"
)

// networkTerminal drives a terminal reachable through a serial-to-TCP
// bridge (ser2net and friends). The bridge handles baud rate and flow
// control; we only see the byte stream.
type networkTerminal struct {
	*vt100
	conn net.Conn
}

// ConnectNetwork dials addr and performs terminal session setup. The
// connect timeout is short because bridges either answer immediately or
// not at all; the caller owns retry pacing.
func ConnectNetwork(addr string, wide bool) (Terminal, error) {
	conn, err := net.DialTimeout("tcp", addr, 5*time.Second)
	if err != nil {
		return nil, fmt.Errorf("terminal: connect %s: %w", addr, err)
	}

	vt, err := newVT100(conn, wide)
	if err != nil {
		conn.Close()
		return nil, err
	}

	logging.LogConnection(addr, "terminal_attached")
	logging.Debug("Terminal geometry",
		zap.Int("rows", vt.Rows()),
		zap.Int("columns", vt.Columns()),
	)
	return &networkTerminal{vt100: vt, conn: conn}, nil
}

func (t *networkTerminal) Close() error {
	logging.LogConnection(t.conn.RemoteAddr().String(), "terminal_detached")
	return t.conn.Close()
}
