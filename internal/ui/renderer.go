package ui

import (
	"github.com/muurk/fedivt/internal/client"
	"github.com/muurk/fedivt/internal/terminal"
	"github.com/muurk/fedivt/internal/text"
)

// Component is one active piece of a screen. Components own a row range
// of the display and draw directly to the terminal.
type Component interface {
	// Draw paints the component's full area.
	Draw()

	// ProcessInput handles one input, returning nil if it wasn't
	// interested so the next component can try.
	ProcessInput(input terminal.Input) Action
}

// Session carries the state every screen shares: who is logged in where,
// and the fetched account details that screens render.
type Session struct {
	Server   string
	Username string
	Account  *client.Account
	Prefs    *client.Preferences

	// LastPost is the most recent post created this session, used for
	// the "new status posted" notice.
	LastPost *client.Status

	// Listener is the background streaming listener, when connected.
	Listener *client.StreamListener

	// SaveAppCredentials persists freshly registered app credentials,
	// when the caller wants them kept across sessions.
	SaveAppCredentials func(server, clientID, clientSecret string)
}

// Renderer owns the terminal, the navigation stack of screens, and the
// status bar on the bottom row.
type Renderer struct {
	Terminal terminal.Terminal
	Client   *client.Client
	Session  *Session

	components []Component
	stack      [][]Component
	lastStatus string
	statusSet  bool
}

// NewRenderer creates a renderer with an empty screen stack and a blank
// status bar.
func NewRenderer(t terminal.Terminal, c *client.Client) *Renderer {
	r := &Renderer{
		Terminal: t,
		Client:   c,
		Session:  &Session{},
	}
	r.Status("")
	return r
}

// Rows is the number of rows available to screens. The bottom row belongs
// to the status bar.
func (r *Renderer) Rows() int {
	return r.Terminal.Rows() - 1
}

// Columns is the display width available to screens.
func (r *Renderer) Columns() int {
	return r.Terminal.Columns()
}

// Replace swaps in a new set of components and clears the navigation
// stack. Used for hard transitions like login and logout.
func (r *Renderer) Replace(components []Component) {
	r.components = append([]Component(nil), components...)
	r.stack = nil
	for _, component := range r.components {
		component.Draw()
	}
}

// Push stacks a new screen on top of the current one.
func (r *Renderer) Push(components []Component) {
	if len(r.components) > 0 {
		r.stack = append(r.stack, r.components)
	}
	r.components = append([]Component(nil), components...)
	for _, component := range r.components {
		component.Draw()
	}
}

// Pop returns to the previous screen, redrawing it in full.
func (r *Renderer) Pop() {
	if len(r.stack) == 0 {
		return
	}
	r.components = r.stack[len(r.stack)-1]
	r.stack = r.stack[:len(r.stack)-1]
	for _, component := range r.components {
		component.Draw()
	}
}

// RepaintStatus redraws the status bar with its current text, after a
// full-screen clear wiped it.
func (r *Renderer) RepaintStatus() {
	r.statusSet = false
	r.Status(r.lastStatus)
}

// CurrentStatus returns the text currently on the status bar.
func (r *Renderer) CurrentStatus() string {
	return r.lastStatus
}

// Status paints the status bar, returning the previous status text.
// Repainting an identical status costs zero bytes.
func (r *Renderer) Status(statusText string) string {
	if r.statusSet && statusText == r.lastStatus {
		return r.lastStatus
	}

	oldStatus := r.lastStatus
	r.lastStatus = statusText
	r.statusSet = true

	row, col := r.Terminal.FetchCursor()
	r.Terminal.SendCommand(terminal.SaveCursor)
	r.Terminal.MoveCursor(r.Terminal.Rows(), 1)
	r.Terminal.SendCommand(terminal.SetNormal)
	r.Terminal.SendCommand(terminal.SetReverse)
	r.Terminal.SendText(text.Pad(statusText, r.Terminal.Columns()))
	r.Terminal.SendCommand(terminal.RestoreCursor)

	// Work around a cursor report timing bug after drawing the status
	// bar on original VT-10X hardware.
	r.Terminal.MoveCursor(row, col)

	return oldStatus
}

// ProcessInput offers the input to each component in order, then falls
// back to the global bindings.
func (r *Renderer) ProcessInput(input terminal.Input) Action {
	for _, component := range r.components {
		if action := component.ProcessInput(input); action != nil {
			return action
		}
	}

	if input == terminal.KeyCtrlC {
		return ExitAction{}
	}

	return nil
}
