package ui

import "github.com/muurk/fedivt/internal/terminal"

// Action is what a component hands back from input processing. A nil
// Action means the input was not handled and the caller should try the
// next component.
type Action interface {
	isAction()
}

// NullAction reports that the input was consumed and nothing further
// needs to happen.
type NullAction struct{}

func (NullAction) isAction() {}

// ExitAction requests that the whole session end.
type ExitAction struct{}

func (ExitAction) isAction() {}

// BackAction pops screens off the navigation stack.
type BackAction struct {
	// Depth is how many screens to pop, minimum 1.
	Depth int
}

func (BackAction) isAction() {}

// SwapScreenAction asks the session loop to run a screen spawner against
// the renderer.
type SwapScreenAction struct {
	Swap func(*Renderer)
}

func (SwapScreenAction) isAction() {}

// Pseudo-inputs delivered to widgets by the focus machinery. They use
// byte values that no real terminal sends.
const (
	FocusInput   terminal.Input = "\x80"
	UnfocusInput terminal.Input = "\x81"
)
