package ui

import (
	"github.com/muurk/fedivt/internal/clip"
	"github.com/muurk/fedivt/internal/draw"
	"github.com/muurk/fedivt/internal/terminal"
	"github.com/muurk/fedivt/internal/text"
)

const errorBoxWidth = 36

// ErrorComponent is the terminal screen shown when a failure leaves no
// usable session: the error text in a box and a quit button.
type ErrorComponent struct {
	renderer *Renderer
	message  string
	top      int
	left     int
	quit     *Button
}

// NewErrorComponent lays out an error screen for the given failure.
func NewErrorComponent(renderer *Renderer, err error) *ErrorComponent {
	left := (renderer.Columns() - errorBoxWidth) / 2
	c := &ErrorComponent{
		renderer: renderer,
		message:  err.Error(),
		left:     left,
	}

	height := len(c.bodyLines()) + 2
	c.top = (renderer.Rows()-(height+4))/2 + 1
	if c.top < 1 {
		c.top = 1
	}
	c.quit = NewButton(renderer, "Quit", c.top+height+1, left+2, true)
	return c
}

func (c *ErrorComponent) bodyLines() []text.Line {
	header := text.HighlightLine("<b>Something went wrong:</b>")
	body := text.HighlightLine(text.Sanitize(c.message))
	wrapped := text.WrapLine(body.Text, body.Codes, errorBoxWidth-2)
	return append([]text.Line{header, text.HighlightLine("")}, wrapped...)
}

// Draw clears the screen and paints the error box.
func (c *ErrorComponent) Draw() {
	term := c.renderer.Terminal
	term.SendCommand(terminal.ClearScreen)

	body := c.bodyLines()
	lines := make([]text.Line, 0, len(body)+2)
	lines = append(lines, draw.BoxTop(errorBoxWidth))
	for _, line := range body {
		lines = append(lines, draw.BoxMiddle(line, errorBoxWidth))
	}
	lines = append(lines, draw.BoxBottom(errorBoxWidth))

	bounds := clip.BoundingRectangle{
		Top:    c.top,
		Bottom: c.top + len(lines),
		Left:   c.left + 1,
		Right:  c.left + 1 + errorBoxWidth,
	}
	text.Display(term, lines, bounds)

	c.renderer.RepaintStatus()
	c.quit.Draw()
	c.quit.ProcessInput(FocusInput)
}

// ProcessInput waits for the quit button.
func (c *ErrorComponent) ProcessInput(input terminal.Input) Action {
	if action := c.quit.ProcessInput(input); action != nil {
		return action
	}
	if input == terminal.KeyEnter || input == "q" {
		return ExitAction{}
	}
	return NullAction{}
}
