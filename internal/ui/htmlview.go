package ui

import (
	"github.com/muurk/fedivt/internal/clip"
	"github.com/muurk/fedivt/internal/draw"
	"github.com/muurk/fedivt/internal/terminal"
	"github.com/muurk/fedivt/internal/text"
)

// HTMLComponent renders a static HTML document full screen, for help and
// other informational pages.
type HTMLComponent struct {
	renderer *Renderer
	content  string
}

// NewHTMLComponent creates a viewer for one HTML document.
func NewHTMLComponent(renderer *Renderer, content string) *HTMLComponent {
	return &HTMLComponent{renderer: renderer, content: content}
}

// Draw clears the screen and paints the document inside a box.
func (h *HTMLComponent) Draw() {
	term := h.renderer.Terminal
	term.SendCommand(terminal.ClearScreen)

	width := h.renderer.Columns()
	body, codes := text.HTML(h.content)
	wrapped := text.WrapLine(body, codes, width-2)

	lines := make([]text.Line, 0, len(wrapped)+2)
	lines = append(lines, draw.BoxTop(width))
	for _, line := range wrapped {
		lines = append(lines, draw.BoxMiddle(line, width))
	}
	lines = append(lines, draw.BoxBottom(width))

	bounds := clip.BoundingRectangle{
		Top:    1,
		Bottom: h.renderer.Rows() + 1,
		Left:   1,
		Right:  width + 1,
	}
	text.Display(term, lines, bounds)

	h.renderer.RepaintStatus()
	h.renderer.Status("Press 'b' to go back.")
}

// ProcessInput waits for the back key.
func (h *HTMLComponent) ProcessInput(input terminal.Input) Action {
	if input == "b" {
		return BackAction{Depth: 1}
	}
	return NullAction{}
}
