package ui

import (
	"strings"

	"github.com/muurk/fedivt/internal/clip"
	"github.com/muurk/fedivt/internal/draw"
	"github.com/muurk/fedivt/internal/terminal"
	"github.com/muurk/fedivt/internal/text"
)

// Focusable is a widget that participates in tab focus. Focus changes are
// delivered as the FocusInput/UnfocusInput pseudo-inputs.
type Focusable interface {
	ProcessInput(input terminal.Input) Action
}

// FocusWrapper tracks which widget in a screen has focus and moves focus
// between them.
type FocusWrapper struct {
	Widgets []Focusable

	// Current is the index of the focused widget.
	Current int
}

// NewFocusWrapper creates a wrapper focused on widget current.
func NewFocusWrapper(widgets []Focusable, current int) *FocusWrapper {
	return &FocusWrapper{Widgets: widgets, Current: current}
}

// Focus delivers the focus pseudo-input to the current widget, typically
// after a full draw to park the cursor.
func (f *FocusWrapper) Focus() {
	f.Widgets[f.Current].ProcessInput(FocusInput)
}

// ProcessInput forwards input to the focused widget.
func (f *FocusWrapper) ProcessInput(input terminal.Input) Action {
	return f.Widgets[f.Current].ProcessInput(input)
}

// Previous moves focus one widget back, optionally wrapping at the front.
func (f *FocusWrapper) Previous(wrap bool) {
	if f.Current > 0 {
		f.Widgets[f.Current].ProcessInput(UnfocusInput)
		f.Current--
		f.Widgets[f.Current].ProcessInput(FocusInput)
	} else if wrap {
		f.Widgets[f.Current].ProcessInput(UnfocusInput)
		f.Current = len(f.Widgets) - 1
		f.Widgets[f.Current].ProcessInput(FocusInput)
	}
}

// Next moves focus one widget forward, optionally wrapping at the end.
func (f *FocusWrapper) Next(wrap bool) {
	if f.Current < len(f.Widgets)-1 {
		f.Widgets[f.Current].ProcessInput(UnfocusInput)
		f.Current++
		f.Widgets[f.Current].ProcessInput(FocusInput)
	} else if wrap {
		f.Widgets[f.Current].ProcessInput(UnfocusInput)
		f.Current = 0
		f.Widgets[f.Current].ProcessInput(FocusInput)
	}
}

// Button is a boxed caption. The caption renders bold while focused.
type Button struct {
	renderer *Renderer
	caption  string
	row      int
	column   int
	focused  bool
}

// NewButton creates a button with its top-left corner at row, column.
func NewButton(renderer *Renderer, caption string, row, column int, focused bool) *Button {
	return &Button{
		renderer: renderer,
		caption:  caption,
		row:      row,
		column:   column,
		focused:  focused,
	}
}

// Lines returns the button's three rendered rows.
func (b *Button) Lines() []text.Line {
	width := len([]rune(b.caption)) + 2
	caption := text.Sanitize(b.caption)
	if b.focused {
		caption = "<b>" + caption + "</b>"
	}
	return []text.Line{
		draw.BoxTop(width),
		draw.BoxMiddle(text.HighlightLine(caption), width),
		draw.BoxBottom(width),
	}
}

func (b *Button) bounds(top, bottom int) clip.BoundingRectangle {
	return clip.BoundingRectangle{
		Top:    top,
		Bottom: bottom,
		Left:   b.column,
		Right:  b.column + len([]rune(b.caption)) + 2,
	}
}

// Draw paints the whole button.
func (b *Button) Draw() {
	text.Display(b.renderer.Terminal, b.Lines(), b.bounds(b.row, b.row+3))
	if b.focused {
		b.renderer.Terminal.MoveCursor(b.row+1, b.column+1)
	}
}

// ProcessInput handles focus transitions; buttons consume nothing else.
func (b *Button) ProcessInput(input terminal.Input) Action {
	switch input {
	case FocusInput:
		oldFocus := b.focused
		b.focused = true
		if !oldFocus {
			text.Display(b.renderer.Terminal, b.Lines()[1:2], b.bounds(b.row+1, b.row+2))
		}
		b.renderer.Terminal.MoveCursor(b.row+1, b.column+1)
		return NullAction{}

	case UnfocusInput:
		oldFocus := b.focused
		b.focused = false
		if oldFocus {
			text.Display(b.renderer.Terminal, b.Lines()[1:2], b.bounds(b.row+1, b.row+2))
		}
		return NullAction{}
	}

	return nil
}

// HorizontalSelect is a boxed single-choice selector driven by the left
// and right arrow keys.
type HorizontalSelect struct {
	renderer *Renderer
	choices  []string
	row      int
	column   int
	width    int
	focused  bool
	selected int
}

// NewHorizontalSelect creates a selector. An empty selected string keeps
// the first choice.
func NewHorizontalSelect(renderer *Renderer, choices []string, row, column, width int, selected string) *HorizontalSelect {
	h := &HorizontalSelect{
		renderer: renderer,
		choices:  choices,
		row:      row,
		column:   column,
		width:    width,
	}
	for i, choice := range choices {
		if choice == selected {
			h.selected = i
			break
		}
	}
	return h
}

// Selected returns the currently selected choice.
func (h *HorizontalSelect) Selected() string {
	return h.choices[h.selected]
}

// Lines returns the selector's three rendered rows.
func (h *HorizontalSelect) Lines() []text.Line {
	left := "&lt; "
	right := " &gt;"
	if h.focused {
		left = "<r>&lt;</r> "
		right = " <r>&gt;</r>"
	}
	centered := text.Center(h.choices[h.selected], h.width-6)

	return []text.Line{
		draw.BoxTop(h.width),
		draw.BoxMiddle(text.HighlightLine(left+text.Sanitize(centered)+right), h.width),
		draw.BoxBottom(h.width),
	}
}

func (h *HorizontalSelect) bounds(top, bottom int) clip.BoundingRectangle {
	return clip.BoundingRectangle{
		Top:    top,
		Bottom: bottom,
		Left:   h.column,
		Right:  h.column + h.width,
	}
}

// moveCursor parks the cursor on the first character of the selection.
func (h *HorizontalSelect) moveCursor() {
	if !h.focused {
		return
	}
	centered := text.Center(h.choices[h.selected], h.width-6)
	lPos := 0
	for lPos < len(centered) && centered[lPos] == ' ' {
		lPos++
	}
	h.renderer.Terminal.MoveCursor(h.row+1, h.column+3+lPos)
}

// Draw paints the whole selector.
func (h *HorizontalSelect) Draw() {
	text.Display(h.renderer.Terminal, h.Lines(), h.bounds(h.row, h.row+3))
	h.moveCursor()
}

func (h *HorizontalSelect) redrawMiddle() {
	text.Display(h.renderer.Terminal, h.Lines()[1:2], h.bounds(h.row+1, h.row+2))
	h.moveCursor()
}

// ProcessInput handles focus and arrow-key selection.
func (h *HorizontalSelect) ProcessInput(input terminal.Input) Action {
	switch input {
	case FocusInput:
		oldFocus := h.focused
		h.focused = true
		if !oldFocus {
			text.Display(h.renderer.Terminal, h.Lines()[1:2], h.bounds(h.row+1, h.row+2))
		}
		h.moveCursor()
		return NullAction{}

	case UnfocusInput:
		oldFocus := h.focused
		h.focused = false
		if oldFocus {
			text.Display(h.renderer.Terminal, h.Lines()[1:2], h.bounds(h.row+1, h.row+2))
		}
		return NullAction{}

	case terminal.KeyLeft:
		if h.selected > 0 {
			h.selected--
			h.redrawMiddle()
		}
		return NullAction{}

	case terminal.KeyRight:
		if h.selected < len(h.choices)-1 {
			h.selected++
			h.redrawMiddle()
		}
		return NullAction{}
	}

	return nil
}

// OneLineInputBox is a reverse-video single-row text input.
type OneLineInputBox struct {
	renderer  *Renderer
	row       int
	column    int
	length    int
	obfuscate bool

	textValue string
	cursor    int
}

// NewOneLineInputBox creates an input seeded with initial text. With
// obfuscate, content renders as asterisks for password entry.
func NewOneLineInputBox(renderer *Renderer, initial string, row, column, length int, obfuscate bool) *OneLineInputBox {
	runes := []rune(initial)
	if len(runes) > length {
		runes = runes[:length]
	}
	return &OneLineInputBox{
		renderer:  renderer,
		row:       row,
		column:    column,
		length:    length,
		obfuscate: obfuscate,
		textValue: string(runes),
		cursor:    len(runes),
	}
}

// Text returns the current contents.
func (o *OneLineInputBox) Text() string {
	return o.textValue
}

// Lines returns the input's single rendered row.
func (o *OneLineInputBox) Lines() []text.Line {
	shown := o.textValue
	if o.obfuscate {
		shown = text.Obfuscate(shown)
	}
	return []text.Line{
		text.HighlightLine("<r>" + text.Sanitize(text.Pad(shown, o.length)) + "</r>"),
	}
}

// Draw paints the input and parks the cursor.
func (o *OneLineInputBox) Draw() {
	bounds := clip.BoundingRectangle{
		Top:    o.row,
		Bottom: o.row + 1,
		Left:   o.column,
		Right:  o.column + o.length,
	}
	text.Display(o.renderer.Terminal, o.Lines(), bounds)
	o.renderer.Terminal.MoveCursor(o.row, o.column+o.cursor)
}

// ProcessInput handles cursor movement, editing, and focus.
func (o *OneLineInputBox) ProcessInput(input terminal.Input) Action {
	switch input {
	case terminal.KeyLeft:
		if o.cursor > 0 {
			o.cursor--
			o.renderer.Terminal.MoveCursor(o.row, o.column+o.cursor)
		}
		return NullAction{}

	case terminal.KeyRight:
		if o.cursor < len(o.textValue) {
			o.cursor++
			o.renderer.Terminal.MoveCursor(o.row, o.column+o.cursor)
		}
		return NullAction{}

	case FocusInput:
		o.renderer.Terminal.MoveCursor(o.row, o.column+o.cursor)
		return NullAction{}

	case terminal.KeyBackspace, terminal.KeyDelete:
		if o.textValue != "" {
			switch {
			case o.cursor == len(o.textValue):
				o.textValue = o.textValue[:len(o.textValue)-1]
				o.cursor--
				o.Draw()
			case o.cursor == 0:
				// Erasing at the beginning, nothing to do.
			default:
				spot := o.cursor - 1
				o.textValue = o.textValue[:spot] + o.textValue[spot+1:]
				o.cursor--
				o.Draw()
			}
		}
		return NullAction{}
	}

	// Printable ASCII gets typed in; everything else falls through for
	// parent components to act on.
	printable := printableOnly(string(input), false)
	if printable == "" {
		return nil
	}

	if len(o.textValue) < o.length-1 {
		if o.cursor == len(o.textValue) {
			o.textValue += printable
		} else {
			spot := o.cursor
			o.textValue = o.textValue[:spot] + printable + o.textValue[spot:]
		}
		o.cursor++
		o.Draw()
	}
	return NullAction{}
}

// printableOnly filters input down to printable ASCII. With allowNewline,
// bare linefeeds survive too.
func printableOnly(s string, allowNewline bool) string {
	var b strings.Builder
	for _, ch := range s {
		if ch >= 0x20 && ch < 0x80 {
			b.WriteRune(ch)
		} else if allowNewline && ch == '\n' {
			b.WriteRune(ch)
		}
	}
	return b.String()
}
