package ui

import (
	"github.com/muurk/fedivt/internal/client"
	"github.com/muurk/fedivt/internal/clip"
	"github.com/muurk/fedivt/internal/draw"
	"github.com/muurk/fedivt/internal/terminal"
	"github.com/muurk/fedivt/internal/text"
)

// The composer's visibility choices, in display order.
var visibilityChoices = []string{"public", "quiet public", "followers", "specific accounts"}

func visibilityLabel(v client.Visibility) string {
	switch v {
	case client.VisibilityUnlisted:
		return "quiet public"
	case client.VisibilityPrivate:
		return "followers"
	case client.VisibilityDirect:
		return "specific accounts"
	default:
		return "public"
	}
}

func visibilityFromLabel(label string) client.Visibility {
	switch label {
	case "quiet public":
		return client.VisibilityUnlisted
	case "followers":
		return client.VisibilityPrivate
	case "specific accounts":
		return client.VisibilityDirect
	default:
		return client.VisibilityPublic
	}
}

// Widget focus order on the composer screen.
const (
	composeFocusBody = iota
	composeFocusCW
	composeFocusVisibility
	composeFocusPost
	composeFocusDiscard
)

// ComposeComponent is the new-post screen: a multi-line body editor, an
// optional content warning, a visibility selector, and post/discard
// buttons, boxed together.
type ComposeComponent struct {
	renderer *Renderer
	top      int

	body       *MultiLineInputBox
	cw         *OneLineInputBox
	visibility *HorizontalSelect
	post       *Button
	discard    *Button

	focus *FocusWrapper
}

// NewComposeComponent lays out the composer starting at screen row top.
// The visibility selector is seeded from the user's server-side posting
// preference.
func NewComposeComponent(renderer *Renderer, top int) *ComposeComponent {
	width := renderer.Columns()

	defaultVisibility := client.VisibilityPublic
	if renderer.Session.Prefs != nil {
		defaultVisibility = client.VisibilityFromString(renderer.Session.Prefs.DefaultVisibility)
	}

	c := &ComposeComponent{
		renderer:   renderer,
		top:        top,
		body:       NewMultiLineInputBox(renderer, "", top+2, 2, width-2, 10),
		cw:         NewOneLineInputBox(renderer, "", top+13, 15, width-16, false),
		visibility: NewHorizontalSelect(renderer, visibilityChoices, top+14, 19, 25, visibilityLabel(defaultVisibility)),
		post:       NewButton(renderer, "Post", top+17, 2, true),
		discard:    NewButton(renderer, "Discard", top+17, 9, false),
	}

	c.focus = NewFocusWrapper([]Focusable{
		c.body, c.cw, c.visibility, c.post, c.discard,
	}, composeFocusBody)
	return c
}

// chrome renders the static parts of the screen: the surrounding box, the
// account header, and the widget labels. Widgets paint over it.
func (c *ComposeComponent) chrome() []text.Line {
	width := c.renderer.Columns()

	name := c.renderer.Session.Username
	acct := c.renderer.Session.Username
	if c.renderer.Session.Account != nil {
		name = text.StripLow(c.renderer.Session.Account.DisplayName, false)
		acct = text.StripLow(c.renderer.Session.Account.Acct, false)
	}
	header := draw.Join(
		text.HighlightLine("Posting as "),
		draw.Account(name, acct, width-2-11),
	)

	blank := text.HighlightLine("")
	lines := make([]text.Line, 0, 21)
	lines = append(lines, draw.BoxTop(width))
	lines = append(lines, draw.BoxMiddle(header, width))
	for row := 2; row <= 12; row++ {
		lines = append(lines, draw.BoxMiddle(blank, width))
	}
	lines = append(lines, draw.BoxMiddle(text.HighlightLine("Optional CW:"), width))
	lines = append(lines, draw.BoxMiddle(blank, width))
	lines = append(lines, draw.BoxMiddle(text.HighlightLine("Visibility:"), width))
	for row := 16; row <= 19; row++ {
		lines = append(lines, draw.BoxMiddle(blank, width))
	}
	lines = append(lines, draw.BoxBottom(width))
	return lines
}

// Draw paints the whole composer and parks the cursor on the focused
// widget.
func (c *ComposeComponent) Draw() {
	c.renderer.Terminal.SendCommand(terminal.ClearScreen)
	c.renderer.RepaintStatus()

	chrome := c.chrome()
	bounds := clip.BoundingRectangle{
		Top:    c.top,
		Bottom: c.top + len(chrome),
		Left:   1,
		Right:  c.renderer.Columns() + 1,
	}
	text.Display(c.renderer.Terminal, chrome, bounds)

	c.body.Draw()
	c.cw.Draw()
	c.visibility.Draw()
	c.post.Draw()
	c.discard.Draw()
	c.focus.Focus()

	c.renderer.Status("Tab cycles fields, Enter posts.")
}

func (c *ComposeComponent) submit() Action {
	if c.body.Text() == "" {
		c.renderer.Status("Nothing to post!")
		return NullAction{}
	}

	c.renderer.Status("Posting...")
	status, err := c.renderer.Client.Post(
		c.body.Text(),
		visibilityFromLabel(c.visibility.Selected()),
		c.cw.Text(),
	)
	if err != nil {
		c.renderer.Status("Post failed: " + err.Error())
		return NullAction{}
	}

	c.renderer.Session.LastPost = status
	return BackAction{Depth: 1}
}

// ProcessInput forwards to the focused widget first, then handles focus
// movement and button activation.
func (c *ComposeComponent) ProcessInput(input terminal.Input) Action {
	if action := c.focus.ProcessInput(input); action != nil {
		return action
	}

	switch input {
	case terminal.KeyTab:
		c.focus.Next(true)
		return NullAction{}

	case terminal.KeyUp:
		c.focus.Previous(false)
		return NullAction{}

	case terminal.KeyDown:
		c.focus.Next(false)
		return NullAction{}

	case terminal.KeyEnter:
		switch c.focus.Current {
		case composeFocusPost:
			return c.submit()
		case composeFocusDiscard:
			return BackAction{Depth: 1}
		default:
			// Enter elsewhere moves toward the buttons, like tab.
			c.focus.Next(true)
			return NullAction{}
		}
	}

	return nil
}
