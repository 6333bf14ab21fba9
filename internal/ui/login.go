package ui

import (
	"errors"

	"github.com/muurk/fedivt/internal/client"
	"github.com/muurk/fedivt/internal/clip"
	"github.com/muurk/fedivt/internal/draw"
	"github.com/muurk/fedivt/internal/terminal"
	"github.com/muurk/fedivt/internal/text"
)

const loginBoxWidth = 38

// Widget focus order on the login screen.
const (
	loginFocusUsername = iota
	loginFocusPassword
	loginFocusLogin
	loginFocusQuit
)

// LoginComponent is the sign-in screen: a double-height banner, username
// and password inputs, and login/quit buttons.
type LoginComponent struct {
	renderer *Renderer
	server   string
	top      int
	left     int

	username *OneLineInputBox
	password *OneLineInputBox
	login    *Button
	quit     *Button

	focus *FocusWrapper
}

// NewLoginComponent lays out the login screen centered on the display,
// with the inputs prefilled.
func NewLoginComponent(renderer *Renderer, server, username, password string) *LoginComponent {
	left := (renderer.Columns() - loginBoxWidth) / 2
	top := (renderer.Rows()-15)/2 + 1
	if top < 1 {
		top = 1
	}

	c := &LoginComponent{
		renderer: renderer,
		server:   server,
		top:      top,
		left:     left,
		username: NewOneLineInputBox(renderer, username, top+7, left+2, loginBoxWidth-2, false),
		password: NewOneLineInputBox(renderer, password, top+10, left+2, loginBoxWidth-2, true),
		login:    NewButton(renderer, "Login", top+11, left+2, true),
		quit:     NewButton(renderer, "Quit", top+11, left+30, false),
	}

	c.focus = NewFocusWrapper([]Focusable{
		c.username, c.password, c.login, c.quit,
	}, loginFocusUsername)
	return c
}

// Draw clears the screen and paints the whole login layout.
func (c *LoginComponent) Draw() {
	term := c.renderer.Terminal
	term.SendCommand(terminal.ClearScreen)

	// The banner renders double height, so its characters are double
	// width and the column address is halved.
	term.MoveCursor(c.top, c.left/2+1)
	term.SendCommand(terminal.DoubleHeightTop)
	term.SendText("fedivt")
	term.MoveCursor(c.top+1, c.left/2+1)
	term.SendCommand(terminal.DoubleHeightBottom)
	term.SendText("fedivt")

	server := text.Sanitize(c.server)
	blank := text.HighlightLine("")
	chrome := []text.Line{
		draw.BoxTop(loginBoxWidth),
		draw.BoxMiddle(text.HighlightLine("Sign in to "+server), loginBoxWidth),
		draw.BoxMiddle(blank, loginBoxWidth),
		draw.BoxMiddle(text.HighlightLine("Username:"), loginBoxWidth),
		draw.BoxMiddle(blank, loginBoxWidth),
		draw.BoxMiddle(blank, loginBoxWidth),
		draw.BoxMiddle(text.HighlightLine("Password:"), loginBoxWidth),
		draw.BoxMiddle(blank, loginBoxWidth),
		draw.BoxMiddle(blank, loginBoxWidth),
		draw.BoxMiddle(blank, loginBoxWidth),
		draw.BoxMiddle(blank, loginBoxWidth),
		draw.BoxBottom(loginBoxWidth),
	}
	bounds := clip.BoundingRectangle{
		Top:    c.top + 3,
		Bottom: c.top + 3 + len(chrome),
		Left:   c.left + 1,
		Right:  c.left + 1 + loginBoxWidth,
	}
	text.Display(term, chrome, bounds)

	c.username.Draw()
	c.password.Draw()
	c.login.Draw()
	c.quit.Draw()

	c.renderer.RepaintStatus()
	c.focus.Focus()
}

func (c *LoginComponent) doLogin() Action {
	r := c.renderer

	if !r.Client.Registered() {
		r.Status("Registering application...")
		if err := r.Client.RegisterApp(); err != nil {
			r.Status("Registration failed: " + err.Error())
			return NullAction{}
		}
		if r.Session.SaveAppCredentials != nil {
			clientID, clientSecret := r.Client.AppCredentials()
			r.Session.SaveAppCredentials(c.server, clientID, clientSecret)
		}
	}

	r.Status("Logging in...")
	err := r.Client.Login(c.username.Text(), c.password.Text())
	if errors.Is(err, client.ErrBadLogin) {
		r.Status("Invalid username or password!")
		return NullAction{}
	}
	if err != nil {
		r.Status("Login failed: " + err.Error())
		return NullAction{}
	}

	r.Session.Server = c.server
	r.Session.Username = r.Client.Username()

	if account, err := r.Client.Me(); err == nil {
		r.Session.Account = account
	}
	if prefs, err := r.Client.Preferences(); err == nil {
		r.Session.Prefs = prefs
	}

	listener := client.NewStreamListener(r.Client)
	listener.Start()
	r.Session.Listener = listener

	// The banner rows keep their double-height line attribute until told
	// otherwise, so reset them before the next screen paints over them.
	term := r.Terminal
	term.MoveCursor(c.top, 1)
	term.SendCommand(terminal.NormalSize)
	term.MoveCursor(c.top+1, 1)
	term.SendCommand(terminal.NormalSize)
	term.SendCommand(terminal.ClearScreen)

	return SwapScreenAction{Swap: func(r *Renderer) {
		SpawnTimelineScreen(r, client.TimelineHome)
	}}
}

// ProcessInput forwards to the focused widget first, then handles focus
// movement and button activation.
func (c *LoginComponent) ProcessInput(input terminal.Input) Action {
	if action := c.focus.ProcessInput(input); action != nil {
		return action
	}

	switch input {
	case terminal.KeyTab, terminal.KeyDown:
		c.focus.Next(true)
		return NullAction{}

	case terminal.KeyUp:
		c.focus.Previous(false)
		return NullAction{}

	case terminal.KeyEnter:
		if c.focus.Current == loginFocusQuit {
			return ExitAction{}
		}
		return c.doLogin()
	}

	return nil
}
