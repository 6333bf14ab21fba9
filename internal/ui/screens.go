package ui

import (
	"github.com/muurk/fedivt/internal/client"
)

// SpawnLoginScreen replaces everything with the sign-in screen. Any
// streaming listener from a previous login is shut down first.
func SpawnLoginScreen(r *Renderer, server, username, password string) {
	if r.Session.Listener != nil {
		r.Session.Listener.Close()
		r.Session.Listener = nil
	}
	r.Session.Account = nil
	r.Session.Prefs = nil

	r.Replace([]Component{NewLoginComponent(r, server, username, password)})
}

// SpawnTimelineScreen replaces everything with the tabbed timeline view,
// fetching the initial timeline. A fetch failure becomes the error
// screen.
func SpawnTimelineScreen(r *Renderer, timeline client.TimelineKind) {
	r.Status("Fetching timeline...")
	tabs, err := NewTimelineTabsComponent(r, 1, r.Rows(), timeline)
	if err != nil {
		SpawnErrorScreen(r, err)
		return
	}
	r.Replace([]Component{tabs})
}

// SpawnComposeScreen pushes the composer on top of the current screen.
func SpawnComposeScreen(r *Renderer, statusText string) {
	r.Status(statusText)
	r.Push([]Component{NewComposeComponent(r, 1)})
}

// SpawnHTMLScreen pushes a full-screen HTML page on top of the current
// screen.
func SpawnHTMLScreen(r *Renderer, content, statusText string) {
	r.Status(statusText)
	r.Push([]Component{NewHTMLComponent(r, content)})
}

// SpawnErrorScreen replaces everything with the terminal error screen.
func SpawnErrorScreen(r *Renderer, err error) {
	r.Replace([]Component{NewErrorComponent(r, err)})
}
