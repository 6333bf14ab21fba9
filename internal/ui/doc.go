// Package ui contains the screens, widgets, and the renderer that drive a
// VT-100 terminal: the login screen, the tabbed timeline with its
// scroll-region viewport, the post composer, and the help and error pages.
//
// Every component paints directly against the terminal interface and is
// written to emit as few bytes as possible: scrolls shift rows in place
// with the device scroll region and repaint only what the shift exposed,
// input widgets repaint only the changed column span, and attribute
// changes go through the shared minimal-diff emitter.
//
// The Renderer owns the navigation stack of screens and the status bar on
// the bottom row. Input flows from the session loop through
// Renderer.ProcessInput to the active screen's components, which answer
// with Actions (exit, back, swap screen) the session loop executes.
package ui
