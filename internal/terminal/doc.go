// Package terminal drives a VT-100 class terminal over a slow,
// byte-expensive link.
//
// The package exposes the terminal's primitive capabilities (cursor
// addressing, scroll regions, character attributes, double-height text) as
// a small command set, and mirrors the device's cursor position and
// attribute state in memory ("shadow state") so callers never have to issue
// slow cursor-report round trips mid-render. The one exception is a single
// DSR query at session start, which seeds the shadow.
//
// Two transports are provided: a network transport for serial bridges
// reachable over TCP, and a local transport that puts the controlling tty
// into raw mode via golang.org/x/term.
//
// Output methods do not return errors; a failed write latches a sticky
// error retrievable with Err, because a dropped link invalidates the whole
// session anyway and the session loop restarts from scratch. Input reads
// return errors directly.
package terminal
