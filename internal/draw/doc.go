// Package draw builds the styled line fragments the screens are composed
// from: box borders, overlay replacement for in-place widgets, and the
// account and boost attribution lines.
//
// Everything here produces text.Line values; nothing touches the device.
package draw
