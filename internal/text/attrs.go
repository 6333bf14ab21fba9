package text

import "github.com/muurk/fedivt/internal/terminal"

// ControlCodes is the attribute state of one character cell: any
// combination of the three flags the device supports.
type ControlCodes struct {
	Bold      bool
	Underline bool
	Reverse   bool
}

// Line is one row of styled text. Text and Codes are parallel: the i-th
// code styles the i-th character.
type Line struct {
	Text  string
	Codes []ControlCodes
}

// CodesFrom returns the ordered operations that transform a device in
// attribute state prev into state c. The device has no way to turn off a
// single flag, so if c disables anything prev had enabled, the sequence is
// a full reset followed by re-enables for every flag c still needs.
// Otherwise only the newly enabled flags are emitted.
func (c ControlCodes) CodesFrom(prev ControlCodes) []terminal.Command {
	if (!c.Bold && prev.Bold) || (!c.Underline && prev.Underline) || (!c.Reverse && prev.Reverse) {
		resetcodes := []terminal.Command{terminal.SetNormal}

		if c.Bold {
			resetcodes = append(resetcodes, terminal.SetBold)
		}
		if c.Underline {
			resetcodes = append(resetcodes, terminal.SetUnderline)
		}
		if c.Reverse {
			resetcodes = append(resetcodes, terminal.SetReverse)
		}

		return resetcodes
	}

	var normalcodes []terminal.Command

	if !prev.Bold && c.Bold {
		normalcodes = append(normalcodes, terminal.SetBold)
	}
	if !prev.Underline && c.Underline {
		normalcodes = append(normalcodes, terminal.SetUnderline)
	}
	if !prev.Reverse && c.Reverse {
		normalcodes = append(normalcodes, terminal.SetReverse)
	}

	return normalcodes
}
