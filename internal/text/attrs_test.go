package text

import (
	"testing"

	"github.com/muurk/fedivt/internal/terminal"
)

// applyCommands mimics what the device does with an attribute sequence.
func applyCommands(state ControlCodes, cmds []terminal.Command) ControlCodes {
	for _, cmd := range cmds {
		switch cmd {
		case terminal.SetNormal:
			state = ControlCodes{}
		case terminal.SetBold:
			state.Bold = true
		case terminal.SetUnderline:
			state.Underline = true
		case terminal.SetReverse:
			state.Reverse = true
		}
	}
	return state
}

func allControlCodes() []ControlCodes {
	var all []ControlCodes
	for _, b := range []bool{false, true} {
		for _, u := range []bool{false, true} {
			for _, r := range []bool{false, true} {
				all = append(all, ControlCodes{Bold: b, Underline: u, Reverse: r})
			}
		}
	}
	return all
}

func TestCodesFromAllTransitions(t *testing.T) {
	// Every one of the 64 state transitions must land the device in the
	// target state, and must not emit more than it needs.
	for _, prev := range allControlCodes() {
		for _, next := range allControlCodes() {
			cmds := next.CodesFrom(prev)
			got := applyCommands(prev, cmds)
			if got != next {
				t.Errorf("Transition %+v -> %+v: commands %v landed on %+v", prev, next, cmds, got)
			}

			disables := (prev.Bold && !next.Bold) ||
				(prev.Underline && !next.Underline) ||
				(prev.Reverse && !next.Reverse)
			if !disables {
				for _, cmd := range cmds {
					if cmd == terminal.SetNormal {
						t.Errorf("Transition %+v -> %+v emitted an unnecessary reset", prev, next)
					}
				}
			}
		}
	}
}

func TestCodesFromNoChange(t *testing.T) {
	for _, state := range allControlCodes() {
		if cmds := state.CodesFrom(state); len(cmds) != 0 {
			t.Errorf("Expected no commands for unchanged state %+v, got %v", state, cmds)
		}
	}
}

func TestCodesFromSingleEnable(t *testing.T) {
	cmds := ControlCodes{Bold: true}.CodesFrom(ControlCodes{})
	if len(cmds) != 1 || cmds[0] != terminal.SetBold {
		t.Errorf("Expected [SetBold], got %v", cmds)
	}
}

func TestCodesFromDisableResets(t *testing.T) {
	// Dropping one flag while keeping another forces a reset plus a
	// re-enable for the survivor.
	cmds := ControlCodes{Underline: true}.CodesFrom(ControlCodes{Bold: true, Underline: true})
	if len(cmds) != 2 || cmds[0] != terminal.SetNormal || cmds[1] != terminal.SetUnderline {
		t.Errorf("Expected [SetNormal, SetUnderline], got %v", cmds)
	}
}
