package ui

import (
	"strings"
	"testing"

	"github.com/muurk/fedivt/internal/terminal"
)

func TestFocusWrapperCycling(t *testing.T) {
	r, _ := newTestRenderer(24, 80)

	a := NewButton(r, "A", 2, 2, true)
	b := NewButton(r, "B", 2, 10, false)
	c := NewButton(r, "C", 2, 18, false)
	wrapper := NewFocusWrapper([]Focusable{a, b, c}, 0)

	wrapper.Next(true)
	wrapper.Next(true)
	if wrapper.Current != 2 {
		t.Fatalf("Expected focus on widget 2, got %d", wrapper.Current)
	}

	wrapper.Next(false)
	if wrapper.Current != 2 {
		t.Errorf("Expected focus pinned at the end without wrap, got %d", wrapper.Current)
	}
	wrapper.Next(true)
	if wrapper.Current != 0 {
		t.Errorf("Expected focus wrapped to 0, got %d", wrapper.Current)
	}

	wrapper.Previous(false)
	if wrapper.Current != 0 {
		t.Errorf("Expected focus pinned at the front without wrap, got %d", wrapper.Current)
	}
	wrapper.Previous(true)
	if wrapper.Current != 2 {
		t.Errorf("Expected focus wrapped to the end, got %d", wrapper.Current)
	}
}

func TestButtonFocusRepaint(t *testing.T) {
	r, rec := newTestRenderer(24, 80)
	button := NewButton(r, "Post", 5, 10, false)
	button.Draw()
	rec.ClearOps()

	button.ProcessInput(FocusInput)
	if !strings.Contains(rec.TextPayload(), "Post") {
		t.Error("Expected the caption repainted on focus")
	}
	if row, col := rec.FetchCursor(); row != 6 || col != 11 {
		t.Errorf("Expected cursor parked at (6,11), got (%d,%d)", row, col)
	}

	// Focusing an already focused button repaints nothing.
	rec.ClearOps()
	button.ProcessInput(FocusInput)
	if strings.Contains(rec.TextPayload(), "Post") {
		t.Error("Expected no caption repaint when focus is unchanged")
	}

	if action := button.ProcessInput("x"); action != nil {
		t.Errorf("Expected buttons to ignore plain input, got %T", action)
	}
}

func TestHorizontalSelect(t *testing.T) {
	r, rec := newTestRenderer(24, 80)
	sel := NewHorizontalSelect(r, []string{"one", "two", "three"}, 5, 10, 20, "two")

	if sel.Selected() != "two" {
		t.Fatalf("Expected initial selection two, got %q", sel.Selected())
	}

	sel.ProcessInput(terminal.KeyRight)
	if sel.Selected() != "three" {
		t.Errorf("Expected three after right, got %q", sel.Selected())
	}

	// At the last choice, right is a no-op.
	rec.ClearOps()
	sel.ProcessInput(terminal.KeyRight)
	if sel.Selected() != "three" {
		t.Errorf("Expected selection pinned at the end, got %q", sel.Selected())
	}
	if len(rec.Ops) != 0 {
		t.Errorf("Expected no repaint at the boundary, got %v", rec.Ops)
	}

	sel.ProcessInput(terminal.KeyLeft)
	sel.ProcessInput(terminal.KeyLeft)
	if sel.Selected() != "one" {
		t.Errorf("Expected one after two lefts, got %q", sel.Selected())
	}

	lines := sel.Lines()
	if !strings.Contains(lines[1].Text, "one") {
		t.Errorf("Expected the selection centered in the middle row, got %q", lines[1].Text)
	}
}

func TestOneLineInputBox(t *testing.T) {
	r, _ := newTestRenderer(24, 80)

	t.Run("TypingAndEditing", func(t *testing.T) {
		box := NewOneLineInputBox(r, "", 5, 10, 10, false)
		for _, ch := range "abc" {
			box.ProcessInput(terminal.Input(ch))
		}
		if box.Text() != "abc" {
			t.Fatalf("Expected abc, got %q", box.Text())
		}

		box.ProcessInput(terminal.KeyLeft)
		box.ProcessInput(terminal.KeyBackspace)
		if box.Text() != "ac" {
			t.Errorf("Expected mid-string erase to give ac, got %q", box.Text())
		}

		box.ProcessInput(terminal.KeyRight)
		box.ProcessInput(terminal.KeyDelete)
		if box.Text() != "a" {
			t.Errorf("Expected end erase to give a, got %q", box.Text())
		}
	})

	t.Run("LengthLimit", func(t *testing.T) {
		box := NewOneLineInputBox(r, "", 5, 10, 4, false)
		for _, ch := range "wxyz" {
			box.ProcessInput(terminal.Input(ch))
		}
		if box.Text() != "wxy" {
			t.Errorf("Expected input capped at length-1, got %q", box.Text())
		}
	})

	t.Run("Obfuscation", func(t *testing.T) {
		box := NewOneLineInputBox(r, "hunter2", 5, 10, 10, true)
		line := box.Lines()[0]
		if strings.Contains(line.Text, "hunter2") {
			t.Error("Expected the password hidden")
		}
		if !strings.Contains(line.Text, "*******") {
			t.Errorf("Expected asterisks, got %q", line.Text)
		}
		for i := range line.Codes {
			if !line.Codes[i].Reverse {
				t.Fatalf("Expected reverse video across the input, cell %d is not", i)
			}
		}
	})

	t.Run("ControlInputFallsThrough", func(t *testing.T) {
		box := NewOneLineInputBox(r, "", 5, 10, 10, false)
		if action := box.ProcessInput(terminal.KeyEnter); action != nil {
			t.Errorf("Expected enter to fall through, got %T", action)
		}
	})
}
