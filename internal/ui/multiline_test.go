package ui

import (
	"strings"
	"testing"

	"github.com/muurk/fedivt/internal/terminal"
)

func typeString(box *MultiLineInputBox, s string) {
	for _, ch := range s {
		box.ProcessInput(terminal.Input(ch))
	}
}

func TestMultiLineWrapAndCursor(t *testing.T) {
	r, rec := newTestRenderer(24, 80)
	box := NewMultiLineInputBox(r, "", 2, 2, 6, 4)

	typeString(box, "hello world")
	if box.Text() != "hello world" {
		t.Fatalf("Expected full text, got %q", box.Text())
	}

	lines := box.Lines()
	if len(lines) != 4 {
		t.Fatalf("Expected 4 padded rows, got %d", len(lines))
	}
	if !strings.HasPrefix(lines[0].Text, "hello") {
		t.Errorf("Expected first wrapped row hello, got %q", lines[0].Text)
	}
	if !strings.HasPrefix(lines[1].Text, "world") {
		t.Errorf("Expected second wrapped row world, got %q", lines[1].Text)
	}
	for i, line := range lines {
		if got := len([]rune(line.Text)); got != 6 {
			t.Errorf("Expected row %d padded to 6 runes, got %d", i, got)
		}
		for j := range line.Codes {
			if !line.Codes[j].Reverse {
				t.Fatalf("Expected reverse video across row %d", i)
			}
		}
	}

	// The cursor follows the wrap onto the second display row.
	if row, col := rec.FetchCursor(); row != 3 || col != 7 {
		t.Errorf("Expected cursor at (3,7), got (%d,%d)", row, col)
	}
}

func TestMultiLineEnterTypesNewline(t *testing.T) {
	r, _ := newTestRenderer(24, 80)
	box := NewMultiLineInputBox(r, "", 2, 2, 10, 4)

	typeString(box, "one")
	box.ProcessInput(terminal.KeyEnter)
	typeString(box, "two")

	if box.Text() != "one\ntwo" {
		t.Errorf("Expected newline in the text, got %q", box.Text())
	}
	if !strings.HasPrefix(box.Lines()[1].Text, "two") {
		t.Errorf("Expected the second row to start with two, got %q", box.Lines()[1].Text)
	}
}

func TestMultiLineCursorMovement(t *testing.T) {
	r, rec := newTestRenderer(24, 80)
	box := NewMultiLineInputBox(r, "", 2, 2, 6, 4)
	typeString(box, "hello world")

	// Left steps back through the wrapped text onto the second row.
	for i := 0; i < 3; i++ {
		box.ProcessInput(terminal.KeyLeft)
	}
	if box.cursor != 8 {
		t.Errorf("Expected cursor at text position 8, got %d", box.cursor)
	}
	if row, col := rec.FetchCursor(); row != 3 || col != 4 {
		t.Errorf("Expected cursor at (3,4), got (%d,%d)", row, col)
	}

	// Up moves to the same column on the row above.
	box.ProcessInput(terminal.KeyUp)
	if box.cursor != 2 {
		t.Errorf("Expected cursor at text position 2 after up, got %d", box.cursor)
	}

	box.ProcessInput(terminal.KeyDown)
	if box.cursor != 8 {
		t.Errorf("Expected cursor back at position 8 after down, got %d", box.cursor)
	}
}

func TestMultiLineMidWordWrapSkipsVirtualCell(t *testing.T) {
	r, _ := newTestRenderer(24, 80)
	box := NewMultiLineInputBox(r, "", 2, 2, 6, 4)
	typeString(box, "abcdefg")

	// Wrapped mid-word: the display newline has no backing position, so
	// a single left from after 'f' lands before 'f'.
	displayText, _, positions := box.layout()
	if displayText != "abcde\nfg" {
		t.Fatalf("Expected mid-word wrap, got %q", displayText)
	}
	virtuals := 0
	for _, pos := range positions {
		if pos == virtualPosition {
			virtuals++
		}
	}
	if virtuals != 1 {
		t.Fatalf("Expected exactly one virtual cell, got %d", virtuals)
	}

	box.ProcessInput(terminal.KeyLeft)
	box.ProcessInput(terminal.KeyLeft)
	if box.cursor != 5 {
		t.Errorf("Expected two lefts to skip the virtual cell to position 5, got %d", box.cursor)
	}

	box.ProcessInput(terminal.KeyRight)
	if box.cursor != 6 {
		t.Errorf("Expected right to skip the virtual cell to position 6, got %d", box.cursor)
	}
}

func TestMultiLineBackspace(t *testing.T) {
	r, _ := newTestRenderer(24, 80)
	box := NewMultiLineInputBox(r, "", 2, 2, 10, 4)
	typeString(box, "abc")

	box.ProcessInput(terminal.KeyBackspace)
	if box.Text() != "ab" {
		t.Errorf("Expected ab after backspace at end, got %q", box.Text())
	}

	box.ProcessInput(terminal.KeyLeft)
	box.ProcessInput(terminal.KeyLeft)
	box.ProcessInput(terminal.KeyBackspace)
	if box.Text() != "ab" {
		t.Errorf("Expected backspace at the start to do nothing, got %q", box.Text())
	}

	box.ProcessInput(terminal.KeyRight)
	box.ProcessInput(terminal.KeyBackspace)
	if box.Text() != "b" {
		t.Errorf("Expected mid-string erase to give b, got %q", box.Text())
	}
}

func TestMultiLineRepaintsOnlyChangedSpan(t *testing.T) {
	r, rec := newTestRenderer(24, 80)
	box := NewMultiLineInputBox(r, "", 2, 2, 20, 4)
	typeString(box, "steady text")
	rec.ClearOps()

	box.ProcessInput(terminal.Input("s"))

	// Appending one character repaints only the first row's tail, not
	// the whole box.
	for _, row := range moveRows(rec) {
		if row != 2 {
			t.Errorf("Expected repaints confined to row 2, saw row %d", row)
		}
	}
	payload := rec.TextPayload()
	if strings.Contains(payload, "steady text") {
		t.Errorf("Expected only the changed span repainted, got %q", payload)
	}
	if !strings.Contains(payload, "s") {
		t.Errorf("Expected the typed character painted, got %q", payload)
	}
}
