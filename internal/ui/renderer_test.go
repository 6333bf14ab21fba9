package ui

import (
	"strings"
	"testing"

	"github.com/muurk/fedivt/internal/terminal"
)

// stubComponent counts draws and answers a scripted action.
type stubComponent struct {
	draws  int
	action Action
}

func (s *stubComponent) Draw() { s.draws++ }

func (s *stubComponent) ProcessInput(input terminal.Input) Action {
	return s.action
}

func TestStatusSkipsIdenticalRepaint(t *testing.T) {
	r, rec := newTestRenderer(24, 80)

	r.Status("hello")
	if len(rec.Ops) == 0 {
		t.Fatal("Expected output for a new status")
	}

	rec.ClearOps()
	r.Status("hello")
	if len(rec.Ops) != 0 {
		t.Errorf("Expected identical status to cost zero bytes, got %v", rec.Ops)
	}

	r.Status("other")
	if len(rec.Ops) == 0 {
		t.Error("Expected output for a changed status")
	}
}

func TestStatusPaintsBottomRowReversed(t *testing.T) {
	r, rec := newTestRenderer(24, 80)
	rec.SetCursor(5, 7)

	old := r.Status("ready")
	if old != "" {
		t.Errorf("Expected previous status to be empty, got %q", old)
	}

	sawBottomMove := false
	for _, op := range rec.Ops {
		if op == "move(24,1)" {
			sawBottomMove = true
		}
	}
	if !sawBottomMove {
		t.Error("Expected the status bar on the device's last row")
	}
	if countOps(rec, "cmd(SetReverse)") == 0 {
		t.Error("Expected the status bar in reverse video")
	}
	if !strings.Contains(rec.TextPayload(), "ready") {
		t.Error("Expected the status text in the payload")
	}

	// The cursor returns to where the caller left it.
	if row, col := rec.FetchCursor(); row != 5 || col != 7 {
		t.Errorf("Expected cursor restored to (5,7), got (%d,%d)", row, col)
	}

	padded := rec.TextPayload()
	if len([]rune(padded)) != 80 {
		t.Errorf("Expected the status padded to 80 columns, got %d", len([]rune(padded)))
	}
}

func TestProcessInputOrderAndFallback(t *testing.T) {
	r, _ := newTestRenderer(24, 80)

	first := &stubComponent{action: nil}
	second := &stubComponent{action: NullAction{}}
	r.Replace([]Component{first, second})

	if action := r.ProcessInput("x"); action == nil {
		t.Error("Expected the second component to consume the input")
	}

	r.Replace([]Component{first})
	if action := r.ProcessInput("x"); action != nil {
		t.Errorf("Expected unhandled input to return nil, got %T", action)
	}

	if action := r.ProcessInput(terminal.KeyCtrlC); action == nil {
		t.Fatal("Expected Ctrl-C to produce an action")
	} else if _, ok := action.(ExitAction); !ok {
		t.Errorf("Expected ExitAction, got %T", action)
	}
}

func TestPushPopRedraws(t *testing.T) {
	r, _ := newTestRenderer(24, 80)

	base := &stubComponent{}
	r.Replace([]Component{base})
	if base.draws != 1 {
		t.Fatalf("Expected one draw on replace, got %d", base.draws)
	}

	overlay := &stubComponent{}
	r.Push([]Component{overlay})
	if overlay.draws != 1 {
		t.Errorf("Expected one draw on push, got %d", overlay.draws)
	}
	if base.draws != 1 {
		t.Errorf("Expected base untouched by push, got %d draws", base.draws)
	}

	r.Pop()
	if base.draws != 2 {
		t.Errorf("Expected a full redraw on pop, got %d draws", base.draws)
	}

	// Popping an empty stack is harmless.
	r.Pop()
	if base.draws != 2 {
		t.Errorf("Expected no redraw popping an empty stack, got %d draws", base.draws)
	}
}
