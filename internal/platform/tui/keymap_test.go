package tui

import (
	"reflect"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

func TestKeyMapDirection(t *testing.T) {
	keys := DefaultKeyMap()
	tests := []struct {
		msg  tea.KeyMsg
		want core.Button
		ok   bool
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, core.ButtonUp, true},
		{tea.KeyMsg{Type: tea.KeyDown}, core.ButtonDown, true},
		{tea.KeyMsg{Type: tea.KeyLeft}, core.ButtonLeft, true},
		{tea.KeyMsg{Type: tea.KeyRight}, core.ButtonRight, true},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("w")}, core.ButtonUp, true},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")}, core.ButtonLeft, true},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("p")}, 0, false},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}, 0, false},
	}

	for _, tt := range tests {
		got, ok := keys.Direction(tt.msg)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("Direction(%q) = %v, %v; want %v, %v", tt.msg.String(), got, ok, tt.want, tt.ok)
		}
	}
}

func TestHoldTracker(t *testing.T) {
	t0 := time.Unix(1000, 0)
	h := NewHoldTracker(100 * time.Millisecond)

	// First press emits a press event, repeats do not.
	if got := h.Press(core.ButtonLeft, t0); !reflect.DeepEqual(got, []core.Event{core.Press(core.ButtonLeft)}) {
		t.Fatalf("first Press() = %v", got)
	}
	if got := h.Press(core.ButtonLeft, t0.Add(50*time.Millisecond)); got != nil {
		t.Errorf("repeat Press() = %v, want nil", got)
	}

	// A repeat extends the hold.
	if got := h.Expire(t0.Add(120 * time.Millisecond)); got != nil {
		t.Errorf("Expire() within window = %v, want nil", got)
	}
	if !h.Held(core.ButtonLeft) {
		t.Error("Left should still be held")
	}

	got := h.Expire(t0.Add(150 * time.Millisecond))
	if !reflect.DeepEqual(got, []core.Event{core.Release(core.ButtonLeft)}) {
		t.Errorf("Expire() after window = %v, want Left release", got)
	}
	if h.Held(core.ButtonLeft) {
		t.Error("Left should be released")
	}

	// Pressing again after release emits a new press.
	if got := h.Press(core.ButtonLeft, t0.Add(time.Second)); len(got) != 1 {
		t.Errorf("Press() after release = %v, want one event", got)
	}
}

func TestHoldTrackerReleaseAllOrder(t *testing.T) {
	t0 := time.Unix(1000, 0)
	h := NewHoldTracker(0)

	h.Press(core.ButtonRight, t0)
	h.Press(core.ButtonUp, t0)

	want := []core.Event{core.Release(core.ButtonUp), core.Release(core.ButtonRight)}
	if got := h.ReleaseAll(); !reflect.DeepEqual(got, want) {
		t.Errorf("ReleaseAll() = %v, want %v", got, want)
	}
	if got := h.ReleaseAll(); got != nil {
		t.Errorf("second ReleaseAll() = %v, want nil", got)
	}
}
