package core

import "testing"

func TestButtonsLastEventWins(t *testing.T) {
	b := NewButtons()

	b.Apply([]Event{Press(ButtonLeft), Release(ButtonLeft), Press(ButtonLeft)})
	if !b.Pressed(ButtonLeft) {
		t.Error("Left should be pressed after press/release/press")
	}

	b.Apply([]Event{Press(ButtonUp), Release(ButtonUp)})
	if b.Pressed(ButtonUp) {
		t.Error("Up should be released after press/release")
	}
}

func TestButtonsLatchAcrossTicks(t *testing.T) {
	b := NewButtons()
	b.Apply([]Event{Press(ButtonDown)})

	// No events on the next tick keeps the latched state
	b.Apply(nil)
	if !b.Pressed(ButtonDown) {
		t.Error("Down should stay pressed with no new events")
	}

	b.Apply([]Event{Release(ButtonDown)})
	if b.Pressed(ButtonDown) {
		t.Error("Down should be released")
	}
}

func TestButtonsZeroValue(t *testing.T) {
	var b Buttons
	if b.Pressed(ButtonRight) {
		t.Error("zero-value latch should report released")
	}
	b.Apply([]Event{Press(ButtonRight)})
	if !b.Pressed(ButtonRight) {
		t.Error("zero-value latch should accept events")
	}
	b.Clear()
	if b.Pressed(ButtonRight) {
		t.Error("Clear should release all buttons")
	}
}

func TestButtonString(t *testing.T) {
	tests := []struct {
		b    Button
		want string
	}{
		{ButtonUp, "Up"},
		{ButtonDown, "Down"},
		{ButtonLeft, "Left"},
		{ButtonRight, "Right"},
		{Button(99), "Unknown"},
	}
	for _, tc := range tests {
		if got := tc.b.String(); got != tc.want {
			t.Errorf("Button(%d).String() = %q, expected %q", tc.b, got, tc.want)
		}
	}
}
