package core

// Button identifies one of the directional inputs the game reacts to.
type Button int

const (
	ButtonUp Button = iota
	ButtonDown
	ButtonLeft
	ButtonRight
)

// AllButtons lists every button in a fixed order.
var AllButtons = []Button{ButtonUp, ButtonDown, ButtonLeft, ButtonRight}

// String returns a human-readable name for the button.
func (b Button) String() string {
	switch b {
	case ButtonUp:
		return "Up"
	case ButtonDown:
		return "Down"
	case ButtonLeft:
		return "Left"
	case ButtonRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// ButtonState is the pressed/released state carried by an input event.
type ButtonState int

const (
	Released ButtonState = iota
	Pressed
)

// Event is a single button transition delivered to the game for one tick.
type Event struct {
	Button Button
	State  ButtonState
}

// Press builds a pressed event.
func Press(b Button) Event {
	return Event{Button: b, State: Pressed}
}

// Release builds a released event.
func Release(b Button) Event {
	return Event{Button: b, State: Released}
}

// Buttons latches the last known state of every button across ticks.
type Buttons struct {
	states map[Button]ButtonState
}

// NewButtons creates a latch with every button released.
func NewButtons() Buttons {
	return Buttons{
		states: make(map[Button]ButtonState),
	}
}

// Apply records each event in order; the last event for a button wins.
func (b *Buttons) Apply(events []Event) {
	if b.states == nil {
		b.states = make(map[Button]ButtonState)
	}
	for _, ev := range events {
		b.states[ev.Button] = ev.State
	}
}

// Pressed returns true if the button is currently held.
func (b Buttons) Pressed(btn Button) bool {
	if b.states == nil {
		return false
	}
	return b.states[btn] == Pressed
}

// Clear releases every button.
func (b *Buttons) Clear() {
	for k := range b.states {
		delete(b.states, k)
	}
}
