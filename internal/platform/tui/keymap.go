package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// KeyMap defines the in-game key bindings.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Pause      key.Binding
	Restart    key.Binding
	Mute       key.Binding
	VolumeUp   key.Binding
	VolumeDown key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Pause, k.Mute, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Pause, k.Restart, k.Mute, k.VolumeUp, k.VolumeDown, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Mute: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "mute"),
		),
		VolumeUp: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "louder"),
		),
		VolumeDown: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "quieter"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Direction maps a key message to a movement button.
func (k KeyMap) Direction(msg tea.KeyMsg) (core.Button, bool) {
	switch {
	case key.Matches(msg, k.Up):
		return core.ButtonUp, true
	case key.Matches(msg, k.Down):
		return core.ButtonDown, true
	case key.Matches(msg, k.Left):
		return core.ButtonLeft, true
	case key.Matches(msg, k.Right):
		return core.ButtonRight, true
	}
	return 0, false
}

// HoldTracker turns terminal key presses into press and release events.
// Terminals only report presses, repeated while a key is held, so a
// button is released once no repeat has arrived for the hold window.
type HoldTracker struct {
	window   time.Duration
	lastSeen map[core.Button]time.Time
}

// NewHoldTracker creates a tracker with the given hold window.
func NewHoldTracker(window time.Duration) *HoldTracker {
	if window <= 0 {
		window = 250 * time.Millisecond
	}
	return &HoldTracker{
		window:   window,
		lastSeen: make(map[core.Button]time.Time, 4),
	}
}

// Press records a key press at now. It returns a press event when the
// button was not already held.
func (h *HoldTracker) Press(b core.Button, now time.Time) []core.Event {
	_, held := h.lastSeen[b]
	h.lastSeen[b] = now
	if held {
		return nil
	}
	return []core.Event{core.Press(b)}
}

// Expire returns release events for buttons not repeated within the window.
func (h *HoldTracker) Expire(now time.Time) []core.Event {
	var events []core.Event
	// Fixed order keeps event lists deterministic.
	for _, b := range core.AllButtons {
		seen, held := h.lastSeen[b]
		if held && now.Sub(seen) >= h.window {
			delete(h.lastSeen, b)
			events = append(events, core.Release(b))
		}
	}
	return events
}

// ReleaseAll releases every held button.
func (h *HoldTracker) ReleaseAll() []core.Event {
	var events []core.Event
	for _, b := range core.AllButtons {
		if _, held := h.lastSeen[b]; held {
			events = append(events, core.Release(b))
		}
	}
	clear(h.lastSeen)
	return events
}

// Held reports whether b is currently held.
func (h *HoldTracker) Held(b core.Button) bool {
	_, ok := h.lastSeen[b]
	return ok
}
