package game

import "github.com/vovakirdan/tui-asteroids/internal/core"

// Behavior is what an actor does to the player on contact.
type Behavior int

const (
	BehaviorPlayer Behavior = iota
	BehaviorDamage          // Hazard: costs a life
	BehaviorHeal            // Heal pickup: grants a life
	BehaviorShield          // Shield pickup: clears hazards and opens a rest window
)

// String returns a human-readable name for the behavior.
func (b Behavior) String() string {
	switch b {
	case BehaviorPlayer:
		return "player"
	case BehaviorDamage:
		return "hazard"
	case BehaviorHeal:
		return "heal"
	case BehaviorShield:
		return "shield"
	default:
		return "unknown"
	}
}

// Actor is any rectangle on the play field: the player, a hazard or a pickup.
type Actor struct {
	Shape    core.Rect
	Speed    int // Cells moved down per tick
	Color    core.Color
	Alive    bool
	Behavior Behavior
}

// NewActor creates a live actor.
func NewActor(b Behavior, shape core.Rect, speed int, color core.Color) Actor {
	return Actor{
		Shape:    shape,
		Speed:    speed,
		Color:    color,
		Alive:    true,
		Behavior: b,
	}
}

// Fall moves the actor down by its speed, saturating at the bottom edge.
func (a *Actor) Fall(space core.Space) {
	a.Shape.Center.Y = space.ShiftY(a.Shape.Center.Y, a.Speed)
}

// Offscreen reports whether the actor has drifted onto the bottom edge.
func (a Actor) Offscreen(space core.Space) bool {
	return a.Shape.Center.Y >= space.MaxY()
}

// Actors is one collection of non-player actors sharing a behavior.
type Actors []Actor

// Alive returns the number of live actors.
func (as Actors) Alive() int {
	n := 0
	for i := range as {
		if as[i].Alive {
			n++
		}
	}
	return n
}

// KillAll marks every actor dead.
func (as Actors) KillAll() {
	for i := range as {
		as[i].Alive = false
	}
}

// Sweep removes dead and offscreen actors in place, keeping order.
func (as Actors) Sweep(space core.Space) Actors {
	kept := as[:0]
	for _, a := range as {
		if a.Alive && !a.Offscreen(space) {
			kept = append(kept, a)
		}
	}
	// Drop references held past the new length
	for i := len(kept); i < len(as); i++ {
		as[i] = Actor{}
	}
	return kept
}
