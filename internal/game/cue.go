package game

import "fmt"

// Cue is a discrete sound event raised by the simulation.
type Cue int

const (
	CueHit Cue = iota
	CueHeal
	CueShield
	CueGameOver
)

// String returns the cue name used in configuration.
func (c Cue) String() string {
	switch c {
	case CueHit:
		return "hit"
	case CueHeal:
		return "heal"
	case CueShield:
		return "shield"
	case CueGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Cues lists every cue.
var Cues = []Cue{CueHit, CueHeal, CueShield, CueGameOver}

// ParseCue maps a configuration name to a cue.
func ParseCue(name string) (Cue, error) {
	for _, c := range Cues {
		if c.String() == name {
			return c, nil
		}
	}
	return 0, fmt.Errorf("game: unknown cue %q", name)
}

// CueSink receives cues from the tick goroutine. Implementations must not
// block.
type CueSink interface {
	Play(c Cue)
}

// NopCues discards every cue.
type NopCues struct{}

// Play implements CueSink.
func (NopCues) Play(Cue) {}
