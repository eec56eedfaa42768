package game

import (
	"math/rand"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Spawner decides when new hazards and pickups appear and builds them.
type Spawner struct {
	rng   *rand.Rand
	space core.Space
	cfg   *config.GameConfig
}

// NewSpawner creates a spawner with the given RNG seed.
func NewSpawner(seed int64, space core.Space, cfg *config.GameConfig) *Spawner {
	return &Spawner{
		rng:   rand.New(rand.NewSource(seed)),
		space: space,
		cfg:   cfg,
	}
}

// Reset reseeds the RNG.
func (s *Spawner) Reset(seed int64) {
	s.rng = rand.New(rand.NewSource(seed))
}

// between returns a value in [lo, hi).
func (s *Spawner) between(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.Intn(hi-lo)
}

// anywhere returns a uniformly random on-screen coordinate.
func (s *Spawner) anywhere() core.Coord {
	return core.Coord{X: s.rng.Intn(s.space.W), Y: s.rng.Intn(s.space.H)}
}

// Heal returns a new heal pickup when tick lands on a period rolled fresh
// for every check. A period below 1 disables heal pickups.
func (s *Spawner) Heal(tick uint32) (Actor, bool) {
	h := s.cfg.Heal
	period := s.between(h.MinPeriod, h.MaxPeriod)
	if period < 1 || tick%uint32(period) != 0 {
		return Actor{}, false
	}
	at := s.anywhere()
	return NewActor(BehaviorHeal, core.NewRect(at.X, at.Y, h.Width, h.Height), 0, h.Color.Core()), true
}

// Shield returns a new shield pickup every Period ticks, or never when
// Period is below 1.
func (s *Spawner) Shield(tick uint32) (Actor, bool) {
	sh := s.cfg.Shield
	if sh.Period < 1 || tick%uint32(sh.Period) != 0 {
		return Actor{}, false
	}
	at := s.anywhere()
	return NewActor(BehaviorShield, core.NewRect(at.X, at.Y, sh.Width, sh.Height), 0, sh.Color.Core()), true
}

// Hazard returns a new hazard on the top edge with a random column, speed
// and color.
func (s *Spawner) Hazard() Actor {
	hz := s.cfg.Hazards
	x := s.rng.Intn(s.space.W)
	speed := s.between(hz.MinSpeed, hz.MaxSpeed)
	color := core.RGB(uint8(s.rng.Intn(256)), uint8(s.rng.Intn(256)), 0)
	return NewActor(BehaviorDamage, core.NewRect(x, 0, hz.Width, hz.Height), speed, color)
}
