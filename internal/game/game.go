// Package game implements the asteroid-dodging simulation.
// The player moves a block around the bottom of the field while hazards
// fall from the top. Heal pickups restore a life and shield pickups wipe
// the field and pause hazard spawning for a grace period.
package game

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Phase is the simulation state.
type Phase int

const (
	PhaseActive   Phase = iota // Lives remain, hazards spawn
	PhaseResting               // Lives remain, hazard spawning suspended until the rest deadline
	PhaseGameOver              // No lives left; terminal
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseActive:
		return "active"
	case PhaseResting:
		return "resting"
	case PhaseGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Game implements the asteroids game logic. It is owned by a single tick
// goroutine.
type Game struct {
	cfg        config.GameConfig
	space      core.Space
	spawner    *Spawner
	cues       CueSink
	tickRate   int
	background core.Color
	tick       uint32
	lives      uint8
	phase      Phase
	restUntil  uint32 // Meaningful only in PhaseResting
	buttons    core.Buttons
	player     Actor
	hazards    Actors
	heals      Actors
	shields    Actors
	title      string
}

// New creates a game for the given configuration. Cues go to sink; a nil
// sink discards them.
func New(cfg config.GameConfig, sink CueSink) *Game {
	if sink == nil {
		sink = NopCues{}
	}
	g := &Game{
		cfg:   cfg,
		space: core.NewSpace(cfg.Display.Width, cfg.Display.Height),
		cues:  sink,
	}
	g.Reset(core.DefaultConfig())
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "asteroids"
}

// Space returns the play field coordinate space.
func (g *Game) Space() core.Space {
	return g.space
}

// Reset initializes or restarts the game.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.tickRate = rc.TickRate
	if g.tickRate <= 0 {
		g.tickRate = 60
	}
	g.background = g.cfg.Background.Color.Core()
	g.tick = 0
	g.lives = g.cfg.Player.Lives
	g.phase = PhaseActive
	g.restUntil = 0
	g.buttons = core.NewButtons()

	p := g.cfg.Player
	start := g.space.Clip(core.Coord{X: p.X, Y: g.space.H - p.BottomOffset})
	g.player = NewActor(BehaviorPlayer, core.NewRect(start.X, start.Y, p.Width, p.Height), 0, p.Color.Core())

	g.hazards = g.hazards[:0]
	g.heals = g.heals[:0]
	g.shields = g.shields[:0]

	if g.spawner == nil {
		g.spawner = NewSpawner(rc.Seed, g.space, &g.cfg)
	} else {
		g.spawner.Reset(rc.Seed)
	}
	g.title = g.activeTitle()
}

// Step advances the game by one tick with the input events received since
// the previous tick.
func (g *Game) Step(events []core.Event) core.StepResult {
	if g.lives == 0 {
		if g.phase != PhaseGameOver {
			g.phase = PhaseGameOver
			g.cues.Play(CueGameOver)
		}
		g.title = g.overTitle()
		return g.result()
	}

	if g.tick < math.MaxUint32 {
		g.tick++
	}

	// Spawning for this tick follows the rest state resolved here, even if
	// a shield is collected later in the same tick.
	if g.phase == PhaseResting && g.tick >= g.restUntil {
		g.phase = PhaseActive
		g.restUntil = 0
	}
	resting := g.phase == PhaseResting

	g.buttons.Apply(events)
	g.movePlayer()

	g.collectHeals()
	g.collectShields()
	g.advanceHazards()

	if heal, ok := g.spawner.Heal(g.tick); ok {
		g.heals = append(g.heals, heal)
	}
	if shield, ok := g.spawner.Shield(g.tick); ok {
		g.shields = append(g.shields, shield)
	}
	if !resting && g.hazards.Alive() < g.cfg.Hazards.HazardTarget(g.tick) {
		g.hazards = append(g.hazards, g.spawner.Hazard())
	}

	g.hazards = g.hazards.Sweep(g.space)
	g.heals = g.heals.Sweep(g.space)
	g.shields = g.shields.Sweep(g.space)

	g.title = g.activeTitle()
	return g.result()
}

// movePlayer applies held directions, saturating at the screen edges.
func (g *Game) movePlayer() {
	step := g.cfg.Player.Step
	c := &g.player.Shape.Center
	if g.buttons.Pressed(core.ButtonDown) {
		c.Y = g.space.ShiftY(c.Y, step)
	}
	if g.buttons.Pressed(core.ButtonUp) {
		c.Y = g.space.ShiftY(c.Y, -step)
	}
	if g.buttons.Pressed(core.ButtonLeft) {
		c.X = g.space.ShiftX(c.X, -step)
	}
	if g.buttons.Pressed(core.ButtonRight) {
		c.X = g.space.ShiftX(c.X, step)
	}
}

func (g *Game) collectHeals() {
	for i := range g.heals {
		h := &g.heals[i]
		if !h.Alive || !g.space.Overlaps(h.Shape, g.player.Shape) {
			continue
		}
		g.lives = core.SatAddU8(g.lives, 1)
		h.Alive = false
		g.cues.Play(CueHeal)
	}
}

func (g *Game) collectShields() {
	for i := range g.shields {
		s := &g.shields[i]
		if !s.Alive || !g.space.Overlaps(s.Shape, g.player.Shape) {
			continue
		}
		g.hazards.KillAll()
		g.restUntil = satAddU32(g.tick, g.cfg.Shield.GraceTicks)
		g.phase = PhaseResting
		s.Alive = false
		g.cues.Play(CueShield)
	}
}

// advanceHazards moves every live hazard toward the player and resolves hits.
func (g *Game) advanceHazards() {
	for i := range g.hazards {
		h := &g.hazards[i]
		if !h.Alive {
			continue
		}
		h.Fall(g.space)

		if g.space.Overlaps(h.Shape, g.player.Shape) {
			g.cues.Play(CueHit)
			g.background = g.background.Darken(g.cfg.Background.DarkenStep)
			h.Alive = false
			g.lives = core.SatSubU8(g.lives, 1)
		}
	}
}

// Render draws the current game state into dst, overwriting every cell.
// Later layers win on overlap: player, hazards, heal pickups, shields.
func (g *Game) Render(dst *core.Screen) {
	dst.Fill(g.background)
	dst.DrawRect(g.player.Shape, g.player.Color)

	for _, layer := range []Actors{g.hazards, g.heals, g.shields} {
		for _, a := range layer {
			if a.Alive {
				dst.DrawRect(a.Shape, a.Color)
			}
		}
	}
}

// Title returns the display title for the current tick.
func (g *Game) Title() string {
	return g.title
}

func (g *Game) score() int {
	return int(g.tick) / g.tickRate
}

func (g *Game) activeTitle() string {
	return fmt.Sprintf("Asteroids! Score:%d Lives:%d", g.score(), g.lives)
}

func (g *Game) overTitle() string {
	return fmt.Sprintf("Game over! Score:%d ", g.score())
}

// Phase returns the current simulation phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Lives returns the remaining lives.
func (g *Game) Lives() uint8 {
	return g.lives
}

// Tick returns the number of ticks advanced.
func (g *Game) Tick() uint32 {
	return g.tick
}

// Background returns the current background tint.
func (g *Game) Background() core.Color {
	return g.background
}

// Player returns a copy of the player actor.
func (g *Game) Player() Actor {
	return g.player
}

// Hazards returns the live hazard count.
func (g *Game) Hazards() int {
	return g.hazards.Alive()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score(),
		Lives:    int(g.lives),
		Tick:     g.tick,
		Resting:  g.phase == PhaseResting,
		GameOver: g.phase == PhaseGameOver,
	}
}

func (g *Game) result() core.StepResult {
	return core.StepResult{State: g.State(), Title: g.title}
}

func satAddU32(a, b uint32) uint32 {
	if a > math.MaxUint32-b {
		return math.MaxUint32
	}
	return a + b
}
