package synth

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/game"
)

// CueSound is the voice played for one game cue.
type CueSound struct {
	Wave     Waveform
	Duration time.Duration
	Volume   float64
}

// CueTable maps game cues to sounds. Cues without an entry are silent.
type CueTable map[game.Cue]CueSound

// NewCueTable builds a table from the audio.cues configuration.
func NewCueTable(cfg config.AudioConfig) (CueTable, error) {
	table := make(CueTable, len(game.Cues))
	for _, cue := range game.Cues {
		c, ok := cfg.Cues[cue.String()]
		if !ok {
			continue
		}
		wave, err := ParseWaveform(c.Wave)
		if err != nil {
			return nil, fmt.Errorf("synth: cue %s: %w", cue, err)
		}
		if c.Duration < 0 {
			return nil, fmt.Errorf("synth: cue %s: negative duration %s", cue, c.Duration)
		}
		table[cue] = CueSound{Wave: wave, Duration: c.Duration, Volume: c.Volume}
	}
	return table, nil
}

// CuePlayer turns game cues into engine voices. It implements game.CueSink.
type CuePlayer struct {
	engine *Engine
	table  CueTable
}

// NewCuePlayer creates a player feeding e.
func NewCuePlayer(e *Engine, table CueTable) *CuePlayer {
	return &CuePlayer{engine: e, table: table}
}

// Play enqueues the sound for c.
func (p *CuePlayer) Play(c game.Cue) {
	s, ok := p.table[c]
	if !ok {
		return
	}
	p.engine.Enqueue(s.Duration, s.Volume, s.Wave)
}

// Engine returns the engine cues are sent to.
func (p *CuePlayer) Engine() *Engine {
	return p.engine
}
