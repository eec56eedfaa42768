// Package config provides YAML-based game configuration loading and
// difficulty management for asteroids.
package config

import (
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// GameConfig contains all configuration for the game.
type GameConfig struct {
	Display    DisplayConfig    `yaml:"display"`
	Player     PlayerConfig     `yaml:"player"`
	Background BackgroundConfig `yaml:"background"`
	Hazards    HazardConfig     `yaml:"hazards"`
	Heal       HealConfig       `yaml:"heal"`
	Shield     ShieldConfig     `yaml:"shield"`
	Audio      AudioConfig      `yaml:"audio"`
	Input      InputConfig      `yaml:"input"`
}

// DisplayConfig defines the pixel extent of the play field.
type DisplayConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PlayerConfig defines the player shape and starting state.
type PlayerConfig struct {
	X            int   `yaml:"x"`
	BottomOffset int   `yaml:"bottom_offset"` // Start row measured from the display height
	Width        int   `yaml:"width"`
	Height       int   `yaml:"height"`
	Step         int   `yaml:"step"` // Cells moved per tick while a direction is held
	Lives        uint8 `yaml:"lives"`
	Color        RGB   `yaml:"color"`
}

// BackgroundConfig defines the background tint and how hits darken it.
type BackgroundConfig struct {
	Color      RGB   `yaml:"color"`
	DarkenStep uint8 `yaml:"darken_step"`
}

// HazardConfig defines falling hazards and their population growth.
type HazardConfig struct {
	Width         int `yaml:"width"`
	Height        int `yaml:"height"`
	MinSpeed      int `yaml:"min_speed"`
	MaxSpeed      int `yaml:"max_speed"` // Exclusive
	BaseCount     int `yaml:"base_count"`
	GrowthDivisor int `yaml:"growth_divisor"` // Ticks per extra hazard, 0 disables growth
	MaxCount      int `yaml:"max_count"`      // 0 means uncapped
}

// HealConfig defines heal pickups.
type HealConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	Color     RGB `yaml:"color"`
	MinPeriod int `yaml:"min_period"`
	MaxPeriod int `yaml:"max_period"` // Exclusive
}

// ShieldConfig defines shield pickups and the rest window they grant.
type ShieldConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Color      RGB    `yaml:"color"`
	Period     int    `yaml:"period"`
	GraceTicks uint32 `yaml:"grace_ticks"`
}

// AudioConfig defines the synthesizer and cue sounds.
type AudioConfig struct {
	Enabled      bool                 `yaml:"enabled"`
	SampleRate   int                  `yaml:"sample_rate"`
	CarrierFreq  float64              `yaml:"carrier_freq"`
	MasterVolume float64              `yaml:"master_volume"` // 0.0 to 1.0
	Buffer       time.Duration        `yaml:"buffer"`        // Output device buffer length
	MaxVoices    int                  `yaml:"max_voices"`    // 0 means unbounded
	Cues         map[string]CueConfig `yaml:"cues"`
}

// CueConfig defines the voice enqueued for one game cue.
type CueConfig struct {
	Wave     string        `yaml:"wave"` // sine, square, sawtooth, noise
	Duration time.Duration `yaml:"duration"`
	Volume   float64       `yaml:"volume"`
}

// InputConfig defines terminal input handling.
type InputConfig struct {
	// ReleaseAfter is how long a key counts as held after its last
	// press or repeat. Terminals report no key releases.
	ReleaseAfter time.Duration `yaml:"release_after"`
}

// RGB is a color written in YAML as "#rrggbb".
type RGB core.Color

// Core converts to the game color type.
func (c RGB) Core() core.Color {
	return core.Color(c)
}

// UnmarshalYAML parses a "#rrggbb" scalar.
func (c *RGB) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseRGB(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// MarshalYAML writes the color as "#rrggbb".
func (c RGB) MarshalYAML() (any, error) {
	return core.Color(c).Hex(), nil
}

// ParseRGB parses "#rrggbb" (the leading '#' is optional).
func ParseRGB(s string) (RGB, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return RGB{}, fmt.Errorf("config: invalid color %q", s)
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b); err != nil {
		return RGB{}, fmt.Errorf("config: invalid color %q: %w", s, err)
	}
	return RGB{R: r, G: g, B: b}, nil
}

// Cue names used in the audio.cues map.
const (
	CueHit      = "hit"
	CueHeal     = "heal"
	CueShield   = "shield"
	CueGameOver = "game_over"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. An empty name means normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(name)); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
