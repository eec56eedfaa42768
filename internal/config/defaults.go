package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/asteroids.yaml
var defaultAsteroidsYAML []byte

// DefaultGameConfig returns the hardcoded default configuration.
// It mirrors defaults/asteroids.yaml and is used when the embedded file
// cannot be parsed.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Display: DisplayConfig{
			Width:  256,
			Height: 256,
		},
		Player: PlayerConfig{
			X:            127,
			BottomOffset: 5,
			Width:        10,
			Height:       10,
			Step:         3,
			Lives:        8,
			Color:        RGB{R: 255, G: 0, B: 125},
		},
		Background: BackgroundConfig{
			Color:      RGB{R: 255, G: 255, B: 255},
			DarkenStep: 10,
		},
		Hazards: HazardConfig{
			Width:         4,
			Height:        4,
			MinSpeed:      1,
			MaxSpeed:      5,
			BaseCount:     8,
			GrowthDivisor: 700,
			MaxCount:      64,
		},
		Heal: HealConfig{
			Width:     16,
			Height:    4,
			Color:     RGB{R: 165, G: 83, B: 19},
			MinPeriod: 1000,
			MaxPeriod: 1200,
		},
		Shield: ShieldConfig{
			Width:      17,
			Height:     17,
			Color:      RGB{R: 104, G: 255, B: 252},
			Period:     1200,
			GraceTicks: 180,
		},
		Audio: AudioConfig{
			Enabled:      true,
			SampleRate:   44100,
			CarrierFreq:  440,
			MasterVolume: 1.0,
			Buffer:       100 * time.Millisecond,
			MaxVoices:    0,
			Cues: map[string]CueConfig{
				CueHit:      {Wave: "noise", Duration: 200 * time.Millisecond, Volume: 0.5},
				CueHeal:     {Wave: "sine", Duration: 300 * time.Millisecond, Volume: 0.5},
				CueShield:   {Wave: "square", Duration: 500 * time.Millisecond, Volume: 0.4},
				CueGameOver: {Wave: "sawtooth", Duration: time.Second, Volume: 0.5},
			},
		},
		Input: InputConfig{
			ReleaseAfter: 250 * time.Millisecond,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultAsteroidsYAML
}
