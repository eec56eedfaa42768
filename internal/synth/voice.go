package synth

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
)

// Waveform defines oscillator wave shapes.
type Waveform int

const (
	WaveSine Waveform = iota
	WaveSquare
	WaveSawtooth
	WaveNoise
)

// String returns the configuration name of the waveform.
func (w Waveform) String() string {
	switch w {
	case WaveSine:
		return "sine"
	case WaveSquare:
		return "square"
	case WaveSawtooth:
		return "sawtooth"
	case WaveNoise:
		return "noise"
	default:
		return "unknown"
	}
}

// ParseWaveform maps a configuration name to a waveform.
func ParseWaveform(name string) (Waveform, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "sine":
		return WaveSine, nil
	case "square":
		return WaveSquare, nil
	case "sawtooth", "saw":
		return WaveSawtooth, nil
	case "noise":
		return WaveNoise, nil
	default:
		return 0, fmt.Errorf("synth: unknown waveform %q", name)
	}
}

// Voice is one playing sound. It is audible while the engine clock is
// before Expiry (seconds).
type Voice struct {
	Wave   Waveform
	Volume float64
	Expiry float64
}

// sample returns the voice contribution at time t for carrier frequency
// freq.
//
// Square and noise ignore Volume, and noise only spans [-1, 0). Existing
// sound tuning depends on both.
func (v Voice) sample(t, freq float64, rng *rand.Rand) float64 {
	switch v.Wave {
	case WaveSine:
		return math.Sin(2*math.Pi*freq*t) * v.Volume
	case WaveSquare:
		if math.Sin(2*math.Pi*freq*t) >= 0 {
			return 0.5
		}
		return -0.5
	case WaveSawtooth:
		cycles := freq * t
		return (2*(cycles-math.Floor(cycles)) - 1) * v.Volume
	case WaveNoise:
		return rng.Float64() - 1
	default:
		return 0
	}
}
