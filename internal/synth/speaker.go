package synth

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

// Speaker plays an Engine on the system audio device.
// Only one Speaker may be open per process.
type Speaker struct {
	volume *effects.Volume
	ctrl   *beep.Ctrl
	gain   float64
	muted  bool
}

// OpenSpeaker initializes the audio device with a buffer of the given
// length and starts pulling samples from e. masterVolume is a linear gain
// in [0, 1].
func OpenSpeaker(e *Engine, buffer time.Duration, masterVolume float64) (*Speaker, error) {
	if buffer <= 0 {
		buffer = 100 * time.Millisecond
	}
	sr := beep.SampleRate(e.SampleRate())
	if err := speaker.Init(sr, sr.N(buffer)); err != nil {
		return nil, fmt.Errorf("synth: cannot open audio device: %w", err)
	}

	s := newSpeaker(e, masterVolume)
	speaker.Play(s.ctrl)
	return s, nil
}

func newSpeaker(src beep.Streamer, gain float64) *Speaker {
	vol := &effects.Volume{
		Streamer: src,
		Base:     2,
	}
	s := &Speaker{
		volume: vol,
		ctrl:   &beep.Ctrl{Streamer: vol},
		gain:   clampGain(gain),
	}
	s.apply()
	return s
}

func clampGain(gain float64) float64 {
	return math.Max(0, math.Min(gain, 1))
}

// apply converts the linear gain to the exponent effects.Volume expects.
// Caller holds the speaker lock once playback has started.
func (s *Speaker) apply() {
	if s.muted || s.gain <= 0 {
		s.volume.Silent = true
		s.volume.Volume = 0
		return
	}
	s.volume.Silent = false
	s.volume.Volume = math.Log2(s.gain)
}

// SetVolume updates the master gain, clamped to [0, 1], and returns the
// gain in effect. A muted speaker stays muted.
func (s *Speaker) SetVolume(gain float64) float64 {
	speaker.Lock()
	defer speaker.Unlock()
	s.gain = clampGain(gain)
	s.apply()
	return s.gain
}

// Volume returns the master gain.
func (s *Speaker) Volume() float64 {
	speaker.Lock()
	defer speaker.Unlock()
	return s.gain
}

// ToggleMute flips muting and returns true if the speaker is now unmuted.
// Unmuting restores the master gain, so a zero gain stays silent.
func (s *Speaker) ToggleMute() bool {
	speaker.Lock()
	defer speaker.Unlock()
	s.muted = !s.muted
	s.apply()
	return !s.muted
}

// SetPaused stops or resumes pulling samples. The engine clock does not
// advance while paused.
func (s *Speaker) SetPaused(paused bool) {
	speaker.Lock()
	s.ctrl.Paused = paused
	speaker.Unlock()
}

// Close stops playback and releases the device.
func (s *Speaker) Close() {
	speaker.Clear()
	speaker.Close()
}
