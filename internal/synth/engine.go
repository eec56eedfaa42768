// Package synth is a small polyphonic synthesizer. The game enqueues short
// voices from its tick goroutine while the audio device pulls stereo
// sample buffers from another goroutine.
package synth

import (
	"math/rand"
	"sync"
	"time"
)

// Options configures an Engine.
type Options struct {
	SampleRate  int     // Samples per second
	CarrierFreq float64 // Oscillator frequency in Hz for periodic waveforms
	MaxVoices   int     // 0 means unbounded
	Seed        int64   // Noise RNG seed
}

// DefaultOptions returns 44.1 kHz, 440 Hz, unbounded voices.
func DefaultOptions() Options {
	return Options{
		SampleRate:  44100,
		CarrierFreq: 440,
	}
}

// Engine owns the active voices and the synthesis clock. All state sits
// behind one mutex so Enqueue and Synthesize may be called from different
// goroutines; neither calls the other while holding it.
type Engine struct {
	mu         sync.Mutex
	sampleRate int
	freq       float64
	maxVoices  int
	rng        *rand.Rand
	voices     []Voice
	clock      float64 // Seconds synthesized so far
	streamed   int64   // Samples handed out through Stream
	enqueued   uint64
	dropped    uint64
}

// NewEngine creates an engine with no voices and the clock at zero.
func NewEngine(opts Options) *Engine {
	if opts.SampleRate <= 0 {
		opts.SampleRate = DefaultOptions().SampleRate
	}
	return &Engine{
		sampleRate: opts.SampleRate,
		freq:       opts.CarrierFreq,
		maxVoices:  opts.MaxVoices,
		rng:        rand.New(rand.NewSource(opts.Seed)),
		voices:     make([]Voice, 0, 16),
	}
}

// SampleRate returns the engine sample rate.
func (e *Engine) SampleRate() int {
	return e.sampleRate
}

// Enqueue starts a voice that lasts d from the current clock.
// With a voice cap configured, voices beyond the cap are dropped.
func (e *Engine) Enqueue(d time.Duration, volume float64, w Waveform) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.maxVoices > 0 && len(e.voices) >= e.maxVoices {
		e.dropped++
		return
	}
	e.voices = append(e.voices, Voice{
		Wave:   w,
		Volume: volume,
		Expiry: e.clock + d.Seconds(),
	})
	e.enqueued++
}

// Synthesize fills out with stereo samples starting at sample index
// samplesPlayed. Start times earlier than the engine clock are moved up to
// the clock so time never runs backward.
func (e *Engine) Synthesize(samplesPlayed int64, out [][2]float64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.synthesize(samplesPlayed, out)
}

// synthesize requires e.mu.
func (e *Engine) synthesize(samplesPlayed int64, out [][2]float64) {
	rate := float64(e.sampleRate)
	start := float64(samplesPlayed) / rate
	if start < e.clock {
		start = e.clock
	}

	for i := range out {
		t := start + float64(i)/rate

		var mix float64
		for _, v := range e.voices {
			if v.Expiry > t {
				mix += v.sample(t, e.freq, e.rng)
			}
		}

		// Mono mix duplicated to both channels
		s := clip(mix)
		out[i] = [2]float64{s, s}
	}

	e.clock = start + float64(len(out))/rate

	live := e.voices[:0]
	for _, v := range e.voices {
		if v.Expiry > e.clock {
			live = append(live, v)
		}
	}
	e.voices = live
}

// clip hard-limits a sample to [-1, 1].
func clip(s float64) float64 {
	if s > 1 {
		return 1
	}
	if s < -1 {
		return -1
	}
	return s
}

// Stream implements beep.Streamer. Each call continues from where the
// previous one stopped. The stream never ends.
func (e *Engine) Stream(samples [][2]float64) (n int, ok bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.synthesize(e.streamed, samples)
	e.streamed += int64(len(samples))
	return len(samples), true
}

// Err implements beep.Streamer.
func (e *Engine) Err() error {
	return nil
}

// Clock returns the seconds synthesized so far.
func (e *Engine) Clock() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.clock
}

// Voices returns the number of voices not yet removed.
func (e *Engine) Voices() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.voices)
}

// Stats returns how many voices were accepted and dropped.
func (e *Engine) Stats() (enqueued, dropped uint64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.enqueued, e.dropped
}
