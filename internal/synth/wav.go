package synth

import (
	"fmt"
	"io"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"
)

// RenderWAV writes length of e's output as 16-bit stereo WAV.
func RenderWAV(w io.WriteSeeker, e *Engine, length time.Duration) error {
	sr := beep.SampleRate(e.SampleRate())
	format := beep.Format{
		SampleRate:  sr,
		NumChannels: 2,
		Precision:   2,
	}
	if err := wav.Encode(w, beep.Take(sr.N(length), e), format); err != nil {
		return fmt.Errorf("synth: cannot encode wav: %w", err)
	}
	return nil
}
