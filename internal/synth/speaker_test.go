package synth

import (
	"math"
	"testing"
)

func TestSpeakerGain(t *testing.T) {
	tests := []struct {
		name       string
		gain       float64
		wantSilent bool
		wantExp    float64
	}{
		{"full", 1, false, 0},
		{"half", 0.5, false, -1},
		{"quarter", 0.25, false, -2},
		{"above one", 3, false, 0},
		{"zero", 0, true, 0},
		{"negative", -1, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newSpeaker(NewEngine(DefaultOptions()), tt.gain)
			if s.volume.Silent != tt.wantSilent {
				t.Errorf("Silent = %v, want %v", s.volume.Silent, tt.wantSilent)
			}
			if math.Abs(s.volume.Volume-tt.wantExp) > 1e-9 {
				t.Errorf("Volume = %v, want %v", s.volume.Volume, tt.wantExp)
			}
		})
	}
}

func TestSpeakerUnmuteKeepsZeroGainSilent(t *testing.T) {
	s := newSpeaker(NewEngine(DefaultOptions()), 0)

	if audible := s.ToggleMute(); audible {
		t.Error("first ToggleMute() should mute")
	}
	if audible := s.ToggleMute(); !audible {
		t.Error("second ToggleMute() should unmute")
	}
	if !s.volume.Silent {
		t.Error("unmuting a zero gain must stay silent")
	}
}

func TestSpeakerMuteSurvivesVolumeChange(t *testing.T) {
	s := newSpeaker(NewEngine(DefaultOptions()), 0.5)

	s.ToggleMute()
	if got := s.SetVolume(1); got != 1 {
		t.Errorf("SetVolume(1) = %v, want 1", got)
	}
	if !s.volume.Silent {
		t.Error("SetVolume should not unmute")
	}

	s.ToggleMute()
	if s.volume.Silent || s.volume.Volume != 0 {
		t.Errorf("after unmute: Silent=%v Volume=%v, want audible at full gain", s.volume.Silent, s.volume.Volume)
	}

	if got := s.SetVolume(-0.2); got != 0 {
		t.Errorf("SetVolume(-0.2) = %v, want 0", got)
	}
	if !s.volume.Silent {
		t.Error("zero gain should be silent")
	}
	if s.Volume() != 0 {
		t.Errorf("Volume() = %v, want 0", s.Volume())
	}
}
