package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var embedded GameConfig
	if err := yaml.Unmarshal(GetDefaultYAML(), &embedded); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	want := DefaultGameConfig()

	if embedded.Display != want.Display {
		t.Errorf("Display = %+v, expected %+v", embedded.Display, want.Display)
	}
	if embedded.Player != want.Player {
		t.Errorf("Player = %+v, expected %+v", embedded.Player, want.Player)
	}
	if embedded.Background != want.Background {
		t.Errorf("Background = %+v, expected %+v", embedded.Background, want.Background)
	}
	if embedded.Hazards != want.Hazards {
		t.Errorf("Hazards = %+v, expected %+v", embedded.Hazards, want.Hazards)
	}
	if embedded.Heal != want.Heal {
		t.Errorf("Heal = %+v, expected %+v", embedded.Heal, want.Heal)
	}
	if embedded.Shield != want.Shield {
		t.Errorf("Shield = %+v, expected %+v", embedded.Shield, want.Shield)
	}
	if embedded.Input != want.Input {
		t.Errorf("Input = %+v, expected %+v", embedded.Input, want.Input)
	}
	if embedded.Audio.Buffer != want.Audio.Buffer || embedded.Audio.SampleRate != want.Audio.SampleRate {
		t.Errorf("Audio = %+v, expected %+v", embedded.Audio, want.Audio)
	}
	for name, cue := range want.Audio.Cues {
		if embedded.Audio.Cues[name] != cue {
			t.Errorf("cue %s = %+v, expected %+v", name, embedded.Audio.Cues[name], cue)
		}
	}
	if err := embedded.Validate(); err != nil {
		t.Errorf("embedded defaults fail validation: %v", err)
	}
}

func TestLoadCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte(`
player:
  lives: 3
background:
  color: "#102030"
audio:
  cues:
    hit:
      wave: square
      duration: 50ms
      volume: 0.25
`)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Player.Lives != 3 {
		t.Errorf("Lives = %d, expected 3", cfg.Player.Lives)
	}
	if cfg.Player.Width != 10 {
		t.Errorf("unset keys should keep defaults, Width = %d", cfg.Player.Width)
	}
	if cfg.Background.Color != (RGB{R: 0x10, G: 0x20, B: 0x30}) {
		t.Errorf("Background color = %+v", cfg.Background.Color)
	}
	hit := cfg.Audio.Cues[CueHit]
	if hit.Wave != "square" || hit.Duration != 50*time.Millisecond || hit.Volume != 0.25 {
		t.Errorf("hit cue = %+v", hit)
	}
	if _, ok := cfg.Audio.Cues[CueHeal]; !ok {
		t.Error("cues not named in the file should keep defaults")
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() should fail for a missing custom file")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("display:\n  width: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load() should reject an invalid display size")
	}
}

func TestParseRGB(t *testing.T) {
	tests := []struct {
		in      string
		want    RGB
		wantErr bool
	}{
		{"#ff007d", RGB{R: 255, G: 0, B: 125}, false},
		{"68fffc", RGB{R: 104, G: 255, B: 252}, false},
		{"#fff", RGB{}, true},
		{"#gg0000", RGB{}, true},
	}
	for _, tc := range tests {
		got, err := ParseRGB(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseRGB(%q) err = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseRGB(%q) = %+v, expected %+v", tc.in, got, tc.want)
		}
	}
}

func TestHazardTarget(t *testing.T) {
	h := DefaultGameConfig().Hazards

	tests := []struct {
		tick uint32
		want int
	}{
		{0, 8},
		{699, 8},
		{700, 9},
		{7000, 18},
		{1_000_000, 64}, // capped
	}
	for _, tc := range tests {
		if got := h.HazardTarget(tc.tick); got != tc.want {
			t.Errorf("HazardTarget(%d) = %d, expected %d", tc.tick, got, tc.want)
		}
	}

	h.GrowthDivisor = 0
	if got := h.HazardTarget(1_000_000); got != 8 {
		t.Errorf("HazardTarget without growth = %d, expected 8", got)
	}
}

func TestPresets(t *testing.T) {
	for _, name := range []string{"", "easy", "normal", "HARD", "fixed"} {
		if _, err := ParsePreset(name); err != nil {
			t.Errorf("ParsePreset(%q) failed: %v", name, err)
		}
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("ParsePreset should reject unknown names")
	}

	cfg := DefaultGameConfig()
	ApplyPreset(&cfg, DifficultyFixed)
	if cfg.Hazards.GrowthDivisor != 0 {
		t.Error("fixed preset should disable hazard growth")
	}
	if !IsFixedPreset(DifficultyFixed) || IsFixedPreset(DifficultyEasy) {
		t.Error("IsFixedPreset mismatch")
	}

	cfg = DefaultGameConfig()
	ApplyPreset(&cfg, DifficultyHard)
	if cfg.Player.Lives >= DefaultGameConfig().Player.Lives {
		t.Error("hard preset should reduce lives")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("hard preset produced invalid config: %v", err)
	}
}
