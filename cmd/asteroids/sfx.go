package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-asteroids/internal/game"
	"github.com/vovakirdan/tui-asteroids/internal/synth"
)

var (
	flagOutput string
	flagLength time.Duration
)

var sfxCmd = &cobra.Command{
	Use:   "sfx <cue>",
	Short: "Render a sound cue to a WAV file",
	Long: `Render one of the game's sound cues offline, for tuning the
audio section of the config without playing.

Cues: hit, heal, shield, game_over

Examples:
  asteroids sfx hit -o hit.wav
  asteroids sfx game_over --length 2s --config ./my-asteroids.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runSfx,
}

func init() {
	sfxCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "Output WAV path (default <cue>.wav)")
	sfxCmd.Flags().DurationVar(&flagLength, "length", 0, "Length to render (default: the cue duration)")
}

func runSfx(_ *cobra.Command, args []string) error {
	logger := newLogger(os.Stderr)

	cue, err := game.ParseCue(args[0])
	if err != nil {
		return err
	}

	cfg, _, err := loadGameConfig()
	if err != nil {
		return err
	}
	table, err := synth.NewCueTable(cfg.Audio)
	if err != nil {
		return err
	}
	sound, ok := table[cue]
	if !ok {
		return fmt.Errorf("cue %s has no sound configured", cue)
	}

	engine := synth.NewEngine(synth.Options{
		SampleRate:  cfg.Audio.SampleRate,
		CarrierFreq: cfg.Audio.CarrierFreq,
		Seed:        flagSeed,
	})
	synth.NewCuePlayer(engine, table).Play(cue)

	length := flagLength
	if length <= 0 {
		length = sound.Duration
	}
	out := flagOutput
	if out == "" {
		out = cue.String() + ".wav"
	}

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("creating %s: %w", out, err)
	}
	if err := synth.RenderWAV(f, engine, length); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", out, err)
	}

	logger.Info("wrote cue", "cue", cue, "wave", sound.Wave, "length", length, "path", out)
	return nil
}
