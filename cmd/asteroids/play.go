package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/game"
	"github.com/vovakirdan/tui-asteroids/internal/platform/tui"
	"github.com/vovakirdan/tui-asteroids/internal/storage"
	"github.com/vovakirdan/tui-asteroids/internal/synth"
)

var (
	flagMute    bool
	flagLogFile string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  Arrows/WASD - Move
  P/Esc       - Pause
  M           - Mute
  +/-         - Volume up/down
  R           - Restart (after game over)
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - 12 lives, rocks multiply slowly
  normal - 8 lives
  hard   - 5 lives, rocks multiply fast
  fixed  - rock count never grows

Examples:
  asteroids play
  asteroids play --difficulty easy
  asteroids play --seed 42 --mute
  asteroids play --config ./my-asteroids.yaml --log-file /tmp/asteroids.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file while playing")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	logger := newLogger(os.Stderr)

	cfg, preset, err := loadGameConfig()
	if err != nil {
		return err
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("play needs an interactive terminal")
	}
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		f := tui.Scale(cfg.Display.Width, cfg.Display.Height, w, h-2)
		logger.Debug("terminal size", "cols", w, "rows", h, "scale", f)
		if f > 4 {
			logger.Warn("small terminal, the field will be heavily downscaled", "cols", w, "rows", h)
		}
	}

	// While the alt screen is active logs go to the log file or nowhere.
	var gameLog io.Writer = io.Discard
	if flagLogFile != "" {
		f, openErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if openErr != nil {
			return fmt.Errorf("cannot open log file: %w", openErr)
		}
		defer f.Close()
		gameLog = f
	}
	playLogger := newLogger(gameLog)

	var sink game.CueSink = game.NopCues{}
	var audio tui.AudioControl
	if cfg.Audio.Enabled && !flagMute {
		spk, cues, audioErr := openAudio(cfg.Audio)
		if audioErr != nil {
			logger.Warn("sound disabled", "error", audioErr)
		} else {
			defer spk.Close()
			sink = cues
			audio = spk
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		// Continue without storage - game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	g := game.New(cfg, sink)
	rc := core.RuntimeConfig{
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	return tui.Run(g, rc, tui.Options{
		Store:        store,
		Audio:        audio,
		Logger:       playLogger,
		Difficulty:   string(preset),
		ReleaseAfter: cfg.Input.ReleaseAfter,
		KeepSeed:     flagSeed != 0,
	})
}

// openAudio starts the synthesizer on the default output device.
func openAudio(cfg config.AudioConfig) (*synth.Speaker, *synth.CuePlayer, error) {
	table, err := synth.NewCueTable(cfg)
	if err != nil {
		return nil, nil, err
	}
	engine := synth.NewEngine(synth.Options{
		SampleRate:  cfg.SampleRate,
		CarrierFreq: cfg.CarrierFreq,
		MaxVoices:   cfg.MaxVoices,
		Seed:        flagSeed,
	})
	spk, err := synth.OpenSpeaker(engine, cfg.Buffer, cfg.MasterVolume)
	if err != nil {
		return nil, nil, err
	}
	return spk, synth.NewCuePlayer(engine, table), nil
}
