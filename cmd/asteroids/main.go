// asteroids is a terminal asteroid-dodging game with synthesized sound.
//
// Usage:
//
//	asteroids play           - Play in this terminal
//	asteroids serve          - Start SSH server for remote play
//	asteroids scores         - Show high scores
//	asteroids sfx <cue>      - Render a sound cue to a WAV file
//	asteroids defaults       - Print the default YAML config
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.asteroids/scores.db)
//	--config <path>     - Use a custom YAML config
//	--difficulty <name> - easy, normal, hard or fixed
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-asteroids/internal/config"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "asteroids",
	Short: "Asteroids - dodge falling rocks in your terminal",
	Long: `Asteroids is a terminal survival game. Move the pink block around
the field, dodge the falling rocks, pick up brown heal bars for an extra
life and cyan shields to clear the field.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  scores   - View high scores
  sfx      - Export a sound cue as WAV
  defaults - Print the default config

Examples:
  asteroids play
  asteroids play --difficulty hard --mute
  asteroids serve --ssh :2222
  asteroids scores
  asteroids sfx hit -o hit.wav`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.asteroids/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(sfxCmd)
	rootCmd.AddCommand(defaultsCmd)
}

// newLogger creates the CLI logger writing to w.
func newLogger(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "asteroids",
	})
}

// loadGameConfig loads the YAML config and applies the difficulty preset.
func loadGameConfig() (config.GameConfig, config.DifficultyPreset, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.GameConfig{}, "", err
	}
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.GameConfig{}, "", err
	}
	config.ApplyPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return config.GameConfig{}, "", err
	}
	return cfg, preset, nil
}
