package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-asteroids/internal/config"
)

var flagDefaultsOutput string

var defaultsCmd = &cobra.Command{
	Use:   "defaults",
	Short: "Print the default YAML config",
	Long: `Print the built-in game configuration as YAML. Edit the copy and
pass it back with --config.

Examples:
  asteroids defaults > my-asteroids.yaml
  asteroids defaults -o my-asteroids.yaml`,
	Args: cobra.NoArgs,
	RunE: runDefaults,
}

func init() {
	defaultsCmd.Flags().StringVarP(&flagDefaultsOutput, "output", "o", "", "Write to this file instead of stdout")
}

func runDefaults(_ *cobra.Command, _ []string) error {
	if flagDefaultsOutput == "" {
		return writeDefaults(os.Stdout)
	}
	f, err := os.Create(flagDefaultsOutput)
	if err != nil {
		return fmt.Errorf("cannot create config file: %w", err)
	}
	if err := writeDefaults(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeDefaults(w io.Writer) error {
	if _, err := w.Write(config.GetDefaultYAML()); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
