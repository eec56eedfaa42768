package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-asteroids/internal/platform/tui"
	"github.com/vovakirdan/tui-asteroids/internal/storage"
)

const gameID = "asteroids"

var (
	flagPlain bool
	flagLimit int
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the high score table.

In a terminal this opens a scrollable table. With --plain, or when the
output is not a terminal, the top scores are printed as text.

Examples:
  asteroids scores
  asteroids scores --plain --limit 5
  asteroids scores --clear
  asteroids scores --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print scores as text")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores to print with --plain")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded scores")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagClear {
		return clearScores(store, os.Stdout)
	}

	fd := int(os.Stdout.Fd())
	if !flagPlain && term.IsTerminal(fd) {
		width, height := 80, 24 // Defaults
		if w, h, termErr := term.GetSize(fd); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, gameID, flagFPS, width, height)
	}

	return printScores(store)
}

func printScores(store *storage.Store) error {
	scores, err := store.TopScores(gameID, flagLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Println("High Scores - Asteroids")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'asteroids play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-6s  %-8s  %-10s  %s\n", "Rank", "Score", "Survived", "Difficulty", "Date")
	fmt.Printf("  %-4s  %-6s  %-8s  %-10s  %s\n", "----", "-----", "--------", "----------", "----")

	tickRate := flagFPS
	if tickRate <= 0 {
		tickRate = 60
	}
	for i, entry := range scores {
		survived := (time.Duration(entry.Ticks) * time.Second / time.Duration(tickRate)).Round(time.Second)
		fmt.Printf("  %-4d  %-6d  %-8s  %-10s  %s\n",
			i+1, entry.Score, survived, entry.Difficulty, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Println()
		fmt.Printf("Best: %d over %d games\n", stats.HighScore, stats.GamesCount)
	}
	return nil
}

// clearScores wipes the score table and reports how many runs were removed.
func clearScores(store *storage.Store, w io.Writer) error {
	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return fmt.Errorf("reading scores: %w", err)
	}
	if err := store.ClearScores(gameID); err != nil {
		return fmt.Errorf("clearing scores: %w", err)
	}
	fmt.Fprintf(w, "Cleared %d scores.\n", stats.GamesCount)
	return nil
}
