package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/huehunt/internal/registry"
	"github.com/vovakirdan/huehunt/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores <mode>",
	Short: "Show best runs for a mode",
	Long: `Display the top runs for the specified mode.

Examples:
  huehunt scores classic
  huehunt scores daily --limit 25
  huehunt scores classic --clear`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all recorded runs for the mode")
}

func runScores(cmd *cobra.Command, args []string) {
	modeID := args[0]

	mode, err := registry.Lookup(modeID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", modeID)
		fmt.Fprintln(os.Stderr, "Run 'huehunt list' to see available modes.")
		os.Exit(1)
	}

	// Open result storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearResults(modeID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing results: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared all recorded runs for %s.\n", mode.Title)
		return
	}

	// Get top results
	results, err := store.TopResults(modeID, flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving results: %v\n", err)
		os.Exit(1)
	}

	// Display results
	fmt.Printf("Best Runs - %s\n", mode.Title)
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'huehunt play %s' to set the first score!\n", modeID)
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-6s  %-6s  %-4s  %s\n", "Rank", "Score", "Rounds", "Acc", "Date")
	fmt.Printf("  %-4s  %-6s  %-6s  %-4s  %s\n", "----", "-----", "------", "---", "----")

	// Print results
	for i, r := range results {
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-6d  %-6d  %3d%%  %s\n", i+1, r.Score, r.Level, r.Accuracy, dateStr)
	}

	// Show aggregate stats
	fmt.Println()
	if stats, err := store.GetModeStats(modeID); err == nil && stats.Plays > 0 {
		fmt.Printf("Plays: %d   Best: %d (round %d)   Avg: %.1f\n",
			stats.Plays, stats.BestScore, stats.BestLevel, stats.AvgScore)
	}
}
