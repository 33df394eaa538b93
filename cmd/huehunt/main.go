// huehunt is a color-perception game for the terminal: one swatch on a
// 5x5 board is a slightly different shade, find it before the clock
// runs out.
//
// Usage:
//
//	huehunt play [mode]      - Play directly (default: classic)
//	huehunt menu             - Start with an interactive mode picker
//	huehunt list             - List available modes
//	huehunt scores <mode>    - Show best runs for a mode
//	huehunt serve            - Start SSH server for remote play
//
// Global flags:
//
//	--seed <value>  - RNG seed for reproducible runs
//	--db <path>     - Results database path (default: ~/.huehunt/results.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import modes to register them
	_ "github.com/vovakirdan/huehunt/internal/modes"
)

var (
	// Global flags
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "huehunt",
	Short: "Hue Hunt - Spot the odd swatch in your terminal",
	Long: `Hue Hunt is a terminal game of color perception. Every round shows a
5x5 board of swatches where exactly one is a slightly different shade.
Picking it scores a point and buys time; the difference shrinks as you go.

Available commands:
  play     - Play a mode directly
  menu     - Interactive mode picker
  list     - Show all available modes
  scores   - View best runs
  serve    - Start SSH server for remote play

Examples:
  huehunt play
  huehunt play daily
  huehunt menu
  huehunt serve --ssh :2222
  huehunt scores classic`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = derived per mode)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.huehunt/results.db", "Path to results database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
