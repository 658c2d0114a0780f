// t2048 plays 2048 in the terminal, by hand or with an AI policy.
//
// Usage:
//
//	t2048 play               - Play a game (human, ai or heuristic)
//	t2048 simulate           - Run headless AI games and print results
//	t2048 policies           - List available AI policies
//
// Global flags:
//
//	--config <path>     - Config YAML (default search: ~/.t2048, ./configs)
//	--seed <value>      - RNG seed for reproducible games
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import policies to register them
	_ "github.com/vovakirdan/t2048/internal/ai"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "t2048",
	Short: "2048 in your terminal",
	Long: `t2048 is the sliding-tile game 2048 for the terminal.

Slide the board up, down, left or right. Equal tiles merge; a new
tile appears after every move that changes the board. The game ends
when no move is possible.

Available commands:
  play       - Play a game
  simulate   - Run headless AI games
  policies   - List AI policies

Examples:
  t2048 play
  t2048 play --size 5 --mode heuristic --delay 50ms
  t2048 simulate --games 100 --policy heuristic
  t2048 policies`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(policiesCmd)
}
