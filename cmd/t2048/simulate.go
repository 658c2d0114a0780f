package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/t2048/internal/game"
	"github.com/vovakirdan/t2048/internal/registry"
)

// winTile is the tile that counts as a win in the summary.
const winTile = 2048

var (
	flagGames     int
	flagPolicy    string
	flagSimSize   int
	flagHideGames bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run headless AI games",
	Long: `Play a batch of games with an AI policy, without a UI, and print
the result of each game followed by a summary.

Game i uses seed+i, so a fixed --seed reproduces the whole batch.

Examples:
  t2048 simulate
  t2048 simulate --games 200 --policy heuristic --seed 7
  t2048 simulate --size 5 --summary-only`,
	Args: cobra.NoArgs,
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagGames, "games", 10, "Number of games to play")
	simulateCmd.Flags().StringVar(&flagPolicy, "policy", "greedy", "Policy ID (see 't2048 policies')")
	simulateCmd.Flags().IntVar(&flagSimSize, "size", 0, "Board size (cells per side, at least 2)")
	simulateCmd.Flags().BoolVar(&flagHideGames, "summary-only", false, "Print only the summary")
}

func runSimulate(cmd *cobra.Command, _ []string) {
	if !registry.Exists(flagPolicy) {
		fmt.Fprintf(os.Stderr, "Error: unknown policy %q\n", flagPolicy)
		fmt.Fprintln(os.Stderr, "Run 't2048 policies' to see available policies.")
		os.Exit(1)
	}
	if flagGames < 1 {
		fail("--games must be at least 1, got %d", flagGames)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		fail("%v", err)
	}
	if cmd.Flags().Changed("size") {
		cfg.Size = flagSimSize
	}
	if err := cfg.Validate(); err != nil {
		fail("%v", err)
	}

	logger, err := newLogger(os.Stderr, cfg.LogLevel)
	if err != nil {
		fail("%v", err)
	}

	p, err := registry.Create(flagPolicy, cfg)
	if err != nil {
		fail("%v", err)
	}

	logger.Info("simulating", "policy", p.ID(), "games", flagGames, "size", cfg.Size)
	results, err := game.Simulate(context.Background(), cfg, p, flagGames, logger)
	if err != nil {
		fail("%v", err)
	}

	if !flagHideGames {
		fmt.Println(resultsTable(results).Render())
		fmt.Println()
	}
	fmt.Println(summaryTable(p.Title(), game.Summarize(results, winTile)).Render())
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	winStyle    = cellStyle.Foreground(lipgloss.Color("226")).Bold(true)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

func resultsTable(results []game.Result) *table.Table {
	rows := make([][]string, 0, len(results))
	for i, r := range results {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			strconv.FormatInt(r.Seed, 10),
			strconv.Itoa(r.Turns),
			strconv.Itoa(r.MaxTile),
			strconv.Itoa(r.Sum),
		})
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers("#", "SEED", "TURNS", "MAX TILE", "SUM").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if col == 3 && results[row].MaxTile >= winTile {
				return winStyle
			}
			return cellStyle
		})
}

func summaryTable(title string, s game.Summary) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers("POLICY", "GAMES", "MEAN TURNS", "BEST TILE", fmt.Sprintf("REACHED %d", s.Target)).
		Row(
			title,
			strconv.Itoa(s.Games),
			strconv.FormatFloat(s.MeanTurns, 'f', 1, 64),
			strconv.Itoa(s.BestTile),
			fmt.Sprintf("%d (%.0f%%)", s.Reached, 100*float64(s.Reached)/float64(max(s.Games, 1))),
		).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
}
