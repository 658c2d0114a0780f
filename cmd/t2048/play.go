package main

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/t2048/internal/config"
	"github.com/vovakirdan/t2048/internal/game"
	"github.com/vovakirdan/t2048/internal/platform/tui"
	"github.com/vovakirdan/t2048/internal/registry"
)

var (
	flagSize    int
	flagMode    string
	flagDelay   time.Duration
	flagLog2    bool
	flagLogFile string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game of 2048.

Controls:
  Arrows / WASD / HJKL  - Slide the board
  ?                     - Toggle help
  Q/Ctrl+C              - Quit

Modes:
  human      - You play with the keyboard
  ai         - Greedy single-ply AI (plays the first legal move)
  heuristic  - Weighted-feature AI

When stdout is not a terminal the game runs as plain text: AI modes
print every frame, human mode reads moves (w/a/s/d, up/down/...) from
stdin.

Examples:
  t2048 play
  t2048 play --size 3
  t2048 play --mode ai --delay 100ms
  t2048 play --mode heuristic --log2 --log-file t2048.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagSize, "size", 0, "Board size (cells per side, at least 2)")
	playCmd.Flags().StringVar(&flagMode, "mode", "", "Player mode: human, ai, heuristic")
	playCmd.Flags().DurationVar(&flagDelay, "delay", 0, "Pause between AI moves")
	playCmd.Flags().BoolVar(&flagLog2, "log2", false, "Show tiles as powers of two")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
}

func runPlay(cmd *cobra.Command, _ []string) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		fail("%v", err)
	}

	flags := cmd.Flags()
	if flags.Changed("size") {
		cfg.Size = flagSize
	}
	if flags.Changed("mode") {
		cfg.Mode = config.Mode(flagMode)
	}
	if flags.Changed("delay") {
		cfg.AIDelay = flagDelay
	}
	if flags.Changed("log2") {
		cfg.ShowLog2 = flagLog2
	}
	if err := cfg.Validate(); err != nil {
		fail("%v", err)
	}

	logger, closeLog, err := openLogFile(flagLogFile, cfg.LogLevel)
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		if err := playText(cfg, logger, os.Stdin, os.Stdout); err != nil {
			closeLog()
			fail("%v", err)
		}
		return
	}

	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		logger.Debug("terminal size", "width", w, "height", h)
	}

	if err := tui.Run(cfg, logger); err != nil {
		closeLog()
		fail("%v", err)
	}
}

// playText runs a game as plain text, reading human moves from in.
func playText(cfg config.Config, logger *log.Logger, in io.Reader, out io.Writer) error {
	s, err := game.NewSession(cfg, logger)
	if err != nil {
		return err
	}

	r := game.Runner{
		Renderer: game.TextRenderer{W: out, Log2: cfg.ShowLog2},
		Delay:    cfg.AIDelay,
	}
	ctx := context.Background()

	if !cfg.Mode.IsAI() {
		return r.Run(ctx, s, game.NewScannerInput(in))
	}

	p, err := registry.Create(cfg.Mode.PolicyID(), cfg)
	if err != nil {
		return err
	}
	return r.RunPolicy(ctx, s, p)
}
