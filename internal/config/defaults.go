package config

import (
	_ "embed"
	"time"

	"github.com/vovakirdan/t2048/internal/board"
)

//go:embed defaults/t2048.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Size:       board.DefaultSize,
		Mode:       ModeHuman,
		AIDelay:    10 * time.Millisecond,
		Seed:       0,
		Spawn4Prob: board.DefaultSpawn4Prob,
		ShowLog2:   false,
		LogLevel:   "info",
		Weights:    DefaultWeights(),
	}
}

// DefaultWeights returns the heuristic weights the player was tuned with.
func DefaultWeights() Weights {
	return Weights{
		Delta:         1,
		Empty:         30,
		HasEmpty:      500,
		Corner:        500,
		Smoothness:    50,
		Wall:          500,
		SmoothLargest: 500,
	}
}
