// Package config provides YAML-based configuration for the game: board size,
// player mode, AI pacing and heuristic weights.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/t2048/internal/board"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Mode selects who makes the moves.
type Mode string

const (
	ModeHuman     Mode = "human"
	ModeAI        Mode = "ai"
	ModeHeuristic Mode = "heuristic"
)

// Modes lists the accepted player modes.
func Modes() []Mode {
	return []Mode{ModeHuman, ModeAI, ModeHeuristic}
}

// IsAI returns true if moves come from a policy rather than the keyboard.
func (m Mode) IsAI() bool {
	return m == ModeAI || m == ModeHeuristic
}

// PolicyID returns the registry ID of the policy backing an AI mode.
// Returns an empty string for human mode.
func (m Mode) PolicyID() string {
	switch m {
	case ModeAI:
		return "greedy"
	case ModeHeuristic:
		return "heuristic"
	default:
		return ""
	}
}

// Weights are the coefficients of the heuristic player's evaluation terms.
type Weights struct {
	Delta         float64 `yaml:"delta"`
	Empty         float64 `yaml:"empty"`
	HasEmpty      float64 `yaml:"has_empty"`
	Corner        float64 `yaml:"corner"`
	Smoothness    float64 `yaml:"smoothness"`
	Wall          float64 `yaml:"wall"`
	SmoothLargest float64 `yaml:"smooth_largest"`
}

// Config contains everything needed to start a game.
type Config struct {
	Size       int           `yaml:"size"`
	Mode       Mode          `yaml:"mode"`
	AIDelay    time.Duration `yaml:"ai_delay"`
	Seed       int64         `yaml:"seed"` // 0 means pick from the clock
	Spawn4Prob float64       `yaml:"spawn4_prob"`
	ShowLog2   bool          `yaml:"show_log2"`
	LogLevel   string        `yaml:"log_level"`
	Weights    Weights       `yaml:"weights"`
}

// Validate checks that the configuration describes a playable game.
func (c Config) Validate() error {
	if c.Size < board.MinSize {
		return fmt.Errorf("%w: size must be at least %d, got %d", ErrInvalidConfig, board.MinSize, c.Size)
	}

	valid := false
	for _, m := range Modes() {
		if c.Mode == m {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("%w: unknown mode %q (want human, ai or heuristic)", ErrInvalidConfig, c.Mode)
	}

	if c.AIDelay < 0 {
		return fmt.Errorf("%w: ai_delay must not be negative, got %s", ErrInvalidConfig, c.AIDelay)
	}
	if c.Spawn4Prob < 0 || c.Spawn4Prob > 1 {
		return fmt.Errorf("%w: spawn4_prob must be within [0, 1], got %g", ErrInvalidConfig, c.Spawn4Prob)
	}
	return nil
}
