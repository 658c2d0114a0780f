// Package game orchestrates a single 2048 game: it owns the grid and the tile
// spawner, applies moves from a human or a policy, and tracks when the game is
// over. It has no terminal dependencies; the TUI and the headless runner both
// drive a Session.
package game

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/t2048/internal/board"
	"github.com/vovakirdan/t2048/internal/config"
	"github.com/vovakirdan/t2048/internal/registry"
)

// State is the orchestrator's lifecycle state.
type State int

const (
	StatePlaying State = iota
	StateOver
)

// String returns the state name.
func (s State) String() string {
	if s == StateOver {
		return "over"
	}
	return "playing"
}

// Session is one game from initialization to game over.
type Session struct {
	seed    int64
	grid    board.Grid
	spawner *board.Spawner
	state   State
	turns   int
	logger  *log.Logger
}

// NewSession validates cfg and starts a game with two tiles on the board.
// A zero cfg.Seed picks a seed from the clock. A nil logger discards output.
func NewSession(cfg config.Config, logger *log.Logger) (*Session, error) {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return NewSessionWithSeed(cfg, seed, logger)
}

// NewSessionWithSeed is NewSession with an explicit spawner seed, used as is.
// cfg.Seed is ignored.
func NewSessionWithSeed(cfg config.Config, seed int64, logger *log.Logger) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	spawner := board.NewSpawner(seed, cfg.Spawn4Prob)
	grid, err := board.Initialize(cfg.Size, spawner)
	if err != nil {
		return nil, fmt.Errorf("game: cannot initialize grid: %w", err)
	}

	logger.Info("game started", "size", cfg.Size, "mode", cfg.Mode, "seed", seed)

	return &Session{
		seed:    seed,
		grid:    grid,
		spawner: spawner,
		state:   StatePlaying,
		logger:  logger,
	}, nil
}

// Play applies a move. If the grid changes, a new tile is spawned. The
// terminal check runs afterwards either way. Moves after game over are ignored.
func (s *Session) Play(m board.Move) (changed bool, err error) {
	if s.state == StateOver {
		return false, nil
	}

	next := board.Apply(s.grid, m)
	if !next.Equal(s.grid) {
		changed = true
		s.grid = next
		s.turns++

		// A changed grid always has a free cell; the check keeps Spawn honest.
		if s.grid.HasEmptyCell() {
			if _, err := s.spawner.Spawn(s.grid); err != nil {
				return true, fmt.Errorf("game: spawn after %s: %w", m, err)
			}
		}
	}

	if board.IsTerminal(s.grid) {
		s.finish("no moves left")
	}
	return changed, nil
}

// PlayPolicy asks p for a move and plays it. When the policy has no legal
// move the game ends immediately without touching the grid.
func (s *Session) PlayPolicy(p registry.Policy) (board.Move, bool, error) {
	if s.state == StateOver {
		return 0, false, nil
	}

	m, ok := p.ChooseMove(s.grid.Clone())
	if !ok {
		s.finish("policy found no legal move")
		return 0, false, nil
	}

	s.logger.Debug("policy move", "policy", p.ID(), "move", m, "turn", s.turns+1)
	_, err := s.Play(m)
	return m, true, err
}

func (s *Session) finish(reason string) {
	s.state = StateOver
	s.logger.Info("game over", "reason", reason, "turns", s.turns, "max_tile", s.grid.MaxTile())
}

// Grid returns a copy of the current grid.
func (s *Session) Grid() board.Grid {
	return s.grid.Clone()
}

// State returns the lifecycle state.
func (s *Session) State() State {
	return s.state
}

// Over returns true once the game has ended.
func (s *Session) Over() bool {
	return s.state == StateOver
}

// Turns returns the number of moves that changed the grid.
func (s *Session) Turns() int {
	return s.turns
}

// MaxTile returns the largest tile on the board.
func (s *Session) MaxTile() int {
	return s.grid.MaxTile()
}

// Seed returns the RNG seed actually used, useful for replaying a game.
func (s *Session) Seed() int64 {
	return s.seed
}
