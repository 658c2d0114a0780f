package game

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/t2048/internal/config"
	"github.com/vovakirdan/t2048/internal/registry"
)

// Result summarises one finished game.
type Result struct {
	Seed    int64
	Turns   int
	MaxTile int
	Sum     int
}

// Simulate plays n headless games with policy p. Game i uses seed cfg.Seed+i,
// so a fixed cfg.Seed reproduces the whole batch, even when cfg.Seed+i is zero.
// A zero cfg.Seed picks a time-based base once for the batch.
func Simulate(ctx context.Context, cfg config.Config, p registry.Policy, n int, logger *log.Logger) ([]Result, error) {
	results := make([]Result, 0, n)
	base := cfg.Seed
	if base == 0 {
		base = time.Now().UnixNano()
	}

	for i := 0; i < n; i++ {
		var gameLog *log.Logger
		if logger != nil {
			gameLog = logger.With("game", i+1)
		}

		s, err := NewSessionWithSeed(cfg, base+int64(i), gameLog)
		if err != nil {
			return results, err
		}
		if err := (Runner{}).RunPolicy(ctx, s, p); err != nil {
			return results, fmt.Errorf("game: simulation %d: %w", i+1, err)
		}

		results = append(results, Result{
			Seed:    s.Seed(),
			Turns:   s.Turns(),
			MaxTile: s.MaxTile(),
			Sum:     s.Grid().Sum(),
		})
	}
	return results, nil
}

// Summary aggregates simulation results.
type Summary struct {
	Games     int
	MeanTurns float64
	BestTile  int
	Reached   int // games whose max tile reached Target
	Target    int
}

// Summarize aggregates results, counting games that reached target.
func Summarize(results []Result, target int) Summary {
	sum := Summary{Games: len(results), Target: target}
	if len(results) == 0 {
		return sum
	}

	turns := 0
	for _, r := range results {
		turns += r.Turns
		sum.BestTile = max(sum.BestTile, r.MaxTile)
		if r.MaxTile >= target {
			sum.Reached++
		}
	}
	sum.MeanTurns = float64(turns) / float64(len(results))
	return sum
}
