// Package ai implements the automated players. Both policies look exactly one
// move ahead: they simulate each direction on a copy of the grid, score the
// result, and pick the best legal move.
package ai

import (
	"github.com/vovakirdan/t2048/internal/board"
	"github.com/vovakirdan/t2048/internal/config"
	"github.com/vovakirdan/t2048/internal/registry"
)

func init() {
	registry.Register("greedy", func(config.Config) registry.Policy {
		return Greedy{}
	})
	registry.Register("heuristic", func(cfg config.Config) registry.Policy {
		return NewHeuristic(cfg.Weights)
	})
}

// clampedSum totals the positive cell values.
func clampedSum(g board.Grid) int {
	total := 0
	for _, row := range g {
		for _, v := range row {
			total += max(v, 0)
		}
	}
	return total
}

// EvaluateMove simulates m on g and scores it as the drop in total tile value.
// Merging and sliding both conserve the sum, so legal moves score 0.
func EvaluateMove(g board.Grid, m board.Move) (int, board.Grid) {
	result := board.Apply(g, m)
	return clampedSum(g) - clampedSum(result), result
}

// ChooseMove evaluates Up, Down, Left and Right in that order and returns the
// first legal move with the strictly highest score. It returns false when no
// move changes the grid.
func ChooseMove(g board.Grid) (board.Move, bool) {
	bestScore := -1
	var bestMove board.Move
	found := false

	for _, m := range board.Moves {
		score, _ := EvaluateMove(g, m)
		if score > bestScore && board.CanMove(g, m) {
			bestScore = score
			bestMove = m
			found = true
		}
	}

	return bestMove, found
}

// Greedy is the default single-ply player.
type Greedy struct{}

// ID returns the registry identifier.
func (Greedy) ID() string { return "greedy" }

// Title returns the display name.
func (Greedy) Title() string { return "Greedy (single-ply)" }

// ChooseMove delegates to the package-level ChooseMove.
func (Greedy) ChooseMove(g board.Grid) (board.Move, bool) {
	return ChooseMove(g)
}
