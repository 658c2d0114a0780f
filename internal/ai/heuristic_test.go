package ai

import (
	"testing"

	"github.com/vovakirdan/t2048/internal/board"
	"github.com/vovakirdan/t2048/internal/config"
	"github.com/vovakirdan/t2048/internal/registry"
)

func TestExtractFeatures(t *testing.T) {
	g := mustGrid(t, [][]int{
		{8, 4, 2, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{2, 0, 0, 0},
	})

	got := Extract(g, g)
	want := Features{
		Delta:         0,
		Empty:         12,
		HasEmpty:      1,
		Corner:        1,
		Smoothness:    0,
		Wall:          12,
		SmoothLargest: 16,
	}
	if got != want {
		t.Errorf("Extract = %+v, want %+v", got, want)
	}

	if score := got.Score(config.DefaultWeights()); score != 15360 {
		t.Errorf("Score = %g, want 15360", score)
	}
}

func TestSmoothness(t *testing.T) {
	g := mustGrid(t, [][]int{
		{2, 2},
		{2, 0},
	})
	if got := smoothness(g); got != 2 {
		t.Errorf("smoothness(%v) = %d, want 2", g, got)
	}
}

func TestDeltaOfMergeIsZero(t *testing.T) {
	before := mustGrid(t, [][]int{{2, 2}, {0, 0}})
	after := board.Apply(before, board.Left)
	if got := delta(before, after); got != 0 {
		t.Errorf("delta = %d, want 0", got)
	}
}

func TestLargestInCorner(t *testing.T) {
	corner := mustGrid(t, [][]int{
		{2, 0, 0},
		{0, 0, 0},
		{0, 0, 16},
	})
	middle := mustGrid(t, [][]int{
		{2, 0, 0},
		{0, 16, 0},
		{0, 0, 0},
	})

	if !largestInCorner(corner) {
		t.Error("16 in bottom-right should count as a corner")
	}
	if largestInCorner(middle) {
		t.Error("16 in the centre should not count as a corner")
	}
}

func TestHeuristicPrefersEmptyCells(t *testing.T) {
	g := mustGrid(t, [][]int{
		{2, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{4, 0, 0, 0},
	})

	h := NewHeuristic(config.Weights{Empty: 1})
	m, ok := h.ChooseMove(g)
	if !ok {
		t.Fatal("heuristic found no move")
	}
	// Left and Right both merge the top pair; Left wins the tie.
	if m != board.Left {
		t.Errorf("heuristic ChooseMove = %s, want left", m)
	}

	if gm, _ := ChooseMove(g); gm != board.Up {
		t.Errorf("greedy ChooseMove = %s, want up", gm)
	}
}

func TestHeuristicNegativeWeightsStillMove(t *testing.T) {
	g := mustGrid(t, [][]int{
		{2, 0},
		{0, 0},
	})

	h := NewHeuristic(config.Weights{Empty: -10})
	m, ok := h.ChooseMove(g)
	if !ok {
		t.Fatal("negative scores should not hide legal moves")
	}
	if !board.CanMove(g, m) {
		t.Errorf("heuristic chose illegal move %s", m)
	}
}

func TestHeuristicNoLegalMove(t *testing.T) {
	g := mustGrid(t, [][]int{
		{2, 4},
		{4, 2},
	})
	if _, ok := NewHeuristic(config.DefaultWeights()).ChooseMove(g); ok {
		t.Error("heuristic should report no move on a terminal grid")
	}
}

func TestHeuristicRegisteredWithConfigWeights(t *testing.T) {
	cfg := config.Default()
	cfg.Weights.Empty = 77

	p, err := registry.Create("heuristic", cfg)
	if err != nil {
		t.Fatalf("Create(heuristic): %v", err)
	}
	h, ok := p.(*Heuristic)
	if !ok {
		t.Fatalf("Create(heuristic) returned %T", p)
	}
	if h.weights.Empty != 77 {
		t.Errorf("weights.Empty = %g, want 77", h.weights.Empty)
	}
}
