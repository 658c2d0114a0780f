package ai

import (
	"slices"

	"github.com/vovakirdan/t2048/internal/board"
	"github.com/vovakirdan/t2048/internal/config"
)

// Features are the raw evaluation terms of a simulated grid.
type Features struct {
	Delta         int // sum of (after - before) over changed cells
	Empty         int // empty cell count
	HasEmpty      int // 1 if any cell is empty
	Corner        int // 1 if the largest tile is in a corner
	Smoothness    int // equal nonzero neighbour pairs
	Wall          int // largest N whose N biggest tiles all touch the border
	SmoothLargest int
}

// Score combines the features with the given weights.
func (f Features) Score(w config.Weights) float64 {
	return w.Delta*float64(f.Delta) +
		w.Empty*float64(f.Empty) +
		w.HasEmpty*float64(f.HasEmpty) +
		w.Corner*float64(f.Corner) +
		w.Smoothness*float64(f.Smoothness) +
		w.Wall*float64(f.Wall) +
		w.SmoothLargest*float64(f.SmoothLargest)
}

// Extract computes the features of after, the result of a move from before.
func Extract(before, after board.Grid) Features {
	empty := len(after.EmptyCells())
	f := Features{
		Delta:         delta(before, after),
		Empty:         empty,
		Corner:        boolInt(largestInCorner(after)),
		Smoothness:    smoothness(after),
		Wall:          largestTouchingWall(after),
		SmoothLargest: after.Size() * after.Size(),
	}
	if empty > 0 {
		f.HasEmpty = 1
	}
	return f
}

// Heuristic scores each legal move by a weighted sum of Features.
type Heuristic struct {
	weights config.Weights
}

// NewHeuristic creates a heuristic player with the given weights.
func NewHeuristic(w config.Weights) *Heuristic {
	return &Heuristic{weights: w}
}

// ID returns the registry identifier.
func (h *Heuristic) ID() string { return "heuristic" }

// Title returns the display name.
func (h *Heuristic) Title() string { return "Weighted heuristic (single-ply)" }

// ChooseMove returns the legal move with the strictly highest weighted score,
// earlier moves winning ties.
func (h *Heuristic) ChooseMove(g board.Grid) (board.Move, bool) {
	var bestMove board.Move
	var bestScore float64
	found := false

	for _, m := range board.Moves {
		if !board.CanMove(g, m) {
			continue
		}
		score := Extract(g, board.Apply(g, m)).Score(h.weights)
		if !found || score > bestScore {
			bestMove, bestScore, found = m, score, true
		}
	}

	return bestMove, found
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func delta(before, after board.Grid) int {
	d := 0
	for i := range after {
		for j := range after[i] {
			if after[i][j] != before[i][j] {
				d += after[i][j] - before[i][j]
			}
		}
	}
	return d
}

func largestInCorner(g board.Grid) bool {
	n := g.Size() - 1
	top := g.MaxTile()
	return g[0][0] == top || g[0][n] == top || g[n][0] == top || g[n][n] == top
}

func smoothness(g board.Grid) int {
	s := 0
	for i := 0; i < g.Size(); i++ {
		for j := 0; j < g.Size()-1; j++ {
			if g[i][j] != 0 && g[i][j] == g[i][j+1] {
				s++
			}
			if g[j][i] != 0 && g[j][i] == g[j+1][i] {
				s++
			}
		}
	}
	return s
}

// largestTouchingWall grows N from 1 while the N largest values (duplicates
// and zeros included) all sit on the border.
func largestTouchingWall(g board.Grid) int {
	cells := g.Size() * g.Size()
	n := 1
	for n <= cells && nLargestTouchWall(g, n) {
		n++
	}
	return n - 1
}

func nLargestTouchWall(g board.Grid, n int) bool {
	values := make([]int, 0, g.Size()*g.Size())
	for _, row := range g {
		values = append(values, row...)
	}
	slices.Sort(values)
	slices.Reverse(values)
	pending := values[:min(n, len(values))]

	last := g.Size() - 1
	for i, row := range g {
		for j, v := range row {
			if i != 0 && i != last && j != 0 && j != last {
				continue
			}
			if k := slices.Index(pending, v); k >= 0 {
				pending = slices.Delete(pending, k, k+1)
			}
		}
	}
	return len(pending) == 0
}
