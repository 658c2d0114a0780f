package board

import (
	"fmt"
	"math/rand"
)

// DefaultSpawn4Prob is the probability that a spawned tile is a 4 instead of a 2.
const DefaultSpawn4Prob = 0.10

// attemptsPerCell bounds random probing before falling back to a direct pick
// among the empty cells.
const attemptsPerCell = 8

// Spawner places new tiles on random empty cells.
type Spawner struct {
	rng        *rand.Rand
	spawn4Prob float64
}

// NewSpawner creates a spawner seeded for reproducible games.
func NewSpawner(seed int64, spawn4Prob float64) *Spawner {
	return NewSpawnerWithRand(rand.New(rand.NewSource(seed)), spawn4Prob)
}

// NewSpawnerWithRand creates a spawner drawing from an existing source.
func NewSpawnerWithRand(rng *rand.Rand, spawn4Prob float64) *Spawner {
	return &Spawner{rng: rng, spawn4Prob: spawn4Prob}
}

// Spawn samples random cells until it finds an empty one and places a 2
// (or a 4, with the configured probability) there. It returns the cell that
// was filled, or ErrExhaustedBoard if the grid is full.
func (s *Spawner) Spawn(g Grid) (Cell, error) {
	if !g.HasEmptyCell() {
		return Cell{}, fmt.Errorf("%w (%dx%d)", ErrExhaustedBoard, g.Size(), g.Size())
	}

	size := g.Size()
	for k := 0; k < size*size*attemptsPerCell; k++ {
		r, c := s.rng.Intn(size), s.rng.Intn(size)
		if g[r][c] == 0 {
			cell := Cell{Row: r, Col: c}
			g[r][c] = s.tileValue()
			return cell, nil
		}
	}

	// Nearly full board; pick uniformly among what is left.
	empty := g.EmptyCells()
	cell := empty[s.rng.Intn(len(empty))]
	g[cell.Row][cell.Col] = s.tileValue()
	return cell, nil
}

func (s *Spawner) tileValue() int {
	if s.rng.Float64() < s.spawn4Prob {
		return 4
	}
	return 2
}

// Initialize allocates a size x size grid and spawns its two starting tiles.
func Initialize(size int, s *Spawner) (Grid, error) {
	g, err := New(size)
	if err != nil {
		return nil, err
	}
	for k := 0; k < 2; k++ {
		if _, err := s.Spawn(g); err != nil {
			return nil, err
		}
	}
	return g, nil
}
