// Package board implements the 2048 grid: construction, tile spawning, the
// compress/merge/reverse/transpose primitives moves are composed from, and the
// terminal-state check. Game logic here has no terminal or UI dependencies.
package board

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// DefaultSize is the default board dimension.
const DefaultSize = 4

// MinSize is the smallest playable board dimension.
const MinSize = 2

var (
	// ErrInvalidSize is returned when a grid smaller than MinSize is requested.
	ErrInvalidSize = errors.New("board: grid size must be at least 2")

	// ErrExhaustedBoard is returned when a tile is spawned on a grid with no empty cell.
	ErrExhaustedBoard = errors.New("board: no empty cell to spawn a tile")

	// ErrMalformedGrid is returned by FromRows for non-square input or invalid tile values.
	ErrMalformedGrid = errors.New("board: malformed grid")
)

// Grid is an NxN board. A cell is 0 when empty, otherwise a power of two >= 2.
// Transforms never modify their input; they return a new Grid.
type Grid [][]int

// Cell addresses a single position on the grid.
type Cell struct {
	Row, Col int
}

// New allocates an empty size x size grid.
func New(size int) (Grid, error) {
	if size < MinSize {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}
	return alloc(size), nil
}

func alloc(size int) Grid {
	g := make(Grid, size)
	for i := range g {
		g[i] = make([]int, size)
	}
	return g
}

// FromRows builds a grid from literal rows, validating shape and tile values.
func FromRows(rows [][]int) (Grid, error) {
	size := len(rows)
	if size < MinSize {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}

	g := alloc(size)
	for i, row := range rows {
		if len(row) != size {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrMalformedGrid, i, len(row), size)
		}
		for j, v := range row {
			if !validTile(v) {
				return nil, fmt.Errorf("%w: cell (%d,%d) holds %d", ErrMalformedGrid, i, j, v)
			}
			g[i][j] = v
		}
	}
	return g, nil
}

// validTile reports whether v is 0 or a power of two >= 2.
func validTile(v int) bool {
	if v == 0 {
		return true
	}
	return v >= 2 && v&(v-1) == 0
}

// Size returns the board dimension.
func (g Grid) Size() int {
	return len(g)
}

// Clone returns a deep copy.
func (g Grid) Clone() Grid {
	out := make(Grid, len(g))
	for i, row := range g {
		out[i] = append([]int(nil), row...)
	}
	return out
}

// Equal reports whether both grids have the same shape and cell values.
func (g Grid) Equal(other Grid) bool {
	if len(g) != len(other) {
		return false
	}
	for i := range g {
		if len(g[i]) != len(other[i]) {
			return false
		}
		for j := range g[i] {
			if g[i][j] != other[i][j] {
				return false
			}
		}
	}
	return true
}

// EmptyCells returns the coordinates of all empty cells in row-major order.
func (g Grid) EmptyCells() []Cell {
	var cells []Cell
	for i, row := range g {
		for j, v := range row {
			if v == 0 {
				cells = append(cells, Cell{Row: i, Col: j})
			}
		}
	}
	return cells
}

// HasEmptyCell returns true if there's at least one empty cell.
func (g Grid) HasEmptyCell() bool {
	for _, row := range g {
		for _, v := range row {
			if v == 0 {
				return true
			}
		}
	}
	return false
}

// MaxTile returns the largest tile value on the board.
func (g Grid) MaxTile() int {
	maxVal := 0
	for _, row := range g {
		for _, v := range row {
			if v > maxVal {
				maxVal = v
			}
		}
	}
	return maxVal
}

// Sum returns the total of all tile values.
func (g Grid) Sum() int {
	total := 0
	for _, row := range g {
		for _, v := range row {
			total += v
		}
	}
	return total
}

// String renders the grid on one line, rows separated by " / ".
func (g Grid) String() string {
	rows := make([]string, len(g))
	for i, row := range g {
		vals := make([]string, len(row))
		for j, v := range row {
			vals[j] = strconv.Itoa(v)
		}
		rows[i] = strings.Join(vals, " ")
	}
	return strings.Join(rows, " / ")
}
