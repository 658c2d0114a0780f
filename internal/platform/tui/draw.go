package tui

import (
	"fmt"

	"github.com/vovakirdan/t2048/internal/board"
	"github.com/vovakirdan/t2048/internal/core"
	"github.com/vovakirdan/t2048/internal/game"
)

// Layout rows above and below the board box.
const (
	titleRows  = 2
	footerRows = 3
	minWidth   = 36
)

// frame is everything one view draws.
type frame struct {
	grid   board.Grid
	log2   bool
	over   bool
	turns  int
	player string
}

// boxSize returns the board box dimensions for a grid of n cells per side.
// Cells are separated by one space and rows by one blank line.
func boxSize(n, cellWidth int) (w, h int) {
	return n*(cellWidth+1) + 3, 2*n + 1
}

// screenSize returns the buffer size needed to draw f.
func screenSize(f frame) (w, h int) {
	bw, bh := boxSize(f.grid.Size(), game.CellWidth(f.grid, f.log2))
	return max(bw, minWidth), titleRows + bh + footerRows
}

// draw renders f into s, which must be at least screenSize(f).
func draw(s *core.Screen, f frame) {
	s.Clear()
	s.DrawTextCentered(0, "2048", core.ColorBrightWhite)

	cw := game.CellWidth(f.grid, f.log2)
	bw, bh := boxSize(f.grid.Size(), cw)
	box := core.NewRect(0, titleRows, s.Width(), bh).Centered(bw, bh)
	s.DrawBox(box, core.ColorGray)

	for r, row := range f.grid {
		y := box.Y + 1 + 2*r
		for c, v := range row {
			x := box.X + 2 + c*(cw+1)
			s.DrawTextColored(x, y, game.CellLabel(v, f.log2), core.TileColor(v))
		}
	}

	status := fmt.Sprintf("turns %d  %s", f.turns, f.player)
	s.DrawTextCentered(box.Bottom()+1, status, core.ColorCyan)
	if f.over {
		s.DrawTextCentered(box.Bottom()+2, "Game Over! press any key", core.ColorBrightRed)
	}
}
