package game

import (
	"fmt"
	"io"
	"math/bits"
	"strconv"
	"strings"

	"github.com/vovakirdan/t2048/internal/board"
)

// minCellWidth is the column width used for boards whose tiles fit in four digits.
const minCellWidth = 5

// CellLabel formats a tile value, or its log2 when log2 is set.
func CellLabel(v int, log2 bool) string {
	if log2 && v > 0 {
		v = bits.Len(uint(v)) - 1
	}
	return strconv.Itoa(v)
}

// CellWidth returns the fixed column width for g: wide enough for its largest
// label plus one space.
func CellWidth(g board.Grid, log2 bool) int {
	return max(minCellWidth, len(CellLabel(g.MaxTile(), log2))+1)
}

// TextRenderer writes each frame as plain text, one row per line, with every
// value left-justified in a fixed-width column.
type TextRenderer struct {
	W    io.Writer
	Log2 bool
}

// Render writes the grid followed by a blank line.
func (t TextRenderer) Render(g board.Grid, over bool) error {
	width := CellWidth(g, t.Log2)

	var sb strings.Builder
	for _, row := range g {
		var line strings.Builder
		for _, v := range row {
			fmt.Fprintf(&line, "%-*s", width, CellLabel(v, t.Log2))
		}
		sb.WriteString(strings.TrimRight(line.String(), " "))
		sb.WriteByte('\n')
	}
	if over {
		sb.WriteString("\nGame Over!\n")
	}
	sb.WriteByte('\n')

	_, err := io.WriteString(t.W, sb.String())
	return err
}
