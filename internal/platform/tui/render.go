package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/t2048/internal/core"
)

// colorStyles maps core.Color to lipgloss styles. Tile colors approximate the
// classic 2048 palette in the 256-color range.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorGray:        lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	core.ColorBrightWhite: lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
	core.ColorBrightRed:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	core.ColorCyan:        lipgloss.NewStyle().Foreground(lipgloss.Color("6")),

	core.ColorTile2:     lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
	core.ColorTile4:     lipgloss.NewStyle().Foreground(lipgloss.Color("230")),
	core.ColorTile8:     lipgloss.NewStyle().Foreground(lipgloss.Color("215")),
	core.ColorTile16:    lipgloss.NewStyle().Foreground(lipgloss.Color("209")),
	core.ColorTile32:    lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
	core.ColorTile64:    lipgloss.NewStyle().Foreground(lipgloss.Color("202")),
	core.ColorTile128:   lipgloss.NewStyle().Foreground(lipgloss.Color("221")).Bold(true),
	core.ColorTile256:   lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true),
	core.ColorTile512:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
	core.ColorTile1024:  lipgloss.NewStyle().Foreground(lipgloss.Color("178")).Bold(true),
	core.ColorTile2048:  lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
	core.ColorTileSuper: lipgloss.NewStyle().Foreground(lipgloss.Color("201")).Bold(true),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells with the same color share one styled run.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
