// Package tui runs the game as a Bubble Tea program. It maps keys to moves,
// paces AI players with tick messages, and turns the drawing buffer into
// styled terminal output.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg asks an AI-driven model to play its next move.
type TickMsg time.Time

// tickCmd schedules the next AI move after delay.
func tickCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
