package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/t2048/internal/board"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMoveFor(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want board.Move
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, board.Up},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, board.Down},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, board.Left},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, board.Right},
		{"w", runeKey('w'), board.Up},
		{"s", runeKey('s'), board.Down},
		{"a", runeKey('a'), board.Left},
		{"d", runeKey('d'), board.Right},
		{"k", runeKey('k'), board.Up},
		{"j", runeKey('j'), board.Down},
		{"h", runeKey('h'), board.Left},
		{"l", runeKey('l'), board.Right},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := km.MoveFor(tt.msg)
			if !ok || got != tt.want {
				t.Errorf("MoveFor(%q) = %v, %v; want %v, true", tt.msg.String(), got, ok, tt.want)
			}
		})
	}
}

func TestMoveForIgnoresOtherKeys(t *testing.T) {
	km := DefaultKeyMap()

	for _, msg := range []tea.KeyMsg{
		runeKey('x'),
		runeKey('q'),
		runeKey('?'),
		runeKey('W'),
		{Type: tea.KeyEnter},
		{Type: tea.KeySpace},
		{Type: tea.KeyCtrlC},
	} {
		if m, ok := km.MoveFor(msg); ok {
			t.Errorf("MoveFor(%q) = %v, want no move", msg.String(), m)
		}
	}
}

func TestHelpListsBindings(t *testing.T) {
	km := DefaultKeyMap()
	if n := len(km.ShortHelp()); n != 6 {
		t.Errorf("len(ShortHelp) = %d, want 6", n)
	}
	total := 0
	for _, col := range km.FullHelp() {
		total += len(col)
	}
	if total != 6 {
		t.Errorf("FullHelp bindings = %d, want 6", total)
	}
}
