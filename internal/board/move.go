package board

import "fmt"

// Move is one of the four slide directions.
type Move int

const (
	Up Move = iota
	Down
	Left
	Right
)

// Moves lists every move in evaluation order.
var Moves = [...]Move{Up, Down, Left, Right}

// String returns the lowercase direction name.
func (m Move) String() string {
	switch m {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("move(%d)", int(m))
	}
}

// ParseMove converts a direction name back into a Move.
func ParseMove(s string) (Move, error) {
	for _, m := range Moves {
		if m.String() == s {
			return m, nil
		}
	}
	return 0, fmt.Errorf("board: unknown move %q", s)
}
