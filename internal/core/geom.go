// Package core provides the terminal-independent drawing primitives the game
// renders into. It contains no Bubble Tea dependencies so rendering stays
// testable.
package core

// Rect is an axis-aligned rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate just past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate just past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Centered returns a w x h rectangle centered inside r, clamped to r's origin.
func (r Rect) Centered(w, h int) Rect {
	x := r.X + max(0, (r.W-w)/2)
	y := r.Y + max(0, (r.H-h)/2)
	return Rect{X: x, Y: y, W: w, H: h}
}
