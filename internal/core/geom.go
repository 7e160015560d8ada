// Package core provides fundamental types and utilities for the game platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Rect represents an axis-aligned rectangle on the screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Centered returns a w x h rectangle centered inside r.
// Offsets are clamped so the result never starts left of or above r.
func (r Rect) Centered(w, h int) Rect {
	return Rect{
		X: r.X + max(0, (r.W-w)/2),
		Y: r.Y + max(0, (r.H-h)/2),
		W: w,
		H: h,
	}
}
