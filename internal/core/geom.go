// Package core provides fundamental types and utilities shared by the game
// engine and the terminal shell. It has no Bubble Tea dependency so that the
// simulation stays pure and testable.
package core

// Rect is an axis-aligned rectangle in normalized world space.
// The origin is the bottom-left corner: X grows rightward, Y grows upward.
type Rect struct {
	X, Y float64 // Left edge and bottom edge
	W, H float64 // Width and height
}

// NewRect creates a rectangle from its left, bottom, width and height.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Top returns the y-coordinate of the top edge.
func (r Rect) Top() float64 {
	return r.Y + r.H
}

// Overlaps reports whether the two rectangles share an area larger than zero.
// Rectangles that only touch along an edge or a corner do not overlap, and a
// rectangle without area overlaps nothing.
func (r Rect) Overlaps(other Rect) bool {
	if r.W <= 0 || r.H <= 0 || other.W <= 0 || other.H <= 0 {
		return false
	}
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Top() || other.Y >= r.Top() {
		return false
	}
	return true
}

// MoveTo returns a copy of the rectangle with its bottom-left corner at (x, y).
func (r Rect) MoveTo(x, y float64) Rect {
	r.X, r.Y = x, y
	return r
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
