// Package core provides the platform's basic types: the screen buffer,
// colors, input actions and the runtime config handed to games.
// It has no Bubble Tea dependency so games stay pure and testable.
package core

// Rect is an area of the screen. Right and Bottom are exclusive.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect creates a rectangle at (x, y) of size w x h.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// CenteredRect returns a w x h rectangle centered in an area of size areaW x areaH.
func CenteredRect(w, h, areaW, areaH int) Rect {
	return NewRect((areaW-w)/2, (areaH-h)/2, w, h)
}

func (r Rect) Right() int {
	return r.X + r.W
}

func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}
