// Package core provides fundamental types and utilities for the asteroids game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Coord is a cell position inside a Space.
type Coord struct {
	X, Y int
}

// Space is the bounded coordinate space of the display.
// Valid coordinates are [0, W) on x and [0, H) on y.
type Space struct {
	W, H int
}

// NewSpace creates a coordinate space. Extents below 1 are raised to 1.
func NewSpace(w, h int) Space {
	return Space{W: Max(w, 1), H: Max(h, 1)}
}

// MaxX returns the largest valid x coordinate.
func (s Space) MaxX() int {
	return s.W - 1
}

// MaxY returns the largest valid y coordinate.
func (s Space) MaxY() int {
	return s.H - 1
}

// Contains reports whether c lies inside the space.
func (s Space) Contains(c Coord) bool {
	return c.X >= 0 && c.X < s.W && c.Y >= 0 && c.Y < s.H
}

// Translate moves c by (dx, dy). The second result is false when the
// translated coordinate falls outside the space on either axis.
func (s Space) Translate(c Coord, dx, dy int) (Coord, bool) {
	moved := Coord{X: c.X + dx, Y: c.Y + dy}
	if !s.Contains(moved) {
		return Coord{}, false
	}
	return moved, true
}

// ShiftX moves x by delta, saturating at the horizontal edges.
func (s Space) ShiftX(x, delta int) int {
	return Clamp(x+delta, 0, s.MaxX())
}

// ShiftY moves y by delta, saturating at the vertical edges.
func (s Space) ShiftY(y, delta int) int {
	return Clamp(y+delta, 0, s.MaxY())
}

// Clip clamps c into the space.
func (s Space) Clip(c Coord) Coord {
	return Coord{X: Clamp(c.X, 0, s.MaxX()), Y: Clamp(c.Y, 0, s.MaxY())}
}

// Rect is an axis-aligned box described by its center and extent.
// The near edges are Center - extent/2, so odd extents lean toward the
// lower edge.
type Rect struct {
	Center Coord
	W, H   int
}

// NewRect creates a rectangle centered at (x, y). Width and height are
// always at least 1.
func NewRect(x, y, w, h int) Rect {
	return Rect{Center: Coord{X: x, Y: y}, W: Max(w, 1), H: Max(h, 1)}
}

// edges returns the saturated left, top, right and bottom edges of r.
func (s Space) edges(r Rect) (left, top, right, bottom int) {
	left = Clamp(r.Center.X-r.W/2, 0, s.MaxX())
	top = Clamp(r.Center.Y-r.H/2, 0, s.MaxY())
	right = Clamp(left+r.W, 0, s.MaxX())
	bottom = Clamp(top+r.H, 0, s.MaxY())
	return left, top, right, bottom
}

// Overlaps reports whether a and b intersect with non-zero area.
// Rectangles whose edges only touch do not overlap.
func (s Space) Overlaps(a, b Rect) bool {
	aLeft, aTop, aRight, aBottom := s.edges(a)
	bLeft, bTop, bRight, bBottom := s.edges(b)

	return aLeft < bRight && aRight > bLeft &&
		aTop < bBottom && aBottom > bTop
}

// Cells calls fn for every on-screen cell covered by r, row by row.
func (s Space) Cells(r Rect, fn func(Coord)) {
	for dy := 0; dy < r.H; dy++ {
		for dx := 0; dx < r.W; dx++ {
			if c, ok := s.Translate(r.Center, dx-r.W/2, dy-r.H/2); ok {
				fn(c)
			}
		}
	}
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
