// Package core provides fundamental types and utilities for raket.
// It contains no external dependencies (especially no Bubble Tea or Ebitengine)
// to keep the simulation pure and testable.
package core

// Vec is a point or displacement in world units.
type Vec struct {
	X, Y float64
}

// Rect is an axis-aligned bounding box in world units used for collision detection.
type Rect struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// RectFromCenter creates a rectangle of the given size centered on c.
func RectFromCenter(c Vec, w, h float64) Rect {
	return Rect{X: c.X - w/2, Y: c.Y - h/2, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Intersects returns true if this rectangle overlaps with another by a
// positive area. Rectangles that only share an edge do not intersect.
func (r Rect) Intersects(other Rect) bool {
	// No overlap if one rect is completely to the left, right, above, or below
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains returns true if the point p is inside this rectangle.
// The left and top edges are inclusive, the right and bottom edges exclusive.
func (r Rect) Contains(p Vec) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Vec {
	return Vec{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Inset shrinks the rectangle by the given margin on each side.
func (r Rect) Inset(left, top, right, bottom float64) Rect {
	return Rect{
		X: r.X + left,
		Y: r.Y + top,
		W: r.W - left - right,
		H: r.H - top - bottom,
	}
}

// Cells is an integer rectangle on a character grid.
type Cells struct {
	X, Y int
	W, H int
}

// NewCells creates a new grid rectangle with the given position and dimensions.
func NewCells(x, y, w, h int) Cells {
	return Cells{X: x, Y: y, W: w, H: h}
}

// Right returns the column just past the right edge.
func (c Cells) Right() int {
	return c.X + c.W
}

// Bottom returns the row just past the bottom edge.
func (c Cells) Bottom() int {
	return c.Y + c.H
}

// Contains returns true if the cell (x, y) is inside this rectangle.
func (c Cells) Contains(x, y int) bool {
	return x >= c.X && x < c.Right() && y >= c.Y && y < c.Bottom()
}
