// Package collision resolves player movement against maze walls and the goal.
package collision

import "math"

// Point is a position on the logical canvas.
type Point struct {
	X, Y float64
}

// Add returns p translated by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Rect is an axis-aligned rectangle on the logical canvas.
type Rect struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Dimensions
}

// RectAround returns a size x size square centred on c.
func RectAround(c Point, size float64) Rect {
	return Rect{X: c.X - size/2, Y: c.Y - size/2, W: size, H: size}
}

// Center returns the center of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Contains returns true if the given point is inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Intersects returns true if this rectangle overlaps another.
// Rectangles that only share an edge do not overlap.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.W &&
		r.X+r.W > other.X &&
		r.Y < other.Y+other.H &&
		r.Y+r.H > other.Y
}

// CellOf returns the grid cell containing p for square cells of the given size.
func CellOf(p Point, cellSize int) (row, col int) {
	s := float64(cellSize)
	return int(math.Floor(p.Y / s)), int(math.Floor(p.X / s))
}

// CellRect returns the canvas rectangle covered by a grid cell.
func CellRect(row, col, cellSize int) Rect {
	s := float64(cellSize)
	return Rect{X: float64(col) * s, Y: float64(row) * s, W: s, H: s}
}
