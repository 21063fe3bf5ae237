package world

import "strings"

const (
	// Default logical canvas dimensions
	DefaultWidth  = 800
	DefaultHeight = 600

	// MinDimension is the smallest row/column count that can hold a carved cell.
	MinDimension = 3
)

// Cell addresses a single maze cell by row and column.
type Cell struct {
	Row, Col int
}

// Maze represents a generated grid of wall and open cells.
// A maze is never mutated once Generate returns it.
type Maze struct {
	Rows  int
	Cols  int
	Tiles [][]Tile // Tiles[row][col]
}

// DimensionsFor returns the grid size that fits a width x height canvas
// with square cells of the given size.
func DimensionsFor(width, height, cellSize int) (rows, cols int) {
	if cellSize <= 0 {
		return 0, 0
	}
	return height / cellSize, width / cellSize
}

// newMaze creates a maze filled with walls.
func newMaze(rows, cols int) *Maze {
	tiles := make([][]Tile, rows)
	for y := range tiles {
		tiles[y] = make([]Tile, cols)
		for x := range tiles[y] {
			tiles[y][x] = TileWall
		}
	}

	return &Maze{
		Rows:  rows,
		Cols:  cols,
		Tiles: tiles,
	}
}

// Entrance returns the cell the player starts in.
func (m *Maze) Entrance() Cell {
	return Cell{Row: 1, Col: 1}
}

// Exit returns the goal cell.
func (m *Maze) Exit() Cell {
	return Cell{Row: m.Rows - 2, Col: m.Cols - 2}
}

// InBounds reports whether the cell lies on the grid.
func (m *Maze) InBounds(row, col int) bool {
	return row >= 0 && row < m.Rows && col >= 0 && col < m.Cols
}

// TileAt returns the tile at the given position. Anything off the grid is a wall.
func (m *Maze) TileAt(row, col int) Tile {
	if !m.InBounds(row, col) {
		return TileWall
	}
	return m.Tiles[row][col]
}

// IsOpen returns true if the given position has been carved.
func (m *Maze) IsOpen(row, col int) bool {
	return m.TileAt(row, col).IsOpen()
}

// OpenCount returns the number of carved cells.
func (m *Maze) OpenCount() int {
	count := 0
	for _, row := range m.Tiles {
		for _, t := range row {
			if t.IsOpen() {
				count++
			}
		}
	}
	return count
}

// String renders the maze one row per line.
func (m *Maze) String() string {
	var b strings.Builder
	b.Grow(m.Rows * (m.Cols + 1))
	for _, row := range m.Tiles {
		for _, t := range row {
			b.WriteRune(t.Rune())
		}
		b.WriteByte('\n')
	}
	return b.String()
}
