// Package world provides maze generation and map management.
package world

// Tile represents a single maze cell.
type Tile rune

const (
	// TileWall represents an impassable wall cell.
	TileWall Tile = '#'
	// TileOpen represents a carved corridor cell.
	TileOpen Tile = ' '
)

// IsOpen returns true if the tile has been carved.
func (t Tile) IsOpen() bool {
	return t == TileOpen
}

// Rune returns the tile's display character.
func (t Tile) Rune() rune {
	return rune(t)
}
