package world

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// difficulty-sized grids on the default canvas plus a few odd shapes
var testDimensions = []struct {
	name       string
	rows, cols int
}{
	{"easy", 10, 13},
	{"normal", 15, 20},
	{"hard", 30, 40},
	{"odd square", 21, 21},
	{"minimum", 3, 3},
	{"even minimum", 4, 4},
	{"tall", 41, 5},
	{"wide", 5, 41},
}

func generate(t *testing.T, seed int64, rows, cols int) *Maze {
	t.Helper()
	m, err := NewGenerator(seed).Generate(context.Background(), rows, cols)
	require.NoError(t, err)
	require.NotNil(t, m)
	return m
}

func TestMazeIsPerfect(t *testing.T) {
	for _, tt := range testDimensions {
		t.Run(tt.name, func(t *testing.T) {
			for seed := int64(1); seed <= 20; seed++ {
				m := generate(t, seed, tt.rows, tt.cols)

				open := m.OpenCount()
				assert.Equal(t, open, reachableFrom(m, m.Entrance()),
					"seed %d: every open cell must be reachable from the entrance", seed)
				assert.Equal(t, open-1, adjacentOpenPairs(m),
					"seed %d: carved connections must form a tree", seed)
			}
		})
	}
}

func TestMazeBorderStaysWall(t *testing.T) {
	for _, tt := range testDimensions {
		if tt.rows < 5 || tt.cols < 5 {
			continue
		}
		t.Run(tt.name, func(t *testing.T) {
			m := generate(t, 42, tt.rows, tt.cols)
			for col := 0; col < m.Cols; col++ {
				assert.Equal(t, TileWall, m.Tiles[0][col], "top border at col %d", col)
				assert.Equal(t, TileWall, m.Tiles[m.Rows-1][col], "bottom border at col %d", col)
			}
			for row := 0; row < m.Rows; row++ {
				assert.Equal(t, TileWall, m.Tiles[row][0], "left border at row %d", row)
				assert.Equal(t, TileWall, m.Tiles[row][m.Cols-1], "right border at row %d", row)
			}
		})
	}
}

func TestMazeEntranceAndExitOpen(t *testing.T) {
	for _, tt := range testDimensions {
		t.Run(tt.name, func(t *testing.T) {
			for seed := int64(1); seed <= 10; seed++ {
				m := generate(t, seed, tt.rows, tt.cols)
				assert.True(t, m.IsOpen(1, 1), "entrance must be open")
				assert.True(t, m.IsOpen(tt.rows-2, tt.cols-2), "exit must be open")
				assert.Equal(t, Cell{Row: tt.rows - 2, Col: tt.cols - 2}, m.Exit())
			}
		})
	}
}

func TestMazeReproducibility(t *testing.T) {
	seed := int64(12345)

	m1 := generate(t, seed, 30, 40)
	m2 := generate(t, seed, 30, 40)

	assert.Equal(t, m1.Tiles, m2.Tiles)
	assert.Equal(t, m1.String(), m2.String())
}

func TestMazeDifferentSeeds(t *testing.T) {
	m1 := generate(t, 12345, 30, 40)
	m2 := generate(t, 54321, 30, 40)

	assert.NotEqual(t, m1.String(), m2.String(), "different seeds should carve different mazes")
}

func TestGeneratorStreamVariesBetweenMazes(t *testing.T) {
	gen := NewGeneratorFromRand(rand.New(rand.NewSource(7)))
	ctx := context.Background()

	first, err := gen.Generate(ctx, 15, 20)
	require.NoError(t, err)
	second, err := gen.Generate(ctx, 15, 20)
	require.NoError(t, err)

	assert.NotEqual(t, first.String(), second.String())
}

func TestGenerateRejectsSmallGrids(t *testing.T) {
	tests := []struct {
		rows, cols int
	}{
		{2, 2},
		{0, 0},
		{2, 10},
		{10, 2},
		{-1, 5},
	}

	for _, tt := range tests {
		m, err := NewGenerator(0).Generate(context.Background(), tt.rows, tt.cols)
		assert.ErrorIs(t, err, ErrInvalidDimension, "%dx%d", tt.rows, tt.cols)
		assert.Nil(t, m)
	}
}

func TestDimensionsFor(t *testing.T) {
	tests := []struct {
		cellSize   int
		rows, cols int
	}{
		{60, 10, 13},
		{40, 15, 20},
		{20, 30, 40},
		{0, 0, 0},
	}

	for _, tt := range tests {
		rows, cols := DimensionsFor(DefaultWidth, DefaultHeight, tt.cellSize)
		assert.Equal(t, tt.rows, rows, "rows for cell size %d", tt.cellSize)
		assert.Equal(t, tt.cols, cols, "cols for cell size %d", tt.cellSize)
	}
}

func TestMazeTileAtOffGrid(t *testing.T) {
	m := generate(t, 1, 5, 5)

	assert.Equal(t, TileWall, m.TileAt(-1, 0))
	assert.Equal(t, TileWall, m.TileAt(0, 99))
	assert.False(t, m.IsOpen(5, 5))
}

func TestMinimumMazeLayout(t *testing.T) {
	m := generate(t, 1, 3, 3)

	assert.Equal(t, "###\n# #\n###\n", m.String())
}

// reachableFrom counts open cells reachable from start with a flood fill.
func reachableFrom(m *Maze, start Cell) int {
	if !m.IsOpen(start.Row, start.Col) {
		return 0
	}
	seen := map[Cell]bool{start: true}
	queue := []Cell{start}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		for _, d := range [4]Cell{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
			n := Cell{Row: c.Row + d.Row, Col: c.Col + d.Col}
			if m.IsOpen(n.Row, n.Col) && !seen[n] {
				seen[n] = true
				queue = append(queue, n)
			}
		}
	}
	return len(seen)
}

// adjacentOpenPairs counts orthogonally adjacent open cell pairs.
func adjacentOpenPairs(m *Maze) int {
	pairs := 0
	for row := 0; row < m.Rows; row++ {
		for col := 0; col < m.Cols; col++ {
			if !m.IsOpen(row, col) {
				continue
			}
			if m.IsOpen(row, col+1) {
				pairs++
			}
			if m.IsOpen(row+1, col) {
				pairs++
			}
		}
	}
	return pairs
}
