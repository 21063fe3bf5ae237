package world

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/mazerun/internal/telemetry"
)

// ErrInvalidDimension is returned when the grid is too small to carve.
var ErrInvalidDimension = errors.New("invalid maze dimension")

// direction is a two-cell carving step.
type direction struct {
	dRow, dCol int
}

var carveDirections = [4]direction{{0, 2}, {2, 0}, {0, -2}, {-2, 0}}

// frame is one level of the depth-first carve.
type frame struct {
	cell Cell
	dirs [4]direction
	next int
}

// Generator builds perfect mazes with randomized depth-first backtracking.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a generator. A seed of 0 means a random seed.
func NewGenerator(seed int64) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return NewGeneratorFromRand(rand.New(rand.NewSource(seed)))
}

// NewGeneratorFromRand creates a generator drawing from an existing source.
func NewGeneratorFromRand(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// Generate carves a new rows x cols maze.
func (g *Generator) Generate(ctx context.Context, rows, cols int) (*Maze, error) {
	if rows < MinDimension || cols < MinDimension {
		return nil, fmt.Errorf("%w: %dx%d, need at least %dx%d",
			ErrInvalidDimension, rows, cols, MinDimension, MinDimension)
	}

	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "maze.generate")
	defer span.End()

	startTime := time.Now()

	m := newMaze(rows, cols)
	g.carve(m, m.Entrance())

	m.Tiles[1][1] = TileOpen
	m.attachExit()

	span.SetAttributes(
		attribute.Int("maze.rows", rows),
		attribute.Int("maze.cols", cols),
		attribute.Int("maze.open_cells", m.OpenCount()),
		attribute.Int64("maze.generation_us", time.Since(startTime).Microseconds()),
	)

	return m, nil
}

// carve runs the backtracker from start using an explicit stack. Each frame
// keeps its own shuffled direction list so cells are visited in the same
// order a recursive carve would visit them.
func (g *Generator) carve(m *Maze, start Cell) {
	stack := []frame{g.enter(m, start)}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next >= len(top.dirs) {
			stack = stack[:len(stack)-1]
			continue
		}

		d := top.dirs[top.next]
		top.next++

		next := Cell{Row: top.cell.Row + d.dRow, Col: top.cell.Col + d.dCol}
		if !m.carvable(next) {
			continue
		}

		m.Tiles[top.cell.Row+d.dRow/2][top.cell.Col+d.dCol/2] = TileOpen
		stack = append(stack, g.enter(m, next))
	}
}

// enter opens a cell and shuffles the order its neighbours are tried in.
func (g *Generator) enter(m *Maze, c Cell) frame {
	m.Tiles[c.Row][c.Col] = TileOpen
	f := frame{cell: c, dirs: carveDirections}
	g.rng.Shuffle(len(f.dirs), func(i, j int) {
		f.dirs[i], f.dirs[j] = f.dirs[j], f.dirs[i]
	})
	return f
}

// carvable reports whether a cell is inside the border ring and still a wall.
func (m *Maze) carvable(c Cell) bool {
	if c.Row <= 0 || c.Row >= m.Rows-1 || c.Col <= 0 || c.Col >= m.Cols-1 {
		return false
	}
	return m.Tiles[c.Row][c.Col] == TileWall
}

// attachExit opens the exit cell. On grids with an even row or column count
// the exit sits off the carving lattice, so it is joined to the nearest
// lattice cell by a short spur, horizontal leg first.
func (m *Maze) attachExit() {
	exit := m.Exit()
	anchor := Cell{Row: exit.Row, Col: exit.Col}
	if anchor.Row%2 == 0 {
		anchor.Row--
	}
	if anchor.Col%2 == 0 {
		anchor.Col--
	}

	for col := anchor.Col; col <= exit.Col; col++ {
		m.Tiles[anchor.Row][col] = TileOpen
	}
	for row := anchor.Row; row <= exit.Row; row++ {
		m.Tiles[row][exit.Col] = TileOpen
	}
}
