package collision

import "github.com/samdwyer/mazerun/internal/world"

// GoalSize is the edge length of the goal square.
const GoalSize = 20

// Result is the outcome of checking a proposed player rectangle.
type Result struct {
	Blocked bool // Overlaps a wall cell near the rectangle's center
	AtGoal  bool // Overlaps the goal square
}

// Resolver checks rectangles against one maze.
type Resolver struct {
	maze     *world.Maze
	cellSize int
	goal     Rect
}

// NewResolver creates a resolver for a maze drawn with the given cell size.
func NewResolver(maze *world.Maze, cellSize int) *Resolver {
	return &Resolver{
		maze:     maze,
		cellSize: cellSize,
		goal:     GoalRect(maze, cellSize),
	}
}

// GoalRect returns the goal square centred in the maze's exit cell.
func GoalRect(maze *world.Maze, cellSize int) Rect {
	exit := maze.Exit()
	return RectAround(CellRect(exit.Row, exit.Col, cellSize).Center(), GoalSize)
}

// Goal returns the goal square.
func (r *Resolver) Goal() Rect {
	return r.goal
}

// Resolve checks rect against the walls in the 3x3 block of cells around
// its center cell and against the goal. The block is clamped to the grid.
func (r *Resolver) Resolve(rect Rect) Result {
	row, col := CellOf(rect.Center(), r.cellSize)

	result := Result{AtGoal: rect.Intersects(r.goal)}

	for y := max(0, row-1); y < min(r.maze.Rows, row+2); y++ {
		for x := max(0, col-1); x < min(r.maze.Cols, col+2); x++ {
			if r.maze.Tiles[y][x].IsOpen() {
				continue
			}
			if rect.Intersects(CellRect(y, x, r.cellSize)) {
				result.Blocked = true
				return result
			}
		}
	}

	return result
}
