// Package round runs a single maze round: movement, collision and outcome.
package round

import (
	"github.com/google/uuid"

	"github.com/samdwyer/mazerun/internal/collision"
	"github.com/samdwyer/mazerun/internal/world"
)

const (
	// PlayerSize is the edge length of the player's collision square.
	PlayerSize = 20
	// Step is how far the player moves per tick on each held axis.
	Step = 3
)

// Outcome represents the state of a round.
type Outcome int

const (
	// Ongoing - the player is still moving
	Ongoing Outcome = iota
	// Lost - the player touched a wall
	Lost
	// Won - the player reached the goal
	Won
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case Ongoing:
		return "ongoing"
	case Lost:
		return "lost"
	case Won:
		return "won"
	default:
		return "unknown"
	}
}

// Finished returns true once the round has been won or lost.
func (o Outcome) Finished() bool {
	return o == Lost || o == Won
}

// Input is the set of directions held during one tick.
type Input struct {
	Up, Down, Left, Right bool
}

// Displacement returns the movement for one tick. Opposite directions cancel
// and diagonals are not normalised.
func (in Input) Displacement() collision.Point {
	var d collision.Point
	if in.Left {
		d.X -= Step
	}
	if in.Right {
		d.X += Step
	}
	if in.Up {
		d.Y -= Step
	}
	if in.Down {
		d.Y += Step
	}
	return d
}

// Round holds the state of one maze attempt.
type Round struct {
	ID       uuid.UUID
	Maze     *world.Maze
	CellSize int
	Position collision.Point // Player center
	Outcome  Outcome
	Ticks    int // Ticks processed while ongoing

	resolver *collision.Resolver
}

// New creates a round on the given maze with the player in the entrance cell.
func New(maze *world.Maze, cellSize int) *Round {
	return &Round{
		ID:       uuid.New(),
		Maze:     maze,
		CellSize: cellSize,
		Position: StartPosition(cellSize),
		Outcome:  Ongoing,
		resolver: collision.NewResolver(maze, cellSize),
	}
}

// StartPosition returns the player's starting center for a cell size.
func StartPosition(cellSize int) collision.Point {
	offset := float64(cellSize + PlayerSize/2)
	return collision.Point{X: offset, Y: offset}
}

// Goal returns the goal square.
func (r *Round) Goal() collision.Rect {
	return r.resolver.Goal()
}

// PlayerRect returns the player's current collision square.
func (r *Round) PlayerRect() collision.Rect {
	return collision.RectAround(r.Position, PlayerSize)
}

// Tick advances the round by one frame. Touching any wall loses the round
// and leaves the player where it was; reaching the goal wins it.
func (r *Round) Tick(in Input) Outcome {
	if r.Outcome.Finished() {
		return r.Outcome
	}
	r.Ticks++

	proposed := r.Position.Add(in.Displacement())
	result := r.resolver.Resolve(collision.RectAround(proposed, PlayerSize))

	switch {
	case result.Blocked:
		r.Outcome = Lost
	case result.AtGoal:
		r.Position = proposed
		r.Outcome = Won
	default:
		r.Position = proposed
	}

	return r.Outcome
}
