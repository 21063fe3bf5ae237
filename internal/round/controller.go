package round

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-logr/logr"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/samdwyer/mazerun/internal/telemetry"
	"github.com/samdwyer/mazerun/internal/world"
)

// ErrNoRound is returned by Restart before any round has been started.
var ErrNoRound = errors.New("no round to restart")

// Controller creates rounds on a fixed canvas and remembers the last
// difficulty so a finished round can be restarted.
type Controller struct {
	generator *world.Generator
	width     int
	height    int
	logger    logr.Logger

	cellSize int
	current  *Round
}

// NewController creates a controller for a width x height canvas.
func NewController(generator *world.Generator, width, height int, logger logr.Logger) *Controller {
	return &Controller{
		generator: generator,
		width:     width,
		height:    height,
		logger:    logger.WithName("round"),
	}
}

// Current returns the active round, or nil.
func (c *Controller) Current() *Round {
	return c.current
}

// CellSize returns the cell size of the last started round.
func (c *Controller) CellSize() int {
	return c.cellSize
}

// Start generates a fresh maze for the given cell size and begins a round on it.
func (c *Controller) Start(ctx context.Context, cellSize int) (*Round, error) {
	tracer := telemetry.Tracer("round")
	ctx, span := tracer.Start(ctx, "round.start")
	defer span.End()

	if cellSize <= 0 {
		err := fmt.Errorf("%w: cell size %d", world.ErrInvalidDimension, cellSize)
		span.RecordError(err)
		span.SetStatus(codes.Error, "invalid cell size")
		return nil, err
	}

	rows, cols := world.DimensionsFor(c.width, c.height, cellSize)
	maze, err := c.generator.Generate(ctx, rows, cols)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "maze generation failed")
		return nil, fmt.Errorf("start round with cell size %d: %w", cellSize, err)
	}

	r := New(maze, cellSize)
	c.cellSize = cellSize
	c.current = r

	span.SetAttributes(
		attribute.String("round.id", r.ID.String()),
		attribute.Int("round.cell_size", cellSize),
		attribute.Int("maze.rows", rows),
		attribute.Int("maze.cols", cols),
	)
	c.logger.V(1).Info("round started", "id", r.ID, "cellSize", cellSize, "rows", rows, "cols", cols)

	return r, nil
}

// Restart begins a new round at the last cell size with a newly carved maze.
func (c *Controller) Restart(ctx context.Context) (*Round, error) {
	if c.cellSize == 0 {
		return nil, ErrNoRound
	}
	return c.Start(ctx, c.cellSize)
}

// Finish records the end of the current round.
func (c *Controller) Finish(ctx context.Context) {
	r := c.current
	if r == nil {
		return
	}

	tracer := telemetry.Tracer("round")
	_, span := tracer.Start(ctx, "round.end")
	span.SetAttributes(
		attribute.String("round.id", r.ID.String()),
		attribute.String("round.outcome", r.Outcome.String()),
		attribute.Int("round.ticks", r.Ticks),
		attribute.Int("round.cell_size", r.CellSize),
	)
	span.End()

	c.logger.Info("round finished", "id", r.ID, "outcome", r.Outcome.String(), "ticks", r.Ticks)
}

// Abandon drops the current round without recording an outcome.
func (c *Controller) Abandon() {
	c.current = nil
}
