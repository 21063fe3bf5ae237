package game

import (
	"context"
	"fmt"

	"github.com/go-logr/logr"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/mazerun/internal/collision"
	"github.com/samdwyer/mazerun/internal/gamedata"
	"github.com/samdwyer/mazerun/internal/menu"
	"github.com/samdwyer/mazerun/internal/round"
	"github.com/samdwyer/mazerun/internal/telemetry"
	"github.com/samdwyer/mazerun/internal/world"
)

// Outcome screen messages.
const (
	MessageLost = "You Lost!"
	MessageWon  = "You Won!"
)

// App is the top-level state machine. Every method performs one
// non-blocking dispatch, so the whole flow runs without a terminal.
type App struct {
	state       State
	running     bool
	controller  *round.Controller
	keys        *heldKeys
	theme       gamedata.Theme
	difficulty  menu.Menu
	outcomeMenu menu.Menu
	logger      logr.Logger
}

// NewApp creates an app showing the difficulty menu.
func NewApp(cfg Config, difficulties *gamedata.DifficultyRegistry, theme gamedata.Theme, logger logr.Logger) *App {
	generator := world.NewGenerator(cfg.Seed)
	return &App{
		state:      StateDifficultyMenu,
		running:    true,
		controller: round.NewController(generator, cfg.Width, cfg.Height, logger),
		keys:       newHeldKeys(cfg.HoldTicks()),
		theme:      theme,
		difficulty: menu.Difficulty(difficulties.All()),
		logger:     logger.WithName("app"),
	}
}

// State returns the current screen.
func (a *App) State() State {
	return a.state
}

// Running returns false once the player has quit.
func (a *App) Running() bool {
	return a.running
}

// Round returns the active or just-finished round, or nil on the menu.
func (a *App) Round() *round.Round {
	return a.controller.Current()
}

// Menu returns the menu for the current screen, or nil while playing.
func (a *App) Menu() *menu.Menu {
	switch a.state {
	case StateDifficultyMenu:
		return &a.difficulty
	case StateGameOver:
		return &a.outcomeMenu
	default:
		return nil
	}
}

// Quit stops the app.
func (a *App) Quit() {
	a.running = false
}

// Press handles a key press. ch is only meaningful for KeyRune.
func (a *App) Press(ctx context.Context, key Key, ch rune) error {
	if key == KeyQuit || (key == KeyRune && (ch == 'q' || ch == 'Q')) {
		a.Quit()
		return nil
	}

	switch a.state {
	case StatePlaying:
		a.keys.press(key)
	case StateDifficultyMenu, StateGameOver:
		if key != KeyRune {
			return nil
		}
		if b, ok := a.Menu().ByShortcut(ch); ok {
			return a.choose(ctx, b)
		}
	}
	return nil
}

// Click handles a mouse click at a logical canvas point.
func (a *App) Click(ctx context.Context, p collision.Point) error {
	m := a.Menu()
	if m == nil {
		return nil
	}
	if b, ok := m.HitTest(p); ok {
		return a.choose(ctx, b)
	}
	return nil
}

// Tick advances the active round by one frame.
func (a *App) Tick(ctx context.Context) {
	if a.state != StatePlaying {
		return
	}
	r := a.controller.Current()
	if r == nil {
		return
	}

	outcome := r.Tick(a.keys.input())
	a.keys.advance()

	switch outcome {
	case round.Lost:
		a.finish(ctx, MessageLost)
	case round.Won:
		a.finish(ctx, MessageWon)
	}
}

func (a *App) finish(ctx context.Context, message string) {
	a.controller.Finish(ctx)
	a.keys.reset()
	a.outcomeMenu = menu.Outcome(message, a.theme)
	a.state = StateGameOver
}

// choose applies a menu selection.
func (a *App) choose(ctx context.Context, b menu.Button) error {
	tracer := telemetry.Tracer("menu")
	ctx, span := tracer.Start(ctx, "menu.select")
	span.SetAttributes(
		attribute.String("menu.state", a.state.String()),
		attribute.String("menu.choice", b.Value),
	)
	defer span.End()

	switch {
	case a.state == StateDifficultyMenu:
		a.logger.V(1).Info("difficulty selected", "difficulty", b.Value, "cellSize", b.CellSize)
		return a.start(func() (*round.Round, error) {
			return a.controller.Start(ctx, b.CellSize)
		})
	case a.state == StateGameOver && b.Value == menu.ChoiceRestart:
		return a.start(func() (*round.Round, error) {
			return a.controller.Restart(ctx)
		})
	case a.state == StateGameOver && b.Value == menu.ChoiceHome:
		a.controller.Abandon()
		a.state = StateDifficultyMenu
	}
	return nil
}

func (a *App) start(begin func() (*round.Round, error)) error {
	if _, err := begin(); err != nil {
		return fmt.Errorf("round setup: %w", err)
	}
	a.keys.reset()
	a.state = StatePlaying
	return nil
}
