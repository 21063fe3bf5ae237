package game

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/go-logr/logr"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/mazerun/internal/gamedata"
	"github.com/samdwyer/mazerun/internal/telemetry"
	"github.com/samdwyer/mazerun/internal/ui"
)

// Game binds the App state machine to a terminal.
type Game struct {
	cfg      Config
	screen   *ui.Screen
	renderer *ui.Renderer
	app      *App
	logger   logr.Logger

	buttons tcell.ButtonMask // Mouse buttons held at the last mouse event
}

// New creates a new game instance on the real terminal.
func New(cfg Config, logger logr.Logger) (*Game, error) {
	difficulties, err := gamedata.LoadDifficultyRegistry()
	if err != nil {
		return nil, fmt.Errorf("load difficulties: %w", err)
	}
	theme, err := gamedata.LoadTheme()
	if err != nil {
		return nil, fmt.Errorf("load theme: %w", err)
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	return &Game{
		cfg:      cfg,
		screen:   screen,
		renderer: ui.NewRenderer(ui.NewRenderContext(screen, cfg.Width, cfg.Height), theme),
		app:      NewApp(cfg, difficulties, theme, logger),
		logger:   logger,
	}, nil
}

// Run executes the main game loop until the player quits or round setup fails.
func (g *Game) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("game")
	_, initSpan := tracer.Start(ctx, "game.init")
	initSpan.SetAttributes(
		attribute.Int("canvas.width", g.cfg.Width),
		attribute.Int("canvas.height", g.cfg.Height),
		attribute.Int("fps", g.cfg.FPS),
		attribute.Int64("seed", g.cfg.Seed),
	)
	initSpan.End()

	ticker := time.NewTicker(g.cfg.TickInterval())
	defer ticker.Stop()

	// The pump is the only other goroutine; it stops once Close makes
	// PollEvent return nil.
	events := make(chan tcell.Event, 100)
	screen := g.screen
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()
	defer g.Close()

	g.render()
	for g.app.Running() {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if err := g.handleEvent(ctx, ev); err != nil {
				return err
			}
		case <-ticker.C:
			g.app.Tick(ctx)
			g.render()
		}
	}

	g.logger.Info("player quit")
	return nil
}

// handleEvent processes a single terminal event.
func (g *Game) handleEvent(ctx context.Context, ev tcell.Event) error {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		key, ch := translateKey(ev)
		return g.app.Press(ctx, key, ch)
	case *tcell.EventMouse:
		// Drags and motion repeat the held mask; only the press is a click.
		held := g.buttons
		g.buttons = ev.Buttons()
		if ev.Buttons()&tcell.Button1 == 0 || held&tcell.Button1 != 0 {
			return nil
		}
		col, row := ev.Position()
		return g.app.Click(ctx, g.renderer.Context().Viewport().ToLogical(col, row))
	case *tcell.EventResize:
		g.screen.Sync()
	}
	return nil
}

// translateKey maps a terminal key event onto a game key.
func translateKey(ev *tcell.EventKey) (Key, rune) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return KeyQuit, 0
	case tcell.KeyUp:
		return KeyUp, 0
	case tcell.KeyDown:
		return KeyDown, 0
	case tcell.KeyLeft:
		return KeyLeft, 0
	case tcell.KeyRight:
		return KeyRight, 0
	case tcell.KeyRune:
		return KeyRune, ev.Rune()
	default:
		return KeyNone, 0
	}
}

// render draws the current screen.
func (g *Game) render() {
	switch g.app.State() {
	case StateDifficultyMenu:
		g.renderer.RenderMenu(g.app.Menu())
	case StatePlaying:
		g.renderer.RenderRound(g.app.Round())
	case StateGameOver:
		g.renderer.RenderGameOver(g.app.Round(), g.app.Menu())
	}
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
		g.screen = nil
	}
}
