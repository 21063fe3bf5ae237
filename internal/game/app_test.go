package game

import (
	"context"
	"testing"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/mazerun/internal/collision"
	"github.com/samdwyer/mazerun/internal/gamedata"
	"github.com/samdwyer/mazerun/internal/menu"
	"github.com/samdwyer/mazerun/internal/round"
	"github.com/samdwyer/mazerun/internal/world"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Seed = 42
	return NewApp(cfg, gamedata.MustLoadDifficultyRegistry(), gamedata.MustLoadTheme(), logr.Discard())
}

// loseRound walks the player into the top border, which is always a wall.
func loseRound(t *testing.T, app *App) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, app.Press(ctx, KeyUp, 0))
	for i := 0; i < 10 && app.State() == StatePlaying; i++ {
		app.Tick(ctx)
	}
	require.Equal(t, StateGameOver, app.State())
}

func TestStateString(t *testing.T) {
	tests := []struct {
		state    State
		expected string
	}{
		{StateDifficultyMenu, "difficulty_menu"},
		{StatePlaying, "playing"},
		{StateGameOver, "game_over"},
		{State(99), "unknown"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.state.String())
	}
}

func TestNewAppShowsDifficultyMenu(t *testing.T) {
	app := newTestApp(t)

	assert.Equal(t, StateDifficultyMenu, app.State())
	assert.True(t, app.Running())
	assert.Nil(t, app.Round())
	require.NotNil(t, app.Menu())
	assert.Len(t, app.Menu().Buttons, 3)
}

func TestDifficultyShortcutsStartRound(t *testing.T) {
	tests := []struct {
		shortcut rune
		cellSize int
	}{
		{'1', 60},
		{'2', 40},
		{'3', 20},
	}

	for _, tt := range tests {
		t.Run(string(tt.shortcut), func(t *testing.T) {
			app := newTestApp(t)
			require.NoError(t, app.Press(context.Background(), KeyRune, tt.shortcut))

			assert.Equal(t, StatePlaying, app.State())
			assert.Nil(t, app.Menu())
			r := app.Round()
			require.NotNil(t, r)
			assert.Equal(t, tt.cellSize, r.CellSize)
			assert.Equal(t, round.StartPosition(tt.cellSize), r.Position)

			rows, cols := world.DimensionsFor(world.DefaultWidth, world.DefaultHeight, tt.cellSize)
			assert.Equal(t, rows, r.Maze.Rows)
			assert.Equal(t, cols, r.Maze.Cols)
		})
	}
}

func TestClickDifficultyButton(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()

	// Between the buttons nothing happens.
	require.NoError(t, app.Click(ctx, collision.Point{X: 400, Y: 300}))
	assert.Equal(t, StateDifficultyMenu, app.State())

	// Normal is the second button.
	require.NoError(t, app.Click(ctx, collision.Point{X: 400, Y: 350}))
	assert.Equal(t, StatePlaying, app.State())
	assert.Equal(t, 40, app.Round().CellSize)
}

func TestUnknownKeysIgnoredOnMenu(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()

	require.NoError(t, app.Press(ctx, KeyUp, 0))
	require.NoError(t, app.Press(ctx, KeyRune, 'x'))
	app.Tick(ctx)

	assert.Equal(t, StateDifficultyMenu, app.State())
	assert.Nil(t, app.Round())
}

func TestWallCollisionEndsRound(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()
	require.NoError(t, app.Press(ctx, KeyRune, '1'))
	start := app.Round().Position

	loseRound(t, app)

	r := app.Round()
	require.NotNil(t, r)
	assert.Equal(t, round.Lost, r.Outcome)
	assert.Equal(t, start, r.Position, "a losing move is never applied")

	m := app.Menu()
	require.NotNil(t, m)
	assert.Equal(t, MessageLost, m.Title)
	require.Len(t, m.Buttons, 2)
	assert.Equal(t, menu.ChoiceRestart, m.Buttons[0].Value)
	assert.Equal(t, menu.ChoiceHome, m.Buttons[1].Value)
}

func TestTickIgnoredAfterRoundEnds(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()
	require.NoError(t, app.Press(ctx, KeyRune, '3'))
	loseRound(t, app)

	ticks := app.Round().Ticks
	require.NoError(t, app.Press(ctx, KeyDown, 0))
	app.Tick(ctx)

	assert.Equal(t, ticks, app.Round().Ticks)
	assert.Equal(t, StateGameOver, app.State())
}

func TestRestartGeneratesNewRoundAtSameDifficulty(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()
	require.NoError(t, app.Press(ctx, KeyRune, '2'))
	first := app.Round()
	loseRound(t, app)

	require.NoError(t, app.Press(ctx, KeyRune, 'R'))

	assert.Equal(t, StatePlaying, app.State())
	second := app.Round()
	require.NotNil(t, second)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, 40, second.CellSize)
	assert.Equal(t, round.Ongoing, second.Outcome)
	assert.Equal(t, round.StartPosition(40), second.Position)
	assert.Zero(t, second.Ticks)
}

func TestRestartReleasesHeldKeys(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()
	require.NoError(t, app.Press(ctx, KeyRune, '1'))
	loseRound(t, app)

	require.NoError(t, app.Click(ctx, collision.Point{X: 400, Y: 385}))
	require.Equal(t, StatePlaying, app.State())

	app.Tick(ctx)
	assert.Equal(t, round.StartPosition(60), app.Round().Position)
	assert.Equal(t, round.Ongoing, app.Round().Outcome)
}

func TestMainMenuReturnsToDifficultySelection(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()
	require.NoError(t, app.Press(ctx, KeyRune, '1'))
	loseRound(t, app)

	require.NoError(t, app.Click(ctx, collision.Point{X: 400, Y: 485}))

	assert.Equal(t, StateDifficultyMenu, app.State())
	assert.Nil(t, app.Round())

	require.NoError(t, app.Press(ctx, KeyRune, '3'))
	assert.Equal(t, 20, app.Round().CellSize)
}

func TestQuitKeys(t *testing.T) {
	tests := []struct {
		name string
		key  Key
		ch   rune
	}{
		{"lower q", KeyRune, 'q'},
		{"upper Q", KeyRune, 'Q'},
		{"quit key", KeyQuit, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(t)
			require.NoError(t, app.Press(context.Background(), KeyRune, '1'))
			require.NoError(t, app.Press(context.Background(), tt.key, tt.ch))
			assert.False(t, app.Running())
		})
	}
}

func TestRoundSetupFailureIsReturned(t *testing.T) {
	// 300 pixel cells leave a 2x2 grid on an 800x600 canvas.
	registry, err := gamedata.NewDifficultyRegistry([]gamedata.DifficultyDef{
		{ID: "huge", Name: "Huge", CellSize: 300, Color: "#FFFFFF", Shortcut: "h"},
	})
	require.NoError(t, err)
	app := NewApp(DefaultConfig(), registry, gamedata.MustLoadTheme(), logr.Discard())

	err = app.Press(context.Background(), KeyRune, 'h')

	require.ErrorIs(t, err, world.ErrInvalidDimension)
	assert.Equal(t, StateDifficultyMenu, app.State())
}

func TestHeldKeys(t *testing.T) {
	h := newHeldKeys(2)
	h.press(KeyUp)
	h.press(KeyRight)
	h.press(KeyQuit)

	assert.Equal(t, round.Input{Up: true, Right: true}, h.input())
	h.advance()
	assert.Equal(t, round.Input{Up: true, Right: true}, h.input())

	// Auto-repeat refreshes one direction only.
	h.press(KeyUp)
	h.advance()
	assert.Equal(t, round.Input{Up: true}, h.input())

	h.reset()
	assert.Equal(t, round.Input{}, h.input())
}

func TestHeldKeysHoldsAtLeastOneTick(t *testing.T) {
	h := newHeldKeys(0)
	h.press(KeyLeft)
	assert.True(t, h.input().Left)
	h.advance()
	assert.False(t, h.input().Left)
}
