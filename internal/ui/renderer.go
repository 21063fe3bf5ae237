package ui

import (
	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/samdwyer/mazerun/internal/collision"
	"github.com/samdwyer/mazerun/internal/gamedata"
	"github.com/samdwyer/mazerun/internal/menu"
	"github.com/samdwyer/mazerun/internal/round"
	"github.com/samdwyer/mazerun/internal/world"
)

// overlayAlpha is how strongly the game-over overlay covers the maze.
const overlayAlpha = 200.0 / 255.0

const shadowOffset = 5

// Renderer handles drawing the game to the screen.
type Renderer struct {
	ctx   *RenderContext
	theme gamedata.Theme
}

// NewRenderer creates a new renderer for the given context and palette.
func NewRenderer(ctx *RenderContext, theme gamedata.Theme) *Renderer {
	return &Renderer{ctx: ctx, theme: theme}
}

// Context returns the underlying render context.
func (r *Renderer) Context() *RenderContext {
	return r.ctx
}

// RenderMenu draws a full-screen menu.
func (r *Renderer) RenderMenu(m *menu.Menu) {
	r.ctx.Fill(r.theme.Background)
	r.drawMenu(m, r.theme.Background)
	r.ctx.Present()
}

// RenderRound draws the maze, the goal and the player.
func (r *Renderer) RenderRound(rd *round.Round) {
	r.drawRound(rd, r.theme)
	r.ctx.Present()
}

// RenderGameOver draws the finished round faded under the outcome menu.
func (r *Renderer) RenderGameOver(rd *round.Round, m *menu.Menu) {
	faded := r.fadedTheme()
	if rd != nil {
		r.drawRound(rd, faded)
	} else {
		r.ctx.Fill(faded.Background)
	}
	r.drawMenu(m, faded.Background)
	r.ctx.Present()
}

func (r *Renderer) drawRound(rd *round.Round, theme gamedata.Theme) {
	r.ctx.Fill(theme.Background)
	r.drawMaze(rd.Maze, rd.CellSize, theme.Wall)
	r.ctx.DrawCircle(theme.Player, rd.Position, round.PlayerSize/2)
	r.ctx.DrawRect(theme.Goal, rd.Goal())
}

func (r *Renderer) drawMaze(m *world.Maze, cellSize int, wall tcell.Color) {
	for y := 0; y < m.Rows; y++ {
		for x := 0; x < m.Cols; x++ {
			if m.Tiles[y][x] == world.TileWall {
				r.ctx.DrawRect(wall, collision.CellRect(y, x, cellSize))
			}
		}
	}
}

func (r *Renderer) drawMenu(m *menu.Menu, background tcell.Color) {
	center := r.ctx.width / 2
	r.ctx.DrawText(m.Title, collision.Point{X: center, Y: m.TitleY}, r.theme.Text, background)
	if m.Separator {
		r.ctx.DrawRect(r.theme.AccentPurple, collision.Rect{X: 150, Y: m.TitleY + 60, W: 500, H: 2})
	}

	for _, b := range m.Buttons {
		shadow := b.Rect
		shadow.X += shadowOffset
		shadow.Y += shadowOffset
		r.ctx.DrawRect(r.theme.Shadow, shadow)
		r.ctx.DrawRect(b.Color, b.Rect)

		label := b.Label
		if b.Shortcut != 0 {
			label = "[" + string(b.Shortcut) + "] " + label
		}
		r.ctx.DrawText(label, b.Rect.Center(), r.theme.Text, b.Color)
	}
}

// fadedTheme blends every maze color toward the background.
func (r *Renderer) fadedTheme() gamedata.Theme {
	faded := r.theme
	faded.Wall = Blend(r.theme.Wall, r.theme.Background, overlayAlpha)
	faded.Player = Blend(r.theme.Player, r.theme.Background, overlayAlpha)
	faded.Goal = Blend(r.theme.Goal, r.theme.Background, overlayAlpha)
	return faded
}

// Blend mixes from toward to by t in [0,1].
func Blend(from, to tcell.Color, t float64) tcell.Color {
	return fromColorful(toColorful(from).BlendRgb(toColorful(to), t))
}

func toColorful(c tcell.Color) colorful.Color {
	red, green, blue := c.RGB()
	return colorful.Color{R: float64(red) / 255, G: float64(green) / 255, B: float64(blue) / 255}
}

func fromColorful(c colorful.Color) tcell.Color {
	red, green, blue := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(red), int32(green), int32(blue))
}
