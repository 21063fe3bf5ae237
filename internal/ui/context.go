package ui

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/mazerun/internal/collision"
)

// Viewport maps the logical canvas onto a cols x rows terminal.
type Viewport struct {
	Cols, Rows    int
	Width, Height float64 // Logical canvas size
}

// scale returns terminal cells per logical pixel on each axis.
func (v Viewport) scale() (sx, sy float64) {
	return float64(v.Cols) / v.Width, float64(v.Rows) / v.Height
}

// ToCell returns the terminal cell containing a logical point.
func (v Viewport) ToCell(p collision.Point) (col, row int) {
	sx, sy := v.scale()
	return int(math.Floor(p.X * sx)), int(math.Floor(p.Y * sy))
}

// ToLogical returns the logical point at the center of a terminal cell.
func (v Viewport) ToLogical(col, row int) collision.Point {
	sx, sy := v.scale()
	return collision.Point{X: (float64(col) + 0.5) / sx, Y: (float64(row) + 0.5) / sy}
}

// cellsIn returns the terminal cell range whose centers fall inside rect.
func (v Viewport) cellsIn(rect collision.Rect) (minCol, minRow, maxCol, maxRow int) {
	sx, sy := v.scale()
	minCol = max(0, int(math.Ceil(rect.X*sx-0.5)))
	minRow = max(0, int(math.Ceil(rect.Y*sy-0.5)))
	maxCol = min(v.Cols, int(math.Ceil((rect.X+rect.W)*sx-0.5)))
	maxRow = min(v.Rows, int(math.Ceil((rect.Y+rect.H)*sy-0.5)))
	return minCol, minRow, maxCol, maxRow
}

// RenderContext draws logical-canvas shapes onto a Screen. It replaces a
// process-wide window: create one after the screen is initialized and stop
// using it once the screen is closed.
type RenderContext struct {
	screen *Screen
	width  float64
	height float64
}

// NewRenderContext creates a context for a width x height logical canvas.
func NewRenderContext(screen *Screen, width, height int) *RenderContext {
	return &RenderContext{
		screen: screen,
		width:  float64(width),
		height: float64(height),
	}
}

// Viewport returns the mapping for the current terminal size.
func (rc *RenderContext) Viewport() Viewport {
	cols, rows := rc.screen.Size()
	return Viewport{Cols: cols, Rows: rows, Width: rc.width, Height: rc.height}
}

// Fill paints the whole terminal with a background color.
func (rc *RenderContext) Fill(color tcell.Color) {
	style := tcell.StyleDefault.Background(color)
	cols, rows := rc.screen.Size()
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			rc.screen.SetContent(x, y, ' ', style)
		}
	}
}

// DrawRect fills the cells covered by rect. A rect smaller than one terminal
// cell still paints the cell holding its center.
func (rc *RenderContext) DrawRect(color tcell.Color, rect collision.Rect) {
	vp := rc.Viewport()
	style := tcell.StyleDefault.Background(color)

	minCol, minRow, maxCol, maxRow := vp.cellsIn(rect)
	if minCol >= maxCol || minRow >= maxRow {
		rc.paintCell(vp, rect.Center(), style)
		return
	}
	for y := minRow; y < maxRow; y++ {
		for x := minCol; x < maxCol; x++ {
			rc.screen.SetContent(x, y, ' ', style)
		}
	}
}

// DrawCircle fills the cells whose centers lie within radius of center.
func (rc *RenderContext) DrawCircle(color tcell.Color, center collision.Point, radius float64) {
	vp := rc.Viewport()
	style := tcell.StyleDefault.Background(color)

	painted := false
	bounds := collision.RectAround(center, radius*2)
	minCol, minRow, maxCol, maxRow := vp.cellsIn(bounds)
	for y := minRow; y < maxRow; y++ {
		for x := minCol; x < maxCol; x++ {
			p := vp.ToLogical(x, y)
			if math.Hypot(p.X-center.X, p.Y-center.Y) <= radius {
				rc.screen.SetContent(x, y, ' ', style)
				painted = true
			}
		}
	}
	if !painted {
		rc.paintCell(vp, center, style)
	}
}

// DrawText writes text horizontally centered on a logical point.
func (rc *RenderContext) DrawText(text string, center collision.Point, fg, bg tcell.Color) {
	vp := rc.Viewport()
	style := tcell.StyleDefault.Foreground(fg).Background(bg).Bold(true)

	col, row := vp.ToCell(center)
	runes := []rune(text)
	start := col - len(runes)/2
	for i, r := range runes {
		x := start + i
		if x < 0 || x >= vp.Cols || row < 0 || row >= vp.Rows {
			continue
		}
		rc.screen.SetContent(x, row, r, style)
	}
}

// Present flips the frame to the terminal.
func (rc *RenderContext) Present() {
	rc.screen.Show()
}

func (rc *RenderContext) paintCell(vp Viewport, p collision.Point, style tcell.Style) {
	col, row := vp.ToCell(p)
	if col < 0 || col >= vp.Cols || row < 0 || row >= vp.Rows {
		return
	}
	rc.screen.SetContent(col, row, ' ', style)
}
