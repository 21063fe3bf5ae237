// Package menu lays out the difficulty and game-over screens as clickable buttons.
package menu

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/mazerun/internal/collision"
	"github.com/samdwyer/mazerun/internal/gamedata"
)

// Choice values returned by the outcome screen.
const (
	ChoiceRestart = "restart"
	ChoiceHome    = "home"
)

// Button is a clickable menu entry.
type Button struct {
	Label    string
	Rect     collision.Rect
	Color    tcell.Color
	Shortcut rune
	Value    string // Choice for outcome buttons, difficulty ID for difficulty buttons
	CellSize int    // Set on difficulty buttons only
}

// Menu is one screen of buttons. Menus never touch round state.
type Menu struct {
	Title     string
	TitleY    float64 // Logical y of the title's center line
	Separator bool    // Underline the title with an accent rule
	Buttons   []Button
}

// HitTest returns the button under p, if any.
func (m *Menu) HitTest(p collision.Point) (Button, bool) {
	for _, b := range m.Buttons {
		if b.Rect.Contains(p) {
			return b, true
		}
	}
	return Button{}, false
}

// ByShortcut returns the button bound to a key, ignoring case.
func (m *Menu) ByShortcut(r rune) (Button, bool) {
	if r == 0 {
		return Button{}, false
	}
	r = unicode.ToLower(r)
	for _, b := range m.Buttons {
		if b.Shortcut != 0 && unicode.ToLower(b.Shortcut) == r {
			return b, true
		}
	}
	return Button{}, false
}

// Difficulty builds the difficulty screen: one 300x60 button per preset,
// stacked 100 pixels apart.
func Difficulty(difficulties []gamedata.DifficultyDef) Menu {
	m := Menu{Title: "Choose Difficulty", TitleY: 100, Separator: true}
	for i := range difficulties {
		d := &difficulties[i]
		m.Buttons = append(m.Buttons, Button{
			Label:    d.Name,
			Rect:     collision.Rect{X: 250, Y: float64(220 + i*100), W: 300, H: 60},
			Color:    d.TCellColor(),
			Shortcut: d.ShortcutRune(),
			Value:    d.ID,
			CellSize: d.CellSize,
		})
	}
	return m
}

// Outcome builds the game-over screen with Restart and Main Menu buttons.
func Outcome(message string, theme gamedata.Theme) Menu {
	return Menu{
		Title:  message,
		TitleY: 200,
		Buttons: []Button{
			{
				Label:    "Restart",
				Rect:     collision.Rect{X: 250, Y: 350, W: 300, H: 70},
				Color:    theme.AccentOrange,
				Shortcut: 'r',
				Value:    ChoiceRestart,
			},
			{
				Label:    "Main Menu",
				Rect:     collision.Rect{X: 250, Y: 450, W: 300, H: 70},
				Color:    theme.AccentPurple,
				Shortcut: 'm',
				Value:    ChoiceHome,
			},
		},
	}
}
