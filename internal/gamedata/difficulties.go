package gamedata

import "github.com/gdamore/tcell/v2"

// DifficultyDef defines a difficulty preset loaded from JSON.
// Larger cells mean fewer, wider corridors.
type DifficultyDef struct {
	ID       string `json:"id"`       // Unique identifier (e.g., "easy")
	Name     string `json:"name"`     // Button label (e.g., "Easy")
	CellSize int    `json:"cellSize"` // Maze cell edge in logical pixels
	Color    string `json:"color"`    // Button hex color (e.g., "#F2994A")
	Shortcut string `json:"shortcut"` // Key that selects this preset from the menu
}

// ShortcutRune returns the shortcut key as a rune, or 0 if none is set.
func (d *DifficultyDef) ShortcutRune() rune {
	if len(d.Shortcut) == 0 {
		return 0
	}
	return rune(d.Shortcut[0])
}

// TCellColor returns the button color as a tcell.Color.
func (d *DifficultyDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(d.Color)
	if err != nil {
		return tcell.ColorOrange // fallback
	}
	return color
}

// DifficultiesFile represents the structure of difficulties.json.
type DifficultiesFile struct {
	Difficulties []DifficultyDef `json:"difficulties"`
}

// LoadDifficulties loads difficulty presets from the embedded difficulties.json file.
func LoadDifficulties() ([]DifficultyDef, error) {
	file, err := Load[DifficultiesFile]("difficulties.json")
	if err != nil {
		return nil, err
	}
	return file.Difficulties, nil
}
