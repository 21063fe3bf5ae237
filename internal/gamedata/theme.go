package gamedata

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// ThemeDef is the color palette loaded from theme.json, as hex strings.
type ThemeDef struct {
	Background   string `json:"background"`
	Wall         string `json:"wall"`
	Player       string `json:"player"`
	Goal         string `json:"goal"`
	Text         string `json:"text"`
	AccentPurple string `json:"accentPurple"`
	AccentOrange string `json:"accentOrange"`
	Shadow       string `json:"shadow"`
}

// Theme is the parsed palette used by the renderer.
type Theme struct {
	Background   tcell.Color
	Wall         tcell.Color
	Player       tcell.Color
	Goal         tcell.Color
	Text         tcell.Color
	AccentPurple tcell.Color
	AccentOrange tcell.Color
	Shadow       tcell.Color
}

// Parse converts every hex entry, failing on the first bad one.
func (d ThemeDef) Parse() (Theme, error) {
	var theme Theme
	fields := []struct {
		name string
		hex  string
		dst  *tcell.Color
	}{
		{"background", d.Background, &theme.Background},
		{"wall", d.Wall, &theme.Wall},
		{"player", d.Player, &theme.Player},
		{"goal", d.Goal, &theme.Goal},
		{"text", d.Text, &theme.Text},
		{"accentPurple", d.AccentPurple, &theme.AccentPurple},
		{"accentOrange", d.AccentOrange, &theme.AccentOrange},
		{"shadow", d.Shadow, &theme.Shadow},
	}

	for _, f := range fields {
		color, err := ParseHexColor(f.hex)
		if err != nil {
			return Theme{}, fmt.Errorf("theme color %s: %w", f.name, err)
		}
		*f.dst = color
	}
	return theme, nil
}

// LoadTheme loads and parses the embedded theme.json palette.
func LoadTheme() (Theme, error) {
	def, err := Load[ThemeDef]("theme.json")
	if err != nil {
		return Theme{}, err
	}
	return def.Parse()
}

// MustLoadTheme loads the palette, panicking on error.
func MustLoadTheme() Theme {
	theme, err := LoadTheme()
	if err != nil {
		panic(err)
	}
	return theme
}
