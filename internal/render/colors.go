package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// TileLook is how one terrain state is drawn.
type TileLook struct {
	Glyph rune
	FG    tcell.Color
	BG    tcell.Color
}

func (l TileLook) style() tcell.Style {
	return tcell.StyleDefault.Foreground(l.FG).Background(l.BG)
}

// Theme holds the looks for lit and remembered terrain.
type Theme struct {
	Name     string
	Wall     TileLook // in sight
	Floor    TileLook // in sight
	DimWall  TileLook // explored, out of sight
	DimFloor TileLook // explored, out of sight
}

// CellWidth is the number of terminal columns one map cell occupies: the
// widest terrain glyph of the theme.
func (t Theme) CellWidth() int {
	w := 1
	for _, l := range []TileLook{t.Wall, t.Floor, t.DimWall, t.DimFloor} {
		w = max(w, runewidth.RuneWidth(l.Glyph))
	}
	return w
}

// Themes lists the built-in themes by name.
var Themes = map[string]Theme{
	"classic": {
		Name:     "classic",
		Wall:     TileLook{'#', tcell.NewRGBColor(200, 180, 50), tcell.NewRGBColor(130, 110, 50)},
		Floor:    TileLook{'.', tcell.NewRGBColor(130, 110, 50), tcell.NewRGBColor(200, 180, 50)},
		DimWall:  TileLook{'#', tcell.NewRGBColor(50, 50, 150), tcell.NewRGBColor(0, 0, 100)},
		DimFloor: TileLook{'.', tcell.NewRGBColor(0, 0, 100), tcell.NewRGBColor(50, 50, 150)},
	},
	"emoji": {
		Name:     "emoji",
		Wall:     TileLook{'🧱', tcell.ColorDefault, tcell.ColorBlack},
		Floor:    TileLook{'🟫', tcell.ColorDefault, tcell.ColorBlack},
		DimWall:  TileLook{'🌑', tcell.ColorDefault, tcell.ColorBlack},
		DimFloor: TileLook{'🔲', tcell.ColorDefault, tcell.ColorBlack},
	},
}

// DefaultTheme is used when a theme name is unknown.
const DefaultTheme = "classic"

// ThemeByName returns the named theme, falling back to DefaultTheme.
func ThemeByName(name string) Theme {
	if t, ok := Themes[name]; ok {
		return t
	}
	return Themes[DefaultTheme]
}
