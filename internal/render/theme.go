package render

import (
	"image/color"

	"github.com/charmbracelet/lipgloss"
)

// Palette holds the canvas colours sections draw with.
type Palette struct {
	Primary   color.NRGBA
	Secondary color.NRGBA
	Gold      color.NRGBA
	Amber     color.NRGBA
	Goldenrod color.NRGBA
	Bronze    color.NRGBA
	Ribbon    color.NRGBA
	White     color.NRGBA

	Background color.NRGBA
}

// Theme pairs a canvas palette with the terminal chrome colours.
type Theme struct {
	Name    string
	Palette Palette

	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Accent     lipgloss.Color
	Background lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
}

func newTheme(name string, p Palette, text, muted string) Theme {
	return Theme{
		Name:       name,
		Palette:    p,
		Primary:    lipgloss.Color(Hex(p.Primary)),
		Secondary:  lipgloss.Color(Hex(p.Secondary)),
		Accent:     lipgloss.Color(Hex(p.Gold)),
		Background: lipgloss.Color(Hex(p.Background)),
		Text:       lipgloss.Color(text),
		Muted:      lipgloss.Color(muted),
	}
}

// Available themes
var (
	ThemeTeal = newTheme("teal", Palette{
		Primary:    RGB(32, 178, 170),
		Secondary:  RGB(135, 206, 235),
		Gold:       RGB(255, 215, 0),
		Amber:      RGB(255, 165, 0),
		Goldenrod:  RGB(218, 165, 32),
		Bronze:     RGB(184, 134, 11),
		Ribbon:     RGB(220, 20, 60),
		White:      RGB(255, 255, 255),
		Background: RGB(10, 25, 30),
	}, "#e0f7f5", "#4a7c78")

	ThemeMono = newTheme("mono", Palette{
		Primary:    RGB(230, 230, 230),
		Secondary:  RGB(160, 160, 160),
		Gold:       RGB(255, 255, 255),
		Amber:      RGB(200, 200, 200),
		Goldenrod:  RGB(180, 180, 180),
		Bronze:     RGB(120, 120, 120),
		Ribbon:     RGB(90, 90, 90),
		White:      RGB(255, 255, 255),
		Background: RGB(0, 0, 0),
	}, "#ffffff", "#888888")

	ThemeSunset = newTheme("sunset", Palette{
		Primary:    RGB(255, 107, 107),
		Secondary:  RGB(254, 202, 87),
		Gold:       RGB(255, 159, 243),
		Amber:      RGB(255, 192, 72),
		Goldenrod:  RGB(255, 140, 66),
		Bronze:     RGB(176, 96, 64),
		Ribbon:     RGB(255, 71, 87),
		White:      RGB(255, 245, 245),
		Background: RGB(45, 27, 46),
	}, "#fff5f5", "#8b6b8c")

	ThemeOcean = newTheme("ocean", Palette{
		Primary:    RGB(0, 119, 190),
		Secondary:  RGB(0, 168, 204),
		Gold:       RGB(255, 215, 0),
		Amber:      RGB(255, 204, 0),
		Goldenrod:  RGB(120, 200, 220),
		Bronze:     RGB(68, 136, 170),
		Ribbon:     RGB(255, 68, 68),
		White:      RGB(224, 240, 255),
		Background: RGB(0, 26, 51),
	}, "#e0f0ff", "#4488aa")

	DefaultTheme = ThemeTeal

	Themes = []Theme{
		ThemeTeal,
		ThemeMono,
		ThemeSunset,
		ThemeOcean,
	}
)

// GetTheme returns a theme by name
func GetTheme(name string) (Theme, bool) {
	for _, t := range Themes {
		if t.Name == name {
			return t, true
		}
	}
	return DefaultTheme, false
}

// NextTheme returns the theme following name, wrapping around.
func NextTheme(name string) Theme {
	for i, t := range Themes {
		if t.Name == name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return DefaultTheme
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
