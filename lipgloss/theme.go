// Package lipgloss renders content sections as styled terminal text.
package lipgloss

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Palette holds the colors a Theme draws with.
type Palette struct {
	Added   lipgloss.Color
	Removed lipgloss.Color
	Context lipgloss.Color
	Gutter  lipgloss.Color
	Title   lipgloss.Color
}

// Theme is a named Palette.
type Theme struct {
	name    string
	palette Palette
}

// Name returns the theme's name.
func (t Theme) Name() string { return t.name }

// Palette returns the theme's colors.
func (t Theme) Palette() Palette { return t.palette }

// DarkTheme returns colors for dark terminal backgrounds.
func DarkTheme() Theme {
	return Theme{name: "dark", palette: Palette{
		Added:   "#98c379",
		Removed: "#e06c75",
		Context: "#abb2bf",
		Gutter:  "#5c6370",
		Title:   "#61afef",
	}}
}

// LightTheme returns colors for light terminal backgrounds.
func LightTheme() Theme {
	return Theme{name: "light", palette: Palette{
		Added:   "#22863a",
		Removed: "#b31d28",
		Context: "#24292e",
		Gutter:  "#6a737d",
		Title:   "#005cc5",
	}}
}

// TestTheme returns pure colors that are easy to find in rendered output.
func TestTheme() Theme {
	return Theme{name: "test", palette: Palette{
		Added:   "#00ff00",
		Removed: "#ff0000",
		Context: "#ffffff",
		Gutter:  "#808080",
		Title:   "#0000ff",
	}}
}

// ThemeByName returns the built-in theme called name.
func ThemeByName(name string) (Theme, error) {
	switch name {
	case "", "dark":
		return DarkTheme(), nil
	case "light":
		return LightTheme(), nil
	case "test":
		return TestTheme(), nil
	default:
		return Theme{}, fmt.Errorf("unknown theme %q", name)
	}
}
