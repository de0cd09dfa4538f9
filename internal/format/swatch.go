package format

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/rhythm-registry/internal/core"
)

// swatchStyles caches a foreground style per palette colour.
var swatchStyles = func() map[core.Colour]lipgloss.Style {
	m := make(map[core.Colour]lipgloss.Style)
	for _, c := range core.Palette() {
		m[c] = lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex()))
	}
	return m
}()

// Style returns a foreground style for c. Unset or unparseable colours get
// a plain style.
func Style(c core.Colour) lipgloss.Style {
	if s, ok := swatchStyles[c]; ok {
		return s
	}
	if hex := c.Hex(); hex != "" {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
	}
	return lipgloss.NewStyle()
}

// Swatch renders text in colour c.
func Swatch(c core.Colour, text string) string {
	return Style(c).Render(text)
}

// Block renders a small solid block of colour c followed by its name.
func Block(c core.Colour) string {
	if !c.Valid() {
		return "   " + c.Name()
	}
	return Style(c).Render("██") + " " + c.Name()
}
