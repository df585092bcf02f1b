package theme

import "github.com/charmbracelet/lipgloss"

// Theme holds all colors for the application.
type Theme struct {
	Name string

	// Base colors
	Base    lipgloss.Color
	Surface lipgloss.Color
	Overlay lipgloss.Color

	// Text
	Text    lipgloss.Color
	Subtext lipgloss.Color
	Muted   lipgloss.Color

	// Accents
	Accent   lipgloss.Color
	Mauve    lipgloss.Color
	Red      lipgloss.Color
	Yellow   lipgloss.Color
	Green    lipgloss.Color
	Teal     lipgloss.Color
	Blue     lipgloss.Color
	Lavender lipgloss.Color

	BorderFocused   lipgloss.Color
	BorderUnfocused lipgloss.Color
}

// DieColor returns the color for one die: green for the highest face, red
// for a one, plain text otherwise.
func (t Theme) DieColor(value, sides int) lipgloss.Color {
	switch {
	case sides > 1 && value == sides:
		return t.Green
	case value == 1:
		return t.Red
	default:
		return t.Text
	}
}
