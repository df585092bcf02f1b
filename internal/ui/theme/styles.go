package theme

import "github.com/charmbracelet/lipgloss"

// Styles holds pre-computed Lip Gloss styles for the current theme.
type Styles struct {
	// Panel borders
	FocusedBorder   lipgloss.Style
	UnfocusedBorder lipgloss.Style

	// Text styles
	Title   lipgloss.Style
	Label   lipgloss.Style
	Normal  lipgloss.Style
	Muted   lipgloss.Style
	Hint    lipgloss.Style
	Error   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Key     lipgloss.Style

	// Roll output
	Total     lipgloss.Style
	Breakdown lipgloss.Style
	Die       lipgloss.Style

	// History slots
	SlotFilled lipgloss.Style
	SlotEmpty  lipgloss.Style
	SlotCursor lipgloss.Style

	// Form
	InputFocused  lipgloss.Style
	InputBlurred  lipgloss.Style
	Button        lipgloss.Style
	ButtonFocused lipgloss.Style

	StatusBar  lipgloss.Style
	StatusMode lipgloss.Style
	Selected   lipgloss.Style

	theme Theme
}

// NewStyles creates a Styles set from a Theme.
func NewStyles(t Theme) Styles {
	return Styles{
		FocusedBorder: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.BorderFocused),
		UnfocusedBorder: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.BorderUnfocused),

		Title:   lipgloss.NewStyle().Foreground(t.Accent).Bold(true),
		Label:   lipgloss.NewStyle().Foreground(t.Mauve).Bold(true),
		Normal:  lipgloss.NewStyle().Foreground(t.Text),
		Muted:   lipgloss.NewStyle().Foreground(t.Muted),
		Hint:    lipgloss.NewStyle().Foreground(t.Muted).Italic(true),
		Error:   lipgloss.NewStyle().Foreground(t.Red),
		Success: lipgloss.NewStyle().Foreground(t.Green),
		Warning: lipgloss.NewStyle().Foreground(t.Yellow),
		Key:     lipgloss.NewStyle().Foreground(t.Mauve),

		Total: lipgloss.NewStyle().
			Foreground(t.Text).
			Bold(true).
			Padding(0, 1),
		Breakdown: lipgloss.NewStyle().Foreground(t.Subtext),
		Die:       lipgloss.NewStyle().Bold(true),

		SlotFilled: lipgloss.NewStyle().
			Foreground(t.Text).
			PaddingLeft(1),
		SlotEmpty: lipgloss.NewStyle().
			Foreground(t.Muted).
			PaddingLeft(1),
		SlotCursor: lipgloss.NewStyle().
			Background(t.Overlay).
			Foreground(t.Text).
			PaddingLeft(1),

		InputFocused: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(t.Accent).
			Padding(0, 1),
		InputBlurred: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(t.BorderUnfocused).
			Padding(0, 1),
		Button: lipgloss.NewStyle().
			Foreground(t.Text).
			Background(t.Surface).
			Bold(true).
			Padding(0, 3),
		ButtonFocused: lipgloss.NewStyle().
			Foreground(t.Base).
			Background(t.Accent).
			Bold(true).
			Padding(0, 3),

		StatusBar: lipgloss.NewStyle().
			Background(t.Surface).
			Foreground(t.Text).
			Padding(0, 1),
		StatusMode: lipgloss.NewStyle().
			Foreground(t.Base).
			Bold(true).
			Padding(0, 1),
		Selected: lipgloss.NewStyle().
			Background(t.Surface).
			Foreground(t.Text),

		theme: t,
	}
}

// DieStyle returns the style for a single die value.
func (s Styles) DieStyle(value, sides int) lipgloss.Style {
	return s.Die.Foreground(s.theme.DieColor(value, sides))
}

// Theme returns the theme the styles were built from.
func (s Styles) Theme() Theme {
	return s.theme
}
