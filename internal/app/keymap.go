package app

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all application keybindings.
type KeyMap struct {
	// Global
	Quit           key.Binding
	Roll           key.Binding
	CommandPalette key.Binding
	Help           key.Binding

	// Normal mode
	RollNormal   key.Binding
	Copy         key.Binding
	SwitchTheme  key.Binding
	Edit         key.Binding
	FocusHistory key.Binding

	// Focus navigation
	NextField key.Binding
	PrevField key.Binding
	Advance   key.Binding
	Leave     key.Binding
}

// DefaultKeyMap returns the default keybinding configuration.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Roll: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "roll"),
		),
		CommandPalette: key.NewBinding(
			key.WithKeys("ctrl+k"),
			key.WithHelp("ctrl+k", "command palette"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		RollNormal: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "roll"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy roll"),
		),
		SwitchTheme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "switch theme"),
		),
		Edit: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "edit field"),
		),
		FocusHistory: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "history"),
		),
		NextField: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev field"),
		),
		Advance: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "next / roll"),
		),
		Leave: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "done editing"),
		),
	}
}
