package msgs

import "time"

// FocusTarget identifies the widget holding keyboard focus.
type FocusTarget int

const (
	FocusDice FocusTarget = iota
	FocusSides
	FocusRoll
	FocusHistory
)

func (f FocusTarget) String() string {
	switch f {
	case FocusDice:
		return "dice"
	case FocusSides:
		return "sides"
	case FocusRoll:
		return "roll"
	case FocusHistory:
		return "history"
	default:
		return "unknown"
	}
}

// AppMode represents the current input mode.
type AppMode int

const (
	ModeNormal AppMode = iota
	ModeInsert
	ModeCommandPalette
	ModeModal
)

func (m AppMode) String() string {
	switch m {
	case ModeNormal:
		return "NORMAL"
	case ModeInsert:
		return "INSERT"
	case ModeCommandPalette:
		return "COMMAND"
	case ModeModal:
		return "MODAL"
	default:
		return "UNKNOWN"
	}
}

// FocusMsg requests focus change to a specific widget.
type FocusMsg struct {
	Target FocusTarget
}

// RollMsg triggers a roll with the current configuration.
type RollMsg struct{}

// PresetMsg replaces the configuration with a quick-pick and rolls.
type PresetMsg struct {
	Dice  int
	Sides int
}

// SelectRollMsg opens the detail view for a history slot.
type SelectRollMsg struct {
	Index int
}

// DismissRollMsg closes the detail view.
type DismissRollMsg struct{}

// CopyRollMsg copies the current roll to the clipboard.
type CopyRollMsg struct{}

// OpenCommandPaletteMsg opens the command palette.
type OpenCommandPaletteMsg struct{}

// ShowHelpMsg toggles the help overlay.
type ShowHelpMsg struct{}

// SetModeMsg changes the app mode.
type SetModeMsg struct {
	Mode AppMode
}

// ToastLevel sets the color and default lifetime of a toast.
type ToastLevel int

const (
	ToastInfo     ToastLevel = iota // confirmations: rolled, copied, theme
	ToastAdjusted                   // an input was clamped into range
	ToastError
)

// ToastMsg shows a toast notification. A zero Duration uses the level's
// default.
type ToastMsg struct {
	Text     string
	Duration time.Duration
	Level    ToastLevel
}

// SwitchThemeMsg requests switching to a named theme.
type SwitchThemeMsg struct {
	Name string
}
