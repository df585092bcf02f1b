package app

import (
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sadopc/diediedice/internal/ui/msgs"
)

var focusOrder = []msgs.FocusTarget{msgs.FocusDice, msgs.FocusSides, msgs.FocusRoll, msgs.FocusHistory}

func (a App) handleGlobalKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, a.keys.Quit):
		return tea.Quit
	case key.Matches(msg, a.keys.Roll):
		return func() tea.Msg { return msgs.RollMsg{} }
	case key.Matches(msg, a.keys.CommandPalette):
		return func() tea.Msg { return msgs.OpenCommandPaletteMsg{} }
	case key.Matches(msg, a.keys.Help):
		return func() tea.Msg { return msgs.ShowHelpMsg{} }
	case key.Matches(msg, a.keys.Copy):
		return func() tea.Msg { return msgs.CopyRollMsg{} }
	case key.Matches(msg, a.keys.SwitchTheme):
		return func() tea.Msg { return msgs.SwitchThemeMsg{} }
	case key.Matches(msg, a.keys.RollNormal):
		return func() tea.Msg { return msgs.RollMsg{} }
	}
	return nil
}

func (a App) handleFocusedKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.NextField):
		a.cycleFocus(false)
		return a, nil
	case key.Matches(msg, a.keys.PrevField):
		a.cycleFocus(true)
		return a, nil
	case key.Matches(msg, a.keys.FocusHistory):
		a.setFocus(msgs.FocusHistory)
		return a, nil
	}

	if a.focus != msgs.FocusHistory {
		switch k := msg.String(); k {
		case "1", "2", "3", "4", "5":
			i := int(k[0] - '1')
			return a, func() tea.Msg { return msgs.SelectRollMsg{Index: i} }
		}
	}

	switch a.focus {
	case msgs.FocusDice, msgs.FocusSides:
		switch {
		case key.Matches(msg, a.keys.Edit):
			a.setFocus(a.focus)
		case key.Matches(msg, a.keys.Advance):
			a.advance()
		}
		return a, nil

	case msgs.FocusRoll:
		switch msg.String() {
		case "enter", " ":
			return a.roll()
		}
		return a, nil

	case msgs.FocusHistory:
		var cmd tea.Cmd
		a.historyList, cmd = a.historyList.Update(msg)
		return a, cmd
	}

	return a, nil
}

// updateInsert handles keys while one of the count inputs is being edited.
func (a App) updateInsert(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(msg, a.keys.Roll):
		return a.roll()
	case key.Matches(msg, a.keys.CommandPalette):
		cmd := a.leaveInsert()
		return a, tea.Batch(cmd, func() tea.Msg { return msgs.OpenCommandPaletteMsg{} })
	case key.Matches(msg, a.keys.Help):
		cmd := a.leaveInsert()
		return a, tea.Batch(cmd, func() tea.Msg { return msgs.ShowHelpMsg{} })
	case key.Matches(msg, a.keys.Leave):
		cmd := a.leaveInsert()
		return a, cmd
	case key.Matches(msg, a.keys.NextField):
		cmd := a.commitFocused()
		a.cycleFocus(false)
		return a, cmd
	case key.Matches(msg, a.keys.PrevField):
		cmd := a.commitFocused()
		a.cycleFocus(true)
		return a, cmd
	case key.Matches(msg, a.keys.Advance):
		cmd := a.commitFocused()
		a.advance()
		return a, cmd
	}

	if msg.Type == tea.KeyRunes {
		msg.Runes = digitsOnly(msg.Runes)
		if len(msg.Runes) == 0 {
			return a, nil
		}
	} else if msg.Type == tea.KeySpace {
		return a, nil
	}

	var cmd tea.Cmd
	switch a.focus {
	case msgs.FocusDice:
		a.diceInput, cmd = a.diceInput.Update(msg)
		a.session = a.session.EditDice(a.diceInput.Value())
		a.statusBar.SetMessage(pendingNote("Dice", a.session.Dice()))
	case msgs.FocusSides:
		a.sidesInput, cmd = a.sidesInput.Update(msg)
		a.session = a.session.EditSides(a.sidesInput.Value())
		a.statusBar.SetMessage(pendingNote("Sides", a.session.Sides()))
	}
	a.statusBar.SetConfig(a.session.Label())
	return a, cmd
}

func digitsOnly(runes []rune) []rune {
	out := runes[:0:0]
	for _, r := range runes {
		if unicode.IsDigit(r) && r < unicode.MaxASCII {
			out = append(out, r)
		}
	}
	return out
}

// setFocus moves focus to target. The count inputs switch to insert mode
// when they receive focus.
func (a *App) setFocus(target msgs.FocusTarget) {
	a.focus = target
	a.diceInput.Blur()
	a.sidesInput.Blur()
	a.historyList.Blur()

	switch target {
	case msgs.FocusDice:
		a.diceInput.Focus()
		a.diceInput.CursorEnd()
		a.setMode(msgs.ModeInsert)
	case msgs.FocusSides:
		a.sidesInput.Focus()
		a.sidesInput.CursorEnd()
		a.setMode(msgs.ModeInsert)
	case msgs.FocusHistory:
		a.historyList.Focus()
		a.setMode(msgs.ModeNormal)
	default:
		a.setMode(msgs.ModeNormal)
	}
}

func (a *App) cycleFocus(reverse bool) {
	idx := 0
	for i, f := range focusOrder {
		if f == a.focus {
			idx = i
			break
		}
	}

	if reverse {
		idx = (idx - 1 + len(focusOrder)) % len(focusOrder)
	} else {
		idx = (idx + 1) % len(focusOrder)
	}
	a.setFocus(focusOrder[idx])
}

// advance moves dice -> sides -> roll button.
func (a *App) advance() {
	switch a.focus {
	case msgs.FocusDice:
		a.setFocus(msgs.FocusSides)
	case msgs.FocusSides:
		a.setFocus(msgs.FocusRoll)
	}
}

// leaveInsert commits the edited field and returns to normal mode with
// focus kept on the field.
func (a *App) leaveInsert() tea.Cmd {
	if a.mode != msgs.ModeInsert {
		return nil
	}
	cmd := a.commitFocused()
	a.diceInput.Blur()
	a.sidesInput.Blur()
	a.setMode(msgs.ModeNormal)
	return cmd
}
