package app

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/sadopc/diediedice/internal/core/input"
	"github.com/sadopc/diediedice/internal/dice"
	"github.com/sadopc/diediedice/internal/ui/msgs"
)

// roll commits whatever is typed in both inputs, rolls and shows the result.
func (a App) roll() (tea.Model, tea.Cmd) {
	a.session = a.session.
		EditDice(a.diceInput.Value()).
		EditSides(a.sidesInput.Value()).
		Roll(a.roller)
	a.rolls++
	a.syncInputs()
	a.syncSession()

	var notes []string
	if n := adjustmentNote("Dice", a.session.Dice()); n != "" {
		notes = append(notes, n)
	}
	if n := adjustmentNote("Sides", a.session.Sides()); n != "" {
		notes = append(notes, n)
	}
	if len(notes) > 0 {
		return a, a.toastFor(strings.Join(notes, " · "), msgs.ToastAdjusted)
	}
	return a, nil
}

// commitFocused settles the input that has focus and reports any clamp.
func (a *App) commitFocused() tea.Cmd {
	var note string
	switch a.focus {
	case msgs.FocusDice:
		a.session = a.session.EditDice(a.diceInput.Value()).CommitDice()
		note = adjustmentNote("Dice", a.session.Dice())
	case msgs.FocusSides:
		a.session = a.session.EditSides(a.sidesInput.Value()).CommitSides()
		note = adjustmentNote("Sides", a.session.Sides())
	default:
		return nil
	}
	a.syncInputs()

	if note == "" {
		return nil
	}
	a.logger.Debug("input adjusted", zap.String("field", a.focus.String()), zap.String("note", note))
	return a.toastFor(note, msgs.ToastAdjusted)
}

// adjustmentNote describes a commit that replaced the typed value.
func adjustmentNote(name string, f input.Field) string {
	if !f.Adjusted() {
		return ""
	}
	v, _ := f.Value()
	b := f.Bounds()
	return fmt.Sprintf("%s set to %d (allowed %d–%d)", name, v, b.Min, b.Max)
}

// pendingNote warns about a typed value that the next commit will clamp.
func pendingNote(name string, f input.Field) string {
	v, ok := f.Value()
	if !ok {
		return ""
	}
	if c := f.Bounds().Clamp(v); c != v {
		return fmt.Sprintf("%s %d will be set to %d", name, v, c)
	}
	return ""
}

func (a App) selectRoll(i int) (tea.Model, tea.Cmd) {
	a.session = a.session.Select(i)
	r, ok := a.session.Selected()
	if !ok {
		return a, nil
	}
	a.rollDetail.Show(r, a.clock.Now())
	a.setMode(msgs.ModeModal)
	return a, nil
}

// copyText renders a roll the way it is copied: "2d6 = 7 (3 • 4)".
func (a App) copyText(r dice.RollResult) string {
	return fmt.Sprintf("%s (%s)", r.String(), dice.FormatBreakdown(r.Rolls, a.cfg.Verbose))
}

func (a App) copyRoll() (tea.Model, tea.Cmd) {
	r, ok := a.session.Current()
	if !ok {
		return a, a.toastFor("Nothing to copy", msgs.ToastError)
	}
	if err := a.writeClipboard(a.copyText(r)); err != nil {
		a.logger.Warn("clipboard write failed", zap.Error(err))
		return a, a.toastFor("Clipboard error: "+err.Error(), msgs.ToastError)
	}
	return a, a.toastFor("Copied "+r.String(), msgs.ToastInfo)
}
