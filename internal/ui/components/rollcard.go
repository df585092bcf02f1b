package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/sadopc/diediedice/internal/dice"
	"github.com/sadopc/diediedice/internal/ui/theme"
)

// RollCard shows the current roll: its label, the total and the breakdown.
type RollCard struct {
	roll    dice.RollResult
	hasRoll bool
	verbose bool
	width   int
	theme   theme.Theme
	styles  theme.Styles
}

// NewRollCard creates an empty roll card.
func NewRollCard(t theme.Theme, s theme.Styles) RollCard {
	return RollCard{theme: t, styles: s}
}

// SetRoll sets the roll to display.
func (m *RollCard) SetRoll(r dice.RollResult) {
	m.roll = r
	m.hasRoll = true
}

// SetVerbose selects the verbose breakdown form for large rolls.
func (m *RollCard) SetVerbose(v bool) {
	m.verbose = v
}

// SetWidth sets the available width.
func (m *RollCard) SetWidth(w int) {
	m.width = w
}

// View renders the card.
func (m RollCard) View() string {
	if !m.hasRoll {
		return m.styles.Hint.Render("No rolls yet. Press ctrl+r to roll.")
	}

	label := m.styles.Label.Render(m.roll.Label)
	total := m.styles.Total.
		Foreground(m.theme.Accent).
		Border(lipgloss.ThickBorder()).
		BorderForeground(m.theme.Accent).
		Render(humanize.Comma(int64(m.roll.Total)))

	return lipgloss.JoinVertical(lipgloss.Left,
		label,
		total,
		m.breakdown(),
	)
}

// breakdown colors each die when they are listed individually and falls back
// to the condensed form otherwise.
func (m RollCard) breakdown() string {
	if len(m.roll.Rolls) > dice.BreakdownLimit {
		return m.styles.Breakdown.Render(dice.FormatBreakdown(m.roll.Rolls, m.verbose))
	}

	parts := make([]string, len(m.roll.Rolls))
	for i, v := range m.roll.Rolls {
		parts[i] = m.styles.DieStyle(v, m.roll.Sides).Render(humanize.Comma(int64(v)))
	}
	return strings.Join(parts, m.styles.Breakdown.Render(dice.BreakdownSeparator))
}
