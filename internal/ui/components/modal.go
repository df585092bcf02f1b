package components

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/sadopc/diediedice/internal/dice"
	"github.com/sadopc/diediedice/internal/ui/msgs"
	"github.com/sadopc/diediedice/internal/ui/theme"
)

const (
	detailBoxWidth = 40
	// detailChrome is the number of rows around the die list: border,
	// padding, label, total, blank lines, timestamp and hint.
	detailChrome = 10
)

// RollDetail is the dialog listing every die of one historical roll. Long
// rolls scroll inside a viewport sized to the terminal.
type RollDetail struct {
	Visible  bool
	roll     dice.RollResult
	now      time.Time
	viewport viewport.Model
	width    int
	height   int
	theme    theme.Theme
	styles   theme.Styles
}

// NewRollDetail creates a new roll detail dialog.
func NewRollDetail(t theme.Theme, s theme.Styles) RollDetail {
	return RollDetail{
		theme:  t,
		styles: s,
	}
}

// SetSize sets the terminal dimensions the dialog must fit in.
func (m *RollDetail) SetSize(w, h int) {
	m.width = w
	m.height = h
	if m.Visible {
		m.buildViewport()
	}
}

// Show displays the given roll. now is used for the relative timestamp.
func (m *RollDetail) Show(r dice.RollResult, now time.Time) {
	m.Visible = true
	m.roll = r
	m.now = now
	m.buildViewport()
}

// Roll returns the roll being shown.
func (m RollDetail) Roll() dice.RollResult {
	return m.roll
}

// Scrollable reports whether some dice are outside the visible rows.
func (m RollDetail) Scrollable() bool {
	return m.viewport.TotalLineCount() > m.viewport.Height
}

func (m *RollDetail) buildViewport() {
	detail := dice.FormatDetail(m.roll)
	lines := make([]string, len(detail))
	for i, line := range detail {
		lines[i] = m.styles.DieStyle(m.roll.Rolls[i], m.roll.Sides).Render(line)
	}

	rows := len(lines)
	if m.height > 0 && m.height-detailChrome < rows {
		rows = max(m.height-detailChrome, 1)
	}

	m.viewport = viewport.New(detailBoxWidth-4, rows)
	m.viewport.SetContent(strings.Join(lines, "\n"))
}

// Init implements tea.Model.
func (m RollDetail) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m RollDetail) Update(msg tea.Msg) (RollDetail, tea.Cmd) {
	if !m.Visible {
		return m, nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc", "enter", "q":
			m.Visible = false
			return m, tea.Batch(
				func() tea.Msg { return msgs.DismissRollMsg{} },
				func() tea.Msg { return msgs.SetModeMsg{Mode: msgs.ModeNormal} },
			)
		}
	}

	// j/k, up/down, pgup/pgdn scroll the die list
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the dialog.
func (m RollDetail) View() string {
	if !m.Visible {
		return ""
	}

	titleStyle := lipgloss.NewStyle().
		Foreground(m.theme.Text).
		Bold(true).
		Width(detailBoxWidth - 4).
		Align(lipgloss.Center)

	totalStyle := lipgloss.NewStyle().
		Foreground(m.theme.Accent).
		Bold(true).
		Width(detailBoxWidth - 4).
		Align(lipgloss.Center)

	hint := "esc/enter: close"
	if m.Scrollable() {
		hint = fmt.Sprintf("j/k: scroll %d%%  esc: close", int(m.viewport.ScrollPercent()*100))
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(m.roll.Label),
		totalStyle.Render(fmt.Sprintf("Total %s", humanize.Comma(int64(m.roll.Total)))),
		"",
		m.viewport.View(),
		"",
		m.styles.Muted.Render("Rolled "+humanize.RelTime(m.roll.CreatedAt, m.now, "ago", "from now")),
		m.styles.Hint.Render(hint),
	)

	return lipgloss.NewStyle().
		Width(detailBoxWidth).
		Background(m.theme.Surface).
		Foreground(m.theme.Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.BorderFocused).
		Padding(1, 2).
		Render(content)
}
