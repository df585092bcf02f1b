package components

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/diediedice/internal/core/history"
	"github.com/sadopc/diediedice/internal/dice"
	"github.com/sadopc/diediedice/internal/ui/msgs"
	"github.com/sadopc/diediedice/internal/ui/theme"
)

// emptySlot is shown for history slots that hold no roll.
const emptySlot = "—"

// HistoryList renders the fixed set of history slots and lets the user pick
// a filled one.
type HistoryList struct {
	slots   []history.Slot
	cursor  int
	focused bool
	verbose bool
	width   int
	theme   theme.Theme
	styles  theme.Styles
}

// NewHistoryList creates an empty history list.
func NewHistoryList(t theme.Theme, s theme.Styles) HistoryList {
	return HistoryList{
		slots:  history.History{}.Slots(),
		theme:  t,
		styles: s,
	}
}

// SetHistory replaces the rendered slots.
func (m *HistoryList) SetHistory(h history.History) {
	m.slots = h.Slots()
	if m.cursor >= h.Len() {
		m.cursor = 0
	}
}

// SetVerbose selects the verbose breakdown form for large rolls.
func (m *HistoryList) SetVerbose(v bool) {
	m.verbose = v
}

// SetWidth sets the available width.
func (m *HistoryList) SetWidth(w int) {
	m.width = w
}

// Focus gives the list keyboard focus.
func (m *HistoryList) Focus() {
	m.focused = true
}

// Blur removes keyboard focus.
func (m *HistoryList) Blur() {
	m.focused = false
}

// Focused reports whether the list has keyboard focus.
func (m HistoryList) Focused() bool {
	return m.focused
}

// Cursor returns the highlighted slot index.
func (m HistoryList) Cursor() int {
	return m.cursor
}

func (m HistoryList) filled() int {
	n := 0
	for _, s := range m.slots {
		if s.Filled {
			n++
		}
	}
	return n
}

// Init implements tea.Model.
func (m HistoryList) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m HistoryList) Update(msg tea.Msg) (HistoryList, tea.Cmd) {
	if !m.focused {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch key := msg.String(); key {
		case "j", "down":
			if m.cursor < m.filled()-1 {
				m.cursor++
			}
		case "k", "up":
			if m.cursor > 0 {
				m.cursor--
			}
		case "enter", " ":
			return m, m.selectSlot(m.cursor)
		case "1", "2", "3", "4", "5":
			i, _ := strconv.Atoi(key)
			return m, m.selectSlot(i - 1)
		}
	}
	return m, nil
}

// selectSlot emits SelectRollMsg for a filled slot. Empty slots are inert.
func (m *HistoryList) selectSlot(i int) tea.Cmd {
	if i < 0 || i >= len(m.slots) || !m.slots[i].Filled {
		return nil
	}
	m.cursor = i
	return func() tea.Msg { return msgs.SelectRollMsg{Index: i} }
}

// View renders the slots, most recent first.
func (m HistoryList) View() string {
	title := m.styles.Label.Render("History")
	lines := []string{title}

	for _, slot := range m.slots {
		prefix := fmt.Sprintf("%d ", slot.Index+1)

		if !slot.Filled {
			lines = append(lines, m.styles.SlotEmpty.Render(prefix+emptySlot))
			continue
		}

		r := slot.Roll
		text := fmt.Sprintf("%s%-7s %4d  %s", prefix, r.Label, r.Total, dice.FormatBreakdown(r.Rolls, m.verbose))
		if m.width > 4 && lipgloss.Width(text) > m.width-2 {
			text = truncate(text, m.width-2)
		}

		style := m.styles.SlotFilled
		if m.focused && slot.Index == m.cursor {
			style = m.styles.SlotCursor
		}
		lines = append(lines, style.Render(text))
	}

	return strings.Join(lines, "\n")
}

func truncate(s string, n int) string {
	r := []rune(s)
	if n <= 0 {
		return ""
	}
	if len(r) <= n {
		return s
	}
	if n == 1 {
		return "…"
	}
	return string(r[:n-1]) + "…"
}
