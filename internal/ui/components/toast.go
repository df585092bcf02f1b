package components

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/diediedice/internal/ui/msgs"
	"github.com/sadopc/diediedice/internal/ui/theme"
)

// toastDismissMsg hides the toast it was scheduled for. Toasts shown later
// carry a newer seq and ignore it.
type toastDismissMsg struct {
	seq int
}

// Toast is the auto-dismissing notice for roll events: confirmations, input
// adjustments and clipboard failures.
type Toast struct {
	Visible bool
	text    string
	level   msgs.ToastLevel
	seq     int
	theme   theme.Theme
	styles  theme.Styles
}

// NewToast creates a new toast component.
func NewToast(t theme.Theme, s theme.Styles) Toast {
	return Toast{
		theme:  t,
		styles: s,
	}
}

// toastDuration is how long each level stays up unless the caller says
// otherwise.
func toastDuration(level msgs.ToastLevel) time.Duration {
	switch level {
	case msgs.ToastAdjusted:
		return 3 * time.Second
	case msgs.ToastError:
		return 4 * time.Second
	default:
		return 2 * time.Second
	}
}

// Show displays text and returns the Cmd that dismisses it. A non-positive
// duration uses the level's default.
func (m *Toast) Show(text string, level msgs.ToastLevel, duration time.Duration) tea.Cmd {
	if duration <= 0 {
		duration = toastDuration(level)
	}
	m.Visible = true
	m.text = text
	m.level = level
	m.seq++

	seq := m.seq
	return tea.Tick(duration, func(time.Time) tea.Msg {
		return toastDismissMsg{seq: seq}
	})
}

// Level returns the level of the toast being shown.
func (m Toast) Level() msgs.ToastLevel {
	return m.level
}

// Init implements tea.Model.
func (m Toast) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Toast) Update(msg tea.Msg) (Toast, tea.Cmd) {
	if msg, ok := msg.(toastDismissMsg); ok && msg.seq == m.seq {
		m.Visible = false
		m.text = ""
	}
	return m, nil
}

// View renders the toast notification.
func (m Toast) View() string {
	if !m.Visible || m.text == "" {
		return ""
	}

	fg := m.theme.Green
	switch m.level {
	case msgs.ToastAdjusted:
		fg = m.theme.Yellow
	case msgs.ToastError:
		fg = m.theme.Red
	}

	return lipgloss.NewStyle().
		Foreground(fg).
		Background(m.theme.Surface).
		Bold(true).
		Padding(0, 2).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(fg).
		Render(m.text)
}
