package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/sadopc/diediedice/internal/ui/msgs"
	"github.com/sadopc/diediedice/internal/ui/theme"
)

func (a App) handleSwitchTheme(msg msgs.SwitchThemeMsg) (tea.Model, tea.Cmd) {
	if msg.Name == "" {
		a.leaveInsert()
		a.commandPalette.OpenThemePicker(theme.AvailableNames())
		a.setMode(msgs.ModeCommandPalette)
		return a, nil
	}

	t := theme.Resolve(msg.Name)
	a.applyTheme(t)
	a.logger.Debug("theme switched", zap.String("theme", t.Name))

	return a, a.toastFor("Theme: "+t.Name, msgs.ToastInfo)
}
