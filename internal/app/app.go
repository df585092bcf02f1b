package app

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/sadopc/diediedice/internal/common/clock"
	"github.com/sadopc/diediedice/internal/config"
	"github.com/sadopc/diediedice/internal/core/input"
	"github.com/sadopc/diediedice/internal/core/state"
	"github.com/sadopc/diediedice/internal/dice"
	"github.com/sadopc/diediedice/internal/ui/components"
	"github.com/sadopc/diediedice/internal/ui/layout"
	"github.com/sadopc/diediedice/internal/ui/msgs"
	"github.com/sadopc/diediedice/internal/ui/theme"
)

const appTitle = "DIE DIE DICE"

// App is the root Bubble Tea model.
type App struct {
	diceInput  textinput.Model
	sidesInput textinput.Model

	rollCard       components.RollCard
	historyList    components.HistoryList
	statusBar      components.StatusBar
	commandPalette components.CommandPalette
	help           components.Help
	toast          components.Toast
	rollDetail     components.RollDetail

	session        state.Session
	roller         state.Roller
	rolls          int
	cfg            config.Config
	logger         *zap.Logger
	clock          clock.Clock
	writeClipboard func(string) error

	mode   msgs.AppMode
	focus  msgs.FocusTarget
	layout layout.Layout
	keys   KeyMap

	theme  theme.Theme
	styles theme.Styles

	width  int
	height int
	ready  bool
}

// New creates a new App model. A nil roller rolls with a math/rand source
// seeded from cfg.Seed; a nil logger discards everything.
func New(cfg config.Config, roller state.Roller, logger *zap.Logger) App {
	if logger == nil {
		logger = zap.NewNop()
	}
	if roller == nil {
		roller = dice.New(&dice.Config{Seed: cfg.Seed, Logger: logger})
	}

	t := theme.Resolve(cfg.Theme)

	a := App{
		diceInput:  newCountInput(),
		sidesInput: newCountInput(),

		session:        state.NewSession(cfg.Dice, cfg.Sides),
		roller:         roller,
		cfg:            cfg,
		logger:         logger,
		clock:          &clock.DefaultClock{},
		writeClipboard: clipboard.WriteAll,

		keys: DefaultKeyMap(),
	}
	a.applyTheme(t)
	a.syncInputs()
	a.setFocus(msgs.FocusDice)
	return a
}

func newCountInput() textinput.Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 4
	ti.Width = 6
	return ti
}

// applyTheme rebuilds every component for t and restores their state from
// the session.
func (a *App) applyTheme(t theme.Theme) {
	s := theme.NewStyles(t)
	a.theme = t
	a.styles = s

	a.rollCard = components.NewRollCard(t, s)
	a.historyList = components.NewHistoryList(t, s)
	a.statusBar = components.NewStatusBar(t, s)
	a.commandPalette = components.NewCommandPalette(t, s)
	a.help = components.NewHelp(t, s)
	a.toast = components.NewToast(t, s)
	a.rollDetail = components.NewRollDetail(t, s)

	a.diceInput.TextStyle = s.Normal
	a.sidesInput.TextStyle = s.Normal

	a.rollCard.SetVerbose(a.cfg.Verbose)
	a.historyList.SetVerbose(a.cfg.Verbose)
	a.statusBar.SetMode(a.mode)
	a.syncSession()
	a.resize()
}

// syncSession pushes the session into the display components.
func (a *App) syncSession() {
	a.historyList.SetHistory(a.session.History())
	a.historyList.Blur()
	if a.focus == msgs.FocusHistory {
		a.historyList.Focus()
	}
	if r, ok := a.session.Current(); ok {
		a.rollCard.SetRoll(r)
		a.statusBar.SetLast(r, a.rolls)
	}
	a.statusBar.SetConfig(a.session.Label())
}

// syncInputs replaces the text of both inputs with the committed fields.
func (a *App) syncInputs() {
	a.diceInput.SetValue(a.session.Dice().Text())
	a.diceInput.CursorEnd()
	a.sidesInput.SetValue(a.session.Sides().Text())
	a.sidesInput.CursorEnd()
	a.statusBar.SetConfig(a.session.Label())
	a.statusBar.SetMessage("")
}

func (a *App) resize() {
	if a.width == 0 {
		return
	}
	a.layout = layout.Calculate(a.width, a.height)
	a.statusBar.SetWidth(a.width)
	a.help.SetSize(a.width, a.height)
	a.rollDetail.SetSize(a.width, a.height)
	a.rollCard.SetWidth(a.layout.ResultWidth - 4)
	a.historyList.SetWidth(a.layout.ResultWidth - 4)
}

func (a *App) setMode(mode msgs.AppMode) {
	a.mode = mode
	a.statusBar.SetMode(mode)
}

// Session returns the current session state.
func (a App) Session() state.Session {
	return a.session
}

func (a App) Init() tea.Cmd {
	return textinput.Blink
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.layout = layout.HandleResize(msg)
		a.resize()
		a.ready = true
		return a, nil

	case tea.KeyMsg:
		if a.commandPalette.Visible {
			var cmd tea.Cmd
			a.commandPalette, cmd = a.commandPalette.Update(msg)
			return a, cmd
		}
		if a.help.Visible {
			var cmd tea.Cmd
			a.help, cmd = a.help.Update(msg)
			return a, cmd
		}
		if a.rollDetail.Visible {
			var cmd tea.Cmd
			a.rollDetail, cmd = a.rollDetail.Update(msg)
			return a, cmd
		}

		if a.mode == msgs.ModeInsert {
			return a.updateInsert(msg)
		}

		if cmd := a.handleGlobalKey(msg); cmd != nil {
			return a, cmd
		}
		return a.handleFocusedKey(msg)

	case msgs.RollMsg:
		return a.roll()

	case msgs.PresetMsg:
		a.session = a.session.Preset(msg.Dice, msg.Sides)
		a.syncInputs()
		return a.roll()

	case msgs.SelectRollMsg:
		return a.selectRoll(msg.Index)

	case msgs.DismissRollMsg:
		a.session = a.session.Dismiss()
		return a, nil

	case msgs.CopyRollMsg:
		return a.copyRoll()

	case msgs.FocusMsg:
		a.leaveInsert()
		a.setFocus(msg.Target)
		return a, nil

	case msgs.SwitchThemeMsg:
		return a.handleSwitchTheme(msg)

	case msgs.OpenCommandPaletteMsg:
		a.leaveInsert()
		a.setMode(msgs.ModeCommandPalette)
		a.commandPalette.Open()
		return a, nil

	case msgs.ShowHelpMsg:
		a.leaveInsert()
		a.setMode(msgs.ModeModal)
		a.help.SetSize(a.width, a.height)
		a.help.Toggle()
		return a, nil

	case msgs.SetModeMsg:
		a.setMode(msg.Mode)
		return a, nil

	case msgs.ToastMsg:
		cmd := a.toast.Show(msg.Text, msg.Level, msg.Duration)
		return a, cmd
	}

	var cmd tea.Cmd
	a.toast, cmd = a.toast.Update(msg)
	if cmd != nil {
		cmds = append(cmds, cmd)
	}
	a.statusBar, cmd = a.statusBar.Update(msg)
	if cmd != nil {
		cmds = append(cmds, cmd)
	}
	a.diceInput, cmd = a.diceInput.Update(msg)
	if cmd != nil {
		cmds = append(cmds, cmd)
	}
	a.sidesInput, cmd = a.sidesInput.Update(msg)
	if cmd != nil {
		cmds = append(cmds, cmd)
	}

	return a, tea.Batch(cmds...)
}

func (a App) View() string {
	if !a.ready {
		return "Loading..."
	}

	title := a.styles.Title.Render(appTitle) +
		a.styles.Muted.Render("  ·  next roll "+a.session.Label())

	form := a.formView()
	result := a.resultView()

	var content string
	if a.layout.SingleColumn {
		content = lipgloss.JoinVertical(lipgloss.Left, form, result)
	} else {
		content = lipgloss.JoinHorizontal(lipgloss.Top, form, result)
	}

	statusBar := a.statusBar.View()
	main := lipgloss.JoinVertical(lipgloss.Left, title, content, statusBar)

	if a.commandPalette.Visible {
		main = a.overlayCenter(main, a.commandPalette.View())
	}
	if a.help.Visible {
		main = a.overlayCenter(main, a.help.View())
	}
	if a.rollDetail.Visible {
		main = a.overlayCenter(main, a.rollDetail.View())
	}
	if a.toast.Visible {
		main = overlayTopRight(main, a.toast.View(), a.width)
	}

	return main
}

func (a App) formView() string {
	width := a.layout.FormWidth - 2
	if width < 12 {
		width = 12
	}

	field := func(label string, in textinput.Model, b input.Bounds, focused bool) string {
		box := a.styles.InputBlurred
		if focused {
			box = a.styles.InputFocused
		}
		head := a.styles.Label.Render(label) + " " + a.styles.Muted.Render(fmt.Sprintf("%d–%d", b.Min, b.Max))
		return lipgloss.JoinVertical(lipgloss.Left, head, box.Width(width-4).Render(in.View()))
	}

	button := a.styles.Button
	if a.focus == msgs.FocusRoll {
		button = a.styles.ButtonFocused
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		field("Dice", a.diceInput, a.session.Dice().Bounds(), a.focus == msgs.FocusDice),
		field("Sides", a.sidesInput, a.session.Sides().Bounds(), a.focus == msgs.FocusSides),
		"",
		button.Render("Roll "+a.session.Label()),
		"",
		a.styles.Hint.Render("enter: next  ctrl+r: roll"),
	)

	border := a.styles.UnfocusedBorder
	if a.focus != msgs.FocusHistory {
		border = a.styles.FocusedBorder
	}
	return border.Width(width).Render(body)
}

func (a App) resultView() string {
	width := a.layout.ResultWidth - 2
	if width < 12 {
		width = 12
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		a.rollCard.View(),
		"",
		a.historyList.View(),
	)

	border := a.styles.UnfocusedBorder
	if a.focus == msgs.FocusHistory {
		border = a.styles.FocusedBorder
	}
	return border.Width(width).Render(body)
}

func (a App) overlayCenter(_, overlay string) string {
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, overlay,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(a.theme.Base),
	)
}

// overlayTopRight draws overlay over the first rows of bg so the frame keeps
// its height.
func overlayTopRight(bg, overlay string, width int) string {
	overlayWidth := lipgloss.Width(overlay)
	gap := width - overlayWidth - 2
	if gap < 0 {
		gap = 0
	}
	positioned := strings.Split(lipgloss.NewStyle().MarginLeft(gap).Render(overlay), "\n")
	rows := strings.Split(bg, "\n")
	for i, line := range positioned {
		if i < len(rows) {
			rows[i] = line
		} else {
			rows = append(rows, line)
		}
	}
	return strings.Join(rows, "\n")
}

// toastFor shows a toast with the level's default lifetime.
func (a *App) toastFor(text string, level msgs.ToastLevel) tea.Cmd {
	return a.toast.Show(text, level, 0)
}
