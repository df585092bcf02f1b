package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sadopc/diediedice/internal/app"
	"github.com/sadopc/diediedice/internal/config"
	"github.com/sadopc/diediedice/internal/observability"
	"github.com/sadopc/diediedice/pkg/version"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "roll":
			os.Exit(rollCmd(os.Args[2:], config.Load(), os.Stdout, os.Stderr))
		case "completion":
			completionCmd()
			return
		case "version":
			fmt.Println(versionString())
			return
		case "help":
			printHelp()
			return
		}
	}
	os.Exit(tuiCmd())
}

func versionString() string {
	return fmt.Sprintf("diediedice %s (%s) built %s", version.Version, version.Commit, version.Date)
}

func printHelp() {
	fmt.Fprintf(os.Stderr, `diediedice - A dice roller for the terminal

Usage:
  diediedice [flags]                    Launch TUI (interactive mode)
  diediedice <command> [args] [flags]   Run a subcommand

Commands:
  roll      Roll dice headlessly and print the history
  completion  Generate shell completion scripts (bash, zsh, fish)
  version   Print version information
  help      Show this help message

TUI Flags:
  --dice <n>       Initial number of dice (1-50)
  --sides <n>      Initial number of sides (2-100)
  --seed <n>       Seed the dice for a reproducible session
  --theme <name>   Color theme
  --version        Print version and exit

Configuration is read from ~/.config/diediedice/config.yaml.
Run 'diediedice <command> --help' for more information about a command.
`)
}

// tuiCmd runs the interactive UI and returns the process exit code.
func tuiCmd() int {
	versionFlag := flag.Bool("version", false, "Print version and exit")
	diceFlag := flag.Int("dice", 0, "Initial number of dice")
	sidesFlag := flag.Int("sides", 0, "Initial number of sides")
	seedFlag := flag.Int64("seed", 0, "Seed for reproducible rolls (0 uses the clock)")
	themeFlag := flag.String("theme", "", "Color theme name")
	flag.Parse()

	if *versionFlag {
		fmt.Println(versionString())
		return 0
	}

	cfg := config.Load()
	if *diceFlag > 0 {
		cfg.Dice = *diceFlag
	}
	if *sidesFlag > 0 {
		cfg.Sides = *sidesFlag
	}
	if *seedFlag != 0 {
		cfg.Seed = *seedFlag
	}
	if *themeFlag != "" {
		cfg.Theme = *themeFlag
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	logger = logger.With(zap.String("session", uuid.NewString()))

	logger.Info("starting", zap.String("version", version.Version), zap.String("theme", cfg.Theme))

	model := app.New(cfg, nil, logger)
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)
	return runProgram(p.Run, logger, os.Stderr)
}

// runProgram runs the UI loop and flushes the logger before returning the
// exit code.
func runProgram(run func() (tea.Model, error), logger *zap.Logger, stderr io.Writer) int {
	defer func() { _ = logger.Sync() }()

	if _, err := run(); err != nil {
		logger.Error("program exited", zap.Error(err))
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	logger.Info("program exited")
	return 0
}
