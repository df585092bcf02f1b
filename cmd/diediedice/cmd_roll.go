package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sadopc/diediedice/internal/config"
	"github.com/sadopc/diediedice/internal/dice"
	"github.com/sadopc/diediedice/internal/observability"
	"github.com/sadopc/diediedice/internal/runner"
)

// rollCmd rolls dice without the TUI and returns the process exit code.
func rollCmd(args []string, cfg config.Config, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("roll", flag.ContinueOnError)
	fs.SetOutput(stderr)
	diceFlag := fs.Int("dice", cfg.Dice, "Number of dice")
	sidesFlag := fs.Int("sides", cfg.Sides, "Number of sides per die")
	timesFlag := fs.Int("times", 1, "Number of rolls")
	seedFlag := fs.Int64("seed", cfg.Seed, "Seed for reproducible rolls (0 uses the clock)")
	outputFlag := fs.String("output", "text", "Output format: text, json")
	verboseFlag := fs.Bool("verbose", cfg.Verbose, "Include the die count in condensed breakdowns")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: diediedice roll [NdS] [flags]\n\n")
		fmt.Fprintf(stderr, "Roll dice headlessly. Counts outside the allowed ranges are clamped.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  diediedice roll 3d6\n")
		fmt.Fprintf(stderr, "  diediedice roll d20 --times 5\n")
		fmt.Fprintf(stderr, "  diediedice roll --dice 10 --sides 8 --output json\n")
		fmt.Fprintf(stderr, "\nExit codes:\n")
		fmt.Fprintf(stderr, "  0  Dice rolled\n")
		fmt.Fprintf(stderr, "  2  Invalid flags or notation\n")
	}

	// Notation may come before the flags.
	var notation string
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		notation, args = args[0], args[1:]
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if notation == "" && fs.NArg() > 0 {
		notation = fs.Arg(0)
	}

	rc := runner.Config{
		Dice:         *diceFlag,
		Sides:        *sidesFlag,
		Times:        *timesFlag,
		OutputFormat: *outputFlag,
		Verbose:      *verboseFlag,
	}

	if notation != "" {
		n, s, err := runner.ParseNotation(notation)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 2
		}
		rc.Dice, rc.Sides = n, s
	}

	switch rc.OutputFormat {
	case "text", "json":
	default:
		fmt.Fprintf(stderr, "Error: invalid output format %q (must be text or json)\n", rc.OutputFormat)
		return 2
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}
	defer func() { _ = logger.Sync() }()
	logger = logger.With(zap.String("session", uuid.NewString()))

	roller := dice.New(&dice.Config{Seed: *seedFlag, Logger: logger})
	report := runner.Run(rc, roller)
	logger.Info("headless run", zap.String("label", report.Label), zap.Int("rolls", len(report.Entries)))

	switch rc.OutputFormat {
	case "json":
		if err := runner.PrintJSON(stdout, report, rc.Verbose); err != nil {
			fmt.Fprintf(stderr, "Error writing JSON: %v\n", err)
			return 2
		}
	default:
		runner.PrintText(stdout, report, rc.Verbose)
	}
	return 0
}
