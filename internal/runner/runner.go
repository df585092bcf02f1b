package runner

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/sadopc/diediedice/internal/core/input"
	"github.com/sadopc/diediedice/internal/core/state"
	"github.com/sadopc/diediedice/internal/dice"
)

// ErrInvalidNotation is returned for dice notation that is not NdS or dS.
var ErrInvalidNotation = errors.New("invalid dice notation")

// Config holds runner configuration.
type Config struct {
	Dice         int
	Sides        int
	Times        int    // number of rolls, at least 1
	OutputFormat string // "text", "json"
	Verbose      bool
}

// Report is the outcome of a headless run.
type Report struct {
	Label   string
	Entries []dice.RollResult // most recent first
	Notes   []string          // input adjustments made before rolling
}

// ParseNotation parses "NdS" or "dS" into its counts. The counts are not
// range-checked; the session clamps them like typed input.
func ParseNotation(s string) (int, int, error) {
	lower := strings.ToLower(strings.TrimSpace(s))
	countStr, sidesStr, ok := strings.Cut(lower, "d")
	if !ok || sidesStr == "" {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
	}

	count := 1
	if countStr != "" {
		n, err := strconv.Atoi(countStr)
		if err != nil {
			return 0, 0, fmt.Errorf("%w: %q: %w", ErrInvalidNotation, s, err)
		}
		count = n
	}

	sides, err := strconv.Atoi(sidesStr)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q: %w", ErrInvalidNotation, s, err)
	}
	return count, sides, nil
}

// Run rolls cfg.Times times through a fresh session and returns the
// session's history.
func Run(cfg Config, roller state.Roller) Report {
	s := state.NewSession(input.DiceBounds.Min, input.SideBounds.Min).
		EditDice(strconv.Itoa(cfg.Dice)).
		EditSides(strconv.Itoa(cfg.Sides)).
		Commit()

	var notes []string
	if s.Dice().Adjusted() {
		notes = append(notes, adjustmentNote("dice", cfg.Dice, s.Dice()))
	}
	if s.Sides().Adjusted() {
		notes = append(notes, adjustmentNote("sides", cfg.Sides, s.Sides()))
	}

	times := cfg.Times
	if times < 1 {
		times = 1
	}
	for i := 0; i < times; i++ {
		s = s.Roll(roller)
	}

	return Report{
		Label:   s.Label(),
		Entries: s.History().Entries(),
		Notes:   notes,
	}
}

func adjustmentNote(name string, requested int, f input.Field) string {
	b := f.Bounds()
	v, _ := f.Value()
	return fmt.Sprintf("%s %d is outside %d-%d, using %d", name, requested, b.Min, b.Max, v)
}
