// Package dice rolls NdS dice and formats the results.
package dice

import (
	"fmt"
	"time"
)

// RollResult is one atomic roll: every die value, their sum, the NdS label
// and the time it was made. Results are never modified after creation.
type RollResult struct {
	Rolls     []int
	Total     int
	Sides     int
	Label     string
	CreatedAt time.Time
}

// Key returns the unique key of the roll, derived from CreatedAt.
func (r RollResult) Key() int64 {
	return r.CreatedAt.UnixNano()
}

// Dice returns a copy of the individual die values.
func (r RollResult) Dice() []int {
	return append([]int(nil), r.Rolls...)
}

// Min returns the lowest die value, or 0 for an empty roll.
func (r RollResult) Min() int {
	lo, _ := minMax(r.Rolls)
	return lo
}

// Max returns the highest die value, or 0 for an empty roll.
func (r RollResult) Max() int {
	_, hi := minMax(r.Rolls)
	return hi
}

// IsZero reports whether r is the zero RollResult.
func (r RollResult) IsZero() bool {
	return r.Label == "" && len(r.Rolls) == 0
}

// String renders the roll as "2d6 = 7".
func (r RollResult) String() string {
	return fmt.Sprintf("%s = %d", r.Label, r.Total)
}

// Label renders a configuration in NdS notation.
func Label(diceCount, sideCount int) string {
	return fmt.Sprintf("%dd%d", diceCount, sideCount)
}

// RollWith draws diceCount dice of sideCount sides from src and stamps the
// result with at. Counts below the minimum (1 die, 2 sides) are raised to it.
func RollWith(src Source, diceCount, sideCount int, at time.Time) RollResult {
	if diceCount < 1 {
		diceCount = 1
	}
	if sideCount < 2 {
		sideCount = 2
	}

	rolls := make([]int, diceCount)
	total := 0
	for i := range rolls {
		rolls[i] = src.Intn(sideCount) + 1
		total += rolls[i]
	}

	return RollResult{
		Rolls:     rolls,
		Total:     total,
		Sides:     sideCount,
		Label:     Label(diceCount, sideCount),
		CreatedAt: at,
	}
}

func minMax(values []int) (int, int) {
	if len(values) == 0 {
		return 0, 0
	}
	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}
