package dice

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// BreakdownLimit is the largest roll whose dice are listed one by one.
	BreakdownLimit = 6

	// BreakdownSeparator joins individually listed dice.
	BreakdownSeparator = " • "
)

// FormatBreakdown renders the individual dice of a roll. Up to
// BreakdownLimit dice are joined in roll order; larger rolls collapse into a
// min/max summary, prefixed with the die count when verbose is set.
func FormatBreakdown(rolls []int, verbose bool) string {
	if len(rolls) <= BreakdownLimit {
		parts := make([]string, len(rolls))
		for i, v := range rolls {
			parts[i] = strconv.Itoa(v)
		}
		return strings.Join(parts, BreakdownSeparator)
	}

	lo, hi := minMax(rolls)
	if verbose {
		return fmt.Sprintf("%d dice · min %d · max %d", len(rolls), lo, hi)
	}
	return fmt.Sprintf("min %d · max %d", lo, hi)
}

// FormatDetail lists every die of r on its own line, e.g. "Die 3: 5".
func FormatDetail(r RollResult) []string {
	lines := make([]string, len(r.Rolls))
	for i, v := range r.Rolls {
		lines[i] = fmt.Sprintf("Die %d: %d", i+1, v)
	}
	return lines
}
