package dice_test

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/sadopc/diediedice/internal/common/clock"
	"github.com/sadopc/diediedice/internal/dice"
)

var epoch = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func fixedClock() clock.Clock {
	return clock.Func(func() time.Time { return epoch })
}

// TestRoll_Property verifies die count, per-die range and total for every
// configuration in the committed input bounds.
func TestRoll_Property(t *testing.T) {
	roller := dice.New(&dice.Config{Seed: 7})

	rapid.Check(t, func(rt *rapid.T) {
		count := rapid.IntRange(1, 50).Draw(rt, "dice")
		sides := rapid.IntRange(2, 100).Draw(rt, "sides")

		r := roller.Roll(count, sides)

		require.Len(rt, r.Rolls, count)
		sum := 0
		for _, v := range r.Rolls {
			assert.GreaterOrEqual(rt, v, 1)
			assert.LessOrEqual(rt, v, sides)
			sum += v
		}
		assert.Equal(rt, sum, r.Total, "Total must equal the sum of the dice")
		assert.Equal(rt, dice.Label(count, sides), r.Label)
		assert.Equal(rt, sides, r.Sides)
	})
}

func TestRoll_FixedDraws(t *testing.T) {
	roller := dice.New(&dice.Config{
		Source: dice.NewSequenceSource(4, 2, 6),
		Clock:  fixedClock(),
	})

	r := roller.Roll(3, 6)

	assert.Equal(t, []int{4, 2, 6}, r.Rolls)
	assert.Equal(t, 12, r.Total)
	assert.Equal(t, 6, r.Sides)
	assert.Equal(t, "3d6", r.Label)
	assert.Equal(t, "3d6 = 12", r.String())
}

func TestRoll_LastResortDefaults(t *testing.T) {
	r := dice.RollWith(dice.NewSequenceSource(2), 0, 0, epoch)

	assert.Equal(t, "1d2", r.Label)
	assert.Equal(t, 2, r.Sides)
	assert.Equal(t, []int{2}, r.Rolls)
}

func TestRoller_CreatedAtStrictlyIncreasing(t *testing.T) {
	roller := dice.New(&dice.Config{
		Source: dice.NewSequenceSource(1),
		Clock:  fixedClock(),
	})

	first := roller.Roll(1, 6)
	second := roller.Roll(1, 6)
	third := roller.Roll(1, 6)

	assert.True(t, second.CreatedAt.After(first.CreatedAt))
	assert.True(t, third.CreatedAt.After(second.CreatedAt))
	assert.NotEqual(t, first.Key(), second.Key())
}

func TestRollResult_DiceReturnsCopy(t *testing.T) {
	r := dice.RollWith(dice.NewSequenceSource(3, 5), 2, 6, epoch)

	d := r.Dice()
	d[0] = 99

	assert.Equal(t, 3, r.Rolls[0], "mutating Dice() must not touch the result")
	assert.Equal(t, 3, r.Min())
	assert.Equal(t, 5, r.Max())
}

func TestSequenceSource_WrapsLargeFaces(t *testing.T) {
	src := dice.NewSequenceSource(8)
	// face 8 on a d6 wraps to 2
	assert.Equal(t, 1, src.Intn(6))
}

func TestFormatBreakdown(t *testing.T) {
	tests := []struct {
		name    string
		rolls   []int
		verbose bool
		want    string
	}{
		{name: "two dice", rolls: []int{3, 5}, want: "3 • 5"},
		{name: "single die", rolls: []int{4}, want: "4"},
		{name: "six dice", rolls: []int{1, 2, 3, 4, 5, 6}, want: "1 • 2 • 3 • 4 • 5 • 6"},
		{name: "seven dice verbose", rolls: []int{2, 1, 6, 3, 3, 4, 5}, verbose: true, want: "7 dice · min 1 · max 6"},
		{name: "seven dice terse", rolls: []int{2, 1, 6, 3, 3, 4, 5}, want: "min 1 · max 6"},
		{name: "empty", rolls: nil, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, dice.FormatBreakdown(tt.rolls, tt.verbose))
		})
	}
}

func TestFormatBreakdown_CondensedProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		rolls := rapid.SliceOfN(rapid.IntRange(1, 100), dice.BreakdownLimit+1, 50).Draw(rt, "rolls")

		got := dice.FormatBreakdown(rolls, true)

		assert.NotContains(rt, got, "•", "condensed form must not list every die")
		assert.True(rt, strings.HasPrefix(got, fmt.Sprintf("%d dice ", len(rolls))), "got %q", got)
	})
}

func TestFormatDetail(t *testing.T) {
	r := dice.RollWith(dice.NewSequenceSource(4, 1), 2, 6, epoch)

	assert.Equal(t, []string{"Die 1: 4", "Die 2: 1"}, dice.FormatDetail(r))
}
