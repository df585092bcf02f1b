// Package history keeps the most recent rolls of a session.
package history

import "github.com/sadopc/diediedice/internal/dice"

// Size is the number of rolls a History keeps.
const Size = 5

// History is an immutable, most-recent-first list of rolls. The zero value
// is an empty history.
type History struct {
	entries []dice.RollResult
}

// Slot is one position of the fixed-size history display.
type Slot struct {
	Index  int
	Roll   dice.RollResult
	Filled bool
}

// Record returns a new History with r in front of h, dropping the oldest
// entry once Size is exceeded. h itself is left untouched.
func Record(h History, r dice.RollResult) History {
	n := len(h.entries) + 1
	if n > Size {
		n = Size
	}
	entries := make([]dice.RollResult, 0, n)
	entries = append(entries, r)
	entries = append(entries, h.entries[:n-1]...)
	return History{entries: entries}
}

// Current returns the most recent roll.
func (h History) Current() (dice.RollResult, bool) {
	if len(h.entries) == 0 {
		return dice.RollResult{}, false
	}
	return h.entries[0], true
}

// Len returns the number of recorded rolls.
func (h History) Len() int {
	return len(h.entries)
}

// At returns the roll at position i, 0 being the most recent.
func (h History) At(i int) (dice.RollResult, bool) {
	if i < 0 || i >= len(h.entries) {
		return dice.RollResult{}, false
	}
	return h.entries[i], true
}

// Entries returns a copy of the recorded rolls, most recent first.
func (h History) Entries() []dice.RollResult {
	return append([]dice.RollResult(nil), h.entries...)
}

// Find returns the roll with the given key.
func (h History) Find(key int64) (dice.RollResult, bool) {
	for _, e := range h.entries {
		if e.Key() == key {
			return e, true
		}
	}
	return dice.RollResult{}, false
}

// Slots returns exactly Size slots; positions without a roll are unfilled.
func (h History) Slots() []Slot {
	slots := make([]Slot, Size)
	for i := range slots {
		slots[i].Index = i
		if i < len(h.entries) {
			slots[i].Roll = h.entries[i]
			slots[i].Filled = true
		}
	}
	return slots
}
