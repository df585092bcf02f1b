// Package input normalizes the numeric fields of a roll configuration.
//
// A Field accepts any text while the user is editing and only settles on a
// value inside its Bounds when committed. Invalid text never produces an
// error: the previous value is kept instead.
package input

import (
	"strconv"
	"strings"
)

// Bounds is an inclusive integer range.
type Bounds struct {
	Min int
	Max int
}

var (
	// DiceBounds limits the number of dice per roll.
	DiceBounds = Bounds{Min: 1, Max: 50}
	// SideBounds limits the number of sides per die.
	SideBounds = Bounds{Min: 2, Max: 100}
)

// Clamp returns v limited to [b.Min, b.Max].
func (b Bounds) Clamp(v int) int {
	if v < b.Min {
		return b.Min
	}
	if v > b.Max {
		return b.Max
	}
	return v
}

// Contains reports whether v lies within b.
func (b Bounds) Contains(v int) bool {
	return v >= b.Min && v <= b.Max
}

// Field is one numeric input. It is a value type; every method returns an
// updated copy.
type Field struct {
	bounds   Bounds
	text     string
	value    int
	empty    bool
	adjusted bool
}

// NewField returns a committed field holding initial clamped to b.
func NewField(b Bounds, initial int) Field {
	v := b.Clamp(initial)
	return Field{bounds: b, text: strconv.Itoa(v), value: v}
}

// Edit applies raw text typed by the user. Blank text leaves the field
// empty until commit; text that is not an integer keeps the previous state.
func (f Field) Edit(raw string) Field {
	f.adjusted = false

	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		f.text = ""
		f.empty = true
		return f
	}

	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return f
	}
	f.text = trimmed
	f.value = n
	f.empty = false
	return f
}

// Commit settles the field: empty or too-small values become Min, too-large
// values become Max. Committing a valid value changes nothing.
func (f Field) Commit() Field {
	committed := f.Resolve()
	f.adjusted = f.empty || committed != f.value
	f.value = committed
	f.text = strconv.Itoa(committed)
	f.empty = false
	return f
}

// Resolve returns the value a roll should use right now, without changing
// the field: Min when empty, otherwise the clamped value.
func (f Field) Resolve() int {
	if f.empty {
		return f.bounds.Min
	}
	return f.bounds.Clamp(f.value)
}

// Value returns the current value and false while the field is empty.
func (f Field) Value() (int, bool) {
	return f.value, !f.empty
}

// Text returns the text the field currently displays.
func (f Field) Text() string {
	return f.text
}

// Empty reports whether the field is in the transient empty state.
func (f Field) Empty() bool {
	return f.empty
}

// Adjusted reports whether the last Commit had to replace the typed value.
func (f Field) Adjusted() bool {
	return f.adjusted
}

// Bounds returns the field's allowed range.
func (f Field) Bounds() Bounds {
	return f.bounds
}
