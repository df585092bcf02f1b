package state

import (
	"github.com/sadopc/diediedice/internal/core/history"
	"github.com/sadopc/diediedice/internal/core/input"
	"github.com/sadopc/diediedice/internal/dice"
)

// Roller produces a roll for a committed configuration.
type Roller interface {
	Roll(diceCount, sideCount int) dice.RollResult
}

// Phase is the display phase of a session.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseDisplaying
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "IDLE"
	case PhaseDisplaying:
		return "DISPLAYING"
	default:
		return "UNKNOWN"
	}
}

// Session holds the whole state of one dice roller: the two input fields,
// the roll history and the roll opened in the detail view. It is passed by
// value and every update returns a new Session.
type Session struct {
	dice  input.Field
	sides input.Field

	history history.History

	selected    dice.RollResult
	hasSelected bool
}

// NewSession creates a session configured for diceCount dice of sideCount sides.
func NewSession(diceCount, sideCount int) Session {
	return Session{
		dice:  input.NewField(input.DiceBounds, diceCount),
		sides: input.NewField(input.SideBounds, sideCount),
	}
}

// Dice returns the dice count field.
func (s Session) Dice() input.Field { return s.dice }

// Sides returns the side count field.
func (s Session) Sides() input.Field { return s.sides }

// History returns the roll history.
func (s Session) History() history.History { return s.history }

// Label returns the NdS label the next roll would use.
func (s Session) Label() string {
	return dice.Label(s.dice.Resolve(), s.sides.Resolve())
}

// EditDice applies text typed into the dice field.
func (s Session) EditDice(raw string) Session {
	s.dice = s.dice.Edit(raw)
	return s
}

// EditSides applies text typed into the sides field.
func (s Session) EditSides(raw string) Session {
	s.sides = s.sides.Edit(raw)
	return s
}

// CommitDice settles the dice field into its bounds.
func (s Session) CommitDice() Session {
	s.dice = s.dice.Commit()
	return s
}

// CommitSides settles the sides field into its bounds.
func (s Session) CommitSides() Session {
	s.sides = s.sides.Commit()
	return s
}

// Commit settles both fields.
func (s Session) Commit() Session {
	return s.CommitDice().CommitSides()
}

// Preset replaces both fields with committed values.
func (s Session) Preset(diceCount, sideCount int) Session {
	s.dice = input.NewField(input.DiceBounds, diceCount)
	s.sides = input.NewField(input.SideBounds, sideCount)
	return s
}

// Roll commits both fields, rolls with r and records the result. Any open
// detail view is closed.
func (s Session) Roll(r Roller) Session {
	s = s.Commit()
	result := r.Roll(s.dice.Resolve(), s.sides.Resolve())
	s.history = history.Record(s.history, result)
	s.selected = dice.RollResult{}
	s.hasSelected = false
	return s
}

// Current returns the most recent roll.
func (s Session) Current() (dice.RollResult, bool) {
	return s.history.Current()
}

// Phase reports whether anything has been rolled yet.
func (s Session) Phase() Phase {
	if s.history.Len() == 0 {
		return PhaseIdle
	}
	return PhaseDisplaying
}

// Select opens history slot i in the detail view. Empty slots are inert.
func (s Session) Select(i int) Session {
	r, ok := s.history.At(i)
	if !ok {
		return s
	}
	s.selected = r
	s.hasSelected = true
	return s
}

// Dismiss closes the detail view.
func (s Session) Dismiss() Session {
	s.selected = dice.RollResult{}
	s.hasSelected = false
	return s
}

// Selected returns the roll open in the detail view.
func (s Session) Selected() (dice.RollResult, bool) {
	return s.selected, s.hasSelected
}
