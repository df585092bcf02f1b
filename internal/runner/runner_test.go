package runner

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/sadopc/diediedice/internal/common/clock"
	"github.com/sadopc/diediedice/internal/core/history"
	"github.com/sadopc/diediedice/internal/dice"
)

func testRoller(faces ...int) *dice.Roller {
	at := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	return dice.New(&dice.Config{
		Source: dice.NewSequenceSource(faces...),
		Clock:  clock.Func(func() time.Time { return at }),
	})
}

func TestParseNotation(t *testing.T) {
	tests := []struct {
		in        string
		wantDice  int
		wantSides int
		wantErr   bool
	}{
		{in: "3d6", wantDice: 3, wantSides: 6},
		{in: "d20", wantDice: 1, wantSides: 20},
		{in: " 2D10 ", wantDice: 2, wantSides: 10},
		{in: "0d6", wantDice: 0, wantSides: 6},
		{in: "6", wantErr: true},
		{in: "2d", wantErr: true},
		{in: "xd6", wantErr: true},
		{in: "2d6+1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			d, s, err := ParseNotation(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidNotation) {
					t.Fatalf("ParseNotation(%q) error = %v, want ErrInvalidNotation", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseNotation(%q) unexpected error: %v", tt.in, err)
			}
			if d != tt.wantDice || s != tt.wantSides {
				t.Fatalf("ParseNotation(%q) = %d, %d, want %d, %d", tt.in, d, s, tt.wantDice, tt.wantSides)
			}
		})
	}
}

func TestRunSingleRoll(t *testing.T) {
	r := Run(Config{Dice: 3, Sides: 6, Times: 1}, testRoller(4, 2, 6))

	if r.Label != "3d6" {
		t.Fatalf("Label = %q, want 3d6", r.Label)
	}
	if len(r.Entries) != 1 {
		t.Fatalf("len(Entries) = %d, want 1", len(r.Entries))
	}
	if r.Entries[0].Total != 12 {
		t.Fatalf("Total = %d, want 12", r.Entries[0].Total)
	}
	if len(r.Notes) != 0 {
		t.Fatalf("Notes = %v, want none", r.Notes)
	}
}

func TestRunClampsInput(t *testing.T) {
	r := Run(Config{Dice: 0, Sides: 200}, testRoller(1))

	if r.Label != "1d100" {
		t.Fatalf("Label = %q, want 1d100", r.Label)
	}
	if len(r.Notes) != 2 {
		t.Fatalf("Notes = %v, want two adjustments", r.Notes)
	}
	if !strings.Contains(r.Notes[1], "using 100") {
		t.Errorf("sides note = %q", r.Notes[1])
	}
}

func TestRunManyTimesKeepsBoundedHistory(t *testing.T) {
	r := Run(Config{Dice: 2, Sides: 6, Times: 8}, testRoller(1, 2, 3))

	if len(r.Entries) != history.Size {
		t.Fatalf("len(Entries) = %d, want %d", len(r.Entries), history.Size)
	}
	for i := 1; i < len(r.Entries); i++ {
		if !r.Entries[i-1].CreatedAt.After(r.Entries[i].CreatedAt) {
			t.Fatalf("entries not most recent first at %d", i)
		}
	}
}

func TestPrintText(t *testing.T) {
	r := Run(Config{Dice: 2, Sides: 6, Times: 1}, testRoller(3, 5))

	var buf bytes.Buffer
	PrintText(&buf, r, false)

	out := buf.String()
	if !strings.Contains(out, "2d6") || !strings.Contains(out, "8") || !strings.Contains(out, "3 • 5") {
		t.Fatalf("unexpected text output: %q", out)
	}
}

func TestPrintJSON(t *testing.T) {
	r := Run(Config{Dice: 7, Sides: 6, Times: 1}, testRoller(1, 2, 3, 4, 5, 6, 6))

	var buf bytes.Buffer
	if err := PrintJSON(&buf, r, true); err != nil {
		t.Fatalf("PrintJSON() error: %v", err)
	}

	var decoded struct {
		Label   string `json:"label"`
		History []struct {
			Total     int    `json:"total"`
			Rolls     []int  `json:"rolls"`
			Breakdown string `json:"breakdown"`
		} `json:"history"`
	}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, buf.String())
	}
	if decoded.Label != "7d6" || len(decoded.History) != 1 {
		t.Fatalf("decoded = %+v", decoded)
	}
	if decoded.History[0].Total != 27 {
		t.Errorf("Total = %d, want 27", decoded.History[0].Total)
	}
	if decoded.History[0].Breakdown != "7 dice · min 1 · max 6" {
		t.Errorf("Breakdown = %q", decoded.History[0].Breakdown)
	}
}
