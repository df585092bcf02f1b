package runner

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/tidwall/pretty"

	"github.com/sadopc/diediedice/internal/dice"
)

// jsonRoll is the JSON shape of one roll.
type jsonRoll struct {
	Label     string    `json:"label"`
	Total     int       `json:"total"`
	Sides     int       `json:"sides"`
	Rolls     []int     `json:"rolls"`
	Breakdown string    `json:"breakdown"`
	CreatedAt time.Time `json:"created_at"`
}

type jsonReport struct {
	Label   string     `json:"label"`
	Notes   []string   `json:"notes,omitempty"`
	History []jsonRoll `json:"history"`
}

// PrintText outputs the report in human-readable format, most recent roll first.
func PrintText(w io.Writer, r Report, verbose bool) {
	for _, note := range r.Notes {
		fmt.Fprintf(w, "! %s\n", note)
	}
	for _, e := range r.Entries {
		fmt.Fprintf(w, "%-8s %5d   %s\n", e.Label, e.Total, dice.FormatBreakdown(e.Rolls, verbose))
		if verbose && len(e.Rolls) > dice.BreakdownLimit {
			fmt.Fprintf(w, "         %v\n", e.Rolls)
		}
	}
}

// PrintJSON outputs the report as indented JSON.
func PrintJSON(w io.Writer, r Report, verbose bool) error {
	out := jsonReport{
		Label:   r.Label,
		Notes:   r.Notes,
		History: make([]jsonRoll, len(r.Entries)),
	}
	for i, e := range r.Entries {
		out.History[i] = jsonRoll{
			Label:     e.Label,
			Total:     e.Total,
			Sides:     e.Sides,
			Rolls:     e.Dice(),
			Breakdown: dice.FormatBreakdown(e.Rolls, verbose),
			CreatedAt: e.CreatedAt,
		}
	}

	data, err := json.Marshal(out)
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	_, err = w.Write(pretty.Pretty(data))
	return err
}
