// Package output renders scored keyword batches as console, CSV, JSON, or
// HTML reports. Renderers consume results read-only; the scoring core knows
// nothing about formats or file paths.
package output

import (
	"time"

	"github.com/dotcommander/bluescout/internal/scoring"
	"github.com/dotcommander/bluescout/internal/types"
)

// Report is one scored batch plus run metadata, handed to a formatter.
type Report struct {
	Results     []scoring.ScoredResult
	GeneratedAt time.Time
	Profile     string
	SeedCount   int
}

// Summary are the headline counts shown atop every report.
type Summary struct {
	Total         int
	BuildNow      int
	Watch         int
	Drop          int
	Errors        int
	Opportunities int // weak-competition bonus results
}

// Summarize tallies the report's headline counts.
func (r *Report) Summarize() Summary {
	var s Summary
	s.Total = len(r.Results)
	for _, result := range r.Results {
		if result.Status == types.StatusError {
			s.Errors++
			continue
		}
		switch result.Decision {
		case types.DecisionBuildNow:
			s.BuildNow++
		case types.DecisionWatch:
			s.Watch++
		case types.DecisionDrop:
			s.Drop++
		}
		if result.WeakCompetitionBonus {
			s.Opportunities++
		}
	}
	return s
}

// Formatter renders a report to its destination.
type Formatter interface {
	Format(report *Report) error
}
