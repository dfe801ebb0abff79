package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// CSVFormatter writes a report as CSV with a stable column order. Error rows
// carry the message in the status column so no keyword is silently dropped.
type CSVFormatter struct {
	out io.Writer
}

// NewCSVFormatter creates a new CSVFormatter writing to out.
func NewCSVFormatter(out io.Writer) *CSVFormatter {
	return &CSVFormatter{out: out}
}

var csvHeader = []string{
	"keyword", "final_score", "decision", "status",
	"intent_type", "intent_score", "demand_valid",
	"monetization_score", "is_b2b", "is_transactional",
	"pain_score", "pain_level", "pain_triggers",
	"competition_score", "competition_level", "is_weak_competition", "competitors",
	"trend_score", "trend_ratio", "is_rising",
	"pseo_score", "pseo_potential",
	"weak_competition_bonus", "monetization_advice",
}

// Format writes the header and one row per result.
func (f *CSVFormatter) Format(report *Report) error {
	w := csv.NewWriter(f.out)

	if err := w.Write(csvHeader); err != nil {
		return fmt.Errorf("error writing CSV header: %w", err)
	}

	for _, r := range report.Results {
		status := r.Status
		if r.Error != "" {
			status = r.Status + ": " + r.Error
		}
		row := []string{
			r.Keyword,
			strconv.FormatFloat(r.FinalScore, 'f', 1, 64),
			string(r.Decision),
			status,
			r.Intent.Type,
			strconv.Itoa(r.Intent.Score),
			strconv.FormatBool(r.Intent.IsValid),
			strconv.Itoa(r.Monetization.Score),
			strconv.FormatBool(r.Monetization.IsB2B),
			strconv.FormatBool(r.Monetization.IsTransactional),
			strconv.Itoa(r.Pain.Score),
			r.Pain.Level,
			strings.Join(r.Pain.Triggers, "; "),
			strconv.Itoa(r.Competition.Score),
			r.Competition.Level,
			strconv.FormatBool(r.Competition.IsWeak),
			strings.Join(r.Competition.Competitors, "; "),
			strconv.Itoa(r.Trend.Score),
			strconv.FormatFloat(r.Trend.Ratio, 'f', 4, 64),
			strconv.FormatBool(r.Trend.IsRising),
			strconv.Itoa(r.PSEO.Score),
			r.PSEO.Potential,
			strconv.FormatBool(r.WeakCompetitionBonus),
			r.MonetizationAdvice,
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("error writing CSV row: %w", err)
		}
	}

	w.Flush()
	return w.Error()
}
