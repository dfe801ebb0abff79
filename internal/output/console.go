package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dotcommander/bluescout/internal/scoring"
	"github.com/dotcommander/bluescout/internal/types"
)

// ConsoleFormatter formats a report for terminal display.
type ConsoleFormatter struct {
	out      io.Writer
	quiet    bool
	verbose  bool
	topN     int
	colorize bool
}

// NewConsoleFormatter creates a new ConsoleFormatter writing to out.
func NewConsoleFormatter(out io.Writer, quiet, verbose bool, topN int) *ConsoleFormatter {
	return &ConsoleFormatter{
		out:      out,
		quiet:    quiet,
		verbose:  verbose,
		topN:     topN,
		colorize: true,
	}
}

// Format renders the summary block and the top-N result list.
func (f *ConsoleFormatter) Format(report *Report) error {
	if f.quiet {
		return nil
	}

	summary := report.Summarize()

	fmt.Fprintf(f.out, "\n%s\n", strings.Repeat("=", 60))
	fmt.Fprintf(f.out, "Blue ocean hunt complete (profile: %s)\n", report.Profile)
	fmt.Fprintf(f.out, "  Scored:        %d\n", summary.Total)
	fmt.Fprintf(f.out, "  BUILD_NOW:     %d\n", summary.BuildNow)
	fmt.Fprintf(f.out, "  WATCH:         %d\n", summary.Watch)
	fmt.Fprintf(f.out, "  DROP:          %d\n", summary.Drop)
	fmt.Fprintf(f.out, "  Opportunities: %d (weak competition)\n", summary.Opportunities)
	if summary.Errors > 0 {
		fmt.Fprintf(f.out, "  Errors:        %d\n", summary.Errors)
	}
	fmt.Fprintf(f.out, "%s\n", strings.Repeat("=", 60))

	limit := f.topN
	if limit > len(report.Results) {
		limit = len(report.Results)
	}
	if limit > 0 {
		fmt.Fprintf(f.out, "\nTop %d keywords:\n%s\n", limit, strings.Repeat("-", 60))
	}

	for _, result := range report.Results[:limit] {
		f.printResult(result)
	}

	return nil
}

// printResult prints one result with a decision badge.
func (f *ConsoleFormatter) printResult(result scoring.ScoredResult) {
	if result.Status == types.StatusError {
		fmt.Fprintf(f.out, "\n%s %s\n   %s\n", f.badge(result), result.Keyword, result.Error)
		return
	}

	fmt.Fprintf(f.out, "\n%s %s", f.badge(result), result.Keyword)
	if result.WeakCompetitionBonus {
		fmt.Fprint(f.out, " *")
	}
	fmt.Fprintln(f.out)

	fmt.Fprintf(f.out, "   score %.1f | intent %s | pain %s | competition %s\n",
		result.FinalScore, result.Intent.Type, result.Pain.Level, result.Competition.Level)

	if f.verbose {
		fmt.Fprintf(f.out, "   sub-scores: demand %d, monetization %d, pain %d, competition %d, trend %d, pseo %d\n",
			result.Intent.Score, result.Monetization.Score, result.Pain.Score,
			result.Competition.Score, result.Trend.Score, result.PSEO.Score)
		if len(result.Intent.Signals) > 0 {
			fmt.Fprintf(f.out, "   signals: %s\n", strings.Join(result.Intent.Signals, ", "))
		}
		fmt.Fprintf(f.out, "   %s\n", result.MonetizationAdvice)
	}
}

// badge renders the colored decision label.
func (f *ConsoleFormatter) badge(result scoring.ScoredResult) string {
	label := string(result.Decision)
	if result.Status == types.StatusError {
		label = "ERROR"
	}

	if !f.colorize {
		return label
	}

	var style lipgloss.Style
	switch {
	case result.Status == types.StatusError:
		style = lipgloss.NewStyle().Foreground(lipgloss.Color("9")) // red
	case result.Decision == types.DecisionBuildNow:
		style = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")) // green
	case result.Decision == types.DecisionWatch:
		style = lipgloss.NewStyle().Foreground(lipgloss.Color("11")) // yellow
	default:
		style = lipgloss.NewStyle().Foreground(lipgloss.Color("8")) // gray
	}
	return style.Render(label)
}
