package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dotcommander/bluescout/internal/scoring"
)

// JSONFormatter writes the full result objects with a header block.
type JSONFormatter struct {
	out    io.Writer
	indent bool
}

// NewJSONFormatter creates a new JSONFormatter writing to out.
func NewJSONFormatter(out io.Writer, indent bool) *JSONFormatter {
	return &JSONFormatter{out: out, indent: indent}
}

// jsonReport is the serialized report envelope.
type jsonReport struct {
	Header  jsonHeader             `json:"header"`
	Summary jsonSummary            `json:"summary"`
	Results []scoring.ScoredResult `json:"results"`
}

type jsonHeader struct {
	Tool      string `json:"tool"`
	Version   string `json:"version"`
	Profile   string `json:"profile"`
	Timestamp string `json:"timestamp"`
}

type jsonSummary struct {
	Total         int `json:"total"`
	BuildNow      int `json:"build_now"`
	Watch         int `json:"watch"`
	Drop          int `json:"drop"`
	Errors        int `json:"errors"`
	Opportunities int `json:"opportunities"`
}

// Format serializes the report.
func (f *JSONFormatter) Format(report *Report) error {
	summary := report.Summarize()

	doc := jsonReport{
		Header: jsonHeader{
			Tool:      "bluescout",
			Version:   "1.0.0",
			Profile:   report.Profile,
			Timestamp: report.GeneratedAt.Format(time.RFC3339),
		},
		Summary: jsonSummary{
			Total:         summary.Total,
			BuildNow:      summary.BuildNow,
			Watch:         summary.Watch,
			Drop:          summary.Drop,
			Errors:        summary.Errors,
			Opportunities: summary.Opportunities,
		},
		Results: report.Results,
	}

	enc := json.NewEncoder(f.out)
	if f.indent {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("error encoding JSON report: %w", err)
	}
	return nil
}

// LoadReport reads a previously saved JSON report back into a Report so it
// can be re-rendered in another format.
func LoadReport(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading report file: %w", err)
	}

	var doc jsonReport
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("error parsing report file %s: %w", path, err)
	}

	generatedAt, err := time.Parse(time.RFC3339, doc.Header.Timestamp)
	if err != nil {
		generatedAt = time.Now()
	}

	return &Report{
		Results:     doc.Results,
		GeneratedAt: generatedAt,
		Profile:     doc.Header.Profile,
	}, nil
}
