package output

import (
	"fmt"
	"io"
	"os"

	"github.com/dotcommander/bluescout/internal/config"
)

// Outputter selects and runs the formatter matching the configured format.
type Outputter struct {
	config *config.Config
}

// NewOutputter creates a new Outputter.
func NewOutputter(config *config.Config) *Outputter {
	return &Outputter{config: config}
}

// Format renders the report using the configured format and destination.
func (o *Outputter) Format(report *Report) error {
	out, closer, err := o.destination()
	if err != nil {
		return err
	}
	if closer != nil {
		defer closer()
	}

	var formatter Formatter
	switch o.config.Format {
	case "console":
		formatter = NewConsoleFormatter(out, o.config.Quiet, o.config.Verbose, o.config.TopN)
	case "csv":
		formatter = NewCSVFormatter(out)
	case "json":
		formatter = NewJSONFormatter(out, true)
	case "html":
		formatter = NewHTMLFormatter(out)
	default:
		return fmt.Errorf("unsupported format: %s", o.config.Format)
	}

	return formatter.Format(report)
}

// destination opens the output file, or returns stdout.
func (o *Outputter) destination() (io.Writer, func(), error) {
	if o.config.Output == "" {
		return os.Stdout, nil, nil
	}
	f, err := os.Create(o.config.Output)
	if err != nil {
		return nil, nil, fmt.Errorf("error creating output file: %w", err)
	}
	return f, func() { f.Close() }, nil
}
