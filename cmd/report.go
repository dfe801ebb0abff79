package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dotcommander/bluescout/internal/config"
	"github.com/dotcommander/bluescout/internal/output"
)

var reportCmd = &cobra.Command{
	Use:   "report <results.json>",
	Short: "Re-render a saved JSON report in another format",
	Long: `Report loads results previously saved with --format json and renders
them again with the current output settings. This lets you produce an HTML or
CSV report from an old run without re-harvesting.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReport(args[0])
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
}

func runReport(path string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	report, err := output.LoadReport(path)
	if err != nil {
		return err
	}

	outputter := output.NewOutputter(cfg)
	return outputter.Format(report)
}
