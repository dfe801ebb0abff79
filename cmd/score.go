package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/dotcommander/bluescout/internal/config"
	"github.com/dotcommander/bluescout/internal/harvest"
	"github.com/dotcommander/bluescout/internal/output"
	"github.com/dotcommander/bluescout/internal/scoring"
)

var scoreFile string

var scoreCmd = &cobra.Command{
	Use:   "score [keywords...]",
	Short: "Score a keyword list without harvesting",
	Long: `Score runs the classifier over keywords you already have, skipping
the harvest phase entirely. Keywords come from the arguments, from --file
(one per line), or from stdin when neither is given. Trend signals use the
offline estimator; demand and competition stay on neutral defaults.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runScore(args)
	},
}

func init() {
	scoreCmd.Flags().StringVar(&scoreFile, "file", "", "File with one keyword per line")
	rootCmd.AddCommand(scoreCmd)
}

func runScore(args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	engine, err := loadEngine(cfg)
	if err != nil {
		return err
	}

	keywords, err := collectKeywords(args)
	if err != nil {
		return err
	}
	if len(keywords) == 0 {
		return fmt.Errorf("no keywords to score")
	}

	estimator := harvest.NewTrendEstimator()
	aux := make(map[string]*scoring.Bundle, len(keywords))
	for _, kw := range keywords {
		aux[kw] = &scoring.Bundle{Trend: estimator.Estimate(kw)}
	}

	results := engine.ScoreAll(keywords, aux)

	report := &output.Report{
		Results:     results,
		GeneratedAt: time.Now(),
		Profile:     cfg.Profile,
	}

	outputter := output.NewOutputter(cfg)
	return outputter.Format(report)
}

// collectKeywords gathers keywords from args, the --file flag, or stdin, in
// that order of preference. Blank lines and # comments are skipped.
func collectKeywords(args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	reader := os.Stdin
	if scoreFile != "" {
		f, err := os.Open(scoreFile)
		if err != nil {
			return nil, fmt.Errorf("error opening keyword file: %w", err)
		}
		defer f.Close()
		reader = f
	}

	var keywords []string
	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		keywords = append(keywords, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading keywords: %w", err)
	}
	return keywords, nil
}
