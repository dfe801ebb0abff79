package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/dotcommander/bluescout/internal/config"
	"github.com/dotcommander/bluescout/internal/harvest"
	"github.com/dotcommander/bluescout/internal/output"
)

var huntCmd = &cobra.Command{
	Use:   "hunt",
	Short: "Harvest keywords from public endpoints and score them",
	Long: `Hunt runs the full pipeline: seed words are expanded through Google
Suggest, filtered down to need keywords, enriched with Reddit demand and SERP
competition data for the top candidates, then scored and ranked.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runHunt()
	},
}

func init() {
	rootCmd.AddCommand(huntCmd)
}

func runHunt() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return hunt(ctx, cfg)
}

// hunt runs one harvest-and-score cycle. It is shared by the hunt and watch
// commands.
func hunt(ctx context.Context, cfg *config.Config) error {
	engine, err := loadEngine(cfg)
	if err != nil {
		return err
	}

	seeds, err := harvest.LoadSeeds(cfg.Seeds)
	if err != nil {
		return fmt.Errorf("error loading seeds: %w", err)
	}

	progress := io.Writer(os.Stderr)
	if cfg.Quiet {
		progress = io.Discard
	}

	pipeline := harvest.NewPipeline(cfg.Harvest, engine.Dictionaries(), progress)
	keywords, aux, err := pipeline.Run(ctx, seeds)
	if err != nil {
		return fmt.Errorf("harvest failed: %w", err)
	}
	if len(keywords) == 0 {
		return fmt.Errorf("no candidate keywords harvested")
	}

	results := engine.ScoreAll(keywords, aux)

	report := &output.Report{
		Results:     results,
		GeneratedAt: time.Now(),
		Profile:     cfg.Profile,
		SeedCount:   len(seeds),
	}

	outputter := output.NewOutputter(cfg)
	return outputter.Format(report)
}
