package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dotcommander/bluescout/internal/config"
	"github.com/dotcommander/bluescout/internal/scoring"
	"github.com/dotcommander/bluescout/internal/signal"
)

var (
	profileName  string
	quiet        bool
	verbose      bool
	outputFormat string
	outputFile   string
	topN         int
	dictionary   string
	seedsGlob    string
)

var rootCmd = &cobra.Command{
	Use:   "bluescout",
	Short: "bluescout - blue ocean keyword research from public search endpoints",
	Long: `bluescout harvests candidate search phrases from public endpoints
(Google Suggest, Reddit search, Google SERP), tags them with signal
categories, scores them with a weighted multi-signal classifier, and buckets
each keyword into BUILD_NOW / WATCH / DROP.

By default, bluescout runs the full hunt pipeline. Use 'score' to score an
existing keyword list without harvesting, and 'report' to re-render saved
results.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runHunt(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&profileName, "profile", "p", "default", "Scoring profile (default|ultimate)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-essential output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", "console", "Output format for reports (console|csv|json|html)")
	rootCmd.PersistentFlags().StringVarP(&outputFile, "output", "o", "", "Output file for reports (requires --format)")
	rootCmd.PersistentFlags().IntVarP(&topN, "top", "n", 15, "Number of results shown in console output")
	rootCmd.PersistentFlags().StringVarP(&dictionary, "dictionary", "d", "", "Custom signal dictionary file (YAML)")
	rootCmd.PersistentFlags().StringVar(&seedsGlob, "seeds", "", "Glob for seed word markdown files")

	viper.BindPFlag("profile", rootCmd.PersistentFlags().Lookup("profile"))
	viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("format", rootCmd.PersistentFlags().Lookup("format"))
	viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	viper.BindPFlag("topN", rootCmd.PersistentFlags().Lookup("top"))
	viper.BindPFlag("dictionary", rootCmd.PersistentFlags().Lookup("dictionary"))
	viper.BindPFlag("seeds", rootCmd.PersistentFlags().Lookup("seeds"))
}

// loadEngine builds the scoring engine from the resolved configuration:
// built-in dictionaries unless a custom file is configured, plus the active
// profile.
func loadEngine(cfg *config.Config) (*scoring.Engine, error) {
	dicts := signal.Default()
	if cfg.Dictionary != "" {
		loaded, err := signal.LoadFile(cfg.Dictionary)
		if err != nil {
			return nil, err
		}
		dicts = loaded
	}

	engine, err := scoring.NewEngine(dicts, cfg.Scoring)
	if err != nil {
		return nil, fmt.Errorf("error building scoring engine: %w", err)
	}
	return engine, nil
}
