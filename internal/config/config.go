// Package config loads the bluescout configuration from flags, config files,
// and environment variables. Configuration errors are fatal at startup.
package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"

	"github.com/dotcommander/bluescout/internal/scoring"
)

// Config represents the bluescout configuration.
type Config struct {
	Profile    string        `mapstructure:"profile"`
	Format     string        `mapstructure:"format"`
	Output     string        `mapstructure:"output"`
	Quiet      bool          `mapstructure:"quiet"`
	Verbose    bool          `mapstructure:"verbose"`
	TopN       int           `mapstructure:"topN"`
	Dictionary string        `mapstructure:"dictionary"`
	Seeds      string        `mapstructure:"seeds"`
	Harvest    HarvestConfig `mapstructure:"harvest"`

	// Scoring is the resolved active profile.
	Scoring scoring.Profile `mapstructure:"-"`
}

// HarvestConfig contains harvester configuration.
type HarvestConfig struct {
	MaxKeywords      int     `mapstructure:"maxKeywords"`
	RequestsPerSec   float64 `mapstructure:"requestsPerSec"`
	Burst            int     `mapstructure:"burst"`
	TimeoutSeconds   int     `mapstructure:"timeoutSeconds"`
	SuggestEnabled   bool    `mapstructure:"suggestEnabled"`
	RedditEnabled    bool    `mapstructure:"redditEnabled"`
	SERPEnabled      bool    `mapstructure:"serpEnabled"`
	DeepAnalysisMax  int     `mapstructure:"deepAnalysisMax"`
}

// LoadConfig loads configuration from various sources.
func LoadConfig() (*Config, error) {
	viper.SetDefault("profile", "default")
	viper.SetDefault("format", "console")
	viper.SetDefault("quiet", false)
	viper.SetDefault("verbose", false)
	viper.SetDefault("topN", 15)
	viper.SetDefault("seeds", "seeds/**/*.md")
	viper.SetDefault("harvest.maxKeywords", 100)
	viper.SetDefault("harvest.requestsPerSec", 2.0)
	viper.SetDefault("harvest.burst", 5)
	viper.SetDefault("harvest.timeoutSeconds", 15)
	viper.SetDefault("harvest.suggestEnabled", true)
	viper.SetDefault("harvest.redditEnabled", true)
	viper.SetDefault("harvest.serpEnabled", true)
	viper.SetDefault("harvest.deepAnalysisMax", 20)

	// Config file locations
	configPaths := []string{".bluescoutrc.yaml", ".bluescoutrc.yml", ".bluescoutrc.json"}
	for _, path := range configPaths {
		if _, err := os.Stat(path); err == nil {
			viper.SetConfigFile(path)
			if err := viper.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
			break
		}
	}

	// Environment variables
	viper.SetEnvPrefix("BLUESCOUT")
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := resolveProfile(&config); err != nil {
		return nil, err
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// resolveProfile picks the active scoring profile and applies any overrides
// from the config file's scoring section.
func resolveProfile(config *Config) error {
	profiles := scoring.Profiles()
	profile, ok := profiles[config.Profile]
	if !ok {
		names := make([]string, 0, len(profiles))
		for name := range profiles {
			names = append(names, name)
		}
		return fmt.Errorf("unknown scoring profile %q (available: %v)", config.Profile, names)
	}

	// A scoring section in the config file overrides individual knobs of
	// the selected profile.
	if viper.IsSet("scoring") {
		if err := viper.UnmarshalKey("scoring", &profile); err != nil {
			return fmt.Errorf("error unmarshaling scoring overrides: %w", err)
		}
	}

	config.Scoring = profile
	return nil
}

// validateConfig validates the configuration.
func validateConfig(config *Config) error {
	switch config.Format {
	case "console", "csv", "json", "html":
	default:
		return fmt.Errorf("invalid format: %s. Must be 'console', 'csv', 'json', or 'html'", config.Format)
	}

	if config.Format != "console" && config.Output == "" {
		return fmt.Errorf("output file is required when format is not 'console'")
	}

	if config.TopN < 1 {
		return fmt.Errorf("topN must be at least 1")
	}

	if config.Harvest.MaxKeywords < 1 {
		return fmt.Errorf("harvest.maxKeywords must be at least 1")
	}
	if config.Harvest.RequestsPerSec <= 0 {
		return fmt.Errorf("harvest.requestsPerSec must be positive")
	}
	if config.Harvest.Burst < 1 {
		return fmt.Errorf("harvest.burst must be at least 1")
	}
	if config.Harvest.TimeoutSeconds < 1 {
		return fmt.Errorf("harvest.timeoutSeconds must be at least 1")
	}

	if err := config.Scoring.Validate(); err != nil {
		return err
	}

	return nil
}
