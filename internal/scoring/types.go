// Package scoring implements the keyword scoring engine: five independent
// sub-scorers, the weighted aggregator with its decision rule, and the batch
// scorer. All scoring is pure computation over in-memory data; the only
// shared state is the read-only dictionary and profile configuration.
package scoring

import (
	"errors"

	"github.com/dotcommander/bluescout/internal/signal"
	"github.com/dotcommander/bluescout/internal/types"
)

// Sentinel errors for the fail-fast paths. These indicate configuration or
// caller bugs, not bad keyword data.
var (
	ErrMissingWeight = errors.New("scoring: weight profile omits a required category")
	ErrBadThresholds = errors.New("scoring: decision thresholds out of order")
	ErrInvalidBundle = errors.New("scoring: malformed auxiliary bundle")
	ErrNilDictionary = errors.New("scoring: nil dictionary set")
)

// TrendBundle carries externally supplied trend data for one keyword.
type TrendBundle struct {
	Ratio  float64 `json:"ratio"`
	Rising bool    `json:"rising"`
}

// CompetitionBundle carries the top-ranking domains for one keyword.
type CompetitionBundle struct {
	TopDomains []string `json:"top_domains"`
}

// DemandBundle carries community-demand evidence for one keyword.
type DemandBundle struct {
	Strength        string `json:"strength"` // HIGH, MEDIUM, LOW, UNKNOWN
	Mentions        int    `json:"mentions"`
	SolutionSeeking int    `json:"solution_seeking"`
	IsPainPoint     bool   `json:"is_pain_point"`
}

// Bundle groups the three optional auxiliary structures for one keyword.
// Any field may be nil; absence is the documented neutral-default path.
type Bundle struct {
	Trend       *TrendBundle       `json:"trend,omitempty"`
	Competition *CompetitionBundle `json:"competition,omitempty"`
	Demand      *DemandBundle      `json:"demand,omitempty"`
}

// Validate rejects bundles with impossible field values. Missing sub-bundles
// are fine; negative counts and ratios are caller bugs.
func (b *Bundle) Validate() error {
	if b == nil {
		return nil
	}
	if b.Trend != nil && b.Trend.Ratio < 0 {
		return ErrInvalidBundle
	}
	if b.Demand != nil && (b.Demand.SolutionSeeking < 0 || b.Demand.Mentions < 0) {
		return ErrInvalidBundle
	}
	return nil
}

// IntentScore is the demand-validity sub-score.
type IntentScore struct {
	Score   int      `json:"score"`
	Type    string   `json:"type"` // transactional or info
	IsValid bool     `json:"is_valid"`
	Signals []string `json:"signals,omitempty"`
}

// MonetizationScore is the commercial-value sub-score.
type MonetizationScore struct {
	Score           int  `json:"score"`
	IsB2B           bool `json:"is_b2b"`
	IsTransactional bool `json:"is_transactional"`
}

// PainScore is the pain-depth sub-score.
type PainScore struct {
	Score    int      `json:"score"`
	Level    string   `json:"level"` // critical, medium, low
	Triggers []string `json:"triggers,omitempty"`
}

// CompetitionScore is the competitive-landscape sub-score.
type CompetitionScore struct {
	Score       int      `json:"score"`
	Level       string   `json:"level"` // weak, low, medium, high
	IsWeak      bool     `json:"is_weak"`
	Competitors []string `json:"competitors,omitempty"`
}

// TrendScore is the heat sub-score.
type TrendScore struct {
	Score    int     `json:"score"`
	IsRising bool    `json:"is_rising"`
	Ratio    float64 `json:"ratio"`
}

// PSEOScore estimates how well a keyword pattern expands into many pages.
// It is reported alongside the result but excluded from the weighted sum.
type PSEOScore struct {
	Score     int      `json:"score"`
	Potential string   `json:"potential"` // high, medium, low
	Patterns  []string `json:"patterns,omitempty"`
}

// ScoredResult is the immutable output record for one keyword.
type ScoredResult struct {
	Keyword    string         `json:"keyword"`
	Status     string         `json:"status"`
	Error      string         `json:"error,omitempty"`
	FinalScore float64        `json:"final_score"`
	Decision   types.Decision `json:"decision"`

	Intent       IntentScore       `json:"intent"`
	Monetization MonetizationScore `json:"monetization"`
	Pain         PainScore         `json:"pain"`
	Competition  CompetitionScore  `json:"competition"`
	Trend        TrendScore        `json:"trend"`
	PSEO         PSEOScore         `json:"pseo"`

	Matches   []signal.Match `json:"matches,omitempty"`
	WordCount int            `json:"word_count"`

	WeakCompetitionBonus bool   `json:"weak_competition_bonus"`
	MonetizationAdvice   string `json:"monetization_advice,omitempty"`
}

// clamp bounds a score to [0,100].
func clamp(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// clampFloat bounds a final score to [0,100].
func clampFloat(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
