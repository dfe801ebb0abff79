package scoring

import (
	"strings"

	"github.com/dotcommander/bluescout/internal/signal"
	"github.com/dotcommander/bluescout/internal/types"
)

// pSEO sub-scorer point values.
const (
	pseoBase          = 50
	pseoPatternAdd    = 15
	pseoMediumTailAdd = 15
	pseoLongTailAdd   = 25
	pseoConversionAdd = 20
	pseoPatternMax    = 3
)

// ScorePSEO estimates whether a keyword pattern can be mechanically expanded
// into many near-duplicate pages. Pattern templates match by base word in
// declared order; "X to Y" conversion phrasing is the strongest shape.
func ScorePSEO(keyword string, wordCount int, dicts *signal.Dictionaries) PSEOScore {
	lower := strings.ToLower(keyword)
	score := pseoBase
	potential := types.PSEOLow
	var patterns []string

	for _, p := range dicts.PSEOPatterns {
		if strings.Contains(lower, p.Base) {
			score += pseoPatternAdd
			patterns = append(patterns, p.Base+" + "+strings.Join(p.Variants, "/"))
		}
	}

	switch {
	case wordCount > 5:
		score += pseoLongTailAdd
		potential = types.PSEOHigh
	case wordCount >= 3:
		score += pseoMediumTailAdd
		potential = types.PSEOMedium
	}

	if strings.Contains(lower, " to ") || strings.Contains(lower, " from ") {
		score += pseoConversionAdd
		patterns = append(patterns, "X to Y conversion")
		potential = types.PSEOHigh
	}

	if len(patterns) > pseoPatternMax {
		patterns = patterns[:pseoPatternMax]
	}

	return PSEOScore{
		Score:     clamp(score),
		Potential: potential,
		Patterns:  patterns,
	}
}
