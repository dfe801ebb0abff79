package scoring

import (
	"strings"

	"github.com/dotcommander/bluescout/internal/signal"
)

// Monetization sub-scorer point values. Category awards come from the
// dictionary; the two substring nudges are fixed.
const (
	monetizationBase      = 50
	monetizationFreeAdd   = 5
	monetizationOnlineAdd = 5
)

// ScoreMonetization computes the commercial-value sub-score. B2B signals mean
// high contract value; tool signals mean willingness to pay; "free" and
// "online" mean low value but high traffic.
func ScoreMonetization(keyword string, match signal.MatchResult, dicts *signal.Dictionaries) MonetizationScore {
	lower := strings.ToLower(keyword)
	score := monetizationBase
	isB2B := false
	isTransactional := false

	if match.Matched(signal.CategoryTransactionalB2B) {
		isB2B = true
		score += categoryPoints(dicts, signal.CategoryTransactionalB2B)
	}
	if match.Matched(signal.CategoryTransactionalTool) {
		isTransactional = true
		score += categoryPoints(dicts, signal.CategoryTransactionalTool)
	}
	if match.Matched(signal.CategoryTransactionalSolve) {
		score += categoryPoints(dicts, signal.CategoryTransactionalSolve)
	}

	if strings.Contains(lower, "free") {
		score += monetizationFreeAdd
	}
	if strings.Contains(lower, "online") {
		score += monetizationOnlineAdd
	}

	return MonetizationScore{
		Score:           clamp(score),
		IsB2B:           isB2B,
		IsTransactional: isTransactional,
	}
}

// categoryPoints looks up a category's point value, zero if absent.
func categoryPoints(dicts *signal.Dictionaries, name string) int {
	if cat := dicts.Category(name); cat != nil {
		return cat.Points
	}
	return 0
}
