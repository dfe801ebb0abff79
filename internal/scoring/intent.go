package scoring

import (
	"github.com/dotcommander/bluescout/internal/signal"
	"github.com/dotcommander/bluescout/internal/types"
)

// Intent sub-scorer point values.
const (
	intentBase              = 50
	intentTransactionalAdd  = 30
	intentSupportAdd        = 10
	intentInfoPenalty       = 15
	intentLongTailAdd       = 10
	intentLongTailMinTokens = 2
	intentLongTailMaxTokens = 4
)

// supportCategories are the non-transactional categories that each add a
// fixed intent bonus. Matching once per category; different categories stack.
var supportCategories = []string{
	signal.CategoryPainCritical,
	signal.CategoryPainMedium,
	signal.CategoryComparison,
	signal.CategoryTransactionalB2B,
	signal.CategoryUrgency,
}

// ScoreIntent computes the demand-validity sub-score from the matched signal
// categories. Validity is a disjunction, not a score cutoff alone:
// transactional or pain intent is a harder signal than score magnitude.
func ScoreIntent(match signal.MatchResult, validityMin int) IntentScore {
	score := intentBase
	var signals []string

	isTransactional := match.MatchedFamily(types.FamilyTransactional)
	if isTransactional {
		score += intentTransactionalAdd
	}

	for _, cat := range supportCategories {
		if match.Matched(cat) {
			score += intentSupportAdd
		}
	}

	hasPain := match.MatchedFamily(types.FamilyPain)

	if match.Matched(signal.CategoryInfo) {
		score -= intentInfoPenalty
	}

	if match.WordCount >= intentLongTailMinTokens && match.WordCount <= intentLongTailMaxTokens {
		score += intentLongTailAdd
	}

	score = clamp(score)

	intentType := types.IntentInfo
	if isTransactional {
		intentType = types.IntentTransactional
	}

	for _, m := range match.Matches {
		signals = append(signals, m.Category+":"+m.Trigger)
	}
	if len(signals) > 5 {
		signals = signals[:5]
	}

	return IntentScore{
		Score:   score,
		Type:    intentType,
		IsValid: isTransactional || hasPain || score >= validityMin,
		Signals: signals,
	}
}
