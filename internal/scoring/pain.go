package scoring

import (
	"github.com/dotcommander/bluescout/internal/signal"
	"github.com/dotcommander/bluescout/internal/types"
)

// Pain sub-scorer point values.
const (
	painBase             = 50
	painSolutionSeekAdd  = 10
	painTriggerReportMax = 3
)

// ScorePain computes the pain-depth sub-score. Deeper pain converts better.
// Community solution-seeking evidence forces the level to critical even when
// the keyword itself only carries a mild trigger.
func ScorePain(match signal.MatchResult, dicts *signal.Dictionaries, demand *DemandBundle) PainScore {
	score := painBase
	level := types.PainLow
	var triggers []string

	if match.Matched(signal.CategoryPainCritical) {
		score += categoryPoints(dicts, signal.CategoryPainCritical)
		level = types.PainCritical
	}
	if match.Matched(signal.CategoryPainMedium) {
		score += categoryPoints(dicts, signal.CategoryPainMedium)
		if level != types.PainCritical {
			level = types.PainMedium
		}
	}
	if match.Matched(signal.CategoryPainFix) {
		score += categoryPoints(dicts, signal.CategoryPainFix)
	}

	for _, m := range match.Matches {
		if m.Family == types.FamilyPain {
			triggers = append(triggers, m.Trigger)
		}
	}
	if len(triggers) > painTriggerReportMax {
		triggers = triggers[:painTriggerReportMax]
	}

	if demand != nil && demand.SolutionSeeking > 0 {
		score += painSolutionSeekAdd
		level = types.PainCritical
	}

	return PainScore{
		Score:    clamp(score),
		Level:    level,
		Triggers: triggers,
	}
}
