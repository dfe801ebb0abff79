package scoring

import (
	"fmt"
	"math"
	"sort"

	"github.com/dotcommander/bluescout/internal/signal"
	"github.com/dotcommander/bluescout/internal/types"
)

// Engine is the aggregator and decision engine. It holds the read-only
// dictionary set and tuning profile for the lifetime of a run; every scoring
// call is a pure function of its inputs plus this shared configuration, so
// one Engine is safe for concurrent use.
type Engine struct {
	dicts   *signal.Dictionaries
	profile Profile
}

// NewEngine validates the configuration and builds an engine. Validation
// failures here are configuration errors and should abort startup.
func NewEngine(dicts *signal.Dictionaries, profile Profile) (*Engine, error) {
	if dicts == nil {
		return nil, ErrNilDictionary
	}
	if err := dicts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid dictionaries: %w", err)
	}
	if err := profile.Validate(); err != nil {
		return nil, fmt.Errorf("invalid profile: %w", err)
	}
	return &Engine{dicts: dicts, profile: profile}, nil
}

// Dictionaries exposes the engine's dictionary set for collaborators that
// share the competitor reference lists.
func (e *Engine) Dictionaries() *signal.Dictionaries {
	return e.dicts
}

// Profile exposes the active tuning profile.
func (e *Engine) Profile() Profile {
	return e.profile
}

// ScoreKeyword runs the full pipeline for one keyword: extract signal
// matches, run the five sub-scorers, aggregate with the configured weights,
// apply bonuses, and decide. Missing bundles are the neutral-default path;
// only a malformed bundle is an error.
func (e *Engine) ScoreKeyword(keyword string, bundle *Bundle) (ScoredResult, error) {
	if err := bundle.Validate(); err != nil {
		return ScoredResult{
			Keyword:  keyword,
			Status:   types.StatusError,
			Error:    err.Error(),
			Decision: types.DecisionDrop,
		}, err
	}

	match := signal.Extract(keyword, e.dicts)

	var trendIn *TrendBundle
	var compIn *CompetitionBundle
	var demandIn *DemandBundle
	if bundle != nil {
		trendIn = bundle.Trend
		compIn = bundle.Competition
		demandIn = bundle.Demand
	}

	intent := ScoreIntent(match, e.profile.Thresholds.ValidityMin)
	mon := ScoreMonetization(keyword, match, e.dicts)
	pain := ScorePain(match, e.dicts, demandIn)
	comp := ScoreCompetition(compIn, e.dicts)
	trend := ScoreTrend(trendIn, e.profile.TrendBands)
	pseo := ScorePSEO(keyword, match.WordCount, e.dicts)

	w := e.profile.Weights
	final := float64(intent.Score)*w.DemandValidation +
		float64(mon.Score)*w.Monetization +
		float64(comp.Score)*w.Competition +
		float64(pain.Score)*w.Pain +
		float64(trend.Score)*w.Trend

	// The dimensional-attack case: a real pain point with no strong
	// incumbent defending the space.
	bonusApplied := false
	if comp.IsWeak && pain.Score >= e.profile.Thresholds.PainFloor {
		final += e.profile.Bonuses.WeakCompetition
		bonusApplied = true
	}

	final = clampFloat(final)
	final = math.Round(final*10) / 10

	return ScoredResult{
		Keyword:              keyword,
		Status:               types.StatusOK,
		FinalScore:           final,
		Decision:             e.decide(final, pain.Score),
		Intent:               intent,
		Monetization:         mon,
		Pain:                 pain,
		Competition:          comp,
		Trend:                trend,
		PSEO:                 pseo,
		Matches:              match.Matches,
		WordCount:            match.WordCount,
		WeakCompetitionBonus: bonusApplied,
		MonetizationAdvice:   MonetizationAdvice(keyword, mon, pain),
	}, nil
}

// decide maps the clamped final score and the pain sub-score to a decision.
// BUILD_NOW requires both: a high score assembled purely from monetization
// and competition signals must not auto-qualify without pain evidence.
func (e *Engine) decide(final float64, painScore int) types.Decision {
	t := e.profile.Thresholds
	switch {
	case final >= t.BuildNow && painScore >= t.PainFloor:
		return types.DecisionBuildNow
	case final >= t.Watch:
		return types.DecisionWatch
	default:
		return types.DecisionDrop
	}
}

// ScoreAll scores a batch of keywords and returns results sorted descending
// by final score, ties broken by input order. One bad item is tagged
// StatusError and kept in place; it never loses the rest of the batch. The
// input slice and auxiliary map are not mutated.
func (e *Engine) ScoreAll(keywords []string, aux map[string]*Bundle) []ScoredResult {
	results := make([]ScoredResult, 0, len(keywords))
	for _, kw := range keywords {
		result, err := e.ScoreKeyword(kw, aux[kw])
		if err != nil {
			results = append(results, ScoredResult{
				Keyword:  kw,
				Status:   types.StatusError,
				Error:    err.Error(),
				Decision: types.DecisionDrop,
			})
			continue
		}
		results = append(results, result)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].FinalScore > results[j].FinalScore
	})

	return results
}
