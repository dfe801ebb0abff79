package scoring

// Trend sub-scorer point values. Band bonuses are evaluated highest-first and
// only the first matching band is awarded.
const (
	trendBase         = 50
	trendExcellentAdd = 40
	trendGreatAdd     = 30
	trendGoodAdd      = 20
	trendBaseAdd      = 10
	trendRisingAdd    = 15
)

// ScoreTrend computes the heat sub-score by anchoring a keyword's ratio
// against the benchmark bands. Relative ratio beats absolute volume: a small
// niche beating its reference baseline is worth more than a big stale one.
func ScoreTrend(trend *TrendBundle, bands TrendBands) TrendScore {
	if trend == nil {
		return TrendScore{Score: trendBase}
	}

	score := trendBase
	switch {
	case trend.Ratio >= bands.Excellent:
		score += trendExcellentAdd
	case trend.Ratio >= bands.Great:
		score += trendGreatAdd
	case trend.Ratio >= bands.Good:
		score += trendGoodAdd
	case trend.Ratio >= bands.Base:
		score += trendBaseAdd
	}

	if trend.Rising {
		score += trendRisingAdd
	}

	return TrendScore{
		Score:    clamp(score),
		IsRising: trend.Rising,
		Ratio:    trend.Ratio,
	}
}
