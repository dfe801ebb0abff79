package scoring

import "fmt"

// Weights configures the contribution of each sub-score to the final score.
// Every category is required; a zero weight is treated as omitted.
type Weights struct {
	DemandValidation float64 `mapstructure:"demand_validation" yaml:"demand_validation" json:"demand_validation"`
	Monetization     float64 `mapstructure:"monetization" yaml:"monetization" json:"monetization"`
	Competition      float64 `mapstructure:"competition" yaml:"competition" json:"competition"`
	Pain             float64 `mapstructure:"pain" yaml:"pain" json:"pain"`
	Trend            float64 `mapstructure:"trend" yaml:"trend" json:"trend"`
}

// Thresholds configures the decision cut points. The pain floor gates
// BUILD_NOW jointly with the final score and also gates the
// weak-competition bonus; it sits above the neutral pain base so a keyword
// with no pain evidence never auto-qualifies.
type Thresholds struct {
	BuildNow    float64 `mapstructure:"build_now" yaml:"build_now" json:"build_now"`
	Watch       float64 `mapstructure:"watch" yaml:"watch" json:"watch"`
	PainFloor   int     `mapstructure:"pain_floor" yaml:"pain_floor" json:"pain_floor"`
	ValidityMin int     `mapstructure:"validity_min" yaml:"validity_min" json:"validity_min"`
}

// Bonuses configures the flat adjustments applied after the weighted sum.
type Bonuses struct {
	WeakCompetition float64 `mapstructure:"weak_competition" yaml:"weak_competition" json:"weak_competition"`
}

// TrendBands are the ascending ratio benchmarks for the trend sub-scorer.
// Bands are evaluated highest-first and the first match wins.
type TrendBands struct {
	Base      float64 `mapstructure:"base" yaml:"base" json:"base"`
	Good      float64 `mapstructure:"good" yaml:"good" json:"good"`
	Great     float64 `mapstructure:"great" yaml:"great" json:"great"`
	Excellent float64 `mapstructure:"excellent" yaml:"excellent" json:"excellent"`
}

// Profile bundles one complete tuning configuration. The historical script
// variants survive as alternate profiles, not alternate code paths.
type Profile struct {
	Weights    Weights    `mapstructure:"weights" yaml:"weights" json:"weights"`
	Thresholds Thresholds `mapstructure:"thresholds" yaml:"thresholds" json:"thresholds"`
	Bonuses    Bonuses    `mapstructure:"bonuses" yaml:"bonuses" json:"bonuses"`
	TrendBands TrendBands `mapstructure:"trend_bands" yaml:"trend_bands" json:"trend_bands"`
}

// DefaultProfile returns the canonical tuning defaults.
func DefaultProfile() Profile {
	return Profile{
		Weights: Weights{
			DemandValidation: 0.25,
			Monetization:     0.25,
			Competition:      0.20,
			Pain:             0.20,
			Trend:            0.10,
		},
		Thresholds: Thresholds{
			BuildNow:    65,
			Watch:       55,
			PainFloor:   55,
			ValidityMin: 65,
		},
		Bonuses: Bonuses{
			WeakCompetition: 15,
		},
		TrendBands: TrendBands{
			Base:      0.05,
			Good:      0.10,
			Great:     0.20,
			Excellent: 0.50,
		},
	}
}

// UltimateProfile is the need-centric alternate profile: demand validity
// dominates and the WATCH bar is lower, surfacing more candidates to review.
func UltimateProfile() Profile {
	p := DefaultProfile()
	p.Weights = Weights{
		DemandValidation: 0.40,
		Monetization:     0.15,
		Competition:      0.15,
		Pain:             0.20,
		Trend:            0.10,
	}
	p.Thresholds.Watch = 45
	return p
}

// Profiles returns the named built-in profiles.
func Profiles() map[string]Profile {
	return map[string]Profile{
		"default":  DefaultProfile(),
		"ultimate": UltimateProfile(),
	}
}

// Validate rejects incomplete or inconsistent profiles. These are
// configuration errors and abort startup.
func (p Profile) Validate() error {
	weights := []struct {
		name  string
		value float64
	}{
		{"demand_validation", p.Weights.DemandValidation},
		{"monetization", p.Weights.Monetization},
		{"competition", p.Weights.Competition},
		{"pain", p.Weights.Pain},
		{"trend", p.Weights.Trend},
	}
	for _, w := range weights {
		if w.value <= 0 {
			return fmt.Errorf("%w: %s", ErrMissingWeight, w.name)
		}
	}

	if p.Thresholds.BuildNow < p.Thresholds.Watch {
		return fmt.Errorf("%w: build_now %.1f below watch %.1f",
			ErrBadThresholds, p.Thresholds.BuildNow, p.Thresholds.Watch)
	}
	if p.Thresholds.PainFloor < 0 || p.Thresholds.PainFloor > 100 {
		return fmt.Errorf("%w: pain_floor %d outside [0,100]", ErrBadThresholds, p.Thresholds.PainFloor)
	}
	if p.Bonuses.WeakCompetition < 0 {
		return fmt.Errorf("%w: weak_competition bonus negative", ErrBadThresholds)
	}

	bands := p.TrendBands
	if !(bands.Base <= bands.Good && bands.Good <= bands.Great && bands.Great <= bands.Excellent) {
		return fmt.Errorf("%w: trend bands not ascending", ErrBadThresholds)
	}

	return nil
}
