package scoring

import (
	"errors"
	"testing"
)

func TestProfileValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Profile)
		wantErr error
	}{
		{"Default is valid", func(p *Profile) {}, nil},
		{"Zero weight", func(p *Profile) { p.Weights.Pain = 0 }, ErrMissingWeight},
		{"Negative weight", func(p *Profile) { p.Weights.Trend = -0.1 }, ErrMissingWeight},
		{"Build below watch", func(p *Profile) { p.Thresholds.BuildNow = 40 }, ErrBadThresholds},
		{"Pain floor too high", func(p *Profile) { p.Thresholds.PainFloor = 150 }, ErrBadThresholds},
		{"Negative bonus", func(p *Profile) { p.Bonuses.WeakCompetition = -5 }, ErrBadThresholds},
		{"Bands out of order", func(p *Profile) { p.TrendBands.Good = 0.9 }, ErrBadThresholds},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := DefaultProfile()
			tt.mutate(&profile)

			err := profile.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestProfiles(t *testing.T) {
	profiles := Profiles()

	for _, name := range []string{"default", "ultimate"} {
		p, ok := profiles[name]
		if !ok {
			t.Fatalf("profile %q missing", name)
		}
		if err := p.Validate(); err != nil {
			t.Errorf("profile %q invalid: %v", name, err)
		}
	}

	ultimate := profiles["ultimate"]
	if ultimate.Weights.DemandValidation <= profiles["default"].Weights.DemandValidation {
		t.Error("ultimate profile should weight demand validation higher")
	}
	if ultimate.Thresholds.Watch >= profiles["default"].Thresholds.Watch {
		t.Error("ultimate profile should lower the WATCH bar")
	}
}

func TestBundleValidate(t *testing.T) {
	tests := []struct {
		name    string
		bundle  *Bundle
		wantErr bool
	}{
		{"Nil bundle", nil, false},
		{"Empty bundle", &Bundle{}, false},
		{"Valid full", &Bundle{
			Trend:       &TrendBundle{Ratio: 0.2},
			Competition: &CompetitionBundle{TopDomains: []string{"reddit.com"}},
			Demand:      &DemandBundle{Mentions: 3, SolutionSeeking: 1},
		}, false},
		{"Negative ratio", &Bundle{Trend: &TrendBundle{Ratio: -0.5}}, true},
		{"Negative mentions", &Bundle{Demand: &DemandBundle{Mentions: -1}}, true},
		{"Negative solution seeking", &Bundle{Demand: &DemandBundle{SolutionSeeking: -1}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.bundle.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, ErrInvalidBundle) {
				t.Errorf("Validate() = %v, want ErrInvalidBundle", err)
			}
		})
	}
}
