package scoring

import "testing"

func TestScoreTrend(t *testing.T) {
	bands := DefaultProfile().TrendBands

	tests := []struct {
		name      string
		trend     *TrendBundle
		wantScore int
	}{
		{"No bundle is neutral", nil, 50},
		{"Below base band", &TrendBundle{Ratio: 0.01}, 50},
		{"Base band", &TrendBundle{Ratio: 0.05}, 60},
		{"Good band", &TrendBundle{Ratio: 0.12}, 70},
		{"Great band", &TrendBundle{Ratio: 0.25}, 80},
		{"Excellent band", &TrendBundle{Ratio: 0.60}, 90},
		{"Only highest band awarded", &TrendBundle{Ratio: 5.0}, 90},
		{"Rising adds on top", &TrendBundle{Ratio: 0.25, Rising: true}, 95},
		{"Rising alone", &TrendBundle{Ratio: 0.0, Rising: true}, 65},
		{"Clamped at hundred", &TrendBundle{Ratio: 1.0, Rising: true}, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScoreTrend(tt.trend, bands)
			if got.Score != tt.wantScore {
				t.Errorf("Score = %d, want %d", got.Score, tt.wantScore)
			}
		})
	}
}

func TestScoreTrend_CarriesRatio(t *testing.T) {
	got := ScoreTrend(&TrendBundle{Ratio: 0.33, Rising: true}, DefaultProfile().TrendBands)
	if got.Ratio != 0.33 {
		t.Errorf("Ratio = %v, want 0.33", got.Ratio)
	}
	if !got.IsRising {
		t.Error("IsRising = false, want true")
	}
}
