package scoring

import (
	"testing"

	"github.com/dotcommander/bluescout/internal/signal"
	"github.com/dotcommander/bluescout/internal/types"
)

func TestScorePSEO(t *testing.T) {
	dicts := signal.Default()

	tests := []struct {
		name          string
		keyword       string
		wantScore     int
		wantPotential string
	}{
		{
			// base 50 + medium tail 15
			name:          "Three word phrase",
			keyword:       "spreadsheet pivot tables",
			wantScore:     65,
			wantPotential: types.PSEOMedium,
		},
		{
			// base 50 + long tail 25
			name:          "Six word phrase",
			keyword:       "help my spreadsheet keeps crashing daily",
			wantScore:     75,
			wantPotential: types.PSEOHigh,
		},
		{
			// base 50 + convert pattern 15 + medium tail 15 + conversion shape 20
			name:          "Conversion shape",
			keyword:       "convert pdf to excel",
			wantScore:     100,
			wantPotential: types.PSEOHigh,
		},
		{
			// base 50 only: too short for tail bonuses
			name:          "Two word phrase",
			keyword:       "tax deadline",
			wantScore:     50,
			wantPotential: types.PSEOLow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			match := signal.Extract(tt.keyword, dicts)
			got := ScorePSEO(tt.keyword, match.WordCount, dicts)

			if got.Score != tt.wantScore {
				t.Errorf("Score = %d, want %d", got.Score, tt.wantScore)
			}
			if got.Potential != tt.wantPotential {
				t.Errorf("Potential = %q, want %q", got.Potential, tt.wantPotential)
			}
		})
	}
}

func TestScorePSEO_PatternsCapped(t *testing.T) {
	dicts := signal.Default()
	keyword := "batch convert extract download generate free automatic"
	got := ScorePSEO(keyword, 7, dicts)

	if len(got.Patterns) > 3 {
		t.Errorf("got %d patterns, want at most 3", len(got.Patterns))
	}
	if got.Score != 100 {
		t.Errorf("Score = %d, want clamp at 100", got.Score)
	}
}
