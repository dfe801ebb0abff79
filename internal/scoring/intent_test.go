package scoring

import (
	"testing"

	"github.com/dotcommander/bluescout/internal/signal"
	"github.com/dotcommander/bluescout/internal/types"
)

func extract(t *testing.T, keyword string) signal.MatchResult {
	t.Helper()
	return signal.Extract(keyword, signal.Default())
}

func TestScoreIntent(t *testing.T) {
	validityMin := DefaultProfile().Thresholds.ValidityMin

	tests := []struct {
		name      string
		keyword   string
		wantScore int
		wantType  string
		wantValid bool
	}{
		{
			// base 50 + transactional 30 + pain_critical support 10
			name:      "Pain plus tool",
			keyword:   "struggling with excel pivot table calculator",
			wantScore: 90,
			wantType:  types.IntentTransactional,
			wantValid: true,
		},
		{
			// base 50 - info 15 + long tail 10
			name:      "Informational",
			keyword:   "what is machine learning",
			wantScore: 45,
			wantType:  types.IntentInfo,
			wantValid: false,
		},
		{
			// base 50 + long tail 10, no category matches
			name:      "Neutral short phrase",
			keyword:   "purple office chairs",
			wantScore: 60,
			wantType:  types.IntentInfo,
			wantValid: false,
		},
		{
			// pain without transactional: still valid via the pain disjunct
			name:      "Pain only below validity score",
			keyword:   "spreadsheet formulas are frustrating sometimes honestly",
			wantScore: 60,
			wantType:  types.IntentInfo,
			wantValid: true,
		},
		{
			name:      "Empty keyword",
			keyword:   "",
			wantScore: 50,
			wantType:  types.IntentInfo,
			wantValid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScoreIntent(extract(t, tt.keyword), validityMin)

			if got.Score != tt.wantScore {
				t.Errorf("Score = %d, want %d", got.Score, tt.wantScore)
			}
			if got.Type != tt.wantType {
				t.Errorf("Type = %q, want %q", got.Type, tt.wantType)
			}
			if got.IsValid != tt.wantValid {
				t.Errorf("IsValid = %v, want %v", got.IsValid, tt.wantValid)
			}
		})
	}
}

func TestScoreIntent_Bounds(t *testing.T) {
	validityMin := DefaultProfile().Thresholds.ValidityMin
	keywords := []string{
		"",
		"struggling with broken bulk api tool vs manual urgent asap",
		"what is a guide tutorial review",
		"free online pdf converter app maker",
	}

	for _, kw := range keywords {
		got := ScoreIntent(extract(t, kw), validityMin)
		if got.Score < 0 || got.Score > 100 {
			t.Errorf("ScoreIntent(%q) = %d, outside [0,100]", kw, got.Score)
		}
	}
}

func TestScoreIntent_SignalsCapped(t *testing.T) {
	validityMin := DefaultProfile().Thresholds.ValidityMin
	got := ScoreIntent(extract(t, "struggling with broken manual fix bulk tool vs urgent guide"), validityMin)
	if len(got.Signals) > 5 {
		t.Errorf("got %d signals, want at most 5", len(got.Signals))
	}
}
