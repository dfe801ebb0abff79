package scoring

import (
	"testing"

	"github.com/dotcommander/bluescout/internal/signal"
)

func TestScoreMonetization(t *testing.T) {
	dicts := signal.Default()

	tests := []struct {
		name      string
		keyword   string
		wantScore int
		wantB2B   bool
		wantTrans bool
	}{
		{
			// base 50 + tool 15
			name:      "Tool keyword",
			keyword:   "pivot table calculator",
			wantScore: 65,
			wantTrans: true,
		},
		{
			// base 50 + b2b 20 + tool 15
			name:      "B2B plus tool",
			keyword:   "bulk invoice generator",
			wantScore: 85,
			wantB2B:   true,
			wantTrans: true,
		},
		{
			// base 50 + tool 15 + free 5 + online 5
			name:      "Free online tool",
			keyword:   "free online image converter",
			wantScore: 75,
			wantTrans: true,
		},
		{
			// base 50 + solve 10
			name:      "Solve keyword",
			keyword:   "remove duplicates spreadsheet",
			wantScore: 60,
		},
		{
			name:      "No commercial signals",
			keyword:   "history of rome",
			wantScore: 50,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			match := signal.Extract(tt.keyword, dicts)
			got := ScoreMonetization(tt.keyword, match, dicts)

			if got.Score != tt.wantScore {
				t.Errorf("Score = %d, want %d", got.Score, tt.wantScore)
			}
			if got.IsB2B != tt.wantB2B {
				t.Errorf("IsB2B = %v, want %v", got.IsB2B, tt.wantB2B)
			}
			if got.IsTransactional != tt.wantTrans {
				t.Errorf("IsTransactional = %v, want %v", got.IsTransactional, tt.wantTrans)
			}
		})
	}
}

func TestScoreMonetization_CustomPoints(t *testing.T) {
	// Category awards come from the dictionary, not from code constants.
	dicts := signal.Default()
	dicts.Category(signal.CategoryTransactionalTool).Points = 40

	match := signal.Extract("pivot table calculator", dicts)
	got := ScoreMonetization("pivot table calculator", match, dicts)

	if got.Score != 90 {
		t.Errorf("Score = %d, want 90 with boosted tool points", got.Score)
	}
}
