package scoring

import (
	"testing"

	"github.com/dotcommander/bluescout/internal/signal"
	"github.com/dotcommander/bluescout/internal/types"
)

func TestScoreCompetition(t *testing.T) {
	dicts := signal.Default()

	tests := []struct {
		name      string
		comp      *CompetitionBundle
		wantScore int
		wantLevel string
		wantWeak  bool
	}{
		{
			name:      "No bundle is neutral",
			comp:      nil,
			wantScore: 60,
			wantLevel: types.CompetitionMedium,
		},
		{
			name:      "Empty domains is neutral",
			comp:      &CompetitionBundle{},
			wantScore: 60,
			wantLevel: types.CompetitionMedium,
		},
		{
			name:      "Weak community page",
			comp:      &CompetitionBundle{TopDomains: []string{"reddit.com", "quora.com", "someblog.net"}},
			wantScore: 90,
			wantLevel: types.CompetitionWeak,
			wantWeak:  true,
		},
		{
			name:      "Incumbent present",
			comp:      &CompetitionBundle{TopDomains: []string{"microsoft.com", "someblog.net"}},
			wantScore: 30,
			wantLevel: types.CompetitionHigh,
		},
		{
			name:      "Incumbent dominates weak",
			comp:      &CompetitionBundle{TopDomains: []string{"reddit.com", "adobe.com"}},
			wantScore: 30,
			wantLevel: types.CompetitionHigh,
		},
		{
			name:      "Unknown domains only",
			comp:      &CompetitionBundle{TopDomains: []string{"niche-tools.io", "smallsite.co"}},
			wantScore: 60,
			wantLevel: types.CompetitionMedium,
		},
		{
			// The incumbent in position six is past the clip and ignored.
			name: "Only top five considered",
			comp: &CompetitionBundle{TopDomains: []string{
				"reddit.com", "a.com", "b.com", "c.com", "d.com", "google.com",
			}},
			wantScore: 90,
			wantLevel: types.CompetitionWeak,
			wantWeak:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScoreCompetition(tt.comp, dicts)

			if got.Score != tt.wantScore {
				t.Errorf("Score = %d, want %d", got.Score, tt.wantScore)
			}
			if got.Level != tt.wantLevel {
				t.Errorf("Level = %q, want %q", got.Level, tt.wantLevel)
			}
			if got.IsWeak != tt.wantWeak {
				t.Errorf("IsWeak = %v, want %v", got.IsWeak, tt.wantWeak)
			}
		})
	}
}
