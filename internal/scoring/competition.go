package scoring

import (
	"strings"

	"github.com/dotcommander/bluescout/internal/signal"
	"github.com/dotcommander/bluescout/internal/types"
)

// Competition sub-scorer fixed scores per landscape.
const (
	competitionUnknownScore   = 60
	competitionIncumbentScore = 30
	competitionWeakScore      = 90
	competitionDomainMax      = 5
)

// ScoreCompetition computes the competitive-landscape sub-score from the top
// SERP domains. No bundle means unknown competition and a neutral default.
// Incumbent presence dominates: a page with both an incumbent and a weak
// community site is still defended territory.
func ScoreCompetition(comp *CompetitionBundle, dicts *signal.Dictionaries) CompetitionScore {
	if comp == nil {
		return CompetitionScore{
			Score:  competitionUnknownScore,
			Level:  types.CompetitionMedium,
			IsWeak: false,
		}
	}

	domains := comp.TopDomains
	if len(domains) > competitionDomainMax {
		domains = domains[:competitionDomainMax]
	}

	hasIncumbent := false
	hasWeak := false
	for _, d := range domains {
		if containsAny(d, dicts.Incumbents) {
			hasIncumbent = true
		}
		if containsAny(d, dicts.WeakCompetitors) {
			hasWeak = true
		}
	}

	switch {
	case hasIncumbent:
		return CompetitionScore{
			Score:       competitionIncumbentScore,
			Level:       types.CompetitionHigh,
			IsWeak:      false,
			Competitors: domains,
		}
	case hasWeak:
		return CompetitionScore{
			Score:       competitionWeakScore,
			Level:       types.CompetitionWeak,
			IsWeak:      true,
			Competitors: domains,
		}
	default:
		return CompetitionScore{
			Score:       competitionUnknownScore,
			Level:       types.CompetitionMedium,
			IsWeak:      false,
			Competitors: domains,
		}
	}
}

func containsAny(domain string, refs []string) bool {
	lower := strings.ToLower(domain)
	for _, ref := range refs {
		if strings.Contains(lower, ref) {
			return true
		}
	}
	return false
}
