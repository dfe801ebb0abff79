package signal

import "strings"

// Match records one matched category and the first trigger that hit it.
type Match struct {
	Category string `json:"category"`
	Family   string `json:"family"`
	Trigger  string `json:"trigger"`
}

// MatchResult is the outcome of scanning one keyword against the dictionaries.
type MatchResult struct {
	Keyword   string  `json:"keyword"`
	Matches   []Match `json:"matches"`
	WordCount int     `json:"word_count"`
}

// Matched reports whether the named category matched.
func (r *MatchResult) Matched(category string) bool {
	for _, m := range r.Matches {
		if m.Category == category {
			return true
		}
	}
	return false
}

// MatchedFamily reports whether any category in the named family matched.
func (r *MatchResult) MatchedFamily(family string) bool {
	for _, m := range r.Matches {
		if m.Family == family {
			return true
		}
	}
	return false
}

// Categories returns the matched category names in scan order.
func (r *MatchResult) Categories() []string {
	out := make([]string, 0, len(r.Matches))
	for _, m := range r.Matches {
		out = append(out, m.Category)
	}
	return out
}

// Extract scans the keyword against every category in declaration order.
// Within a category the trigger list is scanned in order and the first
// substring hit wins; matching is presence, not count. The scan order is
// fixed by the slice layout, never by map iteration, so the same keyword and
// dictionary set always produce the same result. An empty keyword matches
// nothing and has word count zero.
func Extract(keyword string, dicts *Dictionaries) MatchResult {
	lower := strings.ToLower(keyword)
	result := MatchResult{
		Keyword:   keyword,
		WordCount: len(strings.Fields(keyword)),
	}

	for _, cat := range dicts.Categories {
		for _, trigger := range cat.Triggers {
			if strings.Contains(lower, trigger) {
				result.Matches = append(result.Matches, Match{
					Category: cat.Name,
					Family:   cat.Family,
					Trigger:  trigger,
				})
				break
			}
		}
	}

	return result
}
