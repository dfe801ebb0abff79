package harvest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/dotcommander/bluescout/internal/signal"
)

const suggestBaseURL = "https://suggestqueries.google.com/complete/search"

// alphabet used for soup variants. Each letter prefix surfaces a different
// slice of the autocomplete index.
const alphabet = "abcdefghijklmnopqrstuvwxyz"

// SuggestHarvester mines candidate keywords from the Google Suggest endpoint
// using the alphabet-soup technique.
type SuggestHarvester struct {
	fetcher *Fetcher
	baseURL string
}

// NewSuggestHarvester creates a SuggestHarvester.
func NewSuggestHarvester(fetcher *Fetcher) *SuggestHarvester {
	return &SuggestHarvester{fetcher: fetcher, baseURL: suggestBaseURL}
}

// WithBaseURL overrides the endpoint, for tests.
func (h *SuggestHarvester) WithBaseURL(base string) *SuggestHarvester {
	h.baseURL = base
	return h
}

// Harvest queries each seed plus its letter-prefix variants and returns
// de-duplicated need keywords in first-seen order, capped at max. Product
// keywords and phrases under three tokens are dropped: short phrases and
// tool names are not problem statements.
func (h *SuggestHarvester) Harvest(ctx context.Context, seeds []string, max int) ([]string, error) {
	seen := make(map[string]bool)
	var keywords []string

	add := func(suggestion string) bool {
		suggestion = strings.TrimSpace(strings.ToLower(suggestion))
		if suggestion == "" || seen[suggestion] {
			return len(keywords) < max
		}
		seen[suggestion] = true
		if len(strings.Fields(suggestion)) < 3 {
			return true
		}
		if signal.IsProductKeyword(suggestion) {
			return true
		}
		keywords = append(keywords, suggestion)
		return len(keywords) < max
	}

	for _, seed := range seeds {
		queries := make([]string, 0, 1+len(alphabet))
		queries = append(queries, seed)
		for _, letter := range alphabet {
			queries = append(queries, string(letter)+" "+seed)
		}

		for _, q := range queries {
			if ctx.Err() != nil {
				return keywords, ctx.Err()
			}
			suggestions, err := h.suggestions(ctx, q)
			if err != nil {
				// One failed query is not worth losing the harvest.
				continue
			}
			for _, s := range suggestions {
				if !add(s) {
					return keywords, nil
				}
			}
		}
	}

	return keywords, nil
}

// suggestions fetches and decodes one Suggest response. The payload is a
// JSON array whose second element is the suggestion list.
func (h *SuggestHarvester) suggestions(ctx context.Context, query string) ([]string, error) {
	reqURL := fmt.Sprintf("%s?client=firefox&q=%s", h.baseURL, url.QueryEscape(query))
	body, err := h.fetcher.Get(ctx, reqURL)
	if err != nil {
		return nil, err
	}

	var payload []json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decoding suggest response: %w", err)
	}
	if len(payload) < 2 {
		return nil, nil
	}

	var suggestions []string
	if err := json.Unmarshal(payload[1], &suggestions); err != nil {
		return nil, fmt.Errorf("decoding suggestions: %w", err)
	}
	return suggestions, nil
}
