package harvest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/dotcommander/bluescout/internal/scoring"
	"github.com/dotcommander/bluescout/internal/signal"
	"github.com/dotcommander/bluescout/internal/types"
)

const redditSearchURL = "https://www.reddit.com/search.json"

// solutionSeekingSignals mark a post as actively hunting for a tool.
var solutionSeekingSignals = []string{
	"looking for", "need a tool", "is there a", "wish there was",
}

// DemandHarvester mines community-demand evidence from Reddit search.
type DemandHarvester struct {
	fetcher      *Fetcher
	baseURL      string
	painTriggers []string
}

// NewDemandHarvester creates a DemandHarvester using the dictionary's pain
// triggers for post tagging.
func NewDemandHarvester(fetcher *Fetcher, dicts *signal.Dictionaries) *DemandHarvester {
	var triggers []string
	for _, cat := range dicts.Categories {
		if cat.Family == types.FamilyPain && cat.Name != signal.CategoryPainFix {
			triggers = append(triggers, cat.Triggers...)
		}
	}
	return &DemandHarvester{
		fetcher:      fetcher,
		baseURL:      redditSearchURL,
		painTriggers: triggers,
	}
}

// WithBaseURL overrides the endpoint, for tests.
func (h *DemandHarvester) WithBaseURL(base string) *DemandHarvester {
	h.baseURL = base
	return h
}

type redditListing struct {
	Data struct {
		Children []struct {
			Data struct {
				Title       string `json:"title"`
				Selftext    string `json:"selftext"`
				Score       int    `json:"score"`
				NumComments int    `json:"num_comments"`
			} `json:"data"`
		} `json:"children"`
	} `json:"data"`
}

// Analyze searches Reddit for the keyword and derives a demand bundle.
func (h *DemandHarvester) Analyze(ctx context.Context, keyword string) (*scoring.DemandBundle, error) {
	reqURL := fmt.Sprintf("%s?q=%s&limit=20&sort=relevance", h.baseURL, url.QueryEscape(keyword))
	body, err := h.fetcher.Get(ctx, reqURL)
	if err != nil {
		return nil, err
	}

	var listing redditListing
	if err := json.Unmarshal(body, &listing); err != nil {
		return nil, fmt.Errorf("decoding reddit response: %w", err)
	}

	mentions := len(listing.Data.Children)
	painPosts := 0
	solutionSeeking := 0

	for _, child := range listing.Data.Children {
		combined := strings.ToLower(child.Data.Title + " " + child.Data.Selftext)

		for _, trigger := range h.painTriggers {
			if strings.Contains(combined, trigger) {
				painPosts++
				break
			}
		}

		for _, sig := range solutionSeekingSignals {
			if strings.Contains(combined, sig) {
				solutionSeeking++
				break
			}
		}
	}

	return &scoring.DemandBundle{
		Strength:        demandStrength(mentions, painPosts, solutionSeeking),
		Mentions:        mentions,
		SolutionSeeking: solutionSeeking,
		IsPainPoint:     painPosts > 0,
	}, nil
}

// demandStrength buckets the raw counts into a coarse label.
func demandStrength(mentions, painPosts, solutionSeeking int) string {
	switch {
	case painPosts > 3:
		return types.DemandHigh
	case mentions > 5 || solutionSeeking > 0:
		return types.DemandMedium
	case mentions > 0:
		return types.DemandLow
	default:
		return types.DemandUnknown
	}
}
