package harvest

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/dotcommander/bluescout/internal/scoring"
)

const googleSearchURL = "https://www.google.com/search"

// domainPattern extracts result host names from SERP HTML.
var domainPattern = regexp.MustCompile(`https?://([^/"'\s]+)`)

// SERPHarvester extracts the top-ranking domains for a keyword from Google
// search result HTML.
type SERPHarvester struct {
	fetcher *Fetcher
	baseURL string
}

// NewSERPHarvester creates a SERPHarvester.
func NewSERPHarvester(fetcher *Fetcher) *SERPHarvester {
	return &SERPHarvester{fetcher: fetcher, baseURL: googleSearchURL}
}

// WithBaseURL overrides the endpoint, for tests.
func (h *SERPHarvester) WithBaseURL(base string) *SERPHarvester {
	h.baseURL = base
	return h
}

// TopDomains fetches the SERP for a keyword and returns a competition bundle
// with up to five unique result domains in ranking order.
func (h *SERPHarvester) TopDomains(ctx context.Context, keyword string) (*scoring.CompetitionBundle, error) {
	reqURL := fmt.Sprintf("%s?q=%s&num=10&hl=en", h.baseURL, url.QueryEscape(keyword))
	body, err := h.fetcher.Get(ctx, reqURL)
	if err != nil {
		return nil, err
	}

	return &scoring.CompetitionBundle{
		TopDomains: ExtractDomains(string(body), 5),
	}, nil
}

// ExtractDomains pulls unique host names out of SERP HTML, stripping the
// www. prefix and preserving first-seen order.
func ExtractDomains(html string, max int) []string {
	var domains []string
	seen := make(map[string]bool)

	for _, m := range domainPattern.FindAllStringSubmatch(html, -1) {
		domain := strings.TrimPrefix(strings.ToLower(m[1]), "www.")
		if domain == "" || len(domain) >= 50 || seen[domain] {
			continue
		}
		seen[domain] = true
		domains = append(domains, domain)
		if len(domains) >= max {
			break
		}
	}

	return domains
}
