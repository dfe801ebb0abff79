package harvest

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/dotcommander/bluescout/internal/config"
	"github.com/dotcommander/bluescout/internal/scoring"
	"github.com/dotcommander/bluescout/internal/signal"
)

// Pipeline coordinates the harvesters: seed keywords from Google Suggest,
// then per-keyword auxiliary bundles from Reddit, the SERP, and the trend
// estimator. Deep per-keyword analysis is capped because the SERP and Reddit
// calls are the expensive part.
type Pipeline struct {
	cfg      config.HarvestConfig
	suggest  *SuggestHarvester
	demand   *DemandHarvester
	serp     *SERPHarvester
	trends   *TrendEstimator
	progress io.Writer
}

// NewPipeline wires up the harvesters with a shared rate-limited fetcher.
// Progress lines are written to the given writer (normally stderr).
func NewPipeline(cfg config.HarvestConfig, dicts *signal.Dictionaries, progress io.Writer) *Pipeline {
	fetcher := NewFetcher(cfg.RequestsPerSec, cfg.Burst, time.Duration(cfg.TimeoutSeconds)*time.Second)
	return &Pipeline{
		cfg:      cfg,
		suggest:  NewSuggestHarvester(fetcher),
		demand:   NewDemandHarvester(fetcher, dicts),
		serp:     NewSERPHarvester(fetcher),
		trends:   NewTrendEstimator(),
		progress: progress,
	}
}

// Run harvests candidate keywords from the seeds and builds auxiliary
// bundles for the top candidates. Per-keyword harvest failures leave that
// bundle slot absent; the keyword still gets scored on neutral defaults.
func (p *Pipeline) Run(ctx context.Context, seeds []string) ([]string, map[string]*scoring.Bundle, error) {
	var keywords []string

	if p.cfg.SuggestEnabled {
		fmt.Fprintf(p.progress, "Harvesting suggestions for %d seeds...\n", len(seeds))
		harvested, err := p.suggest.Harvest(ctx, seeds, p.cfg.MaxKeywords)
		if err != nil {
			return nil, nil, fmt.Errorf("suggest harvest: %w", err)
		}
		keywords = harvested
		fmt.Fprintf(p.progress, "Found %d need keywords (product keywords filtered)\n", len(keywords))
	}

	// Seeds that are themselves needs join the candidate list.
	seen := make(map[string]bool, len(keywords))
	for _, kw := range keywords {
		seen[kw] = true
	}
	for _, seed := range seeds {
		if !seen[seed] && !signal.IsProductKeyword(seed) {
			seen[seed] = true
			keywords = append(keywords, seed)
		}
	}
	if len(keywords) > p.cfg.MaxKeywords {
		keywords = keywords[:p.cfg.MaxKeywords]
	}

	aux := make(map[string]*scoring.Bundle, len(keywords))

	deepMax := p.cfg.DeepAnalysisMax
	if deepMax > len(keywords) {
		deepMax = len(keywords)
	}
	if deepMax > 0 {
		fmt.Fprintf(p.progress, "Deep-analyzing top %d keywords...\n", deepMax)
	}

	for i, kw := range keywords {
		if ctx.Err() != nil {
			return keywords, aux, ctx.Err()
		}

		bundle := &scoring.Bundle{Trend: p.trends.Estimate(kw)}

		if i < deepMax {
			if p.cfg.RedditEnabled {
				if demand, err := p.demand.Analyze(ctx, kw); err == nil {
					bundle.Demand = demand
				} else if ctx.Err() != nil {
					return keywords, aux, ctx.Err()
				}
			}
			if p.cfg.SERPEnabled {
				if comp, err := p.serp.TopDomains(ctx, kw); err == nil {
					bundle.Competition = comp
				} else if ctx.Err() != nil {
					return keywords, aux, ctx.Err()
				}
			}
		}

		aux[kw] = bundle
	}

	return keywords, aux, nil
}
