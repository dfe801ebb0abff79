// Package signal holds the signal dictionaries and the extractor that tags
// keywords with matched categories. Dictionaries are immutable after load and
// shared read-only across scoring calls.
package signal

import (
	"fmt"

	"github.com/dotcommander/bluescout/internal/types"
)

// Category is one named signal category: an ordered trigger list plus the
// point value its family's scorer awards when any trigger matches.
type Category struct {
	Name     string   `yaml:"name"`
	Family   string   `yaml:"family"`
	Points   int      `yaml:"points"`
	Triggers []string `yaml:"triggers"`
}

// PSEOPattern is a programmatic-SEO template root with its expansion variants.
// Matching is on the base word; variants are reported for explainability only.
type PSEOPattern struct {
	Base     string   `yaml:"base"`
	Variants []string `yaml:"variants"`
}

// Dictionaries is the full immutable signal configuration: ordered categories,
// the two competitor domain reference sets, and the pSEO pattern templates.
// Category order is declaration order and determines scan order.
type Dictionaries struct {
	Categories      []Category    `yaml:"categories"`
	WeakCompetitors []string      `yaml:"weak_competitors"`
	Incumbents      []string      `yaml:"incumbents"`
	PSEOPatterns    []PSEOPattern `yaml:"pseo_patterns"`
}

// Canonical category names.
const (
	CategoryPainCritical       = "pain_critical"
	CategoryPainMedium         = "pain_medium"
	CategoryPainFix            = "pain_fix"
	CategoryTransactionalTool  = "transactional_tool"
	CategoryTransactionalB2B   = "transactional_b2b"
	CategoryTransactionalSolve = "transactional_solve"
	CategoryComparison         = "comparison"
	CategoryUrgency            = "urgency"
	CategoryInfo               = "info"
)

// Default returns the built-in dictionary set. Callers treat the returned
// value as read-only.
func Default() *Dictionaries {
	return &Dictionaries{
		Categories: []Category{
			{
				Name:   CategoryPainCritical,
				Family: types.FamilyPain,
				Points: 20,
				Triggers: []string{
					"struggling with", "how to fix", "error", "broken", "not working",
					"failed", "manual", "tedious", "time consuming", "cannot",
					"doesn't work", "help me", "problem with", "annoying", "frustrating",
					"wish there was", "tired of", "waste of time",
				},
			},
			{
				Name:   CategoryPainMedium,
				Family: types.FamilyPain,
				Points: 10,
				Triggers: []string{
					"difficult", "hard to", "complicated", "confusing",
					"looking for", "need a tool", "searching for", "best way to",
				},
			},
			{
				Name:   CategoryPainFix,
				Family: types.FamilyPain,
				Points: 5,
				Triggers: []string{
					"fix", "repair", "recover", "restore", "solve", "resolve",
				},
			},
			{
				Name:   CategoryTransactionalTool,
				Family: types.FamilyTransactional,
				Points: 15,
				Triggers: []string{
					"tool", "app", "software", "generator", "converter", "calculator",
					"maker", "creator", "builder", "editor", "downloader",
				},
			},
			{
				Name:   CategoryTransactionalB2B,
				Family: types.FamilyTransactional,
				Points: 20,
				Triggers: []string{
					"bulk", "batch", "api", "export", "team", "enterprise",
					"automation", "workflow", "integration",
				},
			},
			{
				Name:   CategoryTransactionalSolve,
				Family: types.FamilyTransactional,
				Points: 10,
				Triggers: []string{
					"remove", "delete", "clean", "optimize",
				},
			},
			{
				Name:   CategoryComparison,
				Family: types.FamilyComparison,
				Points: 10,
				Triggers: []string{
					"vs", "versus", "alternative", "instead of",
					"difference between", "pros and cons", "which is better",
				},
			},
			{
				Name:   CategoryUrgency,
				Family: types.FamilyUrgency,
				Points: 10,
				Triggers: []string{
					"instant", "quick", "asap", "urgent", "right now",
				},
			},
			{
				Name:   CategoryInfo,
				Family: types.FamilyInfo,
				Points: 15,
				Triggers: []string{
					"what is", "guide", "tutorial", "learn", "understand",
					"examples", "tips", "review",
				},
			},
		},
		WeakCompetitors: []string{
			"reddit.com", "quora.com", "stackoverflow.com", "medium.com",
			"dev.to", "blogger.com", "wordpress.com", "github.com",
			"youtube.com", "wikipedia.org", "pinterest.com",
		},
		Incumbents: []string{
			"google.com", "microsoft.com", "adobe.com", "canva.com", "figma.com",
			"notion.so", "airtable.com", "shopify.com", "amazon.com", "apple.com",
		},
		PSEOPatterns: []PSEOPattern{
			{Base: "convert", Variants: []string{"to", "from", "into"}},
			{Base: "generate", Variants: []string{"for", "with", "without"}},
			{Base: "remove", Variants: []string{"from", "background", "watermark"}},
			{Base: "extract", Variants: []string{"from", "audio", "text"}},
			{Base: "download", Variants: []string{"from", "video", "audio"}},
			{Base: "batch", Variants: []string{"process", "convert", "transform"}},
			{Base: "free", Variants: []string{"online", "tool", "app"}},
			{Base: "automatic", Variants: []string{"tool", "generator", "workflow"}},
		},
	}
}

// Category returns the category with the given name, or nil.
func (d *Dictionaries) Category(name string) *Category {
	for i := range d.Categories {
		if d.Categories[i].Name == name {
			return &d.Categories[i]
		}
	}
	return nil
}

// Validate checks the structural invariants every dictionary set must hold.
// An empty category would silently never match, so it is rejected up front.
func (d *Dictionaries) Validate() error {
	if len(d.Categories) == 0 {
		return fmt.Errorf("dictionary has no categories")
	}
	seen := make(map[string]bool, len(d.Categories))
	for _, c := range d.Categories {
		if c.Name == "" {
			return fmt.Errorf("dictionary category with empty name")
		}
		if seen[c.Name] {
			return fmt.Errorf("duplicate dictionary category %q", c.Name)
		}
		seen[c.Name] = true
		if len(c.Triggers) == 0 {
			return fmt.Errorf("dictionary category %q has no triggers", c.Name)
		}
		if c.Points < 0 {
			return fmt.Errorf("dictionary category %q has negative points", c.Name)
		}
	}
	return nil
}
