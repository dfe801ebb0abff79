package harvest

import (
	"strings"

	"github.com/dotcommander/bluescout/internal/scoring"
)

// toolPatternCounts estimate how many competing assistants already serve a
// tool keyword. The numbers are density anchors, not real inventory.
var toolPatternCounts = []struct {
	pattern string
	count   int
}{
	{"calculator", 50},
	{"generator", 80},
	{"converter", 30},
	{"tool", 100},
	{"analyzer", 40},
	{"writer", 60},
	{"editor", 35},
	{"tracker", 25},
	{"planner", 20},
	{"checker", 30},
	{"creator", 45},
	{"maker", 35},
	{"formatter", 15},
	{"validator", 20},
	{"optimizer", 25},
	{"extractor", 20},
	{"transformer", 25},
}

var trendPainWords = []string{"struggling", "fix", "error", "help", "problem"}

var trendToolWords = []string{
	"calculator", "generator", "converter", "tool", "checker",
	"planner", "tracker", "formatter", "validator", "optimizer",
}

const (
	trendDefaultCount  = 20
	trendPainFactor    = 1.2
	trendBaseVolume    = 100
	trendToolVolumeAdd = 50
	trendPainVolumeAdd = 30
	trendLongTailScale = 0.8
	risingRatioCutoff  = 0.20
)

// TrendEstimator derives a trend bundle offline by anchoring keyword tool
// density against an estimated search volume. It replaces a live trends API
// with a deterministic heuristic, so batch runs stay reproducible.
type TrendEstimator struct{}

// NewTrendEstimator creates a TrendEstimator.
func NewTrendEstimator() *TrendEstimator {
	return &TrendEstimator{}
}

// Estimate computes the trend bundle for one keyword.
func (e *TrendEstimator) Estimate(keyword string) *scoring.TrendBundle {
	lower := strings.ToLower(keyword)

	count := 0
	for _, p := range toolPatternCounts {
		if strings.Contains(lower, p.pattern) {
			count += p.count
		}
	}
	if count == 0 {
		count = trendDefaultCount
	}
	for _, w := range trendPainWords {
		if strings.Contains(lower, w) {
			count = int(float64(count) * trendPainFactor)
			break
		}
	}

	volume := e.estimateVolume(lower)
	ratio := float64(count) / float64(maxInt(volume, 1))

	return &scoring.TrendBundle{
		Ratio:  ratio,
		Rising: ratio >= risingRatioCutoff,
	}
}

// estimateVolume approximates relative search volume from keyword shape.
func (e *TrendEstimator) estimateVolume(lower string) int {
	volume := trendBaseVolume

	for _, w := range trendToolWords {
		if strings.Contains(lower, w) {
			volume += trendToolVolumeAdd
			break
		}
	}
	for _, w := range trendPainWords {
		if strings.Contains(lower, w) {
			volume += trendPainVolumeAdd
			break
		}
	}

	// Long-tail phrases carry less volume but sharper intent.
	if len(strings.Fields(lower)) >= 3 {
		volume = int(float64(volume) * trendLongTailScale)
	}

	return volume
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
