package harvest

import (
	"math"
	"testing"
)

func TestTrendEstimator_Estimate(t *testing.T) {
	e := NewTrendEstimator()

	tests := []struct {
		name       string
		keyword    string
		wantRatio  float64
		wantRising bool
	}{
		{
			// count 80 (generator), volume 100+50 tool word
			name:       "Tool keyword",
			keyword:    "invoice generator",
			wantRatio:  80.0 / 150.0,
			wantRising: true,
		},
		{
			// default count 20, base volume 100, long-tail scale 0.8
			name:       "Plain long phrase",
			keyword:    "banana bread baking times",
			wantRatio:  20.0 / 80.0,
			wantRising: true,
		},
		{
			// default count 20, base volume 100
			name:       "Plain short phrase",
			keyword:    "banana bread",
			wantRatio:  20.0 / 100.0,
			wantRising: true,
		},
		{
			// count 20*1.2 pain, volume (100+30)*0.8
			name:       "Pain phrase",
			keyword:    "struggling with pivot tables",
			wantRatio:  24.0 / 104.0,
			wantRising: true,
		},
		{
			// count 100 (tool) + 30 (converter), volume (100+50)*0.8
			name:       "Stacked tool words",
			keyword:    "free converter tool online",
			wantRatio:  130.0 / 120.0,
			wantRising: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.Estimate(tt.keyword)

			if math.Abs(got.Ratio-tt.wantRatio) > 1e-9 {
				t.Errorf("Ratio = %v, want %v", got.Ratio, tt.wantRatio)
			}
			if got.Rising != tt.wantRising {
				t.Errorf("Rising = %v, want %v", got.Rising, tt.wantRising)
			}
		})
	}
}

func TestTrendEstimator_Deterministic(t *testing.T) {
	e := NewTrendEstimator()
	first := e.Estimate("struggling with invoice generator tools")
	for i := 0; i < 20; i++ {
		got := e.Estimate("struggling with invoice generator tools")
		if *got != *first {
			t.Fatalf("run %d differed: %+v vs %+v", i, got, first)
		}
	}
}
