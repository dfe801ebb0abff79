package scoring

import (
	"strings"

	"github.com/dotcommander/bluescout/internal/types"
)

// MonetizationAdvice maps a result's commercial shape to a business-model
// suggestion for the report.
func MonetizationAdvice(keyword string, mon MonetizationScore, pain PainScore) string {
	switch {
	case mon.IsB2B:
		return "B2B: API access / enterprise subscription / team plan (high contract value)"
	case pain.Level == types.PainCritical:
		return "Painkiller: paid tool / one-time purchase (deep pain converts)"
	case strings.Contains(strings.ToLower(keyword), "free"):
		return "Freemium: free tier plus paid upgrades (high traffic, mid value)"
	default:
		return "Utility: ads plus value-add services (steady cash flow)"
	}
}
