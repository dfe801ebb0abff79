// Package types provides shared types used across the bluescout codebase.
// This package is at the bottom of the dependency graph and should not import
// any other internal packages to avoid circular dependencies.
package types

// Decision is the final bucket a scored keyword lands in.
type Decision string

// Decision constants, ordered from best to worst.
const (
	DecisionBuildNow Decision = "BUILD_NOW"
	DecisionWatch    Decision = "WATCH"
	DecisionDrop     Decision = "DROP"
)

// Result status constants. A batch always yields one result per keyword;
// failed items are tagged StatusError instead of being dropped.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// Signal family constants. Every dictionary category belongs to one family.
const (
	FamilyPain          = "pain"
	FamilyTransactional = "transactional"
	FamilyInfo          = "info"
	FamilyComparison    = "comparison"
	FamilyUrgency       = "urgency"
)

// Pain level constants.
const (
	PainCritical = "critical"
	PainMedium   = "medium"
	PainLow      = "low"
)

// Competition level constants.
const (
	CompetitionWeak   = "weak"
	CompetitionLow    = "low"
	CompetitionMedium = "medium"
	CompetitionHigh   = "high"
)

// Intent type constants.
const (
	IntentTransactional = "transactional"
	IntentInfo          = "info"
)

// Demand strength constants reported by the community/demand harvester.
const (
	DemandHigh    = "HIGH"
	DemandMedium  = "MEDIUM"
	DemandLow     = "LOW"
	DemandUnknown = "UNKNOWN"
)

// pSEO potential constants.
const (
	PSEOHigh   = "high"
	PSEOMedium = "medium"
	PSEOLow    = "low"
)
