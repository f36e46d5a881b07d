// Package blastradius implements the Blast-Radius Scorer (C8): it
// aggregates an All-Pairs Differential Analyzer report into a single risk
// score, a zone classification per affected flow, a country-pair
// aggregation, and rollback hints for the edges that changed.
//
// No teacher file does this aggregation; it is new domain logic layered on
// top of impact.ImpactReport, scored with the same sum-then-clamp shape
// resilience.ComputeScore uses, clamped here to [0,100] with
// scoreutil.Clamp01To100.
package blastradius

// Zone classifies how directly an impacted flow relates to the edges that
// actually changed between baseline and candidate (spec.md §4.8).
type Zone string

const (
	// ZoneDirect: the flow's baseline optimal path traversed a changed edge.
	ZoneDirect Zone = "direct"
	// ZoneIndirect: the flow's routing changed but its baseline path did
	// not traverse any changed edge (a knock-on reroute).
	ZoneIndirect Zone = "indirect"
	// ZoneSecondary: only ECMP membership changed; the canonical path is
	// the same.
	ZoneSecondary Zone = "secondary"
	// ZoneUnaffected marks a flow carried for context rather than because
	// its routing differed.
	ZoneUnaffected Zone = "unaffected"
)

// Level buckets risk_score per spec.md §4.8's thresholds.
type Level string

const (
	LevelLow      Level = "low"
	LevelMedium   Level = "medium"
	LevelHigh     Level = "high"
	LevelCritical Level = "critical"
)

// FlowImpact is one (src, dst) pair's contribution to the blast radius,
// pairing its differential record with a zone.
type FlowImpact struct {
	Source      string
	Destination string
	Zone        Zone
}

// CountryPairStat aggregates impact counts and the average cost delta for
// one (src_country, dst_country) pair across every affected flow whose
// endpoints carry that pair of tags.
type CountryPairStat struct {
	SourceCountry      string
	DestinationCountry string
	Count              int
	Kinds              map[string]int
	AvgCostDelta       float64
}

// EdgeRollback is a rollback hint for one changed edge: its prior cost, or
// an instruction to remove it if it did not exist in the baseline.
type EdgeRollback struct {
	LogicalID      string
	Source         string
	Target         string
	PriorCost      *int // nil if the edge did not exist in baseline (rollback = remove it)
	WasRemoved     bool // true if the edge existed in baseline but not in candidate
	RollbackAction string
}

// Breakdown holds the four risk_score components, each already clamped to
// its own per-component cap (spec.md §4.8).
type Breakdown struct {
	FlowImpact       float64
	CostMagnitude    float64
	CountryDiversity float64
	CriticalPaths    float64
}

// Report is the result of Analyze.
type Report struct {
	RiskScore        float64
	Level            Level
	Breakdown        Breakdown
	Flows            []FlowImpact
	CountryPairs     []CountryPairStat
	Rollbacks        []EdgeRollback
	RecommendationTags []string
}
