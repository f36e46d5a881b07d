package blastradius

import (
	"math"
	"sort"

	"github.com/zumanm1/ospf-netplan/impact"
	"github.com/zumanm1/ospf-netplan/internal/scoreutil"
	"github.com/zumanm1/ospf-netplan/topology"
)

// Analyze aggregates an impact.ImpactReport produced from baseline and
// candidate into a risk score, per-flow zone classification, country-pair
// aggregation, and rollback hints (spec.md §4.8). Like connectivity.Analyze
// it is a fast, purely sequential aggregation over already-computed
// results; it runs no new SPF and needs no cancellation token.
func Analyze(report *impact.ImpactReport, baseline, candidate *topology.Snapshot) *Report {
	deltas := computeEdgeDeltas(baseline, candidate)
	changedEdgeIDs := make(map[string]bool, len(deltas))
	for _, d := range deltas {
		changedEdgeIDs[d.id] = true
	}

	flows := make([]FlowImpact, 0, len(report.Records))
	countryPairs := make(map[[2]string]*CountryPairStat)
	var criticalTraversals int
	var costDeltaSum float64
	var costDeltaCount int
	affectedCountries := make(map[string]bool)

	for _, rec := range report.Records {
		zone := classifyZone(rec, changedEdgeIDs)
		flows = append(flows, FlowImpact{Source: rec.Source, Destination: rec.Destination, Zone: zone})

		srcCountry := routerCountry(baseline, candidate, rec.Source)
		dstCountry := routerCountry(baseline, candidate, rec.Destination)
		if dstCountry != "" {
			affectedCountries[dstCountry] = true
		}

		key := [2]string{srcCountry, dstCountry}
		stat, ok := countryPairs[key]
		if !ok {
			stat = &CountryPairStat{SourceCountry: srcCountry, DestinationCountry: dstCountry, Kinds: make(map[string]int)}
			countryPairs[key] = stat
		}
		stat.Count++
		stat.Kinds[string(rec.Kind)]++

		if rec.OldCost != nil && rec.NewCost != nil && *rec.OldCost > 0 {
			delta := math.Abs(float64(*rec.NewCost - *rec.OldCost))
			stat.AvgCostDelta += delta
			costDeltaSum += delta / float64(*rec.OldCost)
			costDeltaCount++
		}

		// A flow's baseline path is "critical" if it was the unique
		// optimal path (not ECMP) in baseline; spec.md §4.8 counts its
		// traversal by any differing record as a critical-path hit.
		if rec.OldCost != nil && !rec.WasECMP {
			criticalTraversals++
		}
	}

	for _, stat := range countryPairs {
		if stat.Count > 0 {
			stat.AvgCostDelta /= float64(stat.Count)
		}
	}

	n := commonRouterCount(baseline, candidate)
	totalPairs := n * (n - 1)
	affected := len(report.Records)

	flowImpact := 0.0
	if totalPairs > 0 {
		flowImpact = math.Min(40, 100*float64(affected)/float64(totalPairs))
	}

	costMagnitude := 0.0
	if costDeltaCount > 0 {
		avgPctDelta := (costDeltaSum / float64(costDeltaCount)) * 100
		costMagnitude = math.Min(20, avgPctDelta/5)
	}

	countryDiversity := math.Min(20, 3*float64(len(affectedCountries)))
	criticalPaths := math.Min(20, 5*float64(criticalTraversals))

	riskScore := scoreutil.Clamp01To100(flowImpact + costMagnitude + countryDiversity + criticalPaths)

	return &Report{
		RiskScore: math.Round(riskScore*10) / 10,
		Level:     levelFor(riskScore),
		Breakdown: Breakdown{
			FlowImpact:       flowImpact,
			CostMagnitude:    costMagnitude,
			CountryDiversity: countryDiversity,
			CriticalPaths:    criticalPaths,
		},
		Flows:              flows,
		CountryPairs:       sortedCountryPairs(countryPairs),
		Rollbacks:          rollbacksFor(deltas),
		RecommendationTags: recommendationTags(riskScore, criticalTraversals, deltas),
	}
}

// classifyZone reports how directly rec relates to the edges that actually
// changed between baseline and candidate. A newly-reachable flow has no
// baseline path to test, so it falls back to testing its candidate path.
func classifyZone(rec impact.ImpactRecord, changedEdgeIDs map[string]bool) Zone {
	pathIDs := rec.OldCanonicalEdgeIDs
	if pathIDs == nil {
		pathIDs = rec.NewCanonicalEdgeIDs
	}
	for _, id := range pathIDs {
		if changedEdgeIDs[id] {
			return ZoneDirect
		}
	}
	if rec.PathChanged || rec.Kind == impact.KindNewlyBroken || rec.Kind == impact.KindNewlyReachable || rec.Kind == impact.KindMigration || rec.Kind == impact.KindReroute {
		return ZoneIndirect
	}
	return ZoneSecondary
}

func routerCountry(baseline, candidate *topology.Snapshot, id string) string {
	if r, ok := baseline.Router(id); ok && r.Country != "" {
		return r.Country
	}
	if r, ok := candidate.Router(id); ok {
		return r.Country
	}
	return ""
}

func commonRouterCount(baseline, candidate *topology.Snapshot) int {
	n := 0
	for _, r := range baseline.Routers() {
		if candidate.HasRouter(r.ID) {
			n++
		}
	}
	return n
}

func levelFor(riskScore float64) Level {
	switch {
	case riskScore < 20:
		return LevelLow
	case riskScore < 40:
		return LevelMedium
	case riskScore < 70:
		return LevelHigh
	default:
		return LevelCritical
	}
}

func sortedCountryPairs(m map[[2]string]*CountryPairStat) []CountryPairStat {
	out := make([]CountryPairStat, 0, len(m))
	for _, v := range m {
		out = append(out, *v)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].SourceCountry != out[j].SourceCountry {
			return out[i].SourceCountry < out[j].SourceCountry
		}
		return out[i].DestinationCountry < out[j].DestinationCountry
	})
	return out
}

type edgeDelta struct {
	id        string
	logicalID string
	source    string
	target    string
	oldCost   *int
	newCost   *int
}

// computeEdgeDeltas diffs every directed edge present in either snapshot,
// by its stable (logical_id, source, target) identity, and returns one
// entry per edge whose cost changed, whose edge was added, or whose edge
// was removed.
func computeEdgeDeltas(baseline, candidate *topology.Snapshot) []edgeDelta {
	baseByID := make(map[string]topology.DirectedEdge)
	for _, e := range baseline.AllEdges() {
		baseByID[e.ID] = e
	}
	candByID := make(map[string]topology.DirectedEdge)
	for _, e := range candidate.AllEdges() {
		candByID[e.ID] = e
	}

	seen := make(map[string]bool, len(baseByID)+len(candByID))
	var ids []string
	for id := range baseByID {
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	for id := range candByID {
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)

	var out []edgeDelta
	for _, id := range ids {
		be, bok := baseByID[id]
		ce, cok := candByID[id]
		switch {
		case bok && cok:
			if be.Cost == ce.Cost {
				continue
			}
			oc, nc := be.Cost, ce.Cost
			out = append(out, edgeDelta{id: id, logicalID: be.LogicalID, source: be.Source, target: be.Target, oldCost: &oc, newCost: &nc})
		case bok && !cok:
			oc := be.Cost
			out = append(out, edgeDelta{id: id, logicalID: be.LogicalID, source: be.Source, target: be.Target, oldCost: &oc})
		case !bok && cok:
			nc := ce.Cost
			out = append(out, edgeDelta{id: id, logicalID: ce.LogicalID, source: ce.Source, target: ce.Target, newCost: &nc})
		}
	}
	return out
}

func rollbacksFor(deltas []edgeDelta) []EdgeRollback {
	out := make([]EdgeRollback, 0, len(deltas))
	for _, d := range deltas {
		switch {
		case d.oldCost != nil && d.newCost != nil:
			prior := *d.oldCost
			out = append(out, EdgeRollback{
				LogicalID: d.logicalID, Source: d.source, Target: d.target,
				PriorCost: &prior, RollbackAction: "restore cost to its prior value",
			})
		case d.oldCost != nil && d.newCost == nil:
			prior := *d.oldCost
			out = append(out, EdgeRollback{
				LogicalID: d.logicalID, Source: d.source, Target: d.target,
				PriorCost: &prior, WasRemoved: true, RollbackAction: "re-add this edge at its prior cost",
			})
		case d.oldCost == nil && d.newCost != nil:
			out = append(out, EdgeRollback{
				LogicalID: d.logicalID, Source: d.source, Target: d.target,
				RollbackAction: "remove this edge",
			})
		}
	}
	return out
}

func recommendationTags(riskScore float64, criticalTraversals int, deltas []edgeDelta) []string {
	var out []string
	if riskScore >= 70 {
		out = append(out, "stage this change behind a maintenance window")
	}
	if criticalTraversals > 0 {
		out = append(out, "affected flows include unique (non-ECMP) baseline paths; verify no SLA depends on them")
	}
	if len(deltas) > 0 {
		out = append(out, "rollback hints are available for every changed edge")
	}
	if riskScore < 20 {
		out = append(out, "low risk; safe to apply without additional review")
	}
	return out
}
