package resilience

import (
	"math"

	"github.com/zumanm1/ospf-netplan/internal/netconfig"
	"github.com/zumanm1/ospf-netplan/internal/scoreutil"
	"github.com/zumanm1/ospf-netplan/topology"
)

// ComputeScore derives the weighted resilience score from the full,
// untruncated SPOF list (spec.md §4.5). spofs must come from
// EnumerateSPOFs, not a TopK-truncated view, or #critical/#high/#medium
// undercount.
func ComputeScore(snapshot *topology.Snapshot, spofs []SPOF, weights netconfig.ResilienceWeights) *Score {
	var critical, high, medium int
	for _, s := range spofs {
		switch s.Severity {
		case SeverityCritical:
			critical++
		case SeverityHigh:
			high++
		case SeverityMedium:
			medium++
		}
	}

	redundancy := 10 - 2.5*float64(critical) - 1.5*float64(high) - 0.5*float64(medium)
	redundancy = math.Max(1, redundancy)

	diversity := diversityScore(snapshot)
	capacity := capacityScore(snapshot)

	overall := weights.Redundancy*redundancy + weights.Diversity*diversity + weights.Capacity*capacity
	overall = math.Round(overall*10) / 10
	overall = scoreutil.Clamp(overall, 0, 10)

	return &Score{
		Overall: overall,
		Breakdown: Breakdown{
			Redundancy: redundancy,
			Diversity:  diversity,
			Capacity:   capacity,
		},
		Level:        levelFor(overall),
		Improvements: improvements(critical, high, medium, diversity, capacity),
	}
}

func diversityScore(snapshot *topology.Snapshot) float64 {
	countryEdges := make(map[string]int)
	countries := make(map[string]bool)
	for _, r := range snapshot.Routers() {
		if r.Country != "" {
			countries[r.Country] = true
		}
	}
	for _, e := range snapshot.AllEdges() {
		if src, ok := snapshot.Router(e.Source); ok && src.Country != "" {
			countryEdges[src.Country]++
		}
		if dst, ok := snapshot.Router(e.Target); ok && dst.Country != "" {
			countryEdges[dst.Country]++
		}
	}

	score := 5.0
	switch {
	case len(countries) >= 10:
		score += 2
	case len(countries) >= 5:
		score += 1
	}

	avgEdgesPerCountry := 0.0
	if len(countryEdges) > 0 {
		total := 0
		for _, n := range countryEdges {
			total += n
		}
		avgEdgesPerCountry = float64(total) / float64(len(countryEdges))
	}
	switch {
	case avgEdgesPerCountry >= 5:
		score += 2
	case avgEdgesPerCountry >= 3:
		score += 1
	}

	return scoreutil.Clamp(score, 0, 10)
}

func capacityScore(snapshot *topology.Snapshot) float64 {
	var totalUtil float64
	var count int
	for _, e := range snapshot.AllEdges() {
		if e.Metadata.CapacityMbps == nil || e.Metadata.TrafficMbps == nil || *e.Metadata.CapacityMbps <= 0 {
			continue
		}
		util := *e.Metadata.TrafficMbps / *e.Metadata.CapacityMbps
		totalUtil += scoreutil.Clamp(util, 0, 1)
		count++
	}
	if count == 0 {
		return 5
	}
	avg := totalUtil / float64(count)
	switch {
	case avg < 0.3:
		return 10
	case avg < 0.5:
		return 8
	case avg < 0.7:
		return 6
	case avg < 0.85:
		return 4
	default:
		return 2
	}
}

func levelFor(overall float64) string {
	switch {
	case overall >= 9:
		return "excellent"
	case overall >= 7:
		return "high"
	case overall >= 5:
		return "medium"
	case overall >= 3:
		return "low"
	default:
		return "critical"
	}
}

func improvements(critical, high, medium int, diversity, capacity float64) []string {
	var out []string
	if critical > 0 {
		out = append(out, "eliminate critical single points of failure before adding new demand")
	}
	if high > 0 {
		out = append(out, "add redundant links around high-severity SPOFs")
	}
	if medium > 0 {
		out = append(out, "review medium-severity SPOFs for planned maintenance windows")
	}
	if diversity < 7 {
		out = append(out, "increase geographic/provider diversity of router placement")
	}
	if capacity < 6 {
		out = append(out, "add capacity or reroute traffic off highly utilized edges")
	}
	return out
}
