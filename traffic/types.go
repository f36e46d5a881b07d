// Package traffic implements the Traffic & Utilization Model (C6):
// ECMP-proportional demand splitting over spf's predecessor DAG, per-edge
// utilization, and synthetic traffic matrix generators.
//
// Grounded on new domain logic layered over spf's reconstruction; the
// recursive equal-split-at-branch walk follows the same DAG-walk shape as
// spf.layeredNodes (dijkstra/bfs.go's layer-by-layer traversal pattern,
// generalized from hop counting to demand accumulation).
package traffic

// DefaultCapacityMbps is used for any edge without explicit capacity
// metadata (spec.md §4.6).
const DefaultCapacityMbps = 10000.0

// CongestedThreshold and UnderutilizedThreshold bound the aggregate
// edge classifications (spec.md §4.6).
const (
	CongestedThreshold     = 0.80
	UnderutilizedThreshold = 0.20
)

// Matrix maps an (src, dst) router-ID pair to a non-negative demand in
// Mbps. Zero entries are omitted, not stored as zero (spec.md §3).
type Matrix map[Pair]float64

// Pair is a (src, dst) router-ID key for a Matrix entry.
type Pair struct {
	Src string
	Dst string
}

// Set records demand d Mbps from src to dst. A non-positive d deletes
// any existing entry, keeping the "zero entries omitted" invariant.
func (m Matrix) Set(src, dst string, d float64) {
	if d <= 0 {
		delete(m, Pair{src, dst})
		return
	}
	m[Pair{src, dst}] = d
}

// EdgeUtilization is the per-edge result of an Utilization run.
type EdgeUtilization struct {
	EdgeID           string
	Source           string
	Target           string
	LogicalID        string
	TrafficMbps      float64
	CapacityMbps     float64
	UtilizationRatio float64
	CapacityMissing  bool
}

// Report is the result of Utilization (spec.md §4.6).
type Report struct {
	Edges              []EdgeUtilization
	MaxUtilization     float64
	AvgUtilization     float64
	CongestedEdges     []string
	UnderutilizedEdges []string
	Warnings           []string
}
