// Package spf implements the SPF Engine (C2): Dijkstra's algorithm
// extended for full Equal-Cost Multi-Path (ECMP) tracking, and
// reconstruction of a deterministic canonical path, full ECMP edge set,
// and hop-layered node partition from the resulting predecessor DAG.
//
// Grounded on lvlath's dijkstra package: its lazy-decrease-key min-heap
// shape is kept (the functional options and runner struct are not),
// generalized from "replace
// predecessor" to "replace-or-append predecessor set" so ties produce a
// full ECMP DAG instead of a single shortest-path tree.
package spf

import (
	"github.com/zumanm1/ospf-netplan/topology"
)

// PredecessorEdge is one (predecessor, edge) pair contributing to an
// optimal path to some destination.
type PredecessorEdge struct {
	PredecessorID string
	EdgeID        string
}

// SpfTable is the result of ShortestPaths for a single source: for every
// reachable destination, its optimal cost, every predecessor edge
// participating in any optimal path, and the round at which it was
// finalized.
type SpfTable struct {
	Source   string
	snapshot *topology.Snapshot
	cost     map[string]int
	preds    map[string][]PredecessorEdge
	round    map[string]int
}

// Cost returns the optimal cost to dst, or (0, false) if unreachable.
func (t *SpfTable) Cost(dst string) (int, bool) {
	c, ok := t.cost[dst]
	return c, ok
}

// Reachable reports whether dst was finalized during the SPF run.
func (t *SpfTable) Reachable(dst string) bool {
	_, ok := t.cost[dst]
	return ok
}

// Round returns the finalization round of dst (0 for the source itself),
// or (0, false) if unreachable.
func (t *SpfTable) Round(dst string) (int, bool) {
	r, ok := t.round[dst]
	return r, ok
}

// Predecessors returns every (predecessor, edge) pair contributing to an
// optimal path to dst.
func (t *SpfTable) Predecessors(dst string) []PredecessorEdge {
	return t.preds[dst]
}

// PathResult is produced by Reconstruct for a given (src, dst).
type PathResult struct {
	Source        string
	Destination   string
	Cost          int
	IsECMP        bool
	CanonicalPath  []string
	CanonicalEdges []topology.DirectedEdge
	EdgeSet        []topology.DirectedEdge
	LayeredNodes   [][]string
}
