package impact

import (
	"github.com/zumanm1/ospf-netplan/spf"
	"github.com/zumanm1/ospf-netplan/topology"
)

func edgeIDs(edges []topology.DirectedEdge) []string {
	if len(edges) == 0 {
		return nil
	}
	out := make([]string, len(edges))
	for i, e := range edges {
		out[i] = e.ID
	}
	return out
}

// classify applies spec.md §4.3's classification rules in order. oldRes/
// newRes are nil when the corresponding side is unreachable.
func classify(oldRes, newRes *spf.PathResult, baselineLogicalIDs map[string]bool) ImpactRecord {
	rec := ImpactRecord{}

	oldReachable := oldRes != nil
	newReachable := newRes != nil

	if oldReachable {
		c := oldRes.Cost
		rec.OldCost = &c
		rec.OldCanonicalPath = oldRes.CanonicalPath
		rec.OldCanonicalEdgeIDs = edgeIDs(oldRes.CanonicalEdges)
		rec.WasECMP = oldRes.IsECMP
	}
	if newReachable {
		c := newRes.Cost
		rec.NewCost = &c
		rec.NewCanonicalPath = newRes.CanonicalPath
		rec.NewCanonicalEdgeIDs = edgeIDs(newRes.CanonicalEdges)
		rec.IsECMP = newRes.IsECMP
	}

	switch {
	case oldReachable && !newReachable:
		rec.Kind = KindNewlyBroken
		return rec
	case !oldReachable && newReachable:
		rec.Kind = KindNewlyReachable
		return rec
	}

	rec.PathChanged = edgeSetsDiffer(oldRes, newRes)

	if usesNewLogicalID(newRes, baselineLogicalIDs) {
		rec.Kind = KindMigration
		return rec
	}
	if rec.PathChanged {
		rec.Kind = KindReroute
		return rec
	}
	switch {
	case oldRes.IsECMP && !newRes.IsECMP:
		rec.Kind = KindLostECMP
		return rec
	case !oldRes.IsECMP && newRes.IsECMP:
		rec.Kind = KindGainedECMP
		return rec
	}
	if newRes.Cost > oldRes.Cost {
		rec.Kind = KindCostIncrease
	} else {
		rec.Kind = KindCostDecrease
	}
	return rec
}

// usesNewLogicalID reports whether the candidate canonical path traverses
// an edge whose logical_id did not exist in the baseline (spec.md §4.3
// rule 3: "the candidate added a new link the path now uses").
func usesNewLogicalID(newRes *spf.PathResult, baselineLogicalIDs map[string]bool) bool {
	if newRes == nil {
		return false
	}
	for _, e := range newRes.CanonicalEdges {
		if !baselineLogicalIDs[e.LogicalID] {
			return true
		}
	}
	return false
}

// edgeSetsDiffer compares the full ECMP edge sets of two reconstructions
// by (source, target, logical_id) identity.
func edgeSetsDiffer(oldRes, newRes *spf.PathResult) bool {
	if len(oldRes.EdgeSet) != len(newRes.EdgeSet) {
		return true
	}
	oldIDs := make(map[string]bool, len(oldRes.EdgeSet))
	for _, e := range oldRes.EdgeSet {
		oldIDs[e.ID] = true
	}
	for _, e := range newRes.EdgeSet {
		if !oldIDs[e.ID] {
			return true
		}
	}
	return false
}

// recordsEqual reports whether two reconstructions produce no observable
// difference worth reporting: same cost, same edge set, same ECMP status.
func recordsEqual(oldRes, newRes *spf.PathResult) bool {
	if (oldRes == nil) != (newRes == nil) {
		return false
	}
	if oldRes == nil && newRes == nil {
		return true
	}
	if oldRes.Cost != newRes.Cost {
		return false
	}
	if oldRes.IsECMP != newRes.IsECMP {
		return false
	}
	return !edgeSetsDiffer(oldRes, newRes)
}
