package topology

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/zumanm1/ospf-netplan/internal/apperror"
)

// Builder collects routers and edges and validates structural invariants
// (known endpoints, no duplicate edges, cost range, one pair per logical
// link) on Commit, returning an immutable Snapshot. Grounded on
// builder.BuildGraph's
// accumulate-then-validate shape, generalized from a generic weighted
// multigraph to directed OSPF edges with logical_ids.
type Builder struct {
	routers map[string]Router
	edges   []DirectedEdge
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{routers: make(map[string]Router)}
}

// AddRouter stages a router for the next Commit. A later AddRouter call
// with the same ID overwrites the earlier one (last write wins, resolved
// at staging time, not at Commit).
func (b *Builder) AddRouter(r Router) *Builder {
	b.routers[r.ID] = r
	return b
}

// AddEdge stages a directed edge for the next Commit. Callers building a
// bidirectional logical link stage both directions with the same
// LogicalID.
func (b *Builder) AddEdge(e DirectedEdge) *Builder {
	b.edges = append(b.edges, e)
	return b
}

// Commit validates all staged routers and edges and returns an immutable Snapshot, or an
// apperror.Error (Kind invalid_topology or invalid_cost) on the first
// violation found.
func (b *Builder) Commit() (*Snapshot, error) {
	routers := make(map[string]Router, len(b.routers))
	for id, r := range b.routers {
		routers[id] = r
	}

	edges := make(map[string]DirectedEdge, len(b.edges))
	bySource := make(map[string][]string)
	byLogical := make(map[string][]string)
	pairForLogical := make(map[string][2]string)
	seenTriple := make(map[string]struct{}, len(b.edges))

	for _, e := range b.edges {
		if _, ok := routers[e.Source]; !ok {
			return nil, apperror.InvalidTopology("unknown_edge_source",
				fmt.Sprintf("edge source %q is not a router in this snapshot", e.Source))
		}
		if _, ok := routers[e.Target]; !ok {
			return nil, apperror.InvalidTopology("unknown_edge_target",
				fmt.Sprintf("edge target %q is not a router in this snapshot", e.Target))
		}
		if e.Cost < MinCost || e.Cost > MaxCost {
			return nil, apperror.InvalidCost(e.Cost)
		}

		triple := e.Source + "\x00" + e.Target + "\x00" + e.LogicalID
		if _, dup := seenTriple[triple]; dup {
			return nil, apperror.InvalidTopology("duplicate_edge",
				fmt.Sprintf("duplicate directed edge %s->%s (logical_id=%s)", e.Source, e.Target, e.LogicalID))
		}
		seenTriple[triple] = struct{}{}

		pair := sortedPair(e.Source, e.Target)
		if existing, ok := pairForLogical[e.LogicalID]; ok {
			if existing != pair {
				return nil, apperror.InvalidTopology("logical_id_reused_across_pairs",
					fmt.Sprintf("logical_id %q spans more than one router pair", e.LogicalID))
			}
		} else {
			pairForLogical[e.LogicalID] = pair
		}

		e.ID = edgeInternalID(e.Source, e.Target, e.LogicalID)
		edges[e.ID] = e
		bySource[e.Source] = append(bySource[e.Source], e.ID)
		byLogical[e.LogicalID] = append(byLogical[e.LogicalID], e.ID)
	}

	for src, ids := range bySource {
		ids := ids
		sort.Slice(ids, func(i, j int) bool {
			a, b := edges[ids[i]], edges[ids[j]]
			if a.Target != b.Target {
				return a.Target < b.Target
			}
			return a.LogicalID < b.LogicalID
		})
		bySource[src] = ids
	}
	for lid, ids := range byLogical {
		ids := ids
		sort.Slice(ids, func(i, j int) bool { return edges[ids[i]].Source < edges[ids[j]].Source })
		byLogical[lid] = ids
	}

	return &Snapshot{
		id:        uuid.New(),
		routers:   routers,
		edges:     edges,
		bySource:  bySource,
		byLogical: byLogical,
	}, nil
}
