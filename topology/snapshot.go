package topology

import (
	"sort"

	"github.com/google/uuid"
)

// Snapshot is an immutable value: {routers, edges, adjacency index by
// source, adjacency index by logical_id}. It is produced by Builder.Commit
// or Snapshot.WithEdits and is safe to share and read from any goroutine.
type Snapshot struct {
	id        uuid.UUID
	routers   map[string]Router
	edges     map[string]DirectedEdge
	bySource  map[string][]string
	byLogical map[string][]string
}

// ID returns this snapshot's identity, a UUID assigned by every Commit
// (and so by every WithEdits). No package in this module caches by it:
// spf.ShortestPaths recomputes its table on every call.
func (s *Snapshot) ID() uuid.UUID { return s.id }

// RouterCount returns the number of routers in the snapshot.
func (s *Snapshot) RouterCount() int { return len(s.routers) }

// Router looks up a single router by handle.
func (s *Snapshot) Router(id string) (Router, bool) {
	r, ok := s.routers[id]
	return r, ok
}

// Routers returns every router, ordered by ID ascending for determinism.
func (s *Snapshot) Routers() []Router {
	out := make([]Router, 0, len(s.routers))
	for _, r := range s.routers {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// HasRouter reports whether id names a router in this snapshot.
func (s *Snapshot) HasRouter(id string) bool {
	_, ok := s.routers[id]
	return ok
}

// OutEdges returns every directed edge whose source is src, ordered by
// (target, logical_id) ascending.
func (s *Snapshot) OutEdges(src string) []DirectedEdge {
	ids := s.bySource[src]
	out := make([]DirectedEdge, 0, len(ids))
	for _, id := range ids {
		out = append(out, s.edges[id])
	}
	return out
}

// EdgesForLogicalID returns the (at most two) directed edges sharing
// logicalID, ordered by Source ascending.
func (s *Snapshot) EdgesForLogicalID(logicalID string) []DirectedEdge {
	ids := s.byLogical[logicalID]
	out := make([]DirectedEdge, 0, len(ids))
	for _, id := range ids {
		out = append(out, s.edges[id])
	}
	return out
}

// FindEdge looks up the directed edge (src, dst, logicalID), if present.
func (s *Snapshot) FindEdge(src, dst, logicalID string) (DirectedEdge, bool) {
	e, ok := s.edges[edgeInternalID(src, dst, logicalID)]
	return e, ok
}

// EdgeByID looks up a directed edge by its internal synthetic ID, as
// returned on DirectedEdge.ID. Callers that collected edge IDs from an
// spf.SpfTable's predecessor set use this to resolve them back to edges.
func (s *Snapshot) EdgeByID(id string) (DirectedEdge, bool) {
	e, ok := s.edges[id]
	return e, ok
}

// AllEdges returns every directed edge in the snapshot, ordered by
// (Source, Target, LogicalID) ascending.
func (s *Snapshot) AllEdges() []DirectedEdge {
	out := make([]DirectedEdge, 0, len(s.edges))
	for _, e := range s.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Source != b.Source {
			return a.Source < b.Source
		}
		if a.Target != b.Target {
			return a.Target < b.Target
		}
		return a.LogicalID < b.LogicalID
	})
	return out
}

// LogicalIDs returns every distinct logical_id in the snapshot, sorted.
func (s *Snapshot) LogicalIDs() []string {
	out := make([]string, 0, len(s.byLogical))
	for lid := range s.byLogical {
		out = append(out, lid)
	}
	sort.Strings(out)
	return out
}

// draftState is the mutable working copy Edit values transform; WithEdits
// rebuilds a Snapshot from it via Builder so every structural invariant is
// re-validated on every derivation, the same way a fresh Commit does.
type draftState struct {
	routers map[string]Router
	edges   []DirectedEdge
}

// WithEdits derives a new Snapshot by applying edits in order against a
// copy of this snapshot's routers and edges. It is pure: s is never
// modified, matching spec.md §4.1's "with_edits is pure" contract and P4
// (snapshot purity).
func (s *Snapshot) WithEdits(edits ...Edit) (*Snapshot, error) {
	draft := &draftState{
		routers: make(map[string]Router, len(s.routers)),
		edges:   make([]DirectedEdge, 0, len(s.edges)),
	}
	for id, r := range s.routers {
		draft.routers[id] = r
	}
	for _, e := range s.edges {
		draft.edges = append(draft.edges, e)
	}

	for _, edit := range edits {
		if err := edit.apply(draft); err != nil {
			return nil, err
		}
	}

	b := NewBuilder()
	for _, r := range draft.routers {
		b.AddRouter(r)
	}
	for _, e := range draft.edges {
		b.AddEdge(e)
	}
	return b.Commit()
}
