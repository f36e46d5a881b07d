package topology

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/zumanm1/ospf-netplan/internal/apperror"
)

// Direction selects one of the (at most two) directed edges sharing a
// logical_id. Forward is the edge whose Source is the lexicographically
// smaller of the pair's two router IDs; see sortedPair.
type Direction string

const (
	DirectionForward Direction = "forward"
	DirectionReverse Direction = "reverse"
)

// Edit is one scoped mutation accepted by Snapshot.WithEdits: SetCost,
// AddLink, RemoveLink, FailNode, or FailLink (spec.md §4.1).
type Edit interface {
	apply(*draftState) error
}

// SetCost changes the cost of one direction of an existing logical link.
type SetCost struct {
	LogicalID string
	Direction Direction
	NewCost   int
}

func (e SetCost) apply(d *draftState) error {
	matched := false
	for i := range d.edges {
		ed := &d.edges[i]
		if ed.LogicalID != e.LogicalID {
			continue
		}
		pair := sortedPair(ed.Source, ed.Target)
		isForward := ed.Source == pair[0]
		if (e.Direction == DirectionForward) == isForward {
			ed.Cost = e.NewCost
			matched = true
		}
	}
	if !matched {
		return apperror.UnknownEdge("UNKNOWN_LOGICAL_DIRECTION",
			fmt.Sprintf("logical_id %q has no %s direction", e.LogicalID, e.Direction))
	}
	return nil
}

// AddLink adds a new bidirectional logical link with a freshly assigned
// logical_id. ReverseCost of 0 means the reverse direction is absent,
// mirroring spec.md §6's "missing reverse_cost ⇒ reverse direction
// absent."
type AddLink struct {
	Source      string
	Target      string
	ForwardCost int
	ReverseCost int
}

func (e AddLink) apply(d *draftState) error {
	lid := uuid.NewString()
	d.edges = append(d.edges, DirectedEdge{Source: e.Source, Target: e.Target, Cost: e.ForwardCost, LogicalID: lid})
	if e.ReverseCost > 0 {
		d.edges = append(d.edges, DirectedEdge{Source: e.Target, Target: e.Source, Cost: e.ReverseCost, LogicalID: lid})
	}
	return nil
}

// RemoveLink deletes every directed edge sharing logicalID.
type RemoveLink struct {
	LogicalID string
}

func (e RemoveLink) apply(d *draftState) error {
	return removeEdgesByLogicalID(d, e.LogicalID)
}

// FailNode simulates node failure: the router and every edge touching it
// are dropped from the derived snapshot.
type FailNode struct {
	RouterID string
}

func (e FailNode) apply(d *draftState) error {
	if _, ok := d.routers[e.RouterID]; !ok {
		return apperror.UnknownRouter(e.RouterID)
	}
	delete(d.routers, e.RouterID)
	out := d.edges[:0]
	for _, ed := range d.edges {
		if ed.Source == e.RouterID || ed.Target == e.RouterID {
			continue
		}
		out = append(out, ed)
	}
	d.edges = out
	return nil
}

// FailLink simulates link failure: both directions of the named logical
// link are dropped, but (unlike RemoveLink in a topology-editing context)
// this models a transient failure for SPOF/resilience simulation rather
// than a permanent topology change. The effect on the derived snapshot is
// identical to RemoveLink.
type FailLink struct {
	LogicalID string
}

func (e FailLink) apply(d *draftState) error {
	return removeEdgesByLogicalID(d, e.LogicalID)
}

func removeEdgesByLogicalID(d *draftState, logicalID string) error {
	out := d.edges[:0]
	removed := false
	for _, ed := range d.edges {
		if ed.LogicalID == logicalID {
			removed = true
			continue
		}
		out = append(out, ed)
	}
	d.edges = out
	if !removed {
		return apperror.UnknownEdge("UNKNOWN_LOGICAL_ID", fmt.Sprintf("logical_id %q not found", logicalID))
	}
	return nil
}
