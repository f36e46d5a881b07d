package ioformat

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/zumanm1/ospf-netplan/internal/apperror"
	"github.com/zumanm1/ospf-netplan/topology"
)

// ImportTopology parses the JSON wire document spec.md §6 defines and
// commits it through topology.Builder, so every structural invariant is
// validated exactly as it would be for a programmatically built topology.
// Each link materializes as one or two directed edges sharing a freshly
// assigned logical_id; a missing/zero reverse_cost leaves the reverse
// direction absent.
func ImportTopology(raw []byte) (*topology.Snapshot, error) {
	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, apperror.InvalidTopology("malformed_json", fmt.Sprintf("ioformat: %v", err))
	}
	if doc.Type != "" && doc.Type != wireType {
		return nil, apperror.InvalidTopology("unknown_document_type",
			fmt.Sprintf("ioformat: unrecognized document type %q", doc.Type))
	}

	return buildFromWire(doc.Data.Nodes, doc.Data.Links)
}

// buildFromWire stages every node and link onto a fresh Builder and
// commits, shared by ImportTopology (JSON) and LoadYAML (YAML fixtures).
func buildFromWire(nodes []wireNode, links []wireLink) (*topology.Snapshot, error) {
	b := topology.NewBuilder()
	for _, n := range nodes {
		b.AddRouter(topology.Router{ID: n.ID, Name: n.Name, Country: n.Country, Metadata: n.Metadata})
	}

	for _, l := range links {
		logicalID := uuid.NewString()
		b.AddEdge(topology.DirectedEdge{
			Source: l.Source, Target: l.Target, Cost: l.ForwardCost, LogicalID: logicalID,
			Metadata: topology.EdgeMetadata{
				SourceInterface: l.SourceInterface,
				TargetInterface: l.TargetInterface,
				CapacityMbps:    capacityOf(l),
				TrafficMbps:     l.ObservedTrafficMbps,
				Status:          l.Status,
			},
		})
		if l.ReverseCost > 0 {
			b.AddEdge(topology.DirectedEdge{
				Source: l.Target, Target: l.Source, Cost: l.ReverseCost, LogicalID: logicalID,
				Metadata: topology.EdgeMetadata{
					// The reverse direction runs over the same physical
					// link with its two interface ends swapped.
					SourceInterface: l.TargetInterface,
					TargetInterface: l.SourceInterface,
					CapacityMbps:    capacityOf(l),
					TrafficMbps:     l.ObservedTrafficMbps,
					Status:          l.Status,
				},
			})
		}
	}

	return b.Commit()
}

func capacityOf(l wireLink) *float64 {
	if l.SourceCapacity == nil {
		return nil
	}
	v := float64(l.SourceCapacity.TotalCapacityMbps)
	return &v
}
