package ioformat

import (
	"encoding/json"
	"math"

	"github.com/zumanm1/ospf-netplan/topology"
)

// ExportTopology serializes snapshot back into spec.md §6's wire shape.
// Each logical_id's directed edges are re-paired into one link: the
// package's lexicographic forward/reverse resolution (the same one
// topology.SetCost uses) decides which direction is reported as
// source/target, since a committed Snapshot no longer remembers which
// side the original caller called "source" — that label is not part of
// this engine's model once invariants are validated, only each
// direction's independent cost is.
func ExportTopology(snapshot *topology.Snapshot) ([]byte, error) {
	doc := document{Version: wireVersion, Type: wireType}

	for _, r := range snapshot.Routers() {
		doc.Data.Nodes = append(doc.Data.Nodes, wireNode{
			ID: r.ID, Name: r.Name, Country: r.Country, Metadata: r.Metadata,
		})
	}

	for _, lid := range snapshot.LogicalIDs() {
		edges := snapshot.EdgesForLogicalID(lid)
		if len(edges) == 0 {
			continue
		}
		fwd := edges[0]
		link := wireLink{
			Source:          fwd.Source,
			Target:          fwd.Target,
			ForwardCost:     fwd.Cost,
			SourceInterface: fwd.Metadata.SourceInterface,
			TargetInterface: fwd.Metadata.TargetInterface,
			Status:          fwd.Metadata.Status,
		}
		if fwd.Metadata.CapacityMbps != nil {
			link.SourceCapacity = &wireCapacity{TotalCapacityMbps: int(math.Round(*fwd.Metadata.CapacityMbps))}
		}
		if fwd.Metadata.TrafficMbps != nil {
			link.ObservedTrafficMbps = fwd.Metadata.TrafficMbps
		}
		if len(edges) > 1 {
			link.ReverseCost = edges[1].Cost
		}
		doc.Data.Links = append(doc.Data.Links, link)
	}

	return json.MarshalIndent(doc, "", "  ")
}
