package ioformat_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zumanm1/ospf-netplan/ioformat"
	"github.com/zumanm1/ospf-netplan/topology"
)

const squareJSON = `{
  "version": "1.0",
  "type": "ospf-topology",
  "data": {
    "nodes": [
      { "id": "A", "name": "Router A", "country": "US" },
      { "id": "B", "name": "Router B", "country": "US" },
      { "id": "C", "name": "Router C", "country": "DE" },
      { "id": "D", "name": "Router D", "country": "FR" }
    ],
    "links": [
      { "source": "A", "target": "B", "forward_cost": 1, "reverse_cost": 1,
        "source_capacity": { "total_capacity_mbps": 1000 } },
      { "source": "A", "target": "C", "forward_cost": 1, "reverse_cost": 1 },
      { "source": "B", "target": "D", "forward_cost": 1, "reverse_cost": 1 },
      { "source": "C", "target": "D", "forward_cost": 1, "reverse_cost": 1 }
    ]
  }
}`

func TestImportTopologyBuildsSquare(t *testing.T) {
	snap, err := ioformat.ImportTopology([]byte(squareJSON))
	require.NoError(t, err)
	require.Equal(t, 4, snap.RouterCount())
	require.Len(t, snap.AllEdges(), 8)

	a, ok := snap.Router("A")
	require.True(t, ok)
	require.Equal(t, "US", a.Country)
}

func TestImportTopologyMissingReverseCostOmitsReverseDirection(t *testing.T) {
	raw := `{"data":{"nodes":[{"id":"A","name":"A"},{"id":"B","name":"B"}],
	  "links":[{"source":"A","target":"B","forward_cost":5}]}}`
	snap, err := ioformat.ImportTopology([]byte(raw))
	require.NoError(t, err)
	require.Len(t, snap.AllEdges(), 1)
	_, ok := snap.FindEdge("B", "A", snap.LogicalIDs()[0])
	require.False(t, ok)
}

func TestImportTopologyRejectsUnknownType(t *testing.T) {
	raw := `{"type":"not-a-topology","data":{"nodes":[],"links":[]}}`
	_, err := ioformat.ImportTopology([]byte(raw))
	require.Error(t, err)
}

func TestImportTopologyRejectsInvalidCost(t *testing.T) {
	raw := `{"data":{"nodes":[{"id":"A","name":"A"},{"id":"B","name":"B"}],
	  "links":[{"source":"A","target":"B","forward_cost":0}]}}`
	_, err := ioformat.ImportTopology([]byte(raw))
	require.Error(t, err)
}

func TestExportTopologyRoundTripsCostsAndCapacity(t *testing.T) {
	snap, err := ioformat.ImportTopology([]byte(squareJSON))
	require.NoError(t, err)

	out, err := ioformat.ExportTopology(snap)
	require.NoError(t, err)

	reimported, err := ioformat.ImportTopology(out)
	require.NoError(t, err)
	require.Equal(t, snap.RouterCount(), reimported.RouterCount())
	require.Len(t, reimported.AllEdges(), len(snap.AllEdges()))

	c, ok := reimported.Router("C")
	require.True(t, ok)
	require.Equal(t, "DE", c.Country)

	var sawCapacity bool
	for _, e := range reimported.AllEdges() {
		if e.Metadata.CapacityMbps != nil {
			require.Equal(t, 1000.0, *e.Metadata.CapacityMbps)
			sawCapacity = true
		}
	}
	require.True(t, sawCapacity)
}

func TestExportTopologyAppliedEditsSurviveRoundTrip(t *testing.T) {
	snap, err := ioformat.ImportTopology([]byte(squareJSON))
	require.NoError(t, err)

	edited, err := snap.WithEdits(topology.SetCost{LogicalID: snap.LogicalIDs()[0], Direction: topology.DirectionForward, NewCost: 42})
	require.NoError(t, err)

	out, err := ioformat.ExportTopology(edited)
	require.NoError(t, err)

	reimported, err := ioformat.ImportTopology(out)
	require.NoError(t, err)

	var sawCost42 bool
	for _, e := range reimported.AllEdges() {
		if e.Cost == 42 {
			sawCost42 = true
		}
	}
	require.True(t, sawCost42)
}

const squareYAML = `
data:
  nodes:
    - id: A
      name: A
    - id: B
      name: B
  links:
    - source: A
      target: B
      forward_cost: 3
      reverse_cost: 3
`

func TestLoadYAML(t *testing.T) {
	snap, err := ioformat.LoadYAML([]byte(squareYAML))
	require.NoError(t, err)
	require.Equal(t, 2, snap.RouterCount())
	require.Len(t, snap.AllEdges(), 2)
}
