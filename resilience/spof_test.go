package resilience_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zumanm1/ospf-netplan/resilience"
	"github.com/zumanm1/ospf-netplan/topology"
)

func chainXYZ(t *testing.T) *topology.Snapshot {
	t.Helper()
	b := topology.NewBuilder()
	for _, id := range []string{"X", "Y", "Z"} {
		b.AddRouter(topology.Router{ID: id, Name: id})
	}
	b.AddEdge(topology.DirectedEdge{Source: "X", Target: "Y", Cost: 1, LogicalID: "L-XY"})
	b.AddEdge(topology.DirectedEdge{Source: "Y", Target: "X", Cost: 1, LogicalID: "L-XY"})
	b.AddEdge(topology.DirectedEdge{Source: "Y", Target: "Z", Cost: 1, LogicalID: "L-YZ"})
	b.AddEdge(topology.DirectedEdge{Source: "Z", Target: "Y", Cost: 1, LogicalID: "L-YZ"})
	snap, err := b.Commit()
	require.NoError(t, err)
	return snap
}

func TestEnumerateSPOFsChainScenario(t *testing.T) {
	// spec.md end-to-end scenario 3: X-Y-Z chain, Y is a critical node
	// SPOF partitioning into {X},{Z}; each link is a high-severity edge
	// SPOF partitioning into components of size 1 and 2.
	snap := chainXYZ(t)

	spofs, err := resilience.EnumerateSPOFs(context.Background(), snap, nil)
	require.NoError(t, err)
	require.Len(t, spofs, 3)

	var nodeY, linkXY, linkYZ *resilience.SPOF
	for i := range spofs {
		s := &spofs[i]
		switch {
		case s.IsNode && s.Element == "Y":
			nodeY = s
		case !s.IsNode && s.Element == "L-XY":
			linkXY = s
		case !s.IsNode && s.Element == "L-YZ":
			linkYZ = s
		}
	}
	require.NotNil(t, nodeY)
	require.NotNil(t, linkXY)
	require.NotNil(t, linkYZ)

	require.Equal(t, resilience.SeverityCritical, nodeY.Severity)
	require.True(t, nodeY.CausesPartition)

	require.Equal(t, resilience.SeverityHigh, linkXY.Severity)
	require.Equal(t, resilience.SeverityHigh, linkYZ.Severity)

	// most severe first
	require.Equal(t, "Y", spofs[0].Element)
	require.True(t, spofs[0].IsNode)
}

func TestTopKTruncates(t *testing.T) {
	snap := chainXYZ(t)
	spofs, err := resilience.EnumerateSPOFs(context.Background(), snap, nil)
	require.NoError(t, err)
	require.Len(t, spofs, 3)

	top := resilience.TopK(spofs, 2)
	require.Len(t, top, 2)

	all := resilience.TopK(spofs, 0)
	require.Len(t, all, 3)
}

func TestEnumerateSPOFsFullyMeshedHasNone(t *testing.T) {
	snap, err := topology.Complete(4)
	require.NoError(t, err)

	spofs, err := resilience.EnumerateSPOFs(context.Background(), snap, nil)
	require.NoError(t, err)
	require.Empty(t, spofs)
}
