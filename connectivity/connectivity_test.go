package connectivity_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zumanm1/ospf-netplan/connectivity"
	"github.com/zumanm1/ospf-netplan/topology"
)

func TestAnalyzeFullyConnectedSquare(t *testing.T) {
	snap, err := topology.Square()
	require.NoError(t, err)

	report := connectivity.Analyze(snap)
	require.True(t, report.IsFullyConnected)
	require.Len(t, report.Components, 1)
	require.Empty(t, report.IsolatedNodes)
	require.Equal(t, []string{"A", "B", "C", "D"}, report.LargestComponent)
}

func TestAnalyzeChainSplitByFailingMiddleNode(t *testing.T) {
	// X-Y-Z chain; spec.md scenario 3: failing Y isolates X and Z.
	snap, err := topology.Chain(3)
	require.NoError(t, err)

	derived, err := snap.WithEdits(topology.FailNode{RouterID: "R1"})
	require.NoError(t, err)

	report := connectivity.Analyze(derived)
	require.False(t, report.IsFullyConnected)
	require.Len(t, report.Components, 2)
	require.ElementsMatch(t, []string{"R0"}, report.Components[0])
	require.ElementsMatch(t, []string{"R2"}, report.Components[1])
	require.ElementsMatch(t, []string{"R0", "R2"}, report.IsolatedNodes)
}

func TestAnalyzeIsolatedRouterWithNoEdges(t *testing.T) {
	b := topology.NewBuilder()
	b.AddRouter(topology.Router{ID: "A"})
	b.AddRouter(topology.Router{ID: "B"})
	b.AddRouter(topology.Router{ID: "C"})
	b.AddEdge(topology.DirectedEdge{Source: "A", Target: "B", Cost: 1, LogicalID: "L1"})
	snap, err := b.Commit()
	require.NoError(t, err)

	report := connectivity.Analyze(snap)
	require.False(t, report.IsFullyConnected)
	require.Equal(t, []string{"C"}, report.IsolatedNodes)
	require.Equal(t, []string{"A", "B"}, report.LargestComponent)
}
