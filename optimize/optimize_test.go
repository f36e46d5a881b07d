package optimize_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zumanm1/ospf-netplan/optimize"
	"github.com/zumanm1/ospf-netplan/topology"
	"github.com/zumanm1/ospf-netplan/traffic"
)

func diamond(t *testing.T) *topology.Snapshot {
	t.Helper()
	b := topology.NewBuilder()
	for _, id := range []string{"A", "B", "C", "D"} {
		b.AddRouter(topology.Router{ID: id})
	}
	cap1000 := 1000.0
	// Costs match spec.md end-to-end scenario 5 exactly: A->B=1, A->C=10,
	// B->D=1, C->D=1.
	b.AddEdge(topology.DirectedEdge{Source: "A", Target: "B", Cost: 1, LogicalID: "L-AB", Metadata: topology.EdgeMetadata{CapacityMbps: &cap1000}})
	b.AddEdge(topology.DirectedEdge{Source: "A", Target: "C", Cost: 10, LogicalID: "L-AC", Metadata: topology.EdgeMetadata{CapacityMbps: &cap1000}})
	b.AddEdge(topology.DirectedEdge{Source: "B", Target: "D", Cost: 1, LogicalID: "L-BD", Metadata: topology.EdgeMetadata{CapacityMbps: &cap1000}})
	b.AddEdge(topology.DirectedEdge{Source: "C", Target: "D", Cost: 1, LogicalID: "L-CD", Metadata: topology.EdgeMetadata{CapacityMbps: &cap1000}})
	snap, err := b.Commit()
	require.NoError(t, err)
	return snap
}

func TestOptimizeRelievesBottleneckDiamond(t *testing.T) {
	// Diamond bottleneck: a single A->D demand saturates the unique
	// shortest path A-B-D while A-C-D sits idle. Demand is kept below the
	// per-edge capacity (a full 1000-over-1000-cap demand clamps every
	// candidate's utilization to 1.0 and would make no move ever look
	// like an improvement to a clamped objective) so the test can observe
	// the optimizer actually relieving the bottleneck: it must lower
	// A->C's cost until it ties A-B-D, splitting demand across both
	// paths via ECMP and roughly halving max utilization.
	snap := diamond(t)

	matrix := traffic.Matrix{}
	matrix.Set("A", "D", 900)

	constraints := optimize.Constraints{MaxCostChangePercent: 0.9}
	result, err := optimize.Optimize(context.Background(), snap, matrix, optimize.GoalBalance, constraints, nil, nil)
	require.NoError(t, err)

	require.Equal(t, 0.9, result.Before.MaxUtilization)
	require.Less(t, result.After.MaxUtilization, result.Before.MaxUtilization)
	require.NotEmpty(t, result.Changes)

	var loweredAC bool
	for _, c := range result.Changes {
		if c.LogicalID == "L-AC" {
			loweredAC = true
		}
	}
	require.True(t, loweredAC)
}

func TestOptimizeRespectsProtectedEdges(t *testing.T) {
	snap := diamond(t)
	matrix := traffic.Matrix{}
	matrix.Set("A", "D", 5000)

	constraints := optimize.Constraints{
		MaxCostChangePercent: 0.9,
		ProtectedEdges:       map[string]bool{"L-AB": true, "L-AC": true, "L-BD": true, "L-CD": true},
	}
	result, err := optimize.Optimize(context.Background(), snap, matrix, optimize.GoalBalance, constraints, nil, nil)
	require.NoError(t, err)
	require.Empty(t, result.Changes)
	require.True(t, result.Converged)
}

func TestOptimizeRespectsMaxChangesCount(t *testing.T) {
	snap := diamond(t)
	matrix := traffic.Matrix{}
	matrix.Set("A", "D", 5000)

	constraints := optimize.Constraints{MaxCostChangePercent: 0.9, MaxChangesCount: 1}
	result, err := optimize.Optimize(context.Background(), snap, matrix, optimize.GoalBalance, constraints, nil, nil)
	require.NoError(t, err)
	require.LessOrEqual(t, len(result.Changes), 1)
}

func TestOptimizeNoCongestionConvergesImmediately(t *testing.T) {
	snap, err := topology.Square()
	require.NoError(t, err)

	result, err := optimize.Optimize(context.Background(), snap, traffic.Matrix{}, optimize.GoalBalance, optimize.Constraints{}, nil, nil)
	require.NoError(t, err)
	require.True(t, result.Converged)
	require.Empty(t, result.Changes)
}
