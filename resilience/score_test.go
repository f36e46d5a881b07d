package resilience_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zumanm1/ospf-netplan/internal/netconfig"
	"github.com/zumanm1/ospf-netplan/resilience"
	"github.com/zumanm1/ospf-netplan/topology"
)

func TestComputeScoreRedundantMesh(t *testing.T) {
	// spec.md end-to-end scenario 4: complete graph on 4 routers with 4
	// distinct country tags, no SPOFs, redundancy=10, diversity>=7,
	// overall>=8.
	b := topology.NewBuilder()
	countries := []string{"US", "DE", "JP", "BR"}
	ids := []string{"R0", "R1", "R2", "R3"}
	for i, id := range ids {
		b.AddRouter(topology.Router{ID: id, Name: id, Country: countries[i]})
	}
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			logicalID := ids[i] + "-" + ids[j]
			b.AddEdge(topology.DirectedEdge{Source: ids[i], Target: ids[j], Cost: 1, LogicalID: logicalID})
			b.AddEdge(topology.DirectedEdge{Source: ids[j], Target: ids[i], Cost: 1, LogicalID: logicalID})
		}
	}
	snap, err := b.Commit()
	require.NoError(t, err)

	spofs, err := resilience.EnumerateSPOFs(context.Background(), snap, nil)
	require.NoError(t, err)
	require.Empty(t, spofs)

	score := resilience.ComputeScore(snap, spofs, netconfig.DefaultResilienceWeights())
	require.Equal(t, 10.0, score.Breakdown.Redundancy)
	require.GreaterOrEqual(t, score.Breakdown.Diversity, 7.0)
	require.GreaterOrEqual(t, score.Overall, 8.0)
	require.Empty(t, score.Improvements)
}

func TestComputeScoreChainHasCriticalPenalty(t *testing.T) {
	snap := chainXYZ(t)
	spofs, err := resilience.EnumerateSPOFs(context.Background(), snap, nil)
	require.NoError(t, err)

	score := resilience.ComputeScore(snap, spofs, netconfig.DefaultResilienceWeights())
	require.Less(t, score.Breakdown.Redundancy, 10.0)
	require.Contains(t, score.Improvements, "eliminate critical single points of failure before adding new demand")
}

func TestComputeScoreCapacityAbsentDefaultsToFive(t *testing.T) {
	snap, err := topology.Square()
	require.NoError(t, err)

	score := resilience.ComputeScore(snap, nil, netconfig.DefaultResilienceWeights())
	require.Equal(t, 5.0, score.Breakdown.Capacity)
}

func TestLevelThresholds(t *testing.T) {
	snap, err := topology.Square()
	require.NoError(t, err)
	weights := netconfig.ResilienceWeights{Redundancy: 0.7, Diversity: 0, Capacity: 0}

	score := resilience.ComputeScore(snap, nil, weights)
	require.Equal(t, "high", score.Level)
}
