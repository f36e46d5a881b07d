package topology_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zumanm1/ospf-netplan/internal/apperror"
	"github.com/zumanm1/ospf-netplan/topology"
)

func TestCommitRejectsUnknownEndpoints(t *testing.T) {
	b := topology.NewBuilder()
	b.AddRouter(topology.Router{ID: "A"})
	b.AddEdge(topology.DirectedEdge{Source: "A", Target: "B", Cost: 1, LogicalID: "L1"})

	_, err := b.Commit()
	require.Error(t, err)
	var appErr *apperror.Error
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, apperror.KindInvalidTopology, appErr.Kind)
}

func TestCommitRejectsOutOfRangeCost(t *testing.T) {
	b := topology.NewBuilder()
	b.AddRouter(topology.Router{ID: "A"})
	b.AddRouter(topology.Router{ID: "B"})
	b.AddEdge(topology.DirectedEdge{Source: "A", Target: "B", Cost: 0, LogicalID: "L1"})

	_, err := b.Commit()
	var appErr *apperror.Error
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, apperror.KindInvalidCost, appErr.Kind)
}

func TestCommitRejectsDuplicateTriple(t *testing.T) {
	b := topology.NewBuilder()
	b.AddRouter(topology.Router{ID: "A"})
	b.AddRouter(topology.Router{ID: "B"})
	b.AddEdge(topology.DirectedEdge{Source: "A", Target: "B", Cost: 1, LogicalID: "L1"})
	b.AddEdge(topology.DirectedEdge{Source: "A", Target: "B", Cost: 2, LogicalID: "L1"})

	_, err := b.Commit()
	require.Error(t, err)
}

func TestCommitAllowsParallelLogicalLinks(t *testing.T) {
	b := topology.NewBuilder()
	b.AddRouter(topology.Router{ID: "A"})
	b.AddRouter(topology.Router{ID: "B"})
	b.AddEdge(topology.DirectedEdge{Source: "A", Target: "B", Cost: 1, LogicalID: "L1"})
	b.AddEdge(topology.DirectedEdge{Source: "A", Target: "B", Cost: 5, LogicalID: "L2"})

	snap, err := b.Commit()
	require.NoError(t, err)
	require.Len(t, snap.OutEdges("A"), 2)
}

func TestCommitRejectsLogicalIDSpanningMultiplePairs(t *testing.T) {
	b := topology.NewBuilder()
	for _, id := range []string{"A", "B", "C"} {
		b.AddRouter(topology.Router{ID: id})
	}
	b.AddEdge(topology.DirectedEdge{Source: "A", Target: "B", Cost: 1, LogicalID: "L1"})
	b.AddEdge(topology.DirectedEdge{Source: "A", Target: "C", Cost: 1, LogicalID: "L1"})

	_, err := b.Commit()
	require.Error(t, err)
	var appErr *apperror.Error
	require.ErrorAs(t, err, &appErr)
	require.Contains(t, appErr.Code, "logical_id_reused")
}

func TestSnapshotQueries(t *testing.T) {
	snap, err := topology.Square()
	require.NoError(t, err)

	require.Equal(t, 4, snap.RouterCount())
	require.Len(t, snap.Routers(), 4)

	edges := snap.OutEdges("A")
	require.Len(t, edges, 2)

	found, ok := snap.FindEdge("A", "B", "L-AB")
	require.True(t, ok)
	require.Equal(t, 1, found.Cost)

	_, ok = snap.FindEdge("A", "D", "nope")
	require.False(t, ok)
}
