package spf_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zumanm1/ospf-netplan/spf"
	"github.com/zumanm1/ospf-netplan/topology"
)

func TestReconstructLayeredNodesSquare(t *testing.T) {
	snap, err := topology.Square()
	require.NoError(t, err)

	table, err := spf.ShortestPaths(snap, "A")
	require.NoError(t, err)

	result, ok := table.Reconstruct("D")
	require.True(t, ok)
	require.Equal(t, [][]string{{"A"}, {"B", "C"}, {"D"}}, result.LayeredNodes)
}

func TestReconstructSelfPath(t *testing.T) {
	snap, err := topology.Square()
	require.NoError(t, err)

	table, err := spf.ShortestPaths(snap, "A")
	require.NoError(t, err)

	result, ok := table.Reconstruct("A")
	require.True(t, ok)
	require.Equal(t, 0, result.Cost)
	require.Equal(t, []string{"A"}, result.CanonicalPath)
	require.False(t, result.IsECMP)
}
