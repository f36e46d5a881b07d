package traffic_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zumanm1/ospf-netplan/topology"
	"github.com/zumanm1/ospf-netplan/traffic"
)

func TestSyntheticMatrixUniform(t *testing.T) {
	snap, err := topology.Chain(3)
	require.NoError(t, err)

	m, err := traffic.SyntheticMatrix(snap, traffic.ModelUniform, traffic.SyntheticOptions{BaseMbps: 50})
	require.NoError(t, err)
	require.Equal(t, 50.0, m[traffic.Pair{Src: "R0", Dst: "R2"}])
	require.Len(t, m, 6) // 3 routers, all ordered pairs
}

func TestSyntheticMatrixPopulation(t *testing.T) {
	snap, err := topology.Chain(2)
	require.NoError(t, err)

	opts := traffic.SyntheticOptions{BaseMbps: 10, Population: map[string]float64{"R0": 100, "R1": 400}}
	m, err := traffic.SyntheticMatrix(snap, traffic.ModelPopulation, opts)
	require.NoError(t, err)
	// sqrt(100*400)*10/10 = sqrt(40000) = 200
	require.InDelta(t, 200, m[traffic.Pair{Src: "R0", Dst: "R1"}], 0.001)
}

func TestSyntheticMatrixDistance(t *testing.T) {
	snap, err := topology.Chain(4)
	require.NoError(t, err)

	m, err := traffic.SyntheticMatrix(snap, traffic.ModelDistance, traffic.SyntheticOptions{BaseMbps: 100})
	require.NoError(t, err)
	require.InDelta(t, 100.0/3, m[traffic.Pair{Src: "R0", Dst: "R3"}], 0.001)
}

func TestSyntheticMatrixCustomRequiresFunc(t *testing.T) {
	snap, err := topology.Chain(2)
	require.NoError(t, err)

	_, err = traffic.SyntheticMatrix(snap, traffic.ModelCustom, traffic.SyntheticOptions{})
	require.Error(t, err)
}
