package impact_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zumanm1/ospf-netplan/impact"
	"github.com/zumanm1/ospf-netplan/topology"
)

func TestAnalyzeImpactMigrationScenario(t *testing.T) {
	// spec.md end-to-end scenario 2: add A->D cost 1 to the square; exactly
	// one record for (A,D), kind=migration, old_cost=2, new_cost=1,
	// was_ecmp=true, is_ecmp=false.
	base, err := topology.Square()
	require.NoError(t, err)

	candidate, err := base.WithEdits(topology.AddLink{Source: "A", Target: "D", ForwardCost: 1, ReverseCost: 0})
	require.NoError(t, err)

	report, err := impact.AnalyzeImpact(context.Background(), base, candidate, nil, nil)
	require.NoError(t, err)

	var found *impact.ImpactRecord
	for i := range report.Records {
		rec := report.Records[i]
		if rec.Source == "A" && rec.Destination == "D" {
			found = &report.Records[i]
		}
	}
	require.NotNil(t, found)
	require.Equal(t, impact.KindMigration, found.Kind)
	require.NotNil(t, found.OldCost)
	require.Equal(t, 2, *found.OldCost)
	require.NotNil(t, found.NewCost)
	require.Equal(t, 1, *found.NewCost)
	require.True(t, found.WasECMP)
	require.False(t, found.IsECMP)
}

func TestAnalyzeImpactNoChangeProducesNoRecords(t *testing.T) {
	base, err := topology.Square()
	require.NoError(t, err)

	report, err := impact.AnalyzeImpact(context.Background(), base, base, nil, nil)
	require.NoError(t, err)
	require.Empty(t, report.Records)
}

func TestAnalyzeImpactFilterRestrictsPairs(t *testing.T) {
	base, err := topology.Square()
	require.NoError(t, err)
	candidate, err := base.WithEdits(topology.SetCost{LogicalID: "L-AB", Direction: topology.DirectionForward, NewCost: 100})
	require.NoError(t, err)

	filter := func(src, dst string) bool { return src == "A" && dst == "D" }
	report, err := impact.AnalyzeImpact(context.Background(), base, candidate, filter, nil)
	require.NoError(t, err)
	for _, rec := range report.Records {
		require.Equal(t, "A", rec.Source)
		require.Equal(t, "D", rec.Destination)
	}
}

func TestAnalyzeImpactRecordsAreOrdered(t *testing.T) {
	base, err := topology.Chain(6)
	require.NoError(t, err)
	candidate, err := base.WithEdits(topology.SetCost{LogicalID: "L0-1", Direction: topology.DirectionForward, NewCost: 50})
	require.NoError(t, err)

	report, err := impact.AnalyzeImpact(context.Background(), base, candidate, nil, nil)
	require.NoError(t, err)
	for i := 1; i < len(report.Records); i++ {
		prev, cur := report.Records[i-1], report.Records[i]
		require.True(t, prev.Source < cur.Source || (prev.Source == cur.Source && prev.Destination <= cur.Destination))
	}
}
