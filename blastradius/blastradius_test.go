package blastradius_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zumanm1/ospf-netplan/blastradius"
	"github.com/zumanm1/ospf-netplan/impact"
	"github.com/zumanm1/ospf-netplan/topology"
)

func squareWithCountries(t *testing.T) *topology.Snapshot {
	t.Helper()
	b := topology.NewBuilder()
	b.AddRouter(topology.Router{ID: "A", Country: "US"})
	b.AddRouter(topology.Router{ID: "B", Country: "US"})
	b.AddRouter(topology.Router{ID: "C", Country: "DE"})
	b.AddRouter(topology.Router{ID: "D", Country: "FR"})
	b.AddEdge(topology.DirectedEdge{Source: "A", Target: "B", Cost: 1, LogicalID: "L-AB"})
	b.AddEdge(topology.DirectedEdge{Source: "B", Target: "A", Cost: 1, LogicalID: "L-AB"})
	b.AddEdge(topology.DirectedEdge{Source: "A", Target: "C", Cost: 1, LogicalID: "L-AC"})
	b.AddEdge(topology.DirectedEdge{Source: "C", Target: "A", Cost: 1, LogicalID: "L-AC"})
	b.AddEdge(topology.DirectedEdge{Source: "B", Target: "D", Cost: 1, LogicalID: "L-BD"})
	b.AddEdge(topology.DirectedEdge{Source: "D", Target: "B", Cost: 1, LogicalID: "L-BD"})
	b.AddEdge(topology.DirectedEdge{Source: "C", Target: "D", Cost: 1, LogicalID: "L-CD"})
	b.AddEdge(topology.DirectedEdge{Source: "D", Target: "C", Cost: 1, LogicalID: "L-CD"})
	snap, err := b.Commit()
	require.NoError(t, err)
	return snap
}

func TestAnalyzeAsymmetricLinkRaiseScenario(t *testing.T) {
	// spec.md end-to-end scenario 6: taking scenario 1 (the equal-cost
	// square) and raising A->B cost to 100 should produce impact records
	// for every (A,*) pair whose prior optimal included edge A->B, a
	// medium risk_score, and country_diversity reflecting affected
	// destinations' tags.
	baseline := squareWithCountries(t)
	candidate, err := baseline.WithEdits(topology.SetCost{LogicalID: "L-AB", Direction: topology.DirectionForward, NewCost: 100})
	require.NoError(t, err)

	report, err := impact.AnalyzeImpact(context.Background(), baseline, candidate, nil, nil)
	require.NoError(t, err)
	require.NotEmpty(t, report.Records)

	result := blastradius.Analyze(report, baseline, candidate)

	require.GreaterOrEqual(t, result.RiskScore, 0.0)
	require.LessOrEqual(t, result.RiskScore, 100.0)
	require.Equal(t, blastradius.LevelMedium, result.Level)

	var sawDirectAB bool
	for _, f := range result.Flows {
		if f.Source == "A" && f.Zone == blastradius.ZoneDirect {
			sawDirectAB = true
		}
	}
	require.True(t, sawDirectAB)

	require.NotEmpty(t, result.Rollbacks)
	var rollback *blastradius.EdgeRollback
	for i := range result.Rollbacks {
		if result.Rollbacks[i].LogicalID == "L-AB" {
			rollback = &result.Rollbacks[i]
		}
	}
	require.NotNil(t, rollback)
	require.NotNil(t, rollback.PriorCost)
	require.Equal(t, 1, *rollback.PriorCost)
	require.False(t, rollback.WasRemoved)

	require.NotEmpty(t, result.CountryPairs)
}

func TestAnalyzeNoChangeProducesZeroRisk(t *testing.T) {
	baseline := squareWithCountries(t)

	report, err := impact.AnalyzeImpact(context.Background(), baseline, baseline, nil, nil)
	require.NoError(t, err)
	require.Empty(t, report.Records)

	result := blastradius.Analyze(report, baseline, baseline)
	require.Equal(t, 0.0, result.RiskScore)
	require.Equal(t, blastradius.LevelLow, result.Level)
	require.Empty(t, result.Flows)
	require.Empty(t, result.Rollbacks)
}

func TestAnalyzeEdgeRemovalProducesRemoveRollback(t *testing.T) {
	baseline, err := topology.Square()
	require.NoError(t, err)
	candidate, err := baseline.WithEdits(topology.RemoveLink{LogicalID: "L-AB"})
	require.NoError(t, err)

	report, err := impact.AnalyzeImpact(context.Background(), baseline, candidate, nil, nil)
	require.NoError(t, err)

	result := blastradius.Analyze(report, baseline, candidate)
	var found bool
	for _, rb := range result.Rollbacks {
		if rb.LogicalID == "L-AB" {
			found = true
			require.True(t, rb.WasRemoved)
			require.NotNil(t, rb.PriorCost)
		}
	}
	require.True(t, found)
}
