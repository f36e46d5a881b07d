package resilience

import (
	"context"
	"fmt"
	"runtime"
	"sort"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/zumanm1/ospf-netplan/connectivity"
	"github.com/zumanm1/ospf-netplan/internal/apperror"
	"github.com/zumanm1/ospf-netplan/internal/progress"
	"github.com/zumanm1/ospf-netplan/topology"
)

// DefaultTopK is the default number of SPOFs a caller presents
// (spec.md §4.5: "Top-K (default K=20) returned").
const DefaultTopK = 20

// TopK truncates spofs (already ordered by EnumerateSPOFs) to at most k
// entries; k <= 0 means DefaultTopK. The resilience score is always
// computed from the full, untruncated list — truncation is a presentation
// concern only.
func TopK(spofs []SPOF, k int) []SPOF {
	if k <= 0 {
		k = DefaultTopK
	}
	if len(spofs) > k {
		return spofs[:k]
	}
	return spofs
}

// EnumerateSPOFs fails each logical link and each router in turn, re-runs
// connectivity.Analyze, and reports every element whose failure partitions
// the graph or isolates a node. Per-element failure simulations run
// concurrently (spec.md §5 mandates parallel execution for C5). Results
// are ordered by severity descending, then paths_affected descending.
func EnumerateSPOFs(ctx context.Context, snapshot *topology.Snapshot, sink progress.Sink) ([]SPOF, error) {
	sink = progress.OrNoop(sink)

	baseline := connectivity.Analyze(snapshot)
	totalPairs := snapshot.RouterCount() * (snapshot.RouterCount() - 1)

	logicalIDs := snapshot.LogicalIDs()
	routers := snapshot.Routers()
	total := len(logicalIDs) + len(routers)

	results := make([]*SPOF, total)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxFanOut(total))

	var completed int64
	for i, lid := range logicalIDs {
		i, lid := i, lid
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return apperror.Cancelled()
			}
			derived, err := snapshot.WithEdits(topology.FailLink{LogicalID: lid})
			if err != nil {
				return fmt.Errorf("resilience: fail link %s: %w", lid, err)
			}
			report := connectivity.Analyze(derived)
			spof := evaluateFailure(lid, false, baseline, report, totalPairs)
			results[i] = spof
			done := atomic.AddInt64(&completed, 1)
			sink.Report(100*float64(done)/float64(total), fmt.Sprintf("evaluated link %s", lid))
			return nil
		})
	}
	offset := len(logicalIDs)
	for i, r := range routers {
		i, r := i, r
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return apperror.Cancelled()
			}
			derived, err := snapshot.WithEdits(topology.FailNode{RouterID: r.ID})
			if err != nil {
				return fmt.Errorf("resilience: fail node %s: %w", r.ID, err)
			}
			report := connectivity.Analyze(derived)
			spof := evaluateFailure(r.ID, true, baseline, report, totalPairs)
			results[offset+i] = spof
			done := atomic.AddInt64(&completed, 1)
			sink.Report(100*float64(done)/float64(total), fmt.Sprintf("evaluated router %s", r.ID))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		sink.Done(true)
		return nil, err
	}

	var spofs []SPOF
	for _, s := range results {
		if s != nil {
			spofs = append(spofs, *s)
		}
	}
	sort.SliceStable(spofs, func(i, j int) bool {
		if spofs[i].Severity.rank() != spofs[j].Severity.rank() {
			return spofs[i].Severity.rank() > spofs[j].Severity.rank()
		}
		return spofs[i].PathsAffected > spofs[j].PathsAffected
	})

	sink.Done(false)
	return spofs, nil
}

// evaluateFailure returns nil when failing element causes no partition and
// isolates no node that wasn't already isolated before the failure (a
// router isolated in baseline isn't a consequence of this element).
func evaluateFailure(element string, isNode bool, baseline, failed *connectivity.ConnectivityReport, totalPairs int) *SPOF {
	baselineIsolated := make(map[string]bool, len(baseline.IsolatedNodes))
	for _, id := range baseline.IsolatedNodes {
		baselineIsolated[id] = true
	}

	componentsAfter := len(failed.Components)
	partitions := componentsAfter > len(baseline.Components)

	var isolated []string
	for _, id := range failed.IsolatedNodes {
		if !baselineIsolated[id] {
			isolated = append(isolated, id)
		}
	}

	if !partitions && len(isolated) == 0 {
		return nil
	}

	affected := crossComponentPairs(failed.Components)
	severity := classifySeverity(isNode, componentsAfter, len(isolated), affected, totalPairs)

	return &SPOF{
		Element:           element,
		IsNode:            isNode,
		Severity:          severity,
		PathsAffected:     affected,
		NodesIsolated:     isolated,
		CausesPartition:   partitions,
		RecommendationTag: recommendationTag(isNode, severity),
	}
}

func crossComponentPairs(components [][]string) int {
	sizes := make([]int, len(components))
	for i, c := range components {
		sizes[i] = len(c)
	}
	affected := 0
	for i := 0; i < len(sizes); i++ {
		for j := i + 1; j < len(sizes); j++ {
			affected += sizes[i] * sizes[j] * 2
		}
	}
	return affected
}

// classifySeverity ranks a failure's severity. Structural shape takes
// precedence over the raw percentage of pairs affected: a node that
// partitions the graph is always critical, since removing a router breaks
// every flow that used to route through it, not just the flows crossing
// into the surviving halves; a link that produces the same two-way split
// leaves the node (and its own traffic) intact, so it ranks one notch
// lower. Isolated-node classification requires no partition.
func classifySeverity(isNode bool, components, isolatedCount, affected, totalPairs int) Severity {
	percent := 0.0
	if totalPairs > 0 {
		percent = 100 * float64(affected) / float64(totalPairs)
	}
	switch {
	case components > 2:
		return SeverityCritical
	case isNode && components == 2:
		return SeverityCritical
	case components == 2:
		return SeverityHigh
	case isolatedCount >= 1 || percent >= 25:
		return SeverityMedium
	default:
		return SeverityLow
	}
}

func recommendationTag(isNode bool, severity Severity) string {
	if isNode {
		return fmt.Sprintf("add_redundant_path_around_node_%s", severity)
	}
	return fmt.Sprintf("add_parallel_logical_link_%s", severity)
}

func maxFanOut(n int) int {
	w := runtime.GOMAXPROCS(0)
	if w > n {
		w = n
	}
	if w < 1 {
		w = 1
	}
	return w
}
