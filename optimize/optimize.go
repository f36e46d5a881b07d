package optimize

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/zumanm1/ospf-netplan/connectivity"
	"github.com/zumanm1/ospf-netplan/internal/apperror"
	"github.com/zumanm1/ospf-netplan/internal/netmetrics"
	"github.com/zumanm1/ospf-netplan/internal/progress"
	"github.com/zumanm1/ospf-netplan/spf"
	"github.com/zumanm1/ospf-netplan/topology"
	"github.com/zumanm1/ospf-netplan/traffic"
)

const (
	maxIterations           = 100
	nonImprovingStopAfter   = 5
	maxConnectivityRejects  = 2
	defaultMaxCostChangePct = 0.5
)

// Optimize runs the bounded greedy local search spec.md §4.7 describes:
// each iteration finds the most congested non-protected edge, tries
// lowering the cost of nearby candidate links, accepts the best
// improvement found, and backs off an edit that regresses connectivity.
func Optimize(ctx context.Context, baseline *topology.Snapshot, matrix traffic.Matrix, goal Goal, constraints Constraints, metrics *netmetrics.Metrics, sink progress.Sink) (*Result, error) {
	sink = progress.OrNoop(sink)
	if metrics == nil {
		metrics = netmetrics.Nop()
	}

	before, err := traffic.Utilization(ctx, baseline, matrix, 0, nil)
	if err != nil {
		sink.Done(true)
		return nil, fmt.Errorf("optimize: baseline utilization: %w", err)
	}

	objective := objectiveFunc(goal, constraints)
	maxPct := constraints.MaxCostChangePercent
	if maxPct <= 0 {
		maxPct = defaultMaxCostChangePct
	}

	current := baseline
	currentReport := before
	currentObjective := objective(current, matrix, currentReport)

	var changes []CostChange
	noImprove := 0
	rejections := 0
	iterations := 0
	converged := false

loop:
	for iterations < maxIterations {
		if err := ctx.Err(); err != nil {
			sink.Done(true)
			return nil, apperror.Cancelled()
		}
		if constraints.MaxChangesCount > 0 && len(changes) >= constraints.MaxChangesCount {
			converged = true
			break
		}

		iterations++
		metrics.OptimizerIterations.Inc()

		edge, ok := mostCongestedEligible(currentReport, constraints.ProtectedEdges)
		if !ok {
			converged = true
			break
		}

		best, bestChange, bestReport, found, _ := bestCandidate(ctx, current, matrix, edge, constraints, maxPct, objective, currentObjective)
		if !found {
			noImprove++
			sink.Report(100*float64(iterations)/float64(maxIterations), fmt.Sprintf("iteration %d: no viable candidate", iterations))
			if noImprove >= nonImprovingStopAfter {
				converged = true
				break
			}
			continue
		}

		beforeConn := connectivity.Analyze(current)
		afterConn := connectivity.Analyze(best)
		if len(afterConn.Components) > len(beforeConn.Components) {
			rejections++
			sink.Report(100*float64(iterations)/float64(maxIterations), fmt.Sprintf("iteration %d: rejected edit, connectivity regressed", iterations))
			if rejections > maxConnectivityRejects {
				converged = true
				break loop
			}
			noImprove++
			if noImprove >= nonImprovingStopAfter {
				converged = true
				break
			}
			continue
		}

		current = best
		currentReport = bestReport
		currentObjective = objective(current, matrix, currentReport)
		changes = append(changes, bestChange)
		metrics.OptimizerMovesApplied.Inc()
		sink.Report(100*float64(iterations)/float64(maxIterations), fmt.Sprintf("iteration %d: accepted %s %s %d->%d", iterations, bestChange.LogicalID, bestChange.Direction, bestChange.OldCost, bestChange.NewCost))

		// Accepting an edit, even a tied (non-worsening) one, is
		// progress toward an eventual real improvement (e.g. several
		// small cost decrements before a candidate finally ties the
		// congested edge's alternative). The K=5 no-improvement stop
		// therefore only counts iterations where nothing was accepted at
		// all, not every iteration without a visible metric change.
		noImprove = 0
	}

	if iterations >= maxIterations {
		converged = false
	}

	sink.Done(false)
	return &Result{
		Iterations: iterations,
		Converged:  converged,
		Changes:    changes,
		Before:     before,
		After:      currentReport,
	}, nil
}

func objectiveFunc(goal Goal, constraints Constraints) func(snap *topology.Snapshot, matrix traffic.Matrix, report *traffic.Report) float64 {
	switch goal {
	case GoalLatency:
		return func(_ *topology.Snapshot, _ traffic.Matrix, report *traffic.Report) float64 {
			return report.AvgUtilization
		}
	case GoalDiversity:
		return func(snap *topology.Snapshot, matrix traffic.Matrix, _ *traffic.Report) float64 {
			return -countryPathDiversity(snap, matrix)
		}
	case GoalCustom:
		return func(_ *topology.Snapshot, _ traffic.Matrix, report *traffic.Report) float64 {
			if constraints.Objective == nil {
				return report.MaxUtilization
			}
			return constraints.Objective(report)
		}
	default: // GoalBalance
		return func(_ *topology.Snapshot, _ traffic.Matrix, report *traffic.Report) float64 {
			return report.MaxUtilization
		}
	}
}

// countryPathDiversity counts distinct logical links traversed across
// every matrix demand's canonical path, as a proxy for how spread out
// routing is across the topology's country tags — more distinct links
// used implies fewer flows concentrated on the same few international
// links. No exact formula is fixed for "country-pair path diversity", so
// this is one reasonable reading of it.
func countryPathDiversity(snap *topology.Snapshot, matrix traffic.Matrix) float64 {
	used := make(map[string]bool)
	bySrc := make(map[string]bool)
	for p := range matrix {
		bySrc[p.Src] = true
	}
	for src := range bySrc {
		table, err := spf.ShortestPaths(snap, src)
		if err != nil {
			continue
		}
		for p := range matrix {
			if p.Src != src {
				continue
			}
			res, ok := table.Reconstruct(p.Dst)
			if !ok {
				continue
			}
			for _, e := range res.CanonicalEdges {
				used[e.LogicalID] = true
			}
		}
	}
	return float64(len(used))
}

func mostCongestedEligible(report *traffic.Report, protected map[string]bool) (traffic.EdgeUtilization, bool) {
	var best traffic.EdgeUtilization
	found := false
	for _, e := range report.Edges {
		if protected[e.LogicalID] {
			continue
		}
		if !found || e.UtilizationRatio > best.UtilizationRatio {
			best = e
			found = true
		}
	}
	if !found || best.UtilizationRatio <= 0 {
		return traffic.EdgeUtilization{}, false
	}
	return best, true
}

// bestCandidate enumerates nearby logical links (within 2 hops of the
// congested edge's endpoints, per spec.md §4.7's "2-shortest-path
// alternative") and tries the smallest allowed cost decrement on each
// existing direction, returning the candidate with the lowest objective
// seen. A cost decrement never redirects traffic onto a worse path, so a
// single step that does not yet tie an alternate route still leaves the
// objective unchanged rather than worsening it; such "no worse" steps are
// accepted too (isImprovement reports false for them) so repeated small
// steps can accumulate toward an eventual tie instead of the search
// stalling on the first non-improving step.
func bestCandidate(ctx context.Context, snap *topology.Snapshot, matrix traffic.Matrix, congested traffic.EdgeUtilization, constraints Constraints, maxPct float64, objective func(*topology.Snapshot, traffic.Matrix, *traffic.Report) float64, currentObjective float64) (candidateSnap *topology.Snapshot, change CostChange, report *traffic.Report, found, isImprovement bool) {
	minCost := constraints.MinCost
	if minCost <= 0 {
		minCost = topology.MinCost
	}

	candidates := nearbyLogicalIDs(snap, congested.Source, congested.Target, congested.LogicalID, constraints.ProtectedEdges)

	bestObjective := math.Inf(1)

	for _, lid := range candidates {
		if err := ctx.Err(); err != nil {
			break
		}
		for _, e := range snap.EdgesForLogicalID(lid) {
			decrement := int(math.Max(1, math.Round(0.05*float64(e.Cost))))
			newCost := e.Cost - decrement
			if constraints.MaxCost > 0 && newCost > constraints.MaxCost {
				newCost = constraints.MaxCost
			}
			if newCost < minCost {
				continue
			}
			changePct := math.Abs(float64(newCost-e.Cost)) / float64(e.Cost)
			if changePct > maxPct {
				continue
			}

			direction := topology.DirectionForward
			if e.Source > e.Target {
				direction = topology.DirectionReverse
			}

			trialSnap, err := snap.WithEdits(topology.SetCost{LogicalID: lid, Direction: direction, NewCost: newCost})
			if err != nil {
				continue
			}
			trialReport, err := traffic.Utilization(ctx, trialSnap, matrix, 0, nil)
			if err != nil {
				continue
			}
			obj := objective(trialSnap, matrix, trialReport)
			if obj < bestObjective {
				bestObjective = obj
				candidateSnap = trialSnap
				report = trialReport
				change = CostChange{LogicalID: lid, Direction: string(direction), OldCost: e.Cost, NewCost: newCost}
				found = true
			}
		}
	}

	if found && bestObjective > currentObjective {
		return nil, CostChange{}, nil, false, false
	}
	isImprovement = found && bestObjective < currentObjective
	return candidateSnap, change, report, found, isImprovement
}

// nearbyLogicalIDs returns logical_ids (excluding excludeLogicalID and any
// protected id) within 2 undirected hops of src or dst.
func nearbyLogicalIDs(snap *topology.Snapshot, src, dst, excludeLogicalID string, protected map[string]bool) []string {
	adjacency := make(map[string][]string)
	for _, e := range snap.AllEdges() {
		adjacency[e.Source] = append(adjacency[e.Source], e.Target)
		adjacency[e.Target] = append(adjacency[e.Target], e.Source)
	}

	within2Hops := func(start string) map[string]bool {
		visited := map[string]bool{start: true}
		frontier := []string{start}
		for hop := 0; hop < 2; hop++ {
			var next []string
			for _, n := range frontier {
				for _, nb := range adjacency[n] {
					if !visited[nb] {
						visited[nb] = true
						next = append(next, nb)
					}
				}
			}
			frontier = next
		}
		return visited
	}

	reach := within2Hops(src)
	for n := range within2Hops(dst) {
		reach[n] = true
	}

	seen := make(map[string]bool)
	var out []string
	for _, e := range snap.AllEdges() {
		if e.LogicalID == excludeLogicalID || protected[e.LogicalID] || seen[e.LogicalID] {
			continue
		}
		if reach[e.Source] || reach[e.Target] {
			seen[e.LogicalID] = true
			out = append(out, e.LogicalID)
		}
	}
	sort.Strings(out)
	return out
}
