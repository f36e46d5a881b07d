package traffic

import (
	"context"
	"fmt"
	"runtime"
	"sort"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/zumanm1/ospf-netplan/internal/apperror"
	"github.com/zumanm1/ospf-netplan/internal/netconfig"
	"github.com/zumanm1/ospf-netplan/internal/progress"
	"github.com/zumanm1/ospf-netplan/spf"
	"github.com/zumanm1/ospf-netplan/topology"
)

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

// Utilization computes per-edge traffic and utilization for every demand
// in matrix (spec.md §4.6). Demand is split equally across ECMP out-edges
// at each branching node of the shortest-path DAG, recursively. Edges
// without capacity metadata use defaultCapacityMbps; those that carry
// traffic also contribute a capacity_missing warning. Demands are grouped by source router so each
// source's spf.ShortestPaths runs once regardless of how many
// destinations it serves; sources run concurrently per spec.md §5.
func Utilization(ctx context.Context, snapshot *topology.Snapshot, matrix Matrix, defaultCapacityMbps float64, sink progress.Sink) (*Report, error) {
	sink = progress.OrNoop(sink)
	if defaultCapacityMbps <= 0 {
		defaultCapacityMbps = DefaultCapacityMbps
	}

	bySrc := make(map[string][]Pair)
	for p := range matrix {
		bySrc[p.Src] = append(bySrc[p.Src], p)
	}
	srcs := make([]string, 0, len(bySrc))
	for s := range bySrc {
		srcs = append(srcs, s)
	}
	sort.Strings(srcs)

	perSrcTraffic := make([]map[string]float64, len(srcs))
	var warningsMu sync.Mutex
	var warnings []string
	seenMissing := make(map[string]bool)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxFanOut(len(srcs)))

	var completed int64
	total := int64(len(srcs))

	for idx, src := range srcs {
		idx, src := idx, src
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return apperror.Cancelled()
			}
			if !snapshot.HasRouter(src) {
				return fmt.Errorf("traffic: unknown source router %q", src)
			}
			table, err := spf.ShortestPaths(snapshot, src)
			if err != nil {
				return fmt.Errorf("traffic: spf from %s: %w", src, err)
			}

			edgeTraffic := make(map[string]float64)
			for _, p := range bySrc[src] {
				demand := matrix[p]
				if demand <= 0 {
					continue
				}
				res, ok := table.Reconstruct(p.Dst)
				if !ok {
					continue
				}
				splitDemand(res, demand, edgeTraffic)
			}
			perSrcTraffic[idx] = edgeTraffic

			done := atomic.AddInt64(&completed, 1)
			sink.Report(100*float64(done)/float64(total), fmt.Sprintf("routed demand from %s (%d/%d)", src, done, total))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		sink.Done(true)
		return nil, err
	}

	totalTraffic := make(map[string]float64)
	for _, m := range perSrcTraffic {
		for id, t := range m {
			totalTraffic[id] += t
		}
	}

	var edges []EdgeUtilization
	var sumUtil float64
	var congested, underutilized []string

	for _, e := range snapshot.AllEdges() {
		traffic := totalTraffic[e.ID]
		capacity := defaultCapacityMbps
		missing := true
		if e.Metadata.CapacityMbps != nil && *e.Metadata.CapacityMbps > 0 {
			capacity = *e.Metadata.CapacityMbps
			missing = false
		}
		ratio := traffic / capacity
		if ratio > 1 {
			ratio = 1
		}
		if ratio < 0 {
			ratio = 0
		}

		if missing && traffic > 0 && !seenMissing[e.ID] {
			seenMissing[e.ID] = true
			warningsMu.Lock()
			warnings = append(warnings, apperror.CapacityMissingWarning(e.ID).Message)
			warningsMu.Unlock()
		}

		edges = append(edges, EdgeUtilization{
			EdgeID:           e.ID,
			Source:           e.Source,
			Target:           e.Target,
			LogicalID:        e.LogicalID,
			TrafficMbps:      traffic,
			CapacityMbps:     capacity,
			UtilizationRatio: ratio,
			CapacityMissing:  missing,
		})
		sumUtil += ratio
		if ratio >= CongestedThreshold {
			congested = append(congested, e.ID)
		}
		if ratio <= UnderutilizedThreshold {
			underutilized = append(underutilized, e.ID)
		}
	}

	sort.Slice(edges, func(i, j int) bool { return edges[i].EdgeID < edges[j].EdgeID })
	sort.Strings(congested)
	sort.Strings(underutilized)

	avg := 0.0
	max := 0.0
	if len(edges) > 0 {
		avg = sumUtil / float64(len(edges))
	}
	for _, e := range edges {
		if e.UtilizationRatio > max {
			max = e.UtilizationRatio
		}
	}

	sink.Done(false)
	return &Report{
		Edges:              edges,
		MaxUtilization:     max,
		AvgUtilization:     avg,
		CongestedEdges:     congested,
		UnderutilizedEdges: underutilized,
		Warnings:           warnings,
	}, nil
}

// UtilizationWithConfig wraps Utilization, applying cfg.DefaultCapacityMbps
// and honoring cfg.RejectOnMissingCapacity (spec.md §9: "the surrounding
// product may prefer to reject analysis when demand exceeds known
// capacity" — here read more narrowly as "when demand traverses an edge
// with no known capacity at all").
func UtilizationWithConfig(ctx context.Context, snapshot *topology.Snapshot, matrix Matrix, cfg netconfig.Config, sink progress.Sink) (*Report, error) {
	report, err := Utilization(ctx, snapshot, matrix, cfg.DefaultCapacityMbps, sink)
	if err != nil {
		return nil, err
	}
	if cfg.RejectOnMissingCapacity && len(report.Warnings) > 0 {
		return nil, apperror.New(apperror.KindCapacityMissing, "capacity_missing_rejected",
			"one or more edges carrying traffic have no capacity metadata and RejectOnMissingCapacity is set")
	}
	return report, nil
}

// splitDemand walks res's shortest-path DAG forward from its source,
// dividing demand equally across each node's out-edges in the DAG,
// accumulating each edge's share into edgeTraffic. Nodes are expanded in
// topological order of the DAG: a node forwards its demand only once every
// one of its DAG in-edges has delivered its share.
func splitDemand(res *spf.PathResult, demand float64, edgeTraffic map[string]float64) {
	if len(res.LayeredNodes) == 0 {
		return
	}

	forwardAdj := make(map[string][]topology.DirectedEdge)
	pending := make(map[string]int) // DAG in-edges not yet delivered, per node
	for _, e := range res.EdgeSet {
		forwardAdj[e.Source] = append(forwardAdj[e.Source], e)
		pending[e.Target]++
	}

	nodeDemand := make(map[string]float64)
	nodeDemand[res.Source] = demand

	for ready := []string{res.Source}; len(ready) > 0; {
		layer := ready
		ready = nil
		for _, node := range layer {
			d := nodeDemand[node]
			if d <= 0 {
				continue
			}
			outs := forwardAdj[node]
			if len(outs) == 0 {
				continue
			}
			share := d / float64(len(outs))
			for _, e := range outs {
				edgeTraffic[e.ID] += share
				nodeDemand[e.Target] += share
				pending[e.Target]--
				if pending[e.Target] == 0 {
					ready = append(ready, e.Target)
				}
			}
		}
	}
}
