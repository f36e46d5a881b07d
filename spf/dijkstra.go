package spf

import (
	"container/heap"

	"github.com/zumanm1/ospf-netplan/internal/apperror"
	"github.com/zumanm1/ospf-netplan/topology"
)

// ShortestPaths computes, from src, the optimal cost and full ECMP
// predecessor set for every reachable router in snapshot (spec.md §4.2).
//
// Algorithm: Dijkstra with a min-priority queue keyed on (tentative cost,
// router handle) so queue ties are broken by byte-lexicographic handle
// order, so canonical_path is deterministic across runs.
// When relaxing edge (u->v):
//   - strictly better than dist[v]: replace the predecessor set with {(u,edge)};
//   - equal to dist[v]: append (u,edge) to the predecessor set (ECMP);
//   - worse: discard.
//
// Complexity: O((V+E) log V); memory O(V+E).
func ShortestPaths(snapshot *topology.Snapshot, src string) (*SpfTable, error) {
	if !snapshot.HasRouter(src) {
		return nil, apperror.UnknownRouter(src)
	}

	table := &SpfTable{
		Source:   src,
		snapshot: snapshot,
		cost:     make(map[string]int),
		preds:    make(map[string][]PredecessorEdge),
		round:    make(map[string]int),
	}

	finalized := make(map[string]bool)
	best := make(map[string]int) // best known tentative distance, including not-yet-finalized

	pq := make(nodePQ, 0, snapshot.RouterCount())
	heap.Init(&pq)
	heap.Push(&pq, &nodeItem{id: src, cost: 0})
	best[src] = 0

	round := 0
	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*nodeItem)
		u, d := item.id, item.cost

		if finalized[u] {
			continue
		}
		finalized[u] = true
		table.cost[u] = d
		table.round[u] = round
		round++

		for _, e := range snapshot.OutEdges(u) {
			v := e.Target
			if finalized[v] {
				continue
			}
			newDist := d + e.Cost
			cur, seen := best[v]
			switch {
			case !seen || newDist < cur:
				best[v] = newDist
				table.preds[v] = []PredecessorEdge{{PredecessorID: u, EdgeID: e.ID}}
				heap.Push(&pq, &nodeItem{id: v, cost: newDist})
			case newDist == cur:
				table.preds[v] = append(table.preds[v], PredecessorEdge{PredecessorID: u, EdgeID: e.ID})
				// No heap push needed: v is already queued at this cost, or will be
				// popped once its existing entry surfaces; a duplicate push would
				// only add a redundant, harmless re-visit of an already-finalized cost.
			}
		}
	}

	return table, nil
}

// nodeItem is one (router, tentative cost) pair in the priority queue.
type nodeItem struct {
	id   string
	cost int
}

// nodePQ orders by cost ascending, then by router handle lexicographically
// so extraction order (and therefore round assignment) is deterministic
// under ties.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].cost != pq[j].cost {
		return pq[i].cost < pq[j].cost
	}
	return pq[i].id < pq[j].id
}
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
