package spf

import (
	"sort"

	"github.com/zumanm1/ospf-netplan/topology"
)

// Reconstruct derives a PathResult for dst from table, or (nil, false) if
// dst is unreachable from table.Source.
func (t *SpfTable) Reconstruct(dst string) (*PathResult, bool) {
	cost, ok := t.cost[dst]
	if !ok {
		return nil, false
	}
	if dst == t.Source {
		return &PathResult{
			Source: t.Source, Destination: dst, Cost: 0,
			CanonicalPath: []string{dst}, LayeredNodes: [][]string{{dst}},
		}, true
	}

	canonical, canonicalEdges := t.canonicalPath(dst)
	edgeSet, ancestorEdges := t.edgeSet(dst)
	layered := t.layeredNodes(dst, ancestorEdges)

	isECMP := false
	for node := range ancestorEdges {
		if len(t.preds[node]) > 1 {
			isECMP = true
			break
		}
	}

	return &PathResult{
		Source:         t.Source,
		Destination:    dst,
		Cost:           cost,
		IsECMP:         isECMP,
		CanonicalPath:  canonical,
		CanonicalEdges: canonicalEdges,
		EdgeSet:        edgeSet,
		LayeredNodes:   layered,
	}, true
}

// canonicalPath walks back from dst choosing, at each step, the
// predecessor with the lexicographically smallest handle (spec.md §4.2),
// returning both the router sequence and the specific predecessor edges
// used at each hop.
func (t *SpfTable) canonicalPath(dst string) ([]string, []topology.DirectedEdge) {
	var revNodes []string
	var revEdges []topology.DirectedEdge
	cur := dst
	for cur != t.Source {
		revNodes = append(revNodes, cur)
		preds := t.preds[cur]
		best := preds[0]
		for _, p := range preds[1:] {
			if p.PredecessorID < best.PredecessorID {
				best = p
			}
		}
		if e, ok := t.snapshot.EdgeByID(best.EdgeID); ok {
			revEdges = append(revEdges, e)
		}
		cur = best.PredecessorID
	}
	revNodes = append(revNodes, t.Source)

	path := make([]string, len(revNodes))
	for i, n := range revNodes {
		path[len(revNodes)-1-i] = n
	}
	edges := make([]topology.DirectedEdge, len(revEdges))
	for i, e := range revEdges {
		edges[len(revEdges)-1-i] = e
	}
	return path, edges
}

// edgeSet returns the transitive closure of predecessor edges reachable
// from dst via predecessors (spec.md §4.2: "the full ECMP DAG"), plus the
// set of ancestor node IDs visited along the way (used by layeredNodes).
func (t *SpfTable) edgeSet(dst string) ([]topology.DirectedEdge, map[string]bool) {
	visited := map[string]bool{dst: true}
	queue := []string{dst}
	edgeIDs := make(map[string]bool)

	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		for _, p := range t.preds[n] {
			edgeIDs[p.EdgeID] = true
			if !visited[p.PredecessorID] {
				visited[p.PredecessorID] = true
				queue = append(queue, p.PredecessorID)
			}
		}
	}

	out := make([]topology.DirectedEdge, 0, len(edgeIDs))
	for _, eid := range sortedKeys(edgeIDs) {
		if e, ok := t.snapshot.EdgeByID(eid); ok {
			out = append(out, e)
		}
	}
	return out, visited
}

// layeredNodes partitions the nodes ancestral to dst (src included) by
// shortest-distance-in-hops from src, restricted to the predecessor DAG
// edges collected for dst (spec.md §4.2).
func (t *SpfTable) layeredNodes(dst string, ancestors map[string]bool) [][]string {
	// Build forward adjacency restricted to ancestors: predecessor -> node,
	// for every predecessor edge of every ancestor node.
	forward := make(map[string][]string)
	for node := range ancestors {
		for _, p := range t.preds[node] {
			forward[p.PredecessorID] = append(forward[p.PredecessorID], node)
		}
	}

	hop := map[string]int{t.Source: 0}
	order := []string{t.Source}
	for i := 0; i < len(order); i++ {
		u := order[i]
		for _, v := range forward[u] {
			if _, seen := hop[v]; seen {
				continue
			}
			hop[v] = hop[u] + 1
			order = append(order, v)
		}
	}

	maxHop := 0
	for _, h := range hop {
		if h > maxHop {
			maxHop = h
		}
	}
	layers := make([][]string, maxHop+1)
	for n, h := range hop {
		layers[h] = append(layers[h], n)
	}
	for _, layer := range layers {
		sort.Strings(layer)
	}
	return layers
}

func sortedKeys(m map[string]bool) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
