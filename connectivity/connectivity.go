// Package connectivity implements the Connectivity Analyzer (C4): BFS over
// the undirected projection of a snapshot to enumerate weakly connected
// components, isolated nodes, and full-connectivity status.
//
// Grounded on lvlath's bfs.BFS traversal loop and gridgraph/components.go's
// "BFS from every unvisited seed, collect into map" enumeration shape,
// adapted from a 2D grid to a directed OSPF multigraph's undirected
// projection.
package connectivity

import (
	"sort"

	"github.com/zumanm1/ospf-netplan/topology"
)

// ConnectivityReport is the result of Analyze (spec.md §3).
type ConnectivityReport struct {
	IsFullyConnected bool
	Components       [][]string
	IsolatedNodes    []string
	LargestComponent []string
}

// Analyze runs BFS over the undirected projection of snapshot (an edge in
// either direction connects its endpoints) and enumerates weakly connected
// components. Complexity O(V+E). Components are ordered by the
// lexicographically smallest handle they contain (spec.md §4.4); each
// component's members are sorted the same way.
func Analyze(snapshot *topology.Snapshot) *ConnectivityReport {
	adjacency := undirectedAdjacency(snapshot)

	routers := snapshot.Routers()
	visited := make(map[string]bool, len(routers))
	var components [][]string

	for _, r := range routers {
		if visited[r.ID] {
			continue
		}
		component := bfsComponent(r.ID, adjacency, visited)
		sort.Strings(component)
		components = append(components, component)
	}

	sort.Slice(components, func(i, j int) bool { return components[i][0] < components[j][0] })

	var isolated []string
	var largest []string
	for _, c := range components {
		if len(c) == 1 {
			isolated = append(isolated, c[0])
		}
		if len(c) > len(largest) {
			largest = c
		}
	}

	return &ConnectivityReport{
		IsFullyConnected: len(components) == 1,
		Components:       components,
		IsolatedNodes:    isolated,
		LargestComponent: largest,
	}
}

func undirectedAdjacency(snapshot *topology.Snapshot) map[string]map[string]bool {
	adjacency := make(map[string]map[string]bool)
	ensure := func(id string) {
		if adjacency[id] == nil {
			adjacency[id] = make(map[string]bool)
		}
	}
	for _, r := range snapshot.Routers() {
		ensure(r.ID)
	}
	for _, e := range snapshot.AllEdges() {
		ensure(e.Source)
		ensure(e.Target)
		adjacency[e.Source][e.Target] = true
		adjacency[e.Target][e.Source] = true
	}
	return adjacency
}

func bfsComponent(seed string, adjacency map[string]map[string]bool, visited map[string]bool) []string {
	visited[seed] = true
	queue := []string{seed}
	component := []string{seed}
	for i := 0; i < len(queue); i++ {
		u := queue[i]
		neighbors := make([]string, 0, len(adjacency[u]))
		for v := range adjacency[u] {
			neighbors = append(neighbors, v)
		}
		sort.Strings(neighbors)
		for _, v := range neighbors {
			if visited[v] {
				continue
			}
			visited[v] = true
			queue = append(queue, v)
			component = append(component, v)
		}
	}
	return component
}
