package topology

import "fmt"

// Fixture generators produce deterministic Snapshot topologies for tests
// and CLI examples. Shaped after lvlath's builder.Complete/builder.Path
// constructors: a fixed vertex-naming scheme, deterministic edge-emission
// order, and a single validated Commit at the end.

// chainLink adds both directions of a logical link between two existing
// routers at the given forward/reverse costs.
func chainLink(b *Builder, logicalID, source, target string, fwdCost, revCost int) {
	b.AddEdge(DirectedEdge{Source: source, Target: target, Cost: fwdCost, LogicalID: logicalID})
	if revCost > 0 {
		b.AddEdge(DirectedEdge{Source: target, Target: source, Cost: revCost, LogicalID: logicalID})
	}
}

// Complete returns the complete bidirectional graph on n routers named
// R0..R(n-1), every pair joined by a cost-1 logical link in both
// directions. n must be >= 1.
func Complete(n int) (*Snapshot, error) {
	if n < 1 {
		return nil, fmt.Errorf("topology: Complete(n=%d): n must be >= 1", n)
	}
	b := NewBuilder()
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = fmt.Sprintf("R%d", i)
		b.AddRouter(Router{ID: ids[i], Name: ids[i]})
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			chainLink(b, fmt.Sprintf("L%d-%d", i, j), ids[i], ids[j], 1, 1)
		}
	}
	return b.Commit()
}

// Chain returns a simple path R0-R1-...-R(n-1) with cost-1 bidirectional
// logical links between consecutive routers. n must be >= 2.
func Chain(n int) (*Snapshot, error) {
	if n < 2 {
		return nil, fmt.Errorf("topology: Chain(n=%d): n must be >= 2", n)
	}
	b := NewBuilder()
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = fmt.Sprintf("R%d", i)
		b.AddRouter(Router{ID: ids[i], Name: ids[i]})
	}
	for i := 0; i < n-1; i++ {
		chainLink(b, fmt.Sprintf("L%d-%d", i, i+1), ids[i], ids[i+1], 1, 1)
	}
	return b.Commit()
}

// Square returns the four-node equal-cost square A-B-C-D used by the
// spec's end-to-end scenario 1: A<->B=1, A<->C=1, B<->D=1, C<->D=1.
func Square() (*Snapshot, error) {
	b := NewBuilder()
	for _, id := range []string{"A", "B", "C", "D"} {
		b.AddRouter(Router{ID: id, Name: id})
	}
	chainLink(b, "L-AB", "A", "B", 1, 1)
	chainLink(b, "L-AC", "A", "C", 1, 1)
	chainLink(b, "L-BD", "B", "D", 1, 1)
	chainLink(b, "L-CD", "C", "D", 1, 1)
	return b.Commit()
}
