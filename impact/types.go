// Package impact implements the All-Pairs Differential Analyzer (C3):
// runs the SPF engine on a baseline and a candidate snapshot for every
// common router, compares the reconstructed path for every other router,
// and classifies what changed.
//
// No single teacher file does all-pairs differential analysis; this is
// new domain logic built on the spf package's contract, with the
// per-source fan-out parallelized using golang.org/x/sync/errgroup per
// spec.md §5, the same bounded-fan-out shape the corpus's gateway/gRPC
// services use for independent per-request work.
package impact

// Kind classifies how a single (src, dst) route differs between baseline
// and candidate (spec.md §3, §4.3).
type Kind string

const (
	KindNewlyBroken    Kind = "newly_broken"
	KindNewlyReachable Kind = "newly_reachable"
	KindMigration      Kind = "migration"
	KindReroute        Kind = "reroute"
	KindLostECMP       Kind = "lost_ecmp"
	KindGainedECMP     Kind = "gained_ecmp"
	KindCostIncrease   Kind = "cost_increase"
	KindCostDecrease   Kind = "cost_decrease"
)

// ImpactRecord is produced for each (src, dst) whose routing differs
// between baseline and candidate.
type ImpactRecord struct {
	Source      string
	Destination string

	OldCost *int
	NewCost *int

	OldCanonicalPath []string
	NewCanonicalPath []string

	// OldCanonicalEdgeIDs and NewCanonicalEdgeIDs carry the directed edge
	// IDs traversed by the canonical path, in path order. A multigraph can
	// have more than one logical link between the same router pair, so
	// consumers needing to ask "did this path use edge X" (e.g. blast-radius
	// zone classification) need edge identity, not just the router sequence.
	OldCanonicalEdgeIDs []string
	NewCanonicalEdgeIDs []string

	WasECMP bool
	IsECMP  bool

	PathChanged bool
	Kind        Kind
}

// Filter restricts which (src, dst) pairs are emitted; it never changes
// which SPF runs are performed (spec.md §4.3).
type Filter func(src, dst string) bool

// ImpactReport is the result of AnalyzeImpact: every differing
// (src, dst) pair, ordered ascending by (Source, Destination), plus
// summary counters by Kind.
type ImpactReport struct {
	Records  []ImpactRecord
	Counters map[Kind]int
}
