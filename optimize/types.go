// Package optimize implements the Cost Optimizer (C7): a bounded greedy
// local search over integer OSPF edge costs that relieves congestion
// under a supplied traffic matrix while respecting caller constraints.
//
// Grounded on the corpus's constrained, option-driven iteration loops
// (builder's deterministic constructors: resolve configuration once, then
// loop with an explicit stop condition and a typed result, never a panic)
// generalized to an optimization loop with an objective, a candidate
// generator, and a connectivity-regression back-off.
package optimize

import "github.com/zumanm1/ospf-netplan/traffic"

// Goal selects the objective the local search minimizes (spec.md §4.7).
type Goal string

const (
	GoalBalance   Goal = "balance"   // minimize max utilization
	GoalLatency   Goal = "latency"   // minimize average utilization (proxy)
	GoalDiversity Goal = "diversity" // maximize country-pair path diversity
	GoalCustom    Goal = "custom"    // caller-supplied objective
)

// ObjectiveFunc computes a scalar objective to MINIMIZE for a candidate
// utilization report. Only consulted for GoalCustom.
type ObjectiveFunc func(report *traffic.Report) float64

// Constraints bounds what the optimizer is allowed to change (spec.md
// §4.7).
type Constraints struct {
	// MaxCostChangePercent bounds, per edit, |new-old|/old; must be in
	// (0,1]. Zero means "use the package default" (0.5).
	MaxCostChangePercent float64
	// MaxChangesCount caps the number of accepted edits. Zero means
	// unlimited (bounded only by the iteration cap).
	MaxChangesCount int
	// ProtectedEdges are logical_ids that MUST NOT change.
	ProtectedEdges map[string]bool
	// MinCost and MaxCost clamp any accepted cost; zero means the
	// topology package defaults (1, 65535).
	MinCost int
	MaxCost int
	// Objective is consulted only when Goal == GoalCustom.
	Objective ObjectiveFunc
}

// CostChange records one accepted edit, in acceptance order.
type CostChange struct {
	LogicalID string
	Direction string // "forward" or "reverse"
	OldCost   int
	NewCost   int
}

// Result is the outcome of Optimize (spec.md §4.7).
type Result struct {
	Iterations int
	// Converged is true iff the loop stopped for a non-iteration-cap
	// reason (no improvement for K consecutive iterations, or no
	// candidate produced an improvement).
	Converged bool
	Changes   []CostChange
	Before    *traffic.Report
	After     *traffic.Report
}
