// Package netmetrics exposes the prometheus collectors SPEC_FULL.md's
// ambient stack calls for: SPF invocation counts, SPF latency histograms,
// and optimizer iteration counters. Purely additive instrumentation —
// optimize.Optimize accepts a *Metrics (or nil), increments only the two
// optimizer counters, and never reads values back, so C1-C8 stay pure
// functions over immutable snapshots. No package in this module observes
// SPFInvocations or SPFDuration.
//
// Grounded on the Prometheus collector registration shape used by
// chaos-utils and the kubilitics backend in the retrieved corpus.
package netmetrics

import "github.com/prometheus/client_golang/prometheus"

// Metrics bundles the collectors this engine registers against a host's
// prometheus.Registry.
type Metrics struct {
	SPFInvocations     prometheus.Counter
	SPFDuration        prometheus.Histogram
	OptimizerIterations prometheus.Counter
	OptimizerMovesApplied prometheus.Counter
}

// New constructs a Metrics bundle with unregistered collectors.
func New() *Metrics {
	return &Metrics{
		SPFInvocations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "netplan",
			Subsystem: "spf",
			Name:      "invocations_total",
			Help:      "Total number of shortest-path computations run.",
		}),
		SPFDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "netplan",
			Subsystem: "spf",
			Name:      "duration_seconds",
			Help:      "Duration of a single shortest-path computation.",
			Buckets:   prometheus.DefBuckets,
		}),
		OptimizerIterations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "netplan",
			Subsystem: "optimizer",
			Name:      "iterations_total",
			Help:      "Total local-search iterations run by the cost optimizer.",
		}),
		OptimizerMovesApplied: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "netplan",
			Subsystem: "optimizer",
			Name:      "moves_applied_total",
			Help:      "Total cost changes accepted by the cost optimizer.",
		}),
	}
}

// MustRegister registers every collector in m against reg, panicking on
// duplicate registration the same way prometheus.MustRegister does.
func (m *Metrics) MustRegister(reg *prometheus.Registry) {
	reg.MustRegister(m.SPFInvocations, m.SPFDuration, m.OptimizerIterations, m.OptimizerMovesApplied)
}

// Nop returns a Metrics bundle whose collectors are never registered
// anywhere; safe for tests and library callers that don't care about
// metrics but still want a non-nil *Metrics to pass around.
func Nop() *Metrics {
	return New()
}
