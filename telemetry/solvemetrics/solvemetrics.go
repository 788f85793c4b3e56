// Package solvemetrics provides opt-in Prometheus instrumentation for the
// macro solver's search loop: counters for nodes expanded, nodes pruned by
// each of the two oracles, and incumbent improvements, plus a gauge for
// visited-set size. It never starts an HTTP server or serves /metrics
// itself — registration against a caller-supplied prometheus.Registerer is
// the caller's concern, following the same no-server-of-its-own shape as
// the ratelimiter's churn telemetry package.
//
// A nil *Metrics is a valid, fully-functional no-op: every method checks
// its receiver before touching a field, so package macro can carry a
// *Metrics field unconditionally instead of branching on "is telemetry
// enabled" at every call site.
package solvemetrics

import "github.com/prometheus/client_golang/prometheus"

// Metrics is the full counter/gauge set one macro solve can report against.
// Construct with New and register with Register before passing to
// macro.Options; a nil *Metrics disables collection entirely.
type Metrics struct {
	NodesExpanded         prometheus.Counter
	NodesPrunedFinish     prometheus.Counter
	NodesPrunedBound      prometheus.Counter
	IncumbentImprovements prometheus.Counter
	VisitedSetSize        prometheus.Gauge
}

// New constructs a Metrics set with fresh, unregistered collectors.
func New() *Metrics {
	return &Metrics{
		NodesExpanded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "rotoplan_macro_nodes_expanded_total",
			Help: "Total search nodes popped from the frontier and expanded.",
		}),
		NodesPrunedFinish: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "rotoplan_macro_nodes_pruned_finish_total",
			Help: "Total children discarded because the finish-solver reports them unfinishable.",
		}),
		NodesPrunedBound: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "rotoplan_macro_nodes_pruned_bound_total",
			Help: "Total children discarded because their admissible quality bound does not exceed the incumbent.",
		}),
		IncumbentImprovements: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "rotoplan_macro_incumbent_improvements_total",
			Help: "Total times the best-known achieved quality improved during a solve.",
		}),
		VisitedSetSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "rotoplan_macro_visited_set_size",
			Help: "Current number of distinct states recorded in the macro solver's visited set.",
		}),
	}
}

// Register registers every collector in m against reg. Calling Register on
// a nil m is a harmless no-op.
func (m *Metrics) Register(reg prometheus.Registerer) error {
	if m == nil {
		return nil
	}

	collectors := []prometheus.Collector{
		m.NodesExpanded, m.NodesPrunedFinish, m.NodesPrunedBound,
		m.IncumbentImprovements, m.VisitedSetSize,
	}
	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			return err
		}
	}

	return nil
}

func (m *Metrics) IncNodesExpanded() {
	if m != nil {
		m.NodesExpanded.Inc()
	}
}

func (m *Metrics) IncNodesPrunedFinish() {
	if m != nil {
		m.NodesPrunedFinish.Inc()
	}
}

func (m *Metrics) IncNodesPrunedBound() {
	if m != nil {
		m.NodesPrunedBound.Inc()
	}
}

func (m *Metrics) IncIncumbentImprovements() {
	if m != nil {
		m.IncumbentImprovements.Inc()
	}
}

func (m *Metrics) SetVisitedSetSize(n int) {
	if m != nil {
		m.VisitedSetSize.Set(float64(n))
	}
}
