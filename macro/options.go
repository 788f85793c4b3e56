package macro

import (
	"github.com/katalvlaran/rotoplan/bound"
	"github.com/katalvlaran/rotoplan/memo"
	"github.com/katalvlaran/rotoplan/telemetry/solvemetrics"
)

// Options governs one Solve/SolveParallel call, following the teacher's
// Options-value discipline (tsp.Options): constructed once, passed by
// value, never mutated by the solver itself.
type Options struct {
	// Backload enables spec.md §4.5's backload mode: once the first
	// progress-producing move has landed, quality moves are masked out of
	// every subsequent expansion.
	Backload bool

	// BoundConfig is forwarded to bound.UpperBound on every expansion.
	BoundConfig bound.Config

	// FinishStore backs the finish-solver's memo table. Nil defaults to an
	// in-process memo.MapStore (see finish.New).
	FinishStore memo.Store

	// Metrics, if non-nil, receives counts of nodes expanded/pruned and
	// incumbent improvements as the search runs. A nil Metrics is a valid
	// no-op (see package solvemetrics).
	Metrics *solvemetrics.Metrics

	// NodeLimit caps the number of frontier nodes expanded before the
	// solver gives up and returns its current incumbent, mirroring
	// tsp.Options' own node-budget governance. Zero means unlimited.
	NodeLimit int

	// Cancel, if non-nil, is polled once per expanded node; returning true
	// stops the search early and returns the current incumbent (spec.md
	// §5's cooperative cancellation).
	Cancel func() bool
}

// DefaultOptions returns the conservative default: no backload masking, the
// bound solver's own default tightening config, an in-process finish-solver
// memo store, no metrics, no node limit, no cancellation.
func DefaultOptions() Options {
	return Options{BoundConfig: bound.DefaultConfig()}
}

// Option is a functional option over Options, following dijkstra's
// WithX(...)-closure-over-a-private-cfg idiom for the smaller, optional
// knobs.
type Option func(*Options)

// WithBackload toggles backload mode.
func WithBackload(b bool) Option { return func(o *Options) { o.Backload = b } }

// WithBoundConfig overrides the upper-bound solver's tightening config.
func WithBoundConfig(cfg bound.Config) Option { return func(o *Options) { o.BoundConfig = cfg } }

// WithFinishStore supplies a shared/persistent backing store for the
// finish-solver's memo table (e.g. a memo.RedisStore).
func WithFinishStore(s memo.Store) Option { return func(o *Options) { o.FinishStore = s } }

// WithMetrics attaches a solvemetrics.Metrics set to the search.
func WithMetrics(m *solvemetrics.Metrics) Option { return func(o *Options) { o.Metrics = m } }

// WithNodeLimit bounds how many frontier nodes the search will expand.
func WithNodeLimit(n int) Option { return func(o *Options) { o.NodeLimit = n } }

// WithCancel installs a cooperative cancellation poll.
func WithCancel(fn func() bool) Option { return func(o *Options) { o.Cancel = fn } }

// NewOptions builds an Options starting from DefaultOptions and applying
// opts in order.
func NewOptions(opts ...Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
