// Package macro implements the branch-and-bound macro solver of spec.md
// §4.5: a best-first search over catalog.Move sequences, pruned by the
// finish-solver's feasibility oracle (package finish) and the admissible
// quality bound (package bound), consuming an opaque move frontier from
// package pqueue. Solve and SolveParallel are the package's only exported
// entry points; everything else is search-engine internals.
package macro

import (
	"context"

	"github.com/katalvlaran/rotoplan/catalog"
	"github.com/katalvlaran/rotoplan/craft"
)

// Solve searches for the highest-quality achievable move sequence under
// settings, per spec.md §4.5's tie-break (quality, then time cost, then
// move count). It returns nil with a nil error if no sequence starting
// from the initial state can finish the craft at all. ctx governs the
// finish-solver's store I/O (relevant only when opts.FinishStore is a
// memo.RedisStore); cooperative early exit is controlled separately via
// opts.Cancel (see WithCancel).
func Solve(ctx context.Context, settings craft.Settings, opts Options) ([]catalog.Move, error) {
	if !settings.Valid() {
		return nil, ErrInvalidSettings
	}

	e := newEngine(settings, opts)

	return e.run(ctx)
}
