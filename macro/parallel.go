package macro

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/rotoplan/catalog"
	"github.com/katalvlaran/rotoplan/craft"
)

// SolveParallel is Solve's opt-in concurrent-expansion mode: workers nodes
// are expanded by a bounded group of goroutines sharing one frontier,
// visited set and incumbent, guarded by the engine's single mutex (see
// engine's doc comment — computeChildren runs lock-free per worker, commit
// and popNext serialize). Search order is no longer deterministic across
// runs once workers > 1: concurrent workers race to pop the next-highest-
// bound node, so which duplicate of a tied state wins is scheduler-
// dependent. workers <= 1 behaves exactly like Solve.
func SolveParallel(ctx context.Context, settings craft.Settings, opts Options, workers int) ([]catalog.Move, error) {
	if !settings.Valid() {
		return nil, ErrInvalidSettings
	}
	if workers < 1 {
		workers = 1
	}

	e := newEngine(settings, opts)
	if err := e.seed(ctx); err != nil {
		return nil, err
	}

	group, groupCtx := errgroup.WithContext(ctx)
	for i := 0; i < workers; i++ {
		group.Go(func() error {
			return e.runWorker(groupCtx)
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	return e.bestMovesCopy(), nil
}

// runWorker is one worker's share of the parallel search loop: identical to
// run's pop/expand/commit body, minus the one-time seed step SolveParallel
// already performed before launching the group.
func (e *engine) runWorker(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return nil
		}
		if e.opts.Cancel != nil && e.opts.Cancel() {
			return nil
		}
		if e.opts.NodeLimit > 0 && e.nodesExpandedCount() >= e.opts.NodeLimit {
			return nil
		}

		node, ok := e.popNext()
		if !ok {
			return nil
		}
		e.opts.Metrics.IncNodesExpanded()

		results, err := e.computeChildren(ctx, node)
		if err != nil {
			return err
		}

		e.commit(results)
	}
}
