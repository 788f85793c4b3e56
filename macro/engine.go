package macro

import (
	"context"
	"sync"

	"github.com/katalvlaran/rotoplan/bound"
	"github.com/katalvlaran/rotoplan/catalog"
	"github.com/katalvlaran/rotoplan/craft"
	"github.com/katalvlaran/rotoplan/finish"
	"github.com/katalvlaran/rotoplan/pqueue"
	"github.com/katalvlaran/rotoplan/simulate"
)

// engine is the stateful best-first search, following tsp.bbEngine's shape:
// a dedicated struct holding all search state explicitly rather than a web
// of closures, so the same expand/commit steps serve both Solve's serial
// loop and SolveParallel's worker-group loop.
//
// computeChildren never touches mu: it only reads settings/opts (both
// immutable for the engine's lifetime) and calls simulate/finish/bound.
// simulate and bound share no mutable state across calls; finishSolver's
// memo store is shared and written on every call, and relies on the
// store's own locking (memo.MapStore takes its own mutex). commit and popNext are
// the only methods that touch the queue, visited set, or incumbent, and
// both take mu — this is the single lock SolveParallel's worker group
// serializes on.
type engine struct {
	settings craft.Settings
	opts     Options

	finishSolver *finish.Solver

	mu      sync.Mutex
	queue   *pqueue.Queue
	visited map[craft.State]struct{}

	bestFound     bool
	bestQuality   uint16
	bestTimeCost  int
	bestMoveCount int
	bestMoves     []catalog.Move

	nodesExpanded int
}

func newEngine(settings craft.Settings, opts Options) *engine {
	return &engine{
		settings:     settings,
		opts:         opts,
		finishSolver: finish.New(settings, opts.FinishStore),
		queue:        pqueue.New(),
		visited:      make(map[craft.State]struct{}),
	}
}

// seed pushes the initial state onto the frontier, or — in the degenerate
// case where settings.MaxProgress is already zero — records it directly as
// the incumbent, since an already-terminal initial state has no children.
func (e *engine) seed(ctx context.Context) error {
	start := craft.New(e.settings)
	if start.Terminal() {
		if start.Success() {
			e.mu.Lock()
			e.considerIncumbentLocked(start.AchievedQuality(e.settings), 0, 0, nil)
			e.mu.Unlock()
		}

		return nil
	}

	canFinish, err := e.finishSolver.CanFinish(ctx, start)
	if err != nil {
		return err
	}
	if !canFinish {
		return nil
	}

	priority := bound.UpperBound(start, e.settings, e.opts.BoundConfig)

	e.mu.Lock()
	e.queue.Enqueue(searchNode{state: start}, priority)
	e.mu.Unlock()

	return nil
}

// computeChildren expands node into one childResult per legal move,
// applying spec.md §4.5's backload mask and the finish-solver feasibility
// oracle, and computing each non-terminal child's admissible bound. It
// touches no shared engine state, so callers may invoke it concurrently for
// distinct nodes without holding mu.
func (e *engine) computeChildren(ctx context.Context, node searchNode) ([]childResult, error) {
	backloaded := e.opts.Backload && node.state.MissingProgress < e.settings.MaxProgress

	var out []childResult
	for _, m := range e.settings.AllowedActions.Moves() {
		if backloaded && producesQuality(m) {
			continue
		}

		next, err := simulate.Apply(node.state, m, craft.Normal, e.settings)
		if err != nil {
			continue
		}

		moves := make([]catalog.Move, len(node.moves)+1)
		copy(moves, node.moves)
		moves[len(node.moves)] = m
		timeCost := node.timeCost + catalog.Get(m).TimeCost

		cr := childResult{child: next, moves: moves, timeCost: timeCost}
		if next.Terminal() {
			out = append(out, cr)

			continue
		}

		canFinish, err := e.finishSolver.CanFinish(ctx, next)
		if err != nil {
			return nil, err
		}
		if !canFinish {
			cr.prunedFinish = true
			out = append(out, cr)

			continue
		}

		cr.bound = bound.UpperBound(next, e.settings, e.opts.BoundConfig)
		out = append(out, cr)
	}

	return out, nil
}

// considerIncumbentLocked updates the best-known plan if (quality,
// timeCost, moveCount) beats it per the better() tie-break. Callers must
// hold mu.
func (e *engine) considerIncumbentLocked(quality uint16, timeCost, moveCount int, moves []catalog.Move) {
	if e.bestFound && !better(quality, timeCost, moveCount, e.bestQuality, e.bestTimeCost, e.bestMoveCount) {
		return
	}

	e.bestFound = true
	e.bestQuality = quality
	e.bestTimeCost = timeCost
	e.bestMoveCount = moveCount
	e.bestMoves = append([]catalog.Move(nil), moves...)
	e.opts.Metrics.IncIncumbentImprovements()
}

// commit applies the pruning and incumbent-update rules to a batch of
// childResults and enqueues whatever survives. It takes mu itself so
// SolveParallel's workers can each compute their own node's children
// lock-free and only serialize here.
func (e *engine) commit(results []childResult) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, cr := range results {
		if cr.prunedFinish {
			e.opts.Metrics.IncNodesPrunedFinish()

			continue
		}

		if cr.child.Terminal() {
			if cr.child.Success() {
				e.considerIncumbentLocked(cr.child.AchievedQuality(e.settings), cr.timeCost, len(cr.moves), cr.moves)
			}

			continue
		}

		if e.bestFound && cr.bound <= e.bestQuality {
			e.opts.Metrics.IncNodesPrunedBound()

			continue
		}

		if _, seen := e.visited[cr.child]; seen {
			continue
		}

		e.queue.Enqueue(searchNode{state: cr.child, moves: cr.moves, timeCost: cr.timeCost}, cr.bound)
	}

	e.opts.Metrics.SetVisitedSetSize(len(e.visited))
}

// popNext dequeues the next node worth expanding, silently discarding stale
// duplicate entries (a state already marked visited) and entries whose
// bound no longer exceeds the incumbent (the incumbent may have improved
// since this entry was pushed). ok is false once the frontier is
// exhausted.
func (e *engine) popNext() (searchNode, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for {
		item := e.queue.Dequeue()
		if item == nil {
			return searchNode{}, false
		}

		node := item.Value.(searchNode)
		if _, seen := e.visited[node.state]; seen {
			continue
		}
		if e.bestFound && item.Priority <= e.bestQuality {
			continue
		}

		e.visited[node.state] = struct{}{}
		e.nodesExpanded++

		return node, true
	}
}

// nodesExpandedCount reports how many nodes have been popped and expanded
// so far.
func (e *engine) nodesExpandedCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.nodesExpanded
}

// bestMovesCopy returns a defensive copy of the current incumbent's move
// list, or nil if no incumbent has been found yet.
func (e *engine) bestMovesCopy() []catalog.Move {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.bestFound {
		return nil
	}

	out := make([]catalog.Move, len(e.bestMoves))
	copy(out, e.bestMoves)

	return out
}

// run drives the serial best-first loop: pop, expand, commit, until the
// frontier empties, the node limit is reached, or Cancel reports true.
func (e *engine) run(ctx context.Context) ([]catalog.Move, error) {
	if err := e.seed(ctx); err != nil {
		return nil, err
	}

	for {
		if e.opts.Cancel != nil && e.opts.Cancel() {
			break
		}
		if e.opts.NodeLimit > 0 && e.nodesExpandedCount() >= e.opts.NodeLimit {
			break
		}

		node, ok := e.popNext()
		if !ok {
			break
		}
		e.opts.Metrics.IncNodesExpanded()

		results, err := e.computeChildren(ctx, node)
		if err != nil {
			return nil, err
		}

		e.commit(results)
	}

	return e.bestMovesCopy(), nil
}
