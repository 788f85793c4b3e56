package finish

import (
	"context"
	"math"

	"github.com/katalvlaran/rotoplan/catalog"
	"github.com/katalvlaran/rotoplan/craft"
	"github.com/katalvlaran/rotoplan/memo"
)

// Unreachable is the memoized cost Solver reports for a reduced state no
// sequence of the nine-move repertoire can finish from.
const Unreachable int32 = math.MaxInt32 / 2

// Solver is the finish-solver of spec.md §4.3: given a state, it reports
// the minimum CP required to drive missing_progress to zero using only
// the nine fixed move sequences, independent of quality.
type Solver struct {
	settings craft.Settings
	store    memo.Store
}

// New constructs a Solver bound to settings. A nil store defaults to an
// in-process memo.MapStore; callers sharing DP results across processes
// supply a memo.RedisStore instead. Two Solvers must never share a store
// under different Settings: the reduced-state key does not encode
// Settings, so a mismatched Settings would silently reuse stale costs.
func New(settings craft.Settings, store memo.Store) *Solver {
	if store == nil {
		store = memo.NewMapStore()
	}

	return &Solver{settings: settings, store: store}
}

// CostToFinish returns the minimum CP required to finish from state, or
// Unreachable if no sequence of the repertoire can.
func (s *Solver) CostToFinish(ctx context.Context, state craft.State) (int32, error) {
	return s.costToFinish(ctx, FromState(state))
}

// CanFinish reports whether state's own CP budget covers CostToFinish.
func (s *Solver) CanFinish(ctx context.Context, state craft.State) (bool, error) {
	cost, err := s.CostToFinish(ctx, state)
	if err != nil {
		return false, err
	}

	return cost < Unreachable && int32(state.CP) >= cost, nil
}

func (s *Solver) costToFinish(ctx context.Context, r ReducedState) (int32, error) {
	if r.MissingProgress == 0 {
		return 0, nil
	}

	key := r.Key()
	if v, ok, err := s.store.Get(ctx, key); err != nil {
		return 0, err
	} else if ok {
		return v, nil
	}

	best := Unreachable
	for _, seq := range sequences {
		if !seq.shouldUse(r, s.settings) {
			continue
		}

		next, success, terminal, err := seq.apply(r, s.settings)
		if err != nil {
			continue
		}

		if terminal {
			if !success {
				continue
			}
			if int32(seq.baseCPCost) < best {
				best = int32(seq.baseCPCost)
			}

			continue
		}

		childCost, err := s.costToFinish(ctx, next)
		if err != nil {
			return 0, err
		}
		if childCost >= Unreachable {
			continue
		}

		total := childCost + int32(seq.baseCPCost)
		if total < best {
			best = total
		}
	}

	if err := s.store.Set(ctx, key, best); err != nil {
		return 0, err
	}

	return best, nil
}

// FinishSequence reconstructs the actual move list achieving CostToFinish
// from state, by walking the memo table the same way the DP populated it:
// at each reduced state, the first sequence (in repertoire order) whose
// child cost plus its own CP cost exactly accounts for the remaining
// budget is the one that produced it.
func (s *Solver) FinishSequence(ctx context.Context, state craft.State) ([]catalog.Move, error) {
	r := FromState(state)
	cost, err := s.costToFinish(ctx, r)
	if err != nil {
		return nil, err
	}
	if cost >= Unreachable || int32(state.CP) < cost {
		return nil, ErrCannotFinish
	}
	if r.MissingProgress == 0 {
		return nil, nil
	}

	var out []catalog.Move
	for {
		target := cost
		advanced := false

		for _, seq := range sequences {
			if !seq.shouldUse(r, s.settings) {
				continue
			}
			remaining := target - int32(seq.baseCPCost)
			if remaining < 0 {
				continue
			}

			next, success, terminal, err := seq.apply(r, s.settings)
			if err != nil {
				continue
			}

			if terminal {
				if success && remaining == 0 {
					out = append(out, seq.moves...)

					return out, nil
				}

				continue
			}

			childCost, err := s.costToFinish(ctx, next)
			if err != nil {
				return nil, err
			}
			if childCost == remaining {
				out = append(out, seq.moves...)
				r = next
				cost = remaining
				advanced = true

				break
			}
		}

		if !advanced {
			return nil, ErrTraceInconsistent
		}
	}
}
