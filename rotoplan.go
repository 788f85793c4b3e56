// Package rotoplan is the top-level entry point of the module: four
// operations over a closed-world crafting simulation (spec.md §6) backed by
// the subpackages beneath it — catalog (the move table), craft (state and
// settings), simulate (the single-step transition function), finish and
// bound (the two pruning oracles the macro solver leans on), and macro (the
// branch-and-bound search itself).
//
// This package is intentionally thin: it validates nothing the packages it
// calls do not already validate, and holds no state of its own, following
// the same dispatcher-not-implementation role the teacher's own top-level
// solve.go plays over its tsp package.
package rotoplan

import (
	"context"

	"github.com/katalvlaran/rotoplan/catalog"
	"github.com/katalvlaran/rotoplan/craft"
	"github.com/katalvlaran/rotoplan/macro"
	"github.com/katalvlaran/rotoplan/simulate"
)

// SimulateInitial constructs the starting state for a solve under settings
// (spec.md §6's simulate_initial).
func SimulateInitial(settings craft.Settings) craft.State {
	return craft.New(settings)
}

// SimulateStep plays one move against state under condition, returning the
// resulting state or one of package simulate's sentinel errors. On error
// the returned state is state itself, untouched (spec.md §6's
// simulate_step).
func SimulateStep(state craft.State, move catalog.Move, condition craft.Condition, settings craft.Settings) (craft.State, error) {
	return simulate.Apply(state, move, condition, settings)
}

// StepError records one failing move of a SimulatePlan replay: which index
// in the plan failed, which move it was, and why.
type StepError struct {
	Index int
	Move  catalog.Move
	Err   error
}

// Error implements the error interface so a StepError can be handled like
// any other Go error when a caller only cares that something failed.
func (e StepError) Error() string {
	return e.Err.Error()
}

// Unwrap exposes the underlying sentinel error for errors.Is checks.
func (e StepError) Unwrap() error {
	return e.Err
}

// SimulatePlan replays moves in order from settings' initial state. A
// failing step never aborts the replay: it leaves the state unchanged and
// is recorded in the returned slice, matching spec.md §6's simulate_plan
// contract that errors are data, not control flow.
func SimulatePlan(settings craft.Settings, moves []catalog.Move) (craft.State, []StepError) {
	state := SimulateInitial(settings)

	var failures []StepError
	for i, m := range moves {
		next, err := simulate.Apply(state, m, craft.Normal, settings)
		if err != nil {
			failures = append(failures, StepError{Index: i, Move: m, Err: err})

			continue
		}

		state = next
	}

	return state, failures
}

// Solve searches for the best achievable move sequence under settings,
// returning nil if none can finish the craft (spec.md §6's solve). backload
// enables spec.md §4.5's backload masking; cancel, if non-nil, is polled
// cooperatively and its return value stopping the search early with
// whatever incumbent has been found so far. ctx governs any backing-store
// I/O the finish-solver's memo table performs; pass context.Background()
// when no deadline or store round-trip is involved.
func Solve(ctx context.Context, settings craft.Settings, backload bool, cancel func() bool) ([]catalog.Move, error) {
	opts := macro.NewOptions(
		macro.WithBackload(backload),
		macro.WithCancel(cancel),
	)

	return macro.Solve(ctx, settings, opts)
}
