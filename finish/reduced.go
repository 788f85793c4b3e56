// Package finish implements the finish-solver of spec.md §4.3: a backward
// dynamic program, memoized over a reduced projection of craft.State, that
// reports the minimum CP required to drive missing_progress to zero using
// a fixed nine-sequence repertoire. It answers "can this state still be
// finished" and "what does finishing cost", independent of quality — the
// macro solver consults it to prune branches that can no longer complete.
package finish

import (
	"github.com/katalvlaran/rotoplan/craft"
	"github.com/katalvlaran/rotoplan/effects"
)

// ReducedState is the finish-solver's own projection of craft.State: only
// durability, missing progress, and the three counters a finish sequence
// can actually touch — waste_not, veneration, manipulation — participate.
// CP is dropped (the DP computes the CP *cost* to finish, so it cannot
// itself depend on CP), and quality, inner_quiet, great_strides,
// muscle_memory and trained_perfection are irrelevant once a plan has
// committed to "just finish progress".
type ReducedState struct {
	Durability      int8
	MissingProgress uint16
	WasteNot        int
	Veneration      int
	Manipulation    int
}

// FromState projects a full craft.State down to its finish-solver shape.
func FromState(s craft.State) ReducedState {
	return ReducedState{
		Durability:      s.Durability,
		MissingProgress: s.MissingProgress,
		WasteNot:        s.Effects.WasteNot(),
		Veneration:      s.Effects.Veneration(),
		Manipulation:    s.Effects.Manipulation(),
	}
}

// durabilityBias re-bases int8 durability into an unsigned range for
// packing: durability can go as low as -128 transiently (spec.md §3).
const durabilityBias = 128

// Key packs the reduced state into a single uint64, the natural key type
// for a memo.Store: 16 bits of missing progress, 8 bits of biased
// durability, 4 bits each for waste_not/veneration/manipulation (all fit
// in [0,8] per spec.md §4.6).
func (r ReducedState) Key() uint64 {
	var k uint64
	k |= uint64(r.MissingProgress)
	k |= uint64(uint8(int16(r.Durability)+durabilityBias)) << 16
	k |= uint64(r.WasteNot&0xF) << 24
	k |= uint64(r.Veneration&0xF) << 28
	k |= uint64(r.Manipulation&0xF) << 32

	return k
}

// toState expands a ReducedState back into a synthetic craft.State for
// feeding through simulate.Apply. CP is overwritten by the caller with a
// budget far above any real solve so a sequence's own CP cost is never
// itself the limiting factor — the DP is what computes that cost. Quality
// and inner_quiet start at zero since the finish-solver never reports a
// quality outcome, and combo starts cleared since none of the nine finish
// sequences depend on an incoming combo token from outside themselves.
func (r ReducedState) toState() craft.State {
	var eff effects.Effects
	eff = eff.SetWasteNot(r.WasteNot)
	eff = eff.SetVeneration(r.Veneration)
	eff = eff.SetManipulation(r.Manipulation)

	return craft.State{
		Durability:      r.Durability,
		MissingProgress: r.MissingProgress,
		Effects:         eff,
	}
}
