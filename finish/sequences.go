package finish

import (
	"github.com/katalvlaran/rotoplan/catalog"
	"github.com/katalvlaran/rotoplan/craft"
	"github.com/katalvlaran/rotoplan/simulate"
)

// hugeCP is the CP budget a finish sequence is evaluated against: large
// enough that no real Settings.MaxCP could ever reach it, so a sequence's
// own simulate.Apply calls never fail on CP even though the DP result is
// exactly the CP they would have cost under a real budget.
const hugeCP uint16 = 60000

// sequence is one of the nine fixed move sequences finish.Solver chooses
// from at each reduced state (spec.md §4.3). A two-move sequence such as
// focusedSynthesisCombo is one DP edge: both moves are applied back to
// back under Normal condition and only the combined result is memoized.
type sequence struct {
	name       string
	moves      []catalog.Move
	baseCPCost int
	shouldUse  func(ReducedState, craft.Settings) bool
}

// manipulationCapped mirrors the original solver's guard: granting
// waste_not/veneration/manipulation is pointless once manipulation is
// already active and durability sits at its maximum, since nothing is
// left for manipulation's own durability restore to repair.
func manipulationCapped(r ReducedState, settings craft.Settings) bool {
	return r.Manipulation != 0 && r.Durability == settings.MaxDurability
}

var sequences = buildSequences()

func buildSequences() [9]sequence {
	seqs := [9]sequence{
		{
			name:      "BasicSynthesis",
			moves:     []catalog.Move{catalog.BasicSynthesis},
			shouldUse: func(ReducedState, craft.Settings) bool { return true },
		},
		{
			name:  "MasterMend",
			moves: []catalog.Move{catalog.MasterMend},
			shouldUse: func(r ReducedState, settings craft.Settings) bool {
				return int16(r.Durability)+30 <= int16(settings.MaxDurability)
			},
		},
		{
			name:      "CarefulSynthesis",
			moves:     []catalog.Move{catalog.CarefulSynthesis},
			shouldUse: func(ReducedState, craft.Settings) bool { return true },
		},
		{
			name:      "Groundwork",
			moves:     []catalog.Move{catalog.Groundwork},
			shouldUse: func(ReducedState, craft.Settings) bool { return true },
		},
		{
			name:  "FocusedSynthesisCombo",
			moves: []catalog.Move{catalog.Observe, catalog.FocusedSynthesis},
			shouldUse: func(r ReducedState, settings craft.Settings) bool {
				return !manipulationCapped(r, settings) && r.WasteNot == 0 &&
					(r.Veneration >= 2 || r.Veneration == 0)
			},
		},
		{
			name:  "Manipulation",
			moves: []catalog.Move{catalog.Manipulation},
			shouldUse: func(r ReducedState, _ craft.Settings) bool {
				return r.Manipulation == 0
			},
		},
		{
			name:  "WasteNot",
			moves: []catalog.Move{catalog.WasteNot},
			shouldUse: func(r ReducedState, settings craft.Settings) bool {
				return !manipulationCapped(r, settings) && r.WasteNot == 0
			},
		},
		{
			name:  "WasteNotII",
			moves: []catalog.Move{catalog.WasteNotII},
			shouldUse: func(r ReducedState, settings craft.Settings) bool {
				return !manipulationCapped(r, settings) && r.WasteNot == 0
			},
		},
		{
			name:  "Veneration",
			moves: []catalog.Move{catalog.Veneration},
			shouldUse: func(r ReducedState, settings craft.Settings) bool {
				return !manipulationCapped(r, settings) && r.Veneration == 0
			},
		},
	}

	for i := range seqs {
		cost := 0
		for _, mv := range seqs[i].moves {
			cost += catalog.Get(mv).CPCost
		}
		seqs[i].baseCPCost = cost
	}

	return seqs
}

// apply plays every move of s, in order, against r under Normal condition.
// terminal reports whether the craft ended (success or failure); success
// is only meaningful when terminal is true. An error means this sequence
// cannot legally be played from r (a disallowed move, an unmet combo or
// job-level gate) and the caller should treat it as unusable, the same
// way should_use is meant to filter it out beforehand.
func (s sequence) apply(r ReducedState, settings craft.Settings) (next ReducedState, success bool, terminal bool, err error) {
	sim := settings
	sim.MaxCP = hugeCP
	sim.InitialQuality = 0
	sim.Adversarial = false

	state := r.toState()
	state.CP = hugeCP

	for _, mv := range s.moves {
		state, err = simulate.Apply(state, mv, craft.Normal, sim)
		if err != nil {
			return ReducedState{}, false, false, err
		}
		if state.Terminal() {
			break
		}
	}

	if state.Terminal() {
		return ReducedState{}, state.Success(), true, nil
	}

	return FromState(state), false, false, nil
}
