// Package simulate advances a craft.State one move at a time. Apply is the
// sole mutation surface of the whole module: the finish-solver, the bound
// solver and the macro solver never touch a State's fields directly, they
// only ever call Apply and branch on its error (spec.md §4.1).
package simulate

import (
	"github.com/katalvlaran/rotoplan/catalog"
	"github.com/katalvlaran/rotoplan/craft"
	"github.com/katalvlaran/rotoplan/effects"
)

// Apply plays move against state under condition and returns the resulting
// state. On any precondition failure it returns the input state unchanged
// together with one of the sentinel errors declared in errors.go; the
// caller can always tell, from the returned error alone, that no mutation
// happened.
//
// The step order below is numbered to match spec.md §4.1 exactly; do not
// reorder without re-checking the adversarial and terminal-state carve-outs
// against it.
func Apply(state craft.State, move catalog.Move, condition craft.Condition, settings craft.Settings) (craft.State, error) {
	// step 1: preconditions, in the order the original simulator checks them.
	if !state.InProgress() {
		return state, ErrNotInProgress
	}
	data := catalog.Get(move)

	if !settings.AllowedActions.Has(move) || settings.JobLevel < data.MinJobLevel {
		return state, ErrMoveNotEnabled
	}
	if data.ComboIn != catalog.ComboNone && data.ComboIn != state.Combo {
		return state, ErrComboUnmet
	}

	// These read the generic predicate set catalog.Data declares (the
	// struct's own doc comment), rather than switching on move identity:
	// setting one of these fields on any future table entry gates it here
	// for free.
	if data.RejectedDuringWasteNot && state.Effects.WasteNot() > 0 {
		return state, ErrMoveNotEnabled
	}
	if data.RequiresInnerQuietPositive && state.Effects.InnerQuiet() == 0 {
		return state, ErrInnerQuietFloorUnmet
	}
	if data.RequiresInnerQuietFull && state.Effects.InnerQuiet() != 10 {
		return state, ErrInnerQuietFloorUnmet
	}
	if data.SingleUse && state.Effects.TrainedPerfection() != effects.Available {
		return state, ErrSingleUseExhausted
	}

	if data.RequiresGoodOrExcellent && condition != craft.Good && condition != craft.Excellent {
		return state, ErrConditionUnmet
	}

	// step 2: cost/gain, computed once against the pre-move state.
	cpCost, durCost, progressGain, qualityGain := computeDelta(data, state, condition, settings, move)

	if cpCost > state.CP {
		return state, ErrInsufficientResource
	}
	if move == catalog.Groundwork && int16(durCost) > int16(state.Durability) {
		return state, ErrInsufficientDurability
	}

	next := state

	// step 3
	next.Combo = data.ComboOut

	// step 4
	next.CP = craft.SatSub16(next.CP, cpCost)
	next.Durability = craft.SatSubI8(next.Durability, durCost)

	// step 5
	if data.BaseDurabilityCost != 0 && next.Effects.TrainedPerfection() == effects.Active {
		next.Effects = next.Effects.SetTrainedPerfection(effects.Used)
	}

	// step 6
	if progressGain > 0 {
		next.MissingProgress = craft.SatSub16(next.MissingProgress, progressGain)
		next.Effects = next.Effects.SetMuscleMemory(0)
	}

	// step 7: adversarial shadow rolls before the real quality delta lands.
	if settings.Adversarial {
		next = rollAdversarialWindow(next, data, settings, state.Effects)
	}

	// step 8
	if qualityGain > 0 {
		next.MissingQuality[0] = craft.SatSub16(next.MissingQuality[0], qualityGain)
		next.Effects = next.Effects.SetGreatStrides(0)
		if settings.JobLevel >= 11 {
			bonus := 1
			if data.InnerQuietBonusTwo {
				bonus = 2
			}
			next.Effects = next.Effects.SetInnerQuiet(next.Effects.InnerQuiet() + bonus)
		}
	}

	// step 9: a move that just finished the craft never ticks effects.
	if next.Terminal() {
		return next, nil
	}

	// step 10
	if move == catalog.Manipulation {
		next.Effects = next.Effects.SetManipulation(0)
	}

	// step 11
	if next.Effects.Manipulation() > 0 {
		next.Durability = craft.SatAddI8(next.Durability, 5, settings.MaxDurability)
	}

	// step 12
	next.Effects = next.Effects.TickDown()

	// step 13: the move's own buff grant, plus the moves whose effect isn't
	// expressible as (cost, potency, buff) alone.
	if data.Buff != catalog.BuffNone {
		duration := data.BuffBaseDuration
		if condition == craft.Pliant {
			duration += 2
		}
		switch data.Buff {
		case catalog.BuffWasteNot:
			next.Effects = next.Effects.SetWasteNot(duration)
		case catalog.BuffVeneration:
			next.Effects = next.Effects.SetVeneration(duration)
		case catalog.BuffInnovation:
			next.Effects = next.Effects.SetInnovation(duration)
		case catalog.BuffGreatStrides:
			next.Effects = next.Effects.SetGreatStrides(duration)
		case catalog.BuffMuscleMemory:
			next.Effects = next.Effects.SetMuscleMemory(duration)
		case catalog.BuffManipulation:
			next.Effects = next.Effects.SetManipulation(duration)
		}
	}

	switch move {
	case catalog.MasterMend:
		next.Durability = craft.SatAddI8(next.Durability, 30, settings.MaxDurability)
	case catalog.ByregotsBlessing:
		next.Effects = next.Effects.SetInnerQuiet(0)
	case catalog.TricksOfTheTrade:
		next.CP = craft.SatAdd16(next.CP, 20, settings.MaxCP)
	case catalog.ImmaculateMend:
		next.Durability = settings.MaxDurability
	case catalog.TrainedPerfection:
		next.Effects = next.Effects.SetTrainedPerfection(effects.Active)
	}

	return next, nil
}
