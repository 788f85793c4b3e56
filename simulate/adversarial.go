package simulate

import (
	"github.com/katalvlaran/rotoplan/catalog"
	"github.com/katalvlaran/rotoplan/craft"
	"github.com/katalvlaran/rotoplan/effects"
)

// rollAdversarialWindow advances the three-slot missing_quality shadow and
// its two-step prev_deltas history (spec.md §4.2), called once per move
// while settings.Adversarial holds, before the move's own quality delta is
// applied to slot 0 (spec.md §4.1 step 7 precedes step 8).
//
// effBefore is the state's effects as they stood before this move — the
// same snapshot computeDelta used for the real gain — so the hypothetical
// Excellent/Poor deltas are evaluated against identical buff state.
func rollAdversarialWindow(next craft.State, data catalog.Data, settings craft.Settings, effBefore effects.Effects) craft.State {
	saved := next.MissingQuality[2]
	next.MissingQuality[2] = next.MissingQuality[1]
	next.MissingQuality[1] = next.MissingQuality[0]

	rollback := craft.SatSub16(saved, next.PrevDeltas[0].ToPoor)
	rollback = craft.SatSub16(rollback, next.PrevDeltas[1].ToExcellent)
	if rollback > next.MissingQuality[0] {
		next.MissingQuality[0] = rollback
	}

	next.PrevDeltas[1] = next.PrevDeltas[0]
	next.PrevDeltas[0] = craft.QualityDelta{
		ToExcellent: uint16(qualityPotency(data, effBefore, craft.Excellent, settings)),
		ToPoor:      uint16(qualityPotency(data, effBefore, craft.Poor, settings)),
	}

	return next
}
