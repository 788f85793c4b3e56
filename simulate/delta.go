package simulate

import (
	"github.com/katalvlaran/rotoplan/catalog"
	"github.com/katalvlaran/rotoplan/craft"
	"github.com/katalvlaran/rotoplan/effects"
)

// computeDelta derives cp_cost, durability_cost, progress_gain and
// quality_gain from a move's catalog data, the state's effects as they
// stand before this move is applied, and the rolled condition (spec.md
// §4.1 step 2). It never mutates state.
func computeDelta(data catalog.Data, state craft.State, condition craft.Condition, settings craft.Settings, move catalog.Move) (cpCost uint16, durCost int8, progressGain uint16, qualityGain uint16) {
	eff := state.Effects

	cp := data.CPCost
	if condition == craft.Pliant {
		cp /= 2
	}
	cpCost = uint16(cp)

	dur := data.BaseDurabilityCost
	if eff.WasteNot() > 0 {
		dur /= 2
	}
	if condition == craft.Sturdy {
		dur /= 2
	}
	if eff.TrainedPerfection() == effects.Active {
		dur = 0
	}
	durCost = int8(dur)

	progressGain = uint16(progressPotency(data, eff, settings))
	if move == catalog.TrainedEye {
		progressGain = state.MissingProgress
	}

	qualityGain = uint16(qualityPotency(data, eff, condition, settings))

	return cpCost, durCost, progressGain, qualityGain
}

// progressPotency computes a move's progress gain before any TrainedEye
// override: base_progress scaled by the move's potency percent, bumped by
// veneration (+50) and muscle_memory (+100) while either is active — the
// two stack additively, same as muscle_memory and veneration both being
// active for a single move (original_source/tests/effect_tests.rs
// test_muscle_memory_veneration).
func progressPotency(data catalog.Data, eff effects.Effects, settings craft.Settings) int {
	if data.ProgressPotency == 0 {
		return 0
	}
	percent := data.ProgressPotency
	if eff.Veneration() > 0 {
		percent += 50
	}
	if eff.MuscleMemory() > 0 {
		percent += 100
	}
	gain := settings.BaseProgress * percent / 100
	if gain < 0 {
		return 0
	}

	return gain
}

// qualityPotency computes a move's quality gain: condition scales the raw
// potency first, innovation and great strides add to it in percentage
// points, and inner_quiet scales the result multiplicatively last. The
// adversarial window (adversarial.go) calls this same formula with a
// hypothetical condition to derive its rolling deltas, against the
// effects as they stood before this move — never the real, rolled
// condition twice.
func qualityPotency(data catalog.Data, eff effects.Effects, condition craft.Condition, settings craft.Settings) int {
	if data.QualityPotency == 0 {
		return 0
	}
	percent := data.QualityPotency
	switch condition {
	case craft.Good:
		percent = percent * 3 / 2
	case craft.Excellent:
		percent = percent * 4
	case craft.Poor:
		percent = percent / 2
	}
	if eff.Innovation() > 0 {
		percent += 50
	}
	if eff.GreatStrides() > 0 {
		percent += 100
	}
	raw := settings.BaseQuality * percent / 100
	gain := raw * (100 + 10*eff.InnerQuiet()) / 100
	if gain < 0 {
		return 0
	}

	return gain
}
