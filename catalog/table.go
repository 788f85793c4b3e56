package catalog

// Data is the read-only per-move record exposed by Get. Potencies are
// percentages of the settings' base_progress / base_quality multipliers
// (spec.md §3): a ProgressPotency of 150 means this move, under Normal
// condition with no active buffs, drives progress by
// base_progress * 150 / 100.
//
// Moves whose behavior cannot be expressed as (cost, potency, buff) alone —
// MasterMend, TricksOfTheTrade, ImmaculateMend, ByregotsBlessing,
// TrainedPerfection, Manipulation's self-reset, TrainedEye's instant
// completion — are still described here for cost/gating purposes; their
// extra one-off effect is switch-cased in package simulate, exactly as
// spec.md §4.1 step 13 prose special-cases them.
type Data struct {
	// CPCost is the base resource cost before Pliant/waste-adjacent
	// reductions are applied by the simulator.
	CPCost int

	// BaseDurabilityCost is the base durability cost before waste-not /
	// Sturdy / trained-perfection reductions.
	BaseDurabilityCost int

	// ProgressPotency and QualityPotency are percentages of
	// Settings.BaseProgress / Settings.BaseQuality. Zero means the move
	// does not touch that accumulator at all (distinct from "touches it
	// for zero", which never happens in this catalog).
	ProgressPotency int
	QualityPotency  int

	// ComboIn, if not ComboNone, is the token the previous move must have
	// produced; ComboOut, if not ComboNone, is the token this move leaves
	// for the next one.
	ComboIn  ComboToken
	ComboOut ComboToken

	// Buff, if not BuffNone, names the effects-vector counter this move's
	// own use grants, and BuffBaseDuration is its duration before the
	// Pliant +2 bonus.
	Buff             Buff
	BuffBaseDuration int

	// TimeCost is consulted only for tie-breaking between equal-quality
	// plans (spec.md §4.5 tie-break); it never affects feasibility.
	TimeCost int

	// RequiresGoodOrExcellent gates IntensiveSynthesis, PreciseTouch and
	// TricksOfTheTrade: usable only when the active condition is Good or
	// Excellent.
	RequiresGoodOrExcellent bool

	// MinJobLevel gates moves unlocked late (Settings.JobLevel must be ≥
	// this). Zero means always unlocked.
	MinJobLevel int

	// RejectedDuringWasteNot marks PrudentTouch/PrudentSynthesis: these
	// are refused outright (not merely un-discounted) while waste_not is
	// active.
	RejectedDuringWasteNot bool

	// RequiresInnerQuietPositive gates ByregotsBlessing.
	RequiresInnerQuietPositive bool

	// RequiresInnerQuietFull gates TrainedFinesse (inner_quiet == 10).
	RequiresInnerQuietFull bool

	// InnerQuietBonusTwo marks the moves that grant +2 inner quiet instead
	// of +1 on a successful quality gain (spec.md §4.1 step 8): Reflect,
	// PreciseTouch, PreparatoryTouch, ComboRefinedTouch.
	InnerQuietBonusTwo bool

	// SingleUse marks TrainedPerfection: usable only while its tri-state
	// flag is Available.
	SingleUse bool
}

// table is indexed by Move; see Get.
var table = [Count]Data{
	BasicSynthesis: {CPCost: 0, BaseDurabilityCost: 10, ProgressPotency: 120, TimeCost: 3},

	BasicTouch: {CPCost: 18, BaseDurabilityCost: 10, QualityPotency: 100,
		ComboOut: BasicTouchCombo, TimeCost: 3},

	MasterMend: {CPCost: 88, BaseDurabilityCost: 0, TimeCost: 3},

	Observe: {CPCost: 7, BaseDurabilityCost: 0, ComboOut: ObserveCombo, TimeCost: 3},

	TricksOfTheTrade: {CPCost: 0, BaseDurabilityCost: 0, RequiresGoodOrExcellent: true, TimeCost: 3},

	WasteNot: {CPCost: 56, BaseDurabilityCost: 0, Buff: BuffWasteNot, BuffBaseDuration: 4, TimeCost: 3},

	Veneration: {CPCost: 18, BaseDurabilityCost: 0, Buff: BuffVeneration, BuffBaseDuration: 4, TimeCost: 3},

	StandardTouch: {CPCost: 32, BaseDurabilityCost: 10, QualityPotency: 125,
		ComboIn: BasicTouchCombo, ComboOut: StandardTouchCombo, TimeCost: 3},

	GreatStrides: {CPCost: 32, BaseDurabilityCost: 0, Buff: BuffGreatStrides, BuffBaseDuration: 3, TimeCost: 3},

	Innovation: {CPCost: 18, BaseDurabilityCost: 0, Buff: BuffInnovation, BuffBaseDuration: 4, TimeCost: 3},

	WasteNotII: {CPCost: 98, BaseDurabilityCost: 0, Buff: BuffWasteNot, BuffBaseDuration: 8, TimeCost: 3},

	ByregotsBlessing: {CPCost: 24, BaseDurabilityCost: 10, QualityPotency: 100,
		RequiresInnerQuietPositive: true, TimeCost: 3},

	PreciseTouch: {CPCost: 18, BaseDurabilityCost: 10, QualityPotency: 150,
		RequiresGoodOrExcellent: true, InnerQuietBonusTwo: true, TimeCost: 3},

	MuscleMemory: {CPCost: 6, BaseDurabilityCost: 10, ProgressPotency: 300,
		ComboIn: SynthesisBegin, Buff: BuffMuscleMemory, BuffBaseDuration: 5, TimeCost: 3},

	CarefulSynthesis: {CPCost: 7, BaseDurabilityCost: 10, ProgressPotency: 150, TimeCost: 3},

	Manipulation: {CPCost: 96, BaseDurabilityCost: 0, Buff: BuffManipulation, BuffBaseDuration: 8, TimeCost: 3},

	PrudentTouch: {CPCost: 25, BaseDurabilityCost: 5, QualityPotency: 100,
		RejectedDuringWasteNot: true, TimeCost: 3},

	PrudentSynthesis: {CPCost: 18, BaseDurabilityCost: 10, ProgressPotency: 180,
		RejectedDuringWasteNot: true, TimeCost: 3},

	FocusedSynthesis: {CPCost: 5, BaseDurabilityCost: 10, ProgressPotency: 200,
		ComboIn: ObserveCombo, TimeCost: 3},

	FocusedTouch: {CPCost: 18, BaseDurabilityCost: 10, QualityPotency: 150,
		ComboIn: ObserveCombo, TimeCost: 3},

	Reflect: {CPCost: 6, BaseDurabilityCost: 10, QualityPotency: 300,
		ComboIn: SynthesisBegin, InnerQuietBonusTwo: true, TimeCost: 3},

	PreparatoryTouch: {CPCost: 40, BaseDurabilityCost: 20, QualityPotency: 200,
		InnerQuietBonusTwo: true, TimeCost: 3},

	Groundwork: {CPCost: 18, BaseDurabilityCost: 20, ProgressPotency: 300, TimeCost: 3},

	DelicateSynthesis: {CPCost: 32, BaseDurabilityCost: 10, ProgressPotency: 100, QualityPotency: 100, TimeCost: 3},

	IntensiveSynthesis: {CPCost: 6, BaseDurabilityCost: 10, ProgressPotency: 250,
		RequiresGoodOrExcellent: true, TimeCost: 3},

	TrainedFinesse: {CPCost: 32, BaseDurabilityCost: 0, QualityPotency: 100,
		RequiresInnerQuietFull: true, MinJobLevel: 90, TimeCost: 3},

	AdvancedTouch: {CPCost: 46, BaseDurabilityCost: 10, QualityPotency: 150,
		ComboIn: StandardTouchCombo, TimeCost: 3},

	ComboRefinedTouch: {CPCost: 24, BaseDurabilityCost: 10, QualityPotency: 200,
		ComboIn: ObserveCombo, InnerQuietBonusTwo: true, MinJobLevel: 92, TimeCost: 3},

	TrainedEye: {CPCost: 250, BaseDurabilityCost: 0, ComboIn: SynthesisBegin, MinJobLevel: 80, TimeCost: 3},

	ImmaculateMend: {CPCost: 112, BaseDurabilityCost: 0, MinJobLevel: 86, TimeCost: 3},

	TrainedPerfection: {CPCost: 4, BaseDurabilityCost: 0, SingleUse: true, MinJobLevel: 85, TimeCost: 3},

	RapidSynthesis: {CPCost: 0, BaseDurabilityCost: 10, ProgressPotency: 500, TimeCost: 3},

	HastyTouch: {CPCost: 0, BaseDurabilityCost: 10, QualityPotency: 100, TimeCost: 3},

	StandardSynthesis: {CPCost: 15, BaseDurabilityCost: 10, ProgressPotency: 180, TimeCost: 3},
}

// Get returns the static data for m. Callers must only pass values in
// [0, Count); the table is dense and unchecked for speed, matching the
// teacher's "closed enum, switch-on-tag, no vtables" discipline (spec.md §9).
func Get(m Move) Data {
	return table[m]
}
