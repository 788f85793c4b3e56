// Package catalog defines the closed move enum and the read-only per-move
// data table consulted by the simulator, finish-solver and macro-solver.
//
// The catalog is deliberately data-only: no state, no behavior beyond pure
// lookups. Everything that depends on the *current* simulation state (which
// preconditions hold, what potency a move has this turn) lives in package
// simulate; this package only answers "what does this move look like on
// paper".
package catalog

// Move is a closed enumeration of the atomic actions a plan may use.
// Values are stable and contiguous starting at 0; Count is the number of
// defined moves, used to size dense per-move arrays/bitsets.
type Move uint8

const (
	BasicSynthesis Move = iota
	BasicTouch
	MasterMend
	Observe
	TricksOfTheTrade
	WasteNot
	Veneration
	StandardTouch
	GreatStrides
	Innovation
	WasteNotII
	ByregotsBlessing
	PreciseTouch
	MuscleMemory
	CarefulSynthesis
	Manipulation
	PrudentTouch
	PrudentSynthesis
	FocusedSynthesis
	FocusedTouch
	Reflect
	PreparatoryTouch
	Groundwork
	DelicateSynthesis
	IntensiveSynthesis
	TrainedFinesse
	AdvancedTouch
	ComboRefinedTouch
	TrainedEye
	ImmaculateMend
	TrainedPerfection
	RapidSynthesis
	HastyTouch
	StandardSynthesis

	// Count is the number of moves in the closed enum; keep it last.
	Count
)

// String returns the canonical name of a move. Unknown values (m >= Count)
// return "unknown".
func (m Move) String() string {
	if int(m) < len(moveNames) {
		return moveNames[m]
	}

	return "unknown"
}

var moveNames = [Count]string{
	BasicSynthesis:     "BasicSynthesis",
	BasicTouch:         "BasicTouch",
	MasterMend:         "MasterMend",
	Observe:            "Observe",
	TricksOfTheTrade:   "TricksOfTheTrade",
	WasteNot:           "WasteNot",
	Veneration:         "Veneration",
	StandardTouch:      "StandardTouch",
	GreatStrides:       "GreatStrides",
	Innovation:         "Innovation",
	WasteNotII:         "WasteNotII",
	ByregotsBlessing:   "ByregotsBlessing",
	PreciseTouch:       "PreciseTouch",
	MuscleMemory:       "MuscleMemory",
	CarefulSynthesis:   "CarefulSynthesis",
	Manipulation:       "Manipulation",
	PrudentTouch:       "PrudentTouch",
	PrudentSynthesis:   "PrudentSynthesis",
	FocusedSynthesis:   "FocusedSynthesis",
	FocusedTouch:       "FocusedTouch",
	Reflect:            "Reflect",
	PreparatoryTouch:   "PreparatoryTouch",
	Groundwork:         "Groundwork",
	DelicateSynthesis:  "DelicateSynthesis",
	IntensiveSynthesis: "IntensiveSynthesis",
	TrainedFinesse:     "TrainedFinesse",
	AdvancedTouch:      "AdvancedTouch",
	ComboRefinedTouch:  "ComboRefinedTouch",
	TrainedEye:         "TrainedEye",
	ImmaculateMend:     "ImmaculateMend",
	TrainedPerfection:  "TrainedPerfection",
	RapidSynthesis:     "RapidSynthesis",
	HastyTouch:         "HastyTouch",
	StandardSynthesis:  "StandardSynthesis",
}

// ComboToken identifies what a move leaves behind for the next move's combo
// gate to check, or what a move requires of the previous one.
type ComboToken uint8

const (
	// ComboNone marks "no token" both as "this move requires no combo" and
	// "this move leaves no token behind".
	ComboNone ComboToken = iota

	// SynthesisBegin is the synthetic token present only on the initial
	// state, before any move has been applied. Moves gated on it (e.g.
	// MuscleMemory, Reflect, TrainedEye) can only ever be the first move
	// of a plan.
	SynthesisBegin

	BasicTouchCombo
	StandardTouchCombo
	ObserveCombo
)

// Buff names one of the tick-down counters in the effects vector that a
// move's own effect grants. BuffNone means the move grants no counter buff
// (it may still have other special-cased effects; see simulate).
type Buff uint8

const (
	BuffNone Buff = iota
	BuffWasteNot
	BuffVeneration
	BuffInnovation
	BuffGreatStrides
	BuffMuscleMemory
	BuffManipulation
)
