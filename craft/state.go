package craft

import (
	"github.com/katalvlaran/rotoplan/catalog"
	"github.com/katalvlaran/rotoplan/effects"
)

// QualityDelta holds the quality a move would have produced under
// Excellent and under Poor, evaluated against the state just before the
// move. It backs the adversarial rolling window (spec.md §4.2).
type QualityDelta struct {
	ToExcellent uint16
	ToPoor      uint16
}

// State is the full, value-typed simulation state of spec.md §3. States
// are never aliased: every transition in package simulate returns a new
// State and leaves its input untouched (spec.md "Lifecycle"). Identity for
// deduplication (the macro solver's visited set) is structural equality,
// which a plain comparable struct gives for free — no custom Hash/Equal
// needed, following the teacher's preference for plain comparable value
// types over pointer-heavy graphs.
type State struct {
	CP uint16

	// Durability goes non-positive when a move exhausts it, and Apply
	// returns that state as terminal; the type is int8 so
	// spec.md's "i8" bound is represented exactly rather than clamped
	// into an unsigned type that could never show the sign.
	Durability int8

	MissingProgress uint16

	// MissingQuality is the three-slot adversarial window; slot 0 is the
	// live value. In non-adversarial mode only slot 0 is meaningful.
	MissingQuality [3]uint16

	// PrevDeltas is the two-step rolling history feeding the adversarial
	// rule.
	PrevDeltas [2]QualityDelta

	Effects effects.Effects
	Combo   catalog.ComboToken
}

// New constructs the initial state for a solve, per spec.md §3's
// "Lifecycle": cp/durability/progress start at their settings maxima,
// missing_quality[0] starts at max_quality - initial_quality (saturating),
// and combo starts at the synthetic synthesis-begin token.
func New(settings Settings) State {
	return State{
		CP:              settings.MaxCP,
		Durability:      settings.MaxDurability,
		MissingProgress: settings.MaxProgress,
		MissingQuality:  [3]uint16{satSub16(settings.MaxQuality, settings.InitialQuality), 0, 0},
		Combo:           catalog.SynthesisBegin,
	}
}

// InProgress reports whether moves may still be applied to s: progress is
// not yet cleared and durability remains positive (spec.md §3 invariant).
func (s State) InProgress() bool {
	return s.MissingProgress > 0 && s.Durability > 0
}

// Terminal is the complement of InProgress.
func (s State) Terminal() bool { return !s.InProgress() }

// Success reports whether a terminal state cleared progress (as opposed to
// running out of durability first).
func (s State) Success() bool {
	return s.Terminal() && s.MissingProgress == 0
}

// AchievedQuality returns max_quality - missing_quality[0], the quantity
// spec.md's scenarios and macro solver both report as "achieved quality".
func (s State) AchievedQuality(settings Settings) uint16 {
	return satSub16(settings.MaxQuality, s.MissingQuality[0])
}

// satSub16 is saturating unsigned subtraction: never underflows below 0.
func satSub16(a, b uint16) uint16 {
	if b > a {
		return 0
	}

	return a - b
}

// satAdd16 is saturating unsigned addition capped at max.
func satAdd16(a, b, max uint16) uint16 {
	sum := uint32(a) + uint32(b)
	if sum > uint32(max) {
		return max
	}

	return uint16(sum)
}

// SatSub16 and SatAdd16 are exported for package simulate, which performs
// the same saturating arithmetic against CP/durability/quality fields that
// live outside this package's own methods.
func SatSub16(a, b uint16) uint16       { return satSub16(a, b) }
func SatAdd16(a, b, max uint16) uint16  { return satAdd16(a, b, max) }

// SatSubI8 saturating-subtracts durability, floored at the type's minimum
// rather than clamped to zero: spec.md explicitly types durability as i8
// and allows it to go non-positive (that is how "terminal-failure" is
// represented) so only overflow below the type's own range is guarded.
func SatSubI8(a, b int8) int8 {
	v := int16(a) - int16(b)
	if v < -128 {
		return -128
	}
	if v > 127 {
		return 127
	}

	return int8(v)
}

// SatAddI8 saturating-adds durability capped at max.
func SatAddI8(a, b, max int8) int8 {
	v := int16(a) + int16(b)
	if v > int16(max) {
		return max
	}
	if v > 127 {
		return 127
	}

	return int8(v)
}
