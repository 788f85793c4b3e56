// Package craft defines the immutable per-solve Settings, the closed
// Condition enum, and the State value type the simulator operates on
// (spec.md §3). It owns no behavior beyond construction and invariant
// queries; package simulate is where a State is advanced.
package craft

import "github.com/katalvlaran/rotoplan/catalog"

// Settings is immutable for the lifetime of a solve, matching the
// teacher's Options-value discipline (tsp.Options): constructed once,
// passed by value, never mutated in place.
type Settings struct {
	// MaxCP is the resource budget (spec.md: 16-bit non-negative).
	MaxCP uint16

	// MaxDurability bounds durability (spec.md: ≤127, fits int8).
	MaxDurability int8

	// MaxProgress and MaxQuality are the two accumulator targets.
	MaxProgress uint16
	MaxQuality  uint16

	// BaseProgress and BaseQuality are per-move potency multipliers:
	// a move's raw gain is BaseX * potencyPercent / 100.
	BaseProgress int
	BaseQuality  int

	// InitialQuality is pre-credited quality; must be ≤ MaxQuality.
	InitialQuality uint16

	// JobLevel gates level-restricted moves (0-100).
	JobLevel int

	// AllowedActions is the bitset of moves usable in this solve.
	AllowedActions catalog.ActionMask

	// Adversarial enables the three-slot quality rollback of spec.md §4.2.
	Adversarial bool
}

// Valid reports whether s satisfies the invariants spec.md §3 declares for
// Settings (not for State, which has its own narrower invariants checked
// as it evolves).
func (s Settings) Valid() bool {
	if s.MaxDurability < 0 || s.MaxDurability > 127 {
		return false
	}
	if s.InitialQuality > s.MaxQuality {
		return false
	}
	if s.JobLevel < 0 || s.JobLevel > 100 {
		return false
	}

	return true
}
