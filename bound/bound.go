// Package bound computes a forward relaxation upper bound on the total
// quality a craft.State could still end with (spec.md §4.4). It plays the
// same admissible-bound role for the macro solver's maximization search
// that a Held-Karp 1-tree lower bound plays for branch-and-bound TSP: a
// state whose bound does not exceed the current incumbent's quality can
// be pruned without ever simulating it to completion.
package bound

import (
	"github.com/katalvlaran/rotoplan/catalog"
	"github.com/katalvlaran/rotoplan/craft"
)

// Config controls the iterative tightening pass. A compact, deterministic
// default works well as a drop-in bound; increasing MaxIter can only
// tighten the result, never loosen it, at the cost of a few more passes
// over the allowed-action list.
type Config struct {
	// MaxIter bounds how many "this buff must be paid for before it pays
	// off" overhead assumptions are tried. Each pass produces its own
	// independently admissible bound; UpperBound returns the tightest
	// (smallest) one seen, mirroring the way tsp.OneTreeLowerBound keeps
	// the best dual value across its subgradient iterations.
	MaxIter int
}

// DefaultConfig mirrors the teacher's "compact, deterministic default":
// one relaxation pass per stackable buff this module prices in
// (innovation, great strides, waste_not), plus the zero-overhead pass.
func DefaultConfig() Config {
	return Config{MaxIter: 4}
}

// overheadMoves lists, in the order UpperBound prices them in, the
// buff-granting moves each refinement pass additionally assumes a real
// plan must pay for once before reaping their benefit. Pass 0 assumes
// none of them (the loosest, always-valid bound); pass k assumes the
// first k of them.
var overheadMoves = [...]catalog.Move{
	catalog.Innovation,
	catalog.GreatStrides,
	catalog.WasteNot,
}

// unconstrainedUses stands in for "this resource never runs out" when a
// move's effective cost relaxes to zero (e.g. a zero-durability-cost
// quality move under the best-case waste_not assumption): the final
// saturating add to MaxQuality makes the exact cap irrelevant.
const unconstrainedUses = 1 << 20

// UpperBound returns an admissible upper bound on the total quality state
// could still end with, under settings. It never under-estimates: a
// branch-and-bound search may safely prune any state whose bound does not
// exceed the current incumbent's achieved quality.
func UpperBound(state craft.State, settings craft.Settings, cfg Config) uint16 {
	if cfg.MaxIter <= 0 {
		cfg.MaxIter = 1
	}
	if cfg.MaxIter > len(overheadMoves)+1 {
		cfg.MaxIter = len(overheadMoves) + 1
	}

	bestMove, bestGain, ok := bestQualityMove(settings)
	if !ok {
		return state.AchievedQuality(settings)
	}
	data := catalog.Get(bestMove)

	best := relax(state, settings, data, bestGain, 0)
	for pass := 1; pass < cfg.MaxIter; pass++ {
		candidate := relax(state, settings, data, bestGain, pass)
		if candidate < best {
			best = candidate
		}
	}

	return best
}

// bestQualityMove picks the allowed move with the highest idealized
// per-use quality gain: Excellent condition, innovation and great strides
// both active, inner_quiet maxed at 10 — the best any move's quality
// potency could ever be scaled by. ok is false if no allowed move touches
// quality at all.
func bestQualityMove(settings craft.Settings) (move catalog.Move, gain uint32, ok bool) {
	for _, m := range settings.AllowedActions.Moves() {
		data := catalog.Get(m)
		if data.QualityPotency == 0 {
			continue
		}

		g := idealQualityGain(data, settings)
		if !ok || g > gain {
			move, gain, ok = m, g, true
		}
	}

	return move, gain, ok
}

// idealQualityGain computes a move's best-case quality gain: the richest
// condition (Excellent, ×4), both stacking percentage buffs active
// (innovation +50, great strides +100), and inner_quiet at its cap (10,
// ×2.0). No real plan can ever do better than this for a single use of
// this move.
func idealQualityGain(data catalog.Data, settings craft.Settings) uint32 {
	percent := data.QualityPotency*4 + 50 + 100
	raw := settings.BaseQuality * percent / 100
	gain := raw * (100 + 10*10) / 100
	if gain < 0 {
		return 0
	}

	return uint32(gain)
}

// relax computes one admissible bound: durability and CP budgets are
// spent entirely on repeating data (the best quality move found), after
// first deducting the one-time cost of the first `pass` overhead moves
// from the CP budget — a real plan that wants innovation, great strides
// or waste_not active must have paid for them at least once.
func relax(state craft.State, settings craft.Settings, data catalog.Data, gain uint32, pass int) uint16 {
	if state.Durability <= 0 {
		return state.AchievedQuality(settings)
	}

	cpBudget := int(state.CP)
	for i := 0; i < pass && i < len(overheadMoves); i++ {
		cpBudget -= catalog.Get(overheadMoves[i]).CPCost
	}
	if cpBudget < 0 {
		cpBudget = 0
	}

	durBudget := int(state.Durability)

	// Best case: waste_not halves durability cost, Pliant halves CP cost.
	durCost := data.BaseDurabilityCost / 2
	cpCost := data.CPCost / 2

	durUses := unconstrainedUses
	if durCost > 0 {
		durUses = durBudget / durCost
	}
	cpUses := unconstrainedUses
	if cpCost > 0 {
		cpUses = cpBudget / cpCost
	}

	uses := durUses
	if cpUses < uses {
		uses = cpUses
	}
	if uses < 0 {
		uses = 0
	}

	totalGain := uint32(uses) * gain
	if totalGain > uint32(settings.MaxQuality) {
		totalGain = uint32(settings.MaxQuality)
	}

	return craft.SatAdd16(state.AchievedQuality(settings), uint16(totalGain), settings.MaxQuality)
}
