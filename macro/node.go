package macro

import (
	"github.com/katalvlaran/rotoplan/catalog"
	"github.com/katalvlaran/rotoplan/craft"
)

// searchNode is one frontier entry: a reached State, the move list that
// reached it, and the cumulative time cost of that move list (spec.md §4.5
// tie-break). It is the payload pqueue.Item.Value carries.
type searchNode struct {
	state    craft.State
	moves    []catalog.Move
	timeCost int
}

// childResult is what computeChildren produces for one legal move out of a
// node, before any shared state (visited set, queue, incumbent) is touched —
// so it can be computed free of locking even when multiple nodes are
// expanded concurrently (see parallel.go).
type childResult struct {
	child        craft.State
	moves        []catalog.Move
	timeCost     int
	bound        uint16
	prunedFinish bool
}

// producesQuality reports whether m ever touches missing_quality, the
// predicate spec.md §4.5's backload mode masks out once a progress move has
// landed.
func producesQuality(m catalog.Move) bool {
	return catalog.Get(m).QualityPotency > 0
}

// better implements spec.md §4.5's tie-break: strictly higher quality wins
// outright; among equal quality, strictly smaller time cost wins; among
// those, strictly fewer moves wins.
func better(quality uint16, timeCost, moveCount int, bestQuality uint16, bestTime, bestMoveCount int) bool {
	if quality != bestQuality {
		return quality > bestQuality
	}
	if timeCost != bestTime {
		return timeCost < bestTime
	}

	return moveCount < bestMoveCount
}
