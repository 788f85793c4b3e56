package bound_test

import (
	"testing"

	"github.com/katalvlaran/rotoplan/bound"
	"github.com/katalvlaran/rotoplan/catalog"
	"github.com/katalvlaran/rotoplan/craft"
	"github.com/katalvlaran/rotoplan/simulate"
	"github.com/stretchr/testify/require"
)

func baseSettings() craft.Settings {
	return craft.Settings{
		MaxCP:          600,
		MaxDurability:  80,
		MaxProgress:    2000,
		MaxQuality:     2000,
		BaseProgress:   100,
		BaseQuality:    100,
		JobLevel:       90,
		AllowedActions: catalog.All(),
	}
}

func TestUpperBound_NeverExceedsMaxQuality(t *testing.T) {
	settings := baseSettings()
	state := craft.New(settings)

	ub := bound.UpperBound(state, settings, bound.DefaultConfig())
	require.LessOrEqual(t, ub, settings.MaxQuality)
}

func TestUpperBound_IsAtLeastAlreadyAchievedQuality(t *testing.T) {
	settings := baseSettings()
	state := craft.New(settings)
	state, err := simulate.Apply(state, catalog.PreparatoryTouch, craft.Normal, settings)
	require.NoError(t, err)

	ub := bound.UpperBound(state, settings, bound.DefaultConfig())
	require.GreaterOrEqual(t, ub, state.AchievedQuality(settings), "the bound can never be below what is already banked")
}

func TestUpperBound_DominatesAnyReachableQuality(t *testing.T) {
	settings := baseSettings()
	state := craft.New(settings)

	ub := bound.UpperBound(state, settings, bound.DefaultConfig())

	plan := []catalog.Move{
		catalog.Innovation,
		catalog.PreparatoryTouch,
		catalog.PreparatoryTouch,
		catalog.PreparatoryTouch,
	}
	cur := state
	for _, mv := range plan {
		var err error
		cur, err = simulate.Apply(cur, mv, craft.Normal, settings)
		require.NoError(t, err)
		if cur.Terminal() {
			break
		}
	}

	require.GreaterOrEqual(t, ub, cur.AchievedQuality(settings), "no real plan may ever beat the admissible bound computed before it ran")
}

func TestUpperBound_ZeroDurabilityBoundsToAchievedQuality(t *testing.T) {
	settings := baseSettings()
	state := craft.New(settings)
	state.Durability = 0

	ub := bound.UpperBound(state, settings, bound.DefaultConfig())
	require.Equal(t, state.AchievedQuality(settings), ub)
}

func TestUpperBound_MoreRemainingDurabilityNeverTightensTheBound(t *testing.T) {
	settings := baseSettings()
	low := craft.New(settings)
	low.Durability = 10

	high := craft.New(settings)
	high.Durability = 80

	ubLow := bound.UpperBound(low, settings, bound.DefaultConfig())
	ubHigh := bound.UpperBound(high, settings, bound.DefaultConfig())
	require.GreaterOrEqual(t, ubHigh, ubLow, "more remaining durability can only raise or preserve the bound")
}

func TestUpperBound_MoreIterationsNeverLoosensTheBound(t *testing.T) {
	settings := baseSettings()
	state := craft.New(settings)

	loose := bound.UpperBound(state, settings, bound.Config{MaxIter: 1})
	tight := bound.UpperBound(state, settings, bound.DefaultConfig())
	require.LessOrEqual(t, tight, loose, "additional refinement passes may only tighten the bound")
}

func TestUpperBound_NoQualityMovesAllowedFallsBackToAchievedQuality(t *testing.T) {
	settings := baseSettings()
	settings.AllowedActions = catalog.Of(catalog.BasicSynthesis, catalog.MasterMend)
	state := craft.New(settings)

	ub := bound.UpperBound(state, settings, bound.DefaultConfig())
	require.Equal(t, state.AchievedQuality(settings), ub)
}

func TestUpperBound_IsDeterministic(t *testing.T) {
	settings := baseSettings()
	state := craft.New(settings)

	a := bound.UpperBound(state, settings, bound.DefaultConfig())
	b := bound.UpperBound(state, settings, bound.DefaultConfig())
	require.Equal(t, a, b)
}
