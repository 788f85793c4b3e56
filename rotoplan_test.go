package rotoplan_test

import (
	"context"
	"errors"
	"testing"

	"github.com/katalvlaran/rotoplan"
	"github.com/katalvlaran/rotoplan/catalog"
	"github.com/katalvlaran/rotoplan/craft"
	"github.com/katalvlaran/rotoplan/simulate"
	"github.com/stretchr/testify/require"
)

func baseSettings() craft.Settings {
	return craft.Settings{
		MaxCP:          500,
		MaxDurability:  70,
		MaxProgress:    1500,
		MaxQuality:     2500,
		BaseProgress:   100,
		BaseQuality:    100,
		JobLevel:       90,
		AllowedActions: catalog.All(),
	}
}

func TestSimulateInitial_MatchesCraftNew(t *testing.T) {
	settings := baseSettings()
	require.Equal(t, craft.New(settings), rotoplan.SimulateInitial(settings))
}

func TestSimulateStep_DelegatesToSimulateApply(t *testing.T) {
	settings := baseSettings()
	state := rotoplan.SimulateInitial(settings)

	got, gotErr := rotoplan.SimulateStep(state, catalog.BasicSynthesis, craft.Normal, settings)
	want, wantErr := simulate.Apply(state, catalog.BasicSynthesis, craft.Normal, settings)

	require.Equal(t, want, got)
	require.Equal(t, wantErr, gotErr)
}

func TestSimulatePlan_FailingStepLeavesStateUnchangedAndIsRecorded(t *testing.T) {
	settings := baseSettings()
	settings.AllowedActions = catalog.Of(catalog.BasicSynthesis)

	plan := []catalog.Move{catalog.BasicSynthesis, catalog.BasicTouch, catalog.BasicSynthesis}
	final, failures := rotoplan.SimulatePlan(settings, plan)

	require.Len(t, failures, 1)
	require.Equal(t, 1, failures[0].Index)
	require.Equal(t, catalog.BasicTouch, failures[0].Move)
	require.True(t, errors.Is(failures[0], simulate.ErrMoveNotEnabled))

	expected, err := simulate.Apply(rotoplan.SimulateInitial(settings), catalog.BasicSynthesis, craft.Normal, settings)
	require.NoError(t, err)
	expected, err = simulate.Apply(expected, catalog.BasicSynthesis, craft.Normal, settings)
	require.NoError(t, err)

	require.Equal(t, expected, final, "the rejected BasicTouch step must not have mutated the replayed state")
}

func TestSimulatePlan_EmptyPlanReturnsInitialState(t *testing.T) {
	settings := baseSettings()
	final, failures := rotoplan.SimulatePlan(settings, nil)

	require.Empty(t, failures)
	require.Equal(t, rotoplan.SimulateInitial(settings), final)
}

func TestSolve_ReturnsAFinishablePlan(t *testing.T) {
	settings := baseSettings()
	settings.AllowedActions = catalog.Of(
		catalog.BasicSynthesis,
		catalog.CarefulSynthesis,
		catalog.BasicTouch,
		catalog.MasterMend,
		catalog.Veneration,
		catalog.Innovation,
	)

	plan, err := rotoplan.Solve(context.Background(), settings, false, nil)
	require.NoError(t, err)
	require.NotEmpty(t, plan)

	final, failures := rotoplan.SimulatePlan(settings, plan)
	require.Empty(t, failures, "a plan the solver returns must replay without any rejected step")
	require.True(t, final.Success())
}

func TestSolve_UnfinishableSettingsReturnsNilWithoutError(t *testing.T) {
	settings := baseSettings()
	settings.AllowedActions = catalog.Of(catalog.Observe)

	plan, err := rotoplan.Solve(context.Background(), settings, false, nil)
	require.NoError(t, err)
	require.Nil(t, plan)
}

func TestSolve_CancelReturnsImmediatelyWithoutError(t *testing.T) {
	settings := baseSettings()

	_, err := rotoplan.Solve(context.Background(), settings, false, func() bool { return true })
	require.NoError(t, err)
}
