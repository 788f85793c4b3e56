package effects_test

import (
	"testing"

	"github.com/katalvlaran/rotoplan/effects"
	"github.com/stretchr/testify/require"
)

func TestCountersRoundTripAndSaturate(t *testing.T) {
	var e effects.Effects
	e = e.SetWasteNot(3)
	e = e.SetVeneration(4)
	e = e.SetInnovation(2)
	e = e.SetGreatStrides(3)
	e = e.SetMuscleMemory(5)
	e = e.SetManipulation(8)

	require.Equal(t, 3, e.WasteNot())
	require.Equal(t, 4, e.Veneration())
	require.Equal(t, 2, e.Innovation())
	require.Equal(t, 3, e.GreatStrides())
	require.Equal(t, 5, e.MuscleMemory())
	require.Equal(t, 8, e.Manipulation())

	// Saturates at 8, never wraps or goes negative.
	e = e.SetManipulation(100)
	require.Equal(t, 8, e.Manipulation())
	e = e.SetManipulation(-5)
	require.Equal(t, 0, e.Manipulation())
}

func TestTickDownFloorsAtZeroAndLeavesInnerQuietAlone(t *testing.T) {
	var e effects.Effects
	e = e.SetWasteNot(1)
	e = e.SetVeneration(0)
	e = e.SetInnerQuiet(7)
	e = e.SetTrainedPerfection(effects.Active)

	e = e.TickDown()
	require.Equal(t, 0, e.WasteNot())
	require.Equal(t, 0, e.Veneration())
	require.Equal(t, 7, e.InnerQuiet(), "tick-down must not touch inner quiet")
	require.Equal(t, effects.Active, e.TrainedPerfection(), "tick-down must not touch trained perfection")

	e = e.TickDown() // already zero, must not underflow
	require.Equal(t, 0, e.WasteNot())
}

func TestInnerQuietClampsAtTen(t *testing.T) {
	var e effects.Effects
	e = e.SetInnerQuiet(10)
	require.Equal(t, 10, e.InnerQuiet())
	e = e.SetInnerQuiet(15)
	require.Equal(t, 10, e.InnerQuiet())
}

func TestTrainedPerfectionTriState(t *testing.T) {
	var e effects.Effects
	require.Equal(t, effects.Available, e.TrainedPerfection())
	e = e.SetTrainedPerfection(effects.Active)
	require.Equal(t, effects.Active, e.TrainedPerfection())
	e = e.SetTrainedPerfection(effects.Used)
	require.Equal(t, effects.Used, e.TrainedPerfection())
}

func TestFieldsAreIndependentlyAddressable(t *testing.T) {
	var e effects.Effects
	e = e.SetWasteNot(8)
	e = e.SetVeneration(8)
	e = e.SetInnovation(8)
	e = e.SetGreatStrides(8)
	e = e.SetMuscleMemory(8)
	e = e.SetManipulation(8)
	e = e.SetInnerQuiet(10)
	e = e.SetTrainedPerfection(effects.Active)

	e = e.SetVeneration(0)
	require.Equal(t, 8, e.WasteNot())
	require.Equal(t, 0, e.Veneration())
	require.Equal(t, 8, e.Innovation())
	require.Equal(t, 8, e.GreatStrides())
	require.Equal(t, 8, e.MuscleMemory())
	require.Equal(t, 8, e.Manipulation())
	require.Equal(t, 10, e.InnerQuiet())
	require.Equal(t, effects.Active, e.TrainedPerfection())
}
