package solvemetrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rotoplan/telemetry/solvemetrics"
)

func TestMetrics_RegisterAndIncrement(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := solvemetrics.New()
	require.NoError(t, m.Register(reg))

	m.IncNodesExpanded()
	m.IncNodesExpanded()
	m.IncNodesPrunedFinish()
	m.IncNodesPrunedBound()
	m.IncIncumbentImprovements()
	m.SetVisitedSetSize(7)

	require.Equal(t, float64(2), testutil.ToFloat64(m.NodesExpanded))
	require.Equal(t, float64(1), testutil.ToFloat64(m.NodesPrunedFinish))
	require.Equal(t, float64(1), testutil.ToFloat64(m.NodesPrunedBound))
	require.Equal(t, float64(1), testutil.ToFloat64(m.IncumbentImprovements))
	require.Equal(t, float64(7), testutil.ToFloat64(m.VisitedSetSize))
}

func TestMetrics_RegisterTwiceFails(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := solvemetrics.New()
	require.NoError(t, m.Register(reg))

	other := solvemetrics.New()
	// Registering a second Metrics set against the same registry collides
	// on metric names, the same way any two unrelated Prometheus collectors
	// would.
	require.Error(t, other.Register(reg))
}

func TestMetrics_NilReceiverIsANoOp(t *testing.T) {
	var m *solvemetrics.Metrics

	require.NoError(t, m.Register(prometheus.NewRegistry()))
	require.NotPanics(t, func() {
		m.IncNodesExpanded()
		m.IncNodesPrunedFinish()
		m.IncNodesPrunedBound()
		m.IncIncumbentImprovements()
		m.SetVisitedSetSize(3)
	})
}
