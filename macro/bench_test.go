package macro_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/rotoplan/catalog"
	"github.com/katalvlaran/rotoplan/craft"
	"github.com/katalvlaran/rotoplan/macro"
)

// benchSettings mirrors smallSettings but is kept separate so the benchmark
// can be tuned (a larger search space) independently of the property tests.
func benchSettings() craft.Settings {
	return craft.Settings{
		MaxCP:         300,
		MaxDurability: 60,
		MaxProgress:   400,
		MaxQuality:    800,
		BaseProgress:  100,
		BaseQuality:   100,
		JobLevel:      90,
		AllowedActions: catalog.Of(
			catalog.BasicSynthesis,
			catalog.CarefulSynthesis,
			catalog.BasicTouch,
			catalog.StandardTouch,
			catalog.MasterMend,
			catalog.Veneration,
			catalog.Innovation,
			catalog.WasteNot,
			catalog.Manipulation,
		),
	}
}

// BenchmarkSolve_SerialSearch measures the best-first expansion loop end to
// end: pop, expand (simulate + finish feasibility + bound), commit.
func BenchmarkSolve_SerialSearch(b *testing.B) {
	settings := benchSettings()
	opts := macro.DefaultOptions()

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := macro.Solve(context.Background(), settings, opts); err != nil {
			b.Fatalf("Solve failed: %v", err)
		}
	}
}

// BenchmarkSolveParallel_FourWorkers measures the same search with the
// worker-group expansion mode, to gauge the cost of the added lock
// contention over commit/popNext against the serial baseline above.
func BenchmarkSolveParallel_FourWorkers(b *testing.B) {
	settings := benchSettings()
	opts := macro.DefaultOptions()

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := macro.SolveParallel(context.Background(), settings, opts, 4); err != nil {
			b.Fatalf("SolveParallel failed: %v", err)
		}
	}
}
