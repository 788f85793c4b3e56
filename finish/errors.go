package finish

import "errors"

// ErrCannotFinish is returned by FinishSequence when state's CP budget
// does not cover CostToFinish — the craft cannot be completed by the
// nine-sequence repertoire no matter which of them is chosen.
var ErrCannotFinish = errors.New("finish: state cannot be finished within its cp budget")

// ErrTraceInconsistent signals that the memoized cost table and a live
// re-simulation disagree while reconstructing a sequence: a finish-solver
// invariant has been violated (the table was built over a different
// Settings than it is now being traced against).
var ErrTraceInconsistent = errors.New("finish: memo table inconsistent with trace reconstruction")
