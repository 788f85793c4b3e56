package simulate

import "errors"

// The sentinel errors Apply returns. Callers distinguish them with
// errors.Is, matching the teacher's tsp package error taxonomy rather than
// ad hoc string errors.
var (
	// ErrNotInProgress is returned when Apply is called on a state that has
	// already cleared progress or run out of durability.
	ErrNotInProgress = errors.New("simulate: state is not in progress")

	// ErrMoveNotEnabled covers both settings.AllowedActions gating and a
	// job-level floor the move requires, and also the Prudent moves'
	// outright rejection while waste_not is active: in every case the move
	// simply isn't usable right now, for a reason the caller didn't ask to
	// distinguish further.
	ErrMoveNotEnabled = errors.New("simulate: move not enabled")

	// ErrInsufficientResource is returned when the move's (possibly
	// Pliant-discounted) CP cost exceeds the state's CP.
	ErrInsufficientResource = errors.New("simulate: insufficient cp")

	// ErrInsufficientDurability is returned only for Groundwork, the one
	// move that refuses to be used rather than partially applying against
	// durability it cannot pay.
	ErrInsufficientDurability = errors.New("simulate: insufficient durability")

	// ErrComboUnmet is returned when a move requires a combo token the
	// previous move did not leave behind.
	ErrComboUnmet = errors.New("simulate: combo requirement unmet")

	// ErrConditionUnmet is returned when a move requires Good or Excellent
	// and the active condition is neither.
	ErrConditionUnmet = errors.New("simulate: condition requirement unmet")

	// ErrSingleUseExhausted is returned when TrainedPerfection is used
	// outside its Available state.
	ErrSingleUseExhausted = errors.New("simulate: single-use move already used")

	// ErrInnerQuietFloorUnmet is returned when ByregotsBlessing is used at
	// inner_quiet == 0, or TrainedFinesse is used at inner_quiet < 10.
	ErrInnerQuietFloorUnmet = errors.New("simulate: inner quiet floor unmet")
)
