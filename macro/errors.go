package macro

import "errors"

// ErrInvalidSettings is returned by Solve/SolveParallel when settings fails
// craft.Settings.Valid(), mirroring the rest of the module's
// validate-before-delegate convention (see simulate.Apply's precondition
// block).
var ErrInvalidSettings = errors.New("macro: invalid settings")
