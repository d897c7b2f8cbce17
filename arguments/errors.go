package arguments

import "errors"

var (
	// ErrMissingProgram is returned when there are no tokens or the first one
	// looks like a flag.
	ErrMissingProgram = errors.New("expected a name as the first argument")
	// ErrEmptyFlagName is returned for a bare "--".
	ErrEmptyFlagName = errors.New(`expected a name right after "--"`)
	// ErrEmptyNegatedFlagName is returned for a bare "--no-" that receives no value.
	ErrEmptyNegatedFlagName = errors.New(`expected a name right after "--no-"`)
)
