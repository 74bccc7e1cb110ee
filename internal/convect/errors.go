package convect

import "errors"

// Domain errors for solver configuration.
var (
	// ErrEmptyField indicates an initial field with no samples.
	ErrEmptyField = errors.New("convect: field must contain at least one sample")

	// ErrInvalidSpacing indicates a non-positive grid spacing.
	ErrInvalidSpacing = errors.New("convect: grid spacing must be positive")

	// ErrInvalidTimestep indicates a non-positive timestep.
	ErrInvalidTimestep = errors.New("convect: timestep must be positive")

	// ErrInvalidSteps indicates a negative step count.
	ErrInvalidSteps = errors.New("convect: step count must be non-negative")

	// ErrUnknownBoundary indicates an unrecognized boundary mode name.
	ErrUnknownBoundary = errors.New("convect: unknown boundary mode")
)
