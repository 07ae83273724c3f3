package engine

import "errors"

// Failure taxonomy. These are the only fatal outcomes the engine produces;
// approximate results (iteration-cap fallback, extrapolation, transitional
// interpolation) are reported as flags on the result records instead.
var (
	// ErrInvalidInput marks a supplied value that violates a documented
	// precondition. Always raised before any iterative computation starts.
	ErrInvalidInput = errors.New("engine: invalid input")

	// ErrNoOperatingPoint means the system and pump curves do not intersect
	// anywhere on the overlapping domain.
	ErrNoOperatingPoint = errors.New("engine: system and pump curves do not intersect")

	// ErrMissingData means a downstream evaluation needs a value the caller
	// never supplied (e.g. NPSH-required without an NPSHr curve).
	ErrMissingData = errors.New("engine: required data not supplied")
)
