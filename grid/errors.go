package grid

import "errors"

var (
	// ErrDimensions reports invalid construction dimensions (zero or above MaxGridDim)
	ErrDimensions = errors.New("invalid grid dimensions")

	// ErrOutOfBounds reports a dot or cell coordinate outside the addressable range
	ErrOutOfBounds = errors.New("coordinate out of bounds")

	// ErrDotIndex reports an internal dot index outside 0-7
	// Unreachable through the public coordinate API; indicates a mapping bug
	ErrDotIndex = errors.New("invalid dot index")
)
