package parameter

import "time"

// Grid Limits
const (
	// MaxGridDim is the upper bound for grid width/height in cells
	// Prevents unbounded allocation from hostile or buggy dimensions
	MaxGridDim = 10000

	// CellDotWidth is the horizontal dot count per cell
	CellDotWidth = 2

	// CellDotHeight is the vertical dot count per cell
	CellDotHeight = 4
)

// Frame Timing
const (
	// DefaultFPS is the target frame rate when none is configured
	DefaultFPS = 60.0

	// MinFrameDuration caps the timer against absurd frame rates
	MinFrameDuration = time.Millisecond

	// FPSSmoothing is the EMA weight of the previous smoothed value
	// when folding in a new frame measurement
	FPSSmoothing = 0.9
)

// Terminal Output
const (
	// OutputBufferSize is the bufio writer capacity for terminal output
	OutputBufferSize = 131072 // 128KB

	// InputPollTimeoutMs is the poll(2) timeout for the key reader
	InputPollTimeoutMs = 100
)
