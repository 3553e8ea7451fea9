package kernel

import (
	"errors"

	"github.com/katalvlaran/fracpde/grid"
)

var (
	// ErrInvalidOrder indicates alpha outside (0, 1] or non-finite.
	ErrInvalidOrder = grid.ConfigError("kernel: fractional order must lie in (0, 1]")

	// ErrInvalidStep indicates a non-positive or non-finite time step, or one so
	// small that K overflows.
	ErrInvalidStep = grid.ConfigError("kernel: time step must be finite and > 0")

	// ErrInvalidLevels indicates fewer than one time level.
	ErrInvalidLevels = grid.ConfigError("kernel: number of time levels must be >= 1")

	// ErrInvalidWorkers indicates a negative worker count for Parallel.
	ErrInvalidWorkers = grid.ConfigError("kernel: worker count must be >= 0")

	// ErrShortWeights indicates the weight sequence does not cover step n.
	ErrShortWeights = errors.New("kernel: weight sequence shorter than step index")

	// ErrHistoryShape indicates a destination vector or level of the wrong length.
	ErrHistoryShape = errors.New("kernel: history vector has wrong length")
)
