package scheme

import (
	"errors"

	"github.com/katalvlaran/fracpde/grid"
)

var (
	// ErrInvalidInput indicates non-finite equation coefficients or a non-positive dx.
	ErrInvalidInput = grid.ConfigError("scheme: coefficients must be finite and dx > 0")

	// ErrShape indicates a level or history vector of inconsistent length.
	ErrShape = errors.New("scheme: inconsistent vector lengths")
)
