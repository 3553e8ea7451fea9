package solution

import (
	"errors"

	"github.com/katalvlaran/fracpde/grid"
)

var (
	// ErrNilCondition indicates a missing initial or boundary function.
	ErrNilCondition = grid.ConfigError("solution: nil condition function")

	// ErrConditionLength indicates a condition returned the wrong number of values.
	ErrConditionLength = grid.ConfigError("solution: condition returned wrong number of values")

	// ErrConditionValue indicates a condition returned NaN or ±Inf.
	ErrConditionValue = grid.ConfigError("solution: condition returned a non-finite value")

	// ErrUnknownCondition indicates an unrecognized condition kind.
	ErrUnknownCondition = grid.ConfigError("solution: unknown condition kind")

	// ErrNilGrid indicates Initialize was called without a grid.
	ErrNilGrid = grid.ConfigError("solution: nil grid")

	// ErrRowOrder indicates an attempt to write a row out of order or twice.
	ErrRowOrder = errors.New("solution: rows must be written once, in increasing order")
)
