package grid

import "errors"

// ErrConfiguration is returned when domain or equation parameters are invalid.
// It is fatal to a run and never retried; other packages derive their
// parameter sentinels from it with ConfigError.
var ErrConfiguration = errors.New("grid: invalid configuration")

var (
	// ErrNonPositive indicates a non-positive or non-finite extent or step.
	ErrNonPositive = ConfigError("grid: extent and step must be finite and > 0")

	// ErrStepTooLarge indicates a step larger than its extent.
	ErrStepTooLarge = ConfigError("grid: step must not exceed extent")

	// ErrTooFewPoints indicates fewer than three spatial points (no interior point).
	ErrTooFewPoints = ConfigError("grid: at least 3 spatial points are required")
)

// ConfigError returns a new sentinel with the given message that also
// matches ErrConfiguration under errors.Is.
func ConfigError(msg string) error {
	return &configError{msg: msg}
}

type configError struct{ msg string }

func (e *configError) Error() string { return e.msg }

func (e *configError) Unwrap() error { return ErrConfiguration }
