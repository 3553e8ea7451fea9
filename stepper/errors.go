package stepper

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/fracpde/grid"
)

var (
	// ErrNumerical marks a singular or unstable linear solve, the only failure
	// that aborts a run. Returned errors are *StepError values carrying the
	// step index.
	ErrNumerical = errors.New("stepper: numerical failure")

	// ErrTerminal is returned by Step after the run has completed or aborted.
	ErrTerminal = errors.New("stepper: run already finished")

	// ErrNilInput indicates a nil grid or solution.
	ErrNilInput = grid.ConfigError("stepper: nil grid or solution")

	// ErrGridMismatch indicates a solution that was not initialized on the grid.
	ErrGridMismatch = grid.ConfigError("stepper: solution does not belong to grid")

	// ErrInvalidParams indicates non-finite advection or diffusion coefficients.
	ErrInvalidParams = grid.ConfigError("stepper: equation coefficients must be finite")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = grid.ConfigError("stepper: invalid option supplied")
)

// StepError reports the step at which the run aborted.
type StepError struct {
	Step int
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("stepper: linear system solve failed at time step %d: %v", e.Step, e.Err)
}

// Is makes every StepError match ErrNumerical.
func (e *StepError) Is(target error) bool { return target == ErrNumerical }

// Unwrap returns the solver cause (e.g. matrix.ErrSingular).
func (e *StepError) Unwrap() error { return e.Err }
