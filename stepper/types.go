package stepper

import (
	"fmt"
	"time"
)

// State is the stepper's position in its lifecycle.
type State int

// Lifecycle states.
const (
	Ready State = iota
	Stepping
	Completed
	Aborted
)

func (s State) String() string {
	switch s {
	case Ready:
		return "Ready"
	case Stepping:
		return "Stepping"
	case Completed:
		return "Completed"
	case Aborted:
		return "Aborted"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Terminal reports whether no further steps can run.
func (s State) Terminal() bool { return s == Completed || s == Aborted }

// Outcome is a state plus its step index:
//   - Stepping: the next step to run,
//   - Completed: the number of steps taken (M−1),
//   - Aborted: the failing step.
type Outcome struct {
	State State
	Step  int
}

func (o Outcome) String() string {
	switch o.State {
	case Stepping, Aborted:
		return fmt.Sprintf("%s(%d)", o.State, o.Step)
	default:
		return o.State.String()
	}
}

// Params are the equation coefficients.
type Params struct {
	Alpha float64 // fractional order, (0, 1]
	A     float64 // advection
	C     float64 // diffusion
}

// StepEvent describes a successfully completed step.
type StepEvent struct {
	Step     int           // n; the level written is n+1
	Time     float64       // t_{n+1}
	Duration time.Duration // wall time of the step
	Row      []float64     // copy of U[n+1, :]
}
