package stepper

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/fracpde/grid"
	"github.com/katalvlaran/fracpde/kernel"
	"github.com/katalvlaran/fracpde/matrix"
	"github.com/katalvlaran/fracpde/scheme"
	"github.com/katalvlaran/fracpde/solution"
)

// Stepper owns the mutation of a Solution. It is not safe for concurrent use.
type Stepper struct {
	grid    *grid.Grid
	sol     *solution.Solution
	params  Params
	weights *kernel.Weights
	opts    options

	state State
	step  int
	err   error

	hist []float64 // reused history buffer, length N−2
}

// New validates inputs, precomputes the memory kernel and returns a Stepper
// in state Ready.
//
// Errors (all wrap grid.ErrConfiguration): ErrNilInput, ErrGridMismatch,
// ErrInvalidParams, ErrOptionViolation, kernel.ErrInvalidOrder.
func New(g *grid.Grid, sol *solution.Solution, p Params, opts ...Option) (*Stepper, error) {
	if g == nil || sol == nil {
		return nil, ErrNilInput
	}
	if sol.Grid() != g || sol.Completed() != 1 {
		return nil, ErrGridMismatch
	}
	for _, v := range []float64{p.A, p.C} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("a=%g c=%g: %w", p.A, p.C, ErrInvalidParams)
		}
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	w, err := kernel.Precompute(p.Alpha, g.Dt, g.M())
	if err != nil {
		return nil, err
	}

	o.logger.Info("grid setup",
		"time_levels", g.M(),
		"space_points", g.N(),
		"alpha", p.Alpha,
		"K", w.K,
	)

	return &Stepper{
		grid:    g,
		sol:     sol,
		params:  p,
		weights: w,
		opts:    o,
		state:   Ready,
		hist:    make([]float64, g.Interior()),
	}, nil
}

// State returns the current lifecycle state.
func (s *Stepper) State() State { return s.state }

// Outcome returns the current state together with its step index.
func (s *Stepper) Outcome() Outcome { return Outcome{State: s.state, Step: s.step} }

// Err returns the abort cause, or nil.
func (s *Stepper) Err() error { return s.err }

// Weights returns the precomputed memory kernel.
func (s *Stepper) Weights() *kernel.Weights { return s.weights }

// Solution returns the solution being advanced.
func (s *Stepper) Solution() *solution.Solution { return s.sol }

// Step runs a single time step. It returns ErrTerminal once the run is
// finished and a *StepError when the linear solve fails (the stepper is then
// Aborted). Accumulator and linearizer errors are returned as they are and
// leave the state untouched.
func (s *Stepper) Step() error {
	if s.state.Terminal() {
		return ErrTerminal
	}
	last := s.grid.M() - 1
	if s.state == Ready {
		if last == 0 {
			s.complete()
			return nil
		}
		s.state = Stepping
		s.step = 0
	}

	n := s.step
	start := time.Now()
	row, err := s.advance(n)
	if err != nil {
		var se *solveError
		if errors.As(err, &se) {
			return s.abort(n, se.err)
		}
		return err
	}
	elapsed := time.Since(start)

	s.opts.logger.Debug("step complete",
		"step", n,
		"t", s.grid.TAt(n+1),
		"duration", elapsed,
	)
	if len(s.opts.onStep) > 0 {
		evt := StepEvent{Step: n, Time: s.grid.TAt(n + 1), Duration: elapsed, Row: row}
		for _, fn := range s.opts.onStep {
			fn(evt)
		}
	}

	s.step = n + 1
	if s.step == last {
		s.complete()
	}

	return nil
}

// advance computes and stores level n+1, returning a copy of it.
func (s *Stepper) advance(n int) ([]float64, error) {
	if err := s.opts.accumulator.Accumulate(s.sol, s.weights.B, n, s.hist); err != nil {
		return nil, err
	}

	sys, err := s.opts.linearizer.Assemble(scheme.Input{
		Coefficients: scheme.Coefficients{
			A:  s.params.A,
			C:  s.params.C,
			Dx: s.grid.Dx,
			K:  s.weights.K,
		},
		Current:   s.sol.Level(n),
		History:   s.hist,
		LeftNext:  s.sol.Left(n + 1),
		RightNext: s.sol.Right(n + 1),
	})
	if err != nil {
		return nil, err
	}

	band := sys.Band()
	x, err := s.opts.solver.SolveTridiagonal(band, sys.RHS)
	if err != nil {
		return nil, &solveError{err: err}
	}
	if err = matrix.ValidateFinite(x); err != nil {
		return nil, &solveError{err: err}
	}
	s.logResidual(n, band, x, sys.RHS)
	if err = s.sol.WriteInterior(n+1, x); err != nil {
		return nil, err
	}

	return s.sol.Row(n + 1)
}

// logResidual reports max|T·x − rhs| at debug level.
func (s *Stepper) logResidual(n int, band *matrix.Tridiagonal, x, rhs []float64) {
	if !s.opts.logger.Enabled(s.opts.ctx, slog.LevelDebug) {
		return
	}
	y, err := band.MulVec(x)
	if err != nil {
		return
	}
	s.opts.logger.Debug("solve residual", "step", n, "residual", floats.Distance(y, rhs, math.Inf(1)))
}

// solveError marks a failure of the banded solve, the only abort cause.
type solveError struct{ err error }

func (e *solveError) Error() string { return e.err.Error() }
func (e *solveError) Unwrap() error { return e.err }

// Run steps until the run completes, aborts, or the context is done.
// A context error leaves the stepper resumable in state Stepping.
func (s *Stepper) Run() (Outcome, error) {
	for !s.state.Terminal() {
		if err := s.opts.ctx.Err(); err != nil {
			return s.Outcome(), err
		}
		if err := s.Step(); err != nil {
			return s.Outcome(), err
		}
	}

	return s.Outcome(), s.err
}

func (s *Stepper) complete() {
	s.state = Completed
	s.step = s.grid.M() - 1
	s.opts.logger.Info("scheme implementation complete", "steps", s.step)
}

func (s *Stepper) abort(n int, cause error) error {
	s.state = Aborted
	s.step = n
	s.err = &StepError{Step: n, Err: cause}
	s.opts.logger.Error("linear system solve failed", "step", n, "error", cause)
	for _, fn := range s.opts.onAbort {
		fn(n, s.err)
	}

	return s.err
}
