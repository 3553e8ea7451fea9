package fracpde

import (
	"github.com/katalvlaran/fracpde/grid"
	"github.com/katalvlaran/fracpde/kernel"
	"github.com/katalvlaran/fracpde/solution"
	"github.com/katalvlaran/fracpde/stepper"
)

// Problem describes one run: domain, equation coefficients and the
// initial/boundary conditions. Nil condition functions fall back to
// solution.DefaultInitial, DefaultLeft and DefaultRight.
type Problem struct {
	XMax, TMax float64
	Dx, Dt     float64

	Equation stepper.Params

	Initial solution.Func // u(x, 0)
	Left    solution.Func // u(0, t)
	Right   solution.Func // u(XMax, t)
}

// DefaultProblem is the reference run: unit domain, dx = dt = 0.1,
// α = 0.5, a = c = 1, u(x,0) = sin(πx), u(0,t) = 0, u(1,t) = 1.
func DefaultProblem() Problem {
	return Problem{
		XMax:     1,
		TMax:     1,
		Dx:       0.1,
		Dt:       0.1,
		Equation: stepper.Params{Alpha: 0.5, A: 1, C: 1},
	}
}

// Result holds the artifacts of a run.
type Result struct {
	Grid     *grid.Grid
	Solution *solution.Solution
	Weights  *kernel.Weights
	Outcome  stepper.Outcome
}

// Solve builds the grid, initializes the solution and steps to the end.
//
// Configuration errors (errors.Is(err, grid.ErrConfiguration)) return a nil
// Result. A solver failure returns the partial Result alongside a
// *stepper.StepError; rows up to the failing step remain valid.
func Solve(p Problem, opts ...stepper.Option) (*Result, error) {
	g, err := grid.Build(p.XMax, p.TMax, p.Dx, p.Dt)
	if err != nil {
		return nil, err
	}

	initial, left, right := p.conditions()
	sol, err := solution.Initialize(g, initial, left, right)
	if err != nil {
		return nil, err
	}

	s, err := stepper.New(g, sol, p.Equation, opts...)
	if err != nil {
		return nil, err
	}

	out, err := s.Run()
	res := &Result{
		Grid:     g,
		Solution: sol,
		Weights:  s.Weights(),
		Outcome:  out,
	}

	return res, err
}

func (p Problem) conditions() (initial, left, right solution.Func) {
	initial, left, right = p.Initial, p.Left, p.Right
	if initial == nil {
		initial = solution.DefaultInitial()
	}
	if left == nil {
		left = solution.DefaultLeft()
	}
	if right == nil {
		right = solution.DefaultRight()
	}

	return initial, left, right
}
