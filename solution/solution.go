package solution

import (
	"fmt"

	"github.com/katalvlaran/fracpde/grid"
	"github.com/katalvlaran/fracpde/matrix"
)

// Solution is the M×N array U of a run together with its row-complete
// watermark. Rows [0, Completed()) are final; later rows hold their boundary
// values and zero interior until the stepper writes them.
//
// A Solution has exactly one writer. Readers must only look at completed rows.
type Solution struct {
	grid      *grid.Grid
	u         *matrix.Dense
	completed int
}

// Initialize allocates U and applies the conditions in the order
// initial → left → right, so boundary values win at the corners.
//
// Errors (all wrap grid.ErrConfiguration):
//   - ErrNilGrid, ErrNilCondition.
//   - ErrConditionLength, ErrConditionValue for misbehaving functions.
func Initialize(g *grid.Grid, initial, left, right Func) (*Solution, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if initial == nil || left == nil || right == nil {
		return nil, ErrNilCondition
	}

	n, m := g.N(), g.M()
	u, err := matrix.NewDense(m, n)
	if err != nil {
		return nil, fmt.Errorf("solution: %w", err)
	}

	x, t := g.X(), g.T()
	row0, err := evaluate("initial", initial, x)
	if err != nil {
		return nil, err
	}
	colL, err := evaluate("left", left, t)
	if err != nil {
		return nil, err
	}
	colR, err := evaluate("right", right, t)
	if err != nil {
		return nil, err
	}

	// Literal order is part of the contract: corners end up with boundary values.
	if err = u.SetRow(0, 0, row0); err != nil {
		return nil, fmt.Errorf("solution: initial: %w", err)
	}
	if err = u.SetCol(0, colL); err != nil {
		return nil, fmt.Errorf("solution: left: %w", err)
	}
	if err = u.SetCol(n-1, colR); err != nil {
		return nil, fmt.Errorf("solution: right: %w", err)
	}

	return &Solution{grid: g, u: u, completed: 1}, nil
}

// evaluate calls fn and checks the length and finiteness of its output.
func evaluate(name string, fn Func, coords []float64) ([]float64, error) {
	vals := fn(append([]float64(nil), coords...))
	if len(vals) != len(coords) {
		return nil, fmt.Errorf("%s: got %d values for %d coordinates: %w",
			name, len(vals), len(coords), ErrConditionLength)
	}
	if err := matrix.ValidateFinite(vals); err != nil {
		return nil, fmt.Errorf("%s: %v: %w", name, err, ErrConditionValue)
	}

	return vals, nil
}

// Grid returns the lattice the solution lives on.
func (s *Solution) Grid() *grid.Grid { return s.grid }

// Rows returns M, the number of time levels.
func (s *Solution) Rows() int { return s.u.Rows() }

// Cols returns N, the number of spatial points.
func (s *Solution) Cols() int { return s.u.Cols() }

// Completed returns how many leading rows are final.
func (s *Solution) Completed() int { return s.completed }

// At returns U[n, j].
func (s *Solution) At(n, j int) (float64, error) { return s.u.At(n, j) }

// Row returns a copy of U[n, :].
func (s *Solution) Row(n int) ([]float64, error) {
	v, err := s.u.RowView(n)
	if err != nil {
		return nil, err
	}

	return append([]float64(nil), v...), nil
}

// Level returns U[n, :] without copying. The slice must be treated as
// read-only. It panics if n is out of range; callers index by step counters
// they already bounded.
func (s *Solution) Level(n int) []float64 {
	v, err := s.u.RowView(n)
	if err != nil {
		panic(err)
	}

	return v
}

// Left returns the left boundary value at time level n.
func (s *Solution) Left(n int) float64 { return s.Level(n)[0] }

// Right returns the right boundary value at time level n.
func (s *Solution) Right(n int) float64 { return s.Level(n)[s.u.Cols()-1] }

// WriteInterior stores U[n, 1..N−2] and advances the watermark. Row n must be
// exactly the next incomplete row.
//
// Errors: ErrRowOrder, matrix.ErrDimensionMismatch, matrix.ErrNaNInf.
func (s *Solution) WriteInterior(n int, vals []float64) error {
	if n != s.completed || n >= s.u.Rows() {
		return fmt.Errorf("row %d (completed %d): %w", n, s.completed, ErrRowOrder)
	}
	if len(vals) != s.u.Cols()-2 {
		return fmt.Errorf("row %d: %w", n, matrix.ErrDimensionMismatch)
	}
	if err := s.u.SetRow(n, 1, vals); err != nil {
		return err
	}
	s.completed++

	return nil
}

// Matrix returns a deep copy of U.
func (s *Solution) Matrix() matrix.Matrix { return s.u.Clone() }
