// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by storage and solvers.
// This file intentionally contains ONLY interfaces and plain value types.
// Errors live in errors.go, kernels in dedicated files.
package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	Clone() Matrix
}

// TridiagonalSolver solves T·x = rhs for a tridiagonal T.
//
// Implementations MUST NOT mutate t or rhs; the returned slice is freshly
// allocated and has length t.Size().
//
// Errors:
//   - ErrNilMatrix / ErrDimensionMismatch for malformed bands.
//   - ErrSingular when elimination meets an exact zero pivot.
//   - ErrNaNInf when the solution is not finite (unstable elimination).
type TridiagonalSolver interface {
	SolveTridiagonal(t *Tridiagonal, rhs []float64) ([]float64, error)
}
