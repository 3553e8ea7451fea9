// Package matrix offers the dense storage and banded linear algebra used by
// the time-stepping engine.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked accessors and
//     zero-copy row views for hot loops.
//   - Tridiagonal, a compact three-band representation (sub/main/super).
//   - TridiagonalSolver, a narrow "bands in, solution out" interface with two
//     implementations: LapackSolver (gonum Dgtsv, partial pivoting) and
//     ThomasSolver (plain forward elimination / back-substitution).
//   - AllClose, an element-wise tolerance comparison of two matrices.
//
// Both solvers report ErrSingular on an exact zero pivot and ErrNaNInf when the
// elimination produces a non-finite solution.
//
// See the examples in this package for usage patterns.
package matrix
