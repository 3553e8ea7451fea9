// Package fracpde solves the time-fractional advection-diffusion equation
//
//	D_t^α u + a·u·u_x = c·u_xx,   0 < α ≤ 1,
//
// on a uniform space-time grid, with the L1 discretization of the Caputo
// derivative and a semi-implicit, frozen-coefficient treatment of the
// nonlinear advection term.
//
// 🚀 What is inside?
//
//	grid/     — space-time lattice and the ErrConfiguration sentinel
//	solution/ — solution array U (M×N) plus initial and boundary conditions
//	kernel/   — L1 memory-kernel weights and history accumulation
//	scheme/   — tridiagonal system assembly for one time level
//	matrix/   — dense storage and tridiagonal solvers (Thomas, LAPACK Dgtsv)
//	stepper/  — time-marching state machine with hooks and options
//	config/   — YAML, .env and environment configuration
//	recorder/ — SQLite and CSV result sinks
//	metrics/  — Prometheus step metrics
//
// ✨ Quick start:
//
//	res, err := fracpde.Solve(fracpde.DefaultProblem())
//	if err != nil {
//		// res still holds every level computed before the failure
//	}
//	row, _ := res.Solution.Row(res.Solution.Completed() - 1)
//
// A run is three calls: build the grid, initialize the solution, step to the
// end. Solve does all three; the packages can be driven one by one when more
// control is needed.
//
//	go install github.com/katalvlaran/fracpde/cmd/fracpde@latest
package fracpde
