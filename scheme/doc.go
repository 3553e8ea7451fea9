// Package scheme assembles the tridiagonal system that advances the interior
// of the solution by one time level.
//
// For every interior point j, with u = U[n, :] and the history sum H:
//
//	u_x  = (u[j+1] − u[j−1]) / (2·dx)
//	u_xx = (u[j+1] − 2·u[j] + u[j−1]) / dx²
//	S_j  = ½·(−a·u[j]·u_x + c·u_xx)
//	R_j  = K·u[j] − K·H[j] + S_j
//
//	A_j = ½·(−a·u[j]/(2dx) − c/dx²)   coefficient of U[n+1, j−1]
//	B_j = K − ½·c·(−2/dx²)            coefficient of U[n+1, j]
//	C_j = ½·( a·u[j]/(2dx) − c/dx²)   coefficient of U[n+1, j+1]
//
// The nonlinear advection coefficient is frozen at the current level
// (FrozenCoefficient). The known boundary values of level n+1 are folded
// into the first and last right-hand-side entries.
//
// Linearizer is the extension point for a different linearization, e.g. a
// Newton iteration, without touching the stepper or the solver.
package scheme
