// Package solution owns the M×N solution array of a run and the pluggable
// initial/boundary conditions that seed it.
//
// Row index is the time level, column index the spatial index. Initialize
// writes, in this literal order:
//
//	U[0, :]   = initial(x)
//	U[:, 0]   = left(t)
//	U[:, N−1] = right(t)
//
// so Dirichlet boundary values always win over the initial condition at the
// two corners of row 0. After initialization only the interior of each later
// row is written, exactly once, in increasing time order (WriteInterior).
package solution
