// Package kernel implements the L1 discretization of the Caputo fractional
// time derivative: the scaling constant K, the memory weights b[k], and the
// per-step history sum over all previous time levels.
//
//	K    = dt^(−α) / Γ(2 − α)
//	b[k] = (k+1)^(1−α) − k^(1−α),   k = 0 … M−1   (0^0 = 1)
//	H[j] = Σ_{k=1}^{n} b[k]·(U[n+1−k, j] − U[n−k, j])   for interior j
//
// The weights telescope: Σ_{k=0}^{n} b[k] = (n+1)^(1−α) − 0^(1−α). For α < 1 they are
// strictly positive and strictly decreasing; for α = 1 every weight is zero
// (b[0] = 1 − 0^0 = 0 under the stated convention) and the scheme reduces to
// a first-order difference with no history contribution.
//
// The history sum is computed by direct summation, O(n) per point and step.
// Accumulator lets a faster equivalent strategy be swapped in; Parallel splits
// the spatial range across goroutines with identical per-point arithmetic.
package kernel
