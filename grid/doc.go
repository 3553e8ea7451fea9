// Package grid builds the uniform space-time lattice on which the
// fractional advection-diffusion equation is discretized.
//
// A Grid holds N spatial coordinates spanning [0, XMax] and M time
// coordinates spanning [0, TMax], both endpoints included:
//
//	N = floor(XMax/Dx) + 1,   x_i = i·XMax/(N−1)
//	M = floor(TMax/Dt) + 1,   t_n = n·TMax/(M−1)
//
// When XMax is an exact multiple of Dx the realized spacing equals Dx.
// Otherwise the lattice still ends exactly at XMax and the realized spacing
// (SpacingX) differs slightly from the requested step. The finite-difference
// scheme always uses the requested Dx and Dt.
//
// Every invalid input is rejected with an error wrapping ErrConfiguration
// before anything is allocated. Other packages wrap the same sentinel for
// their own parameter checks, so a single errors.Is test identifies every
// configuration failure of a run.
package grid
