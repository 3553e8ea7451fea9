// Package stepper advances the solution of the time-fractional
// advection-diffusion equation one time level at a time.
//
// Each step n (advancing to level n+1) runs, in order:
//
//  1. kernel.Accumulator: history sum over levels 0..n,
//  2. scheme.Linearizer: tridiagonal system for the interior of level n+1,
//  3. matrix.TridiagonalSolver: interior values of level n+1,
//
// and then writes U[n+1, 1..N−2] exactly once.
//
// State machine:
//
//	Ready ──► Stepping(0) ──► … ──► Stepping(M−2) ──► Completed
//	                 │                     │
//	                 └──────► Aborted(n) ◄─┘   (solver failure at step n)
//
// Completed and Aborted are terminal. On abort every row up to n stays
// valid and the rows after it keep their unset interior; Run reports the
// failing step through *StepError, which matches ErrNumerical.
//
// Steps are strictly sequential: level n+1 depends on every earlier level.
package stepper
