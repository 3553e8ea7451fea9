// Package config loads run settings for the solver.
//
// Sources are layered, later ones winning:
//
//  1. Default(): the reference run,
//  2. a YAML file,
//  3. an optional .env file,
//  4. FRACPDE_* process environment variables.
//
// The merged Config is checked with validator tags; any failure wraps
// grid.ErrConfiguration. Config.Problem and Config.StepperOptions turn a
// valid Config into inputs for fracpde.Solve.
//
// Example file:
//
//	domain:    {x_max: 1, t_max: 1, dx: 0.1, dt: 0.1}
//	equation:  {alpha: 0.5, a: 1, c: 1}
//	conditions:
//	  initial: {kind: sine, amplitude: 1, frequency: 1}
//	  left:    {kind: constant, value: 0}
//	  right:   {kind: constant, value: 1}
//	solver:    {banded: lapack, history: parallel, workers: 4}
//	output:    {sqlite: run.db, table: true, decimals: 4}
package config
