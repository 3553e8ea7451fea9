package grid

import (
	"fmt"
	"math"
)

// Build validates the domain and returns the lattice.
//
// Errors (all wrap ErrConfiguration):
//   - ErrNonPositive if any argument is ≤ 0, NaN or ±Inf.
//   - ErrStepTooLarge if dx > xMax or dt > tMax.
//   - ErrTooFewPoints if floor(xMax/dx)+1 < 3.
func Build(xMax, tMax, dx, dt float64) (*Grid, error) {
	for _, p := range []struct {
		name string
		v    float64
	}{{"x_max", xMax}, {"t_max", tMax}, {"dx", dx}, {"dt", dt}} {
		if !(p.v > 0) || math.IsInf(p.v, 0) {
			return nil, fmt.Errorf("%s=%g: %w", p.name, p.v, ErrNonPositive)
		}
	}
	if dx > xMax {
		return nil, fmt.Errorf("dx=%g > x_max=%g: %w", dx, xMax, ErrStepTooLarge)
	}
	if dt > tMax {
		return nil, fmt.Errorf("dt=%g > t_max=%g: %w", dt, tMax, ErrStepTooLarge)
	}

	n := int(math.Floor(xMax/dx)) + 1
	m := int(math.Floor(tMax/dt)) + 1
	if n < MinSpatialPoints {
		return nil, fmt.Errorf("N=%d: %w", n, ErrTooFewPoints)
	}

	return &Grid{
		XMax: xMax,
		TMax: tMax,
		Dx:   dx,
		Dt:   dt,
		x:    linspace(xMax, n),
		t:    linspace(tMax, m),
	}, nil
}

// linspace returns count evenly spaced values over [0, stop]; the last value is exactly stop.
func linspace(stop float64, count int) []float64 {
	out := make([]float64, count)
	if count == 1 {
		return out
	}
	step := stop / float64(count-1)
	for i := range out {
		out[i] = float64(i) * step
	}
	out[count-1] = stop

	return out
}
