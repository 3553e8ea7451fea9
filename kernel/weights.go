package kernel

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Weights holds the memory kernel of a run. It is immutable once built and
// shared read-only by every step.
type Weights struct {
	Alpha float64   // fractional order in (0, 1]
	Dt    float64   // requested time step
	K     float64   // dt^(−α) / Γ(2 − α)
	B     []float64 // b[0 … M−1]
}

// Precompute builds K and b[0 … m−1] in O(m).
//
// Errors (all wrap grid.ErrConfiguration): ErrInvalidOrder, ErrInvalidStep, ErrInvalidLevels.
func Precompute(alpha, dt float64, m int) (*Weights, error) {
	if !(alpha > 0 && alpha <= 1) {
		return nil, fmt.Errorf("alpha=%g: %w", alpha, ErrInvalidOrder)
	}
	if !(dt > 0) || math.IsInf(dt, 0) {
		return nil, fmt.Errorf("dt=%g: %w", dt, ErrInvalidStep)
	}
	if m < 1 {
		return nil, fmt.Errorf("M=%d: %w", m, ErrInvalidLevels)
	}

	scale := math.Pow(dt, -alpha) / math.Gamma(2-alpha)
	if math.IsInf(scale, 0) || math.IsNaN(scale) {
		return nil, fmt.Errorf("dt=%g: K=%g: %w", dt, scale, ErrInvalidStep)
	}

	e := 1 - alpha
	b := make([]float64, m)
	for k := range b {
		// math.Pow(0, 0) == 1, so b[0] == 0 when alpha == 1.
		b[k] = math.Pow(float64(k+1), e) - math.Pow(float64(k), e)
	}

	return &Weights{
		Alpha: alpha,
		Dt:    dt,
		K:     scale,
		B:     b,
	}, nil
}

// Levels returns M, the number of weights.
func (w *Weights) Levels() int { return len(w.B) }

// TelescopedSum returns Σ_{k=0}^{n} b[k]; analytically (n+1)^(1−α) − 0^(1−α),
// which is (n+1)^(1−α) for α < 1 and 0 for α = 1.
func (w *Weights) TelescopedSum(n int) float64 {
	return floats.Sum(w.B[:n+1])
}
