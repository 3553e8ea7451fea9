package scheme

import (
	"fmt"
	"math"
)

var _ Linearizer = FrozenCoefficient{}

// FrozenCoefficient linearizes a·u·u_x by evaluating the leading u at the
// current level (semi-implicit scheme). One pass over the interior, O(N).
type FrozenCoefficient struct{}

// Assemble implements Linearizer.
func (FrozenCoefficient) Assemble(in Input) (*System, error) {
	if err := validate(in); err != nil {
		return nil, err
	}

	u := in.Current
	n := len(u) - 2
	a, c, dx, k := in.A, in.C, in.Dx, in.K
	dx2 := dx * dx

	sys := &System{
		Sub:   make([]float64, n),
		Main:  make([]float64, n),
		Super: make([]float64, n),
		RHS:   make([]float64, n),
	}

	// B_j does not depend on j.
	mainCoef := k - 0.5*(c*(-2/dx2))
	for i := 0; i < n; i++ {
		uj, jm1, jp1 := u[i+1], u[i], u[i+2]

		ux := (jp1 - jm1) / (2 * dx)
		uxx := (jp1 - 2*uj + jm1) / dx2
		s := 0.5 * (-a*uj*ux + c*uxx)
		h := k*uj - k*in.History[i]

		sys.RHS[i] = h + s
		sys.Sub[i] = 0.5 * (-a*uj/(2*dx) - c/dx2)
		sys.Main[i] = mainCoef
		sys.Super[i] = 0.5 * (a*uj/(2*dx) - c/dx2)
	}

	// With a single interior point both folds hit RHS[0].
	sys.RHS[0] -= sys.Sub[0] * in.LeftNext
	sys.RHS[n-1] -= sys.Super[n-1] * in.RightNext

	return sys, nil
}

func validate(in Input) error {
	if len(in.Current) < 3 {
		return fmt.Errorf("level of %d points: %w", len(in.Current), ErrShape)
	}
	if len(in.History) != len(in.Current)-2 {
		return fmt.Errorf("history %d for level %d: %w", len(in.History), len(in.Current), ErrShape)
	}
	for _, v := range []float64{in.A, in.C, in.K, in.LeftNext, in.RightNext} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%g: %w", v, ErrInvalidInput)
		}
	}
	if !(in.Dx > 0) || math.IsInf(in.Dx, 0) {
		return fmt.Errorf("dx=%g: %w", in.Dx, ErrInvalidInput)
	}

	return nil
}
