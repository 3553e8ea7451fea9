// SPDX-License-Identifier: MIT

// Package matrix - compact tridiagonal band storage.
//
// Layout (n = len(Main)):
//
//	| Main[0]  Upper[0]                          |
//	| Lower[0] Main[1]  Upper[1]                 |
//	|          Lower[1] Main[2]  ...             |
//	|                   ...      Main[n-1]       |
//
// Lower[i] = T[i+1][i], Upper[i] = T[i][i+1]; both bands have length n-1.
package matrix

import "fmt"

const (
	opNewTridiagonal = "NewTridiagonal"
	opTridiagMulVec  = "Tridiagonal.MulVec"
	opTridiagDense   = "Tridiagonal.Dense"
)

// Tridiagonal stores the three non-zero bands of a square tridiagonal matrix.
type Tridiagonal struct {
	Lower []float64 // sub-diagonal, len n-1
	Main  []float64 // main diagonal, len n
	Upper []float64 // super-diagonal, len n-1
}

// NewTridiagonal validates band lengths and returns a Tridiagonal that aliases
// the given slices (no copy).
// Errors: ErrDimensionMismatch, ErrNaNInf.
// Complexity: O(n).
func NewTridiagonal(lower, main, upper []float64) (*Tridiagonal, error) {
	t := &Tridiagonal{Lower: lower, Main: main, Upper: upper}
	// reuse the composite validator with a zero rhs of the right length
	if err := ValidateTridiagonal(t, make([]float64, len(main))); err != nil {
		return nil, matrixErrorf(opNewTridiagonal, err)
	}

	return t, nil
}

// Size returns n, the order of the square matrix.
func (t *Tridiagonal) Size() int { return len(t.Main) }

// MulVec computes y = T·x. The stepper logs max|T·x − rhs| with it at
// debug level.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(n).
func (t *Tridiagonal) MulVec(x []float64) ([]float64, error) {
	if t == nil {
		return nil, matrixErrorf(opTridiagMulVec, ErrNilMatrix)
	}
	n := t.Size()
	if err := ValidateVecLen(x, n); err != nil {
		return nil, matrixErrorf(opTridiagMulVec, err)
	}
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		y[i] = t.Main[i] * x[i]
		if i > 0 {
			y[i] += t.Lower[i-1] * x[i-1]
		}
		if i < n-1 {
			y[i] += t.Upper[i] * x[i+1]
		}
	}

	return y, nil
}

// Dense expands the bands into a full n×n Dense matrix, for inspecting
// small systems.
// Complexity: O(n²) memory.
func (t *Tridiagonal) Dense() (*Dense, error) {
	if t == nil {
		return nil, matrixErrorf(opTridiagDense, ErrNilMatrix)
	}
	n := t.Size()
	d, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opTridiagDense, err)
	}
	for i := 0; i < n; i++ {
		d.data[i*n+i] = t.Main[i]
		if i > 0 {
			d.data[i*n+i-1] = t.Lower[i-1]
		}
		if i < n-1 {
			d.data[i*n+i+1] = t.Upper[i]
		}
	}

	return d, nil
}

// String implements fmt.Stringer for debugging.
func (t *Tridiagonal) String() string {
	return fmt.Sprintf("Tridiagonal{Lower:%v Main:%v Upper:%v}", t.Lower, t.Main, t.Upper)
}
