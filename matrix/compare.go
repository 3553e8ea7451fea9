// SPDX-License-Identifier: MIT

package matrix

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// AllClose reports whether |a−b| ≤ atol + rtol·|b| holds element-wise.
// Negative tolerances are taken by absolute value.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf (non-finite tolerance).
// Time: O(r·c). Space: O(1) for *Dense inputs.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf("AllClose", ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if err := ValidateNotNil(a); err != nil {
		return false, matrixErrorf("AllClose", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return false, matrixErrorf("AllClose", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf("AllClose", err)
	}

	close := func(x, y float64) bool { return math.Abs(x-y) <= atol+rtol*math.Abs(y) }

	// Dense fast-path over the flat backing slices.
	if da, ok := a.(*Dense); ok {
		if db, ok := b.(*Dense); ok {
			return floats.EqualFunc(da.data, db.data, close), nil
		}
	}

	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			x, _ := a.At(i, j)
			y, _ := b.At(i, j)
			if !close(x, y) {
				return false, nil
			}
		}
	}

	return true, nil
}
