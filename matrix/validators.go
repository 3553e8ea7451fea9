// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating nil/length/finiteness checks here.
//  - Return sentinel errors wrapped with the validator tag so call sites can
//    wrap uniformly with matrixErrorf.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Shape → Finite).

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil. Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateVecLen ensures the vector is non-nil and has exactly n entries.
// Time: O(1). Space: O(1).
func ValidateVecLen(x []float64, n int) error {
	// Disallow nil vectors to avoid subtle bugs in solve-like routines.
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix)
	}
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateFinite ensures every entry of x is finite.
// Time: O(len(x)). Space: O(1).
func ValidateFinite(x []float64) error {
	for i, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return validatorErrorf(fmt.Sprintf("ValidateFinite[%d]", i), ErrNaNInf)
		}
	}

	return nil
}

// ValidateTridiagonal – Composite: NotNil → band lengths → rhs length → finite entries.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf.
// Complexity: O(n).
func ValidateTridiagonal(t *Tridiagonal, rhs []float64) error {
	if t == nil {
		return validatorErrorf("ValidateTridiagonal", ErrNilMatrix)
	}
	n := len(t.Main)
	if n == 0 {
		return validatorErrorf("ValidateTridiagonal: Main", ErrDimensionMismatch)
	}
	if len(t.Lower) != n-1 {
		return validatorErrorf("ValidateTridiagonal: Lower", ErrDimensionMismatch)
	}
	if len(t.Upper) != n-1 {
		return validatorErrorf("ValidateTridiagonal: Upper", ErrDimensionMismatch)
	}
	if err := ValidateVecLen(rhs, n); err != nil {
		return validatorErrorf("ValidateTridiagonal: rhs", err)
	}
	for _, band := range [][]float64{t.Lower, t.Main, t.Upper, rhs} {
		if err := ValidateFinite(band); err != nil {
			return validatorErrorf("ValidateTridiagonal", err)
		}
	}

	return nil
}

// ValidateSameShape ensures a and b are non-nil with identical dimensions.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	if a == nil || b == nil {
		return validatorErrorf("ValidateSameShape", ErrNilMatrix)
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape", ErrDimensionMismatch)
	}

	return nil
}
