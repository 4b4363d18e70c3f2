// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for the checks applied to
//    externally supplied cost tables.
//  - Wrap sentinels with the validator tag so call sites can wrap once more.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// normalizeTol rejects non-finite tolerances and flips negative ones.
func normalizeTol(tag string, tol float64) (float64, error) {
	if math.IsNaN(tol) || math.IsInf(tol, 0) {
		return 0, validatorErrorf(tag, ErrNaNInf)
	}

	return math.Abs(tol), nil
}

// isNil reports a nil interface or a nil *Dense stored in one.
func isNil(m Matrix) bool {
	if m == nil {
		return true
	}
	d, ok := m.(*Dense)

	return ok && d == nil
}

// ValidateNotNil ensures the matrix reference is non-nil, including a typed
// nil *Dense. Returns ErrNilMatrix otherwise. Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if isNil(m) {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square (Rows == Cols).
//
// Errors: ErrNilMatrix if nil, ErrDimensionMismatch if not square.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if isNil(m) {
		return validatorErrorf("ValidateSquare", ErrNilMatrix)
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSymmetric checks A is symmetric within tolerance tol:
// |A[i,j] - A[j,i]| ≤ tol for all i<j.
//
// Returns ErrNilMatrix/ErrDimensionMismatch on structural issues, ErrNaNInf on bad tol,
// ErrAsymmetry on violation.
// Complexity: O(n²), Space: O(1).
func ValidateSymmetric(m Matrix, tol float64) error {
	const tag = "ValidateSymmetric"
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf(tag, err)
	}
	tol, err := normalizeTol(tag, tol)
	if err != nil {
		return err
	}

	n := m.Rows()
	var (
		i, j     int
		aij, aji float64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ { // strict upper triangle only
			aij, _ = m.At(i, j)
			aji, _ = m.At(j, i)
			if math.Abs(aij-aji) > tol {
				return validatorErrorf(fmt.Sprintf("%s(%d,%d)", tag, i, j), ErrAsymmetry)
			}
		}
	}

	return nil
}

// ValidateZeroDiagonal checks |A[i,i]| ≤ tol for every i.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf (bad tol), ErrNonZeroDiagonal.
// Complexity: O(n).
func ValidateZeroDiagonal(m Matrix, tol float64) error {
	const tag = "ValidateZeroDiagonal"
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf(tag, err)
	}
	tol, err := normalizeTol(tag, tol)
	if err != nil {
		return err
	}

	var v float64
	for i := 0; i < m.Rows(); i++ {
		v, _ = m.At(i, i)
		if math.Abs(v) > tol {
			return validatorErrorf(fmt.Sprintf("%s(%d)", tag, i), ErrNonZeroDiagonal)
		}
	}

	return nil
}

// ValidateFinite rejects NaN and ±Inf entries.
// Complexity: O(r*c).
func ValidateFinite(m Matrix) error {
	const tag = "ValidateFinite"
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf(tag, err)
	}

	var v float64
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			v, _ = m.At(i, j)
			if !isFinite(v) {
				return validatorErrorf(fmt.Sprintf("%s(%d,%d)", tag, i, j), ErrNaNInf)
			}
		}
	}

	return nil
}
