// SPDX-License-Identifier: MIT
// Package: matrix
//
// validators.go — the canonical shape and content checks.
//
// Each validator returns a sentinel wrapped with its own tag, so call sites
// can wrap uniformly. ValidateDistance composes the others in a fixed
// sequence: NotNil → Square → entries (finite, non-negative) → zero
// diagonal → symmetry.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf tags err with the validator name.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// normTol maps a tolerance to a finite non-negative value.
func normTol(tag string, tol float64) (float64, error) {
	if math.IsNaN(tol) || math.IsInf(tol, 0) {
		return 0, validatorErrorf(tag, ErrNaNInf)
	}

	return math.Abs(tol), nil
}

// ValidateNotNil returns ErrNilMatrix for a nil m (including a typed nil *Dense).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare returns ErrNonSquare unless Rows() == Cols(). Assumes m != nil.
func ValidateSquare(m Matrix) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateEntries returns ErrNaNInf or ErrNegative for the first offending
// entry in row-major order. Assumes m != nil.
func ValidateEntries(m Matrix) error {
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			v, err := m.At(i, j)
			if err != nil {
				return validatorErrorf("ValidateEntries", err)
			}
			switch {
			case math.IsNaN(v) || math.IsInf(v, 0):
				return validatorErrorf("ValidateEntries", fmt.Errorf("(%d,%d): %w", i, j, ErrNaNInf))
			case v < 0:
				return validatorErrorf("ValidateEntries", fmt.Errorf("(%d,%d)=%g: %w", i, j, v, ErrNegative))
			}
		}
	}

	return nil
}

// ValidateZeroDiagonal returns ErrNonZeroDiagonal if some |A[i,i]| > tol.
// Assumes m is square.
func ValidateZeroDiagonal(m Matrix, tol float64) error {
	tol, err := normTol("ValidateZeroDiagonal", tol)
	if err != nil {
		return err
	}
	for i := 0; i < m.Rows(); i++ {
		v, _ := m.At(i, i)
		if math.Abs(v) > tol {
			return validatorErrorf("ValidateZeroDiagonal", fmt.Errorf("(%d,%d)=%g: %w", i, i, v, ErrNonZeroDiagonal))
		}
	}

	return nil
}

// ValidateSymmetric returns ErrAsymmetry if some |A[i,j] − A[j,i]| > tol.
// Scans the strict upper triangle once. Assumes m is square.
func ValidateSymmetric(m Matrix, tol float64) error {
	tol, err := normTol("ValidateSymmetric", tol)
	if err != nil {
		return err
	}
	n := m.Rows()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			aij, _ := m.At(i, j)
			aji, _ := m.At(j, i)
			if math.Abs(aij-aji) > tol {
				return validatorErrorf("ValidateSymmetric", fmt.Errorf("(%d,%d): %w", i, j, ErrAsymmetry))
			}
		}
	}

	return nil
}

// ValidateDistance checks that m is a distance matrix up to tol: square,
// finite, non-negative, zero diagonal, symmetric.
func ValidateDistance(m Matrix, tol float64) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if err := ValidateSquare(m); err != nil {
		return err
	}
	if err := ValidateEntries(m); err != nil {
		return err
	}
	if err := ValidateZeroDiagonal(m, tol); err != nil {
		return err
	}

	return ValidateSymmetric(m, tol)
}
