// SPDX-License-Identifier: MIT
// Package: matrix
//
// errors.go — sentinel errors shared by Dense and the validators.
//
// Sentinels are returned wrapped with method context ("Dense.At(3,0): ...");
// callers branch with errors.Is.

package matrix

import "errors"

var (
	// ErrInvalidDimensions indicates a non-positive row or column count.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates a row or column index outside the shape.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNaNInf indicates a NaN or ±Inf value under the finite-only policy.
	ErrNaNInf = errors.New("matrix: NaN or Inf value")

	// ErrNilMatrix indicates a nil matrix argument.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNonSquare indicates rows != cols where a square matrix is required.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrAsymmetry indicates |A[i,j] − A[j,i]| above tolerance.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric")

	// ErrNonZeroDiagonal indicates a diagonal entry above tolerance.
	ErrNonZeroDiagonal = errors.New("matrix: diagonal is not zero")

	// ErrNegative indicates a negative entry where only non-negative ones are allowed.
	ErrNegative = errors.New("matrix: negative entry")
)
