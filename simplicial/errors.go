// SPDX-License-Identifier: MIT

package simplicial

import "errors"

// Sentinel errors for simplex construction and complex operations.
var (
	// ErrEmptySimplex indicates a simplex with no vertices.
	ErrEmptySimplex = errors.New("simplicial: empty simplex")

	// ErrUnsorted indicates a vertex sequence that is not strictly increasing
	// (out of order or containing duplicates).
	ErrUnsorted = errors.New("simplicial: vertices not strictly increasing")

	// ErrDimensionOutOfRange indicates a dimension outside [0, MaxDimension].
	ErrDimensionOutOfRange = errors.New("simplicial: dimension out of range")

	// ErrDimensionMismatch indicates a declared dimension differing from len(vertices)-1.
	ErrDimensionMismatch = errors.New("simplicial: dimension does not match vertex count")

	// ErrOutOfRange indicates a cell index outside [0, NumCells(dim)).
	ErrOutOfRange = errors.New("simplicial: cell index out of range")

	// ErrMissingFace indicates a facet that is not present in the complex.
	ErrMissingFace = errors.New("simplicial: facet not present")
)
