// SPDX-License-Identifier: MIT

package simplicial

// Complex is an append-only store of simplices grouped by dimension.
//
// Implementations MUST guarantee:
//   - Add is idempotent: re-adding an existing simplex returns (its index, false, nil).
//   - A new simplex of dimension d receives index NumCells(d) as observed before Add.
//   - Boundary(d, i) lists the index in d−1 of every facet of (d, i), without duplicates.
//
// Complex implementations are not required to be safe for concurrent use.
type Complex interface {
	// MaxDimension returns the largest accepted dimension.
	MaxDimension() int

	// NumCells returns the number of simplices of dimension dim
	// (0 for dim outside [0, MaxDimension]).
	NumCells(dim int) int

	// Add inserts s as a simplex of dimension dim.
	Add(dim int, s Simplex) (index int, inserted bool, err error)

	// Boundary returns the facet indices of the simplex at (dim, index).
	// Vertices (dim == 0) have an empty boundary.
	Boundary(dim, index int) ([]int, error)

	// IndexOf looks up s among the simplices of dimension dim.
	IndexOf(dim int, s Simplex) (int, bool)

	// Simplex returns the simplex stored at (dim, index).
	Simplex(dim, index int) (Simplex, error)
}

// Factory builds an empty complex sized for maxVertices vertices and
// simplices up to maxDim.
type Factory[S Complex] func(maxVertices Vertex, maxDim int) S
