// SPDX-License-Identifier: MIT
// Package: simplicial
//
// set.go — Set, the in-memory reference Complex.
//
// Storage per dimension d (k = d+1 vertices per simplex):
//   - flat[d]  : vertices of every simplex, concatenated in insertion order;
//     simplex i occupies flat[d][i*k : (i+1)*k].
//   - index[d] : Simplex.Key() → insertion index.
//
// Invariants:
//   - len(flat[d]) == k * len(index[d]) at all times.
//   - indices are dense and never reused.

package simplicial

import "fmt"

// Set is a Complex backed by flat slices and hash maps.
// The zero value is unusable; construct with NewSet.
type Set struct {
	maxDim int
	flat   [][]Vertex
	index  []map[string]int
}

var _ Complex = (*Set)(nil)

// NewSet returns an empty Set accepting dimensions 0..maxDim.
// maxVertices is a capacity hint for dimension 0, not a limit.
// A negative maxDim is a programmer error and panics.
func NewSet(maxVertices Vertex, maxDim int) *Set {
	if maxDim < 0 {
		panic(fmt.Sprintf("simplicial: NewSet: maxDim=%d must be >= 0", maxDim))
	}
	s := &Set{
		maxDim: maxDim,
		flat:   make([][]Vertex, maxDim+1),
		index:  make([]map[string]int, maxDim+1),
	}
	for d := 0; d <= maxDim; d++ {
		s.index[d] = make(map[string]int)
	}
	s.flat[0] = make([]Vertex, 0, int(maxVertices))
	s.index[0] = make(map[string]int, int(maxVertices))

	return s
}

// NewSetFactory adapts NewSet to the Factory signature.
func NewSetFactory() Factory[*Set] {
	return NewSet
}

// MaxDimension returns the largest accepted dimension. Complexity: O(1).
func (s *Set) MaxDimension() int {
	return s.maxDim
}

// NumCells returns the number of simplices of dimension dim. Complexity: O(1).
func (s *Set) NumCells(dim int) int {
	if dim < 0 || dim > s.maxDim {
		return 0
	}

	return len(s.index[dim])
}

// Add appends sx as a simplex of dimension dim unless already present.
// Faces are not required to be present; Boundary reports missing ones.
// Returns ErrDimensionOutOfRange or ErrDimensionMismatch.
// Complexity: O(k) amortized.
func (s *Set) Add(dim int, sx Simplex) (int, bool, error) {
	if err := s.checkDim("Add", dim); err != nil {
		return 0, false, err
	}
	if sx.Dim() != dim {
		return 0, false, fmt.Errorf("Set.Add(%d, %v): %w", dim, sx, ErrDimensionMismatch)
	}
	key := sx.Key()
	if idx, ok := s.index[dim][key]; ok {
		return idx, false, nil
	}
	idx := len(s.index[dim])
	s.index[dim][key] = idx
	s.flat[dim] = append(s.flat[dim], sx.vs...)

	return idx, true, nil
}

// IndexOf looks up sx among simplices of dimension dim. Complexity: O(k).
func (s *Set) IndexOf(dim int, sx Simplex) (int, bool) {
	if dim < 0 || dim > s.maxDim || sx.Dim() != dim {
		return 0, false
	}
	idx, ok := s.index[dim][sx.Key()]

	return idx, ok
}

// Simplex returns the simplex at (dim, index). Complexity: O(k).
func (s *Set) Simplex(dim, index int) (Simplex, error) {
	if err := s.checkCell("Simplex", dim, index); err != nil {
		return Simplex{}, err
	}
	k := dim + 1
	vs := make([]Vertex, k)
	copy(vs, s.flat[dim][index*k:(index+1)*k])

	return Simplex{vs: vs}, nil
}

// Boundary returns the facet indices of (dim, index), ordered by the position
// of the dropped vertex. Returns ErrMissingFace if a facet is absent.
// Complexity: O(k²).
func (s *Set) Boundary(dim, index int) ([]int, error) {
	sx, err := s.Simplex(dim, index)
	if err != nil {
		return nil, err
	}
	if dim == 0 {
		return nil, nil
	}
	out := make([]int, 0, sx.Len())
	for i := 0; i < sx.Len(); i++ {
		f := sx.Facet(i)
		fi, ok := s.index[dim-1][f.Key()]
		if !ok {
			return nil, fmt.Errorf("Set.Boundary(%d, %d): facet %v: %w", dim, index, f, ErrMissingFace)
		}
		out = append(out, fi)
	}

	return out, nil
}

func (s *Set) checkDim(method string, dim int) error {
	if dim < 0 || dim > s.maxDim {
		return fmt.Errorf("Set.%s: dim=%d not in [0,%d]: %w", method, dim, s.maxDim, ErrDimensionOutOfRange)
	}

	return nil
}

func (s *Set) checkCell(method string, dim, index int) error {
	if err := s.checkDim(method, dim); err != nil {
		return err
	}
	if index < 0 || index >= len(s.index[dim]) {
		return fmt.Errorf("Set.%s: index=%d not in [0,%d): %w", method, index, len(s.index[dim]), ErrOutOfRange)
	}

	return nil
}
