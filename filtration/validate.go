// SPDX-License-Identifier: MIT
// Package: filtration
//
// validate.go — full audit of the sync and monotonicity invariants.
//
// Validate walks every cell through Complex.Boundary rather than through the
// facet lookups used during insertion, so it also catches a Complex whose
// Boundary disagrees with its IndexOf, and filtrations built with New over a
// pre-populated complex.

package filtration

import (
	"fmt"

	"github.com/katalvlaran/filtra/simplicial"
)

// Validate checks, for every dimension d:
//   - len(grades[d]) == Complex.NumCells(d)  (else *SyncError)
//   - every boundary index of (d, i) is a graded cell of d−1 (else *SyncError)
//   - grades[d−1][j] ≤ grades[d][i] for every boundary j (else *MonotonicityError)
//
// Boundary errors from the Complex (e.g. ErrMissingFace) are returned wrapped.
// Validate does not poison the engine. Complexity: O(Σ cells · boundary cost).
func (f *Filtration[G, S]) Validate() error {
	f.mu.RLock()
	defer f.mu.RUnlock()

	for d := range f.grades {
		if n := f.complex.NumCells(d); n != len(f.grades[d]) {
			return &SyncError{Dim: d, Expected: len(f.grades[d]), Reported: n}
		}
	}
	for d := 1; d < len(f.grades); d++ {
		for i, g := range f.grades[d] {
			boundary, err := f.complex.Boundary(d, i)
			if err != nil {
				return fmt.Errorf("Validate: cell (%d, %d): %w", d, i, err)
			}
			for _, j := range boundary {
				if j < 0 || j >= len(f.grades[d-1]) {
					return &SyncError{Dim: d - 1, Expected: len(f.grades[d-1]), Reported: j}
				}
				if fg := f.grades[d-1][j]; !fg.Lte(g) {
					s, _ := f.complex.Simplex(d, i)
					face, _ := f.complex.Simplex(d-1, j)

					return &MonotonicityError{Dim: d, Simplex: s, Face: face, FaceIndex: j, FaceGrade: fg, Grade: g}
				}
			}
		}
	}

	return nil
}

// Walk calls fn for every cell in dimension-major, index-minor order until fn
// returns false. fn must not call back into the engine.
func (f *Filtration[G, S]) Walk(fn func(dim, index int, s simplicial.Simplex, g G) bool) error {
	f.mu.RLock()
	defer f.mu.RUnlock()

	for d, gs := range f.grades {
		for i, g := range gs {
			s, err := f.complex.Simplex(d, i)
			if err != nil {
				return fmt.Errorf("Walk: cell (%d, %d): %w", d, i, err)
			}
			if !fn(d, i, s, g) {
				return nil
			}
		}
	}

	return nil
}
