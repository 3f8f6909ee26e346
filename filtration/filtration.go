// SPDX-License-Identifier: MIT
// Package: filtration
//
// filtration.go — construction, insertion and lookup.
//
// Insertion protocol (InsertSimplex):
//  1. Reject if broken / frozen / dimension out of range.
//  2. IndexOf(dim, s) hit → duplicate: return the existing index, grade untouched.
//  3. dim > 0: for every facet, IndexOf(dim−1, facet) must hit and its recorded
//     grade must be ≤ g. Failures are reported before the complex is mutated,
//     so a rejected simplex leaves complex and grades unchanged.
//  4. Complex.Add. The Complex must report a new cell at index len(grades[dim]);
//     anything else is a SyncError and poisons the engine.
//  5. Append g.

package filtration

import (
	"fmt"

	"github.com/katalvlaran/filtra/grade"
	"github.com/katalvlaran/filtra/simplicial"
)

// New wraps an existing complex. Every cell already present is seeded with
// the bottom grade of G; later insertions of those simplices are duplicates
// and do not change the seeded grade.
// Complexity: O(Σ NumCells(d)).
func New[G grade.Grade[G], S simplicial.Complex](c S, opts ...Option) *Filtration[G, S] {
	cfg := gatherOptions(opts)
	maxDim := c.MaxDimension()
	bottom := grade.Bottom[G]()

	grades := make([][]G, maxDim+1)
	for d := 0; d <= maxDim; d++ {
		n := c.NumCells(d)
		grades[d] = make([]G, n)
		for i := 0; i < n; i++ {
			grades[d][i] = bottom
		}
	}

	f := &Filtration[G, S]{grades: grades, complex: c, observer: nopObserver{}}
	if cfg.observer != nil {
		f.observer = cfg.observer
	}

	return f
}

// NewEmpty builds a fresh complex with factory and wraps it.
func NewEmpty[G grade.Grade[G], S simplicial.Complex](
	maxVertices simplicial.Vertex, maxDim int, factory simplicial.Factory[S], opts ...Option,
) *Filtration[G, S] {
	return New[G](factory(maxVertices, maxDim), opts...)
}

// NewSet builds an empty filtration over a simplicial.Set.
func NewSet[G grade.Grade[G]](maxVertices simplicial.Vertex, maxDim int, opts ...Option) *Filtration[G, *simplicial.Set] {
	return NewEmpty[G](maxVertices, maxDim, simplicial.NewSetFactory(), opts...)
}

// Insert adds the simplex spanned by vertices with grade g.
// vertices must be strictly increasing; they are rejected, never sorted.
// Returns ErrEmptySimplex, ErrUnsorted, or any InsertSimplex error.
func (f *Filtration[G, S]) Insert(g G, vertices []simplicial.Vertex) (Outcome, error) {
	s, err := simplicial.NewSimplex(vertices...)
	if err != nil {
		err = fmt.Errorf("Insert: %w", err)
		f.mu.Lock()
		f.observer.CellRejected(len(vertices)-1, err)
		f.mu.Unlock()

		return Outcome{}, err
	}

	return f.InsertSimplex(g, s.Dim(), s)
}

// InsertSimplex adds s as a simplex of dimension dim with grade g, following
// the protocol in the file header.
//
// Errors:
//   - ErrBroken (wrapping the SyncError) if a previous insertion poisoned the engine.
//   - ErrFrozen after Freeze.
//   - ErrDimensionOutOfRange, ErrDimensionMismatch, ErrInvalidGrade.
//   - ErrMissingFace, *MonotonicityError (ErrNotMonotone).
//   - *SyncError (ErrOutOfSync) if the Complex breaks its index contract.
//
// Complexity: O(k²) hashing for a k-simplex plus the Complex's own Add cost.
func (f *Filtration[G, S]) InsertSimplex(g G, dim int, s simplicial.Simplex) (Outcome, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	out, err := f.insertLocked(g, dim, s)
	switch {
	case err != nil:
		f.observer.CellRejected(dim, err)
	case out.Inserted:
		f.observer.CellInserted(out.Dim, out.Index)
	default:
		f.observer.CellDuplicate(out.Dim, out.Index)
	}

	return out, err
}

func (f *Filtration[G, S]) insertLocked(g G, dim int, s simplicial.Simplex) (Outcome, error) {
	// 1) Engine state and shape.
	if f.broken != nil {
		return Outcome{}, &brokenError{cause: f.broken}
	}
	if f.frozen {
		return Outcome{}, fmt.Errorf("InsertSimplex(%v): %w", s, ErrFrozen)
	}
	if dim < 0 || dim >= len(f.grades) {
		return Outcome{}, fmt.Errorf("InsertSimplex(%v): dim=%d not in [0,%d]: %w",
			s, dim, len(f.grades)-1, ErrDimensionOutOfRange)
	}
	if s.Dim() != dim {
		return Outcome{}, fmt.Errorf("InsertSimplex(%v): dim=%d: %w", s, dim, ErrDimensionMismatch)
	}
	if !g.Lte(g) || !grade.Bottom[G]().Lte(g) {
		return Outcome{}, fmt.Errorf("InsertSimplex(%v): grade %v: %w", s, g, ErrInvalidGrade)
	}

	// 2) Idempotent insert: first grade wins. The hit must name a graded cell.
	if idx, ok := f.complex.IndexOf(dim, s); ok {
		if idx < 0 || idx >= len(f.grades[dim]) {
			return Outcome{}, f.poison(&SyncError{Dim: dim, Simplex: s, Expected: len(f.grades[dim]) - 1, Reported: idx})
		}

		return Outcome{Dim: dim, Index: idx, Inserted: false}, nil
	}

	// 3) Faces must exist and precede g.
	if dim > 0 {
		faces := f.grades[dim-1]
		for i := 0; i < s.Len(); i++ {
			face := s.Facet(i)
			fi, ok := f.complex.IndexOf(dim-1, face)
			if !ok {
				return Outcome{}, fmt.Errorf("InsertSimplex(%v): facet %v: %w", s, face, ErrMissingFace)
			}
			if fi < 0 || fi >= len(faces) {
				return Outcome{}, f.poison(&SyncError{Dim: dim - 1, Simplex: face, Expected: len(faces) - 1, Reported: fi})
			}
			if !faces[fi].Lte(g) {
				return Outcome{}, &MonotonicityError{
					Dim: dim, Simplex: s, Face: face, FaceIndex: fi, FaceGrade: faces[fi], Grade: g,
				}
			}
		}
	}

	// 4) Structural insertion; the Complex must append at the expected index.
	expected := len(f.grades[dim])
	idx, inserted, err := f.complex.Add(dim, s)
	if err != nil {
		return Outcome{}, fmt.Errorf("InsertSimplex(%v): %w", s, err)
	}
	if !inserted {
		return Outcome{}, f.poison(&SyncError{Dim: dim, Simplex: s, Expected: expected, Reported: -1})
	}
	if idx != expected {
		return Outcome{}, f.poison(&SyncError{Dim: dim, Simplex: s, Expected: expected, Reported: idx})
	}

	// 5) Record.
	f.grades[dim] = append(f.grades[dim], g)

	return Outcome{Dim: dim, Index: idx, Inserted: true}, nil
}

// poison marks the engine broken and returns err unchanged.
func (f *Filtration[G, S]) poison(err *SyncError) error {
	f.broken = err

	return err
}

// ValueOf returns the grade of the cell at (dim, index).
// Returns ErrOutOfRange for an unassigned coordinate. Complexity: O(1).
func (f *Filtration[G, S]) ValueOf(dim, index int) (G, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if dim < 0 || dim >= len(f.grades) || index < 0 || index >= len(f.grades[dim]) {
		var zero G
		return zero, fmt.Errorf("ValueOf(%d, %d): %w", dim, index, ErrOutOfRange)
	}

	return f.grades[dim][index], nil
}

// GradeOf looks up s and returns its grade.
// Returns ErrOutOfRange when s is not in the filtration.
func (f *Filtration[G, S]) GradeOf(s simplicial.Simplex) (G, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	dim := s.Dim()
	if dim >= 0 && dim < len(f.grades) {
		if idx, ok := f.complex.IndexOf(dim, s); ok && idx < len(f.grades[dim]) {
			return f.grades[dim][idx], nil
		}
	}
	var zero G

	return zero, fmt.Errorf("GradeOf(%v): %w", s, ErrOutOfRange)
}

// Grades returns a copy of the grades of dimension dim (nil when out of range).
func (f *Filtration[G, S]) Grades(dim int) []G {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if dim < 0 || dim >= len(f.grades) {
		return nil
	}
	out := make([]G, len(f.grades[dim]))
	copy(out, f.grades[dim])

	return out
}

// Complex returns the underlying complex for structural traversal.
// It must be treated as read-only; see the package doc on concurrency.
func (f *Filtration[G, S]) Complex() S {
	return f.complex
}

// MaxDimension returns the dimension bound of the underlying complex.
func (f *Filtration[G, S]) MaxDimension() int {
	return len(f.grades) - 1
}

// NumCells returns the number of graded cells of dimension dim.
func (f *Filtration[G, S]) NumCells(dim int) int {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if dim < 0 || dim >= len(f.grades) {
		return 0
	}

	return len(f.grades[dim])
}

// Freeze ends the build phase: later insertions return ErrFrozen.
// Freeze is idempotent.
func (f *Filtration[G, S]) Freeze() {
	f.mu.Lock()
	f.frozen = true
	f.mu.Unlock()
}

// Frozen reports whether Freeze was called.
func (f *Filtration[G, S]) Frozen() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()

	return f.frozen
}

// Err returns the SyncError that poisoned the engine, or nil.
func (f *Filtration[G, S]) Err() error {
	f.mu.RLock()
	defer f.mu.RUnlock()

	return f.broken
}

// Stats returns a snapshot of cell counts and state flags. Complexity: O(D).
func (f *Filtration[G, S]) Stats() Stats {
	f.mu.RLock()
	defer f.mu.RUnlock()

	st := Stats{
		MaxDimension: len(f.grades) - 1,
		Cells:        make([]int, len(f.grades)),
		Frozen:       f.frozen,
		Broken:       f.broken != nil,
	}
	for d, gs := range f.grades {
		st.Cells[d] = len(gs)
		st.Total += len(gs)
	}

	return st
}
