// Package filtration builds and validates filtrations: assignments of
// critical grades to the cells of a simplicial complex such that every cell's
// grade dominates the grades of all its faces.
//
// 🚀 What does the engine own?
//
//	grades[d][i] — the grade of the i-th simplex of dimension d, index-aligned
//	1:1 with the Complex's own indexing. The engine owns one Complex and keeps
//	len(grades[d]) == Complex.NumCells(d) after every operation.
//
// ✨ Invariants (checked on every insertion, auditable with Validate):
//
//   - Sync:         len(grades[d]) == NumCells(d) for every d.
//   - Monotonicity: grades[d−1][j] ≤ grades[d][i] for every facet j of (d, i).
//   - Append-only:  a new simplex of dimension d gets index NumCells(d).
//   - First grade wins: re-inserting a simplex never changes its grade.
//
// ⚙️ Usage:
//
//	f := filtration.NewSet[grade.Real](3, 1)
//	f.Insert(0, []simplicial.Vertex{0})
//	f.Insert(0, []simplicial.Vertex{1})
//	f.Insert(1, []simplicial.Vertex{0, 1})
//	g, _ := f.ValueOf(1, 0) // 1
//
// Errors (see errors.go):
//
//	*MonotonicityError — data error: a face's grade is not ≤ the new grade.
//	                     Nothing is recorded; the engine stays usable.
//	ErrMissingFace     — data error: a facet was never inserted.
//	ErrUnsorted        — caller error: vertices not strictly increasing.
//	ErrInvalidGrade    — data error: the grade is outside the order (NaN).
//	*SyncError         — collaborator error: the Complex broke its index
//	                     contract, or holds cells this engine never graded.
//	                     The engine is poisoned; further inserts
//	                     return ErrBroken.
//	ErrOutOfRange      — ValueOf on an unassigned (dim, index).
//
// Concurrency:
//
//	Mutations and grade reads are guarded by an RWMutex, so concurrent
//	ValueOf calls are safe alongside a single builder. The Complex returned by
//	Complex() is NOT guarded: call Freeze() before handing it to readers that
//	traverse structure while another goroutine could still insert.
package filtration
