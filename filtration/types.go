// SPDX-License-Identifier: MIT

package filtration

import (
	"sync"

	"github.com/katalvlaran/filtra/grade"
	"github.com/katalvlaran/filtra/simplicial"
)

// Outcome describes the effect of an insertion.
// Inserted is false when the simplex was already present; Index then points
// at the existing cell and its grade is unchanged.
type Outcome struct {
	Dim      int
	Index    int
	Inserted bool
}

// Observer receives engine events. Implementations must be cheap and must not
// call back into the engine (callbacks run under the engine's write lock).
type Observer interface {
	// CellInserted fires after a new cell's grade is recorded.
	CellInserted(dim, index int)

	// CellDuplicate fires when an insertion hit an existing cell.
	CellDuplicate(dim, index int)

	// CellRejected fires when an insertion failed; err is the returned error.
	CellRejected(dim int, err error)
}

// Stats is a read-only snapshot of the engine.
type Stats struct {
	MaxDimension int   // complex bound
	Cells        []int // Cells[d] == NumCells(d)
	Total        int   // Σ Cells
	Frozen       bool  // Freeze was called
	Broken       bool  // a SyncError poisoned the engine
}

// Filtration assigns a grade of type G to every cell of a Complex S.
//
// mu guards grades, frozen, broken and every access to complex made by the
// engine itself.
type Filtration[G grade.Grade[G], S simplicial.Complex] struct {
	mu sync.RWMutex

	// grades[d][i] is the critical grade of cell i in dimension d.
	grades [][]G

	// complex is the underlying simplicial complex.
	complex S

	frozen   bool
	broken   error
	observer Observer
}
