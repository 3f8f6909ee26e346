// SPDX-License-Identifier: MIT
package filtration_test

import (
	"testing"

	"github.com/katalvlaran/filtra/filtration"
	"github.com/katalvlaran/filtra/grade"
	"github.com/katalvlaran/filtra/simplicial"
	"github.com/stretchr/testify/require"
)

// vs is shorthand for a vertex slice literal.
func vs(v ...simplicial.Vertex) []simplicial.Vertex { return v }

// mustInsert inserts and requires a fresh cell.
func mustInsert[G grade.Grade[G], S simplicial.Complex](
	t *testing.T, f *filtration.Filtration[G, S], g G, v []simplicial.Vertex,
) filtration.Outcome {
	t.Helper()
	out, err := f.Insert(g, v)
	require.NoError(t, err)
	require.True(t, out.Inserted, "expected %v to be new", v)

	return out
}

// triangleFixture builds a triangle boundary: vertices at 0, edges at 1,1,2.
func triangleFixture(t *testing.T) (*filtration.Filtration[grade.Real, *simplicial.Set], filtration.Outcome) {
	t.Helper()
	f := filtration.NewSet[grade.Real](3, 2)
	for _, v := range []simplicial.Vertex{0, 1, 2} {
		mustInsert(t, f, 0, vs(v))
	}
	mustInsert(t, f, 1, vs(0, 1))
	mustInsert(t, f, 1, vs(1, 2))
	last := mustInsert(t, f, 2, vs(0, 2))

	return f, last
}

// lyingComplex wraps a Set and corrupts the index contract on demand.
type lyingComplex struct {
	*simplicial.Set
	shift    int  // added to every newly assigned index
	denyNew  bool // report "already present" for new simplices
	hideFrom int  // IndexOf reports misses for dims ≥ hideFrom (when > 0)
	faceLift int  // added to every IndexOf hit in dimension 0
}

func (c *lyingComplex) Add(dim int, s simplicial.Simplex) (int, bool, error) {
	idx, inserted, err := c.Set.Add(dim, s)
	if err != nil || !inserted {
		return idx, inserted, err
	}
	if c.denyNew {
		return idx, false, nil
	}

	return idx + c.shift, true, nil
}

func (c *lyingComplex) IndexOf(dim int, s simplicial.Simplex) (int, bool) {
	if c.hideFrom > 0 && dim >= c.hideFrom {
		return 0, false
	}

	idx, ok := c.Set.IndexOf(dim, s)
	if ok && dim == 0 {
		idx += c.faceLift
	}

	return idx, ok
}

// recorder is an Observer collecting events.
type recorder struct {
	inserted, duplicate, rejected []int
	errs                          []error
}

func (r *recorder) CellInserted(dim, _ int)  { r.inserted = append(r.inserted, dim) }
func (r *recorder) CellDuplicate(dim, _ int) { r.duplicate = append(r.duplicate, dim) }
func (r *recorder) CellRejected(dim int, err error) {
	r.rejected = append(r.rejected, dim)
	r.errs = append(r.errs, err)
}
