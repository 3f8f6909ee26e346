// SPDX-License-Identifier: MIT

package rips_test

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/filtra/distance"
	"github.com/katalvlaran/filtra/edges"
	"github.com/katalvlaran/filtra/filtration"
	"github.com/katalvlaran/filtra/grade"
	"github.com/katalvlaran/filtra/rips"
	"github.com/katalvlaran/filtra/simplicial"
)

func triangle(t *testing.T) *edges.List[grade.Real] {
	t.Helper()
	l := edges.New[grade.Real](3)
	require.NoError(t, l.Add(0, 1, 1))
	require.NoError(t, l.Add(2, 1, 2))
	require.NoError(t, l.Add(0, 2, 3))

	return l
}

func complete(t *testing.T, n int) *edges.List[grade.Real] {
	t.Helper()
	l := edges.New[grade.Real](n)
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			require.NoError(t, l.Add(simplicial.Vertex(u), simplicial.Vertex(v), grade.Real(u+v)))
		}
	}

	return l
}

func simplex(t *testing.T, vs ...simplicial.Vertex) simplicial.Simplex {
	t.Helper()
	s, err := simplicial.NewSimplex(vs...)
	require.NoError(t, err)

	return s
}

func TestBuild_Triangle(t *testing.T) {
	f, err := rips.Build(triangle(t), 2)
	require.NoError(t, err)
	require.Equal(t, []int{3, 3, 1}, f.Stats().Cells)
	require.NoError(t, f.Validate())

	g, err := f.GradeOf(simplex(t, 0, 1, 2))
	require.NoError(t, err)
	require.Equal(t, grade.Real(3), g)

	g, err = f.ValueOf(0, 2)
	require.NoError(t, err)
	require.Equal(t, grade.Real(0).MinValue(), g)
}

func TestBuild_Truncation(t *testing.T) {
	cases := []struct {
		name   string
		maxDim int
		want   []int
	}{
		{"vertices", 0, []int{5}},
		{"graph", 1, []int{5, 10}},
		{"2-skeleton", 2, []int{5, 10, 10}},
		{"3-skeleton", 3, []int{5, 10, 10, 5}},
		{"full", 4, []int{5, 10, 10, 5, 1}},
		{"beyond", 6, []int{5, 10, 10, 5, 1, 0, 0}},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			f, err := rips.Build(complete(t, 5), tc.maxDim)
			require.NoError(t, err)
			require.Equal(t, tc.want, f.Stats().Cells)
			require.NoError(t, f.Validate())
		})
	}
}

func TestBuild_CliqueGradeIsJoinOfEdges(t *testing.T) {
	f, err := rips.Build(complete(t, 4), 3)
	require.NoError(t, err)

	// Edge {u,v} is graded u+v, so every clique takes the grade of its two
	// largest vertices.
	err = f.Walk(func(dim, _ int, s simplicial.Simplex, g grade.Real) bool {
		if dim < 1 {
			return true
		}
		n := s.Len()
		require.Equal(t, grade.Real(s.At(n-1)+s.At(n-2)), g, "simplex %v", s)

		return true
	})
	require.NoError(t, err)
}

func TestBuild_DuplicateEdgeKeepsFirstGrade(t *testing.T) {
	l := triangle(t)
	require.NoError(t, l.Add(1, 0, 0.5))

	f, err := rips.Build(l, 2)
	require.NoError(t, err)
	require.Equal(t, []int{3, 3, 1}, f.Stats().Cells)

	g, err := f.GradeOf(simplex(t, 0, 1))
	require.NoError(t, err)
	require.Equal(t, grade.Real(1), g)
}

func TestBuild_Errors(t *testing.T) {
	_, err := rips.Build[grade.Real](nil, 2)
	require.ErrorIs(t, err, rips.ErrNilList)

	_, err = rips.Build(triangle(t), -1)
	require.ErrorIs(t, err, rips.ErrBadDimension)

	_, err = rips.Build(triangle(t), 2, rips.WithVertexGrades([]grade.Real{0, 0}))
	require.ErrorIs(t, err, rips.ErrVertexGrades)

	// Vertex 2 enters after edge {1,2}.
	_, err = rips.Build(triangle(t), 2, rips.WithVertexGrades([]grade.Real{0, 0, 5}))
	require.ErrorIs(t, err, filtration.ErrNotMonotone)
	var me *filtration.MonotonicityError
	require.ErrorAs(t, err, &me)
	require.Equal(t, 1, me.Dim)

	// Endpoint outside the vertex range.
	l := edges.New[grade.Real](2)
	l.Edges = append(l.Edges, edges.FilteredEdge[grade.Real]{U: 0, V: 7, Grade: 1})
	_, err = rips.Build(l, 1)
	require.ErrorIs(t, err, filtration.ErrMissingFace)

	// Hand-built edges with U >= V are rejected, not inserted as empty simplices.
	for _, e := range []edges.FilteredEdge[grade.Real]{{U: 1, V: 0, Grade: 1}, {U: 1, V: 1, Grade: 1}} {
		l := edges.New[grade.Real](2)
		l.Edges = append(l.Edges, e)
		_, err = rips.Build(l, 1)
		require.ErrorIs(t, err, simplicial.ErrUnsorted)
	}
}

func TestBuild_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	f, err := rips.Build(complete(t, 6), 3, rips.WithContext[grade.Real](ctx))
	require.ErrorIs(t, err, context.Canceled)
	require.Nil(t, f)

	// Vertex-only builds honour the context too.
	_, err = rips.Build(complete(t, 6), 0, rips.WithContext[grade.Real](ctx))
	require.ErrorIs(t, err, context.Canceled)
}

// cancelAfter cancels its context once n cells were inserted.
type cancelAfter struct {
	n      int64
	seen   atomic.Int64
	cancel context.CancelFunc
}

func (c *cancelAfter) CellInserted(int, int) {
	if c.seen.Add(1) == c.n {
		c.cancel()
	}
}
func (c *cancelAfter) CellDuplicate(int, int)  {}
func (c *cancelAfter) CellRejected(int, error) {}

func TestBuild_CancelledBetweenLayers(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// K20 has 20 vertices and 190 edges; cancel during the edge pass.
	obs := &cancelAfter{n: 100, cancel: cancel}
	_, err := rips.Build(complete(t, 20), 3,
		rips.WithContext[grade.Real](ctx), rips.WithObserver[grade.Real](obs))
	require.ErrorIs(t, err, context.Canceled)
	require.Less(t, obs.seen.Load(), int64(20+190+1140))
}

func TestBuild_Bigraded(t *testing.T) {
	m, err := distance.FromPoints([][]float64{{0}, {1}, {2}, {10}})
	require.NoError(t, err)
	vg, l, err := m.Bigraded(1, 5)
	require.NoError(t, err)

	f, err := rips.Build(l, 2, rips.WithVertexGrades(vg))
	require.NoError(t, err)
	require.Equal(t, []int{4, 3, 1}, f.Stats().Cells)
	require.NoError(t, f.Validate())

	g, err := f.GradeOf(simplex(t, 0, 1, 2))
	require.NoError(t, err)
	require.Equal(t, grade.Vector{1, 2}, g)

	g, err = f.GradeOf(simplex(t, 3))
	require.NoError(t, err)
	require.Equal(t, grade.Vector{8, 0}, g)
}

type counter struct{ inserted, duplicate, rejected atomic.Int64 }

func (c *counter) CellInserted(int, int)  { c.inserted.Add(1) }
func (c *counter) CellDuplicate(int, int) { c.duplicate.Add(1) }
func (c *counter) CellRejected(int, error) { c.rejected.Add(1) }

func TestBuild_Observer(t *testing.T) {
	l := triangle(t)
	require.NoError(t, l.Add(0, 1, 9))

	var c counter
	_, err := rips.Build(l, 2, rips.WithObserver[grade.Real](&c))
	require.NoError(t, err)
	require.EqualValues(t, 7, c.inserted.Load())
	require.EqualValues(t, 1, c.duplicate.Load())
	require.EqualValues(t, 0, c.rejected.Load())
}

func BenchmarkBuild_Complete20(b *testing.B) {
	l := edges.New[grade.Real](20)
	for u := 0; u < 20; u++ {
		for v := u + 1; v < 20; v++ {
			_ = l.Add(simplicial.Vertex(u), simplicial.Vertex(v), grade.Real(u*v))
		}
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := rips.Build(l, 3); err != nil {
			b.Fatal(err)
		}
	}
}
