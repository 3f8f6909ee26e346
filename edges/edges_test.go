// SPDX-License-Identifier: MIT
package edges_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/katalvlaran/filtra/edges"
	"github.com/katalvlaran/filtra/grade"
	"github.com/katalvlaran/filtra/simplicial"
	"github.com/stretchr/testify/require"
)

// TestListAdd covers normalization and validation.
func TestListAdd(t *testing.T) {
	t.Parallel()

	l := edges.New[grade.Real](3)
	require.NoError(t, l.Add(2, 0, 1.5))
	s, err := l.Edges[0].Simplex()
	require.NoError(t, err)
	require.Equal(t, "[0 2]", s.String())

	require.True(t, errors.Is(l.Add(1, 1, 0), edges.ErrLoop))
	require.True(t, errors.Is(l.Add(0, 3, 0), edges.ErrVertexOutOfRange))
	require.Equal(t, 1, l.Len())
}

// TestFilteredEdgeSimplexUnsorted: hand-built edges bypass Add's
// normalization and must not turn into an empty simplex.
func TestFilteredEdgeSimplexUnsorted(t *testing.T) {
	t.Parallel()

	for _, e := range []edges.FilteredEdge[grade.Real]{{U: 3, V: 1}, {U: 2, V: 2}} {
		_, err := e.Simplex()
		require.Truef(t, errors.Is(err, simplicial.ErrUnsorted), "edge %v: got %v", e, err)
	}
}

// TestSortAndFilter checks ordering by grade then endpoints.
func TestSortAndFilter(t *testing.T) {
	t.Parallel()

	l := edges.New[grade.Real](4)
	require.NoError(t, l.Add(2, 3, 2))
	require.NoError(t, l.Add(0, 1, 1))
	require.NoError(t, l.Add(0, 3, 1))
	l.SortBy(func(a, b grade.Real) int {
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		}
		return 0
	})
	got := make([]string, 0, l.Len())
	for _, e := range l.Edges {
		s, err := e.Simplex()
		require.NoError(t, err)
		got = append(got, s.String())
	}
	require.Equal(t, []string{"[0 1]", "[0 3]", "[2 3]"}, got)

	short := l.Filter(func(e edges.FilteredEdge[grade.Real]) bool { return e.Grade <= 1 })
	require.Equal(t, 2, short.Len())
	require.Equal(t, 4, short.NumVertices)
}

// TestCodecRoundTrip writes and re-reads a vector-graded list.
func TestCodecRoundTrip(t *testing.T) {
	t.Parallel()

	l := edges.New[grade.Vector](5)
	require.NoError(t, l.Add(0, 1, grade.Vector{0.5, 1}))
	require.NoError(t, l.Add(3, 1, grade.Vector{2, 0}))

	var buf bytes.Buffer
	require.NoError(t, edges.Write(&buf, l, grade.Vector.String))
	require.Equal(t, "5\n0 1 0.5,1\n1 3 2,0\n", buf.String())

	back, err := edges.Read(&buf, grade.ParseVector)
	require.NoError(t, err)
	require.Equal(t, l, back)
}

// TestReadErrors covers malformed documents.
func TestReadErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		doc     string
		wantErr error
	}{
		{"empty", "# nothing\n", edges.ErrSyntax},
		{"bad count", "x\n", edges.ErrSyntax},
		{"short line", "3\n0 1\n", edges.ErrSyntax},
		{"bad endpoint", "3\n0 -1 2\n", edges.ErrSyntax},
		{"bad grade", "3\n0 1 z\n", grade.ErrSyntax},
		{"loop", "3\n1 1 0\n", edges.ErrLoop},
		{"range", "2\n0 2 0\n", edges.ErrVertexOutOfRange},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := edges.Read(strings.NewReader(tc.doc), grade.ParseReal)
			require.Truef(t, errors.Is(err, tc.wantErr), "expected errors.Is(%v, %v)", err, tc.wantErr)
		})
	}
}
