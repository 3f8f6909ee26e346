// SPDX-License-Identifier: MIT
package simplicial_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/filtra/simplicial"
	"github.com/stretchr/testify/require"
)

// TestNewSimplex covers the sorted/unique precondition.
func TestNewSimplex(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      []simplicial.Vertex
		wantErr error
	}{
		{"vertex", []simplicial.Vertex{4}, nil},
		{"triangle", []simplicial.Vertex{0, 2, 7}, nil},
		{"empty", nil, simplicial.ErrEmptySimplex},
		{"unsorted", []simplicial.Vertex{2, 1}, simplicial.ErrUnsorted},
		{"duplicate", []simplicial.Vertex{1, 1}, simplicial.ErrUnsorted},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			s, err := simplicial.NewSimplex(tc.in...)
			if tc.wantErr != nil {
				require.Truef(t, errors.Is(err, tc.wantErr), "expected errors.Is(%v, %v)", err, tc.wantErr)
				require.False(t, simplicial.IsSorted(tc.in) && len(tc.in) > 0)
				return
			}
			require.NoError(t, err)
			require.Equal(t, len(tc.in)-1, s.Dim())
			require.Equal(t, tc.in, s.Vertices())
		})
	}
}

// TestSimplexIsolation checks the wrapper owns its vertices.
func TestSimplexIsolation(t *testing.T) {
	t.Parallel()

	in := []simplicial.Vertex{1, 2, 3}
	s, err := simplicial.NewSimplex(in...)
	require.NoError(t, err)
	in[0] = 9
	out := s.Vertices()
	out[1] = 9
	require.Equal(t, "[1 2 3]", s.String())
}

// TestFacets lists the facets of a triangle in drop-position order.
func TestFacets(t *testing.T) {
	t.Parallel()

	s, err := simplicial.NewSimplex(0, 1, 2)
	require.NoError(t, err)

	var got []string
	for _, f := range s.Facets() {
		require.Equal(t, 1, f.Dim())
		got = append(got, f.String())
	}
	require.Equal(t, []string{"[1 2]", "[0 2]", "[0 1]"}, got)

	v, err := simplicial.NewSimplex(3)
	require.NoError(t, err)
	require.Nil(t, v.Facets())
	require.Panics(t, func() { v.Facet(0) })
}

// TestKeyDistinct checks keys separate simplices with equal digits.
func TestKeyDistinct(t *testing.T) {
	t.Parallel()

	a, _ := simplicial.NewSimplex(1, 23)
	b, _ := simplicial.NewSimplex(12, 3)
	c, _ := simplicial.NewSimplex(1, 23)
	require.NotEqual(t, a.Key(), b.Key())
	require.Equal(t, a.Key(), c.Key())
}
