// SPDX-License-Identifier: MIT
package simplicial_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/filtra/simplicial"
	"github.com/stretchr/testify/require"
)

// mustSimplex is a test helper that fails the test on invalid input.
func mustSimplex(t *testing.T, vs ...simplicial.Vertex) simplicial.Simplex {
	t.Helper()
	s, err := simplicial.NewSimplex(vs...)
	require.NoError(t, err)

	return s
}

// TestSetAddIdempotent verifies index assignment and idempotent insert.
func TestSetAddIdempotent(t *testing.T) {
	t.Parallel()

	c := simplicial.NewSet(4, 2)
	for i := 0; i < 3; i++ {
		idx, inserted, err := c.Add(0, mustSimplex(t, simplicial.Vertex(i)))
		require.NoError(t, err)
		require.True(t, inserted)
		require.Equal(t, i, idx)
	}
	idx, inserted, err := c.Add(0, mustSimplex(t, 1))
	require.NoError(t, err)
	require.False(t, inserted)
	require.Equal(t, 1, idx)
	require.Equal(t, 3, c.NumCells(0))
	require.Equal(t, 0, c.NumCells(1))
	require.Equal(t, 0, c.NumCells(7))
}

// TestSetErrors covers dimension and index validation.
func TestSetErrors(t *testing.T) {
	t.Parallel()

	c := simplicial.NewSet(0, 1)

	_, _, err := c.Add(2, mustSimplex(t, 0, 1, 2))
	require.True(t, errors.Is(err, simplicial.ErrDimensionOutOfRange))

	_, _, err = c.Add(1, mustSimplex(t, 0))
	require.True(t, errors.Is(err, simplicial.ErrDimensionMismatch))

	_, err = c.Simplex(0, 0)
	require.True(t, errors.Is(err, simplicial.ErrOutOfRange))

	_, err = c.Boundary(-1, 0)
	require.True(t, errors.Is(err, simplicial.ErrDimensionOutOfRange))

	require.Panics(t, func() { simplicial.NewSet(0, -1) })
}

// TestSetBoundary checks boundaries are exhaustive and refer to dim−1.
func TestSetBoundary(t *testing.T) {
	t.Parallel()

	c := simplicial.NewSet(3, 2)
	for _, v := range []simplicial.Vertex{0, 1, 2} {
		_, _, err := c.Add(0, mustSimplex(t, v))
		require.NoError(t, err)
	}
	for _, e := range [][]simplicial.Vertex{{0, 1}, {1, 2}, {0, 2}} {
		_, _, err := c.Add(1, mustSimplex(t, e...))
		require.NoError(t, err)
	}
	tri, inserted, err := c.Add(2, mustSimplex(t, 0, 1, 2))
	require.NoError(t, err)
	require.True(t, inserted)

	b, err := c.Boundary(2, tri)
	require.NoError(t, err)
	// facets in drop order: [1 2] (idx 1), [0 2] (idx 2), [0 1] (idx 0)
	require.Equal(t, []int{1, 2, 0}, b)

	b, err = c.Boundary(1, 2)
	require.NoError(t, err)
	require.ElementsMatch(t, []int{0, 2}, b)

	b, err = c.Boundary(0, 0)
	require.NoError(t, err)
	require.Empty(t, b)

	s, err := c.Simplex(1, 2)
	require.NoError(t, err)
	require.Equal(t, "[0 2]", s.String())

	idx, ok := c.IndexOf(1, mustSimplex(t, 1, 2))
	require.True(t, ok)
	require.Equal(t, 1, idx)
	_, ok = c.IndexOf(1, mustSimplex(t, 0))
	require.False(t, ok)
}

// TestSetMissingFace reports a boundary whose facet was never added.
func TestSetMissingFace(t *testing.T) {
	t.Parallel()

	c := simplicial.NewSet(2, 1)
	_, _, err := c.Add(0, mustSimplex(t, 0))
	require.NoError(t, err)
	idx, _, err := c.Add(1, mustSimplex(t, 0, 1))
	require.NoError(t, err)

	_, err = c.Boundary(1, idx)
	require.True(t, errors.Is(err, simplicial.ErrMissingFace))
}
