// SPDX-License-Identifier: MIT
package core_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/katalvlaran/filtra/core"
	"github.com/katalvlaran/filtra/simplicial"
	"github.com/stretchr/testify/require"
)

// TestAddEdgePolicy covers loops, missing endpoints and repeated edges.
func TestAddEdgePolicy(t *testing.T) {
	t.Parallel()

	g := core.NewGraph(core.WithVertices(3))
	require.Equal(t, 3, g.VertexCount())

	added, err := g.AddEdge(0, 2)
	require.NoError(t, err)
	require.True(t, added)

	added, err = g.AddEdge(2, 0)
	require.NoError(t, err)
	require.False(t, added, "reversed endpoints name the same edge")
	require.Equal(t, 1, g.EdgeCount())

	_, err = g.AddEdge(1, 1)
	require.True(t, errors.Is(err, core.ErrLoopNotAllowed))

	_, err = g.AddEdge(1, 9)
	require.True(t, errors.Is(err, core.ErrVertexNotFound))
	require.False(t, g.HasVertex(9))

	g.AddVertex(9)
	_, err = g.AddEdge(1, 9)
	require.NoError(t, err)
	require.True(t, g.HasEdge(9, 1))
	require.False(t, g.HasEdge(0, 1))
}

// TestNeighborIDsSorted checks deterministic neighbour order.
func TestNeighborIDsSorted(t *testing.T) {
	t.Parallel()

	g := core.NewGraph(core.WithVertices(6))
	for _, w := range []simplicial.Vertex{5, 1, 3, 4} {
		_, err := g.AddEdge(2, w)
		require.NoError(t, err)
	}
	nb, err := g.NeighborIDs(2)
	require.NoError(t, err)
	require.Equal(t, []simplicial.Vertex{1, 3, 4, 5}, nb)
	require.Equal(t, 4, g.Degree(2))

	nb, err = g.NeighborIDs(0)
	require.NoError(t, err)
	require.Empty(t, nb)

	_, err = g.NeighborIDs(7)
	require.True(t, errors.Is(err, core.ErrVertexNotFound))
}

// TestConcurrentAddEdge races writers over overlapping edges.
func TestConcurrentAddEdge(t *testing.T) {
	const n = 40
	g := core.NewGraph(core.WithVertices(n))

	var wg sync.WaitGroup
	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i+1 < n; i++ {
				_, err := g.AddEdge(simplicial.Vertex(i), simplicial.Vertex(i+1))
				require.NoError(t, err)
				_ = g.Degree(simplicial.Vertex(i))
			}
		}()
	}
	wg.Wait()

	require.Equal(t, n-1, g.EdgeCount())
}
