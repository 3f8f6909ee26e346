// SPDX-License-Identifier: MIT
// Package: core
//
// methods.go — vertex and edge mutation plus neighbourhood queries.

package core

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/filtra/simplicial"
)

// AddVertex registers v. Adding an existing vertex is a no-op.
func (g *Graph) AddVertex(v simplicial.Vertex) {
	g.muVert.Lock()
	defer g.muVert.Unlock()

	g.vertices[v] = struct{}{}
}

// HasVertex reports whether v is registered.
func (g *Graph) HasVertex(v simplicial.Vertex) bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	_, ok := g.vertices[v]

	return ok
}

// AddEdge connects u and v and reports whether the edge is new.
//
// Implementation:
//   - Stage 1: reject u == v (ErrLoopNotAllowed).
//   - Stage 2: under muVert (read) then muEdgeAdj (write), require both
//     endpoints (ErrVertexNotFound).
//   - Stage 3: mirror the edge into both buckets unless already present.
//
// Complexity: O(1) expected.
func (g *Graph) AddEdge(u, v simplicial.Vertex) (bool, error) {
	if u == v {
		return false, fmt.Errorf("AddEdge(%d, %d): %w", u, v, ErrLoopNotAllowed)
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	for _, x := range [2]simplicial.Vertex{u, v} {
		if _, ok := g.vertices[x]; !ok {
			return false, fmt.Errorf("AddEdge(%d, %d): vertex %d: %w", u, v, x, ErrVertexNotFound)
		}
	}
	if _, ok := g.adjacencyList[u][v]; ok {
		return false, nil
	}
	g.ensureBucket(u)[v] = struct{}{}
	g.ensureBucket(v)[u] = struct{}{}
	g.edgeCount++

	return true, nil
}

// ensureBucket returns u's adjacency bucket, allocating it on first use.
// Caller holds muEdgeAdj for writing.
func (g *Graph) ensureBucket(u simplicial.Vertex) map[simplicial.Vertex]struct{} {
	b, ok := g.adjacencyList[u]
	if !ok {
		b = make(map[simplicial.Vertex]struct{})
		g.adjacencyList[u] = b
	}

	return b
}

// HasEdge reports whether {u, v} is an edge. Absent vertices yield false.
func (g *Graph) HasEdge(u, v simplicial.Vertex) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	_, ok := g.adjacencyList[u][v]

	return ok
}

// NeighborIDs returns the neighbours of v, ascending and unique.
// Returns ErrVertexNotFound for an unregistered v. Complexity: O(d log d).
func (g *Graph) NeighborIDs(v simplicial.Vertex) ([]simplicial.Vertex, error) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[v]; !ok {
		return nil, fmt.Errorf("NeighborIDs(%d): %w", v, ErrVertexNotFound)
	}
	out := make([]simplicial.Vertex, 0, len(g.adjacencyList[v]))
	for w := range g.adjacencyList[v] {
		out = append(out, w)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out, nil
}

// Degree returns the number of neighbours of v (0 for an absent vertex).
func (g *Graph) Degree(v simplicial.Vertex) int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.adjacencyList[v])
}

// VertexCount returns the number of registered vertices.
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return g.edgeCount
}
