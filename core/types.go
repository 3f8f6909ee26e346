// SPDX-License-Identifier: MIT
// Package core provides the undirected simple graph that carries the
// 1-skeleton of a flag complex: vertices are simplicial.Vertex values and
// every accepted edge is stored once, mirrored in both adjacency buckets.
//
// Policy:
//   - self-loops are rejected (ErrLoopNotAllowed);
//   - a repeated edge is a no-op, so the graph stays simple;
//   - neighbour queries are deterministic (ascending vertex order).
//
// Concurrency:
//   - muVert guards the vertex catalog, muEdgeAdj the adjacency buckets.
//     Mutators lock muVert → muEdgeAdj in that order; readers take read locks
//     in the same order.
package core

import (
	"errors"
	"sync"

	"github.com/katalvlaran/filtra/simplicial"
)

// Sentinel errors for graph operations.
var (
	// ErrVertexNotFound indicates an operation on an absent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates an edge {v, v}.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// Graph is an undirected simple graph over simplicial.Vertex.
type Graph struct {
	muVert    sync.RWMutex
	muEdgeAdj sync.RWMutex

	vertices      map[simplicial.Vertex]struct{}
	adjacencyList map[simplicial.Vertex]map[simplicial.Vertex]struct{}
	edgeCount     int
}

// GraphOption configures a Graph at construction time.
type GraphOption func(g *Graph)

// WithVertices pre-registers vertices 0..n−1.
func WithVertices(n int) GraphOption {
	return func(g *Graph) {
		for v := 0; v < n; v++ {
			g.vertices[simplicial.Vertex(v)] = struct{}{}
		}
	}
}

// NewGraph returns an empty graph with opts applied.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:      make(map[simplicial.Vertex]struct{}),
		adjacencyList: make(map[simplicial.Vertex]map[simplicial.Vertex]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
