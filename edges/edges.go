// SPDX-License-Identifier: MIT
// Package edges provides graded edge lists: the usual input of flag
// (clique) filtrations, where every higher simplex inherits its grade from
// its edges.
//
// A List carries the vertex count explicitly, so isolated vertices survive a
// round trip through the text codec.
package edges

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/filtra/simplicial"
)

// Sentinel errors for edge lists.
var (
	// ErrLoop indicates an edge whose endpoints coincide.
	ErrLoop = errors.New("edges: self-loop")

	// ErrVertexOutOfRange indicates an endpoint ≥ NumVertices.
	ErrVertexOutOfRange = errors.New("edges: vertex out of range")

	// ErrSyntax indicates a malformed edge-list document.
	ErrSyntax = errors.New("edges: invalid syntax")
)

// FilteredEdge is an edge {U, V} with U < V entering at Grade.
type FilteredEdge[G any] struct {
	U, V  simplicial.Vertex
	Grade G
}

// Simplex returns the edge as a verified 1-simplex.
// Returns simplicial.ErrUnsorted unless U < V; List.Add normalizes, but
// Edges is an exported field and may be filled directly.
func (e FilteredEdge[G]) Simplex() (simplicial.Simplex, error) {
	s, err := simplicial.NewSimplex(e.U, e.V)
	if err != nil {
		return simplicial.Simplex{}, fmt.Errorf("FilteredEdge(%d, %d): %w", e.U, e.V, err)
	}

	return s, nil
}

// List is a graded edge list over vertices 0..NumVertices−1.
type List[G any] struct {
	NumVertices int
	Edges       []FilteredEdge[G]
}

// New returns an empty list over n vertices.
func New[G any](n int) *List[G] {
	return &List[G]{NumVertices: n}
}

// Add appends {u, v} at g, normalizing the endpoint order.
// Returns ErrLoop or ErrVertexOutOfRange. Complexity: O(1) amortized.
func (l *List[G]) Add(u, v simplicial.Vertex, g G) error {
	if u == v {
		return fmt.Errorf("List.Add(%d, %d): %w", u, v, ErrLoop)
	}
	if int(u) >= l.NumVertices || int(v) >= l.NumVertices {
		return fmt.Errorf("List.Add(%d, %d): n=%d: %w", u, v, l.NumVertices, ErrVertexOutOfRange)
	}
	if u > v {
		u, v = v, u
	}
	l.Edges = append(l.Edges, FilteredEdge[G]{U: u, V: v, Grade: g})

	return nil
}

// Len returns the number of edges.
func (l *List[G]) Len() int {
	return len(l.Edges)
}

// SortBy stably sorts edges by cmp on grades, ties broken by (U, V).
// cmp must be a total preorder (e.g. a lexicographic key for vector grades).
func (l *List[G]) SortBy(cmp func(a, b G) int) {
	sort.SliceStable(l.Edges, func(i, j int) bool {
		a, b := l.Edges[i], l.Edges[j]
		if c := cmp(a.Grade, b.Grade); c != 0 {
			return c < 0
		}
		if a.U != b.U {
			return a.U < b.U
		}

		return a.V < b.V
	})
}

// Filter returns a new list keeping the edges for which keep returns true.
func (l *List[G]) Filter(keep func(FilteredEdge[G]) bool) *List[G] {
	out := &List[G]{NumVertices: l.NumVertices}
	for _, e := range l.Edges {
		if keep(e) {
			out.Edges = append(out.Edges, e)
		}
	}

	return out
}
