// SPDX-License-Identifier: MIT
// Package: rips
//
// rips.go — Build, the flag filtration constructor.
//
// Clique enumeration:
//   - the accepted edges form a core.Graph (the 1-skeleton); neighbour lists
//     are snapshotted once, sorted, per vertex;
//   - (k+1)-cliques extend each k-clique σ by every common neighbour w > max(σ),
//     so each clique is produced exactly once, already sorted.
//
// Cancellation: the context from WithContext is checked before every
// dimension layer and every checkEvery insertions.
//
// Complexity: O(Σ_k #k-cliques · (k + deg)) plus engine insertion cost.

package rips

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/filtra/core"
	"github.com/katalvlaran/filtra/edges"
	"github.com/katalvlaran/filtra/filtration"
	"github.com/katalvlaran/filtra/grade"
	"github.com/katalvlaran/filtra/simplicial"
)

// checkEvery is the number of insertions between context checks.
const checkEvery = 1024

// Sentinel errors for Build.
var (
	// ErrNilList indicates a nil edge list.
	ErrNilList = errors.New("rips: edge list is nil")

	// ErrBadDimension indicates a negative maxDim.
	ErrBadDimension = errors.New("rips: max dimension must be >= 0")

	// ErrVertexGrades indicates vertex grades of the wrong length.
	ErrVertexGrades = errors.New("rips: vertex grades do not match vertex count")
)

// Build returns the flag filtration of list up to dimension maxDim.
//
// Errors:
//   - ErrNilList, ErrBadDimension, ErrVertexGrades (validation).
//   - engine errors wrapped with context, e.g. ErrNotMonotone when an edge
//     precedes one of its endpoints' vertex grades.
//   - simplicial.ErrUnsorted for a hand-built edge with U >= V.
//   - the context's error (context.Canceled, context.DeadlineExceeded).
func Build[G grade.Lattice[G]](list *edges.List[G], maxDim int, opts ...Option[G]) (*filtration.Filtration[G, *simplicial.Set], error) {
	// 1) Validate.
	if list == nil {
		return nil, ErrNilList
	}
	if maxDim < 0 {
		return nil, fmt.Errorf("Build: maxDim=%d: %w", maxDim, ErrBadDimension)
	}
	cfg := config[G]{ctx: context.Background()}
	for _, opt := range opts {
		opt(&cfg)
	}
	ctx := cfg.ctx
	if cfg.vertexGrades != nil && len(cfg.vertexGrades) != list.NumVertices {
		return nil, fmt.Errorf("Build: %d grades for %d vertices: %w",
			len(cfg.vertexGrades), list.NumVertices, ErrVertexGrades)
	}

	var fopts []filtration.Option
	if cfg.observer != nil {
		fopts = append(fopts, filtration.WithObserver(cfg.observer))
	}
	f := filtration.NewSet[G](simplicial.Vertex(list.NumVertices), maxDim, fopts...)

	// 2) Vertices.
	bottom := grade.Bottom[G]()
	for v := 0; v < list.NumVertices; v++ {
		if err := tick(ctx, v); err != nil {
			return nil, err
		}
		g := bottom
		if cfg.vertexGrades != nil {
			g = cfg.vertexGrades[v]
		}
		if _, err := f.Insert(g, []simplicial.Vertex{simplicial.Vertex(v)}); err != nil {
			return nil, fmt.Errorf("Build: vertex %d: %w", v, err)
		}
	}
	if maxDim == 0 {
		return f, nil
	}

	// 3) Edges; the accepted ones form the 1-skeleton.
	skeleton := core.NewGraph(core.WithVertices(list.NumVertices))
	layer := make([][]simplicial.Vertex, 0, len(list.Edges))
	for i, e := range list.Edges {
		if err := tick(ctx, i); err != nil {
			return nil, err
		}
		es, err := e.Simplex()
		if err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
		out, err := f.InsertSimplex(e.Grade, 1, es)
		if err != nil {
			return nil, fmt.Errorf("Build: edge %v: %w", es, err)
		}
		if !out.Inserted {
			continue
		}
		if _, err := skeleton.AddEdge(e.U, e.V); err != nil {
			return nil, fmt.Errorf("Build: edge %v: %w", es, err)
		}
		layer = append(layer, es.Vertices())
	}
	adj := make([][]simplicial.Vertex, list.NumVertices)
	for v := range adj {
		nb, err := skeleton.NeighborIDs(simplicial.Vertex(v))
		if err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
		adj[v] = nb
	}

	// 4) Higher cliques, one dimension at a time.
	n := 0
	for dim := 2; dim <= maxDim && len(layer) > 0; dim++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("Build: dim %d: %w", dim, err)
		}
		next := make([][]simplicial.Vertex, 0, len(layer))
		for _, clique := range layer {
			for _, w := range commonNeighbours(skeleton, adj, clique) {
				if err := tick(ctx, n); err != nil {
					return nil, err
				}
				n++
				vs := make([]simplicial.Vertex, len(clique)+1)
				copy(vs, clique)
				vs[len(clique)] = w
				if err := insertClique(f, dim, vs); err != nil {
					return nil, err
				}
				next = append(next, vs)
			}
		}
		layer = next
	}

	return f, nil
}

// tick reports ctx's error on every checkEvery-th call.
func tick(ctx context.Context, i int) error {
	if i%checkEvery != 0 {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("Build: after %d insertions: %w", i, err)
	}

	return nil
}

// insertClique grades vs by the Join of its facets' grades and inserts it.
func insertClique[G grade.Lattice[G]](f *filtration.Filtration[G, *simplicial.Set], dim int, vs []simplicial.Vertex) error {
	s, err := simplicial.NewSimplex(vs...)
	if err != nil {
		return fmt.Errorf("Build: clique %v: %w", vs, err)
	}
	g := grade.Bottom[G]()
	for _, face := range s.Facets() {
		fg, err := f.GradeOf(face)
		if err != nil {
			return fmt.Errorf("Build: clique %v: facet %v: %w", s, face, err)
		}
		g = g.Join(fg)
	}
	if _, err := f.InsertSimplex(g, dim, s); err != nil {
		return fmt.Errorf("Build: clique %v: %w", s, err)
	}

	return nil
}

// commonNeighbours returns the vertices w > max(clique) adjacent to every
// vertex of clique, ascending. Candidates come from the lowest-degree member.
func commonNeighbours(g *core.Graph, adj [][]simplicial.Vertex, clique []simplicial.Vertex) []simplicial.Vertex {
	top := clique[len(clique)-1]
	pivot := clique[0]
	for _, u := range clique[1:] {
		if g.Degree(u) < g.Degree(pivot) {
			pivot = u
		}
	}
	var out []simplicial.Vertex
	for _, w := range adj[pivot] {
		if w <= top {
			continue
		}
		ok := true
		for _, u := range clique {
			if u != pivot && !g.HasEdge(u, w) {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, w)
		}
	}

	return out
}
