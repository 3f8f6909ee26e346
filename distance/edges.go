// SPDX-License-Identifier: MIT
// Package: distance
//
// edges.go — graded edge lists derived from a metric.

package distance

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/filtra/edges"
	"github.com/katalvlaran/filtra/grade"
	"github.com/katalvlaran/filtra/simplicial"
)

// Edges returns every pair {u, v} with d(u,v) ≤ threshold, graded by distance,
// in (u, v) lexicographic order. Use math.Inf(1) for the complete graph.
// Complexity: O(n²).
func (m *Matrix) Edges(threshold float64) *edges.List[grade.Real] {
	out := edges.New[grade.Real](m.n)
	for u := 0; u < m.n; u++ {
		for v := u + 1; v < m.n; v++ {
			d := m.at(v, u)
			if d <= threshold {
				out.Edges = append(out.Edges, edges.FilteredEdge[grade.Real]{
					U: simplicial.Vertex(u), V: simplicial.Vertex(v), Grade: grade.Real(d),
				})
			}
		}
	}

	return out
}

// Codensity returns, for every point, the distance to its k-th nearest
// neighbour (k ≥ 1, k < Size()). Low codensity means a dense region.
// Complexity: O(n² log n).
func (m *Matrix) Codensity(k int) ([]float64, error) {
	if k < 1 || k >= m.n {
		return nil, fmt.Errorf("Codensity(%d): n=%d: %w", k, m.n, ErrBadK)
	}
	out := make([]float64, m.n)
	row := make([]float64, 0, m.n-1)
	for i := 0; i < m.n; i++ {
		row = row[:0]
		for j := 0; j < m.n; j++ {
			if i == j {
				continue
			}
			d, _ := m.At(i, j)
			row = append(row, d)
		}
		sort.Float64s(row)
		out[i] = row[k-1]
	}

	return out, nil
}

// Bigraded returns the codensity × distance bifiltration input: vertex grades
// (codensity(v), 0) and edges with d(u,v) ≤ threshold graded
// (max(codensity(u), codensity(v)), d(u,v)).
// Every edge grade dominates both endpoint grades by construction.
func (m *Matrix) Bigraded(k int, threshold float64) ([]grade.Vector, *edges.List[grade.Vector], error) {
	cod, err := m.Codensity(k)
	if err != nil {
		return nil, nil, err
	}
	vertices := make([]grade.Vector, m.n)
	for i, c := range cod {
		vertices[i] = grade.Vector{c, 0}
	}
	out := edges.New[grade.Vector](m.n)
	for u := 0; u < m.n; u++ {
		for v := u + 1; v < m.n; v++ {
			d := m.at(v, u)
			if d > threshold {
				continue
			}
			out.Edges = append(out.Edges, edges.FilteredEdge[grade.Vector]{
				U: simplicial.Vertex(u), V: simplicial.Vertex(v),
				Grade: grade.Vector{math.Max(cod[u], cod[v]), d},
			})
		}
	}

	return vertices, out, nil
}
