// Package rips builds flag (clique) filtrations from graded edge lists.
//
// The flag complex of a graph contains every clique as a simplex. Grading
// each k-simplex (k ≥ 2) by the Join of its facets' grades yields the
// smallest grade compatible with the filtration invariant, so the build
// never trips the engine's monotonicity check on well-formed input.
//
// Pipeline:
//
//	vertices   0..n−1      grade from WithVertexGrades, else bottom
//	edges      input order  grade from the list (first occurrence wins)
//	k-cliques  k = 2..maxDim, lexicographic, grade = Join(facets)
//
// Vietoris–Rips: feed distance.Matrix.Edges(r).
// Codensity bifiltration: feed distance.Matrix.Bigraded(k, r) with its
// vertex grades.
package rips
