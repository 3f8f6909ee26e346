// Package distance stores finite metric spaces as symmetric distance
// matrices and turns them into graded edge lists for flag filtrations.
//
// Storage
//
//	Matrix wraps an n×n matrix.Dense; Set writes d(i,j) and d(j,i) together,
//	so the diagonal is 0 and the matrix is symmetric by construction.
//	FromDense accepts any matrix.Matrix that passes matrix.ValidateDistance.
//	The wire form is the strict lower triangle, row-major:
//	  row 1: d(1,0)
//	  row 2: d(2,0) d(2,1)
//	  …
//
// One-parameter input (Vietoris–Rips):
//
//	m.Edges(threshold) → edges.List[grade.Real], grade = d(u,v).
//
// Two-parameter input (codensity × distance):
//
//	m.Bigraded(k, threshold) → vertex grades (codensity(v), 0) and edges
//	(max(codensity(u), codensity(v)), d(u,v)), where codensity(v) is the
//	distance from v to its k-th nearest neighbour.
//
// Text format: see codec.go.
package distance
