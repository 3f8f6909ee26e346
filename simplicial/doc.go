// Package simplicial provides the combinatorial side of a filtered complex:
// vertices, verified simplices, the Complex capability contract consumed by
// the filtration engine, and Set, an in-memory reference Complex.
//
// Simplex
//
//	A simplex is a strictly increasing vertex sequence [v0 < v1 < … < vk];
//	its dimension is k. NewSimplex verifies the order once, at the boundary,
//	and never sorts: unsorted or duplicated input is rejected with ErrUnsorted.
//
// Complex contract
//
//	MaxDimension()        upper bound on accepted dimensions
//	NumCells(dim)         number of simplices of that dimension
//	Add(dim, s)           idempotent append; new index == NumCells(dim) before
//	Boundary(dim, index)  facet indices in dim−1, exhaustive and duplicate-free
//	IndexOf(dim, s)       face lookup
//	Simplex(dim, index)   structural read-back
//
// Indices are dense, zero-based and assigned in insertion order; they are
// never reused (there is no deletion).
//
// Set
//
//	Set stores each dimension as a flat vertex slice plus a key→index map.
//	Add and IndexOf are O(k) amortized, Boundary is O(k²) for a k-simplex.
//	Set is not safe for concurrent mutation; the filtration engine serializes
//	access to the complex it owns.
package simplicial
