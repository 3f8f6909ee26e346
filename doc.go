// Package filtra is an in-memory toolkit for building and auditing
// filtrations of simplicial complexes.
//
// 🚀 What is a filtration here?
//
//	A simplicial complex whose cells carry grades, such that every face
//	enters no later than the cells it bounds. Grades may be totally
//	ordered (reals, naturals) or partially ordered (vectors, for
//	multi-parameter persistence).
//
// ✨ Why filtra?
//
//   - Checked on every insert – a rejected cell leaves nothing behind
//   - Pluggable storage – the engine talks to any Complex implementation
//   - Thread-safe – readers share, writers serialise, Freeze seals
//   - Generic grades – bring your own order by implementing Grade[G]
//
// Packages:
//
//	grade/       — Grade / Lattice contracts and the Real, Natural, Vector domains
//	simplicial/  — verified Simplex, the Complex contract, the in-memory Set
//	filtration/  — the engine: insert, lookup, validate, observe
//	edges/       — graded edge lists and their text format
//	distance/    — distance matrices, codensity, Rips edge extraction
//	rips/        — flag (clique) filtrations from edge lists
//	dataset/     — point-cloud samplers and a persistent matrix cache
//	metrics/     — Prometheus counters for engine events and the cache
//	cmd/filtrate — command-line builder and auditor
//
// Quick example:
//
//	    2
//	   / \        vertices at 0, edges at 1, 1, 2
//	  0───1       the triangle may enter at 2 or later
//
//	f := filtration.NewSet[grade.Real](3, 2)
//	f.Insert(0, []simplicial.Vertex{0})
//	...
//	f.Insert(2, []simplicial.Vertex{0, 1, 2})
package filtra
