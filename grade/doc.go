// Package grade defines critical grades: the values a filtration assigns to
// cells, ordered by a (possibly partial) order with a global minimum.
//
// 🚀 What is a grade?
//
//	Every cell of a filtered complex enters the filtration at a grade.
//	One-parameter persistence uses scalar grades (a total order); multi-parameter
//	persistence uses vector grades ordered componentwise (a partial order:
//	(1,2) and (2,1) are incomparable).
//
// ✨ Contract (Grade[G]):
//
//	MinValue() G     — the bottom element; MinValue().Lte(x) for every x.
//	Lte(other G)     — reflexive, transitive, antisymmetric.
//
//	MinValue is always called on the zero value of G (see Bottom), so it must
//	not read the receiver.
//
// Lattice[G] adds Join (least upper bound), which builders use to derive the
// grade of a higher simplex from the grades of its faces.
//
// Domains shipped here:
//
//	Real    — float64, bottom −Inf, total order.
//	Natural — uint, bottom 0, total order.
//	Vector  — []float64, componentwise partial order; the empty vector is bottom.
//
// Text forms (used by edge-list codecs):
//
//	Real    "0.5"      ParseReal
//	Natural "3"        ParseNatural
//	Vector  "0.5,1,2"  ParseVector
package grade
