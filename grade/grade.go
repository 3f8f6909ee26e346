// SPDX-License-Identifier: MIT
// Package: grade
//
// grade.go — capability contracts and order helpers shared by all domains.

package grade

// Grade is the capability required from a filtration value.
// G is the concrete grade type itself (F-bounded: Real implements Grade[Real]).
type Grade[G any] interface {
	// Lte reports whether the receiver precedes or equals other.
	Lte(other G) bool

	// MinValue returns the bottom element of the domain.
	MinValue() G
}

// Lattice is a Grade domain with a least upper bound.
type Lattice[G any] interface {
	Grade[G]

	// Join returns the least upper bound of the receiver and other.
	Join(other G) G
}

// Bottom returns the global minimum of the domain G.
// Complexity: O(1) for the shipped domains.
func Bottom[G Grade[G]]() G {
	var zero G

	return zero.MinValue()
}

// Equal reports a ≤ b and b ≤ a.
func Equal[G Grade[G]](a, b G) bool {
	return a.Lte(b) && b.Lte(a)
}

// Less reports a ≤ b and not b ≤ a.
func Less[G Grade[G]](a, b G) bool {
	return a.Lte(b) && !b.Lte(a)
}

// Comparable reports whether a and b are ordered either way.
// Always true for total orders; false for incomparable vector grades.
func Comparable[G Grade[G]](a, b G) bool {
	return a.Lte(b) || b.Lte(a)
}

// JoinAll folds Join over gs starting from the bottom element.
// An empty argument list yields Bottom[G]().
func JoinAll[G Lattice[G]](gs ...G) G {
	acc := Bottom[G]()
	for _, g := range gs {
		acc = acc.Join(g)
	}

	return acc
}
