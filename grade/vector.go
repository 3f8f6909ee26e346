// SPDX-License-Identifier: MIT
// Package: grade
//
// vector.go — multi-parameter grades under the componentwise (product) order.
//
// Order:
//   - a ≤ b iff len(a) == len(b) and a[i] ≤ b[i] for every i.
//   - the empty vector is the bottom element: empty ≤ x for every x.
//   - vectors of different non-zero lengths are incomparable.
//
// The order is reflexive, transitive and antisymmetric on NaN-free vectors;
// it is not total: (0,1) and (1,0) are incomparable.

package grade

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// vectorSeparator separates components in the text form.
const vectorSeparator = ","

// Vector is a multi-parameter grade.
// Vectors are treated as values: methods never mutate the receiver.
type Vector []float64

// MinValue returns the empty vector, the bottom of every arity.
func (Vector) MinValue() Vector {
	return nil
}

// Lte reports the componentwise order described in the file header.
// Complexity: O(len(v)).
func (v Vector) Lte(other Vector) bool {
	if len(v) == 0 {
		return true
	}
	if len(v) != len(other) {
		return false
	}
	for i := range v {
		if v[i] > other[i] {
			return false
		}
	}

	return true
}

// Join returns the componentwise maximum. The bottom is the identity.
// Joining vectors of different non-zero arity is a programmer error and panics.
func (v Vector) Join(other Vector) Vector {
	if len(v) == 0 {
		return other.clone()
	}
	if len(other) == 0 {
		return v.clone()
	}
	if len(v) != len(other) {
		panic(fmt.Sprintf("grade: Vector.Join arity mismatch %d != %d", len(v), len(other)))
	}
	out := make(Vector, len(v))
	for i := range v {
		out[i] = math.Max(v[i], other[i])
	}

	return out
}

// Arity returns the number of parameters.
func (v Vector) Arity() int {
	return len(v)
}

// String renders "a,b,c"; the bottom renders as "".
func (v Vector) String() string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = strconv.FormatFloat(x, 'g', -1, 64)
	}

	return strings.Join(parts, vectorSeparator)
}

func (v Vector) clone() Vector {
	if v == nil {
		return nil
	}
	out := make(Vector, len(v))
	copy(out, v)

	return out
}

// ParseVector parses the "a,b,c" form. The empty string yields the bottom.
func ParseVector(s string) (Vector, error) {
	if s == "" {
		return nil, nil
	}
	fields := strings.Split(s, vectorSeparator)
	out := make(Vector, len(fields))
	for i, f := range fields {
		x, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, fmt.Errorf("ParseVector(%q): component %d: %w", s, i, ErrSyntax)
		}
		if math.IsNaN(x) {
			return nil, fmt.Errorf("ParseVector(%q): component %d: %w", s, i, ErrNaN)
		}
		out[i] = x
	}

	return out, nil
}
