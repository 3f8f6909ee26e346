// SPDX-License-Identifier: MIT

package grade

import (
	"fmt"
	"strconv"
)

// Natural is a one-parameter grade over non-negative integers, typically the
// rank of an edge in a sorted edge list.
type Natural uint

// MinValue returns 0.
func (Natural) MinValue() Natural {
	return 0
}

// Lte reports n <= other.
func (n Natural) Lte(other Natural) bool {
	return n <= other
}

// Join returns max(n, other).
func (n Natural) Join(other Natural) Natural {
	if other > n {
		return other
	}

	return n
}

// String renders n in base 10.
func (n Natural) String() string {
	return strconv.FormatUint(uint64(n), 10)
}

// ParseNatural parses a base-10 unsigned literal.
func ParseNatural(s string) (Natural, error) {
	v, err := strconv.ParseUint(s, 10, 0)
	if err != nil {
		return 0, fmt.Errorf("ParseNatural(%q): %w", s, ErrSyntax)
	}

	return Natural(v), nil
}
