// SPDX-License-Identifier: MIT

package grade

import (
	"fmt"
	"math"
	"strconv"
)

// Real is a one-parameter grade over float64 (e.g. a Vietoris–Rips radius).
// The order is total on non-NaN values; parsers reject NaN.
type Real float64

// MinValue returns −Inf.
func (Real) MinValue() Real {
	return Real(math.Inf(-1))
}

// Lte reports r <= other.
func (r Real) Lte(other Real) bool {
	return r <= other
}

// Join returns max(r, other).
func (r Real) Join(other Real) Real {
	if other > r {
		return other
	}

	return r
}

// String renders r with the shortest exact representation.
func (r Real) String() string {
	return strconv.FormatFloat(float64(r), 'g', -1, 64)
}

// ParseReal parses a decimal literal (±Inf allowed, NaN rejected).
func ParseReal(s string) (Real, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("ParseReal(%q): %w", s, ErrSyntax)
	}
	if math.IsNaN(v) {
		return 0, fmt.Errorf("ParseReal(%q): %w", s, ErrNaN)
	}

	return Real(v), nil
}
