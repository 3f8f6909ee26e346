// SPDX-License-Identifier: MIT

package grade

import "errors"

var (
	// ErrSyntax indicates a grade literal could not be parsed.
	ErrSyntax = errors.New("grade: invalid syntax")

	// ErrNaN indicates a NaN component; NaN breaks reflexivity of Lte.
	ErrNaN = errors.New("grade: NaN is not a valid grade")
)
