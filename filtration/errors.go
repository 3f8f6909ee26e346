// SPDX-License-Identifier: MIT
// Package: filtration
//
// errors.go — sentinel errors and structured error types.
//
// Error classes:
//   - data errors (recoverable): ErrNotMonotone, ErrMissingFace, ErrUnsorted,
//     ErrEmptySimplex, ErrInvalidGrade, ErrDimensionOutOfRange, ErrDimensionMismatch.
//   - caller errors: ErrOutOfRange, ErrFrozen.
//   - collaborator contract violations (unrecoverable): ErrOutOfSync, then ErrBroken.
//
// Callers branch with errors.Is on sentinels and errors.As on the structured types.

package filtration

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/filtra/simplicial"
)

var (
	// ErrOutOfRange indicates a lookup of an unassigned (dim, index).
	ErrOutOfRange = errors.New("filtration: index out of range")

	// ErrNotMonotone indicates a grade that does not dominate a facet's grade.
	ErrNotMonotone = errors.New("filtration: grade precedes a face grade")

	// ErrOutOfSync indicates the Complex assigned an index other than the
	// expected next one, or disagreed with its own lookup.
	ErrOutOfSync = errors.New("filtration: complex index out of sync with grades")

	// ErrBroken is returned by every mutation after an ErrOutOfSync.
	ErrBroken = errors.New("filtration: engine is broken")

	// ErrInvalidGrade indicates a grade outside the order, e.g. a NaN Real:
	// it is not ≤ itself, or the domain bottom is not ≤ it.
	ErrInvalidGrade = errors.New("filtration: grade is not comparable")

	// ErrFrozen indicates an insertion after Freeze.
	ErrFrozen = errors.New("filtration: engine is frozen")
)

// Re-exported simplicial sentinels, so callers of this package need only one import
// to classify insertion failures.
var (
	ErrUnsorted            = simplicial.ErrUnsorted
	ErrEmptySimplex        = simplicial.ErrEmptySimplex
	ErrMissingFace         = simplicial.ErrMissingFace
	ErrDimensionOutOfRange = simplicial.ErrDimensionOutOfRange
	ErrDimensionMismatch   = simplicial.ErrDimensionMismatch
)

// MonotonicityError reports a rejected simplex whose grade does not dominate
// the recorded grade of one of its facets.
//
// FaceGrade and Grade hold values of the engine's grade type.
type MonotonicityError struct {
	Dim       int                // dimension of the rejected simplex
	Simplex   simplicial.Simplex // the rejected simplex
	Face      simplicial.Simplex // the offending facet
	FaceIndex int                // facet index in Dim−1
	FaceGrade any                // grade recorded for the facet
	Grade     any                // grade supplied for the simplex
}

// Error implements error.
func (e *MonotonicityError) Error() string {
	return fmt.Sprintf("filtration: simplex %v grade %v does not dominate face %v (dim %d, index %d) grade %v",
		e.Simplex, e.Grade, e.Face, e.Dim-1, e.FaceIndex, e.FaceGrade)
}

// Unwrap makes errors.Is(err, ErrNotMonotone) hold.
func (e *MonotonicityError) Unwrap() error {
	return ErrNotMonotone
}

// SyncError reports a broken index contract of the Complex.
// Expected is the index the engine required; Reported is what the Complex
// returned (−1 when the Complex reported "already present" for a simplex its
// own IndexOf had not found).
type SyncError struct {
	Dim      int
	Simplex  simplicial.Simplex
	Expected int
	Reported int
}

// Error implements error.
func (e *SyncError) Error() string {
	return fmt.Sprintf("filtration: complex assigned index %d to %v in dim %d, expected %d",
		e.Reported, e.Simplex, e.Dim, e.Expected)
}

// Unwrap makes errors.Is(err, ErrOutOfSync) hold.
func (e *SyncError) Unwrap() error {
	return ErrOutOfSync
}

// brokenError wraps the poisoning SyncError so that both ErrBroken and
// ErrOutOfSync match.
type brokenError struct {
	cause error
}

func (e *brokenError) Error() string {
	return fmt.Sprintf("%v: %v", ErrBroken, e.cause)
}

func (e *brokenError) Unwrap() []error {
	return []error{ErrBroken, e.cause}
}
