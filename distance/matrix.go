// SPDX-License-Identifier: MIT
// Package: distance
//
// matrix.go — Matrix, a symmetric distance matrix over matrix.Dense.
//
// Storage: an n×n matrix.Dense with both triangles kept equal by Set. The
// packed strict lower triangle is only the wire form (Packed, FromPacked,
// the text codec).

package distance

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/filtra/matrix"
)

// Sentinel errors for distance matrices.
var (
	// ErrBadSize indicates a non-positive number of points.
	ErrBadSize = errors.New("distance: size must be > 0")

	// ErrOutOfRange indicates a point index outside [0, Size()).
	ErrOutOfRange = matrix.ErrOutOfRange

	// ErrInvalidDistance indicates a NaN, infinite or negative distance, or
	// a dense input that is not a distance matrix.
	ErrInvalidDistance = errors.New("distance: invalid distance")

	// ErrDiagonal indicates an attempt to set a non-zero diagonal entry.
	ErrDiagonal = errors.New("distance: diagonal must be zero")

	// ErrSyntax indicates a malformed matrix document.
	ErrSyntax = errors.New("distance: invalid syntax")

	// ErrBadK indicates a neighbour rank outside [1, Size()).
	ErrBadK = errors.New("distance: k out of range")
)

// matrixErrorf wraps err with method context.
func matrixErrorf(method string, i, j int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, i, j, err)
}

// Matrix is an n×n symmetric matrix with zero diagonal.
type Matrix struct {
	n int
	d *matrix.Dense
}

// New returns an n-point matrix with all distances 0.
// Complexity: O(n²) memory.
func New(n int) (*Matrix, error) {
	if n <= 0 {
		return nil, ErrBadSize
	}
	d, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("New(%d): %w", n, err)
	}

	return &Matrix{n: n, d: d}, nil
}

// FromDense copies a dense n×n matrix after matrix.ValidateDistance with tol.
// The lower triangle is taken as authoritative, so asymmetry within tol is
// resolved deterministically. Returns ErrInvalidDistance wrapping the
// validator's sentinel (e.g. matrix.ErrAsymmetry).
func FromDense(src matrix.Matrix, tol float64) (*Matrix, error) {
	if err := matrix.ValidateDistance(src, tol); err != nil {
		return nil, fmt.Errorf("FromDense: %w: %w", ErrInvalidDistance, err)
	}
	m, err := New(src.Rows())
	if err != nil {
		return nil, err
	}
	for i := 1; i < m.n; i++ {
		for j := 0; j < i; j++ {
			v, _ := src.At(i, j)
			m.set(i, j, v)
		}
	}

	return m, nil
}

// FromPoints returns the Euclidean distance matrix of points.
// All points must share one dimension. Complexity: O(n²·dim).
func FromPoints(points [][]float64) (*Matrix, error) {
	m, err := New(len(points))
	if err != nil {
		return nil, err
	}
	for i := 1; i < len(points); i++ {
		if len(points[i]) != len(points[0]) {
			return nil, fmt.Errorf("FromPoints: point %d has dim %d, want %d: %w",
				i, len(points[i]), len(points[0]), ErrInvalidDistance)
		}
		for j := 0; j < i; j++ {
			var sum float64
			for k := range points[i] {
				d := points[i][k] - points[j][k]
				sum += d * d
			}
			dist := math.Sqrt(sum)
			if math.IsInf(dist, 0) || math.IsNaN(dist) {
				return nil, matrixErrorf("FromPoints", i, j, ErrInvalidDistance)
			}
			m.set(i, j, dist)
		}
	}

	return m, nil
}

// set writes both triangles. Indices are in range and v is finite.
func (m *Matrix) set(i, j int, v float64) {
	_ = m.d.Set(i, j, v)
	_ = m.d.Set(j, i, v)
}

// at reads an in-range entry.
func (m *Matrix) at(i, j int) float64 {
	v, _ := m.d.At(i, j)

	return v
}

// Size returns the number of points.
func (m *Matrix) Size() int {
	return m.n
}

// Dense returns a copy of the backing n×n matrix.
func (m *Matrix) Dense() *matrix.Dense {
	return m.d.Clone()
}

// At returns d(i, j). Returns ErrOutOfRange. Complexity: O(1).
func (m *Matrix) At(i, j int) (float64, error) {
	v, err := m.d.At(i, j)
	if err != nil {
		return 0, fmt.Errorf("Matrix.At: %w", err)
	}

	return v, nil
}

// Set assigns d(i, j) = d(j, i) = v.
// Returns ErrOutOfRange, ErrInvalidDistance, or ErrDiagonal (v ≠ 0 on i == j).
func (m *Matrix) Set(i, j int, v float64) error {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return matrixErrorf("Set", i, j, ErrOutOfRange)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return matrixErrorf("Set", i, j, ErrInvalidDistance)
	}
	if i == j {
		if v != 0 {
			return matrixErrorf("Set", i, j, ErrDiagonal)
		}
		return nil
	}
	m.set(i, j, v)

	return nil
}

// Max returns the largest distance (0 for a single point).
func (m *Matrix) Max() float64 {
	var out float64
	m.d.Do(func(_, _ int, v float64) bool {
		if v > out {
			out = v
		}
		return true
	})

	return out
}

// Equal reports element-wise equality within eps.
func (m *Matrix) Equal(other *Matrix, eps float64) bool {
	if other == nil || m.n != other.n {
		return false
	}
	eq := true
	m.d.Do(func(i, j int, v float64) bool {
		eq = math.Abs(v-other.at(i, j)) <= eps
		return eq
	})

	return eq
}

// Packed returns a copy of the strict lower triangle, row-major.
func (m *Matrix) Packed() []float64 {
	out := make([]float64, 0, m.n*(m.n-1)/2)
	for i := 1; i < m.n; i++ {
		for j := 0; j < i; j++ {
			out = append(out, m.at(i, j))
		}
	}

	return out
}

// FromPacked rebuilds a matrix from Packed output.
func FromPacked(n int, packed []float64) (*Matrix, error) {
	m, err := New(n)
	if err != nil {
		return nil, err
	}
	if want := n * (n - 1) / 2; len(packed) != want {
		return nil, fmt.Errorf("FromPacked: n=%d wants %d values, got %d: %w", n, want, len(packed), ErrSyntax)
	}
	for k, v := range packed {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return nil, fmt.Errorf("FromPacked: value %d: %w", k, ErrInvalidDistance)
		}
	}
	k := 0
	for i := 1; i < n; i++ {
		for j := 0; j < i; j++ {
			m.set(i, j, packed[k])
			k++
		}
	}

	return m, nil
}
