// SPDX-License-Identifier: MIT
// Package: simplicial
//
// simplex.go — Vertex and the verified Simplex value type.

package simplicial

import (
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"
)

// Vertex identifies a vertex within a complex.
type Vertex uint32

// vertexBytes is the width of one vertex inside a Key.
const vertexBytes = 4

// Simplex is a strictly increasing, non-empty vertex sequence.
// The zero value is not a valid simplex; build one with NewSimplex.
type Simplex struct {
	vs []Vertex
}

// NewSimplex verifies vs and wraps a private copy.
// Returns ErrEmptySimplex or ErrUnsorted. Complexity: O(len(vs)).
func NewSimplex(vs ...Vertex) (Simplex, error) {
	if len(vs) == 0 {
		return Simplex{}, ErrEmptySimplex
	}
	for i := 1; i < len(vs); i++ {
		if vs[i-1] >= vs[i] {
			return Simplex{}, fmt.Errorf("NewSimplex(%v): position %d: %w", vs, i, ErrUnsorted)
		}
	}
	own := make([]Vertex, len(vs))
	copy(own, vs)

	return Simplex{vs: own}, nil
}

// IsSorted reports whether vs is strictly increasing.
func IsSorted(vs []Vertex) bool {
	for i := 1; i < len(vs); i++ {
		if vs[i-1] >= vs[i] {
			return false
		}
	}

	return true
}

// Dim returns len−1, or −1 for the zero value.
func (s Simplex) Dim() int {
	return len(s.vs) - 1
}

// Len returns the number of vertices.
func (s Simplex) Len() int {
	return len(s.vs)
}

// Vertices returns a copy of the vertex sequence.
func (s Simplex) Vertices() []Vertex {
	out := make([]Vertex, len(s.vs))
	copy(out, s.vs)

	return out
}

// At returns the i-th vertex.
func (s Simplex) At(i int) Vertex {
	return s.vs[i]
}

// Facet returns the face obtained by dropping the i-th vertex.
// Dropping from a vertex (Dim()==0) or using i outside [0, Len()) panics.
func (s Simplex) Facet(i int) Simplex {
	if len(s.vs) < 2 {
		panic("simplicial: a vertex has no facets")
	}
	out := make([]Vertex, 0, len(s.vs)-1)
	out = append(out, s.vs[:i]...)
	out = append(out, s.vs[i+1:]...)

	return Simplex{vs: out}
}

// Facets returns all Len() facets in order of the dropped position.
// A vertex has no facets.
func (s Simplex) Facets() []Simplex {
	if len(s.vs) < 2 {
		return nil
	}
	out := make([]Simplex, len(s.vs))
	for i := range s.vs {
		out[i] = s.Facet(i)
	}

	return out
}

// Key returns a compact byte-string identity usable as a map key.
func (s Simplex) Key() string {
	buf := make([]byte, vertexBytes*len(s.vs))
	for i, v := range s.vs {
		binary.BigEndian.PutUint32(buf[i*vertexBytes:], uint32(v))
	}

	return string(buf)
}

// String renders "[0 1 2]".
func (s Simplex) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range s.vs {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.FormatUint(uint64(v), 10))
	}
	b.WriteByte(']')

	return b.String()
}
