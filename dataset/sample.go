// SPDX-License-Identifier: MIT
// Package: dataset
//
// sample.go — point-cloud samplers.

package dataset

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"strings"
)

var (
	// ErrUnknownKind indicates an unrecognised sampler name.
	ErrUnknownKind = errors.New("dataset: unknown kind")

	// ErrBadPoints indicates a non-positive point count.
	ErrBadPoints = errors.New("dataset: points must be > 0")

	// ErrBadNoise indicates a negative or non-finite noise level.
	ErrBadNoise = errors.New("dataset: noise must be finite and >= 0")
)

// Kind selects a sampler.
type Kind int

const (
	Circle Kind = iota
	Sphere
	Torus
	SwissRoll
	Uniform
)

var kindNames = [...]string{
	Circle:    "circle",
	Sphere:    "sphere",
	Torus:     "torus",
	SwissRoll: "swissroll",
	Uniform:   "uniform",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}

	return kindNames[k]
}

// ParseKind is case-insensitive.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for k, n := range kindNames {
		if n == name {
			return Kind(k), nil
		}
	}

	return 0, fmt.Errorf("ParseKind(%q): %w", s, ErrUnknownKind)
}

// Spec identifies a sampled point cloud.
type Spec struct {
	Kind   Kind
	Points int
	Seed   int64
	Noise  float64
}

// Key is the cache key of the matrix generated from s.
func (s Spec) Key() string {
	return fmt.Sprintf("%s/%d/%d/%s", s.Kind, s.Points, s.Seed,
		strconv.FormatFloat(s.Noise, 'g', -1, 64))
}

func (s Spec) validate() error {
	if s.Points <= 0 {
		return fmt.Errorf("Sample(%s): %w", s.Key(), ErrBadPoints)
	}
	if s.Noise < 0 || math.IsNaN(s.Noise) || math.IsInf(s.Noise, 0) {
		return fmt.Errorf("Sample(%s): %w", s.Key(), ErrBadNoise)
	}
	if s.Kind < 0 || int(s.Kind) >= len(kindNames) {
		return fmt.Errorf("Sample(%s): %w", s.Key(), ErrUnknownKind)
	}

	return nil
}

// Sample draws s.Points points. The same Spec always yields the same cloud.
func Sample(s Spec) ([][]float64, error) {
	if err := s.validate(); err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewSource(s.Seed))
	pts := make([][]float64, s.Points)
	for i := range pts {
		var p []float64
		switch s.Kind {
		case Circle:
			t := 2 * math.Pi * rng.Float64()
			p = []float64{math.Cos(t), math.Sin(t)}
		case Sphere:
			p = onSphere(rng)
		case Torus:
			u, v := 2*math.Pi*rng.Float64(), 2*math.Pi*rng.Float64()
			w := 2 + math.Cos(v)
			p = []float64{w * math.Cos(u), w * math.Sin(u), math.Sin(v)}
		case SwissRoll:
			t := 1.5 * math.Pi * (1 + 2*rng.Float64())
			p = []float64{t * math.Cos(t), 21 * rng.Float64(), t * math.Sin(t)}
		case Uniform:
			p = []float64{rng.Float64(), rng.Float64()}
		}
		if s.Noise > 0 {
			for j := range p {
				p[j] += s.Noise * rng.NormFloat64()
			}
		}
		pts[i] = p
	}

	return pts, nil
}

// onSphere normalises a Gaussian sample; the zero vector is redrawn.
func onSphere(rng *rand.Rand) []float64 {
	for {
		x, y, z := rng.NormFloat64(), rng.NormFloat64(), rng.NormFloat64()
		r := math.Sqrt(x*x + y*y + z*z)
		if r > 1e-12 {
			return []float64{x / r, y / r, z / r}
		}
	}
}
