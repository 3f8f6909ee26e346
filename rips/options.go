// SPDX-License-Identifier: MIT

package rips

import (
	"context"

	"github.com/katalvlaran/filtra/filtration"
)

// Option configures Build.
type Option[G any] func(*config[G])

type config[G any] struct {
	vertexGrades []G
	observer     filtration.Observer
	ctx          context.Context
}

// WithVertexGrades grades vertex i with gs[i]. len(gs) must equal the list's
// vertex count; Build reports ErrVertexGrades otherwise.
func WithVertexGrades[G any](gs []G) Option[G] {
	return func(c *config[G]) { c.vertexGrades = gs }
}

// WithObserver forwards engine events to o.
func WithObserver[G any](o filtration.Observer) Option[G] {
	return func(c *config[G]) { c.observer = o }
}

// WithContext makes Build stop with ctx's error once ctx is done.
// A nil ctx is ignored.
func WithContext[G any](ctx context.Context) Option[G] {
	return func(c *config[G]) {
		if ctx != nil {
			c.ctx = ctx
		}
	}
}
