// SPDX-License-Identifier: MIT

// Package metrics exports filtration engine events and dataset cache
// counters to Prometheus.
package metrics

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/filtra/filtration"
)

const namespace = "filtra"

// Rejection reasons used as the "reason" label.
const (
	ReasonNotMonotone = "not_monotone"
	ReasonMissingFace = "missing_face"
	ReasonBadInput    = "bad_input"
	ReasonOutOfSync   = "out_of_sync"
	ReasonFrozen      = "frozen"
	ReasonOther       = "other"
)

// Observer counts engine events per dimension. It implements
// filtration.Observer and is safe for concurrent use.
type Observer struct {
	inserted  *prometheus.CounterVec
	duplicate *prometheus.CounterVec
	rejected  *prometheus.CounterVec
}

var _ filtration.Observer = (*Observer)(nil)

// NewObserver registers the engine counters with reg.
func NewObserver(reg prometheus.Registerer) (*Observer, error) {
	o := &Observer{
		inserted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cells_inserted_total",
			Help:      "Cells appended to a filtration.",
		}, []string{"dimension"}),
		duplicate: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cells_duplicate_total",
			Help:      "Insertions of cells already present.",
		}, []string{"dimension"}),
		rejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cells_rejected_total",
			Help:      "Insertions refused by the engine.",
		}, []string{"dimension", "reason"}),
	}
	for _, c := range []prometheus.Collector{o.inserted, o.duplicate, o.rejected} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("metrics: register: %w", err)
		}
	}

	return o, nil
}

func (o *Observer) CellInserted(dim, _ int) {
	o.inserted.WithLabelValues(fmt.Sprintf("%d", dim)).Inc()
}

func (o *Observer) CellDuplicate(dim, _ int) {
	o.duplicate.WithLabelValues(fmt.Sprintf("%d", dim)).Inc()
}

func (o *Observer) CellRejected(dim int, err error) {
	o.rejected.WithLabelValues(fmt.Sprintf("%d", dim), Reason(err)).Inc()
}

// Reason classifies an engine error into a label value.
func Reason(err error) string {
	switch {
	case errors.Is(err, filtration.ErrNotMonotone):
		return ReasonNotMonotone
	case errors.Is(err, filtration.ErrMissingFace):
		return ReasonMissingFace
	case errors.Is(err, filtration.ErrOutOfSync):
		return ReasonOutOfSync
	case errors.Is(err, filtration.ErrFrozen):
		return ReasonFrozen
	case errors.Is(err, filtration.ErrUnsorted),
		errors.Is(err, filtration.ErrEmptySimplex),
		errors.Is(err, filtration.ErrDimensionOutOfRange),
		errors.Is(err, filtration.ErrDimensionMismatch),
		errors.Is(err, filtration.ErrInvalidGrade):
		return ReasonBadInput
	default:
		return ReasonOther
	}
}
