package main

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"github.com/katalvlaran/filtra/filtration"
)

// Report summarises one run.
type Report struct {
	RunID     string
	Source    string
	Grading   string
	MaxDim    int
	Threshold float64
	Stats     filtration.Stats
	Counters  map[string]float64
	Elapsed   time.Duration
}

var csvHeader = []string{"run_id", "source", "grading", "max_dim", "threshold", "dimension", "cells", "elapsed_ms"}

// WriteCSV writes one row per dimension, header first.
func WriteCSV(w io.Writer, r *Report) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	threshold := strconv.FormatFloat(r.Threshold, 'g', -1, 64)
	elapsed := strconv.FormatInt(r.Elapsed.Milliseconds(), 10)
	for dim, n := range r.Stats.Cells {
		row := []string{
			r.RunID,
			r.Source,
			r.Grading,
			strconv.Itoa(r.MaxDim),
			threshold,
			strconv.Itoa(dim),
			strconv.Itoa(n),
			elapsed,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}
