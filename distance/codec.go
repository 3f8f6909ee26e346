// SPDX-License-Identifier: MIT
// Package: distance
//
// codec.go — lower-triangular text format (as read by Ripser-style tools).
//
// Format:
//   - one line per row i = 1..n−1 holding d(i,0) … d(i,i−1);
//   - values separated by commas and/or whitespace;
//   - blank lines (including an explicit empty row 0) and '#' comments are skipped;
//   - an empty document is a single point.
//
// A document whose first row holds two or more values is read as a full n×n
// matrix instead and must pass matrix.ValidateDistance within denseTol.

package distance

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/filtra/matrix"
)

// denseTol bounds diagonal and asymmetry noise in full-matrix documents.
const denseTol = 1e-9

// Read parses a lower-triangular or full distance matrix.
// Returns ErrSyntax when row k does not hold exactly k values (n values in
// the full form), and ErrInvalidDistance for NaN, infinite or negative
// entries, a non-zero diagonal or an asymmetric full matrix.
func Read(r io.Reader) (*Matrix, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 64*1024*1024)

	var (
		packed []float64
		rows   [][]float64
	)
	row, line, width := 0, 0, 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		row++
		fields := strings.FieldsFunc(text, func(c rune) bool {
			return c == ',' || c == ' ' || c == '\t'
		})
		if row == 1 && len(fields) > 1 {
			width = len(fields)
		}
		want := row
		if width > 0 {
			want = width
		}
		if len(fields) != want {
			return nil, fmt.Errorf("Read: line %d: row %d wants %d values, got %d: %w",
				line, row, want, len(fields), ErrSyntax)
		}
		vals := make([]float64, len(fields))
		for k, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("Read: line %d: %q: %w", line, f, ErrSyntax)
			}
			vals[k] = v
		}
		if width > 0 {
			rows = append(rows, vals)
		} else {
			packed = append(packed, vals...)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if width > 0 {
		return readDense(rows, width)
	}

	return FromPacked(row+1, packed)
}

// readDense loads width×width rows into a matrix.Dense and validates it.
func readDense(rows [][]float64, width int) (*Matrix, error) {
	if len(rows) != width {
		return nil, fmt.Errorf("Read: %d rows of width %d: %w", len(rows), width, ErrSyntax)
	}
	d, err := matrix.NewDense(width, width)
	if err != nil {
		return nil, fmt.Errorf("Read: %w", err)
	}
	for i, vals := range rows {
		for j, v := range vals {
			if err := d.Set(i, j, v); err != nil {
				return nil, fmt.Errorf("Read: %w: %w", ErrInvalidDistance, err)
			}
		}
	}

	return FromDense(d, denseTol)
}

// Write renders m with comma-separated rows 1..n−1.
func Write(w io.Writer, m *Matrix) error {
	bw := bufio.NewWriter(w)
	for i := 1; i < m.n; i++ {
		for j := 0; j < i; j++ {
			if j > 0 {
				if err := bw.WriteByte(','); err != nil {
					return err
				}
			}
			if _, err := bw.WriteString(strconv.FormatFloat(m.at(i, j), 'g', -1, 64)); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}

	return bw.Flush()
}
