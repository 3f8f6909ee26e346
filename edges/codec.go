// SPDX-License-Identifier: MIT
// Package: edges
//
// codec.go — plain-text edge lists.
//
// Format:
//
//	# comment lines start with '#', blank lines are ignored
//	<n>                 vertex count, first data line
//	<u> <v> <grade>     one edge per line, whitespace separated
//
// The grade token must not contain whitespace (grade.Vector uses "a,b").

package edges

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/filtra/simplicial"
)

// Write renders l in the text format. G's text form is produced by format.
func Write[G any](w io.Writer, l *List[G], format func(G) string) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%d\n", l.NumVertices); err != nil {
		return err
	}
	for _, e := range l.Edges {
		if _, err := fmt.Fprintf(bw, "%d %d %s\n", e.U, e.V, format(e.Grade)); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// Read parses the text format; parse converts grade tokens.
// Returns ErrSyntax (with the line number) on malformed input, and the
// List.Add errors on invalid edges.
func Read[G any](r io.Reader, parse func(string) (G, error)) (*List[G], error) {
	sc := bufio.NewScanner(r)
	var l *List[G]
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		if l == nil {
			n, err := strconv.Atoi(text)
			if err != nil || n < 0 || len(fields) != 1 {
				return nil, fmt.Errorf("Read: line %d: vertex count %q: %w", line, text, ErrSyntax)
			}
			l = New[G](n)
			continue
		}
		if len(fields) != 3 {
			return nil, fmt.Errorf("Read: line %d: want 3 fields, got %d: %w", line, len(fields), ErrSyntax)
		}
		u, errU := strconv.ParseUint(fields[0], 10, 32)
		v, errV := strconv.ParseUint(fields[1], 10, 32)
		if errU != nil || errV != nil {
			return nil, fmt.Errorf("Read: line %d: endpoints: %w", line, ErrSyntax)
		}
		g, err := parse(fields[2])
		if err != nil {
			return nil, fmt.Errorf("Read: line %d: grade: %w", line, err)
		}
		if err := l.Add(simplicial.Vertex(u), simplicial.Vertex(v), g); err != nil {
			return nil, fmt.Errorf("Read: line %d: %w", line, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if l == nil {
		return nil, fmt.Errorf("Read: missing vertex count: %w", ErrSyntax)
	}

	return l, nil
}
