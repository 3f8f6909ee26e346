// SPDX-License-Identifier: MIT

package dataset

import "github.com/katalvlaran/filtra/distance"

// Load returns the Euclidean distance matrix of Sample(s). A nil cache
// computes the matrix every time.
func Load(s Spec, c *Cache) (*distance.Matrix, error) {
	compute := func() (*distance.Matrix, error) {
		pts, err := Sample(s)
		if err != nil {
			return nil, err
		}

		return distance.FromPoints(pts)
	}
	if c == nil {
		return compute()
	}
	m, _, err := c.GetOrCompute(s.Key(), compute)

	return m, err
}
