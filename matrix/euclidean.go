// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
)

// NewEuclidean builds the symmetric n×n matrix of planar Euclidean distances
// between the points (xs[i], ys[i]).
// MAIN DESCRIPTION:
//   - d(i,j) = sqrt((xi-xj)² + (yi-yj)²), d(i,i) = 0.
//   - With round=true every entry is rounded to the nearest integer
//     (half away from zero), which is the EUC_2D convention of TSPLIB files.
//
// Implementation:
//   - Stage 1: validate len(xs) == len(ys) > 0 and finite coordinates.
//   - Stage 2: fill the strict upper triangle and mirror it.
//
// Errors:
//   - ErrInvalidDimensions for empty input, ErrDimensionMismatch for length
//     mismatch, ErrNaNInf for non-finite coordinates.
//
// Complexity:
//   - Time O(n²), Space O(n²).
func NewEuclidean(xs, ys []float64, round bool) (*Dense, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("NewEuclidean: %d xs vs %d ys: %w", len(xs), len(ys), ErrDimensionMismatch)
	}
	n := len(xs)
	m, err := NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("NewEuclidean: %w", err)
	}

	var i, j int
	for i = 0; i < n; i++ {
		if !isFinite(xs[i]) || !isFinite(ys[i]) {
			return nil, fmt.Errorf("NewEuclidean: point %d: %w", i, ErrNaNInf)
		}
	}

	var dx, dy, d float64
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			dx = xs[i] - xs[j]
			dy = ys[i] - ys[j]
			d = math.Sqrt(dx*dx + dy*dy)
			if round {
				d = math.Round(d)
			}
			m.data[i*n+j] = d
			m.data[j*n+i] = d
		}
	}

	return m, nil
}

func isFinite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
