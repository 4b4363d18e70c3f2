// SPDX-License-Identifier: MIT

package instance

import (
	"cmp"
	"slices"
)

// sortedNeighbors returns, for every vertex i in [0, n), all vertex ids
// ordered by non-decreasing cost(i, ·).
//
// Implementation:
//   - Stage 1: stable sort of the identity permutation, so ties keep id order.
//   - Stage 2: if a coincident vertex precedes i, swap i into position 0.
//     Everything in front of i costs 0 as well, so the order stays non-decreasing.
//
// Complexity:
//   - Time O(n² log n), Space O(n²).
func sortedNeighbors(n int, cost func(i, j int) float64) [][]int {
	out := make([][]int, n)

	var i, k int
	for i = 0; i < n; i++ {
		row := make([]int, n)
		for k = range row {
			row[k] = k
		}
		slices.SortStableFunc(row, func(a, b int) int {
			return cmp.Compare(cost(i, a), cost(i, b))
		})
		if row[0] != i {
			k = slices.Index(row, i)
			row[0], row[k] = row[k], row[0]
		}
		out[i] = row
	}

	return out
}
