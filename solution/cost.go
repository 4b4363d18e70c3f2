// SPDX-License-Identifier: MIT

package solution

import "github.com/katalvlaran/cvrp/instance"

// tourCost sums the cost of the edges tour[i] → tour[i+1] of a closed tour
// (first and last entries are both the depot). Tours shorter than two
// vertices cost nothing.
//
// Complexity: O(len(tour)).
func tourCost(p instance.Provider, tour []int) float64 {
	var sum float64
	for i := 0; i+1 < len(tour); i++ {
		sum += p.Cost(tour[i], tour[i+1])
	}

	return sum
}

// TourCost recomputes the round-trip cost of r from scratch, without using
// the maintained value.
func (s *Solution) TourCost(r int) float64 {
	s.mustRoute("TourCost", r)
	return tourCost(s.inst, s.Tour(r))
}
