// SPDX-License-Identifier: MIT

package solution

// UpdateCumulativeRouteLoads recomputes, for every customer of r, the demand
// accumulated from the depot up to and including it (LoadBeforeIncluded) and
// from it to the end of the route (LoadAfterIncluded).
//
// The values are not maintained by the moves: call this again after any
// change to r before reading them.
//
// Complexity: O(size(r)).
func (s *Solution) UpdateCumulativeRouteLoads(r int) {
	s.mustAnchored("UpdateCumulativeRouteLoads", r)

	prev := s.routes[r].first
	s.customers[prev].loadBefore = s.inst.Demand(prev)
	s.customers[prev].loadAfter = s.routes[r].load

	for curr := s.customers[prev].next; curr != s.depot; curr = s.customers[curr].next {
		s.customers[curr].loadBefore = s.customers[prev].loadBefore + s.inst.Demand(curr)
		s.customers[curr].loadAfter = s.customers[prev].loadAfter - s.inst.Demand(prev)
		prev = curr
	}
}

// LoadBeforeIncluded returns the demand from the route start through c.
func (s *Solution) LoadBeforeIncluded(c int) int {
	s.mustCustomer("LoadBeforeIncluded", c)
	return s.customers[c].loadBefore
}

// LoadAfterIncluded returns the demand from c through the route end.
func (s *Solution) LoadAfterIncluded(c int) int {
	s.mustCustomer("LoadAfterIncluded", c)
	return s.customers[c].loadAfter
}
