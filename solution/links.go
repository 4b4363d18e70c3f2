// SPDX-License-Identifier: MIT

package solution

// The helpers below treat the depot as an ordinary list member of route r:
// its successor is the first customer and its predecessor the last one.

func (s *Solution) nextOf(r, v int) int {
	if v == s.depot {
		return s.routes[r].first
	}

	return s.customers[v].next
}

func (s *Solution) prevOf(r, v int) int {
	if v == s.depot {
		return s.routes[r].last
	}

	return s.customers[v].prev
}

func (s *Solution) setNext(r, v, next int) {
	if v == s.depot {
		s.routes[r].first = next
		return
	}
	s.customers[v].next = next
}

func (s *Solution) setPrev(r, v, prev int) {
	if v == s.depot {
		s.routes[r].last = prev
		return
	}
	s.customers[v].prev = prev
}

func (s *Solution) touch(v int) { s.changes[v] = struct{}{} }

func (s *Solution) c(i, j int) float64 { return s.inst.Cost(i, j) }

// mustListed checks that r is a route id currently linked into the route list.
func (s *Solution) mustListed(method string, r int) {
	s.mustRoute(method, r)
	if !s.listed(r) {
		panic(solutionErrorf(method, ErrRouteUnlisted, r))
	}
}

// mustAnchored checks that r holds customers and is attached to the depot.
func (s *Solution) mustAnchored(method string, r int) {
	s.mustListed(method, r)
	switch {
	case s.routes[r].first == DummyVertex:
		panic(solutionErrorf(method, ErrDetached, r))
	case s.routes[r].size == 0:
		panic(solutionErrorf(method, ErrRouteEmpty, r))
	}
}
