// SPDX-License-Identifier: MIT

package solution

// BuildOneCustomerRoute creates the route depot → c → depot, links it at the
// head of the route list and returns its id.
//
// Panics:
//   - ErrVertexRange / ErrDepot when c is not a customer.
//   - ErrCustomerRouted when c already belongs to a route.
//
// Complexity: O(1).
func (s *Solution) BuildOneCustomerRoute(c int) int {
	const method = "BuildOneCustomerRoute"
	s.mustCustomer(method, c)
	if s.customers[c].route != DummyRoute {
		panic(solutionErrorf(method, ErrCustomerRouted, c))
	}

	r := s.requestRoute()
	cn := &s.customers[c]
	cn.prev, cn.next, cn.route = s.depot, s.depot, r

	// head insertion
	next := s.head.firstRoute
	rt := &s.routes[r]
	rt.next, rt.prev = next, DummyRoute
	s.head.firstRoute = r
	if next != DummyRoute {
		s.routes[next].prev = r
	}
	s.head.numRoutes++

	rt.first, rt.last = c, c
	rt.load = s.inst.Demand(c)
	rt.size = 1
	rt.cost = 2 * s.c(s.depot, c)
	s.cost += rt.cost

	s.touch(c)

	return r
}

// RemoveRoute unlinks the empty route r and returns its id to the pool.
//
// Panics:
//   - ErrRouteRange / ErrRouteUnlisted when r is not an active route id.
//   - ErrRouteNotEmpty when r still holds customers.
//
// Complexity: O(1).
func (s *Solution) RemoveRoute(r int) {
	const method = "RemoveRoute"
	s.mustListed(method, r)
	if s.routes[r].size != 0 {
		panic(solutionErrorf(method, ErrRouteNotEmpty, r))
	}
	s.releaseRoute(r)
}

// AppendRoute concatenates the customers of other after the last customer of
// r, re-parents them to r and releases other. It returns r.
// Capacity is not checked.
//
// Cost delta: c(last(r), first(other)) - c(last(r), depot) - c(depot, first(other)).
//
// Panics:
//   - ErrSameRoute when r == other.
//   - ErrRouteRange / ErrRouteUnlisted / ErrRouteEmpty / ErrDetached when
//     either route is not an active anchored route.
//
// Complexity: O(size(other)).
func (s *Solution) AppendRoute(r, other int) int {
	const method = "AppendRoute"
	s.mustAnchored(method, r)
	s.mustAnchored(method, other)
	if r == other {
		panic(solutionErrorf(method, ErrSameRoute, r, other))
	}

	rt, ot := &s.routes[r], &s.routes[other]
	end, start := rt.last, ot.first

	delta := s.c(end, start) - s.c(end, s.depot) - s.c(s.depot, start)
	s.cost += delta

	s.customers[end].next = start
	s.customers[start].prev = end

	rt.last = ot.last
	rt.load += ot.load
	rt.size += ot.size
	rt.cost += ot.cost + delta

	s.touch(end)
	s.touch(s.depot)
	for v := start; v != s.depot; v = s.customers[v].next {
		s.customers[v].route = r
		s.touch(v)
	}

	s.releaseRoute(other)

	return r
}

// requestRoute takes a fresh route id from the pool. The route is empty and
// not yet linked.
func (s *Solution) requestRoute() int {
	return s.pool.Take()
}

// releaseRoute unlinks r from the route list, clears it and gives the id back.
func (s *Solution) releaseRoute(r int) {
	prev, next := s.routes[r].prev, s.routes[r].next
	if prev != DummyRoute {
		s.routes[prev].next = next
	} else {
		s.head.firstRoute = next
	}
	if next != DummyRoute {
		s.routes[next].prev = prev
	}
	s.head.numRoutes--

	s.resetRoute(r)
	s.pool.Give(r)
}
