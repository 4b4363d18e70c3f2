// SPDX-License-Identifier: MIT

package solution

// RemoveVertex takes v out of route r and returns the signed cost delta.
//
// Customer v: v is unlinked, its neighbors are joined (a neighbor becomes the
// new endpoint when v was first or last), load and size shrink and v becomes
// unrouted. Removing the only customer leaves r empty but listed; release it
// with RemoveRoute.
//
// Depot: the customer chain of r is closed on itself (last → first) and the
// route endpoints become DummyVertex. The route stays listed and keeps its
// customers; re-anchor it with InsertVertexBefore(r, where, depot).
// Delta: c(last, first) - c(last, depot) - c(depot, first).
//
// Panics:
//   - ErrVertexRange, ErrRouteRange, ErrRouteUnlisted for bad ids.
//   - ErrCustomerUnrouted / ErrNotInRoute when customer v is not on r.
//   - ErrDetached when r is already detached, ErrRouteEmpty for the depot of an empty route.
//
// Complexity: O(1).
func (s *Solution) RemoveVertex(r, v int) float64 {
	const method = "RemoveVertex"
	s.mustVertex(method, v)
	if v == s.depot {
		return s.detachDepot(method, r)
	}
	s.mustAnchored(method, r)

	cn := s.customers[v]
	switch cn.route {
	case DummyRoute:
		panic(solutionErrorf(method, ErrCustomerUnrouted, r, v))
	case r:
	default:
		panic(solutionErrorf(method, ErrNotInRoute, r, v))
	}

	prev, next := cn.prev, cn.next
	s.touch(v)
	s.touch(prev)
	s.touch(next)

	rt := &s.routes[r]
	switch v {
	case rt.first:
		rt.first = next
		s.setPrev(r, next, s.depot)
	case rt.last:
		rt.last = prev
		s.setNext(r, prev, s.depot)
	default:
		s.customers[prev].next = next
		s.customers[next].prev = prev
	}

	delta := s.c(prev, next) - s.c(prev, v) - s.c(v, next)
	rt.load -= s.inst.Demand(v)
	rt.size--
	rt.cost += delta
	s.cost += delta

	s.resetVertex(v)

	return delta
}

func (s *Solution) detachDepot(method string, r int) float64 {
	s.mustAnchored(method, r)

	rt := &s.routes[r]
	next, prev := rt.first, rt.last
	s.touch(s.depot)
	s.touch(prev)
	s.touch(next)

	s.customers[next].prev = prev
	s.customers[prev].next = next
	rt.first, rt.last = DummyVertex, DummyVertex

	delta := s.c(prev, next) - s.c(prev, s.depot) - s.c(s.depot, next)
	rt.cost += delta
	s.cost += delta

	return delta
}

// InsertVertexBefore puts v immediately before where on route r and returns
// the signed cost delta. Capacity is not checked.
//
// Customer v: v must be unrouted; where is a customer of r or the depot
// (inserting before the depot appends at the end). Inserting before the
// depot of an empty listed route makes v its only customer.
// Delta: c(prev, v) + c(v, where) - c(prev, where).
//
// Depot: r must be detached (see RemoveVertex); the depot is re-anchored
// between where and its predecessor, so where becomes the first customer.
// Delta: c(prev, depot) + c(depot, where) - c(prev, where).
//
// Panics:
//   - ErrVertexRange, ErrRouteRange, ErrRouteUnlisted for bad ids.
//   - ErrCustomerRouted when customer v is already routed.
//   - ErrNotInRoute when where is not on r.
//   - ErrEndpointsSet when re-anchoring the depot of an attached route.
//   - ErrDetached when inserting a customer into a detached route.
//
// Complexity: O(1).
func (s *Solution) InsertVertexBefore(r, where, v int) float64 {
	const method = "InsertVertexBefore"
	s.mustVertex(method, v)
	s.mustVertex(method, where)
	s.mustListed(method, r)
	if v == s.depot {
		return s.anchorDepot(method, r, where)
	}

	rt := &s.routes[r]
	switch {
	case s.customers[v].route != DummyRoute:
		panic(solutionErrorf(method, ErrCustomerRouted, r, where, v))
	case !s.ContainsVertex(r, where):
		panic(solutionErrorf(method, ErrNotInRoute, r, where, v))
	case rt.first == DummyVertex:
		panic(solutionErrorf(method, ErrDetached, r, where, v))
	}

	prev := s.prevOf(r, where)
	s.touch(prev)
	s.touch(where)
	s.touch(v)

	cv := &s.customers[v]
	cv.next, cv.prev, cv.route = where, prev, r
	s.setNext(r, prev, v)
	s.setPrev(r, where, v)

	delta := s.c(prev, v) + s.c(v, where) - s.c(prev, where)
	rt.load += s.inst.Demand(v)
	rt.size++
	rt.cost += delta
	s.cost += delta

	return delta
}

func (s *Solution) anchorDepot(method string, r, where int) float64 {
	rt := &s.routes[r]
	switch {
	case rt.first != DummyVertex || rt.last != DummyVertex:
		panic(solutionErrorf(method, ErrEndpointsSet, r, where, s.depot))
	case where == s.depot:
		panic(solutionErrorf(method, ErrDepot, r, where, s.depot))
	case s.customers[where].route != r:
		panic(solutionErrorf(method, ErrNotInRoute, r, where, s.depot))
	}

	prev := s.customers[where].prev
	s.touch(s.depot)
	s.touch(prev)
	s.touch(where)

	rt.first, rt.last = where, prev
	s.customers[prev].next = s.depot
	s.customers[where].prev = s.depot

	delta := s.c(prev, s.depot) + s.c(s.depot, where) - s.c(prev, where)
	rt.cost += delta
	s.cost += delta

	return delta
}

// ReverseRoutePath reverses the chain begin … end of route r, walking from
// begin along the current direction (the depot may lie inside the chain),
// and returns the signed cost delta.
//
// Delta: c(pre, end) + c(stop, begin) - c(pre, begin) - c(end, stop), where
// pre precedes begin and stop follows end. When the chain covers the whole
// cycle (pre == end and stop == begin) every link is flipped and the delta
// is 0.
//
// Panics:
//   - ErrDegenerateSegment when begin == end.
//   - ErrVertexRange, ErrRouteRange, ErrRouteUnlisted, ErrNotInRoute for bad ids.
//   - ErrDetached / ErrRouteEmpty when r is not anchored.
//
// Complexity: O(length of the chain).
func (s *Solution) ReverseRoutePath(r, begin, end int) float64 {
	const method = "ReverseRoutePath"
	s.mustVertex(method, begin)
	s.mustVertex(method, end)
	if begin == end {
		panic(solutionErrorf(method, ErrDegenerateSegment, r, begin, end))
	}
	s.mustAnchored(method, r)
	if !s.ContainsVertex(r, begin) || !s.ContainsVertex(r, end) {
		panic(solutionErrorf(method, ErrNotInRoute, r, begin, end))
	}

	pre := s.prevOf(r, begin)
	stop := s.nextOf(r, end)
	s.touch(pre)
	s.touch(stop)

	var prev, next int
	curr := begin
	for {
		s.touch(curr)
		prev, next = s.prevOf(r, curr), s.nextOf(r, curr)
		s.setPrev(r, curr, next)
		s.setNext(r, curr, prev)
		curr = next
		if curr == stop {
			break
		}
	}

	if end == pre && begin == stop {
		return 0
	}

	s.setPrev(r, end, pre)
	s.setNext(r, begin, stop)
	s.setNext(r, pre, end)
	s.setPrev(r, stop, begin)

	delta := s.c(pre, end) + s.c(stop, begin) - s.c(pre, begin) - s.c(end, stop)
	s.routes[r].cost += delta
	s.cost += delta

	return delta
}
