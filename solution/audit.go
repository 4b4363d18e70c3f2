// SPDX-License-Identifier: MIT

package solution

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// CostTolerance is the absolute difference accepted between maintained and
// recomputed costs.
const CostTolerance = 0.1

// Report is the outcome of Audit.
type Report struct {
	// Violations lists every broken invariant; each wraps an audit sentinel.
	Violations []error
	// Unrouted lists customers served by no route, in increasing order.
	// An incomplete solution is a warning, not a violation.
	Unrouted []int
}

// Feasible reports whether no invariant is violated.
func (r Report) Feasible() bool { return len(r.Violations) == 0 }

// Complete reports whether every customer is routed.
func (r Report) Complete() bool { return len(r.Unrouted) == 0 }

// Err joins all violations, nil when feasible.
func (r Report) Err() error { return errors.Join(r.Violations...) }

// Warning describes unrouted customers, nil when complete.
func (r Report) Warning() error {
	if r.Complete() {
		return nil
	}

	return fmt.Errorf("%w: %v", ErrUnrouted, r.Unrouted)
}

// String renders violations as "[ error ]" lines and the warning as a "[ warning ]" line.
func (r Report) String() string {
	var b strings.Builder
	for _, v := range r.Violations {
		b.WriteString("[ error ] ")
		b.WriteString(v.Error())
		b.WriteByte('\n')
	}
	if w := r.Warning(); w != nil {
		b.WriteString("[ warning ] ")
		b.WriteString(w.Error())
		b.WriteByte('\n')
	}

	return b.String()
}

// IsFeasible is shorthand for Audit().Feasible().
func (s *Solution) IsFeasible() bool { return s.Audit().Feasible() }

// auditor accumulates violations while the checks run.
type auditor struct {
	report Report
}

func (a *auditor) fail(err error, format string, args ...any) {
	a.report.Violations = append(a.report.Violations, fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err))
}

// Audit re-derives every structural invariant from the raw arrays and
// reports each violation. It never mutates the solution and never loops
// forever on corrupted lists.
//
// Checks:
//   - customer links: prev/next agreement, first/last anchoring, partial removal,
//     no vertex referenced twice as prev or next;
//   - route pointers: target route has a start, agrees with the route list,
//     and actually contains the customer;
//   - loads and sizes recomputed from demands, loads within capacity;
//   - route costs and the total recomputed from the cost matrix (CostTolerance);
//   - route list: endpoints set, no empty routes, counter matches length.
//
// Complexity: O(N) plus the length of the routes.
func (s *Solution) Audit() Report {
	a := &auditor{}
	p := s.inst
	n := len(s.customers)

	inRange := func(v int) bool { return v >= 0 && v < n }
	routeInRange := func(r int) bool { return r > DummyRoute && r < len(s.routes) }

	// Customer links.
	prevCount := make([]int, n)
	nextCount := make([]int, n)
	for i := p.CustomersBegin(); i < p.CustomersEnd(); i++ {
		cn := s.customers[i]
		if (cn.next == DummyVertex) != (cn.prev == DummyVertex) ||
			(cn.prev == DummyVertex) != (cn.route == DummyRoute) {
			a.fail(ErrPartialRemoval, "customer %d (prev %d, next %d, route %d)", i, cn.prev, cn.next, cn.route)
			continue
		}
		if cn.prev == DummyVertex {
			a.report.Unrouted = append(a.report.Unrouted, i)
			continue
		}
		if !inRange(cn.prev) || !inRange(cn.next) {
			a.fail(ErrBrokenLink, "customer %d links out of range (prev %d, next %d)", i, cn.prev, cn.next)
			continue
		}
		if !routeInRange(cn.route) {
			a.fail(ErrRoutePointer, "customer %d points to route %d", i, cn.route)
			continue
		}
		prevCount[cn.prev]++
		nextCount[cn.next]++

		rt := s.routes[cn.route]
		if cn.prev == s.depot && rt.first != i {
			a.fail(ErrBrokenLink, "customer %d follows the depot but route %d starts at %d", i, cn.route, rt.first)
		}
		if cn.next == s.depot && rt.last != i {
			a.fail(ErrBrokenLink, "customer %d precedes the depot but route %d ends at %d", i, cn.route, rt.last)
		}
		if cn.prev != s.depot && s.customers[cn.prev].next != i {
			a.fail(ErrBrokenLink, "next[prev[%d]] = %d", i, s.customers[cn.prev].next)
		}
		if cn.next != s.depot && s.customers[cn.next].prev != i {
			a.fail(ErrBrokenLink, "prev[next[%d]] = %d", i, s.customers[cn.next].prev)
		}
		if rt.first == s.depot {
			a.fail(ErrRoutePointer, "customer %d belongs to route %d which has no start", i, cn.route)
		}
	}
	for i := p.CustomersBegin(); i < p.CustomersEnd(); i++ {
		if prevCount[i] > 1 {
			a.fail(ErrDuplicateLink, "customer %d is prev %d times", i, prevCount[i])
		}
		if nextCount[i] > 1 {
			a.fail(ErrDuplicateLink, "customer %d is next %d times", i, nextCount[i])
		}
	}

	// Route chains, loads and sizes for every route id.
	members := make([][]int, len(s.routes))
	walked := make([]bool, len(s.routes))
	for r := DummyRoute + 1; r < len(s.routes); r++ {
		rt := s.routes[r]
		if rt.first == DummyVertex || rt.last == DummyVertex {
			continue // reported with the route list when listed
		}
		chain, err := s.walk(r)
		if err != nil {
			a.fail(err, "route %d", r)
			continue
		}
		members[r], walked[r] = chain, true

		load := 0
		for _, v := range chain {
			load += p.Demand(v)
		}
		if rt.load != load {
			a.fail(ErrLoadMismatch, "route %d stores %d, computed %d", r, rt.load, load)
		}
		if rt.size != len(chain) {
			a.fail(ErrSizeMismatch, "route %d stores %d, counted %d", r, rt.size, len(chain))
		}
		if rt.load > p.VehicleCapacity() {
			a.fail(ErrCapacityExceeded, "route %d load %d > capacity %d", r, rt.load, p.VehicleCapacity())
		}
	}

	// Every routed customer must be found in the chain of its route.
	owner := make([]int, n)
	for r := range members {
		for _, v := range members[r] {
			owner[v] = r
		}
	}
	for i := p.CustomersBegin(); i < p.CustomersEnd(); i++ {
		r := s.customers[i].route
		if !routeInRange(r) || !walked[r] {
			continue
		}
		if owner[i] != r {
			a.fail(ErrRoutePointer, "customer %d points to route %d but is not on it", i, r)
		}
	}

	// Route list.
	var (
		listed      int
		total, sum  float64
		prevRoute   = DummyRoute
		seenInRoute = make([]bool, len(s.routes))
	)
	for r := s.head.firstRoute; r != DummyRoute; r = s.routes[r].next {
		if !routeInRange(r) {
			a.fail(ErrBrokenLink, "route list reaches id %d", r)
			break
		}
		if seenInRoute[r] || listed > len(s.routes) {
			a.fail(ErrCycle, "route list revisits route %d", r)
			break
		}
		seenInRoute[r] = true
		listed++

		rt := s.routes[r]
		if rt.prev != prevRoute {
			a.fail(ErrBrokenLink, "route %d prev is %d, expected %d", r, rt.prev, prevRoute)
		}
		prevRoute = r
		sum += rt.cost

		if rt.first == DummyVertex || rt.last == DummyVertex {
			a.fail(ErrEndpoints, "route %d endpoints (%d, %d)", r, rt.first, rt.last)
			continue
		}
		if rt.size == 0 {
			a.fail(ErrEmptyRoute, "route %d", r)
		}
		if !walked[r] {
			continue
		}
		for _, v := range members[r] {
			if s.customers[v].route != r {
				a.fail(ErrRoutePointer, "customer %d is served by route %d but points to %d", v, r, s.customers[v].route)
			}
		}

		tour := make([]int, 0, len(members[r])+2)
		tour = append(tour, s.depot)
		tour = append(tour, members[r]...)
		tour = append(tour, s.depot)
		computed := 0.0
		if len(members[r]) > 0 {
			computed = tourCost(p, tour)
		}
		total += computed
		if math.Abs(computed-rt.cost) > CostTolerance {
			a.fail(ErrCostMismatch, "route %d stores %g, computed %g", r, rt.cost, computed)
		}
	}
	if listed != s.head.numRoutes {
		a.fail(ErrRouteCount, "counter %d, list length %d", s.head.numRoutes, listed)
	}
	if math.Abs(total-s.cost) > CostTolerance {
		a.fail(ErrCostMismatch, "solution stores %g, computed %g", s.cost, total)
	}
	if math.Abs(sum-s.cost) > CostTolerance {
		a.fail(ErrCostMismatch, "solution stores %g, routes sum to %g", s.cost, sum)
	}

	return a.report
}

// walk returns the customers of r from first to last, bounded by the number
// of vertices.
func (s *Solution) walk(r int) ([]int, error) {
	var chain []int
	for v := s.routes[r].first; v != s.depot; v = s.customers[v].next {
		if v < 0 || v >= len(s.customers) {
			return chain, fmt.Errorf("chain reaches vertex %d: %w", v, ErrBrokenLink)
		}
		if len(chain) >= len(s.customers) {
			return chain, ErrCycle
		}
		chain = append(chain, v)
	}

	return chain, nil
}
