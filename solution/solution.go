// SPDX-License-Identifier: MIT

package solution

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/cvrp/instance"
	"github.com/katalvlaran/cvrp/pool"
)

const (
	// DummyVertex marks "no vertex": unrouted customers and detached route endpoints.
	DummyVertex = -1
	// DummyRoute marks "no route": list terminator and route of unrouted customers.
	DummyRoute = 0
)

// depotNode heads the list of active routes.
type depotNode struct {
	firstRoute int // head of the active route list, DummyRoute when empty
	numRoutes  int // length of the active route list
}

// routeNode is one route slot; ids are in [1, N].
type routeNode struct {
	first, last int     // endpoint customers; depot when empty, DummyVertex when detached
	load, size  int     // Σ demand and customer count
	cost        float64 // depot → first … last → depot
	next, prev  int     // neighbors in the active route list
}

// customerNode is one vertex slot; only customer ids are meaningful.
type customerNode struct {
	next, prev int // route neighbors, depot at the ends, DummyVertex when unrouted
	route      int // owning route, DummyRoute when unrouted
	loadBefore int // demand up to and including this customer
	loadAfter  int // demand from this customer to the route end
}

// Solution is the linked-list representation of a set of routes over an
// instance. See the package documentation for the contract.
type Solution struct {
	inst      instance.Provider
	depot     int
	head      depotNode
	routes    []routeNode    // len N+1, slot 0 unused
	customers []customerNode // len N
	pool      *pool.Stack[int]
	cost      float64
	changes   map[int]struct{}
}

// New allocates a solution for p. The result is not usable until Reset is
// called; Cost reports +Inf until then.
// Panics with ErrNilInstance when p is nil or has no vertices.
func New(p instance.Provider) *Solution {
	if p == nil || p.VerticesNum() < 1 {
		panic(fmt.Errorf("solution.New: %w", ErrNilInstance))
	}
	n := p.VerticesNum()

	return &Solution{
		inst:      p,
		depot:     p.Depot(),
		head:      depotNode{firstRoute: DummyRoute},
		routes:    make([]routeNode, n+1),
		customers: make([]customerNode, n),
		pool:      pool.New(n, func(i int) int { return i + 1 }),
		cost:      math.Inf(1),
		changes:   make(map[int]struct{}),
	}
}

// Reset empties the solution: no routes, every customer unrouted, every route
// id back in the pool, cost 0. The change set is left untouched.
func (s *Solution) Reset() {
	s.cost = 0
	s.pool.Reset()
	s.head = depotNode{firstRoute: DummyRoute}
	for r := range s.routes {
		s.resetRoute(r)
	}
	for v := range s.customers {
		s.resetVertex(v)
	}
}

func (s *Solution) resetRoute(r int) {
	s.routes[r] = routeNode{first: s.depot, last: s.depot, next: DummyRoute, prev: DummyRoute}
}

func (s *Solution) resetVertex(v int) {
	s.customers[v] = customerNode{next: DummyVertex, prev: DummyVertex, route: DummyRoute}
}

// Clone returns a deep copy sharing only the instance.
func (s *Solution) Clone() *Solution {
	cp := &Solution{
		inst:      s.inst,
		depot:     s.depot,
		routes:    make([]routeNode, len(s.routes)),
		customers: make([]customerNode, len(s.customers)),
		pool:      s.pool.Clone(),
		changes:   make(map[int]struct{}, len(s.changes)),
	}
	cp.CopyFrom(s)

	return cp
}

// CopyFrom overwrites s with the state of src, including pool and change set.
// Both solutions must have been built for instances with the same number of
// vertices; otherwise it panics with ErrShapeMismatch. Copying s onto itself
// is a no-op.
func (s *Solution) CopyFrom(src *Solution) {
	if s == src {
		return
	}
	if len(s.routes) != len(src.routes) {
		panic(fmt.Errorf("Solution.CopyFrom(%d<-%d): %w", len(s.customers), len(src.customers), ErrShapeMismatch))
	}
	s.inst = src.inst
	s.depot = src.depot
	s.head = src.head
	copy(s.routes, src.routes)
	copy(s.customers, src.customers)
	s.pool.CopyFrom(src.pool)
	s.cost = src.cost
	clear(s.changes)
	for v := range src.changes {
		s.changes[v] = struct{}{}
	}
}

// Instance returns the provider the solution was built for.
func (s *Solution) Instance() instance.Provider { return s.inst }

// Cost returns the sum of the costs of all active routes.
func (s *Solution) Cost() float64 { return s.cost }

// RoutesNum returns the number of routes in the route list.
func (s *Solution) RoutesNum() int { return s.head.numRoutes }

// FirstRoute returns the head of the route list or DummyRoute.
func (s *Solution) FirstRoute() int { return s.head.firstRoute }

// NextRoute returns the route after r in the route list or DummyRoute.
func (s *Solution) NextRoute(r int) int { return s.routes[r].next }

// RouteIndex returns the route of customer c, DummyRoute when unrouted.
func (s *Solution) RouteIndex(c int) int {
	s.mustCustomer("RouteIndex", c)
	return s.customers[c].route
}

// RouteIndexOr returns the route of v, or the route of fallback when v is the depot.
func (s *Solution) RouteIndexOr(v, fallback int) int {
	if v == s.depot {
		return s.customers[fallback].route
	}

	return s.customers[v].route
}

// RouteLoad returns Σ demand of the customers of r.
func (s *Solution) RouteLoad(r int) int { return s.routes[r].load }

// RouteSize returns the number of customers of r.
func (s *Solution) RouteSize(r int) int { return s.routes[r].size }

// RouteCost returns the round-trip cost of r.
func (s *Solution) RouteCost(r int) float64 { return s.routes[r].cost }

// FirstCustomer returns the customer after the depot in r.
func (s *Solution) FirstCustomer(r int) int { return s.routes[r].first }

// LastCustomer returns the customer before the depot in r.
func (s *Solution) LastCustomer(r int) int { return s.routes[r].last }

// IsRouteEmpty reports whether r has no customers.
func (s *Solution) IsRouteEmpty(r int) bool { return s.routes[r].size == 0 }

// IsRouteInSolution reports whether r holds customers, i.e. its endpoints are
// not the depot. A released or emptied route is not in the solution.
func (s *Solution) IsRouteInSolution(r int) bool {
	return s.routes[r].first != s.depot && s.routes[r].last != s.depot
}

// IsCustomerInSolution reports whether c is served by some route.
func (s *Solution) IsCustomerInSolution(c int) bool { return s.customers[c].route != DummyRoute }

// ContainsVertex reports whether v lies on r. The depot lies on every route.
func (s *Solution) ContainsVertex(r, v int) bool {
	return v == s.depot || s.customers[v].route == r
}

// NextVertex returns the successor of customer c in its route (the depot at the end).
func (s *Solution) NextVertex(c int) int {
	s.mustCustomer("NextVertex", c)
	return s.customers[c].next
}

// PrevVertex returns the predecessor of customer c in its route (the depot at the start).
func (s *Solution) PrevVertex(c int) int {
	s.mustCustomer("PrevVertex", c)
	return s.customers[c].prev
}

// NextVertexIn returns the successor of v along r; for the depot that is the first customer.
func (s *Solution) NextVertexIn(r, v int) int {
	if v == s.depot {
		return s.routes[r].first
	}
	if s.customers[v].route != r {
		panic(solutionErrorf("NextVertexIn", ErrNotInRoute, r, v))
	}

	return s.customers[v].next
}

// PrevVertexIn returns the predecessor of v along r; for the depot that is the last customer.
func (s *Solution) PrevVertexIn(r, v int) int {
	if v == s.depot {
		return s.routes[r].last
	}
	if s.customers[v].route != r {
		panic(solutionErrorf("PrevVertexIn", ErrNotInRoute, r, v))
	}

	return s.customers[v].prev
}

// solutionErrorf wraps a sentinel with the method name and the ids it was called with.
func solutionErrorf(method string, err error, ids ...int) error {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}

	return fmt.Errorf("Solution.%s(%s): %w", method, strings.Join(parts, ","), err)
}

func (s *Solution) mustVertex(method string, v int) {
	if v < 0 || v >= len(s.customers) {
		panic(solutionErrorf(method, ErrVertexRange, v))
	}
}

func (s *Solution) mustCustomer(method string, c int) {
	s.mustVertex(method, c)
	if c == s.depot {
		panic(solutionErrorf(method, ErrDepot, c))
	}
}

func (s *Solution) mustRoute(method string, r int) {
	if r <= DummyRoute || r >= len(s.routes) {
		panic(solutionErrorf(method, ErrRouteRange, r))
	}
}

// listed reports whether r is linked into the active route list.
func (s *Solution) listed(r int) bool {
	return s.head.firstRoute == r || s.routes[r].prev != DummyRoute
}
