// SPDX-License-Identifier: MIT
// Package solution: sentinel error set.
// Mutation preconditions panic with one of these wrapped as
// "Solution.<Method>(ids): <sentinel>"; Audit and Load return them wrapped
// with context. Match with errors.Is in both cases.

package solution

import "errors"

// Precondition sentinels (raised via panic by the mutation API).
var (
	ErrNilInstance       = errors.New("solution: instance is nil or has no vertices")
	ErrVertexRange       = errors.New("solution: vertex out of range")
	ErrRouteRange        = errors.New("solution: route out of range")
	ErrDepot             = errors.New("solution: operation not allowed on the depot")
	ErrCustomerRouted    = errors.New("solution: customer already routed")
	ErrCustomerUnrouted  = errors.New("solution: customer not routed")
	ErrNotInRoute        = errors.New("solution: vertex does not belong to route")
	ErrRouteNotEmpty     = errors.New("solution: route is not empty")
	ErrRouteEmpty        = errors.New("solution: route is empty")
	ErrRouteUnlisted     = errors.New("solution: route is not in the route list")
	ErrSameRoute         = errors.New("solution: route appended to itself")
	ErrDegenerateSegment = errors.New("solution: segment begins and ends at the same vertex")
	ErrEndpointsSet      = errors.New("solution: route is still anchored to the depot")
	ErrDetached          = errors.New("solution: route is detached from the depot")
	ErrShapeMismatch     = errors.New("solution: solutions have different capacity")
)

// Audit sentinels (reported in Report.Violations).
var (
	ErrBrokenLink       = errors.New("solution: prev/next links disagree")
	ErrDuplicateLink    = errors.New("solution: vertex referenced by more than one link")
	ErrPartialRemoval   = errors.New("solution: customer partially removed")
	ErrRoutePointer     = errors.New("solution: route pointer disagrees with route list")
	ErrLoadMismatch     = errors.New("solution: route load differs from summed demands")
	ErrSizeMismatch     = errors.New("solution: route size differs from counted customers")
	ErrCapacityExceeded = errors.New("solution: route load exceeds vehicle capacity")
	ErrCostMismatch     = errors.New("solution: maintained cost differs from recomputed cost")
	ErrEndpoints        = errors.New("solution: active route has invalid endpoints")
	ErrEmptyRoute       = errors.New("solution: empty route left in the route list")
	ErrRouteCount       = errors.New("solution: route counter differs from route list length")
	ErrCycle            = errors.New("solution: list does not close within its bound")
	ErrUnrouted         = errors.New("solution: customers not routed")
)

// ErrMalformed is returned by Load for a route line that cannot be applied.
var ErrMalformed = errors.New("solution: malformed solution file")
