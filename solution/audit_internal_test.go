// SPDX-License-Identifier: MIT

package solution

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cvrp/instance"
)

// corruptible returns a feasible solution with routes [0 1 2 3 0] and [0 4 5 0]
// over five customers on the x axis.
func corruptible(t *testing.T, capacity int) (*Solution, int, int) {
	t.Helper()
	xs := []float64{0, 1, 2, 3, 4, 5}
	in, err := instance.FromData(xs, make([]float64, len(xs)), []int{0, 2, 3, 1, 4, 2}, capacity)
	require.NoError(t, err)

	s := New(in)
	s.Reset()
	r := s.BuildOneCustomerRoute(1)
	s.InsertVertexBefore(r, s.depot, 2)
	s.InsertVertexBefore(r, s.depot, 3)
	o := s.BuildOneCustomerRoute(4)
	s.InsertVertexBefore(o, s.depot, 5)
	require.True(t, s.IsFeasible(), s.Audit().String())

	return s, r, o
}

func TestAudit_DetectsCorruption(t *testing.T) {
	cases := []struct {
		name    string
		corrupt func(s *Solution, r, o int)
		want    error
	}{
		{"broken next", func(s *Solution, r, o int) { s.customers[1].next = 3 }, ErrBrokenLink},
		{"duplicate link", func(s *Solution, r, o int) { s.customers[4].prev = 2 }, ErrDuplicateLink},
		{"partial removal", func(s *Solution, r, o int) { s.customers[2].next = DummyVertex }, ErrPartialRemoval},
		{"route pointer", func(s *Solution, r, o int) { s.customers[2].route = o }, ErrRoutePointer},
		{"pointer to empty route", func(s *Solution, r, o int) { s.customers[2].route = 6 }, ErrRoutePointer},
		{"load", func(s *Solution, r, o int) { s.routes[r].load++ }, ErrLoadMismatch},
		{"size", func(s *Solution, r, o int) { s.routes[o].size = 7 }, ErrSizeMismatch},
		{"route cost", func(s *Solution, r, o int) { s.routes[r].cost += 1 }, ErrCostMismatch},
		{"total cost", func(s *Solution, r, o int) { s.cost -= 0.5 }, ErrCostMismatch},
		{"endpoints", func(s *Solution, r, o int) { s.routes[o].first = DummyVertex }, ErrEndpoints},
		{"counter", func(s *Solution, r, o int) { s.head.numRoutes = 3 }, ErrRouteCount},
		{"cycle", func(s *Solution, r, o int) { s.customers[3].next = 1 }, ErrCycle},
		{"route list cycle", func(s *Solution, r, o int) { s.routes[r].next = o }, ErrCycle},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, r, o := corruptible(t, 20)
			tc.corrupt(s, r, o)

			routes := slices.Clone(s.routes)
			customers := slices.Clone(s.customers)
			head, cost := s.head, s.cost

			rep := s.Audit()
			require.False(t, rep.Feasible())
			require.ErrorIs(t, rep.Err(), tc.want, rep.String())

			require.Equal(t, routes, s.routes, "Audit must not mutate")
			require.Equal(t, customers, s.customers, "Audit must not mutate")
			require.Equal(t, head, s.head)
			require.Equal(t, cost, s.cost)
		})
	}
}

func TestAudit_CapacityExceeded(t *testing.T) {
	s, r, o := corruptible(t, 6)
	s.RemoveVertex(o, 5)
	s.InsertVertexBefore(r, s.depot, 5)

	rep := s.Audit()
	require.ErrorIs(t, rep.Err(), ErrCapacityExceeded)
	require.Contains(t, rep.String(), "[ error ]")
}

func TestAudit_CostTolerance(t *testing.T) {
	s, r, _ := corruptible(t, 20)
	s.routes[r].cost += CostTolerance / 2
	s.cost += CostTolerance / 2
	require.True(t, s.IsFeasible())
}

func TestAudit_Partial(t *testing.T) {
	s, _, o := corruptible(t, 20)
	s.RemoveVertex(o, 5)
	s.RemoveVertex(o, 4)
	s.RemoveRoute(o)

	rep := s.Audit()
	require.True(t, rep.Feasible(), rep.String())
	require.Equal(t, []int{4, 5}, rep.Unrouted)
	require.NoError(t, rep.Err())
	require.ErrorIs(t, rep.Warning(), ErrUnrouted)
	require.Equal(t, "[ warning ] "+rep.Warning().Error()+"\n", rep.String())
}
