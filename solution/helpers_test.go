// SPDX-License-Identifier: MIT

package solution_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cvrp/instance"
	"github.com/katalvlaran/cvrp/solution"
)

// lineDemands are the demands of lineInstance: depot, then customers 1..5.
var lineDemands = []int{0, 2, 3, 1, 4, 2}

// lineInstance places the depot and five customers on the x axis at
// x = 0..5, so c(i, j) = |i - j|.
func lineInstance(t *testing.T, capacity int) *instance.Instance {
	t.Helper()
	xs := []float64{0, 1, 2, 3, 4, 5}
	ys := make([]float64, len(xs))
	in, err := instance.FromData(xs, ys, lineDemands, capacity)
	require.NoError(t, err)
	require.True(t, in.IsValid(), "%v", in.Err())

	return in
}

// freshSolution returns a reset solution over p.
func freshSolution(p instance.Provider) *solution.Solution {
	s := solution.New(p)
	s.Reset()

	return s
}

// buildRoute opens a route for customers in order and returns its id.
func buildRoute(s *solution.Solution, customers ...int) int {
	r := s.BuildOneCustomerRoute(customers[0])
	for _, c := range customers[1:] {
		s.InsertVertexBefore(r, s.Instance().Depot(), c)
	}

	return r
}

// requireSound asserts the audit passes and the maintained total equals the
// sum of recomputed route costs.
func requireSound(t *testing.T, s *solution.Solution) {
	t.Helper()
	rep := s.Audit()
	require.True(t, rep.Feasible(), "%s\n%s", rep.String(), s.String())

	var total float64
	for r := s.FirstRoute(); r != solution.DummyRoute; r = s.NextRoute(r) {
		total += s.TourCost(r)
	}
	require.InDelta(t, total, s.Cost(), 1e-6)
}

// requirePanicIs runs fn and asserts it panics with an error wrapping target.
func requirePanicIs(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		rec := recover()
		require.NotNil(t, rec, "expected a panic wrapping %v", target)
		err, ok := rec.(error)
		require.True(t, ok, "panic value %v is not an error", rec)
		require.ErrorIs(t, err, target)
	}()
	fn()
}

// tours lists the closed tours of the active routes in list order.
func tours(s *solution.Solution) [][]int {
	var out [][]int
	for r := s.FirstRoute(); r != solution.DummyRoute; r = s.NextRoute(r) {
		out = append(out, s.Tour(r))
	}

	return out
}
