// SPDX-License-Identifier: MIT

package clarkewright

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/katalvlaran/cvrp/instance"
	"github.com/katalvlaran/cvrp/solution"
)

// saving is the gain of serving j right after i instead of returning to the depot.
type saving struct {
	i, j  int
	value float64
}

// Run resets s and fills it with the savings construction described in the
// package documentation. The result routes every customer.
//
// Errors:
//   - ErrNilSolution for a nil s.
//   - ErrBadOptions when opts does not validate; s is left untouched.
//   - ErrInfeasible, joined with the audit violations, when the result
//     breaks an invariant (a single customer heavier than the vehicle).
func Run(s *solution.Solution, opts Options) error {
	if s == nil {
		return fmt.Errorf("clarkewright.Run: %w", ErrNilSolution)
	}
	if err := opts.Validate(); err != nil {
		return fmt.Errorf("clarkewright.Run: %w", err)
	}
	p := s.Instance()

	s.Reset()
	for i := p.CustomersBegin(); i < p.CustomersEnd(); i++ {
		s.BuildOneCustomerRoute(i)
	}

	k := max(min(p.CustomersNum()-1, opts.Neighbors), 0)
	savings := computeSavings(p, opts.Lambda, k)
	slices.SortStableFunc(savings, func(a, b saving) int { return cmp.Compare(b.value, a.value) })

	q := p.VehicleCapacity()
	for _, sv := range savings {
		ri, rj := s.RouteIndex(sv.i), s.RouteIndex(sv.j)
		if ri == rj || s.RouteLoad(ri)+s.RouteLoad(rj) > q {
			continue
		}
		switch {
		case s.LastCustomer(ri) == sv.i && s.FirstCustomer(rj) == sv.j:
			s.AppendRoute(ri, rj)
		case s.LastCustomer(rj) == sv.j && s.FirstCustomer(ri) == sv.i:
			s.AppendRoute(rj, ri)
		}
	}

	if rep := s.Audit(); !rep.Feasible() {
		return fmt.Errorf("clarkewright.Run: %w: %w", ErrInfeasible, rep.Err())
	}

	return nil
}

// computeSavings generates, for every customer i, the savings towards its
// first k neighbors j with j > i, in neighbor order.
func computeSavings(p instance.Provider, lambda float64, k int) []saving {
	depot := p.Depot()
	out := make([]saving, 0, p.CustomersNum()*k/2)
	for i := p.CustomersBegin(); i < p.CustomersEnd(); i++ {
		nb := p.NeighborsOf(i)
		added := 0
		for n := 1; added < k && n < len(nb); n++ {
			j := nb[n]
			if j <= i {
				continue // depot and symmetric pairs
			}
			out = append(out, saving{
				i:     i,
				j:     j,
				value: p.Cost(i, depot) + p.Cost(depot, j) - lambda*p.Cost(i, j),
			})
			added++
		}
	}

	return out
}
