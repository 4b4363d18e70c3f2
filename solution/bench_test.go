// SPDX-License-Identifier: MIT

package solution_test

import (
	"testing"

	"github.com/katalvlaran/cvrp/instance"
	"github.com/katalvlaran/cvrp/solution"
)

func benchSolution(b *testing.B, customers int) (*instance.Instance, *solution.Solution) {
	b.Helper()
	in, err := instance.Generate(instance.GenerateConfig{Customers: customers, Capacity: 1 << 20, MaxDemand: 10, Grid: 1000, Seed: 1})
	if err != nil {
		b.Fatal(err)
	}
	s := solution.New(in)
	s.Reset()

	return in, s
}

func BenchmarkInsertRemove(b *testing.B) {
	in, s := benchSolution(b, 200)
	r := s.BuildOneCustomerRoute(1)
	for c := 2; c < in.CustomersEnd()-1; c++ {
		s.InsertVertexBefore(r, in.Depot(), c)
	}
	last := in.CustomersEnd() - 1
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.InsertVertexBefore(r, 1, last)
		s.RemoveVertex(r, last)
	}
}

func BenchmarkReverse(b *testing.B) {
	in, s := benchSolution(b, 200)
	r := s.BuildOneCustomerRoute(1)
	for c := 2; c < in.CustomersEnd(); c++ {
		s.InsertVertexBefore(r, in.Depot(), c)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.ReverseRoutePath(r, s.FirstCustomer(r), s.LastCustomer(r))
	}
}

func BenchmarkAudit(b *testing.B) {
	in, s := benchSolution(b, 500)
	for c := in.CustomersBegin(); c < in.CustomersEnd(); c++ {
		s.BuildOneCustomerRoute(c)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if !s.Audit().Feasible() {
			b.Fatal("infeasible")
		}
	}
}
