// SPDX-License-Identifier: MIT

package clarkewright_test

import (
	"testing"

	"github.com/katalvlaran/cvrp/clarkewright"
	"github.com/katalvlaran/cvrp/instance"
	"github.com/katalvlaran/cvrp/solution"
)

func BenchmarkRun500(b *testing.B) {
	in, err := instance.Generate(instance.GenerateConfig{Customers: 500, Capacity: 200, MaxDemand: 20, Grid: 1000, Seed: 1})
	if err != nil {
		b.Fatal(err)
	}
	s := solution.New(in)
	opts := clarkewright.Options{Lambda: 1, Neighbors: 100}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err = clarkewright.Run(s, opts); err != nil {
			b.Fatal(err)
		}
	}
}
