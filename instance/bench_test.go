// SPDX-License-Identifier: MIT

package instance_test

import (
	"bytes"
	"testing"

	"github.com/katalvlaran/cvrp/instance"
)

func BenchmarkGenerate500(b *testing.B) {
	cfg := instance.GenerateConfig{Customers: 500, Capacity: 100, MaxDemand: 10, Grid: 1000, Seed: 1}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := instance.Generate(cfg); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParseTSPLIB500(b *testing.B) {
	gen, err := instance.Generate(instance.GenerateConfig{Customers: 500, Capacity: 100, MaxDemand: 10, Grid: 1000, Seed: 1})
	if err != nil {
		b.Fatal(err)
	}
	var buf bytes.Buffer
	if err = instance.Write(&buf, gen, instance.FormatTSPLIB); err != nil {
		b.Fatal(err)
	}
	data := buf.Bytes()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if in := instance.Parse(bytes.NewReader(data)); !in.IsValid() {
			b.Fatal(in.Err())
		}
	}
}
