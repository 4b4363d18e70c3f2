// SPDX-License-Identifier: MIT

package instance

// Provider is the read-only view of an instance consumed by solutions and
// constructive heuristics.
//
// Vertex ids are dense: vertices occupy [VerticesBegin, VerticesEnd) and
// customers the sub-range [CustomersBegin, CustomersEnd). Cost is symmetric
// with Cost(i,i) == 0. Demand(Depot()) == 0.
//
// NeighborsOf(i) returns every vertex id ordered by non-decreasing Cost(i,·)
// with i itself in position 0. The returned slice is shared: callers must not
// modify it.
type Provider interface {
	IsValid() bool
	Depot() int
	VehicleCapacity() int

	CustomersNum() int
	CustomersBegin() int
	CustomersEnd() int

	VerticesNum() int
	VerticesBegin() int
	VerticesEnd() int

	Cost(i, j int) float64
	Demand(i int) int
	X(i int) float64
	Y(i int) float64
	NeighborsOf(i int) []int
}

// Compile-time conformance.
var (
	_ Provider = (*Instance)(nil)
	_ Provider = (*SubInstance)(nil)
)
