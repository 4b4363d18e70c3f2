// SPDX-License-Identifier: MIT

package instance

import "fmt"

// SubInstance is a read-only projection of a Provider onto a subset of its
// customers. Local id 0 is the depot, local ids 1..k are the chosen customers
// in the order they were given. Costs, demands and coordinates are read
// through the mapping; neighbor orderings are recomputed over the local
// vertex set only.
type SubInstance struct {
	backing   Provider
	mapping   []int       // local id -> backing id
	reverse   map[int]int // backing id -> local id
	neighbors [][]int
}

// NewSubInstance builds the view of backing restricted to customers.
//
// Errors:
//   - ErrNilProvider for a nil backing provider.
//   - ErrDepotInSubset when customers contains the backing depot.
//   - ErrVertexRange for ids outside the backing customer range.
//   - ErrDuplicateCustomer when an id repeats.
//
// Complexity: O(k² log k) for k customers.
func NewSubInstance(backing Provider, customers []int) (*SubInstance, error) {
	if backing == nil {
		return nil, fmt.Errorf("NewSubInstance: %w", ErrNilProvider)
	}
	d := backing.Depot()

	s := &SubInstance{
		backing: backing,
		mapping: make([]int, 0, len(customers)+1),
		reverse: make(map[int]int, len(customers)+1),
	}
	s.mapping = append(s.mapping, d)
	s.reverse[d] = 0

	for _, c := range customers {
		switch {
		case c == d:
			return nil, fmt.Errorf("NewSubInstance: %w", ErrDepotInSubset)
		case c < backing.CustomersBegin() || c >= backing.CustomersEnd():
			return nil, fmt.Errorf("NewSubInstance: customer %d: %w", c, ErrVertexRange)
		}
		if _, dup := s.reverse[c]; dup {
			return nil, fmt.Errorf("NewSubInstance: customer %d: %w", c, ErrDuplicateCustomer)
		}
		s.reverse[c] = len(s.mapping)
		s.mapping = append(s.mapping, c)
	}
	s.neighbors = sortedNeighbors(len(s.mapping), s.Cost)

	return s, nil
}

// Mapping translates a local id into the backing id.
func (s *SubInstance) Mapping(i int) int { return s.mapping[i] }

// ReverseMapping translates a backing id into a local id.
// ok is false when the vertex is not part of the view.
func (s *SubInstance) ReverseMapping(original int) (local int, ok bool) {
	local, ok = s.reverse[original]

	return local, ok
}

// Backing returns the provider this view projects.
func (s *SubInstance) Backing() Provider { return s.backing }

func (s *SubInstance) IsValid() bool        { return s.backing.IsValid() }
func (s *SubInstance) Depot() int           { return 0 }
func (s *SubInstance) VehicleCapacity() int { return s.backing.VehicleCapacity() }
func (s *SubInstance) CustomersNum() int    { return len(s.mapping) - 1 }
func (s *SubInstance) CustomersBegin() int  { return 1 }
func (s *SubInstance) CustomersEnd() int    { return len(s.mapping) }
func (s *SubInstance) VerticesNum() int     { return len(s.mapping) }
func (s *SubInstance) VerticesBegin() int   { return 0 }
func (s *SubInstance) VerticesEnd() int     { return len(s.mapping) }

func (s *SubInstance) Cost(i, j int) float64 { return s.backing.Cost(s.mapping[i], s.mapping[j]) }
func (s *SubInstance) Demand(i int) int      { return s.backing.Demand(s.mapping[i]) }
func (s *SubInstance) X(i int) float64       { return s.backing.X(s.mapping[i]) }
func (s *SubInstance) Y(i int) float64       { return s.backing.Y(s.mapping[i]) }

// NeighborsOf returns local ids ordered by cost from i, i first.
func (s *SubInstance) NeighborsOf(i int) []int { return s.neighbors[i] }
