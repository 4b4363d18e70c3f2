// SPDX-License-Identifier: MIT

package instance

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/cvrp/matrix"
)

// depot is the vertex id of the depot in every Instance.
const depot = 0

// Instance is an immutable CVRP instance. See the package documentation for
// the validity contract.
type Instance struct {
	xs, ys    []float64
	demands   []int
	capacity  int
	costs     *matrix.Dense
	neighbors [][]int

	source string // grammar that produced the instance, "" when built in memory
	valid  bool
	err    error
}

// Load reads path and parses it with the first grammar that accepts it.
// The result is never nil; check IsValid (and Err for the reason).
func Load(path string, opts ...Option) *Instance {
	data, err := os.ReadFile(path)
	if err != nil {
		return &Instance{err: fmt.Errorf("Load(%q): %w", path, err)}
	}

	return parseBytes(data, gatherOptions(opts))
}

// Parse is Load over an in-memory source.
func Parse(r io.Reader, opts ...Option) *Instance {
	data, err := io.ReadAll(r)
	if err != nil {
		return &Instance{err: fmt.Errorf("Parse: %w", err)}
	}

	return parseBytes(data, gatherOptions(opts))
}

func parseBytes(data []byte, o Options) *Instance {
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))

	attempts := make([]error, 0, len(grammars))
	for _, g := range grammars {
		raw, err := g.parse(data)
		if err != nil {
			attempts = append(attempts, fmt.Errorf("%s: %w", g.name, err))
			continue
		}
		in, err := fromRaw(raw, o)
		if err != nil {
			attempts = append(attempts, fmt.Errorf("%s: %w", g.name, err))
			continue
		}
		in.source = g.name

		return in
	}

	return &Instance{err: fmt.Errorf("%w: %w", ErrUnknownFormat, errors.Join(attempts...))}
}

// FromData builds an Instance from per-vertex coordinates and demands
// (index 0 is the depot). Structural problems (length mismatch, empty input,
// non-finite coordinates) are returned as errors; demand and capacity
// problems only clear IsValid, like Load.
func FromData(xs, ys []float64, demands []int, capacity int, opts ...Option) (*Instance, error) {
	if len(xs) != len(demands) {
		return nil, fmt.Errorf("FromData: %d points vs %d demands: %w", len(xs), len(demands), ErrDimensionMismatch)
	}
	raw := &rawInstance{
		xs:       append([]float64(nil), xs...),
		ys:       append([]float64(nil), ys...),
		demands:  append([]int(nil), demands...),
		capacity: capacity,
	}
	in, err := fromRaw(raw, gatherOptions(opts))
	if err != nil {
		return nil, fmt.Errorf("FromData: %w", err)
	}

	return in, nil
}

// FromMatrix builds an Instance whose costs are given explicitly. The matrix
// must be square, finite, symmetric and have a zero diagonal. Coordinates are
// all zero. The matrix is copied.
func FromMatrix(costs matrix.Matrix, demands []int, capacity int) (*Instance, error) {
	const tag = "FromMatrix"
	if err := matrix.ValidateSquare(costs); err != nil {
		return nil, fmt.Errorf("%s: %w", tag, err)
	}
	if err := matrix.ValidateFinite(costs); err != nil {
		return nil, fmt.Errorf("%s: %w", tag, err)
	}
	if err := matrix.ValidateZeroDiagonal(costs, 0); err != nil {
		return nil, fmt.Errorf("%s: %w", tag, err)
	}
	if err := matrix.ValidateSymmetric(costs, 1e-9); err != nil {
		return nil, fmt.Errorf("%s: %w", tag, err)
	}
	n := costs.Rows()
	if n != len(demands) {
		return nil, fmt.Errorf("%s: %d vertices vs %d demands: %w", tag, n, len(demands), ErrDimensionMismatch)
	}

	dense, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", tag, err)
	}
	var v float64
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v, _ = costs.At(i, j)
			if err = dense.Set(i, j, v); err != nil {
				return nil, fmt.Errorf("%s: %w", tag, err)
			}
		}
	}

	in := &Instance{
		xs:       make([]float64, n),
		ys:       make([]float64, n),
		demands:  append([]int(nil), demands...),
		capacity: capacity,
		costs:    dense,
	}
	in.derive()

	return in, nil
}

// fromRaw computes costs, neighbors and validity for parsed data.
func fromRaw(raw *rawInstance, o Options) (*Instance, error) {
	costs, err := matrix.NewEuclidean(raw.xs, raw.ys, o.RoundCosts)
	if err != nil {
		if errors.Is(err, matrix.ErrInvalidDimensions) {
			return nil, fmt.Errorf("%w: %w", ErrBadDimension, err)
		}
		if errors.Is(err, matrix.ErrDimensionMismatch) {
			return nil, fmt.Errorf("%w: %w", ErrDimensionMismatch, err)
		}

		return nil, err
	}
	in := &Instance{
		xs:       raw.xs,
		ys:       raw.ys,
		demands:  raw.demands,
		capacity: raw.capacity,
		costs:    costs,
	}
	in.derive()

	return in, nil
}

// derive fills neighbor orderings and the validity verdict.
func (in *Instance) derive() {
	n := len(in.demands)
	in.neighbors = sortedNeighbors(n, in.Cost)

	var errs []error
	if in.capacity <= 0 {
		errs = append(errs, fmt.Errorf("capacity %d: %w", in.capacity, ErrBadCapacity))
	}
	for i := depot + 1; i < n; i++ {
		if in.demands[i] <= 0 {
			errs = append(errs, fmt.Errorf("customer %d demand %d: %w", i, in.demands[i], ErrBadDemand))
		}
	}
	in.err = errors.Join(errs...)
	in.valid = in.err == nil
}

// IsValid reports whether the instance parsed and passed validation.
func (in *Instance) IsValid() bool { return in.valid }

// Err explains why IsValid is false; nil for a valid instance.
func (in *Instance) Err() error { return in.err }

// Source names the grammar that produced the instance ("" when built in memory).
func (in *Instance) Source() string { return in.source }

// Depot returns the depot vertex id (always 0).
func (in *Instance) Depot() int { return depot }

// VehicleCapacity returns Q.
func (in *Instance) VehicleCapacity() int { return in.capacity }

// CustomersNum returns the number of customers (N-1, or 0 when unparsed).
func (in *Instance) CustomersNum() int { return max(len(in.demands)-1, 0) }

// CustomersBegin returns the first customer id.
func (in *Instance) CustomersBegin() int { return depot + 1 }

// CustomersEnd returns one past the last customer id.
func (in *Instance) CustomersEnd() int { return max(len(in.demands), depot+1) }

// VerticesNum returns N.
func (in *Instance) VerticesNum() int { return len(in.demands) }

// VerticesBegin returns 0.
func (in *Instance) VerticesBegin() int { return 0 }

// VerticesEnd returns N.
func (in *Instance) VerticesEnd() int { return len(in.demands) }

// Cost returns the travel cost between i and j. Indices are not checked.
func (in *Instance) Cost(i, j int) float64 { return in.costs.MustAt(i, j) }

// Demand returns the demand of vertex i.
func (in *Instance) Demand(i int) int { return in.demands[i] }

// X returns the abscissa of vertex i.
func (in *Instance) X(i int) float64 { return in.xs[i] }

// Y returns the ordinate of vertex i.
func (in *Instance) Y(i int) float64 { return in.ys[i] }

// NeighborsOf returns all vertices ordered by cost from i, i first.
// The slice is shared and must not be modified.
func (in *Instance) NeighborsOf(i int) []int { return in.neighbors[i] }

// Costs returns a copy of the cost matrix, or nil for an unparsed instance.
func (in *Instance) Costs() matrix.Matrix {
	if in.costs == nil {
		return nil
	}

	return in.costs.Clone()
}
