// SPDX-License-Identifier: MIT

package clarkewright

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultLambda is the route shape parameter of the classic heuristic.
	DefaultLambda = 1.0
	// DefaultNeighbors bounds the savings generated per customer.
	DefaultNeighbors = 1000
)

// Options configures Run.
//
// Lambda    – weight of c(i, j) in the saving; must be finite.
// Neighbors – savings per customer are taken from this many nearest
// neighbors; must be ≥ 0 and is clamped to customers-1.
type Options struct {
	Lambda    float64 `yaml:"lambda"`
	Neighbors int     `yaml:"neighbors"`
}

// DefaultOptions returns Lambda = DefaultLambda, Neighbors = DefaultNeighbors.
func DefaultOptions() Options {
	return Options{
		Lambda:    DefaultLambda,
		Neighbors: DefaultNeighbors,
	}
}

// Validate reports ErrBadOptions for a NaN or infinite Lambda or a negative Neighbors.
func (o Options) Validate() error {
	if math.IsNaN(o.Lambda) || math.IsInf(o.Lambda, 0) {
		return fmt.Errorf("lambda %v: %w", o.Lambda, ErrBadOptions)
	}
	if o.Neighbors < 0 {
		return fmt.Errorf("neighbors %d: %w", o.Neighbors, ErrBadOptions)
	}

	return nil
}

// LoadOptions decodes a YAML document over DefaultOptions: missing keys keep
// their defaults, unknown keys are rejected. An empty document yields the
// defaults.
func LoadOptions(r io.Reader) (Options, error) {
	opts := DefaultOptions()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&opts); err != nil && !errors.Is(err, io.EOF) {
		return Options{}, fmt.Errorf("clarkewright.LoadOptions: %w: %w", ErrBadOptions, err)
	}
	if err := opts.Validate(); err != nil {
		return Options{}, fmt.Errorf("clarkewright.LoadOptions: %w", err)
	}

	return opts, nil
}

// LoadOptionsFile reads options from a YAML file.
func LoadOptionsFile(path string) (Options, error) {
	f, err := os.Open(path)
	if err != nil {
		return Options{}, fmt.Errorf("clarkewright.LoadOptionsFile: %w", err)
	}
	defer f.Close()

	return LoadOptions(f)
}
