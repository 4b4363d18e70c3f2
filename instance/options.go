// SPDX-License-Identifier: MIT

package instance

// DefaultRoundCosts is the cost policy of a fresh Instance: nearest-integer rounding.
const DefaultRoundCosts = true

// Options configures how derived instance state is computed.
type Options struct {
	// RoundCosts rounds every Euclidean distance to the nearest integer.
	RoundCosts bool
}

// Option mutates Options; apply with the variadic constructors of this package.
type Option func(*Options)

// DefaultOptions returns the options used when no Option is given.
func DefaultOptions() Options {
	return Options{RoundCosts: DefaultRoundCosts}
}

// WithRoundedCosts toggles nearest-integer rounding of Euclidean costs.
func WithRoundedCosts(round bool) Option {
	return func(o *Options) { o.RoundCosts = round }
}

func gatherOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
