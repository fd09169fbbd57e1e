// SPDX-License-Identifier: MIT

package integration

// Default panel counts per rule.
const (
	DefaultTrapeziumSubdivisions = 100000
	DefaultSimpsonSubdivisions   = 100000
	DefaultSimpson38Subdivisions = 99999
)

const panicSubdivisionsInvalid = "integration: WithSubdivisions: n must be > 0"

// Option configures a quadrature call.
type Option func(*Options)

// Options is the resolved configuration. A zero subdivisions field means
// "use the rule's default".
type Options struct {
	subdivisions int
}

// WithSubdivisions sets the number of equal panels. Panics when n <= 0.
func WithSubdivisions(n int) Option {
	if n <= 0 {
		panic(panicSubdivisionsInvalid)
	}

	return func(o *Options) { o.subdivisions = n }
}

// resolve applies user options over the rule default.
func resolve(def int, user ...Option) Options {
	o := Options{}
	for _, set := range user {
		set(&o)
	}
	if o.subdivisions == 0 {
		o.subdivisions = def
	}

	return o
}
