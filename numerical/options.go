// SPDX-License-Identifier: MIT

package numerical

import "math"

// Defaults shared by Derivative and Newton.
const (
	DefaultStep      = 1e-6  // finite-difference step dx
	DefaultOrder     = 4     // central-difference order; 2 or 4
	DefaultPrecision = 1e-6  // |x(n+1) - x(n)| stopping threshold
	DefaultMaxIter   = 10000 // Newton iteration cap
)

const (
	panicStepInvalid      = "numerical: WithStep: dx must be finite and > 0"
	panicOrderInvalid     = "numerical: WithOrder: order must be 2 or 4"
	panicPrecisionInvalid = "numerical: WithPrecision: tol must be finite and > 0"
	panicMaxIterInvalid   = "numerical: WithMaxIter: n must be > 0"
)

// Option configures Derivative and Newton.
type Option func(*Options)

// Options is the resolved configuration.
type Options struct {
	step      float64
	order     int
	precision float64
	maxIter   int
}

// Step returns the finite-difference step.
func (o Options) Step() float64 { return o.step }

// Order returns the central-difference order.
func (o Options) Order() int { return o.order }

// Precision returns the Newton stopping threshold.
func (o Options) Precision() float64 { return o.precision }

// MaxIter returns the Newton iteration cap.
func (o Options) MaxIter() int { return o.maxIter }

// WithStep sets dx. Panics unless dx is finite and positive.
func WithStep(dx float64) Option {
	if !(dx > 0) || math.IsInf(dx, 0) {
		panic(panicStepInvalid)
	}

	return func(o *Options) { o.step = dx }
}

// WithOrder selects the 2nd or 4th order central difference.
func WithOrder(order int) Option {
	if order != 2 && order != 4 {
		panic(panicOrderInvalid)
	}

	return func(o *Options) { o.order = order }
}

// WithPrecision sets the Newton stopping threshold.
func WithPrecision(tol float64) Option {
	if !(tol > 0) || math.IsInf(tol, 0) {
		panic(panicPrecisionInvalid)
	}

	return func(o *Options) { o.precision = tol }
}

// WithMaxIter caps the number of Newton iterations.
func WithMaxIter(n int) Option {
	if n <= 0 {
		panic(panicMaxIterInvalid)
	}

	return func(o *Options) { o.maxIter = n }
}

// NewOptions resolves defaults plus user options (last writer wins).
func NewOptions(user ...Option) Options {
	o := Options{
		step:      DefaultStep,
		order:     DefaultOrder,
		precision: DefaultPrecision,
		maxIter:   DefaultMaxIter,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
