// SPDX-License-Identifier: MIT

package integration

import (
	"fmt"
	"math"

	"github.com/katalvlaran/minila/matrix"
)

// stencil returns the weighted panel sum for [a, b]; scale turns the total
// into the integral given the panel width h.
type stencil struct {
	name  string
	def   int
	panel func(f func(float64) float64, a, b float64) float64
	scale func(h float64) float64
}

var (
	trapezium = stencil{
		name: "Trapezium",
		def:  DefaultTrapeziumSubdivisions,
		panel: func(f func(float64) float64, a, b float64) float64 {
			return (f(a) + f(b)) / 2
		},
		scale: func(h float64) float64 { return h },
	}
	simpson = stencil{
		name: "Simpson",
		def:  DefaultSimpsonSubdivisions,
		panel: func(f func(float64) float64, a, b float64) float64 {
			return f(a) + 4*f((a+b)/2) + f(b)
		},
		scale: func(h float64) float64 { return h / 6 },
	}
	simpson38 = stencil{
		name: "Simpson38",
		def:  DefaultSimpson38Subdivisions,
		panel: func(f func(float64) float64, a, b float64) float64 {
			return f(a) + 3*f((2*a+b)/3) + 3*f((a+2*b)/3) + f(b)
		},
		scale: func(h float64) float64 { return h / 8 },
	}
)

// Trapezium integrates f over [start, end] with the composite trapezium rule.
// Errors: ErrNilFunction, ErrInvalidInterval.
func Trapezium[T matrix.Float](f func(T) T, start, end T, opts ...Option) (T, error) {
	return integrate(trapezium, f, start, end, opts)
}

// Simpson integrates f over [start, end] with the composite Simpson 1/3 rule.
// Errors: ErrNilFunction, ErrInvalidInterval.
func Simpson[T matrix.Float](f func(T) T, start, end T, opts ...Option) (T, error) {
	return integrate(simpson, f, start, end, opts)
}

// Simpson38 integrates f over [start, end] with the composite Simpson 3/8 rule.
// Errors: ErrNilFunction, ErrInvalidInterval.
func Simpson38[T matrix.Float](f func(T) T, start, end T, opts ...Option) (T, error) {
	return integrate(simpson38, f, start, end, opts)
}

// integrate accumulates rule.panel over n panels in float64.
func integrate[T matrix.Float](rule stencil, f func(T) T, start, end T, opts []Option) (T, error) {
	if f == nil {
		return 0, fmt.Errorf("%s: %w", rule.name, ErrNilFunction)
	}
	a, b := float64(start), float64(end)
	if !finite(a) || !finite(b) {
		return 0, fmt.Errorf("%s: [%g, %g]: %w", rule.name, a, b, ErrInvalidInterval)
	}
	o := resolve(rule.def, opts...)
	n := o.subdivisions
	g := func(x float64) float64 { return float64(f(T(x))) }

	h := (b - a) / float64(n)
	sum := 0.0
	for i := 0; i < n; i++ {
		sum += rule.panel(g, a+h*float64(i), a+h*float64(i+1))
	}

	return T(rule.scale(h) * sum), nil
}

// Grid returns the n+1 panel boundaries start + h*i, i = 0..n.
// Errors: ErrInvalidInterval, ErrInvalidSubdivisions.
func Grid[T matrix.Float](start, end T, n int) (*matrix.Vector[T], error) {
	a, b := float64(start), float64(end)
	if !finite(a) || !finite(b) {
		return nil, fmt.Errorf("Grid: [%g, %g]: %w", a, b, ErrInvalidInterval)
	}
	if n <= 0 {
		return nil, fmt.Errorf("Grid: n=%d: %w", n, ErrInvalidSubdivisions)
	}
	v, err := matrix.NewVector[T](n + 1)
	if err != nil {
		return nil, fmt.Errorf("Grid: %w", err)
	}
	h := (b - a) / float64(n)
	pts := v.Data()
	for i := range pts {
		pts[i] = T(a + h*float64(i))
	}
	pts[n] = end

	return v, nil
}

func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }
