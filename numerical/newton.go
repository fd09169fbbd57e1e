// SPDX-License-Identifier: MIT

package numerical

import (
	"fmt"
	"math"

	"github.com/katalvlaran/minila/matrix"
)

// Root status codes.
const (
	StatusConverged    = 0
	StatusNotConverged = -1
)

// Root is the outcome of a Newton search.
type Root[T matrix.Float] struct {
	Status    int     // StatusConverged or StatusNotConverged
	Root      T       // last iterate
	Iter      int     // iterations performed, starting at 1
	Step      float64 // finite-difference step used (0 with an analytic derivative)
	Precision float64 // stopping threshold used
}

// String renders the root for diagnostics.
func (r Root[T]) String() string {
	return fmt.Sprintf("root=%g status=%d iter=%d", r.Root, r.Status, r.Iter)
}

// Newton finds a root of f from start, differentiating f numerically.
// Errors: ErrNilFunction, ErrZeroDerivative (with the partial Root).
func Newton[T matrix.Float](f func(T) T, start T, opts ...Option) (Root[T], error) {
	if f == nil {
		return Root[T]{Status: StatusNotConverged, Root: start}, fmt.Errorf("Newton: %w", ErrNilFunction)
	}
	o := NewOptions(opts...)
	d := func(x float64) float64 { return central(f, x, o) }

	r, err := iterate(f, d, start, o)
	r.Step = o.step
	if err != nil {
		return r, fmt.Errorf("Newton: %w", err)
	}

	return r, nil
}

// NewtonWithDerivative finds a root of f from start using the analytic df.
// Errors: ErrNilFunction, ErrZeroDerivative (with the partial Root).
func NewtonWithDerivative[T matrix.Float](f, df func(T) T, start T, opts ...Option) (Root[T], error) {
	if f == nil || df == nil {
		return Root[T]{Status: StatusNotConverged, Root: start}, fmt.Errorf("NewtonWithDerivative: %w", ErrNilFunction)
	}
	o := NewOptions(opts...)
	d := func(x float64) float64 { return float64(df(T(x))) }

	r, err := iterate(f, d, start, o)
	if err != nil {
		return r, fmt.Errorf("NewtonWithDerivative: %w", err)
	}

	return r, nil
}

// iterate runs x(n+1) = x(n) - f(x(n))/d(x(n)) until |x(n+1)-x(n)| <= precision
// or MaxIter iterations have been spent.
func iterate[T matrix.Float](f func(T) T, d func(float64) float64, start T, o Options) (Root[T], error) {
	r := Root[T]{Status: StatusNotConverged, Root: start, Iter: 1, Precision: o.precision}
	x0 := float64(start)
	xn := x0
	for ; r.Iter < o.maxIter; r.Iter++ {
		slope := d(x0)
		if slope == 0 || math.IsNaN(slope) || math.IsInf(slope, 0) {
			r.Root = T(x0)
			return r, fmt.Errorf("x=%g: %w", x0, ErrZeroDerivative)
		}
		xn = x0 - float64(f(T(x0)))/slope
		if math.Abs(xn-x0) <= o.precision {
			r.Status = StatusConverged
			break
		}
		x0 = xn
	}
	r.Root = T(xn)

	return r, nil
}
