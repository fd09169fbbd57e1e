// SPDX-License-Identifier: MIT

package numerical

import (
	"fmt"

	"github.com/katalvlaran/minila/matrix"
)

// Derivative approximates f'(x) by central differences.
//
//	order 2: (f(x+h) - f(x-h)) / 2h
//	order 4: (-f(x+2h) + 8f(x+h) - 8f(x-h) + f(x-2h)) / 12h
//
// Errors: ErrNilFunction.
func Derivative[T matrix.Float](f func(T) T, x T, opts ...Option) (T, error) {
	if f == nil {
		return 0, fmt.Errorf("Derivative: %w", ErrNilFunction)
	}
	o := NewOptions(opts...)

	return T(central(f, float64(x), o)), nil
}

// central evaluates the configured stencil in float64.
func central[T matrix.Float](f func(T) T, x float64, o Options) float64 {
	h := o.step
	at := func(dx float64) float64 { return float64(f(T(x + dx))) }
	if o.order == 2 {
		return (at(h) - at(-h)) / (2 * h)
	}

	return (-at(2*h) + 8*at(h) - 8*at(-h) + at(-2*h)) / (12 * h)
}
