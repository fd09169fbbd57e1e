// SPDX-License-Identifier: MIT

package process

import (
	"fmt"

	"github.com/katalvlaran/minila/matrix"
)

// Process generates a path of a stochastic process.
type Process[T matrix.Float] interface {
	// Initial returns path(1).
	Initial() T
	// Path returns a vector of length steps; equal seeds give equal paths.
	Path(steps int, seed int64) (*matrix.Vector[T], error)
}

var (
	_ Process[float64] = Constant[float64]{}
	_ Process[float64] = Brownian[float64]{}
	_ Process[float64] = Geometric[float64]{}
)

func validateSteps(op string, steps int) error {
	if steps < 1 {
		return fmt.Errorf("%s: steps=%d: %w", op, steps, ErrInvalidSteps)
	}

	return nil
}

// Constant is the degenerate process whose every step equals Value.
type Constant[T matrix.Float] struct {
	Value T
}

// NewConstant returns a constant process.
func NewConstant[T matrix.Float](v T) Constant[T] { return Constant[T]{Value: v} }

// Initial returns Value.
func (c Constant[T]) Initial() T { return c.Value }

// Path fills a vector with Value; seed is ignored.
func (c Constant[T]) Path(steps int, _ int64) (*matrix.Vector[T], error) {
	if err := validateSteps("Constant.Path", steps); err != nil {
		return nil, err
	}
	v, err := matrix.NewVector[T](steps)
	if err != nil {
		return nil, fmt.Errorf("Constant.Path: %w", err)
	}
	p := v.Data()
	for i := range p {
		p[i] = c.Value
	}

	return v, nil
}

// drivers samples the noise, drift and volatility streams of a diffusion.
func drivers[T matrix.Float](op string, mean, sigma Process[T], steps int, seed int64) (dB []float64, mu, sd []T, err error) {
	if err = validateSteps(op, steps); err != nil {
		return nil, nil, nil, err
	}
	if mean == nil || sigma == nil {
		return nil, nil, nil, fmt.Errorf("%s: %w", op, ErrNilProcess)
	}
	m, err := mean.Path(steps, seed+1)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%s: mean: %w", op, err)
	}
	s, err := sigma.Path(steps, seed+2)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%s: sigma: %w", op, err)
	}

	return normals(steps, seed), m.Data(), s.Data(), nil
}
