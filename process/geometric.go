// SPDX-License-Identifier: MIT

package process

import (
	"fmt"

	"github.com/katalvlaran/minila/matrix"
)

// Geometric is geometric Brownian motion discretized with the Milstein scheme.
type Geometric[T matrix.Float] struct {
	Start T
	Mean  Process[T]
	Sigma Process[T]
}

// NewGeometric composes a geometric Brownian motion.
func NewGeometric[T matrix.Float](start T, mean, sigma Process[T]) Geometric[T] {
	return Geometric[T]{Start: start, Mean: mean, Sigma: sigma}
}

// Initial returns Start.
func (g Geometric[T]) Initial() T { return g.Start }

// Path returns the Milstein path starting at Start.
// Errors: ErrInvalidSteps, ErrNilProcess, driver errors.
// Complexity: O(steps).
func (g Geometric[T]) Path(steps int, seed int64) (*matrix.Vector[T], error) {
	dB, mu, sd, err := drivers("Geometric.Path", g.Mean, g.Sigma, steps, seed)
	if err != nil {
		return nil, err
	}
	v, err := matrix.NewVector[T](steps)
	if err != nil {
		return nil, fmt.Errorf("Geometric.Path: %w", err)
	}
	p := v.Data()
	p[0] = g.Start
	var prev, drift, diff, corr, z T
	for i := 1; i < steps; i++ {
		prev, z = p[i-1], T(dB[i])
		drift = mu[i] * prev
		diff = sd[i] * prev * z
		corr = 0.5 * sd[i] * sd[i] * prev
		p[i] = prev + drift + diff + corr*(z*z-1)
	}

	return v, nil
}
