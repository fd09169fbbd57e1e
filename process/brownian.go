// SPDX-License-Identifier: MIT

package process

import (
	"fmt"

	"github.com/katalvlaran/minila/matrix"
)

// Brownian is arithmetic Brownian motion with process-valued drift and volatility.
type Brownian[T matrix.Float] struct {
	Start T
	Mean  Process[T]
	Sigma Process[T]
}

// NewBrownian composes a Brownian motion from its start and driver processes.
func NewBrownian[T matrix.Float](start T, mean, sigma Process[T]) Brownian[T] {
	return Brownian[T]{Start: start, Mean: mean, Sigma: sigma}
}

// Initial returns Start.
func (b Brownian[T]) Initial() T { return b.Start }

// Path returns p with p[1] = Start and p[i] = p[i-1] + μ[i] + σ[i]·dB[i].
// Errors: ErrInvalidSteps, ErrNilProcess, driver errors.
// Complexity: O(steps).
func (b Brownian[T]) Path(steps int, seed int64) (*matrix.Vector[T], error) {
	dB, mu, sd, err := drivers("Brownian.Path", b.Mean, b.Sigma, steps, seed)
	if err != nil {
		return nil, err
	}
	v, err := matrix.NewVector[T](steps)
	if err != nil {
		return nil, fmt.Errorf("Brownian.Path: %w", err)
	}
	p := v.Data()
	p[0] = b.Start
	for i := 1; i < steps; i++ {
		p[i] = p[i-1] + mu[i] + T(dB[i])*sd[i]
	}

	return v, nil
}
