// SPDX-License-Identifier: MIT

package integration

import "errors"

var (
	// ErrNilFunction indicates a nil integrand.
	ErrNilFunction = errors.New("integration: nil function")

	// ErrInvalidInterval indicates a NaN or infinite bound.
	ErrInvalidInterval = errors.New("integration: invalid interval")

	// ErrInvalidSubdivisions indicates a non-positive panel count.
	ErrInvalidSubdivisions = errors.New("integration: subdivisions must be > 0")
)
