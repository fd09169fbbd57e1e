// SPDX-License-Identifier: MIT

package process

import "errors"

var (
	// ErrInvalidSteps indicates a path length < 1.
	ErrInvalidSteps = errors.New("process: steps must be >= 1")

	// ErrNilProcess indicates a nil drift or volatility process.
	ErrNilProcess = errors.New("process: nil process")

	// ErrInvalidPaths indicates a non-positive ensemble size.
	ErrInvalidPaths = errors.New("process: paths must be >= 1")
)
