// SPDX-License-Identifier: MIT

package numerical

import "errors"

var (
	// ErrNilFunction indicates a nil f or derivative argument.
	ErrNilFunction = errors.New("numerical: nil function")

	// ErrZeroDerivative indicates f'(x) == 0 (or non-finite) at a Newton iterate.
	ErrZeroDerivative = errors.New("numerical: zero derivative")
)
