// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for private shape helpers and panic messages.
//
// Purpose:
//   - Expose UNEXPORTED shape arithmetic to matrix_test ONLY (the file name ends
//     in _test.go, so it never reaches production builds).
//   - Keep ALL test-only bridges co-located here.

var (
	// ExportedShapeElements exposes Shape.elements.
	ExportedShapeElements = Shape.elements
	// ExportedShapeStrides exposes Shape.strides.
	ExportedShapeStrides = Shape.strides
)

// Panic message exports to avoid "magic strings" in tests.
const PanicEpsilonInvalid_TestOnly = panicEpsilonInvalid

// IsSingle_TestOnly forwards to isSingle.
func IsSingle_TestOnly[T Float]() bool { return isSingle[T]() }
