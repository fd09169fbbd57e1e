// SPDX-License-Identifier: MIT

package backend

import "github.com/katalvlaran/minila/matrix"

// kind enumerates the element widths the BLAS backend can serve.
type kind uint8

const (
	kindUnsupported kind = iota
	kindSingle
	kindDouble
)

// kindOf classifies T. Named float types fall into kindUnsupported because
// their slices cannot be handed to blas32/blas64 without a copy.
func kindOf[T matrix.Float]() kind {
	var z T
	switch any(z).(type) {
	case float32:
		return kindSingle
	case float64:
		return kindDouble
	default:
		return kindUnsupported
	}
}

// f32 and f64 reinterpret a T slice whose kind has already been checked.
func f32[T matrix.Float](s []T) []float32 { return any(s).([]float32) }
func f64[T matrix.Float](s []T) []float64 { return any(s).([]float64) }
