// SPDX-License-Identifier: MIT

// Package matrix - derived vector geometry shared by both engines.
//
// Every function takes the engine whose Dot it builds on, so
// naive.Angle and backend.Angle differ only in the dot product used.
package matrix

import (
	"fmt"
	"math"
)

const (
	opMagnitude = "Magnitude"
	opCosine    = "Cosine"
	opAngle     = "Angle"
)

// Magnitude returns dot(v, v).
func Magnitude[T Float](e Multiplier[T], v *Vector[T]) (T, error) {
	d, err := e.Dot(v, v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", opMagnitude, err)
	}

	return d, nil
}

// Norm returns the Euclidean norm sqrt(dot(v, v)).
func Norm[T Float](e Multiplier[T], v *Vector[T]) (T, error) {
	d, err := e.Dot(v, v)
	if err != nil {
		return 0, fmt.Errorf("Norm: %w", err)
	}

	return T(math.Sqrt(float64(d))), nil
}

// Cosine returns dot(v1,v2) / (Magnitude(v1)*Magnitude(v2)).
// The denominator is a product of squared lengths, so the result only lies
// in [-1, 1] for vectors whose lengths multiply to about 1; Angle rejects the rest.
// Errors: ErrNilArray, ErrDimensionMismatch, ErrDivideByZero when either
// magnitude is zero.
func Cosine[T Float](e Multiplier[T], v1, v2 *Vector[T]) (T, error) {
	d, err := e.Dot(v1, v2)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", opCosine, err)
	}
	m1, err := Magnitude(e, v1)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", opCosine, err)
	}
	m2, err := Magnitude(e, v2)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", opCosine, err)
	}
	if m1 == 0 || m2 == 0 {
		return 0, fmt.Errorf("%s: |v1|=%g |v2|=%g: %w", opCosine, float64(m1), float64(m2), ErrDivideByZero)
	}

	return d / (m1 * m2), nil
}

// Angle returns acos(Cosine(v1, v2)) in radians.
// Cosines within eps outside [-1, 1] (rounding) are clamped; anything further
// out is ErrDomain. eps comes from WithEpsilon (default DefaultEpsilon) and is
// never tighter than singleEpsilon for float32 element kinds.
// Errors: those of Cosine, plus ErrDomain.
func Angle[T Float](e Multiplier[T], v1, v2 *Vector[T], opts ...Option) (T, error) {
	o := gatherOptions(opts...)
	tol := o.eps
	if isSingle[T]() && tol < singleEpsilon {
		tol = singleEpsilon
	}
	c, err := Cosine(e, v1, v2)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", opAngle, err)
	}
	x := float64(c)
	switch {
	case math.IsNaN(x) || x > 1+tol || x < -1-tol:
		return 0, fmt.Errorf("%s: acos(%g): %w", opAngle, x, ErrDomain)
	case x > 1:
		x = 1
	case x < -1:
		x = -1
	}

	return T(math.Acos(x)), nil
}
