// SPDX-License-Identifier: MIT
package matrix_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/minila/matrix"
	"github.com/katalvlaran/minila/matrix/backend"
	"github.com/katalvlaran/minila/matrix/naive"
)

// engines returns both multiply engines under their names.
func engines() map[string]matrix.Multiplier[float64] {
	return map[string]matrix.Multiplier[float64]{
		"naive":   naive.Engine[float64]{},
		"backend": backend.Engine[float64]{},
	}
}

// TestAngle_Orthogonal: v1=[1,0], v2=[0,1] -> dot 0, angle π/2.
func TestAngle_Orthogonal(t *testing.T) {
	t.Parallel()
	v1 := matrix.NewVectorFrom([]float64{1, 0})
	v2 := matrix.NewVectorFrom([]float64{0, 1})

	for name, e := range engines() {
		d, err := e.Dot(v1, v2)
		require.NoError(t, err, name)
		require.Zero(t, d, name)
		a, err := matrix.Angle(e, v1, v2)
		require.NoError(t, err, name)
		require.InDelta(t, math.Pi/2, a, 1e-15, name)
	}
}

func TestMagnitudeAndCosine(t *testing.T) {
	t.Parallel()
	e := naive.Engine[float64]{}
	v := matrix.NewVectorFrom([]float64{3, 4})

	m, err := matrix.Magnitude[float64](e, v)
	require.NoError(t, err)
	require.Equal(t, 25.0, m)
	n, err := matrix.Norm[float64](e, v)
	require.NoError(t, err)
	require.Equal(t, 5.0, n)

	// dot = -50, magnitudes 25 and 100.
	c, err := matrix.Cosine[float64](e, v, v.Scale(-2))
	require.NoError(t, err)
	require.InDelta(t, -0.02, c, 1e-15)

	// Unit vectors: the cosine is the geometric one.
	u1 := matrix.NewVectorFrom([]float64{0.6, 0.8})
	u2 := matrix.NewVectorFrom([]float64{1, 0})
	c, err = matrix.Cosine[float64](e, u1, u2)
	require.NoError(t, err)
	require.InDelta(t, 0.6, c, 1e-12)
	a, err := matrix.Angle[float64](e, u1, u1)
	require.NoError(t, err)
	require.InDelta(t, 0, a, 1e-7)
}

// TestAngle_DomainError: [0.5,0] with itself gives dot/(mag*mag) = 0.25/0.0625 = 4.
func TestAngle_DomainError(t *testing.T) {
	t.Parallel()
	v := matrix.NewVectorFrom([]float64{0.5, 0})

	for name, e := range engines() {
		c, err := matrix.Cosine(e, v, v)
		require.NoError(t, err, name)
		require.Equal(t, 4.0, c, name)
		_, err = matrix.Angle(e, v, v)
		require.ErrorIs(t, err, matrix.ErrDomain, name)
	}

	w := matrix.NewVectorFrom([]float64{3, 4})
	_, err := matrix.Angle[float64](naive.Engine[float64]{}, w, w.Scale(3))
	require.NoError(t, err)
}

func TestGeometry_Errors(t *testing.T) {
	t.Parallel()
	e := naive.Engine[float64]{}
	zero := matrix.NewVectorFrom([]float64{0, 0})
	v := matrix.NewVectorFrom([]float64{1, 2})

	_, err := matrix.Cosine[float64](e, zero, v)
	require.True(t, errors.Is(err, matrix.ErrDivideByZero))
	_, err = matrix.Angle[float64](e, v, zero)
	require.True(t, errors.Is(err, matrix.ErrDivideByZero))
	_, err = matrix.Angle[float64](e, v, matrix.NewVectorFrom([]float64{1}))
	require.True(t, errors.Is(err, matrix.ErrDimensionMismatch))

	nan := matrix.NewVectorFrom([]float64{math.NaN(), 1})
	_, err = matrix.Angle[float64](e, nan, v)
	require.True(t, errors.Is(err, matrix.ErrDomain))
}

func TestAngle_Float32(t *testing.T) {
	t.Parallel()
	e := backend.Engine[float32]{}
	v := matrix.NewVectorFrom([]float32{0.6, 0.8})

	a, err := matrix.Angle[float32](e, v, v)
	require.NoError(t, err)
	require.InDelta(t, 0, float64(a), 1e-3)
}
