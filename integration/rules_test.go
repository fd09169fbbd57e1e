// SPDX-License-Identifier: MIT
package integration_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/minila/integration"
)

type rule func(func(float64) float64, float64, float64, ...integration.Option) (float64, error)

func TestRules(t *testing.T) {
	t.Parallel()

	cube := func(x float64) float64 { return x * x * x }
	rules := map[string]rule{
		"trapezium": integration.Trapezium[float64],
		"simpson":   integration.Simpson[float64],
		"simpson38": integration.Simpson38[float64],
	}
	cases := []struct {
		name       string
		f          func(float64) float64
		start, end float64
		want       float64
	}{
		{"sin 0..pi", math.Sin, 0, math.Pi, 2},
		{"cube 0..2", cube, 0, 2, 4},
		{"exp reversed", math.Exp, 1, 0, -(math.E - 1)},
		{"empty", math.Cos, 1, 1, 0},
	}
	for rname, r := range rules {
		r := r
		for _, tc := range cases {
			tc := tc
			t.Run(rname+"/"+tc.name, func(t *testing.T) {
				t.Parallel()
				got, err := r(tc.f, tc.start, tc.end, integration.WithSubdivisions(1000))
				require.NoError(t, err)
				require.InDelta(t, tc.want, got, 1e-5)
			})
		}
	}
}

// Simpson rules are exact on cubics even with a single panel.
func TestSimpson_ExactOnCubic(t *testing.T) {
	t.Parallel()
	p := func(x float64) float64 { return 2*x*x*x - x + 1 }
	want := 2.0/4*16 - 2.0 + 2.0 // ∫0^2

	got, err := integration.Simpson(p, 0, 2, integration.WithSubdivisions(1))
	require.NoError(t, err)
	require.InDelta(t, want, got, 1e-12)

	got, err = integration.Simpson38(p, 0, 2, integration.WithSubdivisions(1))
	require.NoError(t, err)
	require.InDelta(t, want, got, 1e-12)
}

func TestTrapezium_DefaultSubdivisions(t *testing.T) {
	t.Parallel()
	got, err := integration.Trapezium(func(x float64) float64 { return x * x }, 0, 1)
	require.NoError(t, err)
	require.InDelta(t, 1.0/3, got, 1e-9)
}

func TestRules_Float32(t *testing.T) {
	t.Parallel()
	got, err := integration.Simpson(func(x float32) float32 { return 2 * x }, 0, 3, integration.WithSubdivisions(10))
	require.NoError(t, err)
	require.InDelta(t, 9, float64(got), 1e-4)
}

func TestRules_Errors(t *testing.T) {
	t.Parallel()

	_, err := integration.Trapezium[float64](nil, 0, 1)
	require.True(t, errors.Is(err, integration.ErrNilFunction))

	_, err = integration.Simpson(math.Sin, 0, math.Inf(1))
	require.True(t, errors.Is(err, integration.ErrInvalidInterval))

	_, err = integration.Simpson38(math.Sin, math.NaN(), 1)
	require.True(t, errors.Is(err, integration.ErrInvalidInterval))

	require.Panics(t, func() { integration.WithSubdivisions(0) })
}

func TestGrid(t *testing.T) {
	t.Parallel()

	g, err := integration.Grid(0.0, 1.0, 4)
	require.NoError(t, err)
	require.Equal(t, 5, g.Dim())
	require.InDeltaSlice(t, []float64{0, 0.25, 0.5, 0.75, 1}, g.Data(), 1e-15)

	_, err = integration.Grid(0.0, 1.0, 0)
	require.True(t, errors.Is(err, integration.ErrInvalidSubdivisions))

	_, err = integration.Grid(math.NaN(), 1.0, 3)
	require.True(t, errors.Is(err, integration.ErrInvalidInterval))
}
