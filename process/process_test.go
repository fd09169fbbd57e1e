// SPDX-License-Identifier: MIT
package process_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/minila/matrix"
	"github.com/katalvlaran/minila/matrix/naive"
	"github.com/katalvlaran/minila/process"
)

func TestConstant(t *testing.T) {
	t.Parallel()
	c := process.NewConstant(2.5)

	p, err := c.Path(4, 99)
	require.NoError(t, err)
	require.Equal(t, []float64{2.5, 2.5, 2.5, 2.5}, p.Data())
	require.Equal(t, 2.5, c.Initial())
}

func TestBrownian_ZeroVolatilityIsLinearDrift(t *testing.T) {
	t.Parallel()
	b := process.NewBrownian[float64](1, process.NewConstant(0.5), process.NewConstant(0.0))

	p, err := b.Path(5, 7)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 1.5, 2, 2.5, 3}, p.Data())
}

func TestBrownian_Deterministic(t *testing.T) {
	t.Parallel()
	b := process.NewBrownian[float64](0, process.NewConstant(0.0), process.NewConstant(1.0))

	p1, err := b.Path(64, 42)
	require.NoError(t, err)
	p2, err := b.Path(64, 42)
	require.NoError(t, err)
	p3, err := b.Path(64, 43)
	require.NoError(t, err)

	require.True(t, p1.Equal(p2), "same seed must give same path")
	require.False(t, p1.Equal(p3), "different seeds should differ")
	v, err := p1.At(1)
	require.NoError(t, err)
	require.Zero(t, v)
}

// Stacked Brownian drift: the mean process is itself random.
func TestBrownian_NestedDrivers(t *testing.T) {
	t.Parallel()
	inner := process.NewBrownian[float64](0, process.NewConstant(0.0), process.NewConstant(0.01))
	outer := process.NewBrownian[float64](10, inner, process.NewConstant(0.0))

	p, err := outer.Path(16, 3)
	require.NoError(t, err)
	require.Equal(t, 16, p.Dim())
	for _, x := range p.Data() {
		require.False(t, math.IsNaN(x))
	}
}

func TestGeometric_ZeroVolatilityCompounds(t *testing.T) {
	t.Parallel()
	g := process.NewGeometric[float64](100, process.NewConstant(0.1), process.NewConstant(0.0))

	p, err := g.Path(4, 1)
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{100, 110, 121, 133.1}, p.Data(), 1e-9)
}

func TestGeometric_StaysPositiveForSmallSigma(t *testing.T) {
	t.Parallel()
	g := process.NewGeometric[float32](1, process.NewConstant[float32](0), process.NewConstant[float32](0.01))

	p, err := g.Path(256, 11)
	require.NoError(t, err)
	for _, x := range p.Data() {
		require.Greater(t, x, float32(0))
	}
}

func TestPath_Errors(t *testing.T) {
	t.Parallel()

	_, err := process.NewConstant(1.0).Path(0, 1)
	require.True(t, errors.Is(err, process.ErrInvalidSteps))

	_, err = process.NewBrownian[float64](0, nil, process.NewConstant(1.0)).Path(3, 1)
	require.True(t, errors.Is(err, process.ErrNilProcess))

	_, err = process.NewGeometric[float64](0, process.NewConstant(0.0), process.NewConstant(1.0)).Path(-1, 1)
	require.True(t, errors.Is(err, process.ErrInvalidSteps))
}

func TestEnsemble(t *testing.T) {
	t.Parallel()
	b := process.NewBrownian[float64](0, process.NewConstant(0.0), process.NewConstant(1.0))

	ens, err := process.Ensemble[float64](b, 3, 8, 5)
	require.NoError(t, err)
	r, c := ens.Dims()
	require.Equal(t, 3, r)
	require.Equal(t, 8, c)

	row1, err := ens.Row(1)
	require.NoError(t, err)
	row2, err := ens.Row(2)
	require.NoError(t, err)
	require.False(t, row1.Equal(row2))

	again, err := process.Ensemble[float64](b, 3, 8, 5)
	require.NoError(t, err)
	require.True(t, ens.Equal(again))

	m, err := process.Mean(ens)
	require.NoError(t, err)
	require.Equal(t, 8, m.Dim())

	_, err = process.Ensemble[float64](b, 0, 8, 5)
	require.True(t, errors.Is(err, process.ErrInvalidPaths))
	_, err = process.Ensemble[float64](nil, 1, 8, 5)
	require.True(t, errors.Is(err, process.ErrNilProcess))
}

func TestMean_Constant(t *testing.T) {
	t.Parallel()
	ens, err := process.Ensemble[float64](process.NewConstant(3.0), 4, 2, 0)
	require.NoError(t, err)

	m, err := process.Mean(ens)
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{3, 3}, m.Data(), 1e-15)
}

// Unit-volatility Brownian motion has Var(path(k)) = k-1 across an ensemble.
func TestEnsemble_BrownianVariance(t *testing.T) {
	t.Parallel()
	b := process.NewBrownian[float64](0, process.NewConstant(0.0), process.NewConstant(1.0))

	ens, err := process.Ensemble[float64](b, 4000, 5, 2024)
	require.NoError(t, err)
	cov, means, err := matrix.Covariance[float64](naive.Engine[float64]{}, ens)
	require.NoError(t, err)

	for k := 1; k <= 5; k++ {
		v, err := cov.At(k, k)
		require.NoError(t, err)
		require.InDelta(t, float64(k-1), v, 0.5, "step %d", k)
		mu, err := means.At(k)
		require.NoError(t, err)
		require.InDelta(t, 0, mu, 0.15, "step %d", k)
	}
}
