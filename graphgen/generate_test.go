// SPDX-License-Identifier: MIT
package graphgen_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fwbench/graphgen"
	"github.com/katalvlaran/fwbench/matrix"
)

func TestGenerate_Errors(t *testing.T) {
	t.Parallel()

	_, err := graphgen.Generate(0, 0.5)
	assert.ErrorIs(t, err, matrix.ErrInvalidSize)

	for _, p := range []float64{-0.1, 1.0001, math.NaN(), math.Inf(1)} {
		_, err = graphgen.Generate(4, p)
		assert.ErrorIs(t, err, graphgen.ErrInvalidProbability, "p=%v", p)
	}
}

func TestGenerate_ProbabilityBounds(t *testing.T) {
	t.Parallel()

	const n = 12
	empty, err := graphgen.Generate(n, 0, graphgen.WithSeed(3))
	require.NoError(t, err)
	assert.Zero(t, matrix.EdgeCount(empty))

	full, err := graphgen.Generate(n, 1, graphgen.WithSeed(3))
	require.NoError(t, err)
	assert.Equal(t, n*(n-1), matrix.EdgeCount(full))
}

func TestGenerate_WeightsAndDiagonal(t *testing.T) {
	t.Parallel()

	const n = 30
	d, err := graphgen.Generate(n, 0.6, graphgen.WithSeed(42), graphgen.WithWeightRange(5, 9))
	require.NoError(t, err)
	require.NoError(t, matrix.ValidateDistance(d))

	for i := 0; i < n; i++ {
		row, err := d.Row(i)
		require.NoError(t, err)
		for j, v := range row {
			switch {
			case i == j:
				assert.Zero(t, v)
			case math.IsInf(v, 1):
			default:
				assert.GreaterOrEqual(t, v, 5.0)
				assert.LessOrEqual(t, v, 9.0)
				assert.Equal(t, math.Trunc(v), v, "weight must be integral")
			}
		}
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	t.Parallel()

	a, err := graphgen.Generate(25, 0.3, graphgen.WithSeed(7))
	require.NoError(t, err)
	b, err := graphgen.Generate(25, 0.3, graphgen.WithSeed(7))
	require.NoError(t, err)
	c, err := graphgen.Generate(25, 0.3, graphgen.WithSeed(8))
	require.NoError(t, err)

	assert.True(t, a.Equal(b), "same seed must give the same graph")
	assert.False(t, a.Equal(c), "different seeds should differ")

	// seed 0 maps to the default seed, same as no option at all
	d0, _ := graphgen.Generate(25, 0.3, graphgen.WithSeed(0))
	dn, _ := graphgen.Generate(25, 0.3)
	assert.True(t, d0.Equal(dn))

	dr, _ := graphgen.Generate(25, 0.3, graphgen.WithRand(rand.New(rand.NewSource(7))))
	assert.True(t, a.Equal(dr))
}

func TestGenerate_DensityRoughlyP(t *testing.T) {
	t.Parallel()

	const n, p = 100, 0.5
	d, err := graphgen.Generate(n, p, graphgen.WithSeed(11))
	require.NoError(t, err)

	got := float64(matrix.EdgeCount(d)) / float64(n*(n-1))
	assert.InDelta(t, p, got, 0.05)
}

func TestOptions_Panics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { graphgen.WithRand(nil) })
	assert.Panics(t, func() { graphgen.WithWeightRange(0, 10) })
	assert.Panics(t, func() { graphgen.WithWeightRange(10, 2) })
	assert.NotPanics(t, func() { graphgen.WithWeightRange(3, 3) })
}
