package calculator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixedPointConverges(t *testing.T) {
	x, n, err := fixedPoint(math.Cos, 1, 1e-9, 200)
	require.NoError(t, err)
	assert.InDelta(t, 0.739085, x, 1e-6)
	assert.Greater(t, n, 1)
}

func TestFixedPointOscillationFails(t *testing.T) {
	_, n, err := fixedPoint(func(x float64) float64 { return 1 - x }, 0, 1e-6, 100)
	var convErr *ConvergenceError
	require.ErrorAs(t, err, &convErr)
	assert.Equal(t, 100, n)
	assert.Equal(t, 100, convErr.Iterations)
	assert.Contains(t, err.Error(), "did not converge")
}

func TestFixedPointNotFinite(t *testing.T) {
	_, _, err := fixedPoint(func(float64) float64 { return math.NaN() }, 1, 1e-6, 10)
	var convErr *ConvergenceError
	assert.ErrorAs(t, err, &convErr)
}

func TestOverallCoefficientIndependentOfLength(t *testing.T) {
	g := airWater().Geometry
	a := OverallCoefficient(g, 1762.3, 924.3, 1)
	b := OverallCoefficient(g, 1762.3, 924.3, 25)
	assert.InEpsilon(t, a, b, 1e-12)
	assert.InDelta(t, 534.5, a, 0.5)
}

func TestSolveLengthIterationLimit(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxIterations = 1
	_, _, _, err := solveLength(50000, 94.4, 1762.3, 924.3, airWater().Geometry, cfg)
	var convErr *ConvergenceError
	assert.ErrorAs(t, err, &convErr)
}
