package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGaussLegendre(t *testing.T) {
	{ // Exact for polynomials up to degree 2N-1
		gl := NewGaussLegendre(3)
		assert.InDelta(t, 64./6., gl.Integrate(func(x float64) float64 { return x * x * x * x * x }, 0, 2), 1.e-12)
		var sumW float64
		for _, w := range gl.W {
			sumW += w
		}
		assert.InDelta(t, 2., sumW, 1.e-14)
	}
	{ // Vector integrand
		gl := NewGaussLegendre(10)
		dst, fx := make([]float64, 2), make([]float64, 2)
		gl.IntegrateVec(func(x float64, f []float64) {
			f[0] = 1
			f[1] = x
		}, 1, 3, dst, fx)
		assert.InDeltaSlice(t, []float64{2, 4}, dst, 1.e-13)
	}
}

func TestAdaptiveQuadrature(t *testing.T) {
	{ // Decaying exponential
		aq := NewAdaptiveQuadrature(1.e-13, 1.e-12)
		I, err := aq.Integrate(math.Exp, -10, 0)
		require.NoError(t, err)
		assert.InDelta(t, 1-math.Exp(-10), I, 1.e-11)
	}
	{ // Several integrands in one pass
		aq := NewAdaptiveQuadrature(1.e-13, 1.e-12)
		I, err := aq.IntegrateVec(func(x float64, f []float64) {
			f[0] = 1 / x
			f[1] = x * x * x
			f[2] = math.Sin(10 * x)
		}, 3, 1, 4)
		require.NoError(t, err)
		assert.InDelta(t, math.Log(4), I[0], 1.e-11)
		assert.InDelta(t, (256.-1.)/4., I[1], 1.e-10)
		assert.InDelta(t, (math.Cos(10)-math.Cos(40))/10, I[2], 1.e-11)
	}
	{ // Empty interval
		aq := NewAdaptiveQuadrature(1.e-13, 1.e-12)
		I, err := aq.Integrate(math.Exp, 2, 2)
		require.NoError(t, err)
		assert.Equal(t, 0., I)
	}
	{ // Failures are reported
		aq := NewAdaptiveQuadrature(1.e-16, 1.e-16)
		aq.MaxDepth = 0
		_, err := aq.Integrate(math.Sqrt, 0, 1)
		assert.ErrorIs(t, err, ErrNoConvergence)
		aq = NewAdaptiveQuadrature(1.e-12, 1.e-12)
		_, err = aq.Integrate(func(x float64) float64 { return math.NaN() }, 0, 1)
		assert.ErrorIs(t, err, ErrNoConvergence)
		_, err = aq.Integrate(math.Exp, 0, math.Inf(1))
		assert.Error(t, err)
	}
}
