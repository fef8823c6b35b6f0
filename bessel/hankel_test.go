package bessel

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nearC(t *testing.T, expected, actual complex128, relTol float64) {
	t.Helper()
	assert.LessOrEqualf(t, cmplx.Abs(expected-actual), relTol*cmplx.Abs(expected),
		"expected %v, have %v", expected, actual)
}

// hankel returns H^(1)_nu(z) for nu = 0, 1, 2 and Im(z) > 0
func hankel(z complex128) (H [3]complex128, err error) {
	if H, err = HankelScaled(z); err != nil {
		return
	}
	scale := cmplx.Exp(complex(0, 1) * z)
	for n := range H {
		H[n] *= scale
	}
	return
}

// series for J_0 + i Y_0, adequate for moderate |z|
func h0Series(z complex128) complex128 {
	var (
		gamma = 0.5772156649015329
		j0    complex128
		acc   complex128
		h     float64
		term  = complex(1, 0)
		q     = -z * z / 4
	)
	j0 = term
	for k := 1; k < 80; k++ {
		term *= q / complex(float64(k*k), 0)
		j0 += term
		h += 1. / float64(k)
		acc -= complex(h, 0) * term
	}
	y0 := complex(2/math.Pi, 0) * ((cmplx.Log(z/2)+complex(gamma, 0))*j0 + acc)
	return j0 + complex(0, 1)*y0
}

func TestKScaled(t *testing.T) {
	{ // Real argument, tabulated values
		k0, k1, err := KScaled(1)
		require.NoError(t, err)
		assert.InDelta(t, 0.42102443824070834*math.E, real(k0), 1.e-13)
		assert.InDelta(t, 0.6019072301972346*math.E, real(k1), 1.e-13)
		assert.InDelta(t, 0., imag(k0), 1.e-15)
		k0, _, err = KScaled(5)
		require.NoError(t, err)
		assert.InDelta(t, 0.0036910983340425942*math.Exp(5), real(k0), 1.e-12)
	}
	{
		_, _, err := KScaled(0)
		assert.ErrorIs(t, err, ErrSingular)
		_, _, err = KScaled(complex(-1, 1))
		assert.ErrorIs(t, err, ErrDomain)
	}
}

func TestHankel(t *testing.T) {
	sqrtI := cmplx.Sqrt(complex(0, 1))
	{ // Against the power series
		for _, W := range []float64{0.1, 0.5, 2, 3, 8} {
			z := complex(W, 0) * sqrtI
			H, err := hankel(z)
			require.NoError(t, err)
			nearC(t, h0Series(z), H[0], 1.e-9)
		}
		H, err := hankel(2 * sqrtI)
		require.NoError(t, err)
		nearC(t, complex(0.128851885067549, 0.02652445341308074), H[0], 1.e-12)
	}
	{ // Reference values at the womersley = 8 scenario
		H, err := hankel(8 * sqrtI)
		require.NoError(t, err)
		nearC(t, complex(-0.00023528445401961774, -0.0009459113464765389), H[0], 1.e-9)
		nearC(t, complex(-0.0009975671404562996, 0.0002055371802826197), H[1], 1.e-9)
	}
	{ // Recurrence H2 = 2 H1/z - H0 and scaling
		z := complex(3, 4)
		H, err := hankel(z)
		require.NoError(t, err)
		nearC(t, 2*H[1]/z-H[0], H[2], 1.e-12)
		Hs, err := HankelScaled(z)
		require.NoError(t, err)
		for n := 0; n < 3; n++ {
			nearC(t, H[n], Hs[n]*cmplx.Exp(complex(0, 1)*z), 1.e-12)
		}
	}
	{ // Large arguments stay finite when scaled
		Hs, err := HankelScaled(complex(400, 400))
		require.NoError(t, err)
		for n := 0; n < 3; n++ {
			assert.False(t, cmplx.IsNaN(Hs[n]) || cmplx.IsInf(Hs[n]))
		}
		// Leading asymptotic term sqrt(2/(pi z)) exp(-i pi/4)
		z := complex(400, 400)
		lead := cmplx.Sqrt(2/(math.Pi*z)) * cmplx.Exp(complex(0, -math.Pi/4))
		nearC(t, lead, Hs[0], 1.e-3)
	}
	{
		_, err := hankel(0)
		assert.ErrorIs(t, err, ErrSingular)
		_, err = hankel(complex(1, -1))
		assert.ErrorIs(t, err, ErrDomain)
	}
}
