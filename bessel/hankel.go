package bessel

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"github.com/notargets/gostreaming/utils"
)

var (
	ErrSingular = errors.New("bessel: singular at zero argument")
	ErrDomain   = errors.New("bessel: argument outside the integral representation domain")
)

const (
	// exp(-46) is below double precision relative to the integrand peak
	kCutoff = 46.
	kNodes  = 96
)

var rule = utils.NewGaussLegendre(kNodes)

// KScaled returns exp(w) K_0(w) and exp(w) K_1(w) for Re(w) > 0, from
//
//	K_nu(w) = int_0^inf exp(-w cosh t) cosh(nu t) dt
func KScaled(w complex128) (k0, k1 complex128, err error) {
	switch {
	case w == 0:
		err = ErrSingular
		return
	case cmplx.IsNaN(w) || cmplx.IsInf(w):
		err = fmt.Errorf("%w: w = %v", ErrDomain, w)
		return
	case real(w) <= 0:
		err = fmt.Errorf("%w: w = %v", ErrDomain, w)
		return
	}
	var (
		tMax       = math.Acosh(1 + kCutoff/real(w))
		half       = 0.5 * tMax
		ct, weight float64
		e          complex128
	)
	for i, x := range rule.X {
		ct = math.Cosh(half * (x + 1))
		weight = rule.W[i] * half
		e = cmplx.Exp(-w * complex(ct-1, 0))
		k0 += complex(weight, 0) * e
		k1 += complex(weight*ct, 0) * e
	}
	return
}

// HankelScaled returns exp(-i z) H^(1)_nu(z) for nu = 0, 1, 2 and Im(z) > 0
func HankelScaled(z complex128) (H [3]complex128, err error) {
	if z == 0 {
		err = ErrSingular
		return
	}
	if imag(z) <= 0 {
		err = fmt.Errorf("%w: z = %v", ErrDomain, z)
		return
	}
	var (
		w      = complex(imag(z), -real(z)) // -i z
		k0, k1 complex128
	)
	if k0, k1, err = KScaled(w); err != nil {
		return
	}
	k2 := k0 + 2/w*k1
	// H_nu(z) = 2/(pi i^(nu+1)) K_nu(-i z), exp(-w) = exp(i z) is the removed scale
	H[0] = k0 * complex(0, -2/math.Pi)
	H[1] = k1 * complex(-2/math.Pi, 0)
	H[2] = k2 * complex(0, 2/math.Pi)
	return
}
