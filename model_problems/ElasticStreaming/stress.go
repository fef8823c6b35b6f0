package ElasticStreaming

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"github.com/notargets/gostreaming/bessel"
	"github.com/notargets/gostreaming/utils"
)

const (
	// Integrals of the stress to infinity stop where exp(-W(r-1)/sqrt 2) r^5 falls below this
	TruncationTol = 1.e-17
	// Residual imaginary part of S tolerated, relative to 1 + |Re S|
	ImagTol = 1.e-9
)

/*
StressKernel evaluates the steady Reynolds stress forcing S(r) of the first order oscillating
flow, built from the Hankel ratios

	X(r) = H1(e r)/H0(e), Z(r) = H2(e r)/H0(e), C = Z(1), e = W sqrt(i)
*/
type StressKernel struct {
	Womersley     float64
	E             complex128
	H0e, H1e, H2e complex128 // exp(-i e) H_n(e)
	C             complex128
	RInf          float64
}

func NewStressKernel(womersley float64) (sk *StressKernel, err error) {
	if math.IsNaN(womersley) || math.IsInf(womersley, 0) || womersley <= 0 {
		err = fmt.Errorf("%w: womersley must be positive, have %v", ErrInvalidParameter, womersley)
		return
	}
	var (
		H [3]complex128
	)
	sk = &StressKernel{
		Womersley: womersley,
		E:         complex(womersley, 0) * cmplx.Sqrt(complex(0, 1)),
	}
	if H, err = bessel.HankelScaled(sk.E); err != nil {
		err = wrapBessel(err)
		return
	}
	sk.H0e, sk.H1e, sk.H2e = H[0], H[1], H[2]
	sk.C = sk.H2e / sk.H0e
	sk.RInf = truncationRadius(womersley)
	return
}

func wrapBessel(err error) error {
	switch {
	case errors.Is(err, bessel.ErrSingular):
		return fmt.Errorf("%w: %w", ErrInvalidParameter, err)
	default:
		return fmt.Errorf("%w: %w", ErrNumericalFailure, err)
	}
}

func truncationRadius(womersley float64) (R float64) {
	var (
		decay = womersley / math.Sqrt2
		step  = 0.25 / decay
	)
	for R = 1; math.Exp(-decay*(R-1))*utils.POW(R, 5) >= TruncationTol; R += step {
	}
	return
}

// XZ returns the Hankel ratios X(r) and Z(r)
func (sk *StressKernel) XZ(r float64) (X, Z complex128, err error) {
	var (
		H [3]complex128
	)
	if H, err = bessel.HankelScaled(sk.E * complex(r, 0)); err != nil {
		err = wrapBessel(err)
		return
	}
	// The scale factors exp(-i e r) and exp(-i e) leave exp(i e (r-1)), which decays in r
	phase := cmplx.Exp(complex(0, 1) * sk.E * complex(r-1, 0))
	X = H[1] / sk.H0e * phase
	Z = H[2] / sk.H0e * phase
	return
}

// S returns the real stress forcing at radius r
func (sk *StressKernel) S(r float64) (s float64, err error) {
	var (
		X, Z complex128
		W    = sk.Womersley
	)
	if X, Z, err = sk.XZ(r); err != nil {
		return
	}
	var (
		Xc, Zc = cmplx.Conj(X), cmplx.Conj(Z)
		r2     = complex(r*r, 0)
		br     = (Z - Zc) + sk.C*Xc/r2 - cmplx.Conj(sk.C)*X/r2 + 2*X*Zc - 2*Xc*Z
		v      = complex(0, -W*W*W*W/4) * br
	)
	if math.Abs(imag(v)) > ImagTol*(1+math.Abs(real(v))) {
		err = fmt.Errorf("%w: stress at r = %v has imaginary part %v against real part %v",
			ErrNumericalFailure, r, imag(v), real(v))
		return
	}
	s = real(v)
	return
}

// WomersleyEffect = -e H1(e)/H0(e)
func (sk *StressKernel) WomersleyEffect() complex128 {
	return -sk.E * sk.H1e / sk.H0e
}
