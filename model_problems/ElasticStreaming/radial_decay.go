package ElasticStreaming

import (
	"fmt"
	"math"
	"math/cmplx"
	"sort"

	"github.com/notargets/gostreaming/utils"
)

// RigidBodyDecay is the radial decay g(y) of the streaming stream function about a rigid cylinder
type RigidBodyDecay struct {
	Kernel *StressKernel
	AInf   Moments    // Moments at infinity
	C      [4]float64 // Integration constants, they sum to zero so g(1) = 0
	Cache  *IntegralCache
	// Moments at fixed breakpoints one decay length apart, a limit x is integrated from the
	// breakpoint below it
	Breaks       []float64
	BreakMoments []Moments
	quad         *utils.AdaptiveQuadrature
}

func NewRigidBodyDecay(sk *StressKernel) (rb *RigidBodyDecay, err error) {
	var (
		W4 = math.Pow(sk.Womersley, 4)
	)
	rb = &RigidBodyDecay{
		Kernel: sk,
		quad:   utils.NewAdaptiveQuadrature(1.e-14*math.Max(1, W4), 1.e-11),
	}
	if rb.Cache, err = NewIntegralCache(IntegralCacheSize); err != nil {
		return
	}
	if err = rb.integrateBreaks(); err != nil {
		return
	}
	rb.AInf = rb.BreakMoments[len(rb.BreakMoments)-1]
	a1, a2 := rb.AInf[0], rb.AInf[1]
	rb.C = [4]float64{
		-a1 / 48,
		a2 / 16,
		a1/16 - a2/8,
		-a1/24 + a2/16,
	}
	return
}

// integrateBreaks accumulates the moments from the wall through every breakpoint up to RInf
func (rb *RigidBodyDecay) integrateBreaks() (err error) {
	var (
		step = math.Sqrt2 / rb.Kernel.Womersley
		RInf = rb.Kernel.RInf
		seg  Moments
	)
	rb.Breaks = []float64{1}
	for k := 1; 1+float64(k)*step < RInf; k++ {
		rb.Breaks = append(rb.Breaks, 1+float64(k)*step)
	}
	rb.Breaks = append(rb.Breaks, RInf)
	rb.BreakMoments = make([]Moments, len(rb.Breaks))
	for k := 1; k < len(rb.Breaks); k++ {
		if seg, err = rb.segment(rb.Breaks[k-1], rb.Breaks[k]); err != nil {
			return
		}
		for n := range seg {
			rb.BreakMoments[k][n] = rb.BreakMoments[k-1][n] + seg[n]
		}
	}
	return
}

// fromBreak integrates x from the largest breakpoint not above it
func (rb *RigidBodyDecay) fromBreak(x float64) (m Moments, err error) {
	var (
		k   = sort.SearchFloat64s(rb.Breaks, x)
		seg Moments
	)
	if k < len(rb.Breaks) && rb.Breaks[k] == x {
		return rb.BreakMoments[k], nil
	}
	if k > 0 {
		k--
	}
	if seg, err = rb.segment(rb.Breaks[k], x); err != nil {
		return
	}
	m = rb.BreakMoments[k]
	for n := range seg {
		m[n] += seg[n]
	}
	return
}

// segment integrates the four moment integrands over [a,b] from shared stress samples
func (rb *RigidBodyDecay) segment(a, b float64) (m Moments, err error) {
	var (
		sErr error
		I    []float64
	)
	I, err = rb.quad.IntegrateVec(func(r float64, fx []float64) {
		s, e := rb.Kernel.S(r)
		if e != nil {
			if sErr == nil {
				sErr = e
			}
			s = math.NaN()
		}
		r2 := r * r
		fx[0] = s / r
		fx[1] = s * r
		fx[2] = fx[1] * r2
		fx[3] = fx[2] * r2
	}, 4, a, b)
	switch {
	case sErr != nil:
		err = sErr
		return
	case err != nil:
		err = fmt.Errorf("%w: stress moments on [%v,%v]: %w", ErrNumericalFailure, a, b, err)
		return
	}
	copy(m[:], I)
	return
}

// Moments returns int_1^x S r^p dr, limits beyond the truncation radius give the moments at infinity
func (rb *RigidBodyDecay) Moments(x float64) (m Moments, err error) {
	if x >= rb.Kernel.RInf {
		return rb.AInf, nil
	}
	return rb.Cache.Get(x, rb.fromBreak)
}

func (rb *RigidBodyDecay) at(y float64, m Moments) float64 {
	c := rb.C
	return utils.POW(y, 4)*(m[0]/48+c[0]) + utils.POW(y, 2)*(-m[1]/16+c[1]) +
		(m[2]/16 + c[2]) + utils.POW(y, -2)*(-m[3]/48+c[3])
}

func checkRadii(y []float64) (err error) {
	for _, yi := range y {
		if math.IsNaN(yi) || math.IsInf(yi, 0) || yi < 1 {
			return fmt.Errorf("%w: radius %v is not a finite value outside the cylinder", ErrInvalidParameter, yi)
		}
	}
	return
}

// Eval returns g at each radius
func (rb *RigidBodyDecay) Eval(y []float64) (g []float64, err error) {
	if err = checkRadii(y); err != nil {
		return
	}
	var (
		m Moments
	)
	g = make([]float64, len(y))
	for i, yi := range y {
		if m, err = rb.Moments(yi); err != nil {
			return nil, err
		}
		g[i] = rb.at(yi, m)
	}
	return
}

// ZetaEffect is the pinned zone factor, symmetric under zeta -> 1/zeta
func ZetaEffect(zeta float64) (ze float64, err error) {
	switch {
	case math.IsNaN(zeta) || math.IsInf(zeta, 0) || zeta <= 0:
		err = fmt.Errorf("%w: zeta must be positive, have %v", ErrInvalidParameter, zeta)
		return
	case zeta == 1:
		err = fmt.Errorf("%w: zeta effect is singular at zeta = 1", ErrDomain)
		return
	}
	z2 := zeta * zeta
	ze = 0.5 * ((z2+1)*math.Log(zeta)/(z2-1) - 1)
	return
}

// ElasticDecay is the closed form radial decay h(y) contributed by elasticity
type ElasticDecay struct {
	Womersley, Zeta float64
	WomersleyEffect complex128
	ZetaEffect      float64
	Amplitude       float64 // Limit of h at infinity
}

func NewElasticDecay(sk *StressKernel, zeta float64) (ed *ElasticDecay, err error) {
	var (
		ze float64
		we = sk.WomersleyEffect()
		W  = sk.Womersley
	)
	if ze, err = ZetaEffect(zeta); err != nil {
		return
	}
	if cmplx.IsNaN(we) || cmplx.IsInf(we) {
		err = fmt.Errorf("%w: womersley effect is %v", ErrNumericalFailure, we)
		return
	}
	w2 := cmplx.Abs(we)
	ed = &ElasticDecay{
		Womersley:       W,
		Zeta:            zeta,
		WomersleyEffect: we,
		ZetaEffect:      ze,
		Amplitude:       0.5 * ze * w2 * w2 / (W * W),
	}
	return
}

func (ed *ElasticDecay) At(y float64) float64 {
	return ed.Amplitude * (1 - 1/(y*y))
}

func (ed *ElasticDecay) Eval(y []float64) (h []float64, err error) {
	if err = checkRadii(y); err != nil {
		return
	}
	h = make([]float64, len(y))
	for i, yi := range y {
		h[i] = ed.At(yi)
	}
	return
}

func (ed *ElasticDecay) Limit() float64 {
	return ed.Amplitude
}
