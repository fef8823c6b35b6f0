package utils

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/integrate/quad"
)

// GaussLegendre holds an N point Gauss-Legendre rule on [-1,1]
type GaussLegendre struct {
	N    int
	X, W []float64
}

func NewGaussLegendre(N int) (gl *GaussLegendre) {
	gl = &GaussLegendre{
		N: N,
		X: make([]float64, N),
		W: make([]float64, N),
	}
	quad.Legendre{}.FixedLocations(gl.X, gl.W, -1, 1)
	return
}

func (gl *GaussLegendre) Integrate(f func(x float64) float64, a, b float64) (sum float64) {
	var (
		half, mid = 0.5 * (b - a), 0.5 * (b + a)
	)
	for i, x := range gl.X {
		sum += gl.W[i] * f(mid+half*x)
	}
	sum *= half
	return
}

// IntegrateVec integrates every component of f over [a,b] into dst, fx is scratch of len(dst)
func (gl *GaussLegendre) IntegrateVec(f func(x float64, fx []float64), a, b float64, dst, fx []float64) {
	var (
		half, mid = 0.5 * (b - a), 0.5 * (b + a)
	)
	for k := range dst {
		dst[k] = 0
	}
	for i, x := range gl.X {
		f(mid+half*x, fx)
		for k := range dst {
			dst[k] += gl.W[i] * fx[k]
		}
	}
	for k := range dst {
		dst[k] *= half
	}
}

// AdaptiveQuadrature bisects intervals until a Gauss-Legendre estimate agrees
// with the sum over its two halves
type AdaptiveQuadrature struct {
	Rule           *GaussLegendre
	AbsTol, RelTol float64
	MaxDepth       int
}

func NewAdaptiveQuadrature(absTol, relTol float64, NO ...int) (aq *AdaptiveQuadrature) {
	var (
		N = 15
	)
	if len(NO) > 0 {
		N = NO[0]
	}
	aq = &AdaptiveQuadrature{
		Rule:     NewGaussLegendre(N),
		AbsTol:   absTol,
		RelTol:   relTol,
		MaxDepth: 50,
	}
	return
}

// IntegrateVec integrates the Nf component function f over [a,b]
func (aq *AdaptiveQuadrature) IntegrateVec(f func(x float64, fx []float64), Nf int, a, b float64) (I []float64, err error) {
	I = make([]float64, Nf)
	if a == b {
		return
	}
	if math.IsInf(a, 0) || math.IsInf(b, 0) || math.IsNaN(a) || math.IsNaN(b) {
		err = fmt.Errorf("integration bounds must be finite, have [%v,%v]", a, b)
		return
	}
	var (
		fx    = make([]float64, Nf)
		whole = make([]float64, Nf)
	)
	aq.Rule.IntegrateVec(f, a, b, whole, fx)
	err = aq.refine(f, a, b, whole, fx, I, 0, b-a)
	return
}

func (aq *AdaptiveQuadrature) refine(f func(float64, []float64), a, b float64,
	whole, fx, acc []float64, depth int, span float64) (err error) {
	var (
		Nf          = len(whole)
		mid         = 0.5 * (a + b)
		left, right = make([]float64, Nf), make([]float64, Nf)
		diff, mag   float64
	)
	aq.Rule.IntegrateVec(f, a, mid, left, fx)
	aq.Rule.IntegrateVec(f, mid, b, right, fx)
	for k := 0; k < Nf; k++ {
		sum := left[k] + right[k]
		diff = math.Max(diff, math.Abs(sum-whole[k]))
		mag = math.Max(mag, math.Abs(sum))
	}
	if math.IsNaN(diff) {
		return fmt.Errorf("%w: integrand is NaN on [%v,%v]", ErrNoConvergence, a, b)
	}
	tol := math.Max(aq.AbsTol*(b-a)/span, aq.RelTol*mag)
	if diff <= tol {
		for k := 0; k < Nf; k++ {
			acc[k] += left[k] + right[k]
		}
		return
	}
	if depth >= aq.MaxDepth {
		return fmt.Errorf("%w: quadrature depth %d exceeded on [%v,%v], error estimate %8.3g",
			ErrNoConvergence, aq.MaxDepth, a, b, diff)
	}
	if err = aq.refine(f, a, mid, left, fx, acc, depth+1, span); err != nil {
		return
	}
	return aq.refine(f, mid, b, right, fx, acc, depth+1, span)
}

func (aq *AdaptiveQuadrature) Integrate(f func(x float64) float64, a, b float64) (I float64, err error) {
	var (
		res []float64
	)
	res, err = aq.IntegrateVec(func(x float64, fx []float64) { fx[0] = f(x) }, 1, a, b)
	I = res[0]
	return
}
