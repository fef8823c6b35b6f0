package utils

import (
	"fmt"
	"math"
)

func sameSign(a, b float64) bool {
	return (a > 0 && b > 0) || (a < 0 && b < 0)
}

// Brent finds a root of f inside [a,b], f(a) and f(b) must differ in sign
func Brent(f func(x float64) float64, a, b, tol float64, maxIter int) (root float64, err error) {
	var (
		fa, fb = f(a), f(b)
		c, fc  float64
		d, e   float64
		eps    = math.Nextafter(1, 2) - 1
	)
	switch {
	case math.IsNaN(fa) || math.IsNaN(fb):
		err = fmt.Errorf("%w: NaN at bracket end, f(%v) = %v, f(%v) = %v", ErrNoConvergence, a, fa, b, fb)
		return
	case fa == 0:
		return a, nil
	case fb == 0:
		return b, nil
	case sameSign(fa, fb):
		err = fmt.Errorf("%w: f(%v) = %v, f(%v) = %v", ErrNoBracket, a, fa, b, fb)
		return
	}
	c, fc = b, fb
	for iter := 0; iter < maxIter; iter++ {
		if sameSign(fb, fc) {
			c, fc = a, fa
			d = b - a
			e = d
		}
		if math.Abs(fc) < math.Abs(fb) {
			a, b, c = b, c, b
			fa, fb, fc = fb, fc, fb
		}
		tol1 := 2*eps*math.Abs(b) + 0.5*tol
		xm := 0.5 * (c - b)
		if math.Abs(xm) <= tol1 || fb == 0 {
			return b, nil
		}
		if math.Abs(e) >= tol1 && math.Abs(fa) > math.Abs(fb) {
			// Inverse quadratic interpolation, secant when only two points are distinct
			var (
				s    = fb / fa
				p, q float64
			)
			if a == c {
				p = 2 * xm * s
				q = 1 - s
			} else {
				q = fa / fc
				r := fb / fc
				p = s * (2*xm*q*(q-r) - (b-a)*(r-1))
				q = (q - 1) * (r - 1) * (s - 1)
			}
			if p > 0 {
				q = -q
			}
			p = math.Abs(p)
			if 2*p < math.Min(3*xm*q-math.Abs(tol1*q), math.Abs(e*q)) {
				e = d
				d = p / q
			} else {
				d = xm
				e = d
			}
		} else {
			d = xm
			e = d
		}
		a, fa = b, fb
		if math.Abs(d) > tol1 {
			b += d
		} else {
			b += math.Copysign(tol1, xm)
		}
		if fb = f(b); math.IsNaN(fb) {
			err = fmt.Errorf("%w: NaN at x = %v", ErrNoConvergence, b)
			return
		}
	}
	err = fmt.Errorf("%w: Brent exceeded %d iterations, last estimate %v", ErrNoConvergence, maxIter, b)
	return
}

// BracketedRoot probes the guess first and hands the half bracket holding the
// sign change to Brent
func BracketedRoot(f func(x float64) float64, a, b, guess, tol float64) (root float64, err error) {
	var (
		fa, fb = f(a), f(b)
	)
	if fa == 0 {
		return a, nil
	}
	if fb == 0 {
		return b, nil
	}
	if !(fa < 0 && fb > 0) && !(fa > 0 && fb < 0) {
		err = fmt.Errorf("%w: f(%v) = %v, f(%v) = %v", ErrNoBracket, a, fa, b, fb)
		return
	}
	if guess > a && guess < b {
		fg := f(guess)
		switch {
		case fg == 0:
			return guess, nil
		case sameSign(fg, fa):
			a = guess
		default:
			b = guess
		}
	}
	return Brent(f, a, b, tol, 200)
}
