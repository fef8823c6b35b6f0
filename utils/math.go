package utils

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Linspace returns N evenly spaced values from min to max inclusive
func Linspace(min, max float64, N int) (v []float64) {
	switch {
	case N <= 0:
		return
	case N == 1:
		return []float64{min}
	}
	v = floats.Span(make([]float64, N), min, max)
	v[N-1] = max
	return
}

func MaxAbs(v []float64) (m float64) {
	for _, val := range v {
		if a := math.Abs(val); a > m {
			m = a
		}
	}
	return
}

func POW(x float64, pp int) (y float64) {
	var (
		p       = pp
		flipped bool
	)
	if pp > 8 || pp < -8 {
		goto MATHPOW
	}

	if p < 0 {
		p = -pp
		flipped = true
	}
	switch p {
	case 0:
		y = 1
	case 1:
		y = x
	case 2:
		y = x * x
	case 3:
		y = x * x * x
	case 4:
		y = x * x
		y = y * y
	case 5:
		y = x * x
		y = y * y * x
	case 6:
		y = x * x
		y = y * y * y
	case 7:
		y = x * x
		y = y * y * y * x
	case 8:
		y = x * x
		y = y * y * y * y
	}
	if flipped {
		y = 1. / y
	}
	return

MATHPOW:
	y = math.Pow(x, float64(p))
	return
}
