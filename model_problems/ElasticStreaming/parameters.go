package ElasticStreaming

import (
	"fmt"
	"math"

	"go.uber.org/multierr"
)

const DefaultEpsilon = 0.05

// Parameters of the asymptotic streaming solution
type Parameters struct {
	Womersley float64 // Oscillation Womersley number W
	Cauchy    float64 // Elasticity (Cauchy) number
	Zeta      float64 // Pinned zone radius ratio
	Epsilon   float64 // Oscillation amplitude
}

func NewParameters(womersley, cauchy, zeta float64, epsilonO ...float64) (p Parameters) {
	p = Parameters{
		Womersley: womersley,
		Cauchy:    cauchy,
		Zeta:      zeta,
		Epsilon:   DefaultEpsilon,
	}
	if len(epsilonO) != 0 {
		p.Epsilon = epsilonO[0]
	}
	return
}

// Kappa = Cauchy/Epsilon, expected to be of order one
func (p Parameters) Kappa() float64 {
	return p.Cauchy / p.Epsilon
}

func notFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}

// Validate reports every violated constraint
func (p Parameters) Validate() (err error) {
	if notFinite(p.Womersley) || p.Womersley <= 0 {
		err = multierr.Append(err, fmt.Errorf("%w: womersley must be positive, have %v", ErrInvalidParameter, p.Womersley))
	}
	if notFinite(p.Cauchy) {
		err = multierr.Append(err, fmt.Errorf("%w: cauchy must be finite, have %v", ErrInvalidParameter, p.Cauchy))
	}
	switch {
	case notFinite(p.Zeta) || p.Zeta <= 0:
		err = multierr.Append(err, fmt.Errorf("%w: zeta must be positive, have %v", ErrInvalidParameter, p.Zeta))
	case p.Zeta == 1:
		err = multierr.Append(err, fmt.Errorf("%w: zeta = 1 is a removable singularity of the pinned zone effect", ErrDomain))
	}
	if notFinite(p.Epsilon) || p.Epsilon <= 0 {
		err = multierr.Append(err, fmt.Errorf("%w: epsilon must be positive, have %v", ErrInvalidParameter, p.Epsilon))
	}
	return
}

func (p Parameters) String() string {
	return fmt.Sprintf("W=%g cauchy=%g zeta=%g epsilon=%g", p.Womersley, p.Cauchy, p.Zeta, p.Epsilon)
}
