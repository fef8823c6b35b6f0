package ElasticStreaming

import (
	"math"
	"runtime"

	log "github.com/sirupsen/logrus"
)

/*
Solution is the asymptotic steady streaming about a unit cylinder oscillating in a viscoelastic
fluid. The stream function is

	psi(r, theta) = epsilon (g(r) + kappa h(r)) sin(2 theta)

with g the rigid body decay and h the elastic correction. A Solution is read only after
construction and safe for concurrent use.
*/
type Solution struct {
	Parameters
	Rigid          *RigidBodyDecay
	Elastic        *ElasticDecay
	ParallelDegree int
}

func NewSolution(womersley, cauchy, zeta float64, epsilonO ...float64) (s *Solution, err error) {
	return NewSolutionFromParameters(NewParameters(womersley, cauchy, zeta, epsilonO...))
}

func NewSolutionFromParameters(p Parameters) (s *Solution, err error) {
	var (
		sk *StressKernel
		rb *RigidBodyDecay
	)
	if err = p.Validate(); err != nil {
		return
	}
	if sk, err = NewStressKernel(p.Womersley); err != nil {
		return
	}
	if rb, err = NewRigidBodyDecay(sk); err != nil {
		return
	}
	return newSolution(p, rb)
}

// newSolution shares an existing rigid body decay, which depends on the womersley number alone
func newSolution(p Parameters, rb *RigidBodyDecay) (s *Solution, err error) {
	s = &Solution{
		Parameters:     p,
		Rigid:          rb,
		ParallelDegree: runtime.NumCPU(),
	}
	if s.Elastic, err = NewElasticDecay(rb.Kernel, p.Zeta); err != nil {
		return nil, err
	}
	log.WithFields(log.Fields{
		"womersley": p.Womersley,
		"kappa":     p.Kappa(),
		"zeta":      p.Zeta,
		"r_inf":     rb.Kernel.RInf,
	}).Debug("streaming solution constructed")
	return
}

func (s *Solution) Params() Parameters {
	return s.Parameters
}

// RigidBodyPsiRadialDecay returns g(y) for y >= 1
func (s *Solution) RigidBodyPsiRadialDecay(y []float64) ([]float64, error) {
	return s.Rigid.Eval(y)
}

// ElasticityEffectPsiRadialDecay returns h(y) for y >= 1
func (s *Solution) ElasticityEffectPsiRadialDecay(y []float64) ([]float64, error) {
	return s.Elastic.Eval(y)
}

// RadialProfile returns g(y) + kappa h(y)
func (s *Solution) RadialProfile(y []float64) (f []float64, err error) {
	var (
		kappa = s.Kappa()
	)
	if f, err = s.Rigid.Eval(y); err != nil {
		return
	}
	for i, yi := range y {
		f[i] += kappa * s.Elastic.At(yi)
	}
	return
}

func (s *Solution) profileAt(r float64) (v float64, err error) {
	var (
		f []float64
	)
	if f, err = s.RadialProfile([]float64{r}); err != nil {
		return math.NaN(), err
	}
	return f[0], nil
}
