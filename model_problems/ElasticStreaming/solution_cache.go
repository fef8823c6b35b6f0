package ElasticStreaming

import (
	"strconv"

	lru "github.com/hashicorp/golang-lru/v2"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

// SolutionCache shares solutions between callers, and rigid body decays between solutions
// that differ only in cauchy, zeta or epsilon
type SolutionCache struct {
	solutions *lru.Cache[Parameters, *Solution]
	rigid     *lru.Cache[float64, *RigidBodyDecay]
	group     singleflight.Group
}

func NewSolutionCache(size int) (sc *SolutionCache, err error) {
	sc = &SolutionCache{}
	if sc.solutions, err = lru.New[Parameters, *Solution](size); err != nil {
		return
	}
	sc.rigid, err = lru.New[float64, *RigidBodyDecay](size)
	return
}

func (sc *SolutionCache) rigidDecay(womersley float64) (rb *RigidBodyDecay, err error) {
	if rb, ok := sc.rigid.Get(womersley); ok {
		return rb, nil
	}
	v, err, _ := sc.group.Do("rigid:"+strconv.FormatFloat(womersley, 'g', -1, 64), func() (any, error) {
		if rb, ok := sc.rigid.Get(womersley); ok {
			return rb, nil
		}
		sk, err := NewStressKernel(womersley)
		if err != nil {
			return nil, err
		}
		rb, err := NewRigidBodyDecay(sk)
		if err != nil {
			return nil, err
		}
		sc.rigid.Add(womersley, rb)
		return rb, nil
	})
	if err != nil {
		return
	}
	return v.(*RigidBodyDecay), nil
}

// Get returns the solution for p, constructing it at most once per concurrent burst of requests
func (sc *SolutionCache) Get(p Parameters) (s *Solution, err error) {
	if err = p.Validate(); err != nil {
		return
	}
	if s, ok := sc.solutions.Get(p); ok {
		log.WithFields(log.Fields{"params": p.String()}).Debug("solution cache hit")
		return s, nil
	}
	v, err, _ := sc.group.Do("solution:"+p.String(), func() (any, error) {
		if s, ok := sc.solutions.Get(p); ok {
			return s, nil
		}
		rb, err := sc.rigidDecay(p.Womersley)
		if err != nil {
			return nil, err
		}
		s, err := newSolution(p, rb)
		if err != nil {
			return nil, err
		}
		sc.solutions.Add(p, s)
		return s, nil
	})
	if err != nil {
		return
	}
	return v.(*Solution), nil
}

func (sc *SolutionCache) Len() int {
	return sc.solutions.Len()
}
