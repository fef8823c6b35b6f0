package ElasticStreaming

import (
	"strconv"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/atomic"
	"golang.org/x/sync/singleflight"
)

const IntegralCacheSize = 50

// Moments holds the four running integrals int_1^x S r^p dr for p = -1, 1, 3, 5
type Moments [4]float64

// IntegralCache memoizes the stress moments of recently used upper limits. Values depend on
// the limit alone, never on which limits were requested before.
type IntegralCache struct {
	entries      *lru.Cache[float64, Moments]
	group        singleflight.Group
	hits, misses *atomic.Int64
}

func NewIntegralCache(size int) (ic *IntegralCache, err error) {
	ic = &IntegralCache{
		hits:   atomic.NewInt64(0),
		misses: atomic.NewInt64(0),
	}
	ic.entries, err = lru.New[float64, Moments](size)
	return
}

// Get returns the moments at x, calling compute at most once per concurrent burst when not cached
func (ic *IntegralCache) Get(x float64, compute func(x float64) (Moments, error)) (m Moments, err error) {
	if cached, ok := ic.entries.Get(x); ok {
		ic.hits.Inc()
		return cached, nil
	}
	var (
		v any
	)
	v, err, _ = ic.group.Do(strconv.FormatFloat(x, 'g', -1, 64), func() (any, error) {
		if cached, ok := ic.entries.Get(x); ok {
			ic.hits.Inc()
			return cached, nil
		}
		ic.misses.Inc()
		m, err := compute(x)
		if err != nil {
			return nil, err
		}
		ic.entries.Add(x, m)
		return m, nil
	})
	if err != nil {
		return
	}
	m = v.(Moments)
	return
}

func (ic *IntegralCache) Stats() (hits, misses int64) {
	return ic.hits.Load(), ic.misses.Load()
}

func (ic *IntegralCache) Len() int {
	return ic.entries.Len()
}
