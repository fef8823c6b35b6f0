package utils

import (
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPartitionMap(t *testing.T) {
	{ // Bucket sizes
		getHisto := func(K, Np int) (histo map[int]int) {
			pm := NewPartitionMap(Np, K)
			histo = make(map[int]int)
			for np := 0; np < pm.ParallelDegree; np++ {
				maxK := pm.GetBucketDimension(np)
				histo[maxK]++
			}
			return
		}
		getTotal := func(histo map[int]int) (total int) {
			for key, count := range histo {
				total += key * count
			}
			return
		}
		assert.Equal(t, map[int]int{0: 30, 1: 2}, getHisto(2, 32))
		assert.Equal(t, map[int]int{1: 32}, getHisto(32, 32))
		assert.Equal(t, map[int]int{8: 1, 9: 31}, getHisto(287, 32))
		for n := 64; n < 2500; n++ {
			var (
				keys   [2]float64
				keyNum int
			)
			histo := getHisto(n, 7)
			for key := range histo {
				keys[keyNum] = float64(key)
				keyNum++
			}
			if keyNum == 2 {
				assert.Equal(t, 1., math.Abs(keys[0]-keys[1])) // Maximum imbalance of 1
			}
			assert.Equal(t, n, getTotal(histo))
		}
	}
	{ // Every index visited once
		var (
			N       = 1013
			visited = make([]int, N)
			pm      = NewPartitionMap(6, N)
		)
		err := pm.Run(func(bn, kMin, kMax int) error {
			for k := kMin; k < kMax; k++ {
				visited[k]++
			}
			return nil
		})
		assert.NoError(t, err)
		for k, c := range visited {
			assert.Equalf(t, 1, c, "index %d", k)
		}
	}
	{ // Errors surface
		var (
			mu    sync.Mutex
			calls int
			bad   = errors.New("bad partition")
		)
		err := NewPartitionMap(4, 10).Run(func(bn, kMin, kMax int) error {
			mu.Lock()
			calls++
			mu.Unlock()
			if bn == 2 {
				return bad
			}
			return nil
		})
		assert.ErrorIs(t, err, bad)
		assert.Equal(t, 4, calls)
	}
	{ // Degenerate parallel degree
		pm := NewPartitionMap(0, 5)
		assert.Equal(t, 1, pm.ParallelDegree)
		assert.Equal(t, 5, pm.GetBucketDimension(0))
	}
}

func TestLinspace(t *testing.T) {
	assert.Equal(t, []float64{1, 1.25, 1.5}, Linspace(1, 1.5, 3))
	assert.Equal(t, []float64{2}, Linspace(2, 3, 1))
	assert.Nil(t, Linspace(2, 3, 0))
	v := Linspace(-3, 3, 50)
	assert.Equal(t, 50, len(v))
	assert.Equal(t, -3., v[0])
	assert.Equal(t, 3., v[49])
	assert.Equal(t, 3., MaxAbs(v))
	assert.Equal(t, 2, CountNan([]float64{1, math.NaN(), 2, math.NaN()}))
	assert.True(t, IsNan([]float64{1, math.NaN()}))
	assert.False(t, IsNan(1.))
	assert.Equal(t, 1./8., POW(2, -3))
}
