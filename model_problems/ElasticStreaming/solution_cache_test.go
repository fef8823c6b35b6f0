package ElasticStreaming

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestSolutionCache(t *testing.T) {
	sc, err := NewSolutionCache(4)
	require.NoError(t, err)
	p := NewParameters(8, 0.05, 0.2)
	{ // Concurrent requests construct once
		var (
			eg  errgroup.Group
			res = make([]*Solution, 6)
		)
		for n := range res {
			n := n
			eg.Go(func() (err error) {
				res[n], err = sc.Get(p)
				return
			})
		}
		require.NoError(t, eg.Wait())
		for n := range res {
			assert.Same(t, res[0], res[n])
		}
		assert.Equal(t, 1, sc.Len())
		assert.Equal(t, p, res[0].Params())
	}
	{ // Solutions sharing a womersley number share the rigid body decay
		s1, err := sc.Get(p)
		require.NoError(t, err)
		s2, err := sc.Get(NewParameters(8, 0.1, 0.3))
		require.NoError(t, err)
		assert.NotSame(t, s1, s2)
		assert.Same(t, s1.Rigid, s2.Rigid)
		s3, err := sc.Get(NewParameters(9, 0.1, 0.3))
		require.NoError(t, err)
		assert.NotSame(t, s1.Rigid, s3.Rigid)
	}
	{
		_, err := sc.Get(NewParameters(8, 0.05, 1))
		assert.ErrorIs(t, err, ErrDomain)
		_, err = NewSolutionCache(0)
		assert.Error(t, err)
	}
}
