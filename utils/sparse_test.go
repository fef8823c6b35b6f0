package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSparse(t *testing.T) {
	{
		dok := NewDOK(3, 4)
		dok.Set(0, 1, 2)
		dok.Set(0, 3, -1)
		dok.Set(2, 0, 0.5)
		csr := dok.ToCSR()
		r, c := csr.Dims()
		assert.Equal(t, 3, r)
		assert.Equal(t, 4, c)
		assert.Equal(t, 2., csr.At(0, 1))
		raw := csr.RawMatrix()
		assert.Equal(t, []int{0, 2, 2, 3}, raw.Indptr)
		assert.Equal(t, []int{1, 3, 0}, raw.Ind)
		assert.Equal(t, []float64{2, -1, 0.5}, raw.Data)
		y := csr.MulVec([]float64{1, 2, 3, 4}, nil)
		assert.Equal(t, []float64{0, 0, 0.5}, y)
		y = csr.MulVec([]float64{1, 2, 3, 4}, []bool{false, true, false})
		assert.True(t, math.IsNaN(y[1]))
		assert.Equal(t, 0.5, y[2])
		assert.Panics(t, func() { csr.MulVec([]float64{1}, nil) })
	}
	{ // Compression order does not depend on map iteration
		build := func() CSR {
			dok := NewDOK(50, 50)
			for i := 0; i < 50; i++ {
				for _, j := range []int{(7 * i) % 50, (11*i + 3) % 50, (13*i + 5) % 50} {
					dok.Set(i, j, 1/float64(i+j+1))
				}
			}
			return dok.ToCSR()
		}
		ref := build().RawMatrix()
		for n := 0; n < 10; n++ {
			raw := build().RawMatrix()
			assert.Equal(t, ref.Ind, raw.Ind)
			assert.Equal(t, ref.Data, raw.Data)
		}
		for i := 0; i < 50; i++ {
			for p := ref.Indptr[i] + 1; p < ref.Indptr[i+1]; p++ {
				assert.Less(t, ref.Ind[p-1], ref.Ind[p])
			}
		}
	}
	{
		dok := NewDOK(2, 2)
		dok.SetReadOnly("W")
		assert.Panics(t, func() { dok.Set(0, 0, 1) })
	}
}
