package utils

import (
	"fmt"
	"math"
	"sort"

	"github.com/james-bowman/sparse"
	"github.com/james-bowman/sparse/blas"
)

// DOK is a write-once sparse matrix, assembled entry by entry then converted to CSR
type DOK struct {
	M        *sparse.DOK
	readOnly bool
	name     string
}

func NewDOK(nr, nc int) (R DOK) {
	R = DOK{
		sparse.NewDOK(nr, nc),
		false,
		"unnamed - hint: pass a variable name to SetReadOnly()",
	}
	return
}

func (m DOK) Dims() (r, c int)    { return m.M.Dims() }
func (m DOK) At(i, j int) float64 { return m.M.At(i, j) }

func (m DOK) Set(i, j int, val float64) {
	m.checkWritable()
	m.M.Set(i, j, val)
}

func (m *DOK) SetReadOnly(name ...string) {
	if len(name) != 0 {
		m.name = name[0]
	}
	m.readOnly = true
}

func (m DOK) checkWritable() {
	if m.readOnly {
		err := fmt.Errorf("attempt to write to a read only matrix named: \"%v\"", m.name)
		panic(err)
	}
}

// ToCSR compresses the entries in row major order with ascending columns in each row, so
// products with the result always sum in the same order
func (m DOK) ToCSR() CSR {
	type entry struct {
		i, j int
		v    float64
	}
	var (
		nr, nc  = m.Dims()
		entries []entry
	)
	m.M.DoNonZero(func(i, j int, v float64) {
		entries = append(entries, entry{i, j, v})
	})
	sort.Slice(entries, func(a, b int) bool {
		if entries[a].i != entries[b].i {
			return entries[a].i < entries[b].i
		}
		return entries[a].j < entries[b].j
	})
	var (
		indptr = make([]int, nr+1)
		ind    = make([]int, len(entries))
		data   = make([]float64, len(entries))
	)
	for k, e := range entries {
		indptr[e.i+1]++
		ind[k], data[k] = e.j, e.v
	}
	for i := 0; i < nr; i++ {
		indptr[i+1] += indptr[i]
	}
	return CSR{
		M:    sparse.NewCSR(nr, nc, indptr, ind, data),
		name: m.name,
	}
}

// CSR is the compressed row form used for repeated matrix vector products
type CSR struct {
	M    *sparse.CSR
	name string
}

func (m CSR) Dims() (r, c int)              { return m.M.Dims() }
func (m CSR) At(i, j int) float64           { return m.M.At(i, j) }
func (m CSR) RawMatrix() *blas.SparseMatrix { return m.M.RawMatrix() }

// MulVec returns m * x, rows flagged in nanRows are set to NaN instead
func (m CSR) MulVec(x []float64, nanRows []bool) (y []float64) {
	var (
		raw = m.RawMatrix()
	)
	if len(x) != raw.J {
		panic(fmt.Errorf("dimension mismatch in %s: %d columns, vector length %d", m.name, raw.J, len(x)))
	}
	if nanRows != nil && len(nanRows) != raw.I {
		panic(fmt.Errorf("dimension mismatch in %s: %d rows, mask length %d", m.name, raw.I, len(nanRows)))
	}
	y = make([]float64, raw.I)
	for i := 0; i < raw.I; i++ {
		if nanRows != nil && nanRows[i] {
			y[i] = math.NaN()
			continue
		}
		var sum float64
		for p := raw.Indptr[i]; p < raw.Indptr[i+1]; p++ {
			sum += raw.Data[p] * x[raw.Ind[p]]
		}
		y[i] = sum
	}
	return
}
