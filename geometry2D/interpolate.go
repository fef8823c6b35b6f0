package geometry2D

import (
	"fmt"

	"github.com/notargets/gostreaming/utils"
)

// Interpolator performs piecewise linear interpolation of values carried on scattered points
type Interpolator struct {
	Mesh           *TriMesh
	Locator        *TriLocator
	ParallelDegree int
}

func NewInterpolator(X, Y []float64, ParallelDegree int) (in *Interpolator, err error) {
	var (
		tm *TriMesh
	)
	if tm, err = NewTriMesh(X, Y); err != nil {
		return
	}
	in = &Interpolator{
		Mesh:           tm,
		Locator:        NewTriLocator(tm),
		ParallelDegree: ParallelDegree,
	}
	return
}

// Operator assembles the sparse matrix mapping point values onto the query locations.
// Rows of query points outside the triangulation are empty and flagged in outside.
func (in *Interpolator) Operator(qx, qy []float64) (op utils.CSR, outside []bool, err error) {
	if len(qx) != len(qy) {
		panic(fmt.Errorf("query length mismatch, %d x values and %d y values", len(qx), len(qy)))
	}
	var (
		Nq   = len(qx)
		Nv   = len(in.Mesh.X)
		tris = make([]int, Nq)
		bary = make([][3]float64, Nq)
		pm   = utils.NewPartitionMap(in.ParallelDegree, Nq)
	)
	if Nq == 0 {
		err = fmt.Errorf("no query points")
		return
	}
	outside = make([]bool, Nq)
	err = pm.Run(func(bn, kMin, kMax int) error {
		var found bool
		for i := kMin; i < kMax; i++ {
			tris[i], bary[i], found = in.Locator.Locate(qx[i], qy[i])
			outside[i] = !found
		}
		return nil
	})
	if err != nil {
		return
	}
	dok := utils.NewDOK(Nq, Nv)
	for i := 0; i < Nq; i++ {
		if outside[i] {
			continue
		}
		for n, v := range in.Mesh.Tris[tris[i]] {
			if bary[i][n] != 0 {
				dok.Set(i, v, bary[i][n])
			}
		}
	}
	dok.SetReadOnly("interpolation operator")
	op = dok.ToCSR()
	return
}

// Interpolate locates and interpolates in one step
func (in *Interpolator) Interpolate(qx, qy, values []float64) (res []float64, err error) {
	var (
		op      utils.CSR
		outside []bool
	)
	if op, outside, err = in.Operator(qx, qy); err != nil {
		return
	}
	res = op.MulVec(values, outside)
	return
}
