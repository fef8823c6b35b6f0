package geometry2D

import (
	"math"
)

// Barycentric coordinates down to -BaryTol count as inside, so points on shared edges are found
const BaryTol = 1.e-10

// TriLocator buckets triangles on a uniform grid over the mesh bounding box
type TriLocator struct {
	Mesh     *TriMesh
	NBx, NBy int
	dx, dy   float64
	buckets  [][]int
}

func NewTriLocator(tm *TriMesh) (tl *TriLocator) {
	var (
		nb = int(math.Ceil(math.Sqrt(float64(len(tm.Tris)) / 2)))
	)
	if nb < 1 {
		nb = 1
	}
	tl = &TriLocator{
		Mesh:    tm,
		NBx:     nb,
		NBy:     nb,
		dx:      (tm.XMax - tm.XMin) / float64(nb),
		dy:      (tm.YMax - tm.YMin) / float64(nb),
		buckets: make([][]int, nb*nb),
	}
	for k := range tm.Tris {
		xMin, xMax, yMin, yMax := tm.BoundingBox(k)
		i0, j0 := tl.cell(xMin, yMin)
		i1, j1 := tl.cell(xMax, yMax)
		for j := j0; j <= j1; j++ {
			for i := i0; i <= i1; i++ {
				b := i + j*tl.NBx
				tl.buckets[b] = append(tl.buckets[b], k)
			}
		}
	}
	return
}

func clampIndex(f float64, n int) (i int) {
	i = int(math.Floor(f))
	switch {
	case i < 0:
		i = 0
	case i >= n:
		i = n - 1
	}
	return
}

func (tl *TriLocator) cell(x, y float64) (i, j int) {
	if tl.dx > 0 {
		i = clampIndex((x-tl.Mesh.XMin)/tl.dx, tl.NBx)
	}
	if tl.dy > 0 {
		j = clampIndex((y-tl.Mesh.YMin)/tl.dy, tl.NBy)
	}
	return
}

// Locate finds the triangle holding (x,y) and the barycentric coordinates within it
func (tl *TriLocator) Locate(x, y float64) (k int, l [3]float64, found bool) {
	tm := tl.Mesh
	if !(x >= tm.XMin && x <= tm.XMax && y >= tm.YMin && y <= tm.YMax) {
		return -1, l, false
	}
	i, j := tl.cell(x, y)
	for _, k = range tl.buckets[i+j*tl.NBx] {
		l = tm.Barycentric(k, x, y)
		if l[0] >= -BaryTol && l[1] >= -BaryTol && l[2] >= -BaryTol {
			return k, l, true
		}
	}
	return -1, [3]float64{}, false
}
