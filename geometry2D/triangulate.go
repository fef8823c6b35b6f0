package geometry2D

import (
	"fmt"
	"math"

	"github.com/pradeep-pyro/triangle"
)

// TriMesh is a Delaunay triangulation of scattered points, triangles are stored counter clockwise
type TriMesh struct {
	X, Y                   []float64
	Tris                   [][3]int
	XMin, XMax, YMin, YMax float64
}

func NewTriMesh(X, Y []float64) (tm *TriMesh, err error) {
	if len(X) != len(Y) {
		panic(fmt.Errorf("coordinate length mismatch, %d x values and %d y values", len(X), len(Y)))
	}
	if len(X) < 3 {
		err = fmt.Errorf("need at least 3 points to triangulate, have %d", len(X))
		return
	}
	var (
		pts = make([][2]float64, len(X))
	)
	tm = &TriMesh{
		X:    X,
		Y:    Y,
		XMin: math.Inf(1), XMax: math.Inf(-1),
		YMin: math.Inf(1), YMax: math.Inf(-1),
	}
	for i := range X {
		if math.IsNaN(X[i]) || math.IsNaN(Y[i]) || math.IsInf(X[i], 0) || math.IsInf(Y[i], 0) {
			err = fmt.Errorf("point %d is not finite: [%v,%v]", i, X[i], Y[i])
			return
		}
		pts[i] = [2]float64{X[i], Y[i]}
		tm.XMin, tm.XMax = math.Min(tm.XMin, X[i]), math.Max(tm.XMax, X[i])
		tm.YMin, tm.YMax = math.Min(tm.YMin, Y[i]), math.Max(tm.YMax, Y[i])
	}
	tris := triangle.Delaunay(pts)
	for _, t := range tris {
		verts := [3]int{int(t[0]), int(t[1]), int(t[2])}
		a := tm.signedArea(verts)
		switch {
		case a == 0:
			continue
		case a < 0:
			verts[1], verts[2] = verts[2], verts[1]
		}
		tm.Tris = append(tm.Tris, verts)
	}
	if len(tm.Tris) == 0 {
		err = fmt.Errorf("triangulation of %d points is empty, points are collinear", len(X))
	}
	return
}

func (tm *TriMesh) signedArea(v [3]int) float64 {
	return 0.5 * ((tm.X[v[1]]-tm.X[v[0]])*(tm.Y[v[2]]-tm.Y[v[0]]) -
		(tm.X[v[2]]-tm.X[v[0]])*(tm.Y[v[1]]-tm.Y[v[0]]))
}

func (tm *TriMesh) Area(k int) float64 {
	return tm.signedArea(tm.Tris[k])
}

func (tm *TriMesh) GetVertices(k int) (x, y [3]float64) {
	for n, v := range tm.Tris[k] {
		x[n], y[n] = tm.X[v], tm.Y[v]
	}
	return
}

// Barycentric returns the coordinates of (x,y) relative to triangle k
func (tm *TriMesh) Barycentric(k int, x, y float64) (l [3]float64) {
	var (
		xv, yv = tm.GetVertices(k)
		det    = (yv[1]-yv[2])*(xv[0]-xv[2]) + (xv[2]-xv[1])*(yv[0]-yv[2])
	)
	l[0] = ((yv[1]-yv[2])*(x-xv[2]) + (xv[2]-xv[1])*(y-yv[2])) / det
	l[1] = ((yv[2]-yv[0])*(x-xv[2]) + (xv[0]-xv[2])*(y-yv[2])) / det
	l[2] = 1 - l[0] - l[1]
	return
}

// BoundingBox of triangle k
func (tm *TriMesh) BoundingBox(k int) (xMin, xMax, yMin, yMax float64) {
	xv, yv := tm.GetVertices(k)
	xMin, xMax = math.Min(xv[0], math.Min(xv[1], xv[2])), math.Max(xv[0], math.Max(xv[1], xv[2]))
	yMin, yMax = math.Min(yv[0], math.Min(yv[1], yv[2])), math.Max(yv[0], math.Max(yv[1], yv[2]))
	return
}
