package ElasticStreaming

import (
	"fmt"
	"math"
	"time"

	log "github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/mat"

	"github.com/notargets/gostreaming/geometry2D"
	"github.com/notargets/gostreaming/utils"
)

const (
	NRadialInner   = 31  // Radii on [1, InnerRadius]
	NRadialOuter   = 19  // Radii on (InnerRadius, R]
	NAngular       = 80  // Angles 2 pi k/NAngular
	InnerRadius    = 1.5 // The inner band resolves the boundary layer
	MinOuterRadius = 2.
)

// PolarGrid holds the polar sample points, point (i,j) is at index i*NAngular + j
type PolarGrid struct {
	R, Theta []float64
	X, Y     []float64
}

func NewPolarGrid(rOuter float64) (pg *PolarGrid) {
	var (
		inner = utils.Linspace(1, InnerRadius, NRadialInner)
		outer = utils.Linspace(InnerRadius, rOuter, NRadialOuter+1)
	)
	pg = &PolarGrid{
		R:     append(inner, outer[1:]...),
		Theta: make([]float64, NAngular),
	}
	for j := range pg.Theta {
		pg.Theta[j] = 2 * math.Pi * float64(j) / NAngular
	}
	Np := len(pg.R) * NAngular
	pg.X, pg.Y = make([]float64, Np), make([]float64, Np)
	for i, r := range pg.R {
		for j, th := range pg.Theta {
			sin, cos := math.Sincos(th)
			pg.X[i*NAngular+j], pg.Y[i*NAngular+j] = r*cos, r*sin
		}
	}
	return
}

// OuterRadius is the integer radius covering the query rectangle, never below MinOuterRadius
func OuterRadius(x, y []float64) float64 {
	var (
		xm, ym = utils.MaxAbs(x), utils.MaxAbs(y)
	)
	return math.Max(math.Ceil(math.Sqrt(xm*xm+ym*ym)), MinOuterRadius)
}

func checkCoordinates(name string, v []float64) error {
	if len(v) == 0 {
		return fmt.Errorf("%w: %s coordinates are empty", ErrInvalidParameter, name)
	}
	for i, c := range v {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return fmt.Errorf("%w: %s[%d] = %v", ErrInvalidParameter, name, i, c)
		}
	}
	return nil
}

/*
Process evaluates the streaming stream function on the grid spanned by x and y. Row i of the
results corresponds to y[i] and column j to x[j]. Points inside the cylinder are zero, points
beyond the sampled disk are NaN.
*/
func (s *Solution) Process(x, y []float64) (X, Y, Z *mat.Dense, err error) {
	if err = checkCoordinates("x", x); err != nil {
		return
	}
	if err = checkCoordinates("y", y); err != nil {
		return
	}
	var (
		start  = time.Now()
		pg     = NewPolarGrid(OuterRadius(x, y))
		prof   []float64
		interp *geometry2D.Interpolator
		nx, ny = len(x), len(y)
		qx, qy = make([]float64, nx*ny), make([]float64, nx*ny)
		values = make([]float64, len(pg.X))
		res    []float64
	)
	if prof, err = s.RadialProfile(pg.R); err != nil {
		return
	}
	for i := range pg.R {
		amp := s.Epsilon * prof[i]
		for j := 0; j < NAngular; j++ {
			k := i*NAngular + j
			values[k] = amp * AngularPattern(pg.X[k], pg.Y[k])
		}
	}
	if interp, err = geometry2D.NewInterpolator(pg.X, pg.Y, s.ParallelDegree); err != nil {
		err = fmt.Errorf("%w: %w", ErrNumericalFailure, err)
		return
	}
	for i := 0; i < ny; i++ {
		for j := 0; j < nx; j++ {
			qx[i*nx+j], qy[i*nx+j] = x[j], y[i]
		}
	}
	if res, err = interp.Interpolate(qx, qy, values); err != nil {
		err = fmt.Errorf("%w: %w", ErrNumericalFailure, err)
		return
	}
	for k := range res {
		if qx[k]*qx[k]+qy[k]*qy[k] < 1 {
			res[k] = 0
		}
	}
	X, Y, Z = mat.NewDense(ny, nx, qx), mat.NewDense(ny, nx, qy), mat.NewDense(ny, nx, res)
	log.WithFields(log.Fields{
		"params":  s.Parameters.String(),
		"points":  nx * ny,
		"samples": len(values),
		"outside": utils.CountNan(res),
		"elapsed": time.Since(start),
	}).Debug("streaming field assembled")
	return
}
