package ElasticStreaming

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/notargets/gostreaming/utils"
)

const (
	LayerBracketMin = 1.1
	LayerBracketMax = 3.0
	LayerGuess      = 2.0
	LayerTol        = 1.e-12
)

// DCLayer is the extent of the recirculating layer, Diverging when the layer has no finite edge
type DCLayer struct {
	Thickness float64
	Diverging bool
}

func (l DCLayer) String() string {
	if l.Diverging {
		return "diverging"
	}
	return fmt.Sprintf("%.10f", l.Thickness)
}

// DCLayerThickness finds the radius where g + kappa h changes sign
func (s *Solution) DCLayerThickness() (layer DCLayer, err error) {
	var (
		evalErr error
		root    float64
		f       = func(r float64) float64 {
			v, e := s.profileAt(r)
			if e != nil && evalErr == nil {
				evalErr = e
			}
			return v
		}
		fa, fb = f(LayerBracketMin), f(LayerBracketMax)
	)
	if evalErr != nil {
		err = evalErr
		return
	}
	if fa*fb > 0 {
		layer.Diverging = true
		log.WithFields(log.Fields{"params": s.Parameters.String()}).Debug("DC layer diverges")
		return
	}
	root, err = utils.BracketedRoot(f, LayerBracketMin, LayerBracketMax, LayerGuess, LayerTol)
	switch {
	case evalErr != nil:
		err = evalErr
		return
	case err != nil:
		err = fmt.Errorf("%w: DC layer root: %w", ErrNumericalFailure, err)
		return
	}
	layer.Thickness = root - 1
	log.WithFields(log.Fields{"params": s.Parameters.String(), "thickness": layer.Thickness}).Debug("DC layer")
	return
}
