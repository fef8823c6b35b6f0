package server

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/notargets/gostreaming/model_problems/ElasticStreaming"
)

const (
	DefaultN      = 50
	MaxN          = 400
	DefaultExtent = 3.
)

// Request from the browser, config carries string encoded numbers keyed as in the slider UI
type Request struct {
	Type   string                 `json:"type"`
	Config map[string]interface{} `json:"config"`
	N      int                    `json:"n"`
	Extent float64                `json:"extent"`

	decodeErr error
}

type LayerReply struct {
	Thickness *float64 `json:"thickness"`
	Diverging bool     `json:"diverging"`
}

// Reply carries the field on an N x N grid, NaN values are sent as null
type Reply struct {
	Type  string       `json:"type"`
	X     []float64    `json:"x,omitempty"`
	Y     []float64    `json:"y,omitempty"`
	Z     [][]*float64 `json:"z,omitempty"`
	Layer *LayerReply  `json:"layer,omitempty"`
	Error string       `json:"error,omitempty"`
}

func errorReply(err error) Reply {
	return Reply{Type: "error", Error: err.Error()}
}

func newLayerReply(l ElasticStreaming.DCLayer) (lr *LayerReply) {
	lr = &LayerReply{Diverging: l.Diverging}
	if !l.Diverging {
		th := l.Thickness
		lr.Thickness = &th
	}
	return
}

func nullable(Z *mat.Dense) (z [][]*float64) {
	r, c := Z.Dims()
	z = make([][]*float64, r)
	for i := 0; i < r; i++ {
		z[i] = make([]*float64, c)
		for j := 0; j < c; j++ {
			if v := Z.At(i, j); !math.IsNaN(v) {
				z[i][j] = &v
			}
		}
	}
	return
}
