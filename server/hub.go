package server

import (
	"fmt"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"github.com/notargets/gostreaming/InputParameters"
	"github.com/notargets/gostreaming/model_problems/ElasticStreaming"
	"github.com/notargets/gostreaming/utils"
)

// Hub serves the requests of one websocket connection in arrival order
type Hub struct {
	conn  *websocket.Conn
	cache *ElasticStreaming.SolutionCache
	msg   chan Request
	done  chan struct{}
}

func NewHub(conn *websocket.Conn, cache *ElasticStreaming.SolutionCache) *Hub {
	return &Hub{
		conn:  conn,
		cache: cache,
		msg:   make(chan Request, 10),
		done:  make(chan struct{}),
	}
}

// enqueue hands req to the request loop, it reports false once the loop has stopped
func (h *Hub) enqueue(req Request) bool {
	select {
	case h.msg <- req:
		return true
	case <-h.done:
		return false
	}
}

func (h *Hub) handleRequest() {
	defer close(h.done)
	for req := range h.msg {
		var reply Reply
		if req.decodeErr != nil {
			reply = errorReply(fmt.Errorf("malformed request: %w", req.decodeErr))
		} else {
			reply = Simulate(h.cache, req)
		}
		if err := h.conn.WriteJSON(&reply); err != nil {
			log.WithFields(log.Fields{"remote": h.conn.RemoteAddr().String()}).Warn("write: ", err)
			return
		}
	}
}

// Simulate answers a single request
func Simulate(cache *ElasticStreaming.SolutionCache, req Request) (reply Reply) {
	if req.Type != "simulate" {
		return errorReply(fmt.Errorf("no such type %q", req.Type))
	}
	var (
		sp     = &InputParameters.StreamingParameters{}
		n      = req.N
		extent = req.Extent
		err    error
		s      *ElasticStreaming.Solution
		layer  ElasticStreaming.DCLayer
	)
	if err = sp.ParseMap(req.Config); err != nil {
		return errorReply(err)
	}
	switch {
	case n <= 0:
		n = DefaultN
	case n > MaxN:
		return errorReply(fmt.Errorf("grid size %d exceeds %d", n, MaxN))
	}
	if extent <= 0 {
		extent = DefaultExtent
	}
	if s, err = cache.Get(sp.ToParameters()); err != nil {
		return errorReply(err)
	}
	x := utils.Linspace(-extent, extent, n)
	y := utils.Linspace(-extent, extent, n)
	_, _, Z, err := s.Process(x, y)
	if err != nil {
		return errorReply(err)
	}
	if layer, err = s.DCLayerThickness(); err != nil {
		return errorReply(err)
	}
	log.WithFields(log.Fields{"params": s.Params().String(), "n": n, "layer": layer.String()}).Info("simulate")
	return Reply{
		Type:  "field",
		X:     x,
		Y:     y,
		Z:     nullable(Z),
		Layer: newLayerReply(layer),
	}
}
