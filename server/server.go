package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"github.com/notargets/gostreaming/model_problems/ElasticStreaming"
)

type Server struct {
	Addr     string
	upgrader websocket.Upgrader
	cache    *ElasticStreaming.SolutionCache
}

func NewServer(addr string, cache *ElasticStreaming.SolutionCache) *Server {
	return &Server{
		Addr: addr,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		cache: cache,
	}
}

// serveWs handles websocket requests from the peer
func (s *Server) serveWs(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn("upgrade: ", err)
		return
	}
	defer conn.Close()
	hub := NewHub(conn, s.cache)
	go hub.handleRequest()
	defer func() {
		close(hub.msg)
		<-hub.done
	}()
	for {
		var (
			req       Request
			syntaxErr *json.SyntaxError
			typeErr   *json.UnmarshalTypeError
		)
		if err = conn.ReadJSON(&req); err != nil {
			switch {
			case errors.As(err, &syntaxErr), errors.As(err, &typeErr):
				// Malformed message, answer it and keep reading
				req = Request{decodeErr: err}
			default:
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					log.Warn("read: ", err)
				}
				return
			}
		}
		if !hub.enqueue(req) {
			return
		}
	}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.serveWs)
	return mux
}

func (s *Server) Start() error {
	log.WithFields(log.Fields{"addr": s.Addr}).Info("listening")
	return http.ListenAndServe(s.Addr, s.Handler())
}
