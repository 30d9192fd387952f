// Package server exposes the decision engine over HTTP and WebSocket. Each
// message is one independent decision request; the server keeps no state
// between them.
package server

import (
	"io"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"tripoker/internal/bot"
	"tripoker/internal/protocol"
)

// Server wraps a decision engine with an HTTP surface
type Server struct {
	logger   *log.Logger
	engine   *bot.Engine
	upgrader websocket.Upgrader
}

// New creates a decision server
func New(logger *log.Logger, engine *bot.Engine) *Server {
	return &Server{
		logger: logger.WithPrefix("server"),
		engine: engine,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

// Router builds the HTTP routes
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Get("/health", s.handleHealth)
	r.Post("/decide", s.handleDecide)
	r.Get("/ws", s.handleWS)
	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

// handleDecide answers a single decision request over plain HTTP. Malformed
// bodies follow the same lenient path as stdin input.
func (s *Server) handleDecide(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		raw = nil
	}

	action := s.engine.Decide(protocol.ParseState(raw))

	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(protocol.MarshalDecision(action))
}

// handleWS answers one decision per received message until the peer
// disconnects
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", "err", err)
		return
	}
	defer conn.Close()

	s.logger.Info("client connected", "remote", conn.RemoteAddr())

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Warn("websocket read failed", "err", err)
			}
			return
		}

		action := s.engine.Decide(protocol.ParseState(msg))

		if err := conn.WriteMessage(websocket.TextMessage, protocol.MarshalDecision(action)); err != nil {
			s.logger.Warn("websocket write failed", "err", err)
			return
		}
	}
}
