// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package relay serves the Chain panel over HTTP: a JSON snapshot endpoint
// and a websocket stream that pushes a snapshot every interval.
package relay

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/luxfi/chaindash/pkg/constants"
	"github.com/luxfi/chaindash/pkg/panel"
	"github.com/luxfi/chaindash/pkg/poller"
	"go.uber.org/zap"
)

const (
	PathChain  = "/api/chain"
	PathHealth = "/health"
	PathStream = "/ws"

	FrameChain = "chain"
)

// Source is anything that can report the dashboard state.
type Source interface {
	Snapshot() panel.ChainSnapshot
}

// Frame is one message on the stream and the body of GET /api/chain.
type Frame struct {
	Type string              `json:"type"`
	Time time.Time           `json:"time"`
	Data panel.ChainSnapshot `json:"data"`
}

type Health struct {
	Status      string `json:"status"`
	Subscribers int    `json:"subscribers"`
}

type Server struct {
	source   Source
	interval time.Duration
	log      *zap.Logger
	now      func() time.Time

	hub      *hub
	upgrader websocket.Upgrader
	httpSrv  *http.Server

	mu     sync.Mutex
	ticker *poller.Handle
	addr   net.Addr
}

func New(source Source, interval time.Duration, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	if interval <= 0 {
		interval = constants.DefaultPollInterval
	}
	s := &Server{
		source:   source,
		interval: interval,
		log:      log,
		now:      time.Now,
		hub:      newHub(log),
		upgrader: websocket.Upgrader{
			// read-only public data
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
	s.httpSrv = &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: constants.RelayWriteWait,
	}
	return s
}

// Handler routes the relay endpoints. It does not start broadcasting.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(PathChain, s.handleChain)
	mux.HandleFunc(PathHealth, s.handleHealth)
	mux.HandleFunc(PathStream, s.handleStream)
	return mux
}

func (s *Server) frame() ([]byte, error) {
	return json.Marshal(Frame{Type: FrameChain, Time: s.now().UTC(), Data: s.source.Snapshot()})
}

func writeJSON(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

func (s *Server) handleChain(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	body, err := s.frame()
	if err != nil {
		s.log.Error("encode snapshot", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, body)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	body, _ := json.Marshal(Health{Status: "ok", Subscribers: s.hub.count()})
	writeJSON(w, http.StatusOK, body)
}

func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// the upgrader already replied
		s.log.Debug("upgrade failed", zap.Error(err))
		return
	}
	first, err := s.frame()
	if err != nil {
		s.log.Error("encode snapshot", zap.Error(err))
		first = nil
	}
	s.hub.add(conn, first)
}

// Broadcast pushes the current snapshot to every subscriber.
func (s *Server) Broadcast() {
	msg, err := s.frame()
	if err != nil {
		s.log.Error("encode snapshot", zap.Error(err))
		return
	}
	s.hub.broadcast(msg)
}

// StartBroadcast pushes a snapshot every interval until StopBroadcast or ctx
// is done. Calling it twice is a no-op.
func (s *Server) StartBroadcast(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ticker != nil {
		return
	}
	s.ticker = poller.Start(ctx, s.interval, func(context.Context) { s.Broadcast() })
}

func (s *Server) StopBroadcast() {
	s.mu.Lock()
	h := s.ticker
	s.ticker = nil
	s.mu.Unlock()
	if h != nil {
		h.Stop()
	}
}

// Listen binds addr and serves in the background. The bound address is
// available from Addr.
func (s *Server) Listen(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", addr, err)
	}
	s.mu.Lock()
	s.addr = ln.Addr()
	s.mu.Unlock()

	s.StartBroadcast(ctx)
	s.log.Info("relay listening", zap.String("addr", ln.Addr().String()))
	go func() {
		if err := s.httpSrv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log.Error("relay server error", zap.Error(err))
		}
	}()
	return nil
}

func (s *Server) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addr
}

// Shutdown stops broadcasting, closes every subscriber and drains HTTP
// requests for at most ShutdownTimeout.
func (s *Server) Shutdown(ctx context.Context) error {
	s.StopBroadcast()
	s.hub.closeAll()

	ctx, cancel := context.WithTimeout(ctx, constants.ShutdownTimeout)
	defer cancel()
	if err := s.httpSrv.Shutdown(ctx); err != nil {
		return fmt.Errorf("relay shutdown: %w", err)
	}
	s.log.Info("relay stopped")
	return nil
}
