// Package server exposes the status endpoints of a mounted filesystem.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/shayshai/uprocfs/log"
)

// ShutdownTimeout bounds the graceful shutdown triggered by Start.
const ShutdownTimeout = 5 * time.Second

// Source reports the state served by the status endpoints.
type Source interface {
	Events() []string
	Entries() int
}

// Server serves /health, /events and /metrics.
type Server struct {
	server *http.Server
	log    *log.Logger

	mu           sync.Mutex
	listener     net.Listener
	shutdownOnce sync.Once
}

// New creates a stopped server listening on addr once started. The
// gatherer backs /metrics; a nil gatherer uses the default registry.
func New(addr string, source Source, gatherer prometheus.Gatherer, logger *log.Logger) (*Server, error) {
	if addr == "" {
		return nil, errors.New("listen address is required")
	}
	if source == nil {
		return nil, errors.New("source is required")
	}
	if logger == nil {
		logger = log.Discard()
	}
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	return &Server{
		server: &http.Server{
			Addr:              addr,
			Handler:           NewRouter(source, gatherer, logger),
			ReadHeaderTimeout: 10 * time.Second,
			IdleTimeout:       60 * time.Second,
		},
		log: logger,
	}, nil
}

// Start listens and serves until ctx is cancelled or the listener fails.
func (s *Server) Start(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.server.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.server.Addr, err)
	}

	s.mu.Lock()
	s.listener = listener
	s.mu.Unlock()

	errChan := make(chan error, 1)
	go func() {
		s.log.Info("status server listening on %s", listener.Addr())

		if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
		close(errChan)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()

		return s.Shutdown(shutdownCtx)
	case err, ok := <-errChan:
		if !ok {
			return nil
		}

		return fmt.Errorf("status server failed: %w", err)
	}
}

// Shutdown stops the server. It is safe to call more than once.
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error
	s.shutdownOnce.Do(func() {
		if err := s.server.Shutdown(ctx); err != nil {
			shutdownErr = fmt.Errorf("status server shutdown error: %w", err)
			s.log.Error("status server shutdown error: %v", err)
			return
		}

		s.log.Info("status server stopped")
	})

	return shutdownErr
}

// Addr returns the bound address once Start is listening, or the
// configured one before that.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener != nil {
		return s.listener.Addr().String()
	}

	return s.server.Addr
}
