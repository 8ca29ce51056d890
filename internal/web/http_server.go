package web

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"
)

type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

type noopLogger struct{}

func (noopLogger) Infof(string, string, ...interface{})  {}
func (noopLogger) Errorf(string, string, ...interface{}) {}

// HTTPServer serves the read-only status API. It only reads Store
// snapshots and never touches render state.
type HTTPServer struct {
	Config ServerConfig
	Deps   APIV1Deps
	Logger Logger

	// Handler serves every request. NewHTTPServer sets it to the default
	// mux; callers may replace it before Start.
	Handler http.Handler

	mu     sync.Mutex
	srv    *http.Server
	ln     net.Listener
	closed bool
}

func NewHTTPServer(cfg ServerConfig, deps APIV1Deps) *HTTPServer {
	return &HTTPServer{Config: cfg, Deps: deps, Logger: noopLogger{}, Handler: NewHandler(cfg, NewDefaultMux(deps))}
}

// NewHandler applies the middleware selected by cfg.
func NewHandler(cfg ServerConfig, mux *http.ServeMux) http.Handler {
	var handler http.Handler = mux
	if cfg.DevMode {
		handler = WithDevCORS(handler)
	}
	return handler
}

// Addr returns the bound address once started.
func (s *HTTPServer) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ln == nil {
		return ""
	}
	return s.ln.Addr().String()
}

func (s *HTTPServer) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return errors.New("web server already stopped")
	}
	if s.srv != nil {
		return nil
	}
	logger := s.logger()

	addr := s.Config.ListenAddr
	if addr == "" {
		addr = ":8080"
	}

	s.srv = &http.Server{
		Addr:              addr,
		Handler:           s.handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		s.srv = nil
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	s.ln = ln
	logger.Infof("web", "status server listening on %s", ln.Addr())

	go func() {
		<-ctx.Done()
		_ = s.Stop()
	}()

	srv := s.srv
	go func() {
		err := srv.Serve(ln)
		if err == nil || errors.Is(err, http.ErrServerClosed) {
			return
		}
		logger.Errorf("web", "serve: %v", err)
	}()

	return nil
}

func (s *HTTPServer) Stop() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	srv := s.srv
	ln := s.ln
	s.srv = nil
	s.ln = nil
	s.mu.Unlock()

	if ln != nil {
		_ = ln.Close()
	}
	if srv == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}

func (s *HTTPServer) handler() http.Handler {
	if s.Handler == nil {
		return NewHandler(s.Config, NewDefaultMux(s.Deps))
	}
	return s.Handler
}

func (s *HTTPServer) logger() Logger {
	if s.Logger == nil {
		return noopLogger{}
	}
	return s.Logger
}
