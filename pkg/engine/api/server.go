package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/arkivsim/arkivsim/pkg/behavior"
	"github.com/arkivsim/arkivsim/pkg/logging"
)

// Controller is the interface the admin API uses to drive the simulator.
// Implemented by the engine.
type Controller interface {
	// ResetAll drops all dynamic state and every override.
	ResetAll()

	// One-shot arming for the create operations.
	ArmTimeoutOnce(group string, delay time.Duration) error
	ArmFailOnce(group string, status int, body string) error

	// Persistent overrides.
	SetBehavior(group, resource string, cfg behavior.Config) error
	ResetBehavior(group, resource string) error
	Snapshot() map[behavior.Target]behavior.Config

	// CatalogResources maps resource names to serving paths.
	CatalogResources() map[string]string
}

// Server is the mock admin API server.
type Server struct {
	ctrl       Controller
	httpServer *http.Server
	handler    http.Handler
	port       int
	log        *slog.Logger
}

// NewServer creates the admin API server. The metrics handler serves the
// Prometheus exposition on /metrics; pass nil to disable scraping.
func NewServer(ctrl Controller, port int, metricsHandler http.Handler) *Server {
	s := &Server{
		ctrl: ctrl,
		port: port,
		log:  logging.Nop(),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /internal/mock/reset", s.handleReset)
	mux.HandleFunc("POST /internal/mock/arm-timeout", s.handleArmTimeout)
	mux.HandleFunc("POST /internal/mock/arm-fail", s.handleArmFail)
	mux.HandleFunc("GET /internal/mock/behavior", s.handleGetBehavior)
	mux.HandleFunc("PUT /internal/mock/behavior", s.handlePutBehavior)
	mux.HandleFunc("DELETE /internal/mock/behavior", s.handleDeleteBehavior)
	mux.HandleFunc("GET /health", s.handleHealth)
	if metricsHandler != nil {
		mux.Handle("GET /metrics", metricsHandler)
	}

	s.handler = mux
	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      mux,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	return s
}

// SetLogger sets the logger.
func (s *Server) SetLogger(log *slog.Logger) {
	if log != nil {
		s.log = log
	}
}

// Handler returns the admin mux for in-process tests.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Start starts the admin API listener. It does not block.
func (s *Server) Start() error {
	s.log.Info("starting mock admin API", "port", s.port)
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.log.Error("mock admin API server error", "error", err)
		}
	}()
	return nil
}

// Stop shuts the admin API listener down.
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
