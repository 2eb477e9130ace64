package engine

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/arkivsim/arkivsim/internal/store"
	"github.com/arkivsim/arkivsim/pkg/behavior"
	"github.com/arkivsim/arkivsim/pkg/config"
	"github.com/arkivsim/arkivsim/pkg/engine/api"
	"github.com/arkivsim/arkivsim/pkg/logging"
	"github.com/arkivsim/arkivsim/pkg/metrics"
)

// Server owns the simulator: the archive endpoints on the simulator port
// and the mock admin API on the admin port.
type Server struct {
	cfg       config.Config
	log       *slog.Logger
	store     *store.Store
	behaviors *behavior.Registry
	metrics   *metrics.Metrics
	handler   *Handler

	httpServer *http.Server
	adminAPI   *api.Server

	mu        sync.Mutex
	running   bool
	startTime time.Time
}

// Option is a functional option for configuring a Server.
type Option func(*Server)

// WithLogger sets the operational logger.
func WithLogger(log *slog.Logger) Option {
	return func(s *Server) {
		if log != nil {
			s.log = log
		}
	}
}

// NewServer creates a Server with the given configuration.
func NewServer(cfg config.Config, opts ...Option) *Server {
	s := &Server{
		cfg:       cfg,
		log:       logging.Nop(),
		behaviors: behavior.NewRegistry(),
		metrics:   metrics.New(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.store = store.New(s.log)
	s.handler = NewHandler(s.log, s.store, s.behaviors, s.metrics, cfg.DefaultDelay())

	s.adminAPI = api.NewServer(newController(s), cfg.AdminPort, s.metrics.Handler())
	s.adminAPI.SetLogger(s.log)

	return s
}

// Handler returns the simulator's HTTP handler. Useful for tests that
// drive the endpoints through httptest without binding ports.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// AdminHandler returns the admin API handler for in-process tests.
func (s *Server) AdminHandler() http.Handler {
	return s.adminAPI.Handler()
}

// Start brings up both listeners. It does not block.
func (s *Server) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return fmt.Errorf("server is already running")
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", s.cfg.SimulatorPort),
		Handler:      s.handler,
		ReadTimeout:  s.cfg.ReadTimeout.Std(),
		WriteTimeout: s.cfg.WriteTimeout.Std(),
	}

	s.log.Info("starting simulator", "port", s.cfg.SimulatorPort)
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.log.Error("simulator server error", "error", err)
		}
	}()

	if err := s.adminAPI.Start(); err != nil {
		s.log.Error("admin API server error", "error", err)
	}

	s.running = true
	s.startTime = time.Now()
	s.log.Info("simulator started",
		"simulator_port", s.cfg.SimulatorPort, "admin_port", s.cfg.AdminPort)
	return nil
}

// Stop gracefully shuts down both listeners.
func (s *Server) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var errs []error
	if err := s.adminAPI.Stop(ctx); err != nil {
		errs = append(errs, fmt.Errorf("admin API shutdown: %w", err))
	}
	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("simulator shutdown: %w", err))
		}
	}

	s.running = false
	s.log.Info("simulator stopped")

	if len(errs) > 0 {
		return errs[0]
	}
	return nil
}

// IsRunning reports whether Start has been called without a matching Stop.
func (s *Server) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// Uptime returns whole seconds since Start, or 0 when stopped.
func (s *Server) Uptime() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running {
		return 0
	}
	return int(time.Since(s.startTime).Seconds())
}
