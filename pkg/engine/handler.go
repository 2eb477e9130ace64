package engine

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/arkivsim/arkivsim/internal/store"
	"github.com/arkivsim/arkivsim/pkg/behavior"
	"github.com/arkivsim/arkivsim/pkg/metrics"
	"github.com/arkivsim/arkivsim/pkg/noark"
)

type startTimeKey struct{}

// Handler routes the simulated archive endpoints.
type Handler struct {
	log          *slog.Logger
	store        *store.Store
	behaviors    *behavior.Registry
	metrics      *metrics.Metrics
	defaultDelay time.Duration
	mux          *http.ServeMux
}

// NewHandler builds the simulator handler with all routes registered.
func NewHandler(log *slog.Logger, st *store.Store, reg *behavior.Registry, m *metrics.Metrics, defaultDelay time.Duration) *Handler {
	h := &Handler{
		log:          log,
		store:        st,
		behaviors:    reg,
		metrics:      m,
		defaultDelay: defaultDelay,
		mux:          http.NewServeMux(),
	}

	h.mux.HandleFunc("POST /arkiv/noark/sak", h.handleCaseCreate)
	h.mux.HandleFunc("POST /arkiv/noark/sak/$query", h.handleCaseQuery)
	h.mux.HandleFunc("PUT /arkiv/noark/sak/mappeid/{id...}", h.handleJournalPut)
	// Case IDs contain a slash, so the whole remainder is captured and
	// split by hand.
	h.mux.HandleFunc("GET /arkiv/noark/sak/{rest...}", h.handleCaseGet)
	h.mux.HandleFunc("POST /arkiv/noark/dokumentfil", h.handleFileCreate)
	h.mux.HandleFunc("GET /arkiv/noark/dokumentfil/{id}", h.handleFileGet)
	h.mux.HandleFunc("GET /_status/sak/{token}", h.handleCaseStatus)
	h.mux.HandleFunc("GET /_status/dokumentfil/{token}", h.handleFileStatus)

	for _, path := range st.CatalogResources() {
		h.mux.HandleFunc("GET "+path, h.catalogHandler(path))
		h.mux.HandleFunc("GET "+path+"/last-updated", h.lastUpdatedHandler(path))
	}

	return h
}

// ServeHTTP stamps the request with its arrival time and dispatches.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := context.WithValue(r.Context(), startTimeKey{}, time.Now())
	h.mux.ServeHTTP(w, r.WithContext(ctx))
}

// effective resolves the behavior for a one-shot armable target. The
// pending one-shot is consumed here regardless of whether it governs.
func (h *Handler) effective(target behavior.Target) behavior.Config {
	persistent := h.behaviors.Get(target)
	oneShot, ok := h.behaviors.ConsumeOnce(target)
	return behavior.Resolve(persistent, oneShot, ok)
}

// write applies the response's delay and sends it. The delay honors
// request cancellation: a disconnected client does not pin the goroutine
// for the full injected latency.
func (h *Handler) write(w http.ResponseWriter, r *http.Request, endpoint string, cfg behavior.Config, resp behavior.Response) {
	if resp.Delay > 0 {
		timer := time.NewTimer(resp.Delay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-r.Context().Done():
			return
		}
	}

	for name, values := range resp.Header {
		for _, v := range values {
			w.Header().Add(name, v)
		}
	}
	w.WriteHeader(resp.Status)
	if len(resp.Body) > 0 {
		_, _ = w.Write(resp.Body)
	}

	start, ok := r.Context().Value(startTimeKey{}).(time.Time)
	if !ok {
		start = time.Now()
	}
	h.metrics.ObserveRequest(endpoint, modeLabel(cfg), time.Since(start))
}

func modeLabel(cfg behavior.Config) string {
	if cfg.IsNormal() {
		return "default"
	}
	return strings.ToLower(string(cfg.Mode))
}

func jsonResponse(status int, v any) behavior.Response {
	body, _ := json.Marshal(v)
	header := http.Header{}
	header.Set("Content-Type", "application/json")
	return behavior.Response{Status: status, Header: header, Body: body}
}

func locationResponse(status int, location string) behavior.Response {
	header := http.Header{}
	header.Set("Location", location)
	return behavior.Response{Status: status, Header: header}
}

func emptyCollectionResponse() behavior.Response {
	return jsonResponse(http.StatusOK, noark.NewCollection(nil))
}
