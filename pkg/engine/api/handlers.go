package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/arkivsim/arkivsim/pkg/httputil"
)

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	s.ctrl.ResetAll()
	httputil.WriteNoContent(w)
}

func (s *Server) handleArmTimeout(w http.ResponseWriter, r *http.Request) {
	group := r.URL.Query().Get("group")

	var delay time.Duration
	if raw := r.URL.Query().Get("delay"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			httputil.WriteBadRequest(w, "invalid_delay", err.Error())
			return
		}
		delay = parsed
	}

	if err := s.ctrl.ArmTimeoutOnce(group, delay); err != nil {
		httputil.WriteBadRequest(w, "invalid_group", err.Error())
		return
	}
	httputil.WriteNoContent(w)
}

func (s *Server) handleArmFail(w http.ResponseWriter, r *http.Request) {
	group := r.URL.Query().Get("group")
	body := r.URL.Query().Get("body")

	var status int
	if raw := r.URL.Query().Get("status"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			httputil.WriteBadRequest(w, "invalid_status", err.Error())
			return
		}
		status = parsed
	}

	if err := s.ctrl.ArmFailOnce(group, status, body); err != nil {
		httputil.WriteBadRequest(w, "invalid_group", err.Error())
		return
	}
	httputil.WriteNoContent(w)
}

func (s *Server) handleGetBehavior(w http.ResponseWriter, r *http.Request) {
	snapshot := s.ctrl.Snapshot()
	behaviors := make(map[string]BehaviorState, len(snapshot))
	for target, cfg := range snapshot {
		behaviors[string(target)] = stateFromConfig(cfg)
	}

	httputil.WriteOK(w, SnapshotResponse{
		Behaviors: behaviors,
		Resources: s.ctrl.CatalogResources(),
	})
}

func (s *Server) handlePutBehavior(w http.ResponseWriter, r *http.Request) {
	var req UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, "invalid_body", err.Error())
		return
	}

	cfg, err := req.toConfig()
	if err != nil {
		httputil.WriteBadRequest(w, "invalid_behavior", err.Error())
		return
	}

	if err := s.ctrl.SetBehavior(req.Group, req.Resource, cfg); err != nil {
		httputil.WriteBadRequest(w, "invalid_target", err.Error())
		return
	}
	httputil.WriteNoContent(w)
}

func (s *Server) handleDeleteBehavior(w http.ResponseWriter, r *http.Request) {
	group := r.URL.Query().Get("group")
	resource := r.URL.Query().Get("resource")

	if group == "" {
		httputil.WriteBadRequest(w, "missing_group", "group query parameter is required")
		return
	}

	if err := s.ctrl.ResetBehavior(group, resource); err != nil {
		httputil.WriteBadRequest(w, "invalid_target", err.Error())
		return
	}
	httputil.WriteNoContent(w)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	httputil.WriteOK(w, map[string]any{
		"status":    "healthy",
		"timestamp": time.Now().UTC(),
	})
}
