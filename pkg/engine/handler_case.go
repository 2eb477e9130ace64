package engine

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/arkivsim/arkivsim/pkg/behavior"
	"github.com/arkivsim/arkivsim/pkg/noark"
)

func (h *Handler) handleCaseCreate(w http.ResponseWriter, r *http.Request) {
	const endpoint = "POST /arkiv/noark/sak"

	cfg := h.effective(behavior.TargetCaseCreate)
	summary := behavior.Summary(cfg, h.defaultDelay)

	// FAIL short-circuits before any store mutation: a failed create must
	// not leave a half-created case behind.
	if cfg.Mode == behavior.ModeFail {
		h.log.Info("request", "method", r.Method, "path", r.URL.Path, "behavior", summary)
		h.write(w, r, endpoint, cfg, behavior.Apply(behavior.Response{}, cfg, h.defaultDelay, nil))
		return
	}

	body, _ := io.ReadAll(r.Body)
	caseID, token := h.store.CreateCase(body)

	base := locationResponse(http.StatusAccepted, "/_status/sak/"+token)
	h.log.Info("request", "method", r.Method, "path", r.URL.Path,
		"behavior", summary, "caseId", caseID, "statusId", token)
	h.write(w, r, endpoint, cfg, behavior.Apply(base, cfg, h.defaultDelay, nil))
}

func (h *Handler) handleCaseQuery(w http.ResponseWriter, r *http.Request) {
	const endpoint = "POST /arkiv/noark/sak/$query"

	// Query overrides are persistent only; nothing to consume.
	cfg := h.behaviors.Get(behavior.TargetCaseQuery)
	summary := behavior.Summary(cfg, h.defaultDelay)

	if cfg.Mode == behavior.ModeFail {
		h.log.Info("request", "method", r.Method, "path", r.URL.Path, "behavior", summary)
		h.write(w, r, endpoint, cfg, behavior.Apply(behavior.Response{}, cfg, h.defaultDelay, nil))
		return
	}

	body, _ := io.ReadAll(r.Body)
	expr := strings.TrimSpace(string(body))
	matched := h.store.QueryCases(expr)

	base := jsonResponse(http.StatusOK, noark.CaseCollection(matched))

	label := expr
	if label == "" {
		label = "-"
	}
	h.log.Info("request", "method", r.Method, "path", r.URL.Path,
		"behavior", summary, "filter", label, "matches", len(matched))
	h.write(w, r, endpoint, cfg, behavior.Apply(base, cfg, h.defaultDelay, emptyCollectionResponse))
}

func (h *Handler) handleJournalPut(w http.ResponseWriter, r *http.Request) {
	const endpoint = "PUT /arkiv/noark/sak/mappeid/{id}"

	cfg := h.effective(behavior.TargetJournalpostCreate)
	summary := behavior.Summary(cfg, h.defaultDelay)

	if cfg.Mode == behavior.ModeFail {
		h.log.Info("request", "method", r.Method, "path", r.URL.Path, "behavior", summary)
		h.write(w, r, endpoint, cfg, behavior.Apply(behavior.Response{}, cfg, h.defaultDelay, nil))
		return
	}

	caseID := r.PathValue("id")
	body, _ := io.ReadAll(r.Body)

	var base behavior.Response
	token, err := h.store.AddJournalEntry(caseID, body)
	if err != nil {
		base = behavior.Response{Status: http.StatusNotFound}
	} else {
		base = locationResponse(http.StatusAccepted, "/_status/sak/"+token)
	}

	h.log.Info("request", "method", r.Method, "path", r.URL.Path,
		"behavior", summary, "caseId", caseID, "statusId", token)
	h.write(w, r, endpoint, cfg, behavior.Apply(base, cfg, h.defaultDelay, nil))
}

// handleCaseGet serves both the case and the journal entry reads: the
// captured remainder is either "{year}/{seq}" or
// "{year}/{seq}/journalpost/{n}". Reads are unconditional, no behavior
// override applies.
func (h *Handler) handleCaseGet(w http.ResponseWriter, r *http.Request) {
	rest := r.PathValue("rest")

	if idx := strings.Index(rest, "/journalpost/"); idx >= 0 {
		h.serveJournalGet(w, r, rest[:idx], rest[idx+len("/journalpost/"):])
		return
	}

	const endpoint = "GET /arkiv/noark/sak/{id}"
	c, ok := h.store.GetCase(rest)
	if !ok {
		h.log.Info("request", "method", r.Method, "path", r.URL.Path,
			"behavior", "default", "caseId", rest, "result", "not_found")
		h.write(w, r, endpoint, behavior.Normal(), behavior.Response{Status: http.StatusNotFound})
		return
	}

	h.log.Info("request", "method", r.Method, "path", r.URL.Path,
		"behavior", "default", "caseId", rest, "result", "found")
	h.write(w, r, endpoint, behavior.Normal(), jsonResponse(http.StatusOK, c))
}

func (h *Handler) serveJournalGet(w http.ResponseWriter, r *http.Request, caseID, numberText string) {
	const endpoint = "GET /arkiv/noark/sak/{id}/journalpost/{n}"

	number, err := strconv.ParseInt(numberText, 10, 64)
	if caseID == "" || err != nil {
		h.log.Info("request", "method", r.Method, "path", r.URL.Path,
			"behavior", "default", "result", "bad_request")
		h.write(w, r, endpoint, behavior.Normal(), behavior.Response{Status: http.StatusNotFound})
		return
	}

	entry, ok := h.store.GetJournalEntry(caseID, number)
	if !ok {
		h.log.Info("request", "method", r.Method, "path", r.URL.Path,
			"behavior", "default", "caseId", caseID,
			"journalpostNumber", number, "result", "not_found")
		h.write(w, r, endpoint, behavior.Normal(), behavior.Response{Status: http.StatusNotFound})
		return
	}

	h.log.Info("request", "method", r.Method, "path", r.URL.Path,
		"behavior", "default", "caseId", caseID,
		"journalpostNumber", number, "result", "found")
	h.write(w, r, endpoint, behavior.Normal(), jsonResponse(http.StatusOK, entry))
}

func (h *Handler) handleCaseStatus(w http.ResponseWriter, r *http.Request) {
	const endpoint = "GET /_status/sak/{token}"

	token := r.PathValue("token")
	caseID, ok := h.store.ResolveCaseToken(token)
	if !ok {
		h.log.Info("request", "method", r.Method, "path", r.URL.Path,
			"behavior", "default", "statusId", token, "result", "not_found")
		h.write(w, r, endpoint, behavior.Normal(), behavior.Response{Status: http.StatusNotFound})
		return
	}

	h.log.Info("request", "method", r.Method, "path", r.URL.Path,
		"behavior", "default", "statusId", token, "caseId", caseID)
	h.write(w, r, endpoint, behavior.Normal(),
		locationResponse(http.StatusCreated, "/arkiv/noark/sak/"+caseID))
}

func (h *Handler) handleFileStatus(w http.ResponseWriter, r *http.Request) {
	const endpoint = "GET /_status/dokumentfil/{token}"

	token := r.PathValue("token")
	fileID, ok := h.store.ResolveFileToken(token)
	if !ok {
		h.log.Info("request", "method", r.Method, "path", r.URL.Path,
			"behavior", "default", "statusId", token, "result", "not_found")
		h.write(w, r, endpoint, behavior.Normal(), behavior.Response{Status: http.StatusNotFound})
		return
	}

	h.log.Info("request", "method", r.Method, "path", r.URL.Path,
		"behavior", "default", "statusId", token, "fileId", fileID)
	h.write(w, r, endpoint, behavior.Normal(),
		locationResponse(http.StatusCreated, fmt.Sprintf("/arkiv/noark/dokumentfil/%d", fileID)))
}
