package engine

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/arkivsim/arkivsim/pkg/behavior"
)

func (h *Handler) handleFileCreate(w http.ResponseWriter, r *http.Request) {
	const endpoint = "POST /arkiv/noark/dokumentfil"

	cfg := h.effective(behavior.TargetFileCreate)
	summary := behavior.Summary(cfg, h.defaultDelay)

	if cfg.Mode == behavior.ModeFail {
		h.log.Info("request", "method", r.Method, "path", r.URL.Path, "behavior", summary)
		h.write(w, r, endpoint, cfg, behavior.Apply(behavior.Response{}, cfg, h.defaultDelay, nil))
		return
	}

	filename := dispositionFilename(r.Header.Get("Content-Disposition"))
	fileID, token := h.store.CreateFile(filename)

	base := locationResponse(http.StatusAccepted, "/_status/dokumentfil/"+token)
	h.log.Info("request", "method", r.Method, "path", r.URL.Path,
		"behavior", summary, "fileId", fileID, "statusId", token)
	h.write(w, r, endpoint, cfg, behavior.Apply(base, cfg, h.defaultDelay, nil))
}

func (h *Handler) handleFileGet(w http.ResponseWriter, r *http.Request) {
	const endpoint = "GET /arkiv/noark/dokumentfil/{id}"

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		h.log.Info("request", "method", r.Method, "path", r.URL.Path,
			"behavior", "default", "result", "bad_request")
		h.write(w, r, endpoint, behavior.Normal(), behavior.Response{Status: http.StatusNotFound})
		return
	}

	f, ok := h.store.GetFile(id)
	if !ok {
		h.log.Info("request", "method", r.Method, "path", r.URL.Path,
			"behavior", "default", "fileId", id, "result", "not_found")
		h.write(w, r, endpoint, behavior.Normal(), behavior.Response{Status: http.StatusNotFound})
		return
	}

	resp := jsonResponse(http.StatusOK, f).
		WithHeader("Content-Disposition", `attachment; filename=`+f.Filnavn)
	h.log.Info("request", "method", r.Method, "path", r.URL.Path,
		"behavior", "default", "fileId", id, "result", "found")
	h.write(w, r, endpoint, behavior.Normal(), resp)
}

// dispositionFilename pulls the filename out of a Content-Disposition
// header. The upload clients send the bare `filename=<name>` form.
func dispositionFilename(header string) string {
	if header == "" {
		return ""
	}
	_, after, ok := strings.Cut(header, "filename=")
	if !ok {
		return ""
	}
	return strings.Trim(strings.TrimSpace(after), `"`)
}
