package engine

import (
	"fmt"
	"net/http"

	"github.com/arkivsim/arkivsim/pkg/behavior"
	"github.com/arkivsim/arkivsim/pkg/noark"
)

// catalogHandler serves a seeded catalog collection. Resource overrides
// are persistent only; FAIL replaces the response, EMPTY yields an empty
// collection. The sinceTimeStamp query parameter is accepted and ignored,
// clients poll but the seed set never changes except via Touch.
func (h *Handler) catalogHandler(path string) http.HandlerFunc {
	endpoint := "GET " + path
	target := behavior.ResourceTarget(path)

	return func(w http.ResponseWriter, r *http.Request) {
		cfg := h.behaviors.Get(target)
		summary := behavior.Summary(cfg, h.defaultDelay)

		if cfg.Mode == behavior.ModeFail {
			h.log.Info("request", "method", r.Method, "path", path, "behavior", summary)
			h.write(w, r, endpoint, cfg, behavior.Apply(behavior.Response{}, cfg, h.defaultDelay, nil))
			return
		}

		items, ok := h.store.Catalog(path)
		if !ok {
			items = nil
		}
		base := jsonResponse(http.StatusOK, noark.NewCollection(items))

		h.log.Info("request", "method", r.Method, "path", path, "behavior", summary)
		h.write(w, r, endpoint, cfg, behavior.Apply(base, cfg, h.defaultDelay, emptyCollectionResponse))
	}
}

// lastUpdatedHandler reports the catalog path's last-updated time in epoch
// milliseconds. No behavior override applies, clients use it to decide
// whether to refetch.
func (h *Handler) lastUpdatedHandler(path string) http.HandlerFunc {
	endpoint := "GET " + path + "/last-updated"

	return func(w http.ResponseWriter, r *http.Request) {
		millis := h.store.LastUpdated(path).UnixMilli()
		body := fmt.Sprintf(`{"lastUpdated":%d}`, millis)

		resp := behavior.Response{
			Status: http.StatusOK,
			Header: http.Header{"Content-Type": []string{"application/json"}},
			Body:   []byte(body),
		}
		h.log.Info("request", "method", r.Method, "path", r.URL.Path,
			"behavior", "default", "resourcePath", path)
		h.write(w, r, endpoint, behavior.Normal(), resp)
	}
}
