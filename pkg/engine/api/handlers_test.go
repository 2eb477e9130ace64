package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arkivsim/arkivsim/pkg/behavior"
)

// fakeController records admin calls for assertion.
type fakeController struct {
	resets       int
	armedTimeout []struct {
		group string
		delay time.Duration
	}
	armedFail []struct {
		group  string
		status int
		body   string
	}
	set []struct {
		group, resource string
		cfg             behavior.Config
	}
	cleared   []string
	failWith  error
	snapshot  map[behavior.Target]behavior.Config
	resources map[string]string
}

func (f *fakeController) ResetAll() { f.resets++ }

func (f *fakeController) ArmTimeoutOnce(group string, delay time.Duration) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.armedTimeout = append(f.armedTimeout, struct {
		group string
		delay time.Duration
	}{group, delay})
	return nil
}

func (f *fakeController) ArmFailOnce(group string, status int, body string) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.armedFail = append(f.armedFail, struct {
		group  string
		status int
		body   string
	}{group, status, body})
	return nil
}

func (f *fakeController) SetBehavior(group, resource string, cfg behavior.Config) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.set = append(f.set, struct {
		group, resource string
		cfg             behavior.Config
	}{group, resource, cfg})
	return nil
}

func (f *fakeController) ResetBehavior(group, resource string) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.cleared = append(f.cleared, group+"/"+resource)
	return nil
}

func (f *fakeController) Snapshot() map[behavior.Target]behavior.Config {
	return f.snapshot
}

func (f *fakeController) CatalogResources() map[string]string {
	return f.resources
}

func do(t *testing.T, srv *Server, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHandleReset(t *testing.T) {
	t.Parallel()
	ctrl := &fakeController{}
	srv := NewServer(ctrl, 0, nil)

	rec := do(t, srv, http.MethodPost, "/internal/mock/reset", "")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, 1, ctrl.resets)
}

func TestHandleArmTimeout(t *testing.T) {
	t.Parallel()

	t.Run("with group and delay", func(t *testing.T) {
		ctrl := &fakeController{}
		srv := NewServer(ctrl, 0, nil)

		rec := do(t, srv, http.MethodPost, "/internal/mock/arm-timeout?group=file&delay=3s", "")

		assert.Equal(t, http.StatusNoContent, rec.Code)
		require.Len(t, ctrl.armedTimeout, 1)
		assert.Equal(t, "file", ctrl.armedTimeout[0].group)
		assert.Equal(t, 3*time.Second, ctrl.armedTimeout[0].delay)
	})

	t.Run("defaults to empty group", func(t *testing.T) {
		ctrl := &fakeController{}
		srv := NewServer(ctrl, 0, nil)

		rec := do(t, srv, http.MethodPost, "/internal/mock/arm-timeout", "")

		assert.Equal(t, http.StatusNoContent, rec.Code)
		require.Len(t, ctrl.armedTimeout, 1)
		assert.Empty(t, ctrl.armedTimeout[0].group)
		assert.Zero(t, ctrl.armedTimeout[0].delay)
	})

	t.Run("bad delay", func(t *testing.T) {
		ctrl := &fakeController{}
		srv := NewServer(ctrl, 0, nil)

		rec := do(t, srv, http.MethodPost, "/internal/mock/arm-timeout?delay=soon", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Empty(t, ctrl.armedTimeout)
	})

	t.Run("unknown group", func(t *testing.T) {
		ctrl := &fakeController{failWith: errors.New("unknown behavior group")}
		srv := NewServer(ctrl, 0, nil)

		rec := do(t, srv, http.MethodPost, "/internal/mock/arm-timeout?group=query", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandleArmFail(t *testing.T) {
	t.Parallel()
	ctrl := &fakeController{}
	srv := NewServer(ctrl, 0, nil)

	rec := do(t, srv, http.MethodPost, "/internal/mock/arm-fail?group=case&status=503&body=nope", "")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	require.Len(t, ctrl.armedFail, 1)
	assert.Equal(t, 503, ctrl.armedFail[0].status)
	assert.Equal(t, "nope", ctrl.armedFail[0].body)

	rec = do(t, srv, http.MethodPost, "/internal/mock/arm-fail?status=abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleGetBehavior(t *testing.T) {
	t.Parallel()
	ctrl := &fakeController{
		snapshot: map[behavior.Target]behavior.Config{
			behavior.TargetCaseCreate: {Mode: behavior.ModeTimeout, Delay: 5 * time.Second},
		},
		resources: map[string]string{"saksstatus": "/arkiv/kodeverk/saksstatus"},
	}
	srv := NewServer(ctrl, 0, nil)

	rec := do(t, srv, http.MethodGet, "/internal/mock/behavior", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp SnapshotResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "TIMEOUT", resp.Behaviors["case-create"].Mode)
	assert.Equal(t, "5s", resp.Behaviors["case-create"].Delay)
	assert.Equal(t, "/arkiv/kodeverk/saksstatus", resp.Resources["saksstatus"])
}

func TestHandlePutBehavior(t *testing.T) {
	t.Parallel()

	t.Run("valid request", func(t *testing.T) {
		ctrl := &fakeController{}
		srv := NewServer(ctrl, 0, nil)

		rec := do(t, srv, http.MethodPut, "/internal/mock/behavior",
			`{"group":"resource","resource":"saksstatus","mode":"empty"}`)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		require.Len(t, ctrl.set, 1)
		assert.Equal(t, "resource", ctrl.set[0].group)
		assert.Equal(t, "saksstatus", ctrl.set[0].resource)
		assert.Equal(t, behavior.ModeEmpty, ctrl.set[0].cfg.Mode)
	})

	t.Run("delay string parsed", func(t *testing.T) {
		ctrl := &fakeController{}
		srv := NewServer(ctrl, 0, nil)

		rec := do(t, srv, http.MethodPut, "/internal/mock/behavior",
			`{"group":"case","mode":"TIMEOUT","delay":"45s"}`)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		require.Len(t, ctrl.set, 1)
		assert.Equal(t, 45*time.Second, ctrl.set[0].cfg.Delay)
	})

	t.Run("malformed body", func(t *testing.T) {
		ctrl := &fakeController{}
		srv := NewServer(ctrl, 0, nil)

		rec := do(t, srv, http.MethodPut, "/internal/mock/behavior", `{"group":`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown mode", func(t *testing.T) {
		ctrl := &fakeController{}
		srv := NewServer(ctrl, 0, nil)

		rec := do(t, srv, http.MethodPut, "/internal/mock/behavior",
			`{"group":"case","mode":"CHAOS"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Empty(t, ctrl.set)
	})

	t.Run("controller rejection", func(t *testing.T) {
		ctrl := &fakeController{failWith: errors.New("unknown catalog resource")}
		srv := NewServer(ctrl, 0, nil)

		rec := do(t, srv, http.MethodPut, "/internal/mock/behavior",
			`{"group":"resource","resource":"nope","mode":"FAIL"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandleDeleteBehavior(t *testing.T) {
	t.Parallel()

	t.Run("clears target", func(t *testing.T) {
		ctrl := &fakeController{}
		srv := NewServer(ctrl, 0, nil)

		rec := do(t, srv, http.MethodDelete, "/internal/mock/behavior?group=query", "")

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, []string{"query/"}, ctrl.cleared)
	})

	t.Run("requires group", func(t *testing.T) {
		ctrl := &fakeController{}
		srv := NewServer(ctrl, 0, nil)

		rec := do(t, srv, http.MethodDelete, "/internal/mock/behavior", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandleHealth(t *testing.T) {
	t.Parallel()
	srv := NewServer(&fakeController{}, 0, nil)

	rec := do(t, srv, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "healthy")
}
