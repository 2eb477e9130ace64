package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scrape(t *testing.T, m *Metrics) string {
	t.Helper()
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	return string(body)
}

func TestObserveRequest(t *testing.T) {
	t.Parallel()
	m := New()

	m.ObserveRequest("POST /arkiv/noark/sak", "default", 5*time.Millisecond)
	m.ObserveRequest("POST /arkiv/noark/sak", "default", 2*time.Millisecond)

	body := scrape(t, m)
	assert.Contains(t, body, `arkivsim_requests_total{behavior="default",endpoint="POST /arkiv/noark/sak"} 2`)
	assert.Contains(t, body, `arkivsim_request_duration_seconds_count{endpoint="POST /arkiv/noark/sak"} 2`)
}

func TestObserveOverride(t *testing.T) {
	t.Parallel()
	m := New()

	m.ObserveOverride("case-create", "TIMEOUT", true)
	m.ObserveOverride("resource:/arkiv/kodeverk/saksstatus", "EMPTY", false)

	body := scrape(t, m)
	assert.Contains(t, body, `arkivsim_behavior_overrides_total{mode="TIMEOUT",oneshot="true",target="case-create"} 1`)
	assert.Contains(t, body, `arkivsim_behavior_overrides_total{mode="EMPTY",oneshot="false",target="resource:/arkiv/kodeverk/saksstatus"} 1`)
}

func TestIndependentRegistries(t *testing.T) {
	t.Parallel()

	a := New()
	b := New()
	a.ObserveRequest("GET /health", "default", time.Millisecond)

	assert.NotContains(t, scrape(t, b), `arkivsim_requests_total{`)
}
