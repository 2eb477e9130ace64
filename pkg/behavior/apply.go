package behavior

import (
	"fmt"
	"net/http"
	"time"
)

// Response is the synthesizer's unit of work: what an endpoint would send,
// plus any latency to apply before writing it.
type Response struct {
	Status int
	Header http.Header
	Body   []byte
	Delay  time.Duration
}

// WithHeader returns a copy of the response with the header set.
func (r Response) WithHeader(name, value string) Response {
	h := make(http.Header, len(r.Header)+1)
	for k, v := range r.Header {
		h[k] = v
	}
	h.Set(name, value)
	r.Header = h
	return r
}

// Apply synthesizes the final response from the normal one under the
// effective config. The config must already be resolved (one-shot vs
// persistent); Apply knows nothing about precedence.
//
//   - NORMAL: the normal response, unchanged.
//   - EMPTY: the empty fallback when supplied, else the normal response.
//   - FAIL: the configured status (default 500) and body (default empty).
//   - TIMEOUT: the normal response with added latency (config delay, or
//     defaultDelay when unset).
func Apply(normal Response, cfg Config, defaultDelay time.Duration, empty func() Response) Response {
	switch cfg.Mode {
	case ModeEmpty:
		if empty != nil {
			return empty()
		}
		return normal
	case ModeFail:
		status := cfg.Status
		if status == 0 {
			status = http.StatusInternalServerError
		}
		return Response{
			Status: status,
			Header: normal.Header,
			Body:   []byte(cfg.Body),
		}
	case ModeTimeout:
		delay := cfg.Delay
		if delay == 0 {
			delay = defaultDelay
		}
		normal.Delay += delay
		return normal
	default:
		return normal
	}
}

// Summary renders a short log label for the effective config.
func Summary(cfg Config, defaultDelay time.Duration) string {
	switch cfg.Mode {
	case ModeFail:
		status := cfg.Status
		if status == 0 {
			status = http.StatusInternalServerError
		}
		return fmt.Sprintf("mocked:fail status=%d bodyLength=%d", status, len(cfg.Body))
	case ModeTimeout:
		delay := cfg.Delay
		if delay == 0 {
			delay = defaultDelay
		}
		return fmt.Sprintf("mocked:timeout delay=%s", delay)
	case ModeEmpty:
		return "mocked:empty"
	default:
		return "default"
	}
}
