// Package api implements the mock admin API: the /internal/mock endpoints
// used by test suites to reset simulator state and install behavior
// overrides, plus health and metrics. It runs on its own port so override
// traffic never mixes with the simulated archive traffic.
package api
