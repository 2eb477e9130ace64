// Package engine serves the simulated archive API: the asynchronous case,
// journal entry and file lifecycles, the case query endpoint, and the
// seeded catalog collections. Responses pass through the behavior layer so
// tests can inject failures, latency and empty results per target.
package engine
