// Package behavior holds the override configuration that steers how the
// simulator answers requests. Operators arm overrides per target: either
// persistently (until reset) or one-shot (consumed by the next matching
// request). The package also provides the precedence resolver and the
// response synthesizer shared by every endpoint handler.
package behavior
