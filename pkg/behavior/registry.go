package behavior

import (
	"sync"
	"time"
)

// Registry is the thread-safe store of per-target overrides. It keeps at
// most one persistent and one one-shot entry per target; one-shot
// consumption is atomic, so concurrent requests racing for the same entry
// see it present exactly once.
type Registry struct {
	mu         sync.Mutex
	persistent map[Target]Config
	oneShot    map[Target]Config
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		persistent: make(map[Target]Config),
		oneShot:    make(map[Target]Config),
	}
}

// Get returns the persistent override for the target. Absence yields a
// NORMAL config.
func (r *Registry) Get(target Target) Config {
	r.mu.Lock()
	defer r.mu.Unlock()
	if cfg, ok := r.persistent[target]; ok {
		return cfg
	}
	return Normal()
}

// Set stores a persistent override. Storing a NORMAL config is equivalent
// to Reset: NORMAL is never persisted.
func (r *Registry) Set(target Target, cfg Config) {
	if cfg.IsNormal() {
		r.Reset(target)
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.persistent[target] = cfg
}

// Reset clears both the persistent and one-shot entries for the target.
func (r *Registry) Reset(target Target) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.persistent, target)
	delete(r.oneShot, target)
}

// ResetAll clears every override.
func (r *Registry) ResetAll() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.persistent = make(map[Target]Config)
	r.oneShot = make(map[Target]Config)
}

// Snapshot returns a copy of all persistent overrides.
func (r *Registry) Snapshot() map[Target]Config {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[Target]Config, len(r.persistent))
	for target, cfg := range r.persistent {
		out[target] = cfg
	}
	return out
}

// ArmTimeoutOnce installs a one-shot TIMEOUT override, replacing any
// pending one-shot for the target. A zero delay falls back to the
// synthesizer's default at apply time.
func (r *Registry) ArmTimeoutOnce(target Target, delay time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.oneShot[target] = Config{Mode: ModeTimeout, Delay: delay}
}

// ArmFailOnce installs a one-shot FAIL override, replacing any pending
// one-shot for the target. A zero status falls back to a generic server
// error at apply time.
func (r *Registry) ArmFailOnce(target Target, status int, body string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.oneShot[target] = Config{Mode: ModeFail, Status: status, Body: body}
}

// ConsumeOnce atomically removes and returns the one-shot entry for the
// target. The entry is spent on the first call regardless of whether the
// caller ends up using it.
func (r *Registry) ConsumeOnce(target Target) (Config, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cfg, ok := r.oneShot[target]
	if ok {
		delete(r.oneShot, target)
	}
	return cfg, ok
}
