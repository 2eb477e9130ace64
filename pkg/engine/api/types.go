package api

import (
	"time"

	"github.com/arkivsim/arkivsim/pkg/behavior"
)

// BehaviorState is the wire form of one override. Delay travels as a Go
// duration string ("5s", "2m15s").
type BehaviorState struct {
	Mode   string `json:"mode"`
	Status int    `json:"status,omitempty"`
	Body   string `json:"body,omitempty"`
	Delay  string `json:"delay,omitempty"`
}

// SnapshotResponse lists the active persistent overrides and the catalog
// resources addressable through the resource group.
type SnapshotResponse struct {
	Behaviors map[string]BehaviorState `json:"behaviors"`
	Resources map[string]string        `json:"resources"`
}

// UpdateRequest is the PUT /internal/mock/behavior payload.
type UpdateRequest struct {
	Group    string `json:"group"`
	Mode     string `json:"mode"`
	Status   int    `json:"status,omitempty"`
	Body     string `json:"body,omitempty"`
	Delay    string `json:"delay,omitempty"`
	Resource string `json:"resource,omitempty"`
}

func stateFromConfig(cfg behavior.Config) BehaviorState {
	state := BehaviorState{
		Mode:   string(cfg.Mode),
		Status: cfg.Status,
		Body:   cfg.Body,
	}
	if cfg.Delay > 0 {
		state.Delay = cfg.Delay.String()
	}
	return state
}

func (r UpdateRequest) toConfig() (behavior.Config, error) {
	mode, err := behavior.ParseMode(r.Mode)
	if err != nil {
		return behavior.Config{}, err
	}
	cfg := behavior.Config{
		Mode:   mode,
		Status: r.Status,
		Body:   r.Body,
	}
	if r.Delay != "" {
		delay, err := time.ParseDuration(r.Delay)
		if err != nil {
			return behavior.Config{}, err
		}
		cfg.Delay = delay
	}
	return cfg, nil
}
