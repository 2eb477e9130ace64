package engine

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/arkivsim/arkivsim/pkg/behavior"
)

// Errors returned by the admin controller for unresolvable targets.
var (
	ErrUnknownGroup    = errors.New("unknown behavior group")
	ErrUnknownResource = errors.New("unknown catalog resource")
)

// controller adapts Server to the api.Controller interface so the api
// package never imports the engine.
type controller struct {
	s *Server
}

func newController(s *Server) *controller {
	return &controller{s: s}
}

// ResetAll drops all simulator state: cases, files, tokens and overrides.
func (c *controller) ResetAll() {
	c.s.log.Info("admin request action=reset-all")
	c.s.store.Reset()
	c.s.behaviors.ResetAll()
}

// ArmTimeoutOnce arms a one-shot timeout on a create group. An empty
// group defaults to the case create.
func (c *controller) ArmTimeoutOnce(group string, delay time.Duration) error {
	target, err := resolveOneShotTarget(group)
	if err != nil {
		return err
	}
	c.s.log.Info("admin request action=arm-timeout", "target", target, "delay", delay)
	c.s.behaviors.ArmTimeoutOnce(target, delay)
	c.s.metrics.ObserveOverride(string(target), string(behavior.ModeTimeout), true)
	return nil
}

// ArmFailOnce arms a one-shot failure on a create group.
func (c *controller) ArmFailOnce(group string, status int, body string) error {
	target, err := resolveOneShotTarget(group)
	if err != nil {
		return err
	}
	c.s.log.Info("admin request action=arm-fail",
		"target", target, "status", status, "bodyLength", len(body))
	c.s.behaviors.ArmFailOnce(target, status, body)
	c.s.metrics.ObserveOverride(string(target), string(behavior.ModeFail), true)
	return nil
}

// SetBehavior installs a persistent override. Changing a resource
// override also advances the resource's last-updated time so polling
// clients refetch.
func (c *controller) SetBehavior(group, resource string, cfg behavior.Config) error {
	target, resourcePath, err := c.resolveTarget(group, resource)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	c.s.log.Info("admin request action=set-behavior",
		"group", group, "resource", resource, "mode", cfg.Mode,
		"status", cfg.Status, "delay", cfg.Delay, "bodyLength", len(cfg.Body))
	c.s.behaviors.Set(target, cfg)
	if resourcePath != "" {
		c.s.store.Touch(resourcePath)
	}
	if !cfg.IsNormal() {
		c.s.metrics.ObserveOverride(string(target), string(cfg.Mode), false)
	}
	return nil
}

// ResetBehavior clears the override for one target.
func (c *controller) ResetBehavior(group, resource string) error {
	target, resourcePath, err := c.resolveTarget(group, resource)
	if err != nil {
		return err
	}
	c.s.log.Info("admin request action=reset-behavior", "group", group, "resource", resource)
	c.s.behaviors.Reset(target)
	if resourcePath != "" {
		c.s.store.Touch(resourcePath)
	}
	return nil
}

// Snapshot returns all persistent overrides.
func (c *controller) Snapshot() map[behavior.Target]behavior.Config {
	return c.s.behaviors.Snapshot()
}

// CatalogResources maps resource names to serving paths.
func (c *controller) CatalogResources() map[string]string {
	return c.s.store.CatalogResources()
}

// resolveTarget maps an admin group (plus resource reference for the
// resource group) to a registry target. The second return value is the
// catalog path for resource targets, "" otherwise.
func (c *controller) resolveTarget(group, resource string) (behavior.Target, string, error) {
	switch strings.ToLower(strings.TrimSpace(group)) {
	case "case", "case-create":
		return behavior.TargetCaseCreate, "", nil
	case "journalpost", "journalpost-create":
		return behavior.TargetJournalpostCreate, "", nil
	case "file", "file-create":
		return behavior.TargetFileCreate, "", nil
	case "query", "case-query":
		return behavior.TargetCaseQuery, "", nil
	case "resource", "resources":
		path, ok := c.s.store.ResolveCatalogPath(resource)
		if !ok {
			return "", "", fmt.Errorf("%w %q", ErrUnknownResource, resource)
		}
		return behavior.ResourceTarget(path), path, nil
	default:
		return "", "", fmt.Errorf("%w %q: use case, journalpost, file, query, or resource", ErrUnknownGroup, group)
	}
}

// resolveOneShotTarget maps an arming group to a create target. Only the
// three create operations are armable; queries and catalog reads take
// persistent overrides instead.
func resolveOneShotTarget(group string) (behavior.Target, error) {
	normalized := strings.ToLower(strings.TrimSpace(group))
	if normalized == "" {
		normalized = "case"
	}
	switch normalized {
	case "case", "case-create", "sak":
		return behavior.TargetCaseCreate, nil
	case "journalpost", "journalpost-create":
		return behavior.TargetJournalpostCreate, nil
	case "file", "file-create", "dokumentfil":
		return behavior.TargetFileCreate, nil
	default:
		return "", fmt.Errorf("%w %q: use case, journalpost, or file/dokumentfil", ErrUnknownGroup, group)
	}
}
