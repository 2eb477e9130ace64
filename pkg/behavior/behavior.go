package behavior

import (
	"fmt"
	"strings"
	"time"
)

// Mode selects how a response is synthesized for an overridden target.
type Mode string

const (
	// ModeNormal passes the normal response through. Never stored: setting
	// a NORMAL config clears the override instead.
	ModeNormal Mode = "NORMAL"
	// ModeFail replaces the response with a configured failure.
	ModeFail Mode = "FAIL"
	// ModeTimeout delays the normal response, simulating an unresponsive
	// upstream. Status and body are untouched.
	ModeTimeout Mode = "TIMEOUT"
	// ModeEmpty substitutes the endpoint's empty fallback, where one exists.
	ModeEmpty Mode = "EMPTY"
)

// ParseMode parses a mode name, case-insensitively.
func ParseMode(s string) (Mode, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "NORMAL", "":
		return ModeNormal, nil
	case "FAIL":
		return ModeFail, nil
	case "TIMEOUT":
		return ModeTimeout, nil
	case "EMPTY":
		return ModeEmpty, nil
	default:
		return "", fmt.Errorf("unknown behavior mode %q", s)
	}
}

// Target identifies what an override applies to: a lifecycle operation or
// a catalog resource path.
type Target string

// Lifecycle operation targets.
const (
	TargetCaseCreate        Target = "case-create"
	TargetJournalpostCreate Target = "journalpost-create"
	TargetFileCreate        Target = "file-create"
	TargetCaseQuery         Target = "case-query"
)

const resourcePrefix = "resource:"

// ResourceTarget builds the target for a catalog resource path.
func ResourceTarget(path string) Target {
	return Target(resourcePrefix + path)
}

// ResourcePath returns the catalog path for a resource target, or false
// for operation targets.
func (t Target) ResourcePath() (string, bool) {
	if !strings.HasPrefix(string(t), resourcePrefix) {
		return "", false
	}
	return strings.TrimPrefix(string(t), resourcePrefix), true
}

// Config describes one override. Only the fields relevant to the mode are
// meaningful: Status and Body for FAIL, Delay for TIMEOUT. A NORMAL config
// carries nothing.
type Config struct {
	Mode   Mode
	Status int
	Body   string
	Delay  time.Duration
}

// Normal is the zero override: pass the response through unchanged.
func Normal() Config {
	return Config{Mode: ModeNormal}
}

// IsNormal reports whether the config performs no override. The zero
// value counts as normal.
func (c Config) IsNormal() bool {
	return c.Mode == ModeNormal || c.Mode == ""
}

// Validate checks mode-dependent field consistency.
func (c Config) Validate() error {
	switch c.Mode {
	case ModeNormal, "":
		if c.Status != 0 || c.Body != "" || c.Delay != 0 {
			return fmt.Errorf("NORMAL config must not carry status, body or delay")
		}
	case ModeFail:
		if c.Status != 0 && (c.Status < 100 || c.Status > 599) {
			return fmt.Errorf("FAIL status %d out of range", c.Status)
		}
	case ModeTimeout, ModeEmpty:
		// Delay is optional for TIMEOUT; EMPTY carries nothing extra.
	default:
		return fmt.Errorf("unknown behavior mode %q", c.Mode)
	}
	return nil
}

// Resolve returns the effective config given the persistent override and a
// pending one-shot. The one-shot governs only while the persistent config
// is NORMAL; an explicit persistent override always wins. Callers must
// have consumed the one-shot before resolving: it is spent either way.
func Resolve(persistent Config, oneShot Config, hasOneShot bool) Config {
	if hasOneShot && persistent.IsNormal() {
		return oneShot
	}
	return persistent
}
