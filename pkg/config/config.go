// Package config holds the simulator's runtime configuration. Values come
// from defaults, an optional YAML file, and ARKIVSIM_* environment
// variables, applied in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// ErrFileNotFound is returned by Load when the config file does not exist.
var ErrFileNotFound = errors.New("configuration file not found")

// Config is the simulator's full configuration.
type Config struct {
	// SimulatorPort serves the archive endpoints.
	SimulatorPort int `yaml:"simulatorPort" env:"ARKIVSIM_SIMULATOR_PORT"`

	// AdminPort serves the mock admin API, health and metrics.
	AdminPort int `yaml:"adminPort" env:"ARKIVSIM_ADMIN_PORT"`

	LogLevel  string `yaml:"logLevel" env:"ARKIVSIM_LOG_LEVEL"`
	LogFormat string `yaml:"logFormat" env:"ARKIVSIM_LOG_FORMAT"`

	// PostCaseTimeout mirrors the client's case-creation timeout. Together
	// with TimeoutBuffer it sets the default injected delay, long enough
	// that the client gives up first.
	PostCaseTimeout Duration `yaml:"postCaseTimeout" env:"ARKIVSIM_POST_CASE_TIMEOUT"`
	TimeoutBuffer   Duration `yaml:"timeoutBuffer" env:"ARKIVSIM_TIMEOUT_BUFFER"`

	ReadTimeout  Duration `yaml:"readTimeout" env:"ARKIVSIM_READ_TIMEOUT"`
	WriteTimeout Duration `yaml:"writeTimeout" env:"ARKIVSIM_WRITE_TIMEOUT"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		SimulatorPort:   9090,
		AdminPort:       8080,
		LogLevel:        "info",
		LogFormat:       "text",
		PostCaseTimeout: Duration(130 * time.Second),
		TimeoutBuffer:   Duration(5 * time.Second),
		ReadTimeout:     Duration(30 * time.Second),
		// Injected delays exceed two minutes, so writes must be allowed to
		// outlast the default delay.
		WriteTimeout: Duration(0),
	}
}

// DefaultDelay is the latency injected for timeout behaviors that carry no
// explicit delay.
func (c Config) DefaultDelay() time.Duration {
	return c.PostCaseTimeout.Std() + c.TimeoutBuffer.Std()
}

// Validate checks the configuration for values that cannot work.
func (c Config) Validate() error {
	if c.SimulatorPort < 1 || c.SimulatorPort > 65535 {
		return fmt.Errorf("invalid simulator port %d", c.SimulatorPort)
	}
	if c.AdminPort < 1 || c.AdminPort > 65535 {
		return fmt.Errorf("invalid admin port %d", c.AdminPort)
	}
	if c.SimulatorPort == c.AdminPort {
		return fmt.Errorf("simulator and admin port both set to %d", c.SimulatorPort)
	}
	if c.PostCaseTimeout <= 0 {
		return errors.New("postCaseTimeout must be positive")
	}
	if c.TimeoutBuffer < 0 {
		return errors.New("timeoutBuffer must not be negative")
	}
	return nil
}

// Load overlays the YAML file at path onto the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// FromEnv overlays ARKIVSIM_* environment variables onto cfg.
func FromEnv(cfg Config) (Config, error) {
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}
