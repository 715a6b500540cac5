// control/config.go
// Author: momentics <momentics@gmail.com>
//
// TOML configuration of named pools and the instruments observing them.

package control

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Default configuration values
const (
	DefaultMetricsNamespace = "hioload_pool"
	DefaultHistoryDepth     = 256
	DefaultLogLevel         = "info"
)

// Observer names accepted in PoolConfig.Observers.
const (
	ObserverLog        = "log"
	ObserverMetrics    = "metrics"
	ObserverPrometheus = "prometheus"
	ObserverHistory    = "history"
)

var knownObservers = map[string]bool{
	ObserverLog:        true,
	ObserverMetrics:    true,
	ObserverPrometheus: true,
	ObserverHistory:    true,
}

// Config holds the configuration of a set of pools.
type Config struct {
	Log     LogConfig     `toml:"log"`
	Metrics MetricsConfig `toml:"metrics"`
	History HistoryConfig `toml:"history"`
	Pools   []PoolConfig  `toml:"pool"`
}

// LogConfig contains logger settings.
type LogConfig struct {
	// Level is one of debug, info, warn, error
	Level string `toml:"level"`
}

// MetricsConfig contains metric export settings.
type MetricsConfig struct {
	// Namespace prefixes every Prometheus metric name
	Namespace string `toml:"namespace"`
}

// HistoryConfig contains event history settings.
type HistoryConfig struct {
	// Depth is how many of the most recent events are retained
	Depth int `toml:"depth"`
}

// PoolConfig describes one named pool.
type PoolConfig struct {
	// Name identifies the pool in the registry and in instrumentation
	Name string `toml:"name"`
	// Capacity is the number of free slots allocated up front
	Capacity int `toml:"capacity"`
	// MaxSlots caps total slots; zero means unbounded
	MaxSlots int `toml:"max_slots,omitempty"`
	// Observers lists the instruments attached to the pool
	Observers []string `toml:"observers,omitempty"`
}

// DefaultConfig returns a Config with sensible defaults and no pools.
func DefaultConfig() *Config {
	return &Config{
		Log:     LogConfig{Level: DefaultLogLevel},
		Metrics: MetricsConfig{Namespace: DefaultMetricsNamespace},
		History: HistoryConfig{Depth: DefaultHistoryDepth},
	}
}

// LoadConfig reads configuration from a TOML file.
// If the file doesn't exist, it returns the default configuration.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveConfig writes the configuration to a TOML file.
// It creates the parent directory if it doesn't exist.
func SaveConfig(cfg *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Metrics.Namespace == "" {
		return errors.New("metrics.namespace is required")
	}
	if c.History.Depth < 1 {
		return errors.New("history.depth must be at least 1")
	}
	seen := make(map[string]bool, len(c.Pools))
	for i, p := range c.Pools {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("pool[%d]: %w", i, err)
		}
		if seen[p.Name] {
			return fmt.Errorf("pool[%d]: duplicate name %q", i, p.Name)
		}
		seen[p.Name] = true
	}
	return nil
}

// Validate checks a single pool entry.
func (p PoolConfig) Validate() error {
	if p.Name == "" {
		return errors.New("name is required")
	}
	if p.Capacity < 0 {
		return errors.New("capacity must not be negative")
	}
	if p.MaxSlots < 0 {
		return errors.New("max_slots must not be negative")
	}
	if p.MaxSlots > 0 && p.MaxSlots < p.Capacity {
		return errors.New("max_slots must not be below capacity")
	}
	for _, o := range p.Observers {
		if !knownObservers[o] {
			return fmt.Errorf("unknown observer %q", o)
		}
	}
	return nil
}

// Pool returns the entry called name.
func (c *Config) Pool(name string) (PoolConfig, bool) {
	for _, p := range c.Pools {
		if p.Name == name {
			return p, true
		}
	}
	return PoolConfig{}, false
}
