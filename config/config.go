// Package config provides configuration loading and access for the simulation.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulation configuration parameters.
type Config struct {
	Simulation SimulationConfig `yaml:"simulation"`
	Telemetry  TelemetryConfig  `yaml:"telemetry"`
	Screen     ScreenConfig     `yaml:"screen"`
}

// SimulationConfig holds the parameters of one breeding run.
type SimulationConfig struct {
	Length          int     `yaml:"length"`           // Steps to run
	StartPop        int     `yaml:"start_pop"`        // Organisms seeded at step 0
	Mutation        float64 `yaml:"mutation"`         // Mutation probability of the seed organisms
	StartN2         float64 `yaml:"start_n2"`         // Initial nitrogen concentration
	StartCO2        float64 `yaml:"start_co2"`        // Initial carbon dioxide concentration
	ChangeFrequency int     `yaml:"change_frequency"` // Perturb the atmosphere every N steps
	Seed            int64   `yaml:"seed"`             // RNG seed (0 = time-based)
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	LogStats bool `yaml:"log_stats"` // Log every step via slog
}

// ScreenConfig holds display settings for the chart window.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	cp := *c
	return &cp
}

// Validate checks that the simulation parameters describe a runnable simulation.
func (c *Config) Validate() error {
	s := c.Simulation
	var errs []error

	if s.Length < 1 {
		errs = append(errs, fmt.Errorf("simulation.length must be >= 1, got %d", s.Length))
	}
	if s.StartPop < 0 {
		errs = append(errs, fmt.Errorf("simulation.start_pop must be >= 0, got %d", s.StartPop))
	}
	if s.Mutation < 0 || s.Mutation > 1 {
		errs = append(errs, fmt.Errorf("simulation.mutation must be in [0, 1], got %v", s.Mutation))
	}
	if s.StartN2 < 0 || s.StartN2 > 1 {
		errs = append(errs, fmt.Errorf("simulation.start_n2 must be in [0, 1], got %v", s.StartN2))
	}
	if s.StartCO2 < 0 || s.StartCO2 > 1 {
		errs = append(errs, fmt.Errorf("simulation.start_co2 must be in [0, 1], got %v", s.StartCO2))
	}
	if s.StartN2+s.StartCO2 > 1 {
		errs = append(errs, fmt.Errorf("simulation.start_n2 + start_co2 must be <= 1, got %v", s.StartN2+s.StartCO2))
	}
	if s.ChangeFrequency < 1 {
		errs = append(errs, fmt.Errorf("simulation.change_frequency must be >= 1, got %d", s.ChangeFrequency))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
