// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/user/linepipe/pkg/orchestrator"
)

// Config represents the full configuration for linepipe.
type Config struct {
	// Capacity is the bounded size of every buffer between stages.
	Capacity int `yaml:"capacity"`

	// Stages maps stage names to opaque config strings handed to the
	// stage factory, e.g. a replacement literal for prefix/suffix.
	Stages map[string]string `yaml:"stages"`

	// Logging
	LogLevel string `yaml:"log_level"`
	Quiet    bool   `yaml:"quiet"`

	// Summary enables the end-of-run diagnostic summary.
	Summary bool `yaml:"summary"`
}

// Defaults returns a Config with default values.
func Defaults() Config {
	return Config{
		Capacity: 100,
		LogLevel: "info",
	}
}

// LoadFromFile loads configuration from a YAML file on top of the
// defaults.
func LoadFromFile(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}

	if cfg.Capacity < 1 {
		return cfg, fmt.Errorf("%s: capacity must be at least 1, got %d", path, cfg.Capacity)
	}

	return cfg, nil
}

// ToOrchestratorConfig converts Config plus the ordered stage names
// from the command line into an orchestrator.Config.
func (c Config) ToOrchestratorConfig(stageNames []string) orchestrator.Config {
	return orchestrator.Config{
		Stages:       stageNames,
		StageConfigs: c.Stages,
		Capacity:     c.Capacity,
	}
}
