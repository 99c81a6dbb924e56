// Package config provides the configuration loader for runviz.
package config

import (
	"errors"
	"io/fs"
	"os"
	"sync/atomic"
	"time"

	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the configuration file read when no override is set.
const DefaultPath = "runviz.yaml"

// Config holds all runviz configuration.
type Config struct {
	// LogsDir is the directory containing one subdirectory per run.
	LogsDir string `yaml:"logs_dir"`

	// Listen is the HTTP listen address.
	Listen string `yaml:"listen"`

	Leases   LeaseConfig    `yaml:"leases"`
	Sampling SamplingConfig `yaml:"sampling"`
}

// LeaseConfig holds the two lease durations. They are independent
// knobs: the template lease throttles switch attempts, the reload
// lease throttles staleness checks.
type LeaseConfig struct {
	TemplateSeconds int `yaml:"template_seconds"`
	ReloadSeconds   int `yaml:"reload_seconds"`
}

// Template returns the template-switch lease duration.
func (l LeaseConfig) Template() time.Duration {
	return time.Duration(l.TemplateSeconds) * time.Second
}

// Reload returns the reload-check lease duration.
func (l LeaseConfig) Reload() time.Duration {
	return time.Duration(l.ReloadSeconds) * time.Second
}

// SamplingConfig caps the point counts returned to the front-end.
type SamplingConfig struct {
	Points   int `yaml:"points"`
	TaskBars int `yaml:"task_bars"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		LogsDir: "logs",
		Listen:  "127.0.0.1:9122",
		Leases: LeaseConfig{
			TemplateSeconds: 60,
			ReloadSeconds:   180,
		},
		Sampling: SamplingConfig{
			Points:   100000,
			TaskBars: 100000,
		},
	}
}

// Load reads the configuration file at path. A missing file yields the
// defaults; fields absent from the file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by the operator
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, zerr.With(zerr.Wrap(err, "failed to read config file"), "path", path)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, zerr.With(zerr.Wrap(err, "failed to parse config file"), "path", path)
	}
	return cfg, nil
}

// pathOverride is set by the CLI before the dependency graph executes;
// the config node cannot take parameters.
var pathOverride atomic.Value

// SetPath overrides the configuration file the node loads.
func SetPath(path string) {
	pathOverride.Store(path)
}

// Path returns the configuration file to load: the CLI override, then
// the RUNVIZ_CONFIG environment variable, then DefaultPath.
func Path() string {
	if p, ok := pathOverride.Load().(string); ok && p != "" {
		return p
	}
	if p := os.Getenv("RUNVIZ_CONFIG"); p != "" {
		return p
	}
	return DefaultPath
}
