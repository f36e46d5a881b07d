// Package netconfig defines this engine's host-level configuration: CLI
// defaults, resilience weighting, and the capacity-missing policy
// SPEC_FULL.md's Open-Question resolutions call out as host-tunable.
//
// Grounded on jhkimqd-chaos-utils/pkg/config/config.go: a plain struct tree
// with yaml tags, defaults filled in code, loaded with yaml.v3 and no
// env/flag layering framework.
package netconfig

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ResilienceWeights are the sub-score weights spec.md §4.5 fixes at
// 0.4/0.3/0.3; exposed here so a host can re-tune without a code change.
type ResilienceWeights struct {
	Redundancy float64 `yaml:"redundancy"`
	Diversity  float64 `yaml:"diversity"`
	Capacity   float64 `yaml:"capacity"`
}

// DefaultResilienceWeights returns the weights spec.md §4.5 specifies.
func DefaultResilienceWeights() ResilienceWeights {
	return ResilienceWeights{Redundancy: 0.4, Diversity: 0.3, Capacity: 0.3}
}

// Config is this engine's top-level host configuration.
type Config struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"` // "json" or "pretty"

	// TopSPOFCount is loaded but not read by any package: resilience.TopK
	// falls back to resilience.DefaultTopK, and cmd/netplan spof's --top
	// flag defaults to reporting every SPOF.
	TopSPOFCount int `yaml:"top_spof_count"`

	// OptimizerMaxIterations is loaded but not read by optimize.Optimize,
	// whose local-search loop is capped at a fixed 100 iterations.
	OptimizerMaxIterations int `yaml:"optimizer_max_iterations"`

	// DefaultCapacityMbps is assumed when an edge carries no capacity
	// metadata (spec.md §9 open question).
	DefaultCapacityMbps float64 `yaml:"default_capacity_mbps"`

	// RejectOnMissingCapacity, when true, makes traffic.UtilizationWithConfig
	// return an error instead of substituting DefaultCapacityMbps and
	// warning. traffic.Utilization itself does not read it.
	RejectOnMissingCapacity bool `yaml:"reject_on_missing_capacity"`

	ResilienceWeights ResilienceWeights `yaml:"resilience_weights"`
}

// Default returns the configuration this engine ships with when no file is
// supplied.
func Default() Config {
	return Config{
		LogLevel:                "info",
		LogFormat:               "json",
		TopSPOFCount:            10,
		OptimizerMaxIterations:  500,
		DefaultCapacityMbps:     10000,
		RejectOnMissingCapacity: false,
		ResilienceWeights:       DefaultResilienceWeights(),
	}
}

// Load reads a YAML config file, overlaying its fields on Default(). A
// missing file is not an error; Load simply returns the default.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("netconfig: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("netconfig: parse %s: %w", path, err)
	}
	return cfg, nil
}
