// Package config holds engine-wide configuration: the solver command to
// spawn, how deep BMC may search, and which phases to skip. Programmatic
// construction (Default) is the primary path; Load reads an optional YAML
// file in the same shape the teacher's eval_harness model configs use.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config enumerates the four configuration values spec.md §6 names.
type Config struct {
	SolverCommand string `yaml:"solver_command"`
	// MaxBMCDepth is nil for unbounded (bounded only by induction success
	// or user interrupt, per spec.md §4.6).
	MaxBMCDepth   *int `yaml:"max_bmc_depth"`
	SkipInduction bool `yaml:"skip_induction"`
	SkipBMC       bool `yaml:"skip_bmc"`
}

// Default returns the configuration the spec names as defaults: z3,
// unbounded depth, neither phase skipped.
func Default() Config {
	return Config{SolverCommand: "z3"}
}

// Load reads a YAML config file and layers it over Default(); a missing
// solver_command in the file keeps the default "z3".
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if cfg.SolverCommand == "" {
		cfg.SolverCommand = "z3"
	}
	return cfg, nil
}

// WithMaxDepth returns a copy of cfg with MaxBMCDepth set to k.
func (c Config) WithMaxDepth(k int) Config {
	c.MaxBMCDepth = &k
	return c
}
