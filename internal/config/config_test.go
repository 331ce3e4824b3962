package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.SolverCommand != "z3" {
		t.Errorf("default solver command = %q, want z3", cfg.SolverCommand)
	}
	if cfg.MaxBMCDepth != nil {
		t.Error("default MaxBMCDepth should be unbounded (nil)")
	}
}

func TestWithMaxDepth(t *testing.T) {
	cfg := Default().WithMaxDepth(10)
	if cfg.MaxBMCDepth == nil || *cfg.MaxBMCDepth != 10 {
		t.Errorf("expected MaxBMCDepth=10, got %v", cfg.MaxBMCDepth)
	}
}

func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mikino.yaml")
	content := "solver_command: cvc5\nmax_bmc_depth: 5\nskip_induction: true\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.SolverCommand != "cvc5" {
		t.Errorf("solver_command = %q, want cvc5", cfg.SolverCommand)
	}
	if cfg.MaxBMCDepth == nil || *cfg.MaxBMCDepth != 5 {
		t.Errorf("max_bmc_depth = %v, want 5", cfg.MaxBMCDepth)
	}
	if !cfg.SkipInduction {
		t.Error("skip_induction should be true")
	}
	if cfg.SkipBMC {
		t.Error("skip_bmc should default false")
	}
}
