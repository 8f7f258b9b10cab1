package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/periodica/orbsim/internal/backend"
	"github.com/periodica/orbsim/internal/nucleus"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.MathBackend != "auto" {
		t.Errorf("expected math backend auto, got %s", cfg.MathBackend)
	}
	if cfg.VectorBackend != "auto" {
		t.Errorf("expected vector backend auto, got %s", cfg.VectorBackend)
	}
	if cfg.Tolerance <= 0 {
		t.Error("tolerance should be positive")
	}
	if cfg.Nucleus.Model != "liquid-drop" {
		t.Errorf("expected liquid-drop model, got %s", cfg.Nucleus.Model)
	}
	if cfg.Orbital.N != 1 || cfg.Orbital.L != 0 {
		t.Errorf("expected 1s default orbital, got n=%d l=%d", cfg.Orbital.N, cfg.Orbital.L)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("nuclide", "iron-56")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Nucleus.Protons != 26 || cfg.Nucleus.Neutrons != 30 {
		t.Errorf("expected 26p 30n, got %dp %dn", cfg.Nucleus.Protons, cfg.Nucleus.Neutrons)
	}
	if cfg.Nucleus.Model != "shell" {
		t.Errorf("expected shell model, got %s", cfg.Nucleus.Model)
	}

	cfg = GetPreset("orbital", "carbon-2p")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Orbital.Z != 6 || !cfg.Orbital.Screened {
		t.Errorf("expected screened Z=6, got Z=%d screened=%v", cfg.Orbital.Z, cfg.Orbital.Screened)
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("nuclide", "nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
	if cfg := GetPreset("nonexistent", "iron-56"); cfg != nil {
		t.Error("expected nil for nonexistent category")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets("nuclide")
	if len(presets) == 0 {
		t.Error("expected nuclide presets")
	}

	presets = ListPresets("orbital")
	if len(presets) == 0 {
		t.Error("expected orbital presets")
	}

	if presets := ListPresets("nonexistent"); presets != nil {
		t.Error("expected nil for nonexistent category")
	}
}

func TestLoadMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orbsim.yaml")
	body := []byte("math_backend: self-contained\nnucleus:\n  protons: 8\n  neutrons: 8\n")
	if err := os.WriteFile(path, body, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.MathBackend != "self-contained" {
		t.Errorf("expected self-contained, got %s", cfg.MathBackend)
	}
	if cfg.Nucleus.Protons != 8 {
		t.Errorf("expected 8 protons, got %d", cfg.Nucleus.Protons)
	}
	if cfg.Tolerance != DefaultTolerance {
		t.Errorf("omitted tolerance should keep default, got %g", cfg.Tolerance)
	}
	if cfg.Nucleus.R0 != DefaultR0 {
		t.Errorf("omitted r0 should keep default, got %g", cfg.Nucleus.R0)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orbsim.yaml")

	cfg := DefaultConfig()
	cfg.Seed = 99
	cfg.Orbital.N = 3
	cfg.Orbital.L = 2
	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Seed != 99 {
		t.Errorf("expected seed 99, got %d", loaded.Seed)
	}
	if loaded.Orbital.N != 3 || loaded.Orbital.L != 2 {
		t.Errorf("expected 3d orbital, got n=%d l=%d", loaded.Orbital.N, loaded.Orbital.L)
	}
}

func TestApply(t *testing.T) {
	reg := backend.New()

	cfg := DefaultConfig()
	cfg.MathBackend = "self-contained"
	if err := cfg.Apply(reg); err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	if got := reg.Current(backend.SubsystemMath); got != backend.ImplSelfContained {
		t.Errorf("expected self-contained, got %s", got)
	}

	cfg.MathBackend = ""
	if err := cfg.Apply(reg); err != nil {
		t.Errorf("empty selection should mean auto: %v", err)
	}

	cfg.MathBackend = "hardware"
	if err := cfg.Apply(reg); err == nil {
		t.Error("expected error for unknown backend name")
	}
}

func TestGenerator(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Nucleus.R0 = 1.4
	cfg.Nucleus.Shells = 5
	cfg.Nucleus.Jitter = 0.02

	g := cfg.Generator()
	if g.R0 != 1.4 {
		t.Errorf("expected r0 1.4, got %g", g.R0)
	}
	if g.ShellCount != 5 {
		t.Errorf("expected 5 shells, got %d", g.ShellCount)
	}
	if g.Jitter != 0.02 {
		t.Errorf("expected jitter 0.02, got %g", g.Jitter)
	}

	cfg.Nucleus.R0 = -1
	cfg.Nucleus.Shells = 0
	cfg.Nucleus.Jitter = 3
	g = cfg.Generator()
	if g.R0 != nucleus.DefaultR0 {
		t.Errorf("out-of-range r0 should fall back, got %g", g.R0)
	}
	if g.ShellCount != DefaultShells {
		t.Errorf("out-of-range shells should fall back, got %d", g.ShellCount)
	}
	if g.Jitter != DefaultJitter {
		t.Errorf("out-of-range jitter should fall back, got %g", g.Jitter)
	}
}
