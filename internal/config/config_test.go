package config

import (
	"math"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Nx != 81 {
		t.Errorf("expected nx 81, got %d", cfg.Nx)
	}
	if cfg.Length != 2.0 {
		t.Errorf("expected length 2.0, got %f", cfg.Length)
	}
	if cfg.Dt <= 0 {
		t.Error("dt should be positive")
	}
	if cfg.Steps != 25 {
		t.Errorf("expected 25 steps, got %d", cfg.Steps)
	}
}

func TestDxAndCourant(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Dx() != 0.025 {
		t.Errorf("expected dx 0.025, got %f", cfg.Dx())
	}
	if math.Abs(cfg.Courant()-1.0) > 1e-15 {
		t.Errorf("reference case should sit at courant 1, got %f", cfg.Courant())
	}

	cfg.Nx = 1
	if cfg.Dx() != cfg.Length {
		t.Errorf("single-point grid should fall back to length, got %f", cfg.Dx())
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("step-hat")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Nx != 81 || cfg.Steps != 25 {
		t.Errorf("unexpected reference preset: nx=%d steps=%d", cfg.Nx, cfg.Steps)
	}

	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets()
	if len(presets) == 0 {
		t.Error("expected presets")
	}
}

func TestUnstablePreset(t *testing.T) {
	cfg := GetPreset("unstable")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Courant() <= 1 {
		t.Errorf("unstable preset should exceed courant 1, got %f", cfg.Courant())
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "case.yaml")

	want := DefaultConfig()
	want.Nx = 201
	want.Dt = 0.005
	want.InitialCondition = "gaussian"
	want.Boundary = "clamp"

	if err := Save(path, want); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if *got != *want {
		t.Errorf("roundtrip mismatch: got %+v, want %+v", got, want)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
