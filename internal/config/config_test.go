package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/beamphys/beamgen/internal/beam"
	"github.com/beamphys/beamgen/internal/phasespace"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Species != "proton" {
		t.Errorf("expected species proton, got %s", cfg.Species)
	}
	if cfg.Particles <= 0 {
		t.Error("particle count should be positive")
	}
	if cfg.Source != "twiss" {
		t.Errorf("expected twiss source, got %s", cfg.Source)
	}
	if _, ok := cfg.Twiss["EMITX"]; !ok {
		t.Error("default twiss block should carry EMITX")
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "beam.yaml")
	if err := os.WriteFile(path, []byte("particles: 50\nseed: 9\n"), 0644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Particles != 50 {
		t.Errorf("expected 50 particles, got %d", cfg.Particles)
	}
	if cfg.Seed != 9 {
		t.Errorf("expected seed 9, got %d", cfg.Seed)
	}
	if cfg.Species != "proton" {
		t.Errorf("expected defaulted species, got %s", cfg.Species)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "beam.yaml")
	cfg := DefaultConfig()
	cfg.Species = "electron"
	cfg.Momentum = 100
	cfg.Twiss["BETAX"] = 3.5

	if err := Save(path, cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	back, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if back.Species != "electron" || back.Momentum != 100 {
		t.Errorf("round trip lost fields: %+v", back)
	}
	if back.Twiss["BETAX"] != 3.5 {
		t.Errorf("expected BETAX 3.5, got %f", back.Twiss["BETAX"])
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("proton", "injection")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Twiss["BETAX"] != 5.6 {
		t.Errorf("expected betax 5.6, got %f", cfg.Twiss["BETAX"])
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("proton", "nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
	if cfg := GetPreset("nonexistent", "injection"); cfg != nil {
		t.Error("expected nil for nonexistent species")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets("proton")
	if len(presets) == 0 {
		t.Error("expected presets for proton")
	}
	for i := 1; i < len(presets); i++ {
		if presets[i-1] >= presets[i] {
			t.Errorf("expected sorted preset names, got %v", presets)
		}
	}

	if presets := ListPresets("nonexistent"); presets != nil {
		t.Error("expected nil for nonexistent species")
	}
}

func TestAllPresetsBuild(t *testing.T) {
	for species, group := range Presets {
		for name, preset := range group {
			cfg := preset.Clone()
			cfg.Seed = 1
			cfg.Particles = 50

			b, err := cfg.Build()
			if err != nil {
				t.Errorf("preset %s/%s failed to build: %v", species, name, err)
				continue
			}
			if b.Particles() != 50 {
				t.Errorf("preset %s/%s built %d particles", species, name, b.Particles())
			}
		}
	}
}

func TestBuildDeterministicWithSeed(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 42
	cfg.Particles = 20

	a, err := cfg.Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := cfg.Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for j := 0; j < 5; j++ {
		if a.Distribution().At(0, j) != b.Distribution().At(0, j) {
			t.Fatalf("seeded builds diverged at column %d", j)
		}
	}
}

func TestBuildFromFile(t *testing.T) {
	rows := [][]float64{{1, 0, 0, 0, 0}, {2, 0, 0, 0, 0}, {3, 0, 0, 0, 0}}
	tb, err := phasespace.FromRows(rows)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	path := filepath.Join(t.TempDir(), "dist.csv")
	if err := tb.WriteCSVFile(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cfg := DefaultConfig()
	cfg.Source = "file"
	cfg.File = FileConfig{Path: path}

	b, err := cfg.Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Particles() != 3 {
		t.Errorf("expected whole file, got %d particles", b.Particles())
	}

	cfg.File.Rows = 2
	b, err = cfg.Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Particles() != 2 {
		t.Errorf("expected truncation to 2 particles, got %d", b.Particles())
	}
}

func TestBuildEmptySource(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Source = "none"

	b, err := cfg.Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !b.Empty() {
		t.Error("expected an empty beam")
	}
}

func TestBuildErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Species = "unobtainium"
	if _, err := cfg.Build(); err == nil {
		t.Error("expected error for unknown species")
	}

	cfg = DefaultConfig()
	cfg.Source = "quantum"
	if _, err := cfg.Build(); err == nil {
		t.Error("expected error for unknown source")
	}

	cfg = DefaultConfig()
	delete(cfg.Twiss, "EMITX")
	if _, err := cfg.Build(); !errors.Is(err, beam.ErrMissingEmittance) {
		t.Errorf("expected ErrMissingEmittance, got %v", err)
	}
}

func TestClone(t *testing.T) {
	cfg := DefaultConfig()
	clone := cfg.Clone()
	clone.Twiss["EMITX"] = 99
	clone.Species = "muon"

	if cfg.Twiss["EMITX"] == 99 {
		t.Error("expected clone to own its twiss map")
	}
	if cfg.Species != "proton" {
		t.Error("expected original untouched")
	}
}
