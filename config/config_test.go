package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEmbeddedDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Screen.Width != 1280 || cfg.Screen.Height != 720 {
		t.Errorf("screen = %dx%d, want 1280x720", cfg.Screen.Width, cfg.Screen.Height)
	}
	if cfg.Simulation.DT <= 0 {
		t.Errorf("dt = %v, want positive", cfg.Simulation.DT)
	}
	if len(cfg.Population.Species) == 0 {
		t.Fatal("defaults must define a species table")
	}
	if len(cfg.Narrative.Prompts) != 3 {
		t.Errorf("prompts = %d, want 3", len(cfg.Narrative.Prompts))
	}
	if len(cfg.Environment.Ocean.Fog) < 2 || len(cfg.Environment.Land.Fog) < 2 {
		t.Error("both phase looks must define fog gradients")
	}
}

func TestLoadDerivedValues(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Derived.ScreenW32 != 1280 {
		t.Errorf("ScreenW32 = %v, want 1280", cfg.Derived.ScreenW32)
	}
	// World defaults to screen size when zero.
	if cfg.Derived.WorldW32 != 1280 || cfg.Derived.WorldH32 != 720 {
		t.Errorf("world = %vx%v, want 1280x720", cfg.Derived.WorldW32, cfg.Derived.WorldH32)
	}
	if cfg.Environment.SmoothingRate <= 0 {
		t.Errorf("SmoothingRate = %v, want positive fallback", cfg.Environment.SmoothingRate)
	}
}

func TestLoadUserOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	override := []byte("screen:\n  width: 640\npopulation:\n  low_power: true\n")
	if err := os.WriteFile(path, override, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Screen.Width != 640 {
		t.Errorf("width = %d, want 640 (overridden)", cfg.Screen.Width)
	}
	// Untouched fields keep their defaults.
	if cfg.Screen.TargetFPS != 60 {
		t.Errorf("target_fps = %d, want 60 (default)", cfg.Screen.TargetFPS)
	}
	if !cfg.Population.LowPower {
		t.Error("low_power override not applied")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/config.yaml"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	path := filepath.Join(t.TempDir(), "snapshot.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML failed: %v", err)
	}

	back, err := Load(path)
	if err != nil {
		t.Fatalf("reloading snapshot failed: %v", err)
	}
	if back.Screen.Width != cfg.Screen.Width {
		t.Errorf("round trip lost screen width: %d != %d", back.Screen.Width, cfg.Screen.Width)
	}
	if len(back.Population.Species) != len(cfg.Population.Species) {
		t.Errorf("round trip lost species: %d != %d", len(back.Population.Species), len(cfg.Population.Species))
	}
}
