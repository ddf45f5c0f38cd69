package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.YAMLIndent != 2 || cfg.YAMLWidth != 120 {
		t.Errorf("unexpected defaults: indent=%d width=%d", cfg.YAMLIndent, cfg.YAMLWidth)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults must validate: %v", err)
	}
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}
	if cfg.YAMLIndent != 2 {
		t.Errorf("expected default indent, got %d", cfg.YAMLIndent)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "project_title: My Film\nyaml_indent: 4\nno_camera_movement: true\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.ProjectTitle != "My Film" {
		t.Errorf("title mismatch: %q", cfg.ProjectTitle)
	}
	if cfg.YAMLIndent != 4 {
		t.Errorf("indent mismatch: %d", cfg.YAMLIndent)
	}
	if cfg.YAMLWidth != 120 {
		t.Errorf("unset width should default to 120, got %d", cfg.YAMLWidth)
	}
	if !cfg.NoCameraMovement || cfg.NoShotTimecode {
		t.Errorf("exclusion flags mismatch: %+v", cfg)
	}
}

func TestLoadValidation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("yaml_indent: 20\n"), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Errorf("out-of-range indent must fail validation")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Errorf("expected error for missing config file")
	}
}

func TestWriteDefaultRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := WriteDefault(path); err != nil {
		t.Fatalf("WriteDefault failed: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("generated config must load: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("generated config must validate: %v", err)
	}
}

func TestMappingsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mappings.toml")
	if err := WriteDefaultMappings(path); err != nil {
		t.Fatalf("WriteDefaultMappings failed: %v", err)
	}

	m, err := LoadMappings(path)
	if err != nil {
		t.Fatalf("LoadMappings failed: %v", err)
	}
	if m["DIURNAL"]["GH"] != "Golden Hour" {
		t.Errorf("DIURNAL mapping missing: %+v", m["DIURNAL"])
	}
	if m["LOC_TYPE"]["EXT/INT"] != "Exterior/Interior" {
		t.Errorf("quoted key mapping missing: %+v", m["LOC_TYPE"])
	}
}

func TestLoadMappingsEmptyPath(t *testing.T) {
	m, err := LoadMappings("")
	if err != nil || m != nil {
		t.Errorf("empty path should disable mappings, got %v, %v", m, err)
	}
}
