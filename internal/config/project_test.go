// Where: internal/config/project_test.go
// What: Tests for radarctl.yml loading and schema validation.
// Why: Malformed project configs must be rejected with the offending path.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeProjectConfig(t *testing.T, dir, body string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, ProjectConfigFile), []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", ProjectConfigFile, err)
	}
}

func TestLoadProjectConfigAbsentFile(t *testing.T) {
	cfg, found, err := LoadProjectConfig(t.TempDir())
	if err != nil {
		t.Fatalf("load project config: %v", err)
	}
	if found {
		t.Fatal("expected found=false for a directory without radarctl.yml")
	}
	if cfg.Launcher.Python != "" {
		t.Fatalf("expected zero config, got %#v", cfg)
	}
}

func TestLoadProjectConfigFullFile(t *testing.T) {
	dir := t.TempDir()
	writeProjectConfig(t, dir, `version: 1
launcher:
  python: python3.12
  module: trendradar
  env_file: .env.production
credentials:
  file: docs/r2-keys.md
check:
  timeout_seconds: 20
compose:
  service: trendradar
`)

	cfg, found, err := LoadProjectConfig(dir)
	if err != nil {
		t.Fatalf("load project config: %v", err)
	}
	if !found {
		t.Fatal("expected found=true")
	}
	if cfg.Launcher.Python != "python3.12" || cfg.Launcher.EnvFile != ".env.production" {
		t.Fatalf("unexpected launcher config: %#v", cfg.Launcher)
	}
	if cfg.Credentials.File != "docs/r2-keys.md" {
		t.Fatalf("unexpected credentials config: %#v", cfg.Credentials)
	}
	if cfg.Check.TimeoutSeconds != 20 {
		t.Fatalf("unexpected check config: %#v", cfg.Check)
	}
	if cfg.Compose.Service != "trendradar" {
		t.Fatalf("unexpected compose config: %#v", cfg.Compose)
	}
}

func TestLoadProjectConfigRejectsUnknownKeys(t *testing.T) {
	dir := t.TempDir()
	writeProjectConfig(t, dir, "launcher:\n  interpreter: python3\n")

	_, _, err := LoadProjectConfig(dir)
	if err == nil {
		t.Fatal("expected schema error for unknown key")
	}
	if !strings.Contains(err.Error(), ProjectConfigFile) {
		t.Fatalf("error should name the config file: %v", err)
	}
}

func TestLoadProjectConfigRejectsWrongTypes(t *testing.T) {
	dir := t.TempDir()
	writeProjectConfig(t, dir, "check:\n  timeout_seconds: soon\n")

	if _, _, err := LoadProjectConfig(dir); err == nil {
		t.Fatal("expected schema error for non-integer timeout")
	}
}

func TestSaveProjectConfigRoundTrip(t *testing.T) {
	dir := t.TempDir()
	cfg := ProjectConfig{
		Version:  1,
		Launcher: LauncherConfig{Python: "python3"},
	}
	if err := SaveProjectConfig(dir, cfg); err != nil {
		t.Fatalf("save project config: %v", err)
	}

	loaded, found, err := LoadProjectConfig(dir)
	if err != nil {
		t.Fatalf("load project config: %v", err)
	}
	if !found || loaded.Launcher.Python != "python3" {
		t.Fatalf("unexpected config after round trip: %#v", loaded)
	}
}
