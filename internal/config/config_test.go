package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTemp(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return p
}

func TestLoadFile_Basic(t *testing.T) {
	dir := t.TempDir()
	p := writeTemp(t, dir, "attackmap.yaml",
		"platforms:\n  - Cloudflare\n  - Datadog\nmax_bytes: 123\nexclude: \"draft_*\"\ntable: true\n")
	cfg, err := LoadFile(p)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if len(cfg.Platforms) != 2 || cfg.Platforms[0] != "Cloudflare" {
		t.Fatalf("expected platforms, got %#v", cfg.Platforms)
	}
	if cfg.MaxBytes == nil || *cfg.MaxBytes != 123 {
		t.Fatalf("expected max_bytes=123, got %#v", cfg.MaxBytes)
	}
	if cfg.Exclude == nil || *cfg.Exclude != "draft_*" {
		t.Fatalf("expected exclude glob, got %#v", cfg.Exclude)
	}
	if cfg.Table == nil || !*cfg.Table {
		t.Fatalf("expected table=true")
	}
}

func TestLoadLocal_PrefersDotfile(t *testing.T) {
	dir := t.TempDir()
	// place both, expect the dotfile to be picked first by search order
	writeTemp(t, dir, "attackmap.yaml", "max_bytes: 1\n")
	writeTemp(t, dir, ".attackmap.yaml", "max_bytes: 7\n")
	cfg, err := LoadLocal(dir)
	if err != nil {
		t.Fatalf("LoadLocal: %v", err)
	}
	if cfg.MaxBytes == nil || *cfg.MaxBytes != 7 {
		t.Fatalf("expected max_bytes=7 from .attackmap.yaml, got %#v", cfg.MaxBytes)
	}
}

func TestLoadLocal_NoConfig(t *testing.T) {
	dir := t.TempDir()
	if _, err := LoadLocal(dir); err == nil {
		t.Fatal("expected error when no local config exists")
	}
}

func TestLoadGlobal_XDG_Config(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	if err := os.MkdirAll(filepath.Join(dir, "attackmap"), 0o755); err != nil {
		t.Fatal(err)
	}
	writeTemp(t, filepath.Join(dir, "attackmap"), "config.yml", "exclude_dirs:\n  - staging\n")
	cfg, err := LoadGlobal()
	if err != nil {
		t.Fatalf("LoadGlobal: %v", err)
	}
	if len(cfg.ExcludeDirs) != 1 || cfg.ExcludeDirs[0] != "staging" {
		t.Fatalf("expected exclude_dirs, got %#v", cfg.ExcludeDirs)
	}
}

func TestLoadFile_BadYAML(t *testing.T) {
	dir := t.TempDir()
	p := writeTemp(t, dir, "attackmap.yaml", "platforms: [unclosed\n")
	if _, err := LoadFile(p); err == nil {
		t.Fatal("expected YAML error")
	}
}
