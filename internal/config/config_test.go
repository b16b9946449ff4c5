package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInitConsoleDirCreatesStructure(t *testing.T) {
	projectDir := t.TempDir()
	if err := InitConsoleDir(projectDir); err != nil {
		t.Fatalf("InitConsoleDir returned error: %v", err)
	}
	for _, dir := range []string{"logs", "exports"} {
		path := filepath.Join(projectDir, ConsoleDir, dir)
		info, err := os.Stat(path)
		if err != nil || !info.IsDir() {
			t.Fatalf("expected directory %s: %v", path, err)
		}
	}
	if _, err := os.Stat(filepath.Join(projectDir, ConsoleDir, "config.yaml")); err != nil {
		t.Fatalf("default config.yaml not written: %v", err)
	}
}

func TestInitConsoleDirKeepsExistingConfig(t *testing.T) {
	projectDir := t.TempDir()
	consoleDir := filepath.Join(projectDir, ConsoleDir)
	if err := os.MkdirAll(consoleDir, 0755); err != nil {
		t.Fatal(err)
	}
	custom := "version: 1\nlist:\n  sort_by: performance\n"
	if err := os.WriteFile(filepath.Join(consoleDir, "config.yaml"), []byte(custom), 0644); err != nil {
		t.Fatal(err)
	}
	if err := InitConsoleDir(projectDir); err != nil {
		t.Fatalf("InitConsoleDir returned error: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(consoleDir, "config.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != custom {
		t.Fatalf("existing config was overwritten")
	}
}

func TestNewConfigDefaultsWhenMissing(t *testing.T) {
	projectDir := t.TempDir()
	cfg, err := NewConfig(projectDir)
	if err != nil {
		t.Fatalf("NewConfig returned error: %v", err)
	}
	if cfg.File.Version != 1 {
		t.Fatalf("expected default version == 1, got %d", cfg.File.Version)
	}
	if cfg.File.List.SortBy != "name" || cfg.File.List.SortOrder != "asc" || cfg.File.List.StatusFilter != "all" {
		t.Fatalf("unexpected list defaults: %+v", cfg.File.List)
	}
	if !strings.HasSuffix(cfg.ExportDir(), filepath.Join(ConsoleDir, "exports")) {
		t.Fatalf("unexpected export dir: %s", cfg.ExportDir())
	}
	if !strings.HasSuffix(cfg.SeedPath(), filepath.Join(ConsoleDir, "seed.yaml")) {
		t.Fatalf("unexpected seed path: %s", cfg.SeedPath())
	}
}

func TestNewConfigParsesYaml(t *testing.T) {
	projectDir := t.TempDir()
	consoleDir := filepath.Join(projectDir, ConsoleDir)
	if err := os.MkdirAll(consoleDir, 0755); err != nil {
		t.Fatal(err)
	}
	configYAML := strings.TrimSpace(`
version: 1
list:
  sort_by: performance
  sort_order: desc
  status_filter: active
export:
  dir: out
`)
	if err := os.WriteFile(filepath.Join(consoleDir, "config.yaml"), []byte(configYAML), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := NewConfig(projectDir)
	if err != nil {
		t.Fatalf("NewConfig returned error: %v", err)
	}
	if cfg.File.List.SortBy != "performance" || cfg.File.List.SortOrder != "desc" || cfg.File.List.StatusFilter != "active" {
		t.Fatalf("list config not parsed: %+v", cfg.File.List)
	}
	if cfg.ExportDir() != filepath.Join(consoleDir, "out") {
		t.Fatalf("export dir = %s", cfg.ExportDir())
	}
}

func TestNewConfigFillsPartialFile(t *testing.T) {
	projectDir := t.TempDir()
	consoleDir := filepath.Join(projectDir, ConsoleDir)
	if err := os.MkdirAll(consoleDir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(consoleDir, "config.yaml"), []byte("list:\n  sort_by: societies\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := NewConfig(projectDir)
	if err != nil {
		t.Fatalf("NewConfig returned error: %v", err)
	}
	if cfg.File.List.SortBy != "societies" {
		t.Fatalf("explicit value lost: %+v", cfg.File.List)
	}
	if cfg.File.List.SortOrder != "asc" || cfg.File.List.StatusFilter != "all" {
		t.Fatalf("defaults not applied to omitted fields: %+v", cfg.File.List)
	}
}

func TestNewConfigRejectsInvalidValues(t *testing.T) {
	cases := []string{
		"list:\n  sort_by: bogus\n",
		"list:\n  sort_order: sideways\n",
		"list:\n  status_filter: frozen\n",
	}
	for _, doc := range cases {
		projectDir := t.TempDir()
		consoleDir := filepath.Join(projectDir, ConsoleDir)
		if err := os.MkdirAll(consoleDir, 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(filepath.Join(consoleDir, "config.yaml"), []byte(doc), 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := NewConfig(projectDir); err == nil {
			t.Fatalf("config %q should be rejected", doc)
		}
	}
}

func TestSaveRoundTrips(t *testing.T) {
	projectDir := t.TempDir()
	if err := InitConsoleDir(projectDir); err != nil {
		t.Fatal(err)
	}
	cfg, err := NewConfig(projectDir)
	if err != nil {
		t.Fatal(err)
	}
	cfg.File.List.SortBy = "lastActivity"
	cfg.File.List.SortOrder = "desc"
	if err := cfg.Save(); err != nil {
		t.Fatalf("save: %v", err)
	}
	reloaded, err := NewConfig(projectDir)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.File.List.SortBy != "lastActivity" || reloaded.File.List.SortOrder != "desc" {
		t.Fatalf("saved values lost: %+v", reloaded.File.List)
	}
}
