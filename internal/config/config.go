// internal/config/config.go
//
// This package handles configuration and the .superadmin directory structure.
// Every directory the console runs in gets a .superadmin/ folder holding the
// config file, logs, CSV exports, and an optional seed override.

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ConsoleDir is the name of the directory the console creates in its working
// directory.
const ConsoleDir = ".superadmin"

const defaultConfigYAML = `# superadmin console configuration
version: 1

# Defaults applied to the admin list when the console opens.
list:
  sort_by: name
  sort_order: asc
  status_filter: all

# Where CSV exports are written, relative to the .superadmin directory.
export:
  dir: exports
`

// ListConfig carries the list-state defaults applied at startup.
type ListConfig struct {
	SortBy       string `yaml:"sort_by"`
	SortOrder    string `yaml:"sort_order"`
	StatusFilter string `yaml:"status_filter"`
}

// ExportConfig controls where exports land.
type ExportConfig struct {
	Dir string `yaml:"dir"`
}

// FileConfig models .superadmin/config.yaml.
type FileConfig struct {
	Version int          `yaml:"version"`
	List    ListConfig   `yaml:"list"`
	Export  ExportConfig `yaml:"export"`
}

// Config holds the runtime configuration for the console.
type Config struct {
	// ProjectDir is the directory the console was launched from.
	ProjectDir string

	// ConsoleProjectDir is ProjectDir/.superadmin.
	ConsoleProjectDir string

	File FileConfig
}

// InitConsoleDir creates the .superadmin directory structure and writes the
// default config file if none exists. Called once at startup.
//
// Structure created:
// .superadmin/
// ├── logs/     <- session journal
// └── exports/  <- CSV exports of the admin list
func InitConsoleDir(projectDir string) error {
	consoleDir := filepath.Join(projectDir, ConsoleDir)
	dirs := []string{
		filepath.Join(consoleDir, "logs"),
		filepath.Join(consoleDir, "exports"),
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return ensureConfigFile(filepath.Join(consoleDir, "config.yaml"))
}

func ensureConfigFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("config: stat %s: %w", path, err)
	}
	if err := os.WriteFile(path, []byte(defaultConfigYAML), 0644); err != nil {
		return fmt.Errorf("config: write default %s: %w", path, err)
	}
	return nil
}

// NewConfig creates a Config populated from .superadmin/config.yaml, falling
// back to defaults for anything the file leaves unset.
func NewConfig(projectDir string) (*Config, error) {
	cfg := &Config{
		ProjectDir:        projectDir,
		ConsoleProjectDir: filepath.Join(projectDir, ConsoleDir),
		File:              defaultFileConfig(),
	}
	if err := cfg.load(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LogsDir returns the path to the logs directory.
func (c *Config) LogsDir() string {
	return filepath.Join(c.ConsoleProjectDir, "logs")
}

// ExportDir returns the directory CSV exports are written to.
func (c *Config) ExportDir() string {
	dir := strings.TrimSpace(c.File.Export.Dir)
	if dir == "" {
		dir = "exports"
	}
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(c.ConsoleProjectDir, dir)
}

// SeedPath returns the on-disk location of the optional seed override file.
func (c *Config) SeedPath() string {
	return filepath.Join(c.ConsoleProjectDir, "seed.yaml")
}

// ConfigPath returns the on-disk location of the config file.
func (c *Config) ConfigPath() string {
	return filepath.Join(c.ConsoleProjectDir, "config.yaml")
}

// Save persists the current configuration back to disk.
func (c *Config) Save() error {
	data, err := yaml.Marshal(c.File)
	if err != nil {
		return fmt.Errorf("config: marshal: %w", err)
	}
	if err := os.WriteFile(c.ConfigPath(), data, 0644); err != nil {
		return fmt.Errorf("config: write %s: %w", c.ConfigPath(), err)
	}
	return nil
}

func (c *Config) load() error {
	path := c.ConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	var parsed FileConfig
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	parsed.applyDefaults()
	if err := parsed.validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	c.File = parsed
	return nil
}

func defaultFileConfig() FileConfig {
	return FileConfig{
		Version: 1,
		List: ListConfig{
			SortBy:       "name",
			SortOrder:    "asc",
			StatusFilter: "all",
		},
		Export: ExportConfig{Dir: "exports"},
	}
}

func (f *FileConfig) applyDefaults() {
	defaults := defaultFileConfig()
	if f.Version == 0 {
		f.Version = defaults.Version
	}
	if strings.TrimSpace(f.List.SortBy) == "" {
		f.List.SortBy = defaults.List.SortBy
	}
	if strings.TrimSpace(f.List.SortOrder) == "" {
		f.List.SortOrder = defaults.List.SortOrder
	}
	if strings.TrimSpace(f.List.StatusFilter) == "" {
		f.List.StatusFilter = defaults.List.StatusFilter
	}
	if strings.TrimSpace(f.Export.Dir) == "" {
		f.Export.Dir = defaults.Export.Dir
	}
}

func (f FileConfig) validate() error {
	switch f.List.SortBy {
	case "name", "lastActivity", "societies", "performance":
	default:
		return fmt.Errorf("list.sort_by must be name, lastActivity, societies, or performance, got %q", f.List.SortBy)
	}
	switch f.List.SortOrder {
	case "asc", "desc":
	default:
		return fmt.Errorf("list.sort_order must be asc or desc, got %q", f.List.SortOrder)
	}
	switch f.List.StatusFilter {
	case "all", "active", "inactive", "pending":
	default:
		return fmt.Errorf("list.status_filter must be all, active, inactive, or pending, got %q", f.List.StatusFilter)
	}
	return nil
}
