package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk YAML configuration shape for attackmap. All
// scalar fields are pointers so "unset" is distinguishable from a zero
// value when applying CLI > local > global precedence.
type FileConfig struct {
	// Platforms restricts scanning to these source-platform folders
	// (first path segment under the detections root).
	Platforms []string `yaml:"platforms"`
	// ExcludeDirs appends directory names to the built-in exclusion set.
	ExcludeDirs []string `yaml:"exclude_dirs"`

	Include  *string `yaml:"include"`
	Exclude  *string `yaml:"exclude"`
	MaxBytes *int64  `yaml:"max_bytes"`
	Table    *bool   `yaml:"table"`
}

// LoadFile reads a YAML config file from the provided path.
func LoadFile(path string) (FileConfig, error) {
	var cfg FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadLocal searches for a repo-local config file in the given root.
// It supports .attackmap.yml/.yaml and attackmap.yml/.yaml.
func LoadLocal(repoRoot string) (FileConfig, error) {
	var cfg FileConfig
	for _, name := range []string{".attackmap.yml", ".attackmap.yaml", "attackmap.yml", "attackmap.yaml"} {
		p := filepath.Join(repoRoot, name)
		if _, err := os.Stat(p); err == nil {
			return LoadFile(p)
		}
	}
	return cfg, errors.New("no local config")
}

// LoadGlobal loads the global config file from XDG base directory or ~/.config.
func LoadGlobal() (FileConfig, error) {
	var cfg FileConfig
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, _ := os.UserHomeDir()
		if home != "" {
			base = filepath.Join(home, ".config")
		}
	}
	if base == "" {
		return cfg, errors.New("no config dir")
	}
	p := filepath.Join(base, "attackmap", "config.yml")
	if _, err := os.Stat(p); err == nil {
		return LoadFile(p)
	}
	return cfg, errors.New("no global config")
}
