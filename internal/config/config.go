// Package config loads the h5walk configuration file.
//
// Configuration lives at ~/.h5walk/config.yaml. A missing file yields the
// defaults; a malformed file is an error so typos never silently fall back.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds user preferences for the browser and exporter.
type Config struct {
	// ExportDir is the default directory offered in export prompts.
	ExportDir string `yaml:"export_dir"`
	// ASCIIBorders switches preview tables to plain ASCII borders for
	// terminals without box-drawing glyphs.
	ASCIIBorders bool `yaml:"ascii_borders"`
	// VimKeys enables the h/j/k/l navigation bindings.
	VimKeys bool `yaml:"vim_keys"`
	// PreviewRows caps the rows shown in the dataset preview.
	PreviewRows int `yaml:"preview_rows"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		ExportDir:   ".",
		VimKeys:     true,
		PreviewRows: 20,
	}
}

// Path returns the location of the user configuration file.
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".h5walk", "config.yaml"), nil
}

// Load reads the user configuration, falling back to [Default] when no
// file exists.
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile reads a configuration file. A missing file yields the defaults.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.PreviewRows <= 0 {
		cfg.PreviewRows = Default().PreviewRows
	}
	if cfg.ExportDir == "" {
		cfg.ExportDir = "."
	}
	return cfg, nil
}
