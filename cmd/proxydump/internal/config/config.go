// Package config loads the optional proxydump.yaml configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents the optional proxydump.yaml configuration.
type Config struct {
	Surface SurfaceConfig `yaml:"surface"`
	Window  WindowConfig  `yaml:"window"`
}

// SurfaceConfig sets the logical size of the headless surface.
type SurfaceConfig struct {
	Width  float64 `yaml:"width,omitempty"`
	Height float64 `yaml:"height,omitempty"`
}

// WindowConfig describes the demo window built for the dump.
type WindowConfig struct {
	Title   string   `yaml:"title,omitempty"`
	Toolbar *bool    `yaml:"toolbar,omitempty"`
	Tabs    []string `yaml:"tabs,omitempty"`
}

// LoadOptional reads proxydump.yaml if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, "proxydump.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read proxydump.yaml: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse proxydump.yaml: %w", err)
	}

	return &cfg, nil
}

// Resolved contains resolved configuration values with defaults applied.
type Resolved struct {
	Width   float64
	Height  float64
	Title   string
	Toolbar bool
	Tabs    []string
}

// Resolve loads proxydump.yaml (if present) and fills in defaults.
func Resolve(dir string) (*Resolved, error) {
	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	resolved := &Resolved{
		Width:   cfg.Surface.Width,
		Height:  cfg.Surface.Height,
		Title:   strings.TrimSpace(cfg.Window.Title),
		Toolbar: true,
		Tabs:    cfg.Window.Tabs,
	}
	if resolved.Width <= 0 {
		resolved.Width = 800
	}
	if resolved.Height <= 0 {
		resolved.Height = 600
	}
	if resolved.Title == "" {
		resolved.Title = "proxydump"
	}
	if cfg.Window.Toolbar != nil {
		resolved.Toolbar = *cfg.Window.Toolbar
	}
	return resolved, nil
}
