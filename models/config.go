// Package models defines data structures for run configuration.
package models

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// RunConfig holds runtime configuration for one counting run. Values come
// from an optional YAML config file, with explicit CLI flags taking
// precedence.
type RunConfig struct {
	// RootDir is the directory scanned recursively for .txt inputs.
	RootDir string `yaml:"root_dir"`

	// NgramSize is the sliding window width. 1 counts single words.
	NgramSize int `yaml:"ngram_size"`

	// Workers is the fixed worker pool size.
	Workers int `yaml:"workers"`

	// Header is the maximum number of entries printed per worker block.
	Header int `yaml:"header"`
}

// DefaultRunConfig returns the built-in defaults applied before any config
// file or flag is read.
func DefaultRunConfig() RunConfig {
	return RunConfig{
		NgramSize: 1,
		Workers:   4,
		Header:    10,
	}
}

// LoadRunConfig reads a YAML config file over the defaults. Settings absent
// from the file keep their default values.
func LoadRunConfig(path string) (RunConfig, error) {
	cfg := DefaultRunConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file: %w", err)
	}
	return cfg, nil
}

// Validate reports the first problem with the run settings. It runs before
// any worker starts.
func (cfg *RunConfig) Validate() error {
	if cfg.RootDir == "" {
		return fmt.Errorf("config: root directory is required")
	}
	info, err := os.Stat(cfg.RootDir)
	if err != nil {
		return fmt.Errorf("config: cannot access root directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("config: %s is not a directory", cfg.RootDir)
	}
	if cfg.NgramSize < 1 {
		return fmt.Errorf("config: ngram size must be at least 1, got %d", cfg.NgramSize)
	}
	if cfg.Workers < 1 {
		return fmt.Errorf("config: workers must be at least 1, got %d", cfg.Workers)
	}
	if cfg.Header < 1 {
		return fmt.Errorf("config: header must be at least 1, got %d", cfg.Header)
	}
	return nil
}
