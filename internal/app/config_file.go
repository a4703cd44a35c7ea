package app

import (
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v3"
)

// FileConfig represents the optional single-file YAML configuration schema.
// Flags take precedence over file values; the file fills in what flags left
// unset.
type FileConfig struct {
	Inputs  []string `yaml:"inputs"`
	Out     string   `yaml:"out"`
	PDF     bool     `yaml:"pdf"`
	Verbose bool     `yaml:"verbose"`
}

// LoadConfigFile reads and parses a YAML configuration file.
func LoadConfigFile(path string) (*FileConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var fc FileConfig
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &fc, nil
}

// MergeFileConfig applies file values beneath explicit cfg values.
func MergeFileConfig(cfg *Config, fc *FileConfig) {
	if cfg == nil || fc == nil {
		return
	}
	if len(cfg.Inputs) == 0 {
		cfg.Inputs = append(cfg.Inputs, fc.Inputs...)
	}
	if cfg.OutDir == "" {
		cfg.OutDir = fc.Out
	}
	if fc.PDF {
		cfg.EnablePDF = true
	}
	if fc.Verbose {
		cfg.Verbose = true
	}
}
