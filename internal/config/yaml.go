package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadFile overlays settings from a YAML config file onto cfg. Only the
// fields carrying yaml tags are file-configurable; the input directory and
// utility flags always come from the command line.
func LoadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

// FindConfigFile searches the standard locations and returns the first
// config file that exists, or "" if none is found (non-fatal).
func FindConfigFile() string {
	locations := []string{
		"./videometa.yaml",
		"./videometa.yml",
	}
	if home, err := os.UserHomeDir(); err == nil {
		locations = append(locations,
			filepath.Join(home, ".config", "videometa", "config.yaml"),
			filepath.Join(home, ".config", "videometa", "config.yml"),
		)
	}

	for _, path := range locations {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
