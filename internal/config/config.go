package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultFilename is the config file wdgpm looks for in the working directory.
const DefaultFilename = "wdgpm.yml"

// Config represents the top-level wdgpm.yml configuration
type Config struct {
	Version string        `yaml:"version"`
	Storage StorageConfig `yaml:"storage"`
}

// StorageConfig specifies where project records and the index live
type StorageConfig struct {
	ProjectsDir string `yaml:"projects_dir"`
	IndexFile   string `yaml:"index_file"`
}

// Validate performs strict validation on the configuration
func (c *Config) Validate() error {
	// Required: version
	if c.Version != "1.0" {
		return fmt.Errorf("unsupported version: %s (expected: 1.0)", c.Version)
	}

	// Apply storage defaults for anything not specified
	if c.Storage.ProjectsDir == "" {
		c.Storage.ProjectsDir = "projects"
	}
	if c.Storage.IndexFile == "" {
		c.Storage.IndexFile = filepath.Join(c.Storage.ProjectsDir, "index.rec")
	}

	return nil
}

// Load reads and validates a wdgpm.yml configuration file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// Default returns the configuration used when no wdgpm.yml exists.
func Default() *Config {
	c := &Config{Version: "1.0"}
	// Validate never fails for a well-formed version and fills in defaults
	_ = c.Validate()
	return c
}

// LoadOrDefault loads the config at path if it exists, otherwise returns
// the default configuration. A present-but-invalid file is an error.
func LoadOrDefault(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(path)
}
