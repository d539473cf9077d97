package config

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadProjectFile reads a ProjectConfig from a YAML file. Missing keys
// keep their defaults; unknown keys are rejected so typos in a project
// spec file surface immediately.
func LoadProjectFile(path string) (*ProjectConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read project file %q: %w", path, err)
	}

	cfg := NewProjectConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("%w: parse %q: %v", ErrInvalidConfig, path, err)
	}
	return cfg, nil
}
