package model

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadCase reads a case from a YAML file.
func LoadCase(path string) (*Case, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading case file: %w", err)
	}

	var c Case
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing case YAML: %w", err)
	}
	return &c, nil
}

// LoadSweep reads a sweep description from a YAML file.
func LoadSweep(path string) (*SweepCase, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading sweep file: %w", err)
	}

	var s SweepCase
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing sweep YAML: %w", err)
	}
	return &s, nil
}
