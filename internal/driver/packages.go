package driver

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed packages.yaml
var defaultPackagesYAML []byte

// Package is one raw sensor reading: a workout code and its positional values.
type Package struct {
	Code   string    `yaml:"code"`
	Values []float64 `yaml:"values"`
}

// DefaultPackages returns the built-in sample packages: swimming, running, walking.
func DefaultPackages() ([]Package, error) {
	return ParsePackages(defaultPackagesYAML)
}

// ParsePackages decodes a YAML list of packages.
func ParsePackages(data []byte) ([]Package, error) {
	var pkgs []Package
	if err := yaml.Unmarshal(data, &pkgs); err != nil {
		return nil, fmt.Errorf("parsing packages: %w", err)
	}
	return pkgs, nil
}
