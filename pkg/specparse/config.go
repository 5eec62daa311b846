package specparse

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// RawConfig is the generator config.
type RawConfig struct {
	Module   string       `yaml:"module"`
	Packages []RawPackage `yaml:"packages"`
}

// RawPackage describes one generated Go package.
type RawPackage struct {
	Name        string   `yaml:"name"`     // Go package name, "tr181"
	Dir         string   `yaml:"dir"`      // output directory relative to the module root
	Standard    string   `yaml:"standard"` // "TR-181"
	Version     string   `yaml:"version"`  // "Device:2.12"
	Description string   `yaml:"description"`
	Files       []string `yaml:"files"` // definition files relative to the module root
}

// ParseConfig parses a generator config from YAML bytes.
func ParseConfig(data []byte) (*RawConfig, error) {
	var cfg RawConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing generator config: %w", err)
	}
	if cfg.Module == "" {
		return nil, fmt.Errorf("generator config missing module")
	}
	for i, pkg := range cfg.Packages {
		if pkg.Name == "" || pkg.Dir == "" {
			return nil, fmt.Errorf("package %d: name and dir are required", i)
		}
	}
	return &cfg, nil
}

// LoadConfig loads and parses a generator config from a file.
func LoadConfig(path string) (*RawConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return ParseConfig(data)
}

// Package returns the package with the given name.
func (c *RawConfig) Package(name string) (*RawPackage, bool) {
	for i := range c.Packages {
		if c.Packages[i].Name == name {
			return &c.Packages[i], true
		}
	}
	return nil, false
}
