// Package config loads server settings from an optional YAML file. CLI
// flags override file values.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

func Default() *Config {
	return &Config{
		Host: "127.0.0.1",
		Port: 8000,
	}
}

// Load reads the YAML file at path over the defaults. An empty path returns
// the defaults; a named file that does not exist is an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return cfg, nil
}
