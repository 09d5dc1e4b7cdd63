package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds memstat defaults. Command-line flags override whatever
// the config file sets.
type Config struct {
	Pid    int    `yaml:"pid"`
	Format string `yaml:"format"`
}

func defaultConfig() Config {
	return Config{Format: "table"}
}

func loadConfig(path string) (Config, error) {
	config := defaultConfig()
	if path == "" {
		return config, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return config, err
	}
	if err := yaml.Unmarshal(b, &config); err != nil {
		return config, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if config.Format == "" {
		config.Format = "table"
	}
	return config, nil
}
