package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the optional YAML config file. Explicit command-line
// flags always win over file values; zero values mean "not set".
type fileConfig struct {
	BoardSize int `yaml:"board_size"`
	Disks     int `yaml:"disks"`
	From      int `yaml:"from"`
	To        int `yaml:"to"`
	Speed     int `yaml:"speed"`
}

// loadConfig reads and parses the YAML config at path.
func loadConfig(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var cfg fileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	return &cfg, nil
}

// overrideInt returns the flag value when the flag was changed, otherwise
// the config value when set, otherwise the flag's default.
func overrideInt(changed bool, flagVal, cfgVal int) int {
	if changed || cfgVal == 0 {
		return flagVal
	}

	return cfgVal
}
