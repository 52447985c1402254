// Package config loads the evaluation service configuration from a TOML
// file, falling back to defaults for anything the file leaves out.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Host         string `toml:"host"`
	Port         int    `toml:"port"`
	DatabasePath string `toml:"database_path"`
	SigningKey   string `toml:"signing_key"`
	QueueSize    int    `toml:"queue_size"`
	Workers      int    `toml:"workers"`
}

func Default() Config {
	return Config{
		Host:         "http://localhost",
		Port:         8080,
		DatabasePath: "store.db",
		SigningKey:   "change-me",
		QueueSize:    10,
		Workers:      2,
	}
}

// Load reads a TOML config file over the defaults. An empty path just
// returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = Default().QueueSize
	}
	if cfg.Workers <= 0 {
		cfg.Workers = Default().Workers
	}
	return cfg, nil
}
