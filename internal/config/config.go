package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Folders contains the directory names created under the target root.
type Folders struct {
	ToSort        string `toml:"to_sort"`
	Unprocessable string `toml:"unprocessable"`
	State         string `toml:"state"`
}

// Probe contains configuration for the optional ffprobe fallback.
type Probe struct {
	Binary         string `toml:"binary"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
	File   string `toml:"file"`
}

// Config is the full organizer configuration.
type Config struct {
	Folders Folders `toml:"folders"`
	Probe   Probe   `toml:"probe"`
	Logging Logging `toml:"logging"`
}

// Load reads the configuration at path, layered over defaults. An empty
// path or a missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Sample returns the embedded sample configuration file.
func Sample() string {
	return sampleConfig
}
