package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() {
	c.Folders.ToSort = strings.TrimSpace(c.Folders.ToSort)
	c.Folders.Unprocessable = strings.TrimSpace(c.Folders.Unprocessable)
	c.Folders.State = strings.TrimSpace(c.Folders.State)
	c.Probe.Binary = strings.TrimSpace(c.Probe.Binary)
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))

	defaults := Default()
	if c.Folders.ToSort == "" {
		c.Folders.ToSort = defaults.Folders.ToSort
	}
	if c.Folders.Unprocessable == "" {
		c.Folders.Unprocessable = defaults.Folders.Unprocessable
	}
	if c.Folders.State == "" {
		c.Folders.State = defaults.Folders.State
	}
	if c.Probe.Binary == "" {
		c.Probe.Binary = defaults.Probe.Binary
	}
	if c.Probe.TimeoutSeconds <= 0 {
		c.Probe.TimeoutSeconds = defaults.Probe.TimeoutSeconds
	}
	if c.Logging.Format == "" {
		c.Logging.Format = defaults.Logging.Format
	}
	if c.Logging.Level == "" {
		c.Logging.Level = defaults.Logging.Level
	}
}

// Validate reports configuration values that cannot be used.
func (c *Config) Validate() error {
	for _, name := range []string{c.Folders.ToSort, c.Folders.Unprocessable, c.Folders.State} {
		if strings.ContainsAny(name, `/\`) {
			return fmt.Errorf("folder name %q must not contain path separators", name)
		}
	}
	switch c.Logging.Format {
	case "auto", "console", "json":
	default:
		return fmt.Errorf("logging format %q not supported (auto, console, json)", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging level %q not supported (debug, info, warn, error)", c.Logging.Level)
	}
	return nil
}
