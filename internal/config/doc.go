// Package config loads the optional TOML configuration file, applies
// defaults, and validates the result. Source and target directories are CLI
// arguments, not configuration; the file covers folder names, the probe
// tool, and logging.
package config
