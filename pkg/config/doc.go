// Package config handles configuration management for gccleaner.
// It loads settings from embedded defaults, a JSON, TOML or YAML settings
// file, environment variables and command-line overrides, in that order.
package config
