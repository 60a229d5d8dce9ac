// Package config loads, normalizes, and validates pvrank's TOML configuration.
//
// Settings come from an optional TOML file (default
// ~/.config/pvrank/config.toml, falling back to ./pvrank.toml), then a small set
// of environment overrides, then path expansion and validation. Callers receive
// a fully expanded Config and never need to resolve "~" themselves.
package config
