// Package config handles loading and validation of git-recent configuration.
//
// Configuration is read from $XDG_CONFIG_HOME/git-recent/config.toml, or
// ~/.config/git-recent/config.toml when XDG_CONFIG_HOME is unset. A missing
// file is not an error: the defaults reproduce the plain behavior of
// "30 most recent local branches".
//
// # Configuration Sources (highest priority first)
//
//   - Command-line flags (-n, --all, PATTERN)
//   - Config file settings
//   - Default values
//
// # Key Settings
//
//   - list.count: default limit (default: 30, 0 = unlimited)
//   - list.pattern: default ref namespace (default: "heads/")
//
// # Theme Configuration
//
// The [theme] section picks a preset and overrides single roles:
//
//	[theme]
//	name = "nord"
//	mode = "dark"
//	merged = "#b48ead"
//
// Unknown keys are rejected so that typos do not silently fall back to
// defaults.
package config
