package config

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Defaults applied when neither flags nor the config file say otherwise.
const (
	DefaultCount   = 30
	DefaultPattern = "heads/"
)

// ListConfig holds listing defaults.
type ListConfig struct {
	Count   int    `toml:"count"`   // limit without -n/--all; 0 = unlimited
	Pattern string `toml:"pattern"` // PATTERN without positional argument
}

// ThemeConfig holds theme/color configuration
type ThemeConfig struct {
	Name     string `toml:"name"`     // preset family: "none", "default", "dracula", ...
	Mode     string `toml:"mode"`     // "auto", "light", "dark"
	Nerdfont bool   `toml:"nerdfont"` // use nerd font glyph for the merged marker
	Current  string `toml:"current"`  // current-branch marker and name
	Date     string `toml:"date"`     // relative commit date
	Merged   string `toml:"merged"`   // merged marker
	Muted    string `toml:"muted"`    // author and subject
}

// Config holds the git-recent configuration
type Config struct {
	List  ListConfig  `toml:"list"`
	Theme ThemeConfig `toml:"theme"`
}

// Default returns the default configuration
func Default() Config {
	return Config{
		List: ListConfig{
			Count:   DefaultCount,
			Pattern: DefaultPattern,
		},
	}
}

// Path returns the config file location:
// $XDG_CONFIG_HOME/git-recent/config.toml, falling back to
// ~/.config/git-recent/config.toml.
func Path() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "git-recent", "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "git-recent", "config.toml"), nil
}

// Load reads the config from Path.
// Returns Default() if the file doesn't exist (no error).
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile reads the config at path.
// Returns Default() if the file doesn't exist (no error).
// Returns Default() and an error if the file exists but is invalid.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(string(data))
}

// Parse decodes TOML on top of Default(), so omitted keys keep their defaults.
func Parse(data string) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(data, &cfg)
	if err != nil {
		return Default(), fmt.Errorf("failed to parse config file: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Default(), fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// Encode writes cfg as TOML.
func (c Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

type ctxKey struct{}

// WithConfig attaches the config to the context.
func WithConfig(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, ctxKey{}, cfg)
}

// FromContext retrieves the config from context.
// Returns a pointer to Default() if none is attached.
func FromContext(ctx context.Context) *Config {
	if cfg, ok := ctx.Value(ctxKey{}).(*Config); ok {
		return cfg
	}
	cfg := Default()
	return &cfg
}

// DefaultFileContent returns the commented config written by "config init".
func DefaultFileContent() string {
	return `# git-recent configuration

[list]
# Number of branches shown when neither -n nor --all is given (0 = unlimited)
count = 30

# Ref namespace listed when no PATTERN is given.
# Examples: "heads/" (local branches), "tags/", "remotes/origin", "/" (everything)
pattern = "heads/"

[theme]
# Preset: "none", "default", "dracula", "nord", "gruvbox", "catppuccin"
# name = "default"

# "auto" detects the terminal background, "light" or "dark" force a variant
# mode = "auto"

# Use a nerd font glyph for the merged marker
# nerdfont = false

# Per-role overrides (hex "#rrggbb" or ANSI index "0"-"255")
# current = "#a6e3a1"
# date = "#89b4fa"
# merged = "#f5c2e7"
# muted = "#6c7086"
`
}
