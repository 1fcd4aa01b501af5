package config

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
)

// Valid enum values for configuration fields.
var (
	ValidThemeNames = []string{"none", "default", "dracula", "nord", "gruvbox", "catppuccin"}
	ValidThemeModes = []string{"auto", "light", "dark"}
)

// colorRegex matches "#rgb", "#rrggbb" and ANSI indexes 0-255.
var colorRegex = regexp.MustCompile(`^(#[0-9a-fA-F]{3}|#[0-9a-fA-F]{6}|[0-9]{1,3})$`)

// Validate checks every field of c and returns the first problem found.
func (c Config) Validate() error {
	if c.List.Count < 0 {
		return fmt.Errorf("invalid list.count %d: must be 0 (unlimited) or positive", c.List.Count)
	}
	if err := validateEnum(c.Theme.Name, "theme.name", ValidThemeNames); err != nil {
		return err
	}
	if err := validateEnum(c.Theme.Mode, "theme.mode", ValidThemeModes); err != nil {
		return err
	}
	colors := []struct{ field, value string }{
		{"theme.current", c.Theme.Current},
		{"theme.date", c.Theme.Date},
		{"theme.merged", c.Theme.Merged},
		{"theme.muted", c.Theme.Muted},
	}
	for _, col := range colors {
		if err := validateColor(col.value, col.field); err != nil {
			return err
		}
	}
	return nil
}

// validateEnum checks that value (if non-empty) is one of the allowed values.
func validateEnum(value, field string, allowed []string) error {
	if value == "" {
		return nil
	}
	if !slices.Contains(allowed, value) {
		return fmt.Errorf("invalid %s %q: must be %s", field, value, formatOptions(allowed))
	}
	return nil
}

// validateColor accepts empty values, hex colors and ANSI indexes.
func validateColor(value, field string) error {
	if value == "" {
		return nil
	}
	if !colorRegex.MatchString(value) {
		return fmt.Errorf("invalid %s %q: must be a hex color (#rrggbb) or ANSI index", field, value)
	}
	if value[0] != '#' {
		var n int
		fmt.Sscanf(value, "%d", &n)
		if n > 255 {
			return fmt.Errorf("invalid %s %q: ANSI index must be 0-255", field, value)
		}
	}
	return nil
}

// formatOptions formats a list of allowed values for error messages.
// E.g., ["a", "b", "c"] -> `"a", "b", or "c"`
func formatOptions(opts []string) string {
	quoted := make([]string, len(opts))
	for i, o := range opts {
		quoted[i] = fmt.Sprintf("%q", o)
	}
	if len(quoted) <= 2 {
		return strings.Join(quoted, " or ")
	}
	return strings.Join(quoted[:len(quoted)-1], ", ") + ", or " + quoted[len(quoted)-1]
}
