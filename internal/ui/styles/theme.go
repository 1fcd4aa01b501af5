package styles

import (
	"image/color"

	"charm.land/lipgloss/v2"
	"github.com/raphi011/git-recent/internal/config"
)

// Theme defines the color of each role in a ref listing
type Theme struct {
	Current color.Color // current-branch marker and name
	Date    color.Color // relative commit date
	Merged  color.Color // merged marker
	Muted   color.Color // author and subject
}

// themeFamily groups light and dark variants of a theme
type themeFamily struct {
	Light *Theme // nil if no light variant
	Dark  *Theme // nil if no dark variant
}

// Preset themes - Dark variants
var (
	// DefaultTheme is the default color scheme (dark only)
	DefaultTheme = Theme{
		Current: lipgloss.Color("82"),  // green
		Date:    lipgloss.Color("62"),  // cyan/teal
		Merged:  lipgloss.Color("212"), // pink/magenta
		Muted:   lipgloss.Color("244"), // gray
	}

	// DraculaTheme is based on the Dracula color scheme (dark only)
	DraculaTheme = Theme{
		Current: lipgloss.Color("#50fa7b"), // green
		Date:    lipgloss.Color("#bd93f9"), // purple
		Merged:  lipgloss.Color("#ff79c6"), // pink
		Muted:   lipgloss.Color("#6272a4"), // comment
	}

	// NordTheme is based on the Nord color scheme (dark)
	NordTheme = Theme{
		Current: lipgloss.Color("#a3be8c"), // nord14 (aurora green)
		Date:    lipgloss.Color("#88c0d0"), // nord8 (frost cyan)
		Merged:  lipgloss.Color("#b48ead"), // nord15 (aurora purple)
		Muted:   lipgloss.Color("#4c566a"), // nord3 (polar night)
	}

	// GruvboxTheme is based on the Gruvbox color scheme (dark)
	GruvboxTheme = Theme{
		Current: lipgloss.Color("#b8bb26"), // green
		Date:    lipgloss.Color("#83a598"), // blue
		Merged:  lipgloss.Color("#d3869b"), // purple
		Muted:   lipgloss.Color("#665c54"), // gray
	}

	// CatppuccinMochaTheme is based on Catppuccin Mocha (dark)
	CatppuccinMochaTheme = Theme{
		Current: lipgloss.Color("#a6e3a1"), // green
		Date:    lipgloss.Color("#89b4fa"), // blue
		Merged:  lipgloss.Color("#f5c2e7"), // pink
		Muted:   lipgloss.Color("#6c7086"), // overlay0
	}

	// NoneTheme renders without any colors (uses terminal defaults)
	// Bold on the current branch is preserved
	NoneTheme = Theme{
		Current: lipgloss.NoColor{},
		Date:    lipgloss.NoColor{},
		Merged:  lipgloss.NoColor{},
		Muted:   lipgloss.NoColor{},
	}
)

// Preset themes - Light variants
var (
	// NordLightTheme is based on the Nord color scheme (light)
	NordLightTheme = Theme{
		Current: lipgloss.Color("#a3be8c"), // nord14 (aurora green)
		Date:    lipgloss.Color("#5e81ac"), // nord10 (frost blue, darker)
		Merged:  lipgloss.Color("#b48ead"), // nord15 (aurora purple)
		Muted:   lipgloss.Color("#9a9a9a"), // gray
	}

	// GruvboxLightTheme is based on the Gruvbox color scheme (light)
	GruvboxLightTheme = Theme{
		Current: lipgloss.Color("#79740e"), // green (dark)
		Date:    lipgloss.Color("#076678"), // blue (dark for contrast)
		Merged:  lipgloss.Color("#8f3f71"), // purple (dark for contrast)
		Muted:   lipgloss.Color("#928374"), // gray
	}

	// CatppuccinLatteTheme is based on Catppuccin Latte (light)
	CatppuccinLatteTheme = Theme{
		Current: lipgloss.Color("#40a02b"), // green
		Date:    lipgloss.Color("#1e66f5"), // blue
		Merged:  lipgloss.Color("#ea76cb"), // pink
		Muted:   lipgloss.Color("#9ca0b0"), // overlay0
	}
)

// themeFamilies maps theme family names to their light/dark variants
var themeFamilies = map[string]themeFamily{
	"none":       {Light: &NoneTheme, Dark: &NoneTheme},                       // no colors
	"default":    {Dark: &DefaultTheme},                                       // dark only
	"dracula":    {Dark: &DraculaTheme},                                       // dark only
	"nord":       {Light: &NordLightTheme, Dark: &NordTheme},                  // both variants
	"gruvbox":    {Light: &GruvboxLightTheme, Dark: &GruvboxTheme},            // both variants
	"catppuccin": {Light: &CatppuccinLatteTheme, Dark: &CatppuccinMochaTheme}, // both variants
}

// ResolveTheme picks the theme described by cfg and applies per-role
// overrides. isDark is only consulted in "auto" mode, so callers can pass
// a terminal query without paying for it otherwise.
func ResolveTheme(cfg config.ThemeConfig, isDark func() bool) Theme {
	theme := selectTheme(cfg, isDark)

	if cfg.Current != "" {
		theme.Current = lipgloss.Color(cfg.Current)
	}
	if cfg.Date != "" {
		theme.Date = lipgloss.Color(cfg.Date)
	}
	if cfg.Merged != "" {
		theme.Merged = lipgloss.Color(cfg.Merged)
	}
	if cfg.Muted != "" {
		theme.Muted = lipgloss.Color(cfg.Muted)
	}

	return theme
}

// selectTheme picks the light or dark variant of the configured family.
// Config validation guarantees known names and modes; anything else falls
// back to the default family in auto mode.
func selectTheme(cfg config.ThemeConfig, isDark func() bool) Theme {
	family, ok := themeFamilies[cfg.Name]
	if !ok {
		family = themeFamilies["default"]
	}

	var theme *Theme
	switch cfg.Mode {
	case "light":
		theme = family.Light
	case "dark":
		theme = family.Dark
	default:
		if family.Light == nil || family.Dark == nil || isDark() {
			theme = family.Dark
		} else {
			theme = family.Light
		}
	}

	// Fall back if the requested variant doesn't exist
	if theme == nil {
		if family.Dark != nil {
			theme = family.Dark
		} else {
			theme = family.Light
		}
	}

	return *theme
}

// GetPreset returns a theme preset by name, or nil if not found
// For theme families with variants, returns the dark variant
func GetPreset(name string) *Theme {
	if family, ok := themeFamilies[name]; ok {
		if family.Dark != nil {
			return family.Dark
		}
		return family.Light
	}
	return nil
}
