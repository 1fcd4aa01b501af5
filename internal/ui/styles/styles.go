// Package styles provides the lipgloss styles used to decorate ref listings.
//
// Styles are values built once from the theme configuration and passed to
// the renderer. Nothing here is global or mutated after construction.
package styles

import (
	"charm.land/lipgloss/v2"
	"github.com/raphi011/git-recent/internal/config"
)

// Styles holds one lipgloss style per listing role plus the symbol set.
type Styles struct {
	// Current decorates the "* name" prefix of the checked-out branch (bold)
	Current lipgloss.Style

	// Date decorates the relative commit date
	Date lipgloss.Style

	// Merged decorates the merged marker
	Merged lipgloss.Style

	// Muted de-emphasizes author, subject and the summary line
	Muted lipgloss.Style

	// Selected highlights the cursor row of the interactive picker
	Selected lipgloss.Style

	Symbols Symbols
}

// New builds styles from a theme and symbol set.
func New(t Theme, sym Symbols) Styles {
	return Styles{
		Current: lipgloss.NewStyle().
			Foreground(t.Current).
			Bold(true),
		Date:   lipgloss.NewStyle().Foreground(t.Date),
		Merged: lipgloss.NewStyle().Foreground(t.Merged),
		Muted:  lipgloss.NewStyle().Foreground(t.Muted),
		Selected: lipgloss.NewStyle().
			Foreground(t.Current).
			Bold(true),
		Symbols: sym,
	}
}

// FromConfig resolves the configured theme and symbols into styles.
func FromConfig(cfg config.ThemeConfig, isDark func() bool) Styles {
	return New(ResolveTheme(cfg, isDark), SymbolsFor(cfg.Nerdfont))
}

// Plain returns styles that render text unchanged.
func Plain() Styles {
	return Styles{
		Current:  lipgloss.NewStyle(),
		Date:     lipgloss.NewStyle(),
		Merged:   lipgloss.NewStyle(),
		Muted:    lipgloss.NewStyle(),
		Selected: lipgloss.NewStyle(),
		Symbols:  SymbolsFor(false),
	}
}
