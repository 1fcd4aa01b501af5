package styles

import (
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/raphi011/git-recent/internal/config"
)

func dark() bool  { return true }
func light() bool { return false }

func TestResolveTheme_Default(t *testing.T) {
	theme := ResolveTheme(config.ThemeConfig{}, dark)

	if theme.Current != lipgloss.Color("82") {
		t.Errorf("expected default current color 82, got %v", theme.Current)
	}
	if theme.Merged != lipgloss.Color("212") {
		t.Errorf("expected default merged color 212, got %v", theme.Merged)
	}
}

func TestResolveTheme_Presets(t *testing.T) {
	tests := []struct {
		name   string
		cfg    config.ThemeConfig
		isDark func() bool
		want   Theme
	}{
		{"dracula", config.ThemeConfig{Name: "dracula"}, dark, DraculaTheme},
		{"nord auto dark", config.ThemeConfig{Name: "nord"}, dark, NordTheme},
		{"nord auto light", config.ThemeConfig{Name: "nord"}, light, NordLightTheme},
		{"gruvbox forced light", config.ThemeConfig{Name: "gruvbox", Mode: "light"}, dark, GruvboxLightTheme},
		{"catppuccin forced dark", config.ThemeConfig{Name: "catppuccin", Mode: "dark"}, light, CatppuccinMochaTheme},
		{"dark-only family in light mode", config.ThemeConfig{Name: "dracula", Mode: "light"}, light, DraculaTheme},
		{"none", config.ThemeConfig{Name: "none"}, dark, NoneTheme},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveTheme(tt.cfg, tt.isDark); got != tt.want {
				t.Errorf("ResolveTheme(%+v) = %+v, want %+v", tt.cfg, got, tt.want)
			}
		})
	}
}

func TestResolveTheme_AutoQueriesOnlyWhenNeeded(t *testing.T) {
	called := false
	probe := func() bool { called = true; return true }

	ResolveTheme(config.ThemeConfig{Name: "dracula"}, probe)
	if called {
		t.Error("isDark called for a dark-only family")
	}

	ResolveTheme(config.ThemeConfig{Name: "nord", Mode: "dark"}, probe)
	if called {
		t.Error("isDark called with an explicit mode")
	}

	ResolveTheme(config.ThemeConfig{Name: "nord"}, probe)
	if !called {
		t.Error("isDark not called for auto mode on a two-variant family")
	}
}

func TestResolveTheme_Overrides(t *testing.T) {
	theme := ResolveTheme(config.ThemeConfig{
		Name:   "dracula",
		Merged: "#123456",
		Muted:  "240",
	}, dark)

	if theme.Current != DraculaTheme.Current {
		t.Errorf("expected dracula current color, got %v", theme.Current)
	}
	if theme.Merged != lipgloss.Color("#123456") {
		t.Errorf("expected merged override #123456, got %v", theme.Merged)
	}
	if theme.Muted != lipgloss.Color("240") {
		t.Errorf("expected muted override 240, got %v", theme.Muted)
	}
}

func TestGetPreset(t *testing.T) {
	if GetPreset("dracula") == nil {
		t.Error("expected dracula preset to exist")
	}
	if got := GetPreset("nord"); got == nil || *got != NordTheme {
		t.Errorf("GetPreset(nord) = %v, want dark variant", got)
	}
	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestPresetsCoverConfigNames(t *testing.T) {
	for _, name := range config.ValidThemeNames {
		if GetPreset(name) == nil {
			t.Errorf("theme name %q accepted by config has no preset", name)
		}
	}
}

func TestFromConfig(t *testing.T) {
	s := FromConfig(config.ThemeConfig{Nerdfont: true, Current: "#00ff00"}, dark)

	if s.Symbols.Merged != "\ueafe merged" {
		t.Errorf("Symbols.Merged = %q, want nerdfont glyph", s.Symbols.Merged)
	}
	if s.Current.GetForeground() != lipgloss.Color("#00ff00") {
		t.Errorf("Current foreground = %v, want #00ff00", s.Current.GetForeground())
	}
	if !s.Current.GetBold() {
		t.Error("Current style should be bold")
	}
}

func TestPlain_RendersUnchanged(t *testing.T) {
	s := Plain()
	for name, style := range map[string]lipgloss.Style{
		"current": s.Current, "date": s.Date, "merged": s.Merged, "muted": s.Muted,
	} {
		if got := style.Render("4 days ago"); got != "4 days ago" {
			t.Errorf("Plain().%s.Render = %q, want unchanged", name, got)
		}
	}
}
