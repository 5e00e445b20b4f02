package ui

import (
	"testing"

	"fyne.io/fyne/v2/theme"
)

func TestThemeFromConfig(t *testing.T) {
	if th := ThemeFromConfig("light"); th.system || th.variant != theme.VariantLight {
		t.Errorf("light config should pin the light variant, got %+v", th)
	}
	if th := ThemeFromConfig("dark"); th.system || th.variant != theme.VariantDark {
		t.Errorf("dark config should pin the dark variant, got %+v", th)
	}
	if th := ThemeFromConfig("system"); !th.system {
		t.Error("system config should follow the requested variant")
	}
	if th := ThemeFromConfig(""); !th.system {
		t.Error("empty config should follow the requested variant")
	}
}

func TestThemeCompactSizes(t *testing.T) {
	th := NewPizzaCutTheme()
	if got := th.Size(theme.SizeNameText); got != 12 {
		t.Errorf("expected text size 12, got %v", got)
	}
	if got := th.Size(theme.SizeNamePadding); got != 3 {
		t.Errorf("expected padding 3, got %v", got)
	}
}
