// Package ui provides the PizzaCut desktop viewer.
//
// This file defines a compact Fyne theme so large grids keep their room.

package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// PizzaCutTheme wraps the default Fyne theme with compact sizing overrides.
type PizzaCutTheme struct {
	base    fyne.Theme
	variant fyne.ThemeVariant
	system  bool // follow the variant Fyne asks for
}

// NewPizzaCutTheme creates a theme that follows the system variant.
func NewPizzaCutTheme() *PizzaCutTheme {
	return &PizzaCutTheme{
		base:   theme.DefaultTheme(),
		system: true,
	}
}

// NewPizzaCutThemeWithVariant creates a PizzaCutTheme pinned to a light or dark variant.
func NewPizzaCutThemeWithVariant(variant fyne.ThemeVariant) *PizzaCutTheme {
	return &PizzaCutTheme{
		base:    theme.DefaultTheme(),
		variant: variant,
	}
}

// ThemeFromConfig maps the "light", "dark" or "system" config value to a theme.
func ThemeFromConfig(name string) *PizzaCutTheme {
	switch name {
	case "light":
		return NewPizzaCutThemeWithVariant(theme.VariantLight)
	case "dark":
		return NewPizzaCutThemeWithVariant(theme.VariantDark)
	default:
		return NewPizzaCutTheme()
	}
}

// Color delegates to the base theme with the stored variant.
func (t *PizzaCutTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	if t.system {
		return t.base.Color(name, variant)
	}
	return t.base.Color(name, t.variant)
}

// Font delegates to the base theme.
func (t *PizzaCutTheme) Font(style fyne.TextStyle) fyne.Resource {
	return t.base.Font(style)
}

// Icon delegates to the base theme.
func (t *PizzaCutTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.base.Icon(name)
}

// Size returns compact sizing overrides.
func (t *PizzaCutTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameText:
		return 12
	case theme.SizeNameCaptionText:
		return 9
	case theme.SizeNameHeadingText:
		return 20
	case theme.SizeNameSubHeadingText:
		return 15
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameInlineIcon:
		return 16
	default:
		return t.base.Size(name)
	}
}
