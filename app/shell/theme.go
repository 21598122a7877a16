package shell

import (
	"image/color"

	"github.com/ConserveLee/zoot/internal/config"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// variantTheme is the default theme pinned to one variant
type variantTheme struct {
	fyne.Theme
	variant fyne.ThemeVariant
}

var _ fyne.Theme = (*variantTheme)(nil)

func (t *variantTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	return t.Theme.Color(name, t.variant)
}

// Variant reports the pinned variant
func (t *variantTheme) Variant() fyne.ThemeVariant {
	return t.variant
}

// ThemeFor returns the theme matching a config theme value
func ThemeFor(name string) fyne.Theme {
	switch name {
	case config.ThemeLight:
		return &variantTheme{Theme: theme.DefaultTheme(), variant: theme.VariantLight}
	case config.ThemeDark:
		return &variantTheme{Theme: theme.DefaultTheme(), variant: theme.VariantDark}
	default:
		return theme.DefaultTheme()
	}
}

// ApplyTheme switches the running app to the named theme
func ApplyTheme(a fyne.App, name string) {
	a.Settings().SetTheme(ThemeFor(name))
}
