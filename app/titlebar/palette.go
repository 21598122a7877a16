package titlebar

import (
	"image/color"
	"math"

	"github.com/ConserveLee/zoot/internal/constants"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
	"github.com/lucasb-eyer/go-colorful"
)

// Palette is the slice of the theme the title bar uses
type Palette struct {
	Background color.Color
	Secondary  color.Color
	Radius     float32
	Dark       bool
}

// PaletteFromTheme reads the bar colors from a fyne theme
func PaletteFromTheme(th fyne.Theme, v fyne.ThemeVariant) Palette {
	return Palette{
		Background: th.Color(theme.ColorNameHeaderBackground, v),
		Secondary:  th.Color(theme.ColorNameButton, v),
		Radius:     th.Size(theme.SizeNameInputRadius),
		Dark:       v == theme.VariantDark,
	}
}

// pinnedVariant is a theme that ignores the system variant
type pinnedVariant interface {
	Variant() fyne.ThemeVariant
}

// CurrentPalette reads the palette of the running app's theme
func CurrentPalette() Palette {
	s := fyne.CurrentApp().Settings()
	th, v := s.Theme(), s.ThemeVariant()
	if p, ok := th.(pinnedVariant); ok {
		v = p.Variant()
	}
	return PaletteFromTheme(th, v)
}

// NeutralHover is the hover fill of the non-close controls: the secondary color
// lightened in dark mode, darkened in light mode
func (p Palette) NeutralHover() color.Color {
	factor := 1 + constants.HoverTintAmount
	if !p.Dark {
		factor = 1 - constants.HoverTintAmount
	}
	return withOpacity(scaleLightness(p.Secondary, factor), constants.HoverTintOpacity)
}

// scaleLightness multiplies the HSL lightness of c by factor, clamped to
// [0, 1]. The alpha of c is kept.
func scaleLightness(c color.Color, factor float64) color.Color {
	if c == nil {
		return color.Transparent
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	if n.A == 0 {
		return n
	}
	alpha := n.A
	n.A = 0xff
	cf, _ := colorful.MakeColor(n)
	h, s, l := cf.Hsl()
	l = math.Min(1, math.Max(0, l*factor))
	r, g, b := colorful.Hsl(h, s, l).Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: alpha}
}

func withOpacity(c color.Color, opacity float64) color.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = uint8(math.Round(float64(n.A) * opacity))
	return n
}
