package titlebar

import (
	"image/color"
	"testing"

	"github.com/ConserveLee/zoot/internal/constants"

	"fyne.io/fyne/v2/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testPalette = Palette{
	Background: color.NRGBA{R: 0x20, G: 0x20, B: 0x24, A: 0xff},
	Secondary:  color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff},
	Radius:     4,
	Dark:       true,
}

func controlIDs(b Bar) []string {
	var ids []string
	for _, c := range b.Controls {
		ids = append(ids, c.ID)
	}
	return ids
}

func TestMacOSFullScreenCollapses(t *testing.T) {
	b := Layout("Zoot", Metrics{FullScreen: true}, testPalette, PlatformMacOS)
	assert.Equal(t, float32(0), b.Height)
	assert.False(t, b.Visible)
	assert.Empty(t, b.Controls)
}

func TestMacOSWindowed(t *testing.T) {
	b := Layout("Zoot", Metrics{}, testPalette, PlatformMacOS)
	assert.Equal(t, float32(constants.TitleBarHeight), b.Height)
	assert.True(t, b.Visible)
	assert.Equal(t, float32(constants.TitleBarPaddingMacOS), b.PaddingLeft)
	assert.Empty(t, b.Controls, "native controls are used on macOS")
	assert.False(t, b.DoubleClickZoom)
}

func TestNonMacOSControls(t *testing.T) {
	for _, p := range []Platform{PlatformLinux, PlatformWindows, PlatformOther} {
		for _, fs := range []bool{false, true} {
			b := Layout("Zoot", Metrics{FullScreen: fs, Maximized: false}, testPalette, p)
			assert.Equal(t, []string{"minimize", "maximize", "close"}, controlIDs(b), p.String())
			assert.True(t, b.Visible)
			assert.Equal(t, float32(constants.TitleBarPadding), b.PaddingLeft)

			b = Layout("Zoot", Metrics{FullScreen: fs, Maximized: true}, testPalette, p)
			assert.Equal(t, []string{"minimize", "restore", "close"}, controlIDs(b), p.String())
		}
	}
}

func TestControlRolesAndIcons(t *testing.T) {
	b := Layout("Zoot", Metrics{Maximized: true}, testPalette, PlatformWindows)
	require.Len(t, b.Controls, 3)

	assert.Equal(t, AreaMin, b.Controls[0].Area)
	assert.Equal(t, theme.IconNameWindowMinimize, b.Controls[0].Icon)
	assert.Equal(t, AreaMax, b.Controls[1].Area)
	assert.Equal(t, theme.IconNameViewRestore, b.Controls[1].Icon)
	assert.Equal(t, AreaClose, b.Controls[2].Area)
	assert.Equal(t, theme.IconNameWindowClose, b.Controls[2].Icon)
	assert.Equal(t, AreaDrag, b.Area)

	b = Layout("Zoot", Metrics{}, testPalette, PlatformWindows)
	assert.Equal(t, theme.IconNameWindowMaximize, b.Controls[1].Icon)
}

func TestDoubleClickZoomOnlyOnLinux(t *testing.T) {
	assert.True(t, Layout("Zoot", Metrics{}, testPalette, PlatformLinux).DoubleClickZoom)
	assert.False(t, Layout("Zoot", Metrics{}, testPalette, PlatformWindows).DoubleClickZoom)
	assert.False(t, Layout("Zoot", Metrics{}, testPalette, PlatformMacOS).DoubleClickZoom)
}

func TestHoverColors(t *testing.T) {
	b := Layout("Zoot", Metrics{}, testPalette, PlatformLinux)
	assert.Equal(t, closeHoverColor, b.Controls[2].Hover)
	assert.Equal(t, b.Controls[0].Hover, b.Controls[1].Hover)
	assert.NotEqual(t, closeHoverColor, b.Controls[0].Hover)
}

func TestPlatformFor(t *testing.T) {
	assert.Equal(t, PlatformMacOS, platformFor("darwin"))
	assert.Equal(t, PlatformLinux, platformFor("linux"))
	assert.Equal(t, PlatformWindows, platformFor("windows"))
	assert.Equal(t, PlatformOther, platformFor("freebsd"))
}
