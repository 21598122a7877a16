package titlebar

import (
	"image/color"

	"github.com/ConserveLee/zoot/internal/constants"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// ControlArea tells the window which role a region of the chrome plays
type ControlArea int

const (
	AreaDrag ControlArea = iota
	AreaMin
	AreaMax
	AreaClose
)

// Metrics is the window state the bar is drawn from
type Metrics struct {
	FullScreen bool
	Maximized  bool
}

// Control describes one window button
type Control struct {
	ID    string
	Icon  fyne.ThemeIconName
	Area  ControlArea
	Hover color.Color
}

// Bar is the computed title bar for one render pass
type Bar struct {
	Title           string
	Height          float32
	Visible         bool
	PaddingLeft     float32
	PaddingRight    float32
	Area            ControlArea
	DoubleClickZoom bool
	Background      color.Color
	Radius          float32
	Controls        []Control // Empty when the platform draws its own buttons
}

// red-400
var closeHoverColor = color.NRGBA{R: 0xf8, G: 0x71, B: 0x71, A: 0xff}

var (
	controlMinimize = Control{ID: "minimize", Icon: theme.IconNameWindowMinimize, Area: AreaMin}
	controlMaximize = Control{ID: "maximize", Icon: theme.IconNameWindowMaximize, Area: AreaMax}
	controlRestore  = Control{ID: "restore", Icon: theme.IconNameViewRestore, Area: AreaMax}
	controlClose    = Control{ID: "close", Icon: theme.IconNameWindowClose, Area: AreaClose}
)

// Layout computes the bar for the given window state, theme and platform
func Layout(title string, m Metrics, pal Palette, p Platform) Bar {
	bar := Bar{
		Title:           title,
		Height:          constants.TitleBarHeight,
		Visible:         true,
		PaddingLeft:     constants.TitleBarPadding,
		PaddingRight:    constants.TitleBarPaddingRight,
		Area:            AreaDrag,
		DoubleClickZoom: p == PlatformLinux,
		Background:      pal.Background,
		Radius:          pal.Radius,
	}

	if p == PlatformMacOS {
		bar.PaddingLeft = constants.TitleBarPaddingMacOS
		if m.FullScreen {
			bar.Height = 0
			bar.Visible = false
		}
		// Native traffic lights are used on macOS
		return bar
	}

	middle := controlMaximize
	if m.Maximized {
		middle = controlRestore
	}
	neutral := pal.NeutralHover()
	for _, c := range []Control{controlMinimize, middle, controlClose} {
		if c.Area == AreaClose {
			c.Hover = closeHoverColor
		} else {
			c.Hover = neutral
		}
		bar.Controls = append(bar.Controls, c)
	}
	return bar
}
