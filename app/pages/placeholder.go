package pages

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// NewPlaceholderPanel creates the panel shown for screens still in development
func NewPlaceholderPanel(name string) fyne.CanvasObject {
	return container.NewCenter(
		container.NewVBox(
			widget.NewIcon(theme.InfoIcon()),
			widget.NewLabelWithStyle(name+" 功能开发中...", fyne.TextAlignCenter, fyne.TextStyle{}),
		),
	)
}
