package pages

import (
	"github.com/ConserveLee/zoot/app/appctx"
	"github.com/ConserveLee/zoot/app/route"
	"github.com/ConserveLee/zoot/internal/constants"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// NewHomePanel creates the landing page with shortcuts to the main screens
func NewHomePanel(ctx *appctx.Context) fyne.CanvasObject {
	title := widget.NewLabelWithStyle("欢迎使用 "+constants.AppName, fyne.TextAlignCenter, fyne.TextStyle{Bold: true})

	shortcuts := []route.Route{
		route.Tools(route.ToolsCopilot),
		route.Tools(route.ToolsRecruit),
		route.Tasks(),
		route.Dashboard(),
	}
	buttons := container.NewGridWithColumns(2)
	for _, r := range shortcuts {
		buttons.Add(widget.NewButton(shortcutLabel(r), func() {
			ctx.Route().Navigate(r)
		}))
	}

	return container.NewCenter(container.NewVBox(title, widget.NewSeparator(), buttons))
}

// shortcutLabel names a route by its tab when it has one
func shortcutLabel(r route.Route) string {
	if sub, ok := r.ToolsSub(); ok {
		return sub.Label()
	}
	if sub, ok := r.SettingsSub(); ok {
		return sub.Label()
	}
	return r.Label()
}
