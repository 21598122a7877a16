package shell

import (
	"github.com/ConserveLee/zoot/app/route"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
)

// pageTab converts a top-level route into its navigation tab
func pageTab(r route.Route, content fyne.CanvasObject) *container.TabItem {
	return container.NewTabItemWithIcon(r.Label(), pageIcon(r.Page()), content)
}

// toolsTab converts a Tools sub-route into its tab
func toolsTab(s route.ToolsSubRoute, content fyne.CanvasObject) *container.TabItem {
	return container.NewTabItem(s.Label(), content)
}

// settingsTab converts a Settings sub-route into its tab
func settingsTab(s route.SettingsSubRoute, content fyne.CanvasObject) *container.TabItem {
	return container.NewTabItem(s.Label(), content)
}

func pageIcon(p route.Page) fyne.Resource {
	switch p {
	case route.PageHome:
		return theme.HomeIcon()
	case route.PageTools:
		return theme.GridIcon()
	case route.PageTasks:
		return theme.ListIcon()
	case route.PageDashboard:
		return theme.ComputerIcon()
	case route.PageSettings:
		return theme.SettingsIcon()
	}
	return nil
}
