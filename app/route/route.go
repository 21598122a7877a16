package route

import (
	"errors"
	"fmt"
)

// ErrUnknownRoute is returned by Parse for an id no route maps to
var ErrUnknownRoute = errors.New("unknown route")

// Page is the top-level screen a Route points at
type Page int

const (
	PageHome Page = iota
	PageTools
	PageTasks
	PageDashboard
	PageSettings
)

// ToolsSubRoute selects a tab inside the Tools page
type ToolsSubRoute int

const (
	ToolsCopilot ToolsSubRoute = iota
	ToolsRecruit
	ToolsGacha
)

// SettingsSubRoute selects a tab inside the Settings page
type SettingsSubRoute int

const (
	SettingsGeneral SettingsSubRoute = iota
	SettingsAdvanced
	SettingsAbout
)

// Route identifies the screen currently displayed.
// Values are comparable with ==; build them with the constructors below so the
// sub-route fields stay zero for pages that don't own them.
type Route struct {
	page     Page
	tools    ToolsSubRoute
	settings SettingsSubRoute
}

func Home() Route      { return Route{page: PageHome} }
func Tasks() Route     { return Route{page: PageTasks} }
func Dashboard() Route { return Route{page: PageDashboard} }

// Tools returns the Tools page with the given tab selected
func Tools(sub ToolsSubRoute) Route { return Route{page: PageTools, tools: sub} }

// Settings returns the Settings page with the given tab selected
func Settings(sub SettingsSubRoute) Route { return Route{page: PageSettings, settings: sub} }

// Page returns the top-level page of the route
func (r Route) Page() Page { return r.page }

// ToolsSub returns the Tools tab, ok is false for other pages
func (r Route) ToolsSub() (ToolsSubRoute, bool) {
	return r.tools, r.page == PageTools
}

// SettingsSub returns the Settings tab, ok is false for other pages
func (r Route) SettingsSub() (SettingsSubRoute, bool) {
	return r.settings, r.page == PageSettings
}

// ID returns the stable machine-readable identifier of the route
func (r Route) ID() string {
	switch r.page {
	case PageHome:
		return "home"
	case PageTools:
		switch r.tools {
		case ToolsCopilot:
			return "tools-copliot" // sic, ids must stay stable
		case ToolsRecruit:
			return "tools-recruit"
		case ToolsGacha:
			return "tools-gacha"
		}
	case PageTasks:
		return "tasks"
	case PageDashboard:
		return "dashboard"
	case PageSettings:
		switch r.settings {
		case SettingsGeneral:
			return "settings-general"
		case SettingsAdvanced:
			return "settings-advanced"
		case SettingsAbout:
			return "settings-about"
		}
	}
	return fmt.Sprintf("invalid-%d-%d-%d", r.page, r.tools, r.settings)
}

// Label returns the display name of the page. Sub-routes don't change it.
func (r Route) Label() string {
	switch r.page {
	case PageHome:
		return "主页"
	case PageTools:
		return "工具"
	case PageTasks:
		return "任务列表"
	case PageDashboard:
		return "仪表盘"
	case PageSettings:
		return "设置"
	}
	return ""
}

func (r Route) String() string { return r.ID() }

// Label returns the tab title of the tool
func (s ToolsSubRoute) Label() string {
	switch s {
	case ToolsCopilot:
		return "自动战斗"
	case ToolsRecruit:
		return "公招识别"
	case ToolsGacha:
		return "牛牛抽卡"
	}
	return ""
}

// Label returns the tab title of the settings section
func (s SettingsSubRoute) Label() string {
	switch s {
	case SettingsGeneral:
		return "基础设置"
	case SettingsAdvanced:
		return "高级设置"
	case SettingsAbout:
		return "关于"
	}
	return ""
}

// AllTools lists the Tools tabs in display order
func AllTools() []ToolsSubRoute {
	return []ToolsSubRoute{ToolsCopilot, ToolsRecruit, ToolsGacha}
}

// AllSettings lists the Settings tabs in display order
func AllSettings() []SettingsSubRoute {
	return []SettingsSubRoute{SettingsGeneral, SettingsAdvanced, SettingsAbout}
}

// All enumerates every route value in navigation order
func All() []Route {
	routes := []Route{Home()}
	for _, s := range AllTools() {
		routes = append(routes, Tools(s))
	}
	routes = append(routes, Tasks(), Dashboard())
	for _, s := range AllSettings() {
		routes = append(routes, Settings(s))
	}
	return routes
}

// Parse maps an identifier produced by ID back to its route
func Parse(id string) (Route, error) {
	for _, r := range All() {
		if r.ID() == id {
			return r, nil
		}
	}
	return Route{}, fmt.Errorf("parse %q: %w", id, ErrUnknownRoute)
}
