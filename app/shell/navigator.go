package shell

import (
	"github.com/ConserveLee/zoot/app/appctx"
	"github.com/ConserveLee/zoot/app/route"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
)

// Builder creates the content shown for a route. It is called once per route.
type Builder func(r route.Route) fyne.CanvasObject

// Navigator keeps the tab bar and the route container in step: picking a tab
// navigates, and navigating from anywhere selects the matching tab.
type Navigator struct {
	ctx *appctx.Context

	tabs         *container.AppTabs
	toolTabs     *container.AppTabs
	settingTabs  *container.AppTabs
	pageItems    map[route.Page]*container.TabItem
	toolItems    map[route.ToolsSubRoute]*container.TabItem
	settingItems map[route.SettingsSubRoute]*container.TabItem

	// Sub-route to return to when a parent tab is picked again
	lastTool    route.ToolsSubRoute
	lastSetting route.SettingsSubRoute

	syncing bool
	sub     *route.Subscription
	closers []closer
}

// closer is implemented by pages holding subscriptions of their own
type closer interface {
	Close()
}

// NewNavigator builds the tab tree and subscribes it to the route container
func NewNavigator(ctx *appctx.Context, pageFor Builder) *Navigator {
	n := &Navigator{
		ctx:          ctx,
		pageItems:    make(map[route.Page]*container.TabItem),
		toolItems:    make(map[route.ToolsSubRoute]*container.TabItem),
		settingItems: make(map[route.SettingsSubRoute]*container.TabItem),
	}
	build := func(r route.Route) fyne.CanvasObject {
		o := pageFor(r)
		if c, ok := o.(closer); ok {
			n.closers = append(n.closers, c)
		}
		return o
	}

	n.toolTabs = container.NewAppTabs()
	for _, s := range route.AllTools() {
		item := toolsTab(s, build(route.Tools(s)))
		n.toolItems[s] = item
		n.toolTabs.Append(item)
	}

	n.settingTabs = container.NewAppTabs()
	for _, s := range route.AllSettings() {
		item := settingsTab(s, build(route.Settings(s)))
		n.settingItems[s] = item
		n.settingTabs.Append(item)
	}

	n.tabs = container.NewAppTabs()
	n.tabs.SetTabLocation(container.TabLocationLeading)
	for _, r := range []route.Route{route.Home(), route.Tools(n.lastTool), route.Tasks(), route.Dashboard(), route.Settings(n.lastSetting)} {
		var content fyne.CanvasObject
		switch r.Page() {
		case route.PageTools:
			content = n.toolTabs
		case route.PageSettings:
			content = n.settingTabs
		default:
			content = build(r)
		}
		item := pageTab(r, content)
		n.pageItems[r.Page()] = item
		n.tabs.Append(item)
	}

	n.tabs.OnSelected = n.onPageSelected
	n.toolTabs.OnSelected = n.onToolSelected
	n.settingTabs.OnSelected = n.onSettingSelected

	n.show(ctx.CurrentRoute())
	n.sub = ctx.RouteReader().Subscribe(func(r route.Route) {
		ctx.Logger.Info("切换页面: %s (%s)", r.Label(), r.ID())
		fyne.Do(func() { n.show(r) })
	})
	return n
}

// Content returns the root tab container
func (n *Navigator) Content() fyne.CanvasObject {
	return n.tabs
}

// Close detaches the navigator and its pages from the route container
func (n *Navigator) Close() {
	n.sub.Cancel()
	for _, c := range n.closers {
		c.Close()
	}
	n.closers = nil
}

func (n *Navigator) onPageSelected(item *container.TabItem) {
	if n.syncing {
		return
	}
	for page, it := range n.pageItems {
		if it != item {
			continue
		}
		switch page {
		case route.PageHome:
			n.navigate(route.Home())
		case route.PageTools:
			n.navigate(route.Tools(n.lastTool))
		case route.PageTasks:
			n.navigate(route.Tasks())
		case route.PageDashboard:
			n.navigate(route.Dashboard())
		case route.PageSettings:
			n.navigate(route.Settings(n.lastSetting))
		}
		return
	}
}

func (n *Navigator) onToolSelected(item *container.TabItem) {
	if n.syncing {
		return
	}
	for s, it := range n.toolItems {
		if it == item {
			n.navigate(route.Tools(s))
			return
		}
	}
}

func (n *Navigator) onSettingSelected(item *container.TabItem) {
	if n.syncing {
		return
	}
	for s, it := range n.settingItems {
		if it == item {
			n.navigate(route.Settings(s))
			return
		}
	}
}

func (n *Navigator) navigate(r route.Route) {
	n.ctx.Route().Navigate(r)
}

// show selects the tabs for r without navigating again
func (n *Navigator) show(r route.Route) {
	n.syncing = true
	defer func() { n.syncing = false }()

	if s, ok := r.ToolsSub(); ok {
		n.lastTool = s
		n.toolTabs.Select(n.toolItems[s])
	}
	if s, ok := r.SettingsSub(); ok {
		n.lastSetting = s
		n.settingTabs.Select(n.settingItems[s])
	}
	n.tabs.Select(n.pageItems[r.Page()])
}
