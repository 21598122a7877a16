package shell

import (
	"strings"
	"testing"

	"github.com/ConserveLee/zoot/app/appctx"
	"github.com/ConserveLee/zoot/app/pages"
	"github.com/ConserveLee/zoot/app/route"
	"github.com/ConserveLee/zoot/internal/config"
	"github.com/ConserveLee/zoot/internal/logger"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeNative struct {
	minimized int
}

func (n *fakeNative) Minimize() error        { n.minimized++; return nil }
func (n *fakeNative) SetMaximized(bool) error { return nil }
func (n *fakeNative) BeginMove() error        { return nil }
func (n *fakeNative) Move() error             { return nil }

func labels(r route.Route) fyne.CanvasObject {
	return widget.NewLabel(r.ID())
}

func newTestContext(t *testing.T) (*appctx.Context, binding.StringList) {
	test.NewTempApp(t)
	data := binding.NewStringList()
	log := logger.NewAppLogger(data)
	log.SetConsole(&strings.Builder{})
	return appctx.New(config.DefaultConfig(), log), data
}

func TestNavigatorBuildsEveryRoute(t *testing.T) {
	ctx, _ := newTestContext(t)
	var built []route.Route
	n := NewNavigator(ctx, func(r route.Route) fyne.CanvasObject {
		built = append(built, r)
		return labels(r)
	})
	defer n.Close()

	// Tools and Settings are containers, their sub-routes are built instead
	assert.ElementsMatch(t, []route.Route{
		route.Home(), route.Tasks(), route.Dashboard(),
		route.Tools(route.ToolsCopilot), route.Tools(route.ToolsRecruit), route.Tools(route.ToolsGacha),
		route.Settings(route.SettingsGeneral), route.Settings(route.SettingsAdvanced), route.Settings(route.SettingsAbout),
	}, built)
	assert.Len(t, n.tabs.Items, 5)
	assert.Len(t, n.toolTabs.Items, len(route.AllTools()))
	assert.Len(t, n.settingTabs.Items, len(route.AllSettings()))
	assert.Equal(t, n.pageItems[route.PageHome], n.tabs.Selected())
}

func TestNavigatorFollowsRoute(t *testing.T) {
	ctx, _ := newTestContext(t)
	n := NewNavigator(ctx, labels)
	defer n.Close()

	ctx.Route().Navigate(route.Tools(route.ToolsGacha))
	assert.Equal(t, n.pageItems[route.PageTools], n.tabs.Selected())
	assert.Equal(t, n.toolItems[route.ToolsGacha], n.toolTabs.Selected())

	ctx.Route().Navigate(route.Settings(route.SettingsAbout))
	assert.Equal(t, n.pageItems[route.PageSettings], n.tabs.Selected())
	assert.Equal(t, n.settingItems[route.SettingsAbout], n.settingTabs.Selected())
}

func TestTabSelectionNavigates(t *testing.T) {
	ctx, data := newTestContext(t)
	n := NewNavigator(ctx, labels)
	defer n.Close()

	n.tabs.Select(n.pageItems[route.PageDashboard])
	assert.Equal(t, route.Dashboard(), ctx.CurrentRoute())

	n.tabs.Select(n.pageItems[route.PageTools])
	n.toolTabs.Select(n.toolItems[route.ToolsRecruit])
	assert.Equal(t, route.Tools(route.ToolsRecruit), ctx.CurrentRoute())

	// Coming back to Tools restores the last sub-route
	n.tabs.Select(n.pageItems[route.PageHome])
	n.tabs.Select(n.pageItems[route.PageTools])
	assert.Equal(t, route.Tools(route.ToolsRecruit), ctx.CurrentRoute())

	lines, err := data.Get()
	require.NoError(t, err)
	require.NotEmpty(t, lines)
	assert.Contains(t, lines[len(lines)-1], "tools-recruit")
}

func findButton(t *testing.T, obj fyne.CanvasObject, text string) *widget.Button {
	t.Helper()
	var found *widget.Button
	var walk func(fyne.CanvasObject)
	walk = func(o fyne.CanvasObject) {
		switch v := o.(type) {
		case *widget.Button:
			if v.Text == text {
				found = v
			}
		case *fyne.Container:
			for _, child := range v.Objects {
				walk(child)
			}
		}
	}
	walk(obj)
	require.NotNil(t, found, "button %q", text)
	return found
}

func TestRouteChangesFromPagesAreLogged(t *testing.T) {
	ctx, data := newTestContext(t)
	n := NewNavigator(ctx, labels)
	defer n.Close()
	home := pages.NewHomePanel(ctx)

	test.Tap(findButton(t, home, "仪表盘"))
	assert.Equal(t, route.Dashboard(), ctx.CurrentRoute())
	assert.Equal(t, n.pageItems[route.PageDashboard], n.tabs.Selected())

	lines, err := data.Get()
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "切换页面: 仪表盘 (dashboard)")

	// Navigating to the page already shown logs nothing
	test.Tap(findButton(t, home, "仪表盘"))
	lines, _ = data.Get()
	assert.Len(t, lines, 1)
}

func TestNavigatorCloseStopsFollowing(t *testing.T) {
	ctx, _ := newTestContext(t)
	n := NewNavigator(ctx, labels)
	n.Close()

	ctx.Route().Navigate(route.Tasks())
	assert.Equal(t, n.pageItems[route.PageHome], n.tabs.Selected())
}

func TestThemeFor(t *testing.T) {
	assert.Equal(t, theme.DefaultTheme(), ThemeFor(config.ThemeAuto))
	assert.Equal(t, theme.DefaultTheme(), ThemeFor("unknown"))

	dark := ThemeFor(config.ThemeDark)
	light := ThemeFor(config.ThemeLight)
	assert.Equal(t, theme.VariantDark, dark.(*variantTheme).Variant())
	assert.Equal(t, theme.VariantLight, light.(*variantTheme).Variant())

	// The requested variant is ignored
	assert.Equal(t,
		theme.DefaultTheme().Color(theme.ColorNameBackground, theme.VariantDark),
		dark.Color(theme.ColorNameBackground, theme.VariantLight))
}

func TestShellWiresTitleBarAndTabs(t *testing.T) {
	ctx, _ := newTestContext(t)
	a := fyne.CurrentApp()
	native := &fakeNative{}

	s := New(a, ctx, native, func(fyne.Window) Builder { return labels })
	defer s.Window.Close()

	assert.Equal(t, s.Navigator.Content(), s.Window.Content().(*fyne.Container).Objects[0])

	s.Controller.Minimize()
	assert.Equal(t, 1, native.minimized)

	s.Controller.ToggleFullScreen()
	assert.True(t, s.Window.FullScreen())
}
