package shell

import (
	"github.com/ConserveLee/zoot/app/appctx"
	"github.com/ConserveLee/zoot/app/pages"
	"github.com/ConserveLee/zoot/app/route"
	"github.com/ConserveLee/zoot/app/titlebar"
	"github.com/ConserveLee/zoot/internal/constants"
	"github.com/ConserveLee/zoot/internal/window"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
)

// Shell is the assembled main window
type Shell struct {
	Window     fyne.Window
	Controller *window.Controller
	TitleBar   *titlebar.TitleBar
	Navigator  *Navigator
}

// DefaultPages maps every route onto its panel
func DefaultPages(a fyne.App, ctx *appctx.Context, win fyne.Window) Builder {
	applyTheme := func(name string) { ApplyTheme(a, name) }
	return func(r route.Route) fyne.CanvasObject {
		switch r.Page() {
		case route.PageHome:
			return pages.NewHomePanel(ctx)
		case route.PageDashboard:
			return pages.NewDashboardPanel(ctx)
		case route.PageTasks:
			return pages.NewPlaceholderPanel(r.Label())
		}
		if s, ok := r.ToolsSub(); ok && s == route.ToolsRecruit {
			return pages.NewRecruitPanel(win, ctx.Logger)
		}
		if s, ok := r.SettingsSub(); ok {
			switch s {
			case route.SettingsGeneral:
				return pages.NewGeneralSettingsPanel(ctx, applyTheme)
			case route.SettingsAdvanced:
				return pages.NewAdvancedSettingsPanel(ctx)
			case route.SettingsAbout:
				return pages.NewAboutPanel()
			}
		}
		return pages.NewPlaceholderPanel(r.Label())
	}
}

// newWindow creates a borderless window when the config asks for one and the
// driver can provide it. macOS keeps its native frame.
func newWindow(a fyne.App, ctx *appctx.Context) fyne.Window {
	if ctx.Config.Frameless && titlebar.CurrentPlatform() != titlebar.PlatformMacOS {
		if drv, ok := a.Driver().(desktop.Driver); ok {
			win := drv.CreateSplashWindow()
			win.SetTitle(constants.AppName)
			return win
		}
	}
	return a.NewWindow(constants.AppName)
}

// New builds the main window. Pass a nil native to drive the OS window
// through the platform backend.
func New(a fyne.App, ctx *appctx.Context, native window.Native, build func(fyne.Window) Builder) *Shell {
	win := newWindow(a, ctx)
	win.SetMaster()
	win.Resize(fyne.NewSize(float32(ctx.Config.WindowWidth), float32(ctx.Config.WindowHeight)))

	if native == nil {
		native = window.NewNative(win)
	}
	if build == nil {
		build = func(w fyne.Window) Builder { return DefaultPages(a, ctx, w) }
	}

	s := &Shell{
		Window:     win,
		Controller: window.NewController(win, native, ctx.Logger),
	}
	s.TitleBar = titlebar.New(constants.AppName, s.Controller)
	s.Navigator = NewNavigator(ctx, build(win))

	content := container.NewBorder(s.TitleBar, nil, nil, nil, s.Navigator.Content())
	s.Controller.OnChanged(func() {
		fyne.Do(content.Refresh)
	})
	win.Canvas().AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyF11}, func(fyne.Shortcut) {
		s.Controller.ToggleFullScreen()
	})
	win.SetOnClosed(s.Navigator.Close)
	win.SetContent(content)

	ApplyTheme(a, ctx.Config.Theme)
	ctx.Logger.Info("%s %s 已启动", constants.AppName, constants.AppVersion)
	return s
}
