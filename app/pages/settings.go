package pages

import (
	"github.com/ConserveLee/zoot/app/appctx"
	"github.com/ConserveLee/zoot/internal/config"
	"github.com/ConserveLee/zoot/internal/constants"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

var themeOptions = []struct {
	Label string
	Value string
}{
	{"跟随系统", config.ThemeAuto},
	{"浅色", config.ThemeLight},
	{"深色", config.ThemeDark},
}

func themeLabel(value string) string {
	for _, o := range themeOptions {
		if o.Value == value {
			return o.Label
		}
	}
	return themeOptions[0].Label
}

func themeValue(label string) string {
	for _, o := range themeOptions {
		if o.Label == label {
			return o.Value
		}
	}
	return config.ThemeAuto
}

// NewGeneralSettingsPanel lets the user pick the theme. applyTheme is called
// with the config value of the new choice.
func NewGeneralSettingsPanel(ctx *appctx.Context, applyTheme func(string)) fyne.CanvasObject {
	labels := make([]string, len(themeOptions))
	for i, o := range themeOptions {
		labels[i] = o.Label
	}

	themeSelect := widget.NewRadioGroup(labels, nil)
	themeSelect.Horizontal = true
	themeSelect.SetSelected(themeLabel(ctx.Config.Theme))
	themeSelect.OnChanged = func(s string) {
		value := themeValue(s)
		if value == ctx.Config.Theme {
			return
		}
		ctx.Config.Theme = value
		saveConfig(ctx)
		if applyTheme != nil {
			applyTheme(value)
		}
	}

	return widget.NewForm(widget.NewFormItem("主题", themeSelect))
}

// NewAdvancedSettingsPanel exposes debug logging and the frameless window option
func NewAdvancedSettingsPanel(ctx *appctx.Context) fyne.CanvasObject {
	debugCheck := widget.NewCheck("调试日志 (Debug Log)", nil)
	debugCheck.SetChecked(ctx.Config.DebugMode)
	debugCheck.OnChanged = func(on bool) {
		ctx.Config.DebugMode = on
		ctx.Logger.SetDebug(on)
		saveConfig(ctx)
	}

	framelessCheck := widget.NewCheck("自定义标题栏 (重启后生效)", nil)
	framelessCheck.SetChecked(ctx.Config.Frameless)
	framelessCheck.OnChanged = func(on bool) {
		ctx.Config.Frameless = on
		saveConfig(ctx)
	}

	return container.NewVBox(debugCheck, framelessCheck)
}

// NewAboutPanel shows the application name and version
func NewAboutPanel() fyne.CanvasObject {
	return container.NewCenter(container.NewVBox(
		widget.NewLabelWithStyle(constants.AppName, fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("版本 "+constants.AppVersion, fyne.TextAlignCenter, fyne.TextStyle{}),
	))
}

func saveConfig(ctx *appctx.Context) {
	if ctx.Config.Path() == "" {
		return
	}
	if err := ctx.Config.Save(); err != nil {
		ctx.Logger.Error("保存配置失败: %v", err)
	}
}
