package main

import (
	"github.com/ConserveLee/zoot/app/appctx"
	"github.com/ConserveLee/zoot/app/shell"
	"github.com/ConserveLee/zoot/internal/config"
	"github.com/ConserveLee/zoot/internal/constants"
	"github.com/ConserveLee/zoot/internal/logger"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/data/binding"
)

func main() {
	app.SetMetadata(fyne.AppMetadata{
		ID:      constants.AppID,
		Name:    constants.AppName,
		Version: constants.AppVersion,
	})
	myApp := app.NewWithID(constants.AppID)

	log := logger.NewAppLogger(binding.NewStringList())

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Error("加载配置失败, 使用默认配置: %v", err)
		cfg = config.DefaultConfig()
	}
	log.SetDebug(cfg.DebugMode)
	log.Debug("[Config] %s", cfg.Path())

	ctx := appctx.New(cfg, log)
	s := shell.New(myApp, ctx, nil, nil)
	s.Window.ShowAndRun()
}
