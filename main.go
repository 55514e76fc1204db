package main

import (
	"embed"
	"runtime"

	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/logger"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
	"github.com/wailsapp/wails/v2/pkg/options/mac"

	"hydra-desktop/backend"
)

//go:embed all:frontend/dist
var assets embed.FS

func main() {
	// .env があれば読み込み、環境変数で上書きできるようにする
	cfg, err := backend.LoadConfig(".env")
	if err != nil {
		println("Error:", err.Error())
		return
	}

	app, err := backend.NewApp(cfg)
	if err != nil {
		println("Error:", err.Error())
		return
	}

	err = wails.Run(&options.App{
		Title:     cfg.AppName,
		Width:     1280,
		Height:    800,
		MinWidth:  800,
		MinHeight: 560,
		// macOSでは閉じるボタンでアプリを終了せず、Dockに残す
		HideWindowOnClose: runtime.GOOS == "darwin",
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		BackgroundColour: &options.RGBA{R: 18, G: 18, B: 18, A: 1},
		OnStartup:        app.Startup,
		OnDomReady:       app.DomReady,
		OnShutdown:       app.Shutdown,
		LogLevel:         logger.INFO,
		Bind: []interface{}{
			app,
		},
		Mac: &mac.Options{
			TitleBar: &mac.TitleBar{
				TitlebarAppearsTransparent: true,
				HideTitle:                  true,
			},
		},
		SingleInstanceLock: &options.SingleInstanceLock{
			UniqueId: "hydra-desktop-instance-lock",
			OnSecondInstanceLaunch: func(secondInstanceData options.SecondInstanceData) {
				app.BringToFront()
			},
		},
	})

	if err != nil {
		println("Error:", err.Error())
	}
}
