package backend

import (
	"context"

	wailsRuntime "github.com/wailsapp/wails/v2/pkg/runtime"
)

// wailsWindow はWailsのメインウィンドウを Window として扱うためのアダプタ
type wailsWindow struct {
	ctx      context.Context
	platform Platform
	logger   AppLogger
}

// NewWailsWindow は新しいwailsWindowインスタンスを作成します
func NewWailsWindow(ctx context.Context, platform Platform, logger AppLogger) *wailsWindow {
	return &wailsWindow{ctx: ctx, platform: platform, logger: logger}
}

// Close はウィンドウを閉じる
// macOSではアプリを終了せずにDockに残す
func (w *wailsWindow) Close() {
	if w.platform == PlatformDarwin {
		wailsRuntime.WindowHide(w.ctx)
		return
	}
	wailsRuntime.Quit(w.ctx)
}

func (w *wailsWindow) Quit() {
	wailsRuntime.Quit(w.ctx)
}

func (w *wailsWindow) IsFullScreen() bool {
	return wailsRuntime.WindowIsFullscreen(w.ctx)
}

func (w *wailsWindow) SetFullScreen(fullScreen bool) {
	if fullScreen {
		wailsRuntime.WindowFullscreen(w.ctx)
		return
	}
	wailsRuntime.WindowUnfullscreen(w.ctx)
}

// OpenDevTools はWebViewのインスペクタを開く
// Wailsのランタイムにはインスペクタを開くAPIがないため、デバッグビルドの
// コンテキストメニューから開くよう案内するだけにとどめる
func (w *wailsWindow) OpenDevTools() {
	w.logger.Info("Developer tools are available from the context menu (Inspect Element) in debug builds")
}

// Send はフロントエンドにイベントを送る
func (w *wailsWindow) Send(channel string, payload interface{}) {
	wailsRuntime.EventsEmit(w.ctx, channel, payload)
}
