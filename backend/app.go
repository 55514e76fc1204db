package backend

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	wailsRuntime "github.com/wailsapp/wails/v2/pkg/runtime"
)

// アプリケーションのメインの構造体
type App struct {
	ctx             context.Context
	config          *Config
	appDataDir      string
	platform        Platform
	logger          *appLoggerImpl
	translator      Translator
	settingsService SettingsService
	systemMenu      *SystemMenu
	menuHost        MenuHost
	window          Window

	mu      sync.Mutex
	variant Variant
	lang    string
}

// NewApp は新しいAppインスタンスを作成します
func NewApp(cfg *Config) (*App, error) {
	variant, err := ParseVariant(cfg.Variant)
	if err != nil {
		return nil, err
	}
	translator, err := NewTranslator()
	if err != nil {
		return nil, err
	}

	return &App{
		config:     cfg,
		platform:   CurrentPlatform(),
		translator: translator,
		variant:    variant,
		lang:       ResolveLocale(cfg.Language),
	}, nil
}

// ------------------------------------------------------------
// アプリケーション関連の操作
// ------------------------------------------------------------

// Startup はアプリケーション起動時に呼び出される初期化関数
func (a *App) Startup(ctx context.Context) {
	a.ctx = ctx

	appData, err := os.UserConfigDir()
	if err != nil {
		appData, err = os.UserHomeDir()
		if err != nil {
			appData = "."
		}
	}
	a.appDataDir = filepath.Join(appData, "hydra-desktop")

	a.logger = NewAppLogger(ctx, false, a.appDataDir)
	a.settingsService = NewSettingsService(a.appDataDir)
	a.applySettings()

	shell := NewShellService(ctx)
	prompter := NewDialogPrompter(ctx, a.translator, a.Language)
	a.systemMenu = NewSystemMenu(SystemMenuOptions{
		Translator: a.translator,
		Updater:    NewUpdateService(ctx, a.config, prompter, shell, a.logger),
		Shell:      shell,
		Homepage:   a.config.Homepage,
		AppName:    a.config.AppName,
		Logger:     a.logger,
	})
	a.window = NewWailsWindow(ctx, a.platform, a.logger)
	a.menuHost = NewWailsMenuHost(ctx, a.platform, a.logger)

	if err := a.refreshMenu(); err != nil {
		a.logger.Error(err, "Error setting system menu")
	}
}

// DomReady はフロントエンドの読み込み完了時に呼び出される
func (a *App) DomReady(ctx context.Context) {
	wailsRuntime.EventsEmit(ctx, "backend:ready")
}

// Shutdown はアプリケーション終了時に呼び出される
func (a *App) Shutdown(ctx context.Context) {
	if a.logger != nil {
		a.logger.Close()
	}
}

// 保存済みの設定で言語と種別を上書きする
func (a *App) applySettings() {
	settings, err := a.settingsService.LoadSettings()
	if err != nil {
		a.logger.Error(err, "Error loading settings")
		return
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if settings.UILanguage != LocaleSystem {
		a.lang = ResolveLocale(settings.UILanguage)
	}
	if settings.App != "" {
		if v, err := ParseVariant(settings.App); err == nil {
			a.variant = v
		} else {
			a.logger.Error(err, "Ignoring saved app variant")
		}
	}
}

// refreshMenu は現在の言語と種別でシステムメニューを設定し直す
func (a *App) refreshMenu() error {
	a.mu.Lock()
	variant, lang := a.variant, a.lang
	a.mu.Unlock()

	return a.systemMenu.Set(a.menuHost, variant, a.platform, a.window, lang)
}

// ------------------------------------------------------------
// フロントエンドから呼ばれる操作
// ------------------------------------------------------------

// Language は現在のメニュー言語を返します
func (a *App) Language() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.lang
}

// GetMenuLanguage は現在のメニュー言語を返します
func (a *App) GetMenuLanguage() string {
	return a.Language()
}

// GetSupportedLanguages は選択できる言語を返します
func (a *App) GetSupportedLanguages() []string {
	return GetSupportedLocales()
}

// SetLanguage はメニュー言語を変更し、設定を保存してすぐにメニューを作り直します
// "system" を指定するとOSの言語に戻す
func (a *App) SetLanguage(uiLanguage string) error {
	if uiLanguage == "" {
		return fmt.Errorf("lang slug is required: %w", ErrInvalidArgument)
	}

	a.mu.Lock()
	a.lang = ResolveLocale(uiLanguage)
	a.mu.Unlock()

	if err := a.updateSettings(func(s *Settings) { s.UILanguage = uiLanguage }); err != nil {
		return err
	}
	return a.refreshMenu()
}

// SetVariant はアプリケーション種別（server / music）を切り替えます
func (a *App) SetVariant(tag string) error {
	variant, err := ParseVariant(tag)
	if err != nil {
		return err
	}

	a.mu.Lock()
	a.variant = variant
	a.mu.Unlock()

	if err := a.updateSettings(func(s *Settings) { s.App = variant.String() }); err != nil {
		return err
	}
	return a.refreshMenu()
}

func (a *App) updateSettings(update func(s *Settings)) error {
	settings, err := a.settingsService.LoadSettings()
	if err != nil {
		return a.logger.Error(err, "Error loading settings")
	}
	update(settings)
	if err := a.settingsService.SaveSettings(settings); err != nil {
		return a.logger.Error(err, "Error saving settings")
	}
	return nil
}

// BringToFront brings the application window to front
func (a *App) BringToFront() {
	wailsRuntime.WindowUnminimise(a.ctx)
	wailsRuntime.Show(a.ctx)
}
