package backend

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	wailsRuntime "github.com/wailsapp/wails/v2/pkg/runtime"
)

// ErrNoHomepage はホームページのURLが設定されていないときに返される
var ErrNoHomepage = errors.New("homepage is not configured")

// Shell は外部アプリケーションでURLを開く
type Shell interface {
	OpenExternal(ctx context.Context, rawURL string) error
}

// shellService はWailsのランタイム経由でブラウザを開くShellの実装
type shellService struct {
	ctx     context.Context
	openURL func(ctx context.Context, url string)
}

// NewShellService は新しいshellServiceインスタンスを作成します
func NewShellService(ctx context.Context) *shellService {
	return &shellService{
		ctx:     ctx,
		openURL: wailsRuntime.BrowserOpenURL,
	}
}

// OpenExternal はURLを検証してから既定のブラウザで開きます
// 引数の ctx ではなくWailsのランタイムコンテキストを使う
func (s *shellService) OpenExternal(ctx context.Context, rawURL string) error {
	if rawURL == "" {
		return ErrNoHomepage
	}
	u, err := url.ParseRequestURI(rawURL)
	if err != nil {
		return fmt.Errorf("invalid url %q: %w", rawURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("unsupported url scheme %q", u.Scheme)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s.openURL(s.ctx, u.String())
	return nil
}
