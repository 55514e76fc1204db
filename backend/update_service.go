package backend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	wailsRuntime "github.com/wailsapp/wails/v2/pkg/runtime"
	"golang.org/x/oauth2"
)

// ErrNoUpdateFeed はアップデートフィードのURLが設定されていないときに返される
var ErrNoUpdateFeed = errors.New("update feed is not configured")

const updateRequestTimeout = 30 * time.Second

// Updater はアップデートの確認を行う
type Updater interface {
	CheckForUpdates(ctx context.Context) error
}

// Release はアップデートフィードが返す最新リリースの情報
type Release struct {
	Version string `json:"version"`
	URL     string `json:"url"`
	Notes   string `json:"notes,omitempty"`
}

// UpdatePrompter はアップデート結果をユーザーに知らせる
type UpdatePrompter interface {
	PromptDownload(ctx context.Context, current string, release *Release) (bool, error)
	NotifyUpToDate(ctx context.Context, current string) error
}

// updateService はHTTPのフィードを使うUpdaterの実装
type updateService struct {
	feedURL        string
	currentVersion string
	client         *http.Client
	prompter       UpdatePrompter
	shell          Shell
	logger         AppLogger
}

// NewUpdateService は新しいupdateServiceインスタンスを作成します
// トークンが設定されている場合はBearer認証付きのクライアントを使う
func NewUpdateService(ctx context.Context, cfg *Config, prompter UpdatePrompter, shell Shell, logger AppLogger) *updateService {
	base := &http.Client{Timeout: updateRequestTimeout}
	client := base
	if cfg.UpdateToken != "" {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, base)
		client = oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{
			AccessToken: cfg.UpdateToken,
			TokenType:   "Bearer",
		}))
	}

	return &updateService{
		feedURL:        cfg.UpdateFeedURL,
		currentVersion: cfg.Version,
		client:         client,
		prompter:       prompter,
		shell:          shell,
		logger:         logger,
	}
}

// CheckForUpdates は最新リリースを取得し、結果をダイアログで知らせます
func (s *updateService) CheckForUpdates(ctx context.Context) error {
	if s.feedURL == "" {
		return ErrNoUpdateFeed
	}

	release, err := s.fetchLatest(ctx)
	if err != nil {
		return s.logger.Error(err, "Failed to check for updates")
	}

	if compareVersions(release.Version, s.currentVersion) <= 0 {
		s.logger.Console("Already up to date (%s)", s.currentVersion)
		return s.prompter.NotifyUpToDate(ctx, s.currentVersion)
	}

	s.logger.Info("Update available: %s -> %s", s.currentVersion, release.Version)
	download, err := s.prompter.PromptDownload(ctx, s.currentVersion, release)
	if err != nil {
		return err
	}
	if !download {
		return nil
	}
	return s.shell.OpenExternal(ctx, release.URL)
}

func (s *updateService) fetchLatest(ctx context.Context) (*Release, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.feedURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("update feed returned %s", resp.Status)
	}

	var release Release
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return nil, fmt.Errorf("failed to decode update feed: %w", err)
	}
	if release.Version == "" {
		return nil, errors.New("update feed has no version")
	}
	return &release, nil
}

// compareVersions は "v1.2.10" 形式のバージョンを比較する
// プレリリース部分（"-beta.1" など）は無視し、数値でない要素は0として扱う
func compareVersions(a, b string) int {
	pa, pb := versionParts(a), versionParts(b)
	for len(pa) < len(pb) {
		pa = append(pa, 0)
	}
	for len(pb) < len(pa) {
		pb = append(pb, 0)
	}
	for i := range pa {
		switch {
		case pa[i] > pb[i]:
			return 1
		case pa[i] < pb[i]:
			return -1
		}
	}
	return 0
}

func versionParts(v string) []int {
	v = strings.TrimPrefix(strings.TrimSpace(v), "v")
	if idx := strings.IndexAny(v, "-+"); idx != -1 {
		v = v[:idx]
	}
	var parts []int
	for _, p := range strings.Split(v, ".") {
		n, err := strconv.Atoi(p)
		if err != nil {
			n = 0
		}
		parts = append(parts, n)
	}
	return parts
}

// dialogPrompter はWailsのメッセージダイアログで結果を知らせる
type dialogPrompter struct {
	ctx        context.Context
	translator Translator
	lang       func() string
}

// NewDialogPrompter は新しいdialogPrompterインスタンスを作成します
func NewDialogPrompter(ctx context.Context, translator Translator, lang func() string) *dialogPrompter {
	return &dialogPrompter{ctx: ctx, translator: translator, lang: lang}
}

func (p *dialogPrompter) str(key string) string {
	return p.translator.String("update."+key, p.lang())
}

func (p *dialogPrompter) PromptDownload(ctx context.Context, current string, release *Release) (bool, error) {
	download := p.str("download")
	message := fmt.Sprintf(p.str("available-message"), release.Version, current)
	if release.Notes != "" {
		message += "\n\n" + release.Notes
	}

	selected, err := wailsRuntime.MessageDialog(p.ctx, wailsRuntime.MessageDialogOptions{
		Type:          wailsRuntime.QuestionDialog,
		Title:         p.str("available-title"),
		Message:       message,
		Buttons:       []string{download, p.str("later")},
		DefaultButton: download,
		CancelButton:  p.str("later"),
	})
	if err != nil {
		return false, err
	}
	// macOS以外ではボタン名ではなく "Yes" が返る場合がある
	return selected == download || selected == "Yes", nil
}

func (p *dialogPrompter) NotifyUpToDate(ctx context.Context, current string) error {
	_, err := wailsRuntime.MessageDialog(p.ctx, wailsRuntime.MessageDialogOptions{
		Type:    wailsRuntime.InfoDialog,
		Title:   p.str("up-to-date-title"),
		Message: fmt.Sprintf(p.str("up-to-date-message"), current),
	})
	return err
}
