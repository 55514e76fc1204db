package backend

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	defaultAppName = "Hydra"
	defaultVersion = "0.0.0"
)

// Config は環境変数から読み込む起動時の設定
type Config struct {
	AppName       string // メニューの先頭グループ（macOS）に表示するアプリ名
	Homepage      string // 外部リンクの基準URL
	Variant       string // "server" または "music"
	Language      string // 言語スラッグ。"system" の場合はOSから検出する
	UpdateFeedURL string
	UpdateToken   string
	Version       string
}

// LoadConfig は .env ファイルと環境変数から設定を読み込みます
// 存在しない .env ファイルは無視し、既に設定されている環境変数は上書きしない
func LoadConfig(envFiles ...string) (*Config, error) {
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	cfg := &Config{
		AppName:       envOr("HYDRA_APP_NAME", defaultAppName),
		Homepage:      strings.TrimRight(os.Getenv("HYDRA_HOMEPAGE"), "/"),
		Variant:       envOr("HYDRA_APP", VariantServer.String()),
		Language:      envOr("HYDRA_LANG", LocaleSystem),
		UpdateFeedURL: os.Getenv("HYDRA_UPDATE_FEED"),
		UpdateToken:   os.Getenv("HYDRA_UPDATE_TOKEN"),
		Version:       envOr("HYDRA_VERSION", defaultVersion),
	}

	if _, err := ParseVariant(cfg.Variant); err != nil {
		return nil, err
	}
	return cfg, nil
}

func envOr(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}
