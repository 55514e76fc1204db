package backend

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configEnvKeys = []string{
	"HYDRA_APP_NAME", "HYDRA_HOMEPAGE", "HYDRA_APP", "HYDRA_LANG",
	"HYDRA_UPDATE_FEED", "HYDRA_UPDATE_TOKEN", "HYDRA_VERSION",
}

// 環境変数を未設定の状態にし、テスト後に元に戻す
func clearConfigEnv(t *testing.T) {
	for _, key := range configEnvKeys {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearConfigEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, &Config{
		AppName:  defaultAppName,
		Variant:  "server",
		Language: LocaleSystem,
		Version:  defaultVersion,
	}, cfg)
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("HYDRA_HOMEPAGE", "https://hydra.example.com/")
	t.Setenv("HYDRA_APP", "music")
	t.Setenv("HYDRA_LANG", "ja")
	t.Setenv("HYDRA_VERSION", "1.2.3")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "https://hydra.example.com", cfg.Homepage)
	assert.Equal(t, "music", cfg.Variant)
	assert.Equal(t, "ja", cfg.Language)
	assert.Equal(t, "1.2.3", cfg.Version)
}

func TestLoadConfig_DotEnvDoesNotOverrideEnvironment(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("HYDRA_APP_NAME", "Cardinal")

	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte(
		"HYDRA_APP_NAME=Echoes\nHYDRA_HOMEPAGE=https://dotenv.example.com\n"), 0644))

	cfg, err := LoadConfig(envFile, filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, "Cardinal", cfg.AppName)
	assert.Equal(t, "https://dotenv.example.com", cfg.Homepage)
}

func TestLoadConfig_UnknownVariant(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("HYDRA_APP", "video")

	_, err := LoadConfig()
	assert.ErrorIs(t, err, ErrUnknownVariant)
}
