package backend

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslator_String(t *testing.T) {
	translator, err := NewTranslator()
	require.NoError(t, err)

	assert.Equal(t, "File", translator.String("system-menu.top-level.file", "en"))
	assert.Equal(t, "ファイル", translator.String("system-menu.top-level.file", "ja"))
	assert.Equal(t, "ファイル", translator.String("system-menu.top-level.file", "ja-JP"))
	assert.Equal(t, "Show All", translator.String("system-menu.macos.unhide", "en"))
}

func TestTranslator_FallsBack(t *testing.T) {
	translator, err := NewTranslator()
	require.NoError(t, err)

	// 未対応の言語は英語
	assert.Equal(t, "Quit", translator.String("system-menu.quit", "fr"))
	// 未定義のキーはそのまま返す
	assert.Equal(t, "system-menu.missing", translator.String("system-menu.missing", "en"))
}

func TestTranslator_CatalogsShareKeys(t *testing.T) {
	translator, err := NewTranslator()
	require.NoError(t, err)
	assert.ElementsMatch(t, GetSupportedLocales(), translator.Languages())

	for key := range translator.catalogs[LocaleEnglish] {
		_, ok := translator.catalogs[LocaleJapanese][key]
		assert.True(t, ok, "ja catalog is missing %s", key)
	}
}

func TestNewTranslatorFromFS(t *testing.T) {
	fsys := fstest.MapFS{
		"i18n/en.toml":     {Data: []byte("title = \"Hydra\"\n[menu.file]\nopen = \"Open\"\n")},
		"i18n/README.md":   {Data: []byte("ignored")},
		"i18n/de.toml":     {Data: []byte("[menu.file]\nopen = \"Öffnen\"\n")},
		"i18n/nested/x.md": {Data: []byte("ignored")},
	}

	translator, err := newTranslatorFromFS(fsys, "i18n")
	require.NoError(t, err)
	assert.Equal(t, "Hydra", translator.String("title", "en"))
	assert.Equal(t, "Open", translator.String("menu.file.open", "en"))
	assert.Len(t, translator.catalogs, 2)
	assert.Equal(t, "Öffnen", translator.catalogs["de"]["menu.file.open"])
}

func TestNewTranslatorFromFS_RequiresEnglish(t *testing.T) {
	fsys := fstest.MapFS{
		"i18n/ja.toml": {Data: []byte("title = \"ハイドラ\"\n")},
	}

	_, err := newTranslatorFromFS(fsys, "i18n")
	assert.ErrorContains(t, err, "missing en catalog")
}

func TestNewTranslatorFromFS_InvalidToml(t *testing.T) {
	fsys := fstest.MapFS{
		"i18n/en.toml": {Data: []byte("title = \n")},
	}

	_, err := newTranslatorFromFS(fsys, "i18n")
	assert.ErrorContains(t, err, "failed to parse en.toml")
}
