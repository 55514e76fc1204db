package backend

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/BurntSushi/toml"
)

//go:embed translations/*.toml
var translationsFS embed.FS

// Translator はキーと言語スラッグから表示文字列を引く
type Translator interface {
	String(key, lang string) string
}

// catalogTranslator は埋め込みのTOMLカタログを使うTranslatorの実装
type catalogTranslator struct {
	catalogs map[string]map[string]string // lang -> "system-menu.about" -> "About"
}

// NewTranslator は埋め込みの翻訳ファイルを読み込んだTranslatorを作成します
func NewTranslator() (*catalogTranslator, error) {
	return newTranslatorFromFS(translationsFS, "translations")
}

func newTranslatorFromFS(fsys fs.FS, dir string) (*catalogTranslator, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read translations: %w", err)
	}

	t := &catalogTranslator{catalogs: make(map[string]map[string]string)}
	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".toml" {
			continue
		}
		lang := strings.TrimSuffix(entry.Name(), ".toml")

		data, err := fs.ReadFile(fsys, path.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", entry.Name(), err)
		}

		var raw map[string]interface{}
		if _, err := toml.Decode(string(data), &raw); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", entry.Name(), err)
		}

		catalog := make(map[string]string)
		flattenCatalog("", raw, catalog)
		t.catalogs[lang] = catalog
	}

	if _, ok := t.catalogs[LocaleEnglish]; !ok {
		return nil, fmt.Errorf("missing %s catalog", LocaleEnglish)
	}
	return t, nil
}

// ネストしたテーブルをドット区切りのキーに平坦化する
func flattenCatalog(prefix string, raw map[string]interface{}, out map[string]string) {
	for key, value := range raw {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}
		switch v := value.(type) {
		case map[string]interface{}:
			flattenCatalog(fullKey, v, out)
		case string:
			out[fullKey] = v
		default:
			out[fullKey] = fmt.Sprint(v)
		}
	}
}

// String は指定言語の文字列を返します
// 見つからない場合は英語、それもなければキーをそのまま返します
func (t *catalogTranslator) String(key, lang string) string {
	if catalog, ok := t.catalogs[NormalizeLocale(lang)]; ok {
		if s, ok := catalog[key]; ok {
			return s
		}
	}
	if s, ok := t.catalogs[LocaleEnglish][key]; ok {
		return s
	}
	return key
}

// Languages は読み込まれている言語の一覧を返します
func (t *catalogTranslator) Languages() []string {
	langs := make([]string, 0, len(t.catalogs))
	for lang := range t.catalogs {
		langs = append(langs, lang)
	}
	return langs
}
