package backend

import (
	"os"
	"strings"

	"golang.org/x/text/language"
)

// サポートされる言語
const (
	LocaleJapanese = "ja"
	LocaleEnglish  = "en"
	LocaleSystem   = "system"
)

// supportedLocales はサポートされる言語のセット
var supportedLocales = map[string]bool{
	LocaleJapanese: true,
	LocaleEnglish:  true,
}

// getNativeSystemLocale はOS依存のロケール取得処理を注入するための変数
var getNativeSystemLocale = detectNativeSystemLocale

// DetectSystemLocale はOSのシステムロケールを検出します
// 環境変数 LC_ALL, LC_MESSAGES, LANG を順にチェックし、未設定時はOS APIを使います
func DetectSystemLocale() string {
	keys := []string{"LC_ALL", "LC_MESSAGES", "LANG"}

	for _, key := range keys {
		if value := strings.TrimSpace(os.Getenv(key)); value != "" {
			return NormalizeLocale(value)
		}
	}

	// GUIアプリでは環境変数が空の場合があるため、OSネイティブAPIから取得する
	if value := strings.TrimSpace(getNativeSystemLocale()); value != "" {
		return NormalizeLocale(value)
	}

	return LocaleEnglish
}

// NormalizeLocale はロケール文字列を言語スラッグに正規化します
// 例: "ja_JP.UTF-8" → "ja", "en-US" → "en"
func NormalizeLocale(locale string) string {
	locale = strings.TrimSpace(locale)
	if locale == "" {
		return LocaleEnglish
	}

	// エンコーディング部分を削除（例: .UTF-8）
	if idx := strings.Index(locale, "."); idx != -1 {
		locale = locale[:idx]
	}

	tag, err := language.Parse(locale)
	if err != nil {
		return LocaleEnglish
	}
	base, _ := tag.Base()

	if IsSupportedLocale(base.String()) {
		return base.String()
	}

	// サポート外の場合は英語にフォールバック
	return LocaleEnglish
}

// IsSupportedLocale は指定されたロケールがサポートされているか確認します
func IsSupportedLocale(locale string) bool {
	return supportedLocales[locale]
}

// GetSupportedLocales はサポートされる言語のリストを返します
func GetSupportedLocales() []string {
	return []string{LocaleEnglish, LocaleJapanese}
}

// ResolveLocale は設定された言語を解決します
// "system" の場合はシステムロケールを返し、それ以外は正規化して返します
func ResolveLocale(uiLanguage string) string {
	if uiLanguage == LocaleSystem || uiLanguage == "" {
		return DetectSystemLocale()
	}
	return NormalizeLocale(uiLanguage)
}

// firstAppleLanguage は `defaults read -g AppleLanguages` の出力から先頭の言語を取り出す
// 例: "(\n    \"ja-JP\",\n    \"en-US\"\n)" → "ja-JP"
func firstAppleLanguage(output string) string {
	for _, line := range strings.Split(output, "\n") {
		line = strings.Trim(strings.TrimSpace(line), `",`)
		if line == "" || line == "(" || line == ")" {
			continue
		}
		return line
	}
	return ""
}
