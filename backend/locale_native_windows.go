//go:build windows

package backend

import "golang.org/x/sys/windows"

// detectNativeSystemLocale はWindowsの表示言語の優先順位の先頭（例: ja-JP, en-US）を返す。
func detectNativeSystemLocale() string {
	languages, err := windows.GetUserPreferredUILanguages(windows.MUI_LANGUAGE_NAME)
	if err != nil || len(languages) == 0 {
		return ""
	}
	return languages[0]
}
