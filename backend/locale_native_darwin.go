//go:build darwin

package backend

import "os/exec"

// detectNativeSystemLocale はmacOSの優先言語の先頭（例: ja-JP, en-US）を返す。
// GUIから起動した場合は LANG が空のことが多いため、ユーザー設定を直接読む。
func detectNativeSystemLocale() string {
	out, err := exec.Command("defaults", "read", "-g", "AppleLanguages").Output()
	if err != nil {
		return ""
	}
	return firstAppleLanguage(string(out))
}
