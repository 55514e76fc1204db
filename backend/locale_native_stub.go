//go:build !darwin && !windows

package backend

// detectNativeSystemLocale はmacOS/Windows以外では環境変数に任せる。
func detectNativeSystemLocale() string {
	return ""
}
