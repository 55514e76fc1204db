package backend

import (
	"context"
	"fmt"
	"strings"
)

// ItemKey はシステムメニュー項目の識別子
type ItemKey int

const (
	KeySeparator ItemKey = iota
	KeyAbout
	KeySettings
	KeyCheckForUpdates
	KeyDarwinHide
	KeyDarwinHideOthers
	KeyDarwinUnhide
	KeyClose
	KeyQuit
	KeyBack
	KeyForward
	KeyCut
	KeyCopy
	KeyPaste
	KeySelectAll
	KeyZoomIn
	KeyZoomOut
	KeyResetZoom
	KeyToggleQueue
	KeyToggleDevTools
	KeyToggleFullScreen
	KeyPlay
	KeyPause
	KeyStop
	KeyPrevious
	KeyNext
	KeyReload
	KeyMinimize
	KeyDarwinFront
	KeyDarwinWindow
	KeyModalWelcome
	KeyModalLearnMore
	KeyModalTerms
	KeyModalPrivacy
	KeyModalAttributions
	KeyModalOpenSource
	KeyLinkWebsite
	KeyLinkTerms
	KeyLinkPrivacy

	itemKeyCount
)

var itemKeyNames = [itemKeyCount]string{
	KeySeparator:         "sep",
	KeyAbout:             "about",
	KeySettings:          "settings",
	KeyCheckForUpdates:   "check-for-updates",
	KeyDarwinHide:        "darwin:hide",
	KeyDarwinHideOthers:  "darwin:hide-others",
	KeyDarwinUnhide:      "darwin:unhide",
	KeyClose:             "close",
	KeyQuit:              "quit",
	KeyBack:              "back",
	KeyForward:           "forward",
	KeyCut:               "cut",
	KeyCopy:              "copy",
	KeyPaste:             "paste",
	KeySelectAll:         "selectAll",
	KeyZoomIn:            "zoomIn",
	KeyZoomOut:           "zoomOut",
	KeyResetZoom:         "resetZoom",
	KeyToggleQueue:       "toggleQueue",
	KeyToggleDevTools:    "toggleDevTools",
	KeyToggleFullScreen:  "toggleFullScreen",
	KeyPlay:              "play",
	KeyPause:             "pause",
	KeyStop:              "stop",
	KeyPrevious:          "previous",
	KeyNext:              "next",
	KeyReload:            "reload",
	KeyMinimize:          "minimize",
	KeyDarwinFront:       "darwin:front",
	KeyDarwinWindow:      "darwin:window",
	KeyModalWelcome:      "modal:welcome",
	KeyModalLearnMore:    "modal:learnMore",
	KeyModalTerms:        "modal:tac",
	KeyModalPrivacy:      "modal:pp",
	KeyModalAttributions: "modal:attributions",
	KeyModalOpenSource:   "modal:openSource",
	KeyLinkWebsite:       "link:website",
	KeyLinkTerms:         "link:tac",
	KeyLinkPrivacy:       "link:pp",
}

func (k ItemKey) String() string {
	if k < 0 || k >= itemKeyCount {
		return fmt.Sprintf("ItemKey(%d)", int(k))
	}
	return itemKeyNames[k]
}

// AllItemKeys は定義済みの全キーを宣言順に返します
func AllItemKeys() []ItemKey {
	keys := make([]ItemKey, 0, itemKeyCount)
	for k := ItemKey(0); k < itemKeyCount; k++ {
		keys = append(keys, k)
	}
	return keys
}

// Registry はキーからメニュー項目を引くためのテーブル
type Registry map[ItemKey]Entry

// pick は指定したキーの項目を順に並べて返す
// 返る要素は値のコピーなのでテンプレート側で書き換えてもレジストリには影響しない
func (r Registry) pick(keys ...ItemKey) []Entry {
	entries := make([]Entry, 0, len(keys))
	for _, k := range keys {
		entries = append(entries, r[k])
	}
	return entries
}

const (
	termsPath   = "/en/terms-and-conditions"
	privacyPath = "/en/privacy-policy"
)

// Items はシステムメニューで使える全項目を返します
//
// ロールを持つ項目はmacOSのみで使うこと。Windowsではロールを解釈しない
// カスタムメニューを使うため、ラベルとアクションを持つ項目を使う。
// macOSはロールを持つ項目の Hidden を無視する。
func (s *SystemMenu) Items(win Window, lang string) (Registry, error) {
	if strings.TrimSpace(lang) == "" {
		return nil, fmt.Errorf("lang slug is required: %w", ErrInvalidArgument)
	}

	str := func(key string) string {
		return s.translator.String("system-menu."+key, lang)
	}

	// UIが開いているときだけ通知を送る
	announce := func(a Announcement) Action {
		return func(ctx context.Context) error {
			if win == nil {
				return nil
			}
			win.Send(announcementChannel, a)
			return nil
		}
	}

	openExternal := func(suffix string) Action {
		return func(ctx context.Context) error {
			homepage := strings.TrimRight(s.homepage, "/")
			if homepage == "" {
				return ErrNoHomepage
			}
			return s.shell.OpenExternal(ctx, homepage+suffix)
		}
	}

	return Registry{
		KeySeparator: Separator{},
		KeyAbout: ActionItem{
			ID:     "about",
			Label:  str("about"),
			Action: announce(Announcement{Action: "show-about"}),
		},
		KeySettings: ActionItem{
			ID:          "settings",
			Label:       str("settings"),
			Accelerator: cmdOrCtrl(","),
			Win32Label:  "Ctrl+,",
			Action:      announce(Announcement{Action: "openSettings"}),
		},
		KeyCheckForUpdates: ActionItem{
			ID:    "check-for-updates",
			Label: str("check-for-updates"),
			Action: func(ctx context.Context) error {
				s.logger.Console("Checking for update (manually triggered)")
				// 結果はアップデータ側がダイアログでユーザーに知らせる
				return s.updater.CheckForUpdates(ctx)
			},
		},
		KeyDarwinHide: RoleItem{
			ID:    "hide",
			Role:  RoleHide,
			Label: str("macos.hide"),
		},
		KeyDarwinHideOthers: RoleItem{
			ID:    "hideothers",
			Role:  RoleHideOthers,
			Label: str("macos.hide-others"),
		},
		KeyDarwinUnhide: RoleItem{
			ID:    "unhide",
			Role:  RoleUnhide,
			Label: str("macos.unhide"),
		},
		KeyClose: ActionItem{
			ID:          "close",
			Label:       str("close-window"),
			Accelerator: cmdOrCtrl("w"),
			Win32Label:  "Ctrl+W",
			Action: func(ctx context.Context) error {
				if win != nil {
					win.Close()
				}
				return nil
			},
		},
		KeyQuit: ActionItem{
			ID:          "quit",
			Label:       str("quit"),
			Accelerator: cmdOrCtrl("q"),
			Win32Label:  "Ctrl+Q",
			Action: func(ctx context.Context) error {
				if win != nil {
					win.Quit()
				}
				return nil
			},
		},
		// マウスの戻る/進むボタンを cmd+[ と cmd+] に割り当てているユーザー向け
		KeyBack: ActionItem{
			ID:          "back",
			Label:       str("back"),
			Accelerator: cmdOrCtrl("["),
			Win32Label:  "Ctrl+[",
			Action:      announce(Announcement{Action: "back", Lang: lang}),
		},
		KeyForward: ActionItem{
			ID:          "forward",
			Label:       str("forward"),
			Accelerator: cmdOrCtrl("]"),
			Win32Label:  "Ctrl+]",
			Action:      announce(Announcement{Action: "forward"}),
		},
		KeyCut: RoleItem{
			ID:         "cut",
			Role:       RoleCut,
			Label:      str("cut"),
			Win32Label: "Ctrl+X",
			Hidden:     true,
		},
		KeyCopy: RoleItem{
			ID:         "copy",
			Role:       RoleCopy,
			Label:      str("copy"),
			Win32Label: "Ctrl+C",
			Hidden:     true,
		},
		KeyPaste: RoleItem{
			ID:         "paste",
			Role:       RolePaste,
			Label:      str("paste"),
			Win32Label: "Ctrl+V",
			Hidden:     true,
		},
		KeySelectAll: RoleItem{
			ID:         "selectAll",
			Role:       RoleSelectAll,
			Label:      str("select-all"),
			Win32Label: "Ctrl+A",
			Hidden:     true,
		},
		KeyZoomIn: ActionItem{
			ID:          "zoomIn",
			Label:       str("zoom-in"),
			Accelerator: cmdOrCtrl("="),
			Win32Label:  "Ctrl+=",
			Action:      announce(Announcement{Action: "zoom-in"}),
		},
		KeyZoomOut: ActionItem{
			ID:          "zoomOut",
			Label:       str("zoom-out"),
			Accelerator: cmdOrCtrl("-"),
			Win32Label:  "Ctrl+-",
			Action:      announce(Announcement{Action: "zoom-out"}),
		},
		KeyResetZoom: ActionItem{
			ID:          "resetZoom",
			Label:       str("reset-zoom"),
			Accelerator: cmdOrCtrl("0"),
			Win32Label:  "Ctrl+0",
			Action:      announce(Announcement{Action: "reset-zoom"}),
		},
		KeyToggleQueue: ActionItem{
			ID:          "toggleQueue",
			Label:       str("toggle-queue"),
			Accelerator: cmdOrCtrl("/"),
			Win32Label:  "Ctrl+/",
			Action:      announce(Announcement{Action: "togglequeue"}),
		},
		KeyToggleDevTools: ActionItem{
			ID:          "toggleDevTools",
			Label:       str("toggle-dev-tools"),
			Accelerator: cmdOrCtrl("i", ModAlt),
			Win32Label:  "Ctrl+Alt+I",
			Action: func(ctx context.Context) error {
				if win != nil {
					win.OpenDevTools()
				}
				return nil
			},
		},
		KeyToggleFullScreen: ActionItem{
			ID:    "toggleFullScreen",
			Label: str("full-screen"),
			Action: func(ctx context.Context) error {
				if win != nil {
					win.SetFullScreen(!win.IsFullScreen())
				}
				return nil
			},
		},
		KeyPlay: ActionItem{
			ID:          "play",
			Label:       str("play"),
			Accelerator: shift("up"),
			Action:      announce(Announcement{Action: "play"}),
		},
		KeyPause: ActionItem{
			ID:          "pause",
			Label:       str("pause"),
			Accelerator: shift("down"),
			Action:      announce(Announcement{Action: "pause"}),
		},
		KeyStop: ActionItem{
			ID:          "stop",
			Label:       str("stop"),
			Accelerator: shift("backspace"),
			Action:      announce(Announcement{Action: "stop"}),
		},
		KeyPrevious: ActionItem{
			ID:          "previous",
			Label:       str("previous"),
			Accelerator: shift("left"),
			Action:      announce(Announcement{Action: "previous"}),
		},
		KeyNext: ActionItem{
			ID:          "next",
			Label:       str("next"),
			Accelerator: shift("right"),
			Action:      announce(Announcement{Action: "next"}),
		},
		// 挙動が不安定なため現在どのテンプレートからも使っていない
		KeyReload: RoleItem{
			ID:         "reload",
			Role:       RoleReload,
			Label:      str("reload"),
			Win32Label: "Ctrl+R",
		},
		KeyMinimize: RoleItem{
			ID:    "minimize",
			Role:  RoleMinimize,
			Label: str("minimize"),
		},
		KeyDarwinFront: RoleItem{
			ID:    "front",
			Role:  RoleFront,
			Label: str("front"),
		},
		KeyDarwinWindow: RoleItem{
			ID:    "window",
			Role:  RoleWindow,
			Label: str("window"),
		},
		KeyModalWelcome: ActionItem{
			ID:     "showWelcome",
			Label:  str("show-welcome"),
			Action: announce(Announcement{Action: "show-welcome"}),
		},
		KeyModalLearnMore: ActionItem{
			ID:     "showLearnMore",
			Label:  str("learn-more"),
			Action: openExternal(""),
		},
		KeyModalTerms: ActionItem{
			ID:     "showTac",
			Label:  str("terms-and-conditions"),
			Action: openExternal(termsPath),
		},
		KeyModalPrivacy: ActionItem{
			ID:     "showPp",
			Label:  str("privacy-policy"),
			Action: openExternal(privacyPath),
		},
		KeyModalAttributions: ActionItem{
			ID:     "showAttributions",
			Label:  str("attributions"),
			Action: announce(Announcement{Action: "show-attributions"}),
		},
		KeyModalOpenSource: ActionItem{
			ID:     "showOpenSource",
			Label:  str("open-source"),
			Action: announce(Announcement{Action: "show-open-source"}),
		},
		KeyLinkWebsite: ActionItem{
			ID:     "linkWebsite",
			Label:  str("website"),
			Action: openExternal(""),
		},
		KeyLinkTerms: ActionItem{
			ID:     "linkTac",
			Label:  str("terms-and-conditions"),
			Action: openExternal(termsPath),
		},
		KeyLinkPrivacy: ActionItem{
			ID:     "linkPp",
			Label:  str("privacy-policy"),
			Action: openExternal(privacyPath),
		},
	}, nil
}
