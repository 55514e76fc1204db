package backend

import (
	"context"
	"errors"
	"strings"
)

var (
	// ErrInvalidArgument は必須引数（言語スラッグなど）が欠けているときに返される
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUnknownVariant は設定値などから未知のアプリケーション種別が渡されたときに返される
	ErrUnknownVariant = errors.New("unknown application variant")
)

// announcementChannel はメニューからフロントエンドへ通知を送るイベント名
const announcementChannel = "announcements"

// Window はメニューが操作するウィンドウ
// nil の場合はウィンドウが開かれていないことを表す
type Window interface {
	Close()
	Quit()
	IsFullScreen() bool
	SetFullScreen(fullScreen bool)
	OpenDevTools()
	Send(channel string, payload interface{})
}

// Announcement はメニュー操作をフロントエンドに知らせるメッセージ（応答なし）
type Announcement struct {
	Action string `json:"action"`
	Lang   string `json:"lang,omitempty"`
}

// Action はメニュー項目がクリックされたときに実行される処理
type Action func(ctx context.Context) error

// Platform はホストOSの種別（runtime.GOOS の値）
type Platform string

const (
	PlatformWindows Platform = "windows"
	PlatformDarwin  Platform = "darwin"
	PlatformLinux   Platform = "linux"
)

// Role はホスト側で処理されるネイティブなメニュー動作
type Role string

const (
	RoleCut        Role = "cut"
	RoleCopy       Role = "copy"
	RolePaste      Role = "paste"
	RoleSelectAll  Role = "selectAll"
	RoleHide       Role = "hide"
	RoleHideOthers Role = "hideothers"
	RoleUnhide     Role = "unhide"
	RoleMinimize   Role = "minimize"
	RoleFront      Role = "front"
	RoleWindow     Role = "window"
	RoleHelp       Role = "help"
	RoleReload     Role = "reload"
)

// Modifier はショートカットキーの修飾キー
type Modifier string

const (
	ModCmdOrCtrl Modifier = "CmdOrCtrl"
	ModAlt       Modifier = "Alt"
	ModShift     Modifier = "Shift"
)

// Accelerator はキーボードショートカット
type Accelerator struct {
	Key       string
	Modifiers []Modifier
}

// String は "CmdOrCtrl+Alt+I" 形式で返す
func (a *Accelerator) String() string {
	if a == nil {
		return ""
	}
	parts := make([]string, 0, len(a.Modifiers)+1)
	for _, m := range a.Modifiers {
		parts = append(parts, string(m))
	}
	return strings.Join(append(parts, a.Key), "+")
}

func cmdOrCtrl(key string, extra ...Modifier) *Accelerator {
	return &Accelerator{Key: key, Modifiers: append([]Modifier{ModCmdOrCtrl}, extra...)}
}

func shift(key string) *Accelerator {
	return &Accelerator{Key: key, Modifiers: []Modifier{ModShift}}
}

// Entry はメニューを構成する要素
// Separator, RoleItem, ActionItem, Group のいずれか
type Entry interface {
	entry()
}

// Separator は区切り線
type Separator struct{}

// RoleItem はホストのネイティブ動作に任せる項目
// Hidden はdarwinでは無視される
type RoleItem struct {
	ID          string
	Role        Role
	Label       string
	Accelerator *Accelerator
	Win32Label  string // Windowsのカスタムメニューに表示するショートカット表記
	Hidden      bool
}

// ActionItem はクリック時に Action を実行する項目
type ActionItem struct {
	ID          string
	Label       string
	Accelerator *Accelerator
	Win32Label  string
	Hidden      bool
	Action      Action
}

// Group はラベル付きのサブメニュー
// Role が設定されている場合（help など）はホストの慣習に従って扱われる
type Group struct {
	Label string
	Role  Role
	Items []Entry
}

func (Separator) entry()  {}
func (RoleItem) entry()   {}
func (ActionItem) entry() {}
func (Group) entry()      {}

// Tree は1つのプラットフォーム向けに解決済みのトップレベルメニュー
type Tree []Group

// PlatformMenus はプラットフォームごとのメニュー
type PlatformMenus map[Platform]Tree
