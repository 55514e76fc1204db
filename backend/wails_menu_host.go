package backend

import (
	"context"
	"strings"
	"sync"

	"github.com/wailsapp/wails/v2/pkg/menu"
	"github.com/wailsapp/wails/v2/pkg/menu/keys"
	wailsRuntime "github.com/wailsapp/wails/v2/pkg/runtime"
)

// Wails v2 は Edit / App / Window 単位のロールしか持たないため、
// 項目単位のロールはランタイムの操作に置き換える
var roleActions = map[Role]func(ctx context.Context){
	RoleCut:       execEditCommand("cut"),
	RoleCopy:      execEditCommand("copy"),
	RolePaste:     execEditCommand("paste"),
	RoleSelectAll: execEditCommand("selectAll"),
	RoleHide:      wailsRuntime.Hide,
	RoleUnhide:    wailsRuntime.Show,
	RoleMinimize:  wailsRuntime.WindowMinimise,
	RoleReload:    wailsRuntime.WindowReload,
	RoleFront: func(ctx context.Context) {
		wailsRuntime.WindowUnminimise(ctx)
		wailsRuntime.WindowShow(ctx)
	},
}

// editRoles はmacOSでネイティブのEditメニューにまとめるロール
// WKWebView は Edit メニューがないと Cmd+C などを受け付けない
var editRoles = map[Role]bool{
	RoleCut:       true,
	RoleCopy:      true,
	RolePaste:     true,
	RoleSelectAll: true,
}

func execEditCommand(command string) func(ctx context.Context) {
	return func(ctx context.Context) {
		wailsRuntime.WindowExecJS(ctx, "document.execCommand('"+command+"')")
	}
}

// wailsMenuHost はアプリケーションメニューを保持し、Wailsに設定するハンドル
type wailsMenuHost struct {
	ctx      context.Context
	platform Platform
	logger   AppLogger

	mu      sync.Mutex
	current *menu.Menu

	// クリック処理の実行方法
	dispatch func(func())
	// ランタイムへの反映
	install func(ctx context.Context, m *menu.Menu)
}

// NewWailsMenuHost は新しいwailsMenuHostインスタンスを作成します
func NewWailsMenuHost(ctx context.Context, platform Platform, logger AppLogger) *wailsMenuHost {
	return &wailsMenuHost{
		ctx:      ctx,
		platform: platform,
		logger:   logger,
		dispatch: func(f func()) { go f() },
		install: func(ctx context.Context, m *menu.Menu) {
			wailsRuntime.MenuSetApplicationMenu(ctx, m)
			wailsRuntime.MenuUpdateApplicationMenu(ctx)
		},
	}
}

// SetApplicationMenu はメニューを組み立てて、現在のアプリケーションメニューと置き換える
func (h *wailsMenuHost) SetApplicationMenu(tree Tree) error {
	m := h.BuildMenu(tree)

	h.mu.Lock()
	h.current = m
	h.mu.Unlock()

	h.install(h.ctx, m)
	return nil
}

// lastMenu は最後に設定したメニューを返す
func (h *wailsMenuHost) lastMenu() *menu.Menu {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.current
}

// BuildMenu は Tree をWailsのメニューに変換します
func (h *wailsMenuHost) BuildMenu(tree Tree) *menu.Menu {
	root := menu.NewMenu()
	for _, group := range tree {
		h.appendGroup(root, group)
	}
	return root
}

func (h *wailsMenuHost) appendGroup(parent *menu.Menu, group Group) {
	sub := parent.AddSubmenu(group.Label)
	editMenuAdded := false

	for _, entry := range group.Items {
		switch item := entry.(type) {
		case Separator:
			sub.AddSeparator()

		case ActionItem:
			mi := sub.AddText(item.Label, toWailsAccelerator(item.Accelerator), h.click(item.ID, item.Action))
			mi.Hidden = item.Hidden

		case RoleItem:
			if h.platform == PlatformDarwin && editRoles[item.Role] {
				if !editMenuAdded {
					sub.Append(menu.EditMenu())
					editMenuAdded = true
				}
				continue
			}
			run, ok := roleActions[item.Role]
			if !ok {
				h.logger.Console("Menu role %q is not supported by this host, skipping %s", item.Role, item.ID)
				continue
			}
			accelerator := item.Accelerator
			if editRoles[item.Role] {
				// キー入力はWebView自身に処理させる
				accelerator = nil
			}
			mi := sub.AddText(item.Label, toWailsAccelerator(accelerator), h.click(item.ID, func(ctx context.Context) error {
				run(ctx)
				return nil
			}))
			// macOSはロール付き項目の表示フラグを無視する
			mi.Hidden = item.Hidden && h.platform != PlatformDarwin

		case Group:
			h.appendGroup(sub, item)
		}
	}
	sub.Items = tidySeparators(sub.Items)
}

// 項目を省いた結果として連続・末尾に残った区切り線を取り除く
func tidySeparators(items []*menu.MenuItem) []*menu.MenuItem {
	tidy := items[:0]
	for _, item := range items {
		if item.Type == menu.SeparatorType && (len(tidy) == 0 || tidy[len(tidy)-1].Type == menu.SeparatorType) {
			continue
		}
		tidy = append(tidy, item)
	}
	for len(tidy) > 0 && tidy[len(tidy)-1].Type == menu.SeparatorType {
		tidy = tidy[:len(tidy)-1]
	}
	return tidy
}

func (h *wailsMenuHost) click(id string, action Action) menu.Callback {
	return func(_ *menu.CallbackData) {
		h.dispatch(func() {
			if err := action(h.ctx); err != nil {
				h.logger.Error(err, "Menu action %s failed", id)
			}
		})
	}
}

func toWailsAccelerator(a *Accelerator) *keys.Accelerator {
	if a == nil {
		return nil
	}

	modifiers := make([]keys.Modifier, 0, len(a.Modifiers))
	for _, m := range a.Modifiers {
		switch m {
		case ModCmdOrCtrl:
			modifiers = append(modifiers, keys.CmdOrCtrlKey)
		case ModAlt:
			modifiers = append(modifiers, keys.OptionOrAltKey)
		case ModShift:
			modifiers = append(modifiers, keys.ShiftKey)
		}
	}
	return &keys.Accelerator{
		Key:       strings.ToLower(a.Key),
		Modifiers: modifiers,
	}
}
