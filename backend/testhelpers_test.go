package backend

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

const testHomepage = "https://hydra.example.com"

// テスト用のウィンドウ
type fakeWindow struct {
	mu           sync.Mutex
	sent         []Announcement
	channels     []string
	closed       int
	quit         int
	devTools     int
	isFullScreen bool
}

func (w *fakeWindow) Close()             { w.mu.Lock(); w.closed++; w.mu.Unlock() }
func (w *fakeWindow) Quit()              { w.mu.Lock(); w.quit++; w.mu.Unlock() }
func (w *fakeWindow) OpenDevTools()      { w.mu.Lock(); w.devTools++; w.mu.Unlock() }
func (w *fakeWindow) IsFullScreen() bool { return w.isFullScreen }
func (w *fakeWindow) SetFullScreen(fullScreen bool) {
	w.isFullScreen = fullScreen
}

func (w *fakeWindow) Send(channel string, payload interface{}) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.channels = append(w.channels, channel)
	if a, ok := payload.(Announcement); ok {
		w.sent = append(w.sent, a)
	}
}

// テスト用のアップデータ
type fakeUpdater struct {
	calls int
	err   error
}

func (u *fakeUpdater) CheckForUpdates(ctx context.Context) error {
	u.calls++
	return u.err
}

// テスト用のシェル
type fakeShell struct {
	opened []string
	err    error
}

func (s *fakeShell) OpenExternal(ctx context.Context, rawURL string) error {
	if s.err != nil {
		return s.err
	}
	s.opened = append(s.opened, rawURL)
	return nil
}

// 出力されたログを記録するロガー
type recordingLogger struct {
	mu    sync.Mutex
	lines []string
}

func (l *recordingLogger) record(line string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, line)
}

func (l *recordingLogger) Console(format string, args ...interface{}) {
	l.record(fmt.Sprintf(format, args...))
}

func (l *recordingLogger) Info(format string, args ...interface{}) {
	l.record(fmt.Sprintf(format, args...))
}

func (l *recordingLogger) Error(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	l.record(fmt.Sprintf(format, args...) + ": " + err.Error())
	return err
}

func (l *recordingLogger) IsTestMode() bool { return true }

func (l *recordingLogger) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.lines...)
}

// テスト用のメニューホスト
type fakeMenuHost struct {
	trees []Tree
	err   error
}

func (h *fakeMenuHost) SetApplicationMenu(tree Tree) error {
	if h.err != nil {
		return h.err
	}
	h.trees = append(h.trees, tree)
	return nil
}

func (h *fakeMenuHost) last() Tree {
	if len(h.trees) == 0 {
		return nil
	}
	return h.trees[len(h.trees)-1]
}

type systemMenuTestHelper struct {
	menu    *SystemMenu
	updater *fakeUpdater
	shell   *fakeShell
	logger  *recordingLogger
}

func setupSystemMenuTest(t *testing.T) *systemMenuTestHelper {
	t.Helper()

	translator, err := NewTranslator()
	require.NoError(t, err)

	h := &systemMenuTestHelper{
		updater: &fakeUpdater{},
		shell:   &fakeShell{},
		logger:  &recordingLogger{},
	}
	h.menu = NewSystemMenu(SystemMenuOptions{
		Translator: translator,
		Updater:    h.updater,
		Shell:      h.shell,
		Homepage:   testHomepage,
		AppName:    "Hydra",
		Logger:     h.logger,
	})
	return h
}

// メニュー項目の ID と Label を group 名付きで列挙する
func walkTree(tree Tree, visit func(group string, entry Entry)) {
	var walk func(g Group)
	walk = func(g Group) {
		for _, entry := range g.Items {
			visit(g.Label, entry)
			if sub, ok := entry.(Group); ok {
				walk(sub)
			}
		}
	}
	for _, g := range tree {
		walk(g)
	}
}

func groupLabels(tree Tree) []string {
	labels := make([]string, 0, len(tree))
	for _, g := range tree {
		labels = append(labels, g.Label)
	}
	return labels
}

func itemIDs(group Group) []string {
	ids := make([]string, 0, len(group.Items))
	for _, entry := range group.Items {
		switch item := entry.(type) {
		case Separator:
			ids = append(ids, "-")
		case ActionItem:
			ids = append(ids, item.ID)
		case RoleItem:
			ids = append(ids, item.ID)
		case Group:
			ids = append(ids, item.Label)
		}
	}
	return ids
}

func actionOf(t *testing.T, reg Registry, key ItemKey) Action {
	t.Helper()
	item, ok := reg[key].(ActionItem)
	require.True(t, ok, "%s is not an action item", key)
	require.NotNil(t, item.Action)
	return item.Action
}
