package backend

import (
	"fmt"
	goruntime "runtime"
	"strings"
)

type templateBuilder func(reg Registry, appName, lang string, t Translator) PlatformMenus

// Variant はアプリケーションの種類（server / music）
// 値は VariantServer と VariantMusic のみで、それぞれが自身のテンプレートを持つ
type Variant struct {
	name  string
	build templateBuilder
}

var (
	VariantServer = Variant{name: "server", build: serverTemplates}
	VariantMusic  = Variant{name: "music", build: musicTemplates}
)

func (v Variant) String() string {
	return v.name
}

// Variants は全てのアプリケーション種別を返します
func Variants() []Variant {
	return []Variant{VariantServer, VariantMusic}
}

// ParseVariant は設定値の文字列から Variant を返します
func ParseVariant(tag string) (Variant, error) {
	tag = strings.ToLower(strings.TrimSpace(tag))
	for _, v := range Variants() {
		if v.name == tag {
			return v, nil
		}
	}
	return Variant{}, fmt.Errorf("%w: %q", ErrUnknownVariant, tag)
}

// CurrentPlatform は実行中のOSを返します
func CurrentPlatform() Platform {
	return Platform(goruntime.GOOS)
}

// MenuHost はアプリケーションメニューを差し替えるホスト側のハンドル
type MenuHost interface {
	SetApplicationMenu(tree Tree) error
}

// SystemMenu はシステムメニューの組み立てと設定を担当する
type SystemMenu struct {
	translator Translator
	updater    Updater
	shell      Shell
	homepage   string
	appName    string
	logger     AppLogger
}

// SystemMenuOptions は NewSystemMenu に渡す依存関係
type SystemMenuOptions struct {
	Translator Translator
	Updater    Updater
	Shell      Shell
	Homepage   string
	AppName    string
	Logger     AppLogger
}

// NewSystemMenu は新しいSystemMenuインスタンスを作成します
func NewSystemMenu(opts SystemMenuOptions) *SystemMenu {
	return &SystemMenu{
		translator: opts.Translator,
		updater:    opts.Updater,
		shell:      opts.Shell,
		homepage:   opts.Homepage,
		appName:    opts.AppName,
		logger:     opts.Logger,
	}
}

// Templates は指定した種別のプラットフォーム別メニューを組み立てます
// 呼び出しのたびに作り直すため、言語やウィンドウの変更は次の呼び出しから反映される
func (s *SystemMenu) Templates(variant Variant, win Window, lang string) (PlatformMenus, error) {
	if variant.build == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariant, variant.name)
	}

	reg, err := s.Items(win, lang)
	if err != nil {
		return nil, err
	}
	return variant.build(reg, s.appName, lang, s.translator), nil
}

// Get は指定したプラットフォームのメニューを返します
// そのプラットフォーム用のメニューがない場合は false を返します
func (s *SystemMenu) Get(variant Variant, platform Platform, win Window, lang string) (Tree, bool, error) {
	menus, err := s.Templates(variant, win, lang)
	if err != nil {
		return nil, false, err
	}

	tree, ok := menus[platform]
	if !ok {
		s.logger.Console("No system menu for this platform: %s", platform)
		return nil, false, nil
	}
	return tree, true, nil
}

// Set はメニューを組み立ててアプリケーションメニューとして設定します
// 既存のメニューは丸ごと置き換えられる
func (s *SystemMenu) Set(host MenuHost, variant Variant, platform Platform, win Window, lang string) error {
	tree, ok, err := s.Get(variant, platform, win, lang)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	if err := host.SetApplicationMenu(tree); err != nil {
		return s.logger.Error(err, "Failed to set %s system menu", variant)
	}
	return nil
}
