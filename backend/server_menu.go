package backend

// serverTemplates はデスクトップサーバーアプリのシステムメニューを組み立てる
func serverTemplates(reg Registry, appName, lang string, t Translator) PlatformMenus {
	topLevel := func(key string) string {
		return t.String("system-menu.top-level."+key, lang)
	}

	return PlatformMenus{
		PlatformWindows: Tree{
			{
				Label: topLevel("file"),
				Items: reg.pick(
					KeyCheckForUpdates,
					KeySeparator,
					KeySettings,
					KeySeparator,
					KeyBack,
					KeyForward,
					KeySeparator,
					KeyCut,
					KeyCopy,
					KeyPaste,
					KeySelectAll,
					KeyQuit,
				),
			},
			{
				Label: topLevel("playback"),
				Items: reg.pick(
					KeyPlay,
					KeyPause,
					KeyStop,
					KeySeparator,
					KeyPrevious,
					KeyNext,
				),
			},
			{
				Label: topLevel("view"),
				Items: reg.pick(
					KeyZoomIn,
					KeyZoomOut,
					KeyResetZoom,
					KeySeparator,
					KeyToggleQueue,
					KeySeparator,
					KeyToggleDevTools,
					KeySeparator,
					KeyToggleFullScreen,
				),
			},
			{
				Label: topLevel("help"),
				Items: reg.pick(
					KeyAbout,
					KeySeparator,
					KeyModalWelcome,
					KeyModalLearnMore,
					KeyModalAttributions,
					KeySeparator,
					KeyModalTerms,
					KeyModalPrivacy,
				),
			},
		},

		PlatformDarwin: Tree{
			{
				Label: appName,
				Items: reg.pick(
					KeyAbout,
					KeySeparator,
					KeySettings,
					KeySeparator,
					KeyCheckForUpdates,
					KeySeparator,
					KeyDarwinHide,
					KeyDarwinHideOthers,
					KeyDarwinUnhide,
					KeySeparator,
					KeyClose,
					KeyQuit,
				),
			},
			{
				Label: topLevel("file"),
				Items: reg.pick(
					KeyBack,
					KeyForward,
					KeySeparator,
					KeyCut,
					KeyCopy,
					KeyPaste,
					KeySelectAll,
					KeySeparator,
					KeyClose,
				),
			},
			{
				Label: topLevel("view"),
				Items: reg.pick(
					KeyZoomIn,
					KeyZoomOut,
					KeyResetZoom,
					KeySeparator,
					KeyToggleQueue,
					KeySeparator,
					KeyToggleDevTools,
					KeySeparator,
				),
			},
			{
				Label: topLevel("window"),
				Items: reg.pick(
					KeyMinimize,
					KeyDarwinFront,
					KeySeparator,
					KeyDarwinWindow,
				),
			},
			{
				Label: topLevel("help"),
				Role:  RoleHelp,
				Items: reg.pick(
					KeyModalAttributions,
					KeySeparator,
					KeyModalTerms,
					KeyModalPrivacy,
				),
			},
		},
	}
}
