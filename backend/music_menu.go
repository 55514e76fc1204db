package backend

// musicTemplates はデスクトップミュージックアプリのシステムメニューを組み立てる
func musicTemplates(reg Registry, appName, lang string, t Translator) PlatformMenus {
	topLevel := func(key string) string {
		return t.String("system-menu.top-level."+key, lang)
	}

	playback := Group{
		Label: topLevel("playback"),
		Items: reg.pick(
			KeyPlay,
			KeyPause,
			KeyStop,
			KeySeparator,
			KeyPrevious,
			KeyNext,
		),
	}

	view := Group{
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
			playback,
			view,
			{
				Label: topLevel("help"),
				Items: reg.pick(
					KeyAbout,
					KeySeparator,
					KeyModalWelcome,
					KeyLinkWebsite,
					KeyModalOpenSource,
					KeySeparator,
					KeyLinkTerms,
					KeyLinkPrivacy,
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
			view,
			playback,
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
					KeyModalOpenSource,
					KeySeparator,
					KeyLinkWebsite,
					KeyLinkTerms,
					KeyLinkPrivacy,
				),
			},
		},
	}
}
