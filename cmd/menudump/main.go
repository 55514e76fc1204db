package main

import (
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"hydra-desktop/backend"
)

func main() {
	app := &cli.App{
		Name:  "menudump",
		Usage: "print the resolved system menu for an app variant and platform",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "app",
				Aliases: []string{"a"},
				Value:   backend.VariantServer.String(),
				Usage:   "application variant (server, music)",
				EnvVars: []string{"HYDRA_APP"},
			},
			&cli.StringFlag{
				Name:    "platform",
				Aliases: []string{"p"},
				Value:   string(backend.CurrentPlatform()),
				Usage:   "host platform (windows, darwin)",
			},
			&cli.StringFlag{
				Name:    "lang",
				Aliases: []string{"l"},
				Value:   backend.LocaleEnglish,
				Usage:   "language slug",
			},
			&cli.StringFlag{
				Name:    "app-name",
				Value:   "Hydra",
				Usage:   "application name shown in the macOS identity menu",
				EnvVars: []string{"HYDRA_APP_NAME"},
			},
		},
		Action: dump,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func dump(c *cli.Context) error {
	variant, err := backend.ParseVariant(c.String("app"))
	if err != nil {
		return err
	}
	translator, err := backend.NewTranslator()
	if err != nil {
		return err
	}

	// アクションは実行しないので更新確認やブラウザ起動は接続しない
	systemMenu := backend.NewSystemMenu(backend.SystemMenuOptions{
		Translator: translator,
		AppName:    c.String("app-name"),
		Logger:     backend.NewAppLogger(nil, false, ""),
	})

	platform := backend.Platform(c.String("platform"))
	tree, ok, err := systemMenu.Get(variant, platform, nil, c.String("lang"))
	if err != nil {
		return err
	}
	if !ok {
		return cli.Exit(fmt.Sprintf("no %s menu for platform %q", variant, platform), 1)
	}

	title := fmt.Sprintf("%s (%s, %s)", variant, platform, c.String("lang"))
	fmt.Fprint(c.App.Writer, backend.RenderTree(title, tree, platform))
	return nil
}
