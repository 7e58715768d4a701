package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/cri-o/relabel/internal/log"
	"github.com/cri-o/relabel/internal/relabelcli"
	"github.com/cri-o/relabel/internal/version"
)

func main() {
	app := cli.NewApp()
	app.Name = "relabel"
	app.Authors = []*cli.Author{{Name: "The relabel Maintainers"}}
	app.Usage = "A tool for applying SELinux security contexts to filesystem objects"
	app.Description = app.Usage
	app.ArgsUsage = "PATH…"

	info, err := version.Get(false)
	if err != nil {
		logrus.Fatal(err)
	}
	app.Version = info.Version

	app.Flags, app.Metadata = relabelcli.GetFlagsAndMetadata()
	app.Flags = append(app.Flags, relabelcli.RestoreFlags...)

	app.Before = func(c *cli.Context) error {
		cfg, err := relabelcli.GetAndMergeConfigFromContext(c)
		if err != nil {
			return err
		}

		level, err := logrus.ParseLevel(cfg.LogLevel)
		if err != nil {
			return err
		}
		logrus.SetLevel(level)

		filterHook, err := log.NewFilterHook(cfg.LogFilter)
		if err != nil {
			return err
		}
		logrus.AddHook(filterHook)

		return nil
	}

	app.CommandNotFound = func(*cli.Context, string) { os.Exit(1) }
	app.OnUsageError = func(c *cli.Context, e error, b bool) error { return e }
	app.Action = relabelcli.RestoreAction

	app.Commands = relabelcli.DefaultCommands
	app.Commands = append(app.Commands,
		relabelcli.DefaultContextCommand,
		relabelcli.VersionCommand,
		relabelcli.WatchCommand,
	)

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
