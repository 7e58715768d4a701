package relabelcli

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"github.com/urfave/cli/v2"

	"github.com/cri-o/relabel/internal/log"
	"github.com/cri-o/relabel/internal/signals"
	"github.com/cri-o/relabel/internal/watcher"
	"github.com/cri-o/relabel/pkg/relabel"
)

// WatchCommand observes paths and restores the labels of objects as they
// appear or change.
var WatchCommand = &cli.Command{
	Name:      "watch",
	Usage:     "Watch paths and relabel objects as they appear",
	ArgsUsage: "[PATH…]",
	Description: "Watch the provided paths, or the configured watch_paths " +
		"when none are provided, and relabel every object created or " +
		"changed below them. SIGHUP reloads the file contexts database.",
	Action: func(c *cli.Context) error {
		cfg, err := GetConfigFromContext(c)
		if err != nil {
			return err
		}

		if !relabel.Enabled() {
			return errors.New("SELinux is not enabled on this host")
		}

		paths := c.Args().Slice()
		if len(paths) == 0 {
			paths = cfg.WatchPaths
		}

		db, err := Database(cfg)
		if err != nil {
			return err
		}

		relabeler := relabel.New(db)

		w, err := watcher.New(relabeler, db, paths)
		if err != nil {
			return err
		}

		ctx := context.WithValue(context.Background(), log.Name{}, "watch")
		ctx = context.WithValue(ctx, log.ID{}, c.App.Name)

		sig := make(chan os.Signal, 2)
		signal.Notify(sig, signals.Interrupt, signals.Term, signals.Hup)
		go func() {
			for s := range sig {
				switch s {
				case signals.Hup:
					log.Infof(ctx, "Caught SIGHUP")

					if err := w.Reload(ctx); err != nil {
						log.Errorf(ctx, "%v", err)
					}
				case signals.Interrupt, signals.Term:
					log.Infof(ctx, "Caught %v, stopping", s)
					w.Stop()

					return
				}
			}
		}()

		log.Infof(ctx, "Watching %v", paths)

		return w.Run(ctx)
	},
}
