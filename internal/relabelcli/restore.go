package relabelcli

import (
	"context"
	"errors"

	"github.com/hashicorp/go-multierror"
	"github.com/urfave/cli/v2"

	"github.com/cri-o/relabel/internal/log"
	"github.com/cri-o/relabel/pkg/relabel"
)

const (
	recursiveFlag = "recursive"
	preserveFlag  = "preserve"
	dryRunFlag    = "dry-run"
)

// RestoreFlags are the flags of the default restore action.
var RestoreFlags = []cli.Flag{
	&cli.BoolFlag{
		Name:    recursiveFlag,
		Aliases: []string{"R", "r"},
		Usage:   "Relabel every entry of the directory trees rooted at the provided paths, never following symlinks.",
	},
	&cli.BoolFlag{
		Name:    preserveFlag,
		Aliases: []string{"p"},
		Usage:   "Copy the file creation context of the current process onto the objects instead of consulting the file contexts database.",
	},
	&cli.BoolFlag{
		Name:    dryRunFlag,
		Aliases: []string{"n"},
		Usage:   "Log every change without applying it.",
	},
}

// RestoreAction relabels the provided paths with their expected security
// contexts. It is the default action of the relabel binary.
func RestoreAction(c *cli.Context) error {
	if c.NArg() == 0 {
		return errors.New("no paths provided")
	}

	cfg, err := GetConfigFromContext(c)
	if err != nil {
		return err
	}

	if !relabel.Enabled() {
		return errors.New("SELinux is not enabled on this host")
	}

	db, err := Database(cfg)
	if err != nil {
		return err
	}

	relabeler := relabel.New(db)
	opts := &relabel.Options{
		Recurse:  c.Bool(recursiveFlag),
		Preserve: c.Bool(preserveFlag),
		DryRun:   c.Bool(dryRunFlag),
	}

	var errs *multierror.Error

	for _, path := range c.Args().Slice() {
		ctx := context.WithValue(context.Background(), log.Name{}, "restore")
		ctx = context.WithValue(ctx, log.ID{}, path)

		if err := relabeler.Relabel(ctx, path, opts); err != nil {
			errs = multierror.Append(errs, err)
		}
	}

	return errs.ErrorOrNil()
}
