package relabelcli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/cri-o/relabel/internal/log"
	"github.com/cri-o/relabel/pkg/filecontexts"
	"github.com/cri-o/relabel/pkg/relabel"
)

const (
	typeFlag = "type"
	setFlag  = "set"
)

// DefaultContextCommand computes the default file creation context for a
// path and optionally installs it for the calling process.
var DefaultContextCommand = &cli.Command{
	Name:      "default-context",
	Usage:     "Compute the default file creation context for a path",
	ArgsUsage: "PATH",
	Description: "Compute the security context objects created at PATH " +
		"would receive: the kernel computed creation context, with its " +
		"type forced to the type the file contexts database expects for " +
		"the path.",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    typeFlag,
			Aliases: []string{"t"},
			Value:   "file",
			Usage: "File type of the hypothetical object, one of: " +
				strings.Join(filecontexts.FileTypes, ", "),
		},
		&cli.BoolFlag{
			Name:    setFlag,
			Aliases: []string{"s"},
			Usage:   "Install the computed context as the file creation context of the calling process before printing it.",
		},
	},
	Action: func(c *cli.Context) error {
		if c.NArg() != 1 {
			return errors.New("exactly one path required")
		}
		path := c.Args().First()

		cfg, err := GetConfigFromContext(c)
		if err != nil {
			return err
		}

		if !relabel.Enabled() {
			return errors.New("SELinux is not enabled on this host")
		}

		mode, err := filecontexts.ModeOfType(c.String(typeFlag))
		if err != nil {
			return err
		}

		db, err := Database(cfg)
		if err != nil {
			return err
		}

		relabeler := relabel.New(db)
		ctx := context.WithValue(context.Background(), log.Name{}, "default-context")
		ctx = context.WithValue(ctx, log.ID{}, path)

		if c.Bool(setFlag) {
			if err := relabeler.InstallDefaultCreationContext(ctx, path, mode); err != nil {
				return err
			}
		}

		label, err := relabeler.DefaultCreationContext(ctx, path, mode)
		if err != nil {
			return err
		}

		fmt.Fprintln(c.App.Writer, label)

		return nil
	},
}
