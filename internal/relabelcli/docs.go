package relabelcli

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

func man() *cli.Command {
	return &cli.Command{
		Name:   "man",
		Usage:  "Generate the man page documentation.",
		Hidden: true,
		Action: func(c *cli.Context) error {
			man, err := c.App.ToMan()
			if err != nil {
				return err
			}

			fmt.Fprintln(c.App.Writer, man)
			return nil
		},
	}
}

func markdown() *cli.Command {
	return &cli.Command{
		Name:    "markdown",
		Aliases: []string{"md"},
		Usage:   "Generate the markdown documentation.",
		Hidden:  true,
		Action: func(c *cli.Context) error {
			md, err := c.App.ToMarkdown()
			if err != nil {
				return err
			}

			fmt.Fprintln(c.App.Writer, md)
			return nil
		},
	}
}
