// Package relabelcli holds the command line interface of the relabel
// tooling.
package relabelcli

import (
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/cri-o/relabel/internal/cmdrunner"
	"github.com/cri-o/relabel/internal/config"
	"github.com/cri-o/relabel/pkg/filecontexts"
)

// DefaultCommands are the commands every binary gets.
var DefaultCommands = []*cli.Command{
	completion(),
	man(),
	markdown(),
}

// GetConfigFromContext returns the config stored in the application
// metadata.
func GetConfigFromContext(c *cli.Context) (*config.Config, error) {
	cfg, ok := c.App.Metadata["config"].(*config.Config)
	if !ok {
		return nil, errors.New("type assertion error when accessing the config")
	}

	return cfg, nil
}

// GetAndMergeConfigFromContext returns the config stored in the application
// metadata, with the command line values merged on top of it.
func GetAndMergeConfigFromContext(c *cli.Context) (*config.Config, error) {
	cfg, err := GetConfigFromContext(c)
	if err != nil {
		return nil, err
	}

	if err := mergeConfig(cfg, c); err != nil {
		return nil, err
	}

	return cfg, nil
}

func mergeConfig(cfg *config.Config, ctx *cli.Context) error {
	// Don't parse the config if the user explicitly set it to "".
	if path := ctx.String("config"); path != "" {
		if err := cfg.UpdateFromFile(path); err != nil {
			// The default config file is allowed to not exist.
			if ctx.IsSet("config") || !os.IsNotExist(err) {
				return err
			}
		}
	}

	// Command line parameters have a higher priority than any
	// configuration file.
	if ctx.IsSet("log-level") {
		cfg.LogLevel = ctx.String("log-level")
	}

	if ctx.IsSet("log-filter") {
		cfg.LogFilter = ctx.String("log-filter")
	}

	if ctx.IsSet("file-contexts") {
		cfg.FileContexts = ctx.String("file-contexts")
	}

	if ctx.IsSet("exec-prefix") {
		cfg.ExecPrefix = ctx.StringSlice("exec-prefix")
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	if len(cfg.ExecPrefix) > 0 {
		cmdrunner.PrependCommandsWith(cfg.ExecPrefix[0], cfg.ExecPrefix[1:]...)
	}

	return nil
}

// GetFlagsAndMetadata returns the global command line flags together with
// the application metadata holding the default config.
func GetFlagsAndMetadata() ([]cli.Flag, map[string]interface{}) {
	cfg := config.Default()

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:      "config",
			Aliases:   []string{"c"},
			Value:     config.DefaultConfigPath,
			Usage:     "Path to configuration file",
			EnvVars:   []string{"RELABEL_CONFIG"},
			TakesFile: true,
		},
		&cli.StringFlag{
			Name:    "log-level",
			Aliases: []string{"l"},
			Value:   cfg.LogLevel,
			Usage:   "Log messages above specified level: trace, debug, info, warn, error, fatal or panic",
			EnvVars: []string{"RELABEL_LOG_LEVEL"},
		},
		&cli.StringFlag{
			Name:    "log-filter",
			Usage:   "Filter the log messages by the provided regular expression. For example 'default-context.*' filters the creation context messages.",
			EnvVars: []string{"RELABEL_LOG_FILTER"},
		},
		&cli.StringFlag{
			Name:      "file-contexts",
			Usage:     "Path to a static file contexts table in TOML format. Expected contexts resolve through the matchpathcon binary if empty.",
			EnvVars:   []string{"RELABEL_FILE_CONTEXTS"},
			TakesFile: true,
		},
		&cli.StringSliceFlag{
			Name:    "exec-prefix",
			Usage:   "Prepend the provided command to every binary the tooling executes, for example 'nsenter,-t,1,-m' to reach host binaries from within a container.",
			EnvVars: []string{"RELABEL_EXEC_PREFIX"},
		},
	}

	metadata := map[string]interface{}{
		"config": cfg,
	}

	return flags, metadata
}

// Database creates the file contexts database the config selects: the
// static table if one is configured, the matchpathcon binary otherwise.
func Database(cfg *config.Config) (filecontexts.Database, error) {
	if cfg.FileContexts != "" {
		table, err := filecontexts.LoadTable(cfg.FileContexts)
		if err != nil {
			return nil, fmt.Errorf("unable to load file contexts table: %w", err)
		}

		return table, nil
	}

	return filecontexts.NewMatchPathCon(), nil
}
