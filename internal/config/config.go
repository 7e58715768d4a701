// Package config holds the configuration of the relabel tooling.
package config

import (
	"bytes"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"
)

// DefaultConfigPath is the default location of the configuration file.
const DefaultConfigPath = "/etc/relabel/relabel.conf"

// Config is the top level configuration.
type Config struct {
	// LogLevel is the level of the tooling logs: trace, debug, info, warn,
	// error, fatal or panic.
	LogLevel string `toml:"log_level"`

	// LogFilter is a regular expression, only matching log messages get
	// through.
	LogFilter string `toml:"log_filter"`

	// FileContexts is the path to a static file contexts table. If empty,
	// expected contexts resolve through the matchpathcon binary.
	FileContexts string `toml:"file_contexts"`

	// ExecPrefix prepends a command to every binary the tooling executes,
	// for example to reach host binaries from within a container.
	ExecPrefix []string `toml:"exec_prefix"`

	// WatchPaths are the paths watch mode observes when the command line
	// provides none.
	WatchPaths []string `toml:"watch_paths"`
}

// tomlConfig is another way of looking at the Config, which is more in sync
// with the TOML specification.
type tomlConfig struct {
	Relabel struct{ Config } `toml:"relabel"`
}

func (t *tomlConfig) toConfig(c *Config) {
	*c = t.Relabel.Config
}

func (t *tomlConfig) fromConfig(c *Config) {
	t.Relabel.Config = *c
}

// Default returns a Config with the default values set.
func Default() *Config {
	return &Config{
		LogLevel: "info",
	}
}

// UpdateFromFile populates the Config from the TOML encoded file at the
// provided path. Values not set in the file keep their previous value.
func (c *Config) UpdateFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("unable to read config: %w", err)
	}

	t := new(tomlConfig)
	t.fromConfig(c)

	if _, err := toml.Decode(string(data), t); err != nil {
		return fmt.Errorf("unable to decode config %s: %w", path, err)
	}

	t.toConfig(c)

	return c.Validate()
}

// ToFile writes the Config as TOML to the provided path.
func (c *Config) ToFile(path string) error {
	b := &bytes.Buffer{}

	t := new(tomlConfig)
	t.fromConfig(c)

	if err := toml.NewEncoder(b).Encode(t); err != nil {
		return fmt.Errorf("unable to encode config: %w", err)
	}

	if err := os.WriteFile(path, b.Bytes(), 0o644); err != nil {
		return fmt.Errorf("unable to write config %s: %w", path, err)
	}

	return nil
}

// Validate checks the Config for unusable values.
func (c *Config) Validate() error {
	if c.LogLevel != "" {
		if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
			return fmt.Errorf("unable to parse log level: %w", err)
		}
	}

	if c.FileContexts != "" {
		if _, err := os.Stat(c.FileContexts); err != nil {
			return fmt.Errorf("file contexts table not usable: %w", err)
		}
	}

	return nil
}
