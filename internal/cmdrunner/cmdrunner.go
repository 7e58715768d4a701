// Package cmdrunner executes the external binaries of the relabel tooling
// and allows prepending a wrapper command to all of them at once.
package cmdrunner

import (
	"os/exec"
)

// CommandRunner is an interface for executing commands. It gives the option
// to change the way commands are run tool-wide.
type CommandRunner interface {
	Command(string, ...string) *exec.Cmd
	CombinedOutput(string, ...string) ([]byte, error)
}

// Use a singleton instance, the configured prefix applies to every binary
// the tooling executes.
var commandRunner CommandRunner = &prependableCommandRunner{}

// prependableCommandRunner runs commands behind a configurable prefix, for
// example to reach host binaries from within a container.
type prependableCommandRunner struct {
	prependCmd  string
	prependArgs []string
}

// PrependCommandsWith configures the singleton to run every command behind
// prependCmd and prependArgs.
func PrependCommandsWith(prependCmd string, prependArgs ...string) {
	commandRunner = &prependableCommandRunner{
		prependCmd:  prependCmd,
		prependArgs: prependArgs,
	}
}

// ResetPrependedCmd drops a configured prefix, mostly for reliable unit
// testing.
func ResetPrependedCmd() {
	commandRunner = &prependableCommandRunner{}
}

// GetPrependedCmd returns the configured prefix command, if any.
func GetPrependedCmd() string {
	if runner, ok := commandRunner.(*prependableCommandRunner); ok {
		return runner.prependCmd
	}

	return ""
}

// Command creates an exec.Cmd on the defined commandRunner.
func Command(cmd string, args ...string) *exec.Cmd {
	return commandRunner.Command(cmd, args...)
}

// CombinedOutput calls CombinedOutput on the defined commandRunner.
func CombinedOutput(command string, args ...string) ([]byte, error) {
	return commandRunner.CombinedOutput(command, args...)
}

// Command creates an exec.Cmd. If a prefix is configured, the command
// becomes the prefix and the original command moves into the arguments.
func (c *prependableCommandRunner) Command(cmd string, args ...string) *exec.Cmd {
	realCmd := cmd
	realArgs := args

	if c.prependCmd != "" {
		realCmd = c.prependCmd
		realArgs = c.prependArgs
		realArgs = append(realArgs, cmd)
		realArgs = append(realArgs, args...)
	}

	return exec.Command(realCmd, realArgs...)
}

// CombinedOutput returns the combined output of the command, behind the
// configured prefix if there is one.
func (c *prependableCommandRunner) CombinedOutput(command string, args ...string) ([]byte, error) {
	return c.Command(command, args...).CombinedOutput()
}
