// Package version implements the version command.
package version

import (
	"github.com/mochi-tools/mochi-go/internal/cmd/base"
	"github.com/mochi-tools/mochi-go/internal/version"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Print the CLI version"
}

func (c *Command) Help() string {
	return `Usage: mochi version

  Prints the mochi CLI version.`
}

func (c *Command) Run(args []string) int {
	c.UI.Output(version.Version)
	return 0
}
