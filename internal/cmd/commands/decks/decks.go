// Package decks implements the deck subcommands of the mochi CLI.
package decks

import (
	"github.com/mitchellh/cli"

	"github.com/mochi-tools/mochi-go/internal/cmd/base"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Manage Mochi decks"
}

func (c *Command) Help() string {
	return `Usage: mochi decks <subcommand> [options]

  This command groups subcommands for working with decks: list, create,
  delete, rename.`
}

func (c *Command) Run(args []string) int {
	return cli.RunResultHelp
}
