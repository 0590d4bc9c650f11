// Package cards implements the card subcommands of the mochi CLI.
package cards

import (
	"github.com/mitchellh/cli"

	"github.com/mochi-tools/mochi-go/internal/cmd/base"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Manage cards in Mochi decks"
}

func (c *Command) Help() string {
	return `Usage: mochi cards <subcommand> [options]

  This command groups subcommands for working with cards: list, add, import.`
}

func (c *Command) Run(args []string) int {
	return cli.RunResultHelp
}
