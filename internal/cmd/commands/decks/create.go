package decks

import (
	"context"
	"flag"
	"fmt"

	"github.com/mochi-tools/mochi-go/internal/cmd/base"
)

type CreateCommand struct {
	*base.Command

	flagName   string
	flagParent string
}

func (c *CreateCommand) Synopsis() string {
	return "Create a deck"
}

func (c *CreateCommand) Help() string {
	return `Usage: mochi decks create -name NAME

  Creates a deck, optionally nested under a parent deck.` +
		c.Flags().Help()
}

func (c *CreateCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("create", flag.ExitOnError))
	c.ClientFlags(f)
	f.StringVar(
		&c.flagName, "name", "", "(Required) Name of the deck to create.",
	)
	f.StringVar(
		&c.flagParent, "parent", "", "ID of the parent deck to nest under.",
	)
	return f
}

func (c *CreateCommand) Run(args []string) int {
	if err := c.Flags().Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if c.flagName == "" {
		c.UI.Error("name flag is required")
		return 1
	}

	client, err := c.NewClient()
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	deck, err := client.CreateDeck(context.Background(), c.flagName, c.flagParent)
	if err != nil {
		c.UI.Error(fmt.Sprintf("error creating deck: %v", err))
		return 1
	}

	c.UI.Info(fmt.Sprintf("Created deck %q (ID: %s)", deck.Name, deck.ID))
	return 0
}
