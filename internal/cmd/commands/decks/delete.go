package decks

import (
	"context"
	"flag"
	"fmt"

	"github.com/mochi-tools/mochi-go/internal/cmd/base"
)

type DeleteCommand struct {
	*base.Command

	flagID string
}

func (c *DeleteCommand) Synopsis() string {
	return "Delete a deck by ID"
}

func (c *DeleteCommand) Help() string {
	return `Usage: mochi decks delete -id ID

  Deletes the deck with the given ID.` +
		c.Flags().Help()
}

func (c *DeleteCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("delete", flag.ExitOnError))
	c.ClientFlags(f)
	f.StringVar(
		&c.flagID, "id", "", "(Required) ID of the deck to delete.",
	)
	return f
}

func (c *DeleteCommand) Run(args []string) int {
	if err := c.Flags().Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if c.flagID == "" {
		c.UI.Error("id flag is required")
		return 1
	}

	client, err := c.NewClient()
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	if err := client.DeleteDeck(context.Background(), c.flagID); err != nil {
		c.UI.Error(fmt.Sprintf("error deleting deck: %v", err))
		return 1
	}

	c.UI.Info(fmt.Sprintf("Deleted deck %s", c.flagID))
	return 0
}
