package decks

import (
	"context"
	"flag"
	"fmt"

	"github.com/mochi-tools/mochi-go/internal/cmd/base"
	"github.com/mochi-tools/mochi-go/pkg/mochi"
)

type RenameCommand struct {
	*base.Command

	flagID   string
	flagName string
}

func (c *RenameCommand) Synopsis() string {
	return "Rename a deck"
}

func (c *RenameCommand) Help() string {
	return `Usage: mochi decks rename -id ID -name NEW_NAME

  Renames the deck with the given ID.` +
		c.Flags().Help()
}

func (c *RenameCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("rename", flag.ExitOnError))
	c.ClientFlags(f)
	f.StringVar(
		&c.flagID, "id", "", "(Required) ID of the deck to rename.",
	)
	f.StringVar(
		&c.flagName, "name", "", "(Required) New name for the deck.",
	)
	return f
}

func (c *RenameCommand) Run(args []string) int {
	if err := c.Flags().Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if c.flagID == "" || c.flagName == "" {
		c.UI.Error("id and name flags are required")
		return 1
	}

	client, err := c.NewClient()
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	ctx := context.Background()

	// Resolve the ID to a cached deck so the rename goes through the same
	// refresh path library callers use.
	res, err := client.Registry().Resolve(c.flagID)
	if err != nil {
		c.UI.Error(fmt.Sprintf("error resolving deck: %v", err))
		return 1
	}
	deck := &mochi.Deck{ID: res.ID}
	if err := client.RenameDeck(ctx, deck, c.flagName); err != nil {
		c.UI.Error(fmt.Sprintf("error renaming deck: %v", err))
		return 1
	}

	c.UI.Info(fmt.Sprintf("Renamed deck %s to %q", res.ID, c.flagName))
	return 0
}
