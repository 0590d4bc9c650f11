package cards

import (
	"context"
	"flag"
	"fmt"

	"github.com/mochi-tools/mochi-go/internal/cmd/base"
	"github.com/mochi-tools/mochi-go/pkg/mochi"
)

type AddCommand struct {
	*base.Command

	flagDeck  string
	flagFront string
	flagBack  string
}

func (c *AddCommand) Synopsis() string {
	return "Add a card to a deck"
}

func (c *AddCommand) Help() string {
	return `Usage: mochi cards add -deck NAME_OR_ID -front FRONT -back BACK

  Creates one card in the given deck from a front and a back.` +
		c.Flags().Help()
}

func (c *AddCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("add", flag.ExitOnError))
	c.ClientFlags(f)
	f.StringVar(
		&c.flagDeck, "deck", "", "(Required) Deck name or ID.",
	)
	f.StringVar(
		&c.flagFront, "front", "", "(Required) Front content of the card.",
	)
	f.StringVar(
		&c.flagBack, "back", "", "Back content of the card.",
	)
	return f
}

func (c *AddCommand) Run(args []string) int {
	if err := c.Flags().Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if c.flagDeck == "" || c.flagFront == "" {
		c.UI.Error("deck and front flags are required")
		return 1
	}

	client, err := c.NewClient()
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	ctx := context.Background()

	res, err := client.Registry().Resolve(c.flagDeck)
	if err != nil {
		c.UI.Error(fmt.Sprintf("error resolving deck: %v", err))
		return 1
	}

	card, err := client.CreateCard(ctx, res.ID, mochi.JoinContent(c.flagFront, c.flagBack))
	if err != nil {
		c.UI.Error(fmt.Sprintf("error creating card: %v", err))
		return 1
	}

	c.UI.Info(fmt.Sprintf("Created card %s in deck %s", card.ID, res.ID))
	return 0
}
