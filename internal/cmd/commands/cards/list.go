package cards

import (
	"context"
	"flag"
	"fmt"

	"github.com/mochi-tools/mochi-go/internal/cmd/base"
)

type ListCommand struct {
	*base.Command

	flagDeck string
	flagRaw  bool
}

func (c *ListCommand) Synopsis() string {
	return "List the cards in a deck"
}

func (c *ListCommand) Help() string {
	return `Usage: mochi cards list -deck NAME_OR_ID

  Lists the cards in a deck. The deck may be given by name or by ID; an
  ambiguous name is an error. Cards print as condensed front/back pairs
  unless -raw is given.` +
		c.Flags().Help()
}

func (c *ListCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("list", flag.ExitOnError))
	c.ClientFlags(f)
	f.StringVar(
		&c.flagDeck, "deck", "", "(Required) Deck name or ID.",
	)
	f.BoolVar(
		&c.flagRaw, "raw", false,
		"Print raw card records (id and full content) instead of front/back.",
	)
	return f
}

func (c *ListCommand) Run(args []string) int {
	if err := c.Flags().Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if c.flagDeck == "" {
		c.UI.Error("deck flag is required")
		return 1
	}

	client, err := c.NewClient()
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	ctx := context.Background()

	if c.flagRaw {
		cards, err := client.Cards(ctx, c.flagDeck)
		if err != nil {
			c.UI.Error(fmt.Sprintf("error listing cards: %v", err))
			return 1
		}
		for _, card := range cards {
			c.UI.Output(fmt.Sprintf("%s\t%s", card.ID, card.Content))
		}
		return 0
	}

	faces, err := client.CardFaces(ctx, c.flagDeck)
	if err != nil {
		c.UI.Error(fmt.Sprintf("error listing cards: %v", err))
		return 1
	}
	for _, face := range faces {
		c.UI.Output(fmt.Sprintf("Q: %s\nA: %s\n", face.Front, face.Back))
	}
	return 0
}
