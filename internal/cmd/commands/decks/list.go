package decks

import (
	"flag"
	"fmt"
	"sort"

	"github.com/mochi-tools/mochi-go/internal/cmd/base"
)

type ListCommand struct {
	*base.Command

	flagFull bool
}

func (c *ListCommand) Synopsis() string {
	return "List all decks"
}

func (c *ListCommand) Help() string {
	return `Usage: mochi decks list

  Lists the distinct deck names, or every deck with its ID when -full is
  given (decks with duplicate names appear once per deck).` +
		c.Flags().Help()
}

func (c *ListCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("list", flag.ExitOnError))
	c.ClientFlags(f)
	f.BoolVar(
		&c.flagFull, "full", false,
		"Print every deck as 'name<TAB>id' instead of distinct names only.",
	)
	return f
}

func (c *ListCommand) Run(args []string) int {
	if err := c.Flags().Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	client, err := c.NewClient()
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	if c.flagFull {
		refs := client.Decks()
		sort.Slice(refs, func(i, j int) bool {
			if refs[i].Name != refs[j].Name {
				return refs[i].Name < refs[j].Name
			}
			return refs[i].ID < refs[j].ID
		})
		for _, ref := range refs {
			c.UI.Output(fmt.Sprintf("%s\t%s", ref.Name, ref.ID))
		}
		return 0
	}

	names := client.DeckNames()
	sort.Strings(names)
	for _, name := range names {
		c.UI.Output(name)
	}
	return 0
}
