package cards

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"

	"github.com/mochi-tools/mochi-go/internal/cmd/base"
	"github.com/mochi-tools/mochi-go/pkg/mochi"
)

type ImportCommand struct {
	*base.Command

	flagDeck string
}

// importEntry is one card in an import file: a YAML list of front/back pairs.
type importEntry struct {
	Front string `yaml:"front"`
	Back  string `yaml:"back"`
}

func (c *ImportCommand) Synopsis() string {
	return "Import cards into a deck from a YAML file"
}

func (c *ImportCommand) Help() string {
	return `Usage: mochi cards import -deck NAME_OR_ID FILE

  Imports cards from a YAML file into the given deck. The file is a list of
  front/back pairs:

    - front: Capital of France?
      back: Paris
    - front: Capital of Spain?
      back: Madrid

  Import continues past individual card failures; every failure is reported
  at the end.` +
		c.Flags().Help()
}

func (c *ImportCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("import", flag.ExitOnError))
	c.ClientFlags(f)
	f.StringVar(
		&c.flagDeck, "deck", "", "(Required) Deck name or ID to import into.",
	)
	return f
}

func (c *ImportCommand) Run(args []string) int {
	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if c.flagDeck == "" {
		c.UI.Error("deck flag is required")
		return 1
	}
	if len(flags.Args()) != 1 {
		c.UI.Error("exactly one import file is required")
		return 1
	}
	file := flags.Args()[0]

	data, err := os.ReadFile(file)
	if err != nil {
		c.UI.Error(fmt.Sprintf("error reading import file: %v", err))
		return 1
	}

	var entries []importEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing import file %q: %v", file, err))
		return 1
	}
	if len(entries) == 0 {
		c.UI.Warn("import file contains no cards")
		return 0
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

	var merr *multierror.Error
	created := 0
	for i, entry := range entries {
		if entry.Front == "" {
			merr = multierror.Append(merr, fmt.Errorf("entry %d: front is required", i+1))
			continue
		}
		content := mochi.JoinContent(entry.Front, entry.Back)
		if _, err := client.CreateCard(ctx, res.ID, content); err != nil {
			merr = multierror.Append(merr, fmt.Errorf("entry %d (%q): %w", i+1, entry.Front, err))
			continue
		}
		created++
	}

	c.UI.Info(fmt.Sprintf("Imported %d/%d cards into deck %s", created, len(entries), res.ID))
	if err := merr.ErrorOrNil(); err != nil {
		c.UI.Error(fmt.Sprintf("some cards failed to import:\n%v", err))
		return 1
	}
	return 0
}
