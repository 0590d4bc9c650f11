package cmd

import (
	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"

	"github.com/mochi-tools/mochi-go/internal/cmd/base"
	"github.com/mochi-tools/mochi-go/internal/cmd/commands/cards"
	"github.com/mochi-tools/mochi-go/internal/cmd/commands/decks"
	versioncmd "github.com/mochi-tools/mochi-go/internal/cmd/commands/version"
)

// Commands is the mapping of all available CLI commands.
var Commands map[string]cli.CommandFactory

func initCommands(log hclog.Logger, ui cli.Ui) {
	Commands = map[string]cli.CommandFactory{
		"decks": func() (cli.Command, error) {
			return &decks.Command{Command: base.NewCommand(ui, log)}, nil
		},
		"decks list": func() (cli.Command, error) {
			return &decks.ListCommand{Command: base.NewCommand(ui, log)}, nil
		},
		"decks create": func() (cli.Command, error) {
			return &decks.CreateCommand{Command: base.NewCommand(ui, log)}, nil
		},
		"decks delete": func() (cli.Command, error) {
			return &decks.DeleteCommand{Command: base.NewCommand(ui, log)}, nil
		},
		"decks rename": func() (cli.Command, error) {
			return &decks.RenameCommand{Command: base.NewCommand(ui, log)}, nil
		},
		"cards": func() (cli.Command, error) {
			return &cards.Command{Command: base.NewCommand(ui, log)}, nil
		},
		"cards list": func() (cli.Command, error) {
			return &cards.ListCommand{Command: base.NewCommand(ui, log)}, nil
		},
		"cards add": func() (cli.Command, error) {
			return &cards.AddCommand{Command: base.NewCommand(ui, log)}, nil
		},
		"cards import": func() (cli.Command, error) {
			return &cards.ImportCommand{Command: base.NewCommand(ui, log)}, nil
		},
		"version": func() (cli.Command, error) {
			return &versioncmd.Command{Command: base.NewCommand(ui, log)}, nil
		},
	}
}
