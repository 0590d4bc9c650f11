// Package base carries the plumbing shared by all CLI commands: the UI, the
// logger, flag-set helpers, and client construction from flags or the
// environment.
package base

import (
	"bytes"
	"flag"
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"

	"github.com/mochi-tools/mochi-go/pkg/mochi"
)

// Command is embedded by every CLI command.
type Command struct {
	UI  cli.Ui
	Log hclog.Logger

	flagAPIKey  string
	flagBaseURL string
}

// NewCommand returns a Command with the given UI and logger.
func NewCommand(ui cli.Ui, log hclog.Logger) *Command {
	return &Command{UI: ui, Log: log}
}

// ClientFlags registers the flags every API-touching command shares.
func (c *Command) ClientFlags(f *FlagSet) {
	f.StringVar(
		&c.flagAPIKey, "api-key", "",
		"[MOCHI_API_KEY] Mochi API key.",
	)
	f.StringVar(
		&c.flagBaseURL, "base-url", "",
		"[MOCHI_BASE_URL] Override the Mochi API base URL.",
	)
}

// NewClient builds a mochi client from flags, falling back to the
// environment. Construction performs the initial deck cache load.
func (c *Command) NewClient() (*mochi.Client, error) {
	apiKey := c.flagAPIKey
	if apiKey == "" {
		apiKey = os.Getenv("MOCHI_API_KEY")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("a Mochi API key is required: pass -api-key or set MOCHI_API_KEY")
	}

	baseURL := c.flagBaseURL
	if baseURL == "" {
		baseURL = os.Getenv("MOCHI_BASE_URL")
	}

	cfg := mochi.DefaultConfig()
	cfg.APIKey = apiKey
	cfg.Logger = c.Log
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}

	return mochi.New(cfg)
}

// FlagSet wraps flag.FlagSet so commands can append rendered flag usage to
// their help text.
type FlagSet struct {
	*flag.FlagSet
}

// NewFlagSet wraps the given flag set.
func NewFlagSet(f *flag.FlagSet) *FlagSet {
	return &FlagSet{FlagSet: f}
}

// Help renders the flag defaults as a help text section.
func (f *FlagSet) Help() string {
	var buf bytes.Buffer
	f.SetOutput(&buf)
	f.PrintDefaults()
	if buf.Len() == 0 {
		return ""
	}
	return "\n\nFlags:\n\n" + buf.String()
}
