package mochi

import (
	"net/http"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/hashicorp/go-hclog"
)

// DefaultBaseURL is the production Mochi API endpoint.
const DefaultBaseURL = "https://app.mochi.cards/api/"

// Config contains configuration for the Mochi client.
type Config struct {
	// APIKey is the Mochi API key (Mochi Settings -> API). Required.
	// Mochi uses HTTP Basic auth with the key as username and a blank
	// password.
	APIKey string

	// BaseURL overrides the API endpoint. Default: DefaultBaseURL.
	// Mainly useful for tests.
	BaseURL string

	// Timeout for API requests. Default: 30 seconds.
	Timeout time.Duration

	// Logger for structured diagnostics (skipped cache entries, refresh
	// fallbacks). Optional; a null logger is used when unset.
	Logger hclog.Logger
}

// DefaultConfig returns a Config with sensible defaults. APIKey must still be
// supplied by the caller.
func DefaultConfig() Config {
	return Config{
		BaseURL: DefaultBaseURL,
		Timeout: 30 * time.Second,
	}
}

// Validate checks if the configuration is valid.
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.APIKey, validation.Required.Error("api key is required")),
		validation.Field(&c.BaseURL, validation.Required, is.URL),
		validation.Field(&c.Timeout, validation.Min(time.Duration(0))),
	)
}

// newHTTPClient creates the HTTP client used for all API requests.
func (c Config) newHTTPClient() *http.Client {
	return &http.Client{
		Timeout: c.Timeout,
	}
}
