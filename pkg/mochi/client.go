package mochi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/hashicorp/go-hclog"
)

// Client talks to the Mochi API. It owns the HTTP transport and the deck
// Registry, and refreshes the Registry after every mutation that changes the
// deck hierarchy.
//
// A Client is not safe for concurrent use.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     hclog.Logger

	registry *Registry
}

// New creates a Client and performs the initial deck cache load. A missing API
// key fails before any network access.
func New(cfg Config) (*Client, error) {
	defaults := DefaultConfig()
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaults.BaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = defaults.Timeout
	}
	if cfg.Logger == nil {
		cfg.Logger = hclog.NewNullLogger()
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid mochi client config: %w", err)
	}

	c := &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		httpClient: cfg.newHTTPClient(),
		logger:     cfg.Logger.Named("mochi"),
	}
	c.registry = newRegistry(c, c.logger)

	if err := c.registry.Load(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to load decks during initialization: %w", err)
	}
	c.logger.Debug("client initialized", "decks", c.registry.Count())

	return c, nil
}

// Registry exposes the deck cache for direct queries.
func (c *Client) Registry() *Registry {
	return c.registry
}

// do executes one authenticated API request. A nil result discards the
// response body; a 204 or empty body with a non-nil result leaves the result
// untouched. Every failure comes back as an *APIError.
func (c *Client) do(ctx context.Context, method, path string, body, result any) error {
	endpoint := c.baseURL + "/" + strings.TrimLeft(path, "/")

	var bodyReader io.Reader
	if body != nil {
		bodyBytes, err := json.Marshal(body)
		if err != nil {
			return &APIError{Message: fmt.Sprintf("failed to marshal request body for %s %s: %v", method, path, err)}
		}
		bodyReader = bytes.NewReader(bodyBytes)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, bodyReader)
	if err != nil {
		return &APIError{Message: fmt.Sprintf("failed to create request for %s %s: %v", method, path, err)}
	}

	// Mochi authenticates with the API key as the Basic auth username and a
	// blank password.
	req.SetBasicAuth(c.apiKey, "")
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &APIError{Message: fmt.Sprintf("request failed calling %s %s: %v", method, path, err)}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &APIError{
			Message:    fmt.Sprintf("failed to read response from %s %s: %v", method, path, err),
			StatusCode: resp.StatusCode,
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := fmt.Sprintf("HTTP error calling %s %s", method, path)

		// Surface the API's own error fields when the body is JSON.
		var apiErr struct {
			Errors  json.RawMessage `json:"errors"`
			Message string          `json:"message"`
		}
		if err := json.Unmarshal(respBody, &apiErr); err == nil {
			switch {
			case len(apiErr.Errors) > 0:
				msg += ": " + string(apiErr.Errors)
			case apiErr.Message != "":
				msg += ": " + apiErr.Message
			}
		}

		return &APIError{Message: msg, StatusCode: resp.StatusCode, Body: respBody}
	}

	// No content is a normal success (e.g. DELETE).
	if result == nil || resp.StatusCode == http.StatusNoContent || len(respBody) == 0 {
		return nil
	}

	if err := json.Unmarshal(respBody, result); err != nil {
		return &APIError{
			Message:    fmt.Sprintf("failed to parse JSON response from %s %s", method, path),
			StatusCode: resp.StatusCode,
			Body:       respBody,
		}
	}

	return nil
}
