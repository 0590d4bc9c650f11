package mochi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
)

// Deck represents a single Mochi deck. Deck names are display strings and are
// not unique; the ID is the only stable handle. A Deck value is a view of the
// cache at the time it was handed out. After a mutation the canonical state
// is the rebuilt cache, so re-fetch (GetDeck, Decks) to see it.
//
// Decks carry a reference to the Client that produced them so the convenience
// methods (AddCard, Children, Rename, Delete) can reach the API.
type Deck struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ParentID string `json:"parent-id,omitempty"`

	client *Client
}

// createDeckRequest is the wire form of a deck creation.
type createDeckRequest struct {
	Name     string `json:"name"`
	ParentID string `json:"parent-id,omitempty"`
}

// CreateDeck creates a deck, optionally nested under a parent deck ID, and
// refreshes the deck cache so the new deck is visible to lookups.
//
// The returned deck is looked up from the refreshed cache so it is the
// canonical object. If that lookup fails (the name collides with an existing
// deck, or the server listing lags the creation), a deck built from the
// creation response is returned instead, with a warning; a successful create
// never comes back as an error about the lookup.
func (c *Client) CreateDeck(ctx context.Context, name, parentID string) (*Deck, error) {
	req := createDeckRequest{Name: name, ParentID: parentID}

	var doc deckDoc
	if err := c.do(ctx, "POST", "decks", req, &doc); err != nil {
		return nil, fmt.Errorf("failed to create deck %q: %w", name, err)
	}

	createdID := doc.id()
	if createdID == "" || doc.Name == nil {
		return nil, &APIError{Message: fmt.Sprintf("created deck response for %q missing id or name", name)}
	}
	createdName := *doc.Name

	if err := c.registry.Refresh(ctx); err != nil {
		return nil, fmt.Errorf("deck %q created but cache refresh failed: %w", createdName, err)
	}
	c.logger.Debug("deck created", "name", createdName, "id", createdID)

	deck, err := c.registry.GetByName(createdName)
	if err != nil {
		c.logger.Warn("created deck not uniquely retrievable from refreshed cache, returning response object",
			"name", createdName, "id", createdID, "error", err)
		return &Deck{
			ID:       createdID,
			Name:     createdName,
			ParentID: doc.parentID(c.logger),
			client:   c,
		}, nil
	}
	return deck, nil
}

// DeleteDeck deletes a deck by ID and refreshes the deck cache. A 404 from
// the API is reported as a distinct not-found error.
func (c *Client) DeleteDeck(ctx context.Context, deckID string) error {
	err := c.do(ctx, "DELETE", "decks/"+url.PathEscape(deckID), nil, nil)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			return fmt.Errorf("failed to delete deck: no deck found with ID %q: %w", deckID, err)
		}
		return fmt.Errorf("failed to delete deck %q: %w", deckID, err)
	}

	if err := c.registry.Refresh(ctx); err != nil {
		return fmt.Errorf("deck %q deleted but cache refresh failed: %w", deckID, err)
	}
	c.logger.Debug("deck deleted", "id", deckID)
	return nil
}

// RenameDeck renames a deck on the server. On success the held deck object's
// name is updated immediately for caller convenience, and then the cache is
// rebuilt so the canonical state matches the server. Both steps happen, in
// that order, on every successful call.
func (c *Client) RenameDeck(ctx context.Context, deck *Deck, newName string) error {
	req := struct {
		Name string `json:"name"`
	}{Name: newName}

	if err := c.do(ctx, "POST", "decks/"+url.PathEscape(deck.ID), req, nil); err != nil {
		return fmt.Errorf("failed to rename deck %q to %q: %w", deck.ID, newName, err)
	}

	oldName := deck.Name
	deck.Name = newName
	c.logger.Debug("deck renamed", "id", deck.ID, "from", oldName, "to", newName)

	if err := c.registry.Refresh(ctx); err != nil {
		return fmt.Errorf("deck %q renamed but cache refresh failed: %w", deck.ID, err)
	}
	return nil
}

// DeckNames returns the distinct deck names in the cache.
func (c *Client) DeckNames() []string {
	return c.registry.Names()
}

// Decks returns a name/ID pair for every cached deck, duplicates included.
func (c *Client) Decks() []DeckRef {
	return c.registry.All()
}

// CountDecks returns the total number of cached decks.
func (c *Client) CountDecks() int {
	return c.registry.Count()
}

// GetDeck returns the single cached deck with the given name. See
// Registry.GetByName for the ambiguity and not-found behavior.
func (c *Client) GetDeck(name string) (*Deck, error) {
	return c.registry.GetByName(name)
}

// RefreshDecks reloads the deck cache from the API. Use it when decks may
// have changed outside this client.
func (c *Client) RefreshDecks(ctx context.Context) error {
	return c.registry.Refresh(ctx)
}

// Children returns the decks directly nested under this deck.
func (d *Deck) Children() []*Deck {
	return d.client.registry.ChildrenOf(d.ID)
}

// ChildNames returns the names of the decks directly nested under this deck.
func (d *Deck) ChildNames() []string {
	children := d.Children()
	names := make([]string, len(children))
	for i, child := range children {
		names[i] = child.Name
	}
	return names
}

// Rename renames this deck. See Client.RenameDeck.
func (d *Deck) Rename(ctx context.Context, newName string) error {
	return d.client.RenameDeck(ctx, d, newName)
}

// Delete deletes this deck. See Client.DeleteDeck.
func (d *Deck) Delete(ctx context.Context) error {
	return d.client.DeleteDeck(ctx, d.ID)
}

func (d *Deck) String() string {
	return fmt.Sprintf("Deck(id=%q, name=%q, parent=%q)", d.ID, d.Name, d.ParentID)
}
