package mochi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
)

// Card is the raw card record as the API returns it. Cards are never cached;
// every listing is a fresh fetch.
type Card struct {
	ID      string `json:"id"`
	DeckID  string `json:"deck-id"`
	Content string `json:"content"`
}

// Face returns the condensed front/back view of the card's content.
func (c Card) Face() CardFace {
	return SplitContent(c.Content)
}

// CreateCard creates a card with raw content in the deck with the given ID.
// Most callers want Deck.AddCard, which joins a front and back for you.
func (c *Client) CreateCard(ctx context.Context, deckID, content string) (*Card, error) {
	req := struct {
		DeckID  string `json:"deck-id"`
		Content string `json:"content"`
	}{DeckID: deckID, Content: content}

	var card Card
	if err := c.do(ctx, "POST", "cards", req, &card); err != nil {
		return nil, fmt.Errorf("failed to create card in deck %q: %w", deckID, err)
	}
	return &card, nil
}

// UpdateCard replaces a card's content with the joined front and back. The
// card is addressed directly by ID; no deck resolution is involved.
func (c *Client) UpdateCard(ctx context.Context, cardID, front, back string) (*Card, error) {
	req := struct {
		Content string `json:"content"`
	}{Content: JoinContent(front, back)}

	var card Card
	if err := c.do(ctx, "POST", "cards/"+url.PathEscape(cardID), req, &card); err != nil {
		return nil, fmt.Errorf("failed to update card %q: %w", cardID, err)
	}
	return &card, nil
}

// DeleteCard deletes a card by ID. A 404 from the API is reported as a
// distinct not-found error.
func (c *Client) DeleteCard(ctx context.Context, cardID string) error {
	err := c.do(ctx, "DELETE", "cards/"+url.PathEscape(cardID), nil, nil)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			return fmt.Errorf("failed to delete card: no card found with ID %q: %w", cardID, err)
		}
		return fmt.Errorf("failed to delete card %q: %w", cardID, err)
	}
	c.logger.Debug("card deleted", "id", cardID)
	return nil
}

// Cards lists the raw cards in a deck identified by name or ID. The input is
// resolved through the deck cache (see Registry.Resolve); an empty deck is a
// success with an empty slice.
func (c *Client) Cards(ctx context.Context, deckNameOrID string) ([]Card, error) {
	res, err := c.registry.Resolve(deckNameOrID)
	if err != nil {
		return nil, err
	}

	cards, err := c.fetchCards(ctx, res.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get cards for deck %q (resolved via %s to ID %q): %w",
			deckNameOrID, res.Via, res.ID, err)
	}
	return cards, nil
}

// CardFaces lists the cards in a deck identified by name or ID, condensed to
// front/back pairs.
func (c *Client) CardFaces(ctx context.Context, deckNameOrID string) ([]CardFace, error) {
	cards, err := c.Cards(ctx, deckNameOrID)
	if err != nil {
		return nil, err
	}
	return condense(cards), nil
}

// fetchCards performs the card listing request for one deck ID. An empty or
// missing docs list is a success with an empty slice.
func (c *Client) fetchCards(ctx context.Context, deckID string) ([]Card, error) {
	path := "cards?deck-id=" + url.QueryEscape(deckID)

	var raw json.RawMessage
	if err := c.do(ctx, "GET", path, nil, &raw); err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return []Card{}, nil
	}

	docs, err := decodeDocsPayload(raw)
	if err != nil {
		return nil, err
	}
	if docs.bareList {
		c.logger.Warn("card listing returned a bare list, expected an object with a docs field",
			"deck", deckID)
	}

	cards := make([]Card, 0, len(docs.items))
	for _, item := range docs.items {
		var card Card
		if err := json.Unmarshal(item, &card); err != nil {
			return nil, &APIError{
				Message: fmt.Sprintf("unexpected card entry in listing for deck %q", deckID),
				Body:    item,
			}
		}
		cards = append(cards, card)
	}
	return cards, nil
}

func condense(cards []Card) []CardFace {
	faces := make([]CardFace, len(cards))
	for i, card := range cards {
		faces[i] = card.Face()
	}
	return faces
}

// AddCard creates a card in this deck from a front and back, joined with the
// content separator.
func (d *Deck) AddCard(ctx context.Context, front, back string) (*Card, error) {
	return d.client.CreateCard(ctx, d.ID, JoinContent(front, back))
}

// Cards lists this deck's raw cards.
func (d *Deck) Cards(ctx context.Context) ([]Card, error) {
	cards, err := d.client.fetchCards(ctx, d.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get cards for deck %q (ID %q): %w", d.Name, d.ID, err)
	}
	return cards, nil
}

// CardFaces lists this deck's cards condensed to front/back pairs.
func (d *Deck) CardFaces(ctx context.Context) ([]CardFace, error) {
	cards, err := d.Cards(ctx)
	if err != nil {
		return nil, err
	}
	return condense(cards), nil
}
