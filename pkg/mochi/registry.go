package mochi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/hashicorp/go-hclog"
)

// ResolvedVia reports how a name-or-ID input was resolved to a deck.
type ResolvedVia string

const (
	ResolvedViaName ResolvedVia = "name"
	ResolvedViaID   ResolvedVia = "id"
)

// Resolution is the result of Registry.Resolve.
type Resolution struct {
	ID  string
	Via ResolvedVia
}

// DeckRef is a flat name/ID pair for one cached deck.
type DeckRef struct {
	Name string `json:"name"`
	ID   string `json:"id"`
}

// deckGroup holds every cached deck sharing one name. The slice is never
// empty; a single element means the name is unambiguous, more than one means a
// name collision. Collisions are grouped here, never dropped.
type deckGroup struct {
	decks []*Deck
}

func (g deckGroup) one() (*Deck, bool) {
	if len(g.decks) == 1 {
		return g.decks[0], true
	}
	return nil, false
}

func (g deckGroup) ids() []string {
	ids := make([]string, len(g.decks))
	for i, d := range g.decks {
		ids[i] = d.ID
	}
	return ids
}

// Registry owns the in-memory deck cache: a mapping from deck name to the one
// or more decks carrying that name. The cache always reflects exactly one
// successful full listing; Load builds a complete replacement map and swaps it
// in with a single assignment, so readers see either the old snapshot or the
// new one, never a partial state.
//
// Registry is not safe for concurrent use.
type Registry struct {
	client *Client
	logger hclog.Logger

	groups map[string]deckGroup
}

func newRegistry(c *Client, logger hclog.Logger) *Registry {
	return &Registry{
		client: c,
		logger: logger.Named("registry"),
		groups: map[string]deckGroup{},
	}
}

// Load fetches the full deck listing in one call and rebuilds the cache.
// Malformed entries (missing ID, missing name, undecodable) are skipped with a
// warning; an unrecognized listing shape is an error.
func (r *Registry) Load(ctx context.Context) error {
	docs, err := r.client.fetchDeckDocs(ctx)
	if err != nil {
		return fmt.Errorf("failed to list decks: %w", err)
	}

	groups := make(map[string]deckGroup, len(docs))
	count := 0
	for _, raw := range docs {
		deck, ok := r.parseDeckDoc(raw)
		if !ok {
			continue
		}
		count++

		g := groups[deck.Name]
		g.decks = append(g.decks, deck)
		groups[deck.Name] = g
	}

	r.groups = groups
	r.logger.Debug("deck cache loaded", "decks", count, "names", len(groups))
	return nil
}

// Refresh re-runs Load, wholesale replacing the cache.
func (r *Registry) Refresh(ctx context.Context) error {
	return r.Load(ctx)
}

// parseDeckDoc decodes one listing entry into a Deck. Entries that do not
// decode, or that lack an ID or a name field, are rejected. An empty name
// string is allowed; only an absent name is a reject.
func (r *Registry) parseDeckDoc(raw json.RawMessage) (*Deck, bool) {
	var doc deckDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		r.logger.Warn("skipping undecodable deck entry", "error", err)
		return nil, false
	}

	id := doc.id()
	if id == "" || doc.Name == nil {
		r.logger.Warn("skipping deck entry with missing id or name", "entry", string(raw))
		return nil, false
	}

	return &Deck{
		ID:       id,
		Name:     *doc.Name,
		ParentID: doc.parentID(r.logger),
		client:   r.client,
	}, true
}

// Names returns the distinct deck names currently cached.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.groups))
	for name := range r.groups {
		names = append(names, name)
	}
	return names
}

// All returns a flat name/ID pair for every cached deck, including every
// member of a name-collision group.
func (r *Registry) All() []DeckRef {
	refs := make([]DeckRef, 0, len(r.groups))
	for _, g := range r.groups {
		for _, d := range g.decks {
			refs = append(refs, DeckRef{Name: d.Name, ID: d.ID})
		}
	}
	return refs
}

// Count returns the total number of cached decks across all name groups.
func (r *Registry) Count() int {
	n := 0
	for _, g := range r.groups {
		n += len(g.decks)
	}
	return n
}

// GetByName returns the single deck with the given name. A name shared by
// several decks is an AmbiguousNameError carrying the colliding IDs; an absent
// name is a NotFoundError.
func (r *Registry) GetByName(name string) (*Deck, error) {
	g, ok := r.groups[name]
	if !ok {
		return nil, &NotFoundError{
			Key:          name,
			NamesChecked: len(r.groups),
			IDsChecked:   r.Count(),
		}
	}
	d, ok := g.one()
	if !ok {
		return nil, &AmbiguousNameError{Name: name, IDs: g.ids()}
	}
	return d, nil
}

// Resolve maps a name-or-ID input to exactly one deck ID. Names are tried
// first: an unambiguous name match wins, and an ambiguous one fails
// immediately rather than falling through to the ID scan, so a name collision
// is never silently treated as an ID. Otherwise every cached deck ID is checked
// for an exact match.
func (r *Registry) Resolve(nameOrID string) (Resolution, error) {
	if g, ok := r.groups[nameOrID]; ok {
		d, unambiguous := g.one()
		if !unambiguous {
			return Resolution{}, &AmbiguousNameError{Name: nameOrID, IDs: g.ids()}
		}
		return Resolution{ID: d.ID, Via: ResolvedViaName}, nil
	}

	for _, g := range r.groups {
		for _, d := range g.decks {
			if d.ID == nameOrID {
				return Resolution{ID: d.ID, Via: ResolvedViaID}, nil
			}
		}
	}

	return Resolution{}, &NotFoundError{
		Key:          nameOrID,
		NamesChecked: len(r.groups),
		IDsChecked:   r.Count(),
	}
}

// ChildrenOf returns every cached deck whose parent is the given deck ID.
// This is a linear scan over the cache; fine for the hundreds of decks a Mochi
// account realistically holds.
func (r *Registry) ChildrenOf(parentID string) []*Deck {
	var children []*Deck
	for _, g := range r.groups {
		for _, d := range g.decks {
			if d.ParentID == parentID {
				children = append(children, d)
			}
		}
	}
	return children
}

// deckDoc is the wire form of one deck listing entry. Mochi and its exports
// have used several spellings for the ID and parent fields over time, so all
// of them are accepted.
type deckDoc struct {
	ID          string          `json:"id"`
	AltID       string          `json:"_id"`
	Name        *string         `json:"name"`
	ParentID    json.RawMessage `json:"parent-id"`
	AltParentID json.RawMessage `json:"parent_id"`
	Parent      json.RawMessage `json:"parent"`
}

func (d deckDoc) id() string {
	if d.ID != "" {
		return d.ID
	}
	return d.AltID
}

// parentID picks the first parent field present. A non-string parent value is
// treated as no parent, with a warning.
func (d deckDoc) parentID(logger hclog.Logger) string {
	for _, raw := range []json.RawMessage{d.ParentID, d.AltParentID, d.Parent} {
		if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
			continue
		}
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			logger.Warn("deck has non-string parent id, treating as top-level",
				"deck", d.id(), "parent", string(raw))
			return ""
		}
		return s
	}
	return ""
}

// fetchDeckDocs performs the single full-listing request the Registry is built
// from. The expected shape is an object with a "docs" list; a bare JSON array
// is tolerated as a fallback.
func (c *Client) fetchDeckDocs(ctx context.Context) ([]json.RawMessage, error) {
	var raw json.RawMessage
	if err := c.do(ctx, "GET", "decks", nil, &raw); err != nil {
		return nil, err
	}

	docs, err := decodeDocsPayload(raw)
	if err != nil {
		return nil, err
	}
	if docs.bareList {
		c.logger.Warn("deck listing returned a bare list, expected an object with a docs field")
	}
	return docs.items, nil
}

type docsPayload struct {
	items    []json.RawMessage
	bareList bool
}

// decodeDocsPayload extracts the record list from a listing response:
// {"docs": [...]} is the expected shape, a bare array the tolerated fallback,
// anything else an error.
func decodeDocsPayload(raw json.RawMessage) (docsPayload, error) {
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	if len(trimmed) == 0 {
		return docsPayload{}, &APIError{Message: "empty listing response"}
	}

	switch trimmed[0] {
	case '{':
		var wrapper struct {
			Docs *[]json.RawMessage `json:"docs"`
		}
		if err := json.Unmarshal(raw, &wrapper); err != nil {
			return docsPayload{}, &APIError{
				Message: "unexpected listing response: docs field is not a list",
				Body:    raw,
			}
		}
		if wrapper.Docs == nil {
			// An empty object is a valid empty listing; an object with
			// other fields but no docs list is not.
			var probe map[string]json.RawMessage
			if err := json.Unmarshal(raw, &probe); err == nil && len(probe) == 0 {
				return docsPayload{}, nil
			}
			return docsPayload{}, &APIError{
				Message: "unexpected listing response: missing docs field",
				Body:    raw,
			}
		}
		return docsPayload{items: *wrapper.Docs}, nil
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err != nil {
			return docsPayload{}, &APIError{Message: "unexpected listing response", Body: raw}
		}
		return docsPayload{items: items, bareList: true}, nil
	default:
		return docsPayload{}, &APIError{
			Message: "unexpected listing response: expected an object with a docs list",
			Body:    raw,
		}
	}
}
