package mochi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

const testAPIKey = "test-api-key"

type fakeDeck struct {
	ID       string
	Name     string
	ParentID string
}

type fakeCard struct {
	ID      string
	DeckID  string
	Content string
}

// fakeMochi is an in-memory stand-in for the Mochi API, covering the
// endpoints the client consumes. deckListing, when set, overrides the GET
// /decks payload so tests can serve malformed or alternate shapes.
type fakeMochi struct {
	t *testing.T

	decks []fakeDeck
	cards []fakeCard

	deckListing any

	requests atomic.Int64
}

func (f *fakeMochi) deckDoc(d fakeDeck) map[string]any {
	doc := map[string]any{"id": d.ID, "name": d.Name}
	if d.ParentID != "" {
		doc["parent-id"] = d.ParentID
	}
	return doc
}

func (f *fakeMochi) cardDoc(c fakeCard) map[string]any {
	return map[string]any{"id": c.ID, "deck-id": c.DeckID, "content": c.Content}
}

func (f *fakeMochi) findDeck(id string) int {
	for i, d := range f.decks {
		if d.ID == id {
			return i
		}
	}
	return -1
}

func (f *fakeMochi) findCard(id string) int {
	for i, c := range f.cards {
		if c.ID == id {
			return i
		}
	}
	return -1
}

func (f *fakeMochi) handler() http.Handler {
	writeJSON := func(w http.ResponseWriter, v any) {
		w.Header().Set("Content-Type", "application/json")
		require.NoError(f.t, json.NewEncoder(w).Encode(v))
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.requests.Add(1)

		user, pass, ok := r.BasicAuth()
		require.True(f.t, ok, "missing basic auth")
		require.Equal(f.t, testAPIKey, user)
		require.Empty(f.t, pass)

		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/decks":
			if f.deckListing != nil {
				writeJSON(w, f.deckListing)
				return
			}
			docs := make([]map[string]any, 0, len(f.decks))
			for _, d := range f.decks {
				docs = append(docs, f.deckDoc(d))
			}
			writeJSON(w, map[string]any{"docs": docs})

		case r.Method == http.MethodPost && r.URL.Path == "/decks":
			var req struct {
				Name     string `json:"name"`
				ParentID string `json:"parent-id"`
			}
			require.NoError(f.t, json.NewDecoder(r.Body).Decode(&req))
			deck := fakeDeck{ID: uuid.NewString(), Name: req.Name, ParentID: req.ParentID}
			f.decks = append(f.decks, deck)
			writeJSON(w, f.deckDoc(deck))

		case r.Method == http.MethodPost && strings.HasPrefix(r.URL.Path, "/decks/"):
			id := strings.TrimPrefix(r.URL.Path, "/decks/")
			i := f.findDeck(id)
			if i < 0 {
				w.WriteHeader(http.StatusNotFound)
				writeJSON(w, map[string]any{"errors": []string{"deck not found"}})
				return
			}
			var req struct {
				Name string `json:"name"`
			}
			require.NoError(f.t, json.NewDecoder(r.Body).Decode(&req))
			f.decks[i].Name = req.Name
			writeJSON(w, f.deckDoc(f.decks[i]))

		case r.Method == http.MethodDelete && strings.HasPrefix(r.URL.Path, "/decks/"):
			id := strings.TrimPrefix(r.URL.Path, "/decks/")
			i := f.findDeck(id)
			if i < 0 {
				w.WriteHeader(http.StatusNotFound)
				writeJSON(w, map[string]any{"errors": []string{"deck not found"}})
				return
			}
			f.decks = append(f.decks[:i], f.decks[i+1:]...)
			w.WriteHeader(http.StatusNoContent)

		case r.Method == http.MethodGet && r.URL.Path == "/cards":
			deckID := r.URL.Query().Get("deck-id")
			docs := make([]map[string]any, 0)
			for _, c := range f.cards {
				if c.DeckID == deckID {
					docs = append(docs, f.cardDoc(c))
				}
			}
			writeJSON(w, map[string]any{"docs": docs})

		case r.Method == http.MethodPost && r.URL.Path == "/cards":
			var req struct {
				DeckID  string `json:"deck-id"`
				Content string `json:"content"`
			}
			require.NoError(f.t, json.NewDecoder(r.Body).Decode(&req))
			card := fakeCard{ID: uuid.NewString(), DeckID: req.DeckID, Content: req.Content}
			f.cards = append(f.cards, card)
			writeJSON(w, f.cardDoc(card))

		case r.Method == http.MethodPost && strings.HasPrefix(r.URL.Path, "/cards/"):
			id := strings.TrimPrefix(r.URL.Path, "/cards/")
			i := f.findCard(id)
			if i < 0 {
				w.WriteHeader(http.StatusNotFound)
				writeJSON(w, map[string]any{"errors": []string{"card not found"}})
				return
			}
			var req struct {
				Content string `json:"content"`
			}
			require.NoError(f.t, json.NewDecoder(r.Body).Decode(&req))
			f.cards[i].Content = req.Content
			writeJSON(w, f.cardDoc(f.cards[i]))

		case r.Method == http.MethodDelete && strings.HasPrefix(r.URL.Path, "/cards/"):
			id := strings.TrimPrefix(r.URL.Path, "/cards/")
			i := f.findCard(id)
			if i < 0 {
				w.WriteHeader(http.StatusNotFound)
				writeJSON(w, map[string]any{"errors": []string{"card not found"}})
				return
			}
			f.cards = append(f.cards[:i], f.cards[i+1:]...)
			w.WriteHeader(http.StatusNoContent)

		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
}

// newTestClient spins up a fake Mochi server and a client pointed at it. The
// client performs its initial deck load against the fake.
func newTestClient(t *testing.T, fake *fakeMochi) *Client {
	t.Helper()
	client, err := newFailingTestClient(t, fake)
	require.NoError(t, err)
	return client
}

// newFailingTestClient is newTestClient without the success requirement, for
// tests that expect construction (the initial deck load) to fail.
func newFailingTestClient(t *testing.T, fake *fakeMochi) (*Client, error) {
	t.Helper()
	fake.t = t

	server := httptest.NewServer(fake.handler())
	t.Cleanup(server.Close)

	cfg := DefaultConfig()
	cfg.APIKey = testAPIKey
	cfg.BaseURL = server.URL + "/"

	return New(cfg)
}
