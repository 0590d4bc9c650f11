package mochi

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Load(t *testing.T) {
	t.Run("groups name collisions", func(t *testing.T) {
		id1, id2 := uuid.NewString(), uuid.NewString()
		client := newTestClient(t, &fakeMochi{decks: []fakeDeck{
			{ID: id1, Name: "Spanish"},
			{ID: id2, Name: "Spanish"},
			{ID: uuid.NewString(), Name: "French"},
		}})

		reg := client.Registry()
		assert.Equal(t, 3, reg.Count())
		assert.ElementsMatch(t, []string{"Spanish", "French"}, reg.Names())

		// Both colliding decks show up in the flat listing.
		var spanishIDs []string
		for _, ref := range reg.All() {
			if ref.Name == "Spanish" {
				spanishIDs = append(spanishIDs, ref.ID)
			}
		}
		assert.ElementsMatch(t, []string{id1, id2}, spanishIDs)
	})

	t.Run("skips entries missing id or name", func(t *testing.T) {
		client := newTestClient(t, &fakeMochi{deckListing: map[string]any{
			"docs": []map[string]any{
				{"id": "d1", "name": "Valid"},
				{"name": "No ID"},
				{"id": "d3"},
				{"id": "d4", "name": "Also Valid"},
			},
		}})

		reg := client.Registry()
		assert.Equal(t, 2, reg.Count())
		assert.ElementsMatch(t, []string{"Valid", "Also Valid"}, reg.Names())
		assert.Len(t, reg.All(), 2)
	})

	t.Run("accepts alternate field spellings", func(t *testing.T) {
		client := newTestClient(t, &fakeMochi{deckListing: map[string]any{
			"docs": []map[string]any{
				{"_id": "d1", "name": "Alt ID", "parent_id": "p1"},
				{"id": "d2", "name": "Alt Parent", "parent": "p1"},
			},
		}})

		reg := client.Registry()
		assert.Equal(t, 2, reg.Count())
		assert.Len(t, reg.ChildrenOf("p1"), 2)
	})

	t.Run("allows empty deck name", func(t *testing.T) {
		client := newTestClient(t, &fakeMochi{deckListing: map[string]any{
			"docs": []map[string]any{{"id": "d1", "name": ""}},
		}})
		assert.Equal(t, 1, client.Registry().Count())
	})

	t.Run("non-string parent is treated as top-level", func(t *testing.T) {
		client := newTestClient(t, &fakeMochi{deckListing: map[string]any{
			"docs": []map[string]any{{"id": "d1", "name": "Odd Parent", "parent-id": 42}},
		}})

		deck, err := client.GetDeck("Odd Parent")
		require.NoError(t, err)
		assert.Empty(t, deck.ParentID)
	})

	t.Run("tolerates bare list", func(t *testing.T) {
		client := newTestClient(t, &fakeMochi{deckListing: []map[string]any{
			{"id": "d1", "name": "Bare"},
		}})
		assert.Equal(t, 1, client.Registry().Count())
	})

	t.Run("rejects unrecognized shapes", func(t *testing.T) {
		for _, listing := range []any{
			map[string]any{"results": []any{}},
			"just a string",
			42,
		} {
			_, err := newFailingTestClient(t, &fakeMochi{deckListing: listing})
			require.Error(t, err)

			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Contains(t, apiErr.Message, "unexpected listing response")
		}
	})
}

func TestRegistry_GetByName(t *testing.T) {
	id1, id2 := uuid.NewString(), uuid.NewString()
	client := newTestClient(t, &fakeMochi{decks: []fakeDeck{
		{ID: id1, Name: "Spanish"},
		{ID: id2, Name: "Spanish"},
		{ID: "french-id", Name: "French"},
	}})
	reg := client.Registry()

	t.Run("unambiguous name", func(t *testing.T) {
		deck, err := reg.GetByName("French")
		require.NoError(t, err)
		assert.Equal(t, "french-id", deck.ID)
	})

	t.Run("ambiguous name carries colliding ids", func(t *testing.T) {
		_, err := reg.GetByName("Spanish")
		var ambErr *AmbiguousNameError
		require.ErrorAs(t, err, &ambErr)
		assert.Equal(t, "Spanish", ambErr.Name)
		assert.ElementsMatch(t, []string{id1, id2}, ambErr.IDs)
	})

	t.Run("absent name", func(t *testing.T) {
		_, err := reg.GetByName("German")
		var nfErr *NotFoundError
		require.ErrorAs(t, err, &nfErr)
		assert.Equal(t, "German", nfErr.Key)
		assert.True(t, IsNotFound(err))
	})
}

func TestRegistry_Resolve(t *testing.T) {
	id1, id2 := uuid.NewString(), uuid.NewString()
	client := newTestClient(t, &fakeMochi{decks: []fakeDeck{
		{ID: id1, Name: "Spanish"},
		{ID: id2, Name: "Spanish"},
		{ID: "french-id", Name: "French"},
		// A deck whose ID equals the colliding name, to prove ambiguity
		// does not fall through to the ID scan.
		{ID: "Spanish", Name: "Trap"},
	}})
	reg := client.Registry()

	t.Run("resolves unambiguous name", func(t *testing.T) {
		res, err := reg.Resolve("French")
		require.NoError(t, err)
		assert.Equal(t, Resolution{ID: "french-id", Via: ResolvedViaName}, res)
	})

	t.Run("resolves by id", func(t *testing.T) {
		res, err := reg.Resolve(id2)
		require.NoError(t, err)
		assert.Equal(t, Resolution{ID: id2, Via: ResolvedViaID}, res)
	})

	t.Run("ambiguous name fails even when it matches an id", func(t *testing.T) {
		_, err := reg.Resolve("Spanish")
		var ambErr *AmbiguousNameError
		require.ErrorAs(t, err, &ambErr)
		assert.ElementsMatch(t, []string{id1, id2}, ambErr.IDs)
	})

	t.Run("name match wins over id match", func(t *testing.T) {
		// "Trap" is both a name and could look like an id; the name wins.
		res, err := reg.Resolve("Trap")
		require.NoError(t, err)
		assert.Equal(t, ResolvedViaName, res.Via)
		assert.Equal(t, "Spanish", res.ID)
	})

	t.Run("nothing matches", func(t *testing.T) {
		_, err := reg.Resolve("nope")
		var nfErr *NotFoundError
		require.ErrorAs(t, err, &nfErr)
		assert.Equal(t, 3, nfErr.NamesChecked)
		assert.Equal(t, 4, nfErr.IDsChecked)
	})
}

func TestRegistry_ChildrenOf(t *testing.T) {
	client := newTestClient(t, &fakeMochi{decks: []fakeDeck{
		{ID: "root", Name: "Languages"},
		{ID: "es", Name: "Spanish", ParentID: "root"},
		{ID: "fr", Name: "French", ParentID: "root"},
		{ID: "es-verbs", Name: "Verbs", ParentID: "es"},
		{ID: "loose", Name: "Loose Deck"},
	}})
	reg := client.Registry()

	t.Run("direct children only", func(t *testing.T) {
		children := reg.ChildrenOf("root")
		ids := make([]string, len(children))
		for i, d := range children {
			ids[i] = d.ID
		}
		assert.ElementsMatch(t, []string{"es", "fr"}, ids)
	})

	t.Run("no children", func(t *testing.T) {
		assert.Empty(t, reg.ChildrenOf("fr"))
	})

	t.Run("unknown parent", func(t *testing.T) {
		assert.Empty(t, reg.ChildrenOf("does-not-exist"))
	})
}

func TestRegistry_Refresh(t *testing.T) {
	fake := &fakeMochi{decks: []fakeDeck{{ID: "d1", Name: "Before"}}}
	client := newTestClient(t, fake)
	reg := client.Registry()
	require.Equal(t, 1, reg.Count())

	// The cache is a snapshot: server-side changes appear only after refresh.
	fake.decks = append(fake.decks, fakeDeck{ID: "d2", Name: "After"})
	assert.Equal(t, 1, reg.Count())

	require.NoError(t, reg.Refresh(context.Background()))
	assert.Equal(t, 2, reg.Count())
	assert.ElementsMatch(t, []string{"Before", "After"}, reg.Names())
}
