// Package mochi provides a Go client for the Mochi.cards REST API.
//
// # Overview
//
// The client authenticates with a Mochi API key, keeps an in-memory cache of
// the deck hierarchy, and exposes CRUD operations on decks and cards. Deck
// names are not unique in Mochi, so lookups go through a Registry that groups
// decks by name and resolves a name-or-ID input to exactly one deck or fails
// with a typed error (AmbiguousNameError, NotFoundError).
//
// # Usage
//
//	client, err := mochi.New(mochi.Config{APIKey: os.Getenv("MOCHI_API_KEY")})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	deck, err := client.CreateDeck(ctx, "Spanish Vocab", "")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if _, err := deck.AddCard(ctx, "Capital of France?", "Paris"); err != nil {
//	    log.Fatal(err)
//	}
//
//	faces, err := deck.CardFaces(ctx)
//
// Card content is a single Markdown string with the front and back joined by a
// literal "\n---\n" separator. CardFaces returns the split view; Cards returns
// the raw records.
//
// # Cache Semantics
//
// The deck cache is loaded once at construction and rebuilt wholesale after
// every mutation that changes the hierarchy (create, delete, rename). Callers
// observe either the old snapshot or the new one, never a partial state. The
// cache is not safe for concurrent use; the client assumes one logical caller
// at a time.
package mochi
