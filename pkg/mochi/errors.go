package mochi

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"unicode/utf8"
)

// apiErrorBodyLimit caps how much of a response body an APIError renders.
const apiErrorBodyLimit = 500

// APIError is the single error kind for transport, HTTP, and response-shape
// failures. Every lower-level failure is normalized into an APIError before it
// crosses the package boundary.
type APIError struct {
	// Message describes the failure with operation context.
	Message string

	// StatusCode is the HTTP status, or 0 when the failure happened before
	// a response was received (network error, JSON encode error).
	StatusCode int

	// Body is the raw response payload, when one was received.
	Body []byte
}

func (e *APIError) Error() string {
	var b strings.Builder
	b.WriteString(e.Message)
	if e.StatusCode != 0 {
		fmt.Fprintf(&b, " (status code: %d)", e.StatusCode)
	}
	if len(e.Body) > 0 {
		snippet := string(e.Body)
		if len(snippet) > apiErrorBodyLimit {
			// Back up to a rune boundary so the cut never leaves a
			// mangled trailing character.
			cut := apiErrorBodyLimit
			for cut > 0 && !utf8.RuneStart(snippet[cut]) {
				cut--
			}
			snippet = snippet[:cut] + "..."
		}
		fmt.Fprintf(&b, "\napi response snippet: %s", snippet)
	}
	return b.String()
}

// AmbiguousNameError is returned when a deck name maps to more than one deck.
// It always carries the colliding IDs so the caller can disambiguate.
type AmbiguousNameError struct {
	Name string
	IDs  []string
}

func (e *AmbiguousNameError) Error() string {
	return fmt.Sprintf(
		"multiple decks found with name %q (ids: %s): use a specific deck ID",
		e.Name, strings.Join(e.IDs, ", "))
}

// NotFoundError is returned when a name-or-ID lookup matches nothing in the
// deck cache.
type NotFoundError struct {
	Key          string
	NamesChecked int
	IDsChecked   int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf(
		"no deck found with name or ID %q (checked %d names, %d ids): try refreshing the deck cache",
		e.Key, e.NamesChecked, e.IDsChecked)
}

// IsNotFound reports whether err is a cache-level NotFoundError or an APIError
// carrying an HTTP 404.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	if errors.As(err, &nf) {
		return true
	}
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}
