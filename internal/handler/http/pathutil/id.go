// Package pathutil extracts and validates identifiers from URL paths.
package pathutil

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
)

// ErrInvalidID is returned when the ID in the URL path is missing or malformed.
var ErrInvalidID = errors.New("invalid id")

// ArticleID returns the {id} path value validated as a UUID.
// Article identifiers are opaque to callers but the server only ever
// issues UUIDs, so anything else is rejected before touching the store.
func ArticleID(r *http.Request) (string, error) {
	id := r.PathValue("id")
	if id == "" {
		return "", ErrInvalidID
	}
	if _, err := uuid.Parse(id); err != nil {
		return "", ErrInvalidID
	}
	return id, nil
}
