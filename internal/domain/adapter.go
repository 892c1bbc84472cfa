package domain

import (
	"context"
	"io"
)

// Adapter maps one provider's raw payload into the internal result shape.
// All provider-specific field names live behind this interface.
type Adapter interface {
	Adapt(reader io.Reader) (*NewsResult, error)
}

// Fetcher performs a news retrieval for a normalized query.
type Fetcher interface {
	Fetch(ctx context.Context, query NewsQuery) (*NewsResult, error)
}

// SessionStore is a session-scoped key/value store, the server-side stand-in
// for the browser's sessionStorage. Entries live for the session lifetime.
type SessionStore interface {
	Get(key string) (string, bool)
	Set(key, value string)
}
