// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate capabilities that don't naturally fit within a single entity.
package service

import (
	"context"
	"net/http"
)

// GuestStore is the client-side storage for the guest review identifier.
// It is handed to the identity resolver explicitly for each request.
type GuestStore interface {
	// Load returns the stored identifier, or "" when none is stored.
	Load(ctx context.Context) (string, error)

	// Save persists the identifier for future requests from the same client.
	Save(ctx context.Context, id string) error
}

// GuestStoreProvider binds a GuestStore to one HTTP exchange.
type GuestStoreProvider interface {
	For(w http.ResponseWriter, r *http.Request) GuestStore
}

// GuestIDGenerator mints a new opaque guest identifier.
type GuestIDGenerator interface {
	NewGuestID() string
}
