package types

import (
	"errors"

	"github.com/google/uuid"
)

// ClientRepository stores clients keyed by ID.
// Both the unbounded and the bounded in-memory stores implement it, and the
// handlers depend only on this interface.
type ClientRepository interface {
	// NextIdentity returns a fresh random identifier. It never fails.
	NextIdentity() uuid.UUID

	// Save inserts the client, or replaces the stored value when the ID is
	// already present. Bounded implementations may evict older entries.
	Save(client Client)

	// ByID returns a copy of the stored client.
	// Returns ErrNotFound if no client exists with that ID.
	ByID(id uuid.UUID) (Client, error)
}

// Repository errors.
var (
	ErrNotFound = errors.New("No client found for given ID")
)
