package memory

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/clients/pkg/types"
)

// Repository is an unbounded ClientRepository backed by a map.
type Repository struct {
	mu      sync.RWMutex
	clients map[uuid.UUID]types.Client
	logger  *slog.Logger
}

// NewRepository returns an empty unbounded repository.
func NewRepository(opts ...Option) *Repository {
	o := buildOptions(opts)
	return &Repository{
		clients: make(map[uuid.UUID]types.Client),
		logger:  o.logger,
	}
}

// NextIdentity returns a random (version 4) UUID.
func (r *Repository) NextIdentity() uuid.UUID {
	return uuid.New()
}

// Save stores the client, replacing any client with the same ID.
func (r *Repository) Save(client types.Client) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.clients[client.ID()] = client
	r.logger.Debug("client saved", "id", client.ID(), "size", len(r.clients))
}

// ByID returns a copy of the stored client or types.ErrNotFound.
func (r *Repository) ByID(id uuid.UUID) (types.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	client, ok := r.clients[id]
	if !ok {
		return types.Client{}, types.ErrNotFound
	}
	return client, nil
}

// Len returns the number of stored clients.
func (r *Repository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.clients)
}

var _ types.ClientRepository = (*Repository)(nil)
