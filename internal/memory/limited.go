package memory

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/mesh-intelligence/clients/pkg/types"
)

// LimitedRepository is a ClientRepository holding a bounded number of
// clients. When full it evicts the client that was inserted first.
//
// Overwriting an existing ID replaces the value in place; the entry keeps its
// original position in the eviction order.
//
// By default the size check runs before the insert and fires only when the
// store already holds more than capacity clients, so the store reaches
// capacity+1 entries and stays there. WithStrictEviction switches to
// insert-then-evict, which keeps the size at or below capacity.
type LimitedRepository struct {
	mu        sync.RWMutex
	clients   *orderedmap.OrderedMap[uuid.UUID, types.Client]
	capacity  int
	strict    bool
	evictions uint64
	onEvict   func(types.Client)
	logger    *slog.Logger
}

// NewLimitedRepository returns an empty repository with the given capacity.
// A negative capacity is treated as zero.
func NewLimitedRepository(capacity int, opts ...Option) *LimitedRepository {
	if capacity < 0 {
		capacity = 0
	}
	o := buildOptions(opts)
	return &LimitedRepository{
		clients:  orderedmap.New[uuid.UUID, types.Client](),
		capacity: capacity,
		strict:   o.strict,
		onEvict:  o.onEvict,
		logger:   o.logger,
	}
}

// NextIdentity returns a random (version 4) UUID.
func (r *LimitedRepository) NextIdentity() uuid.UUID {
	return uuid.New()
}

// Save stores the client and evicts the oldest entries as the policy requires.
// The pre-insert check runs on every call, including overwrites.
func (r *LimitedRepository) Save(client types.Client) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.strict {
		r.clients.Set(client.ID(), client)
		for r.clients.Len() > r.capacity {
			r.evictOldest()
		}
		return
	}

	if r.clients.Len() > r.capacity {
		r.evictOldest()
	}
	r.clients.Set(client.ID(), client)
}

// evictOldest removes the front of the insertion order. Caller holds mu.
func (r *LimitedRepository) evictOldest() {
	oldest := r.clients.Oldest()
	if oldest == nil {
		return
	}
	r.clients.Delete(oldest.Key)
	r.evictions++
	r.logger.Debug("client evicted",
		"id", oldest.Key,
		"size", r.clients.Len(),
		"capacity", r.capacity)
	if r.onEvict != nil {
		r.onEvict(oldest.Value)
	}
}

// ByID returns a copy of the stored client or types.ErrNotFound.
func (r *LimitedRepository) ByID(id uuid.UUID) (types.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	client, ok := r.clients.Get(id)
	if !ok {
		return types.Client{}, types.ErrNotFound
	}
	return client, nil
}

// Len returns the number of stored clients.
func (r *LimitedRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.clients.Len()
}

// Capacity returns the capacity fixed at construction.
func (r *LimitedRepository) Capacity() int {
	return r.capacity
}

// Evictions returns how many clients have been evicted so far.
func (r *LimitedRepository) Evictions() uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.evictions
}

// Keys returns the stored IDs, oldest first.
func (r *LimitedRepository) Keys() []uuid.UUID {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]uuid.UUID, 0, r.clients.Len())
	for pair := r.clients.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

var _ types.ClientRepository = (*LimitedRepository)(nil)
