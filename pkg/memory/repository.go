// Package memory provides the public factory for the in-memory client
// repositories. Implementation details stay in internal/memory.
package memory

import (
	"fmt"

	"github.com/mesh-intelligence/clients/internal/memory"
	"github.com/mesh-intelligence/clients/pkg/types"
)

// Option configures the repository returned by NewRepository.
type Option = memory.Option

// Re-exported options.
var (
	WithLogger    = memory.WithLogger
	WithEvictHook = memory.WithEvictHook
)

// NewRepository creates the repository described by cfg.
// BackendMemory yields an unbounded store; BackendBounded yields a store
// holding cfg.Capacity clients with cfg.Eviction as its policy.
//
// Example:
//
//	repo, err := memory.NewRepository(types.Config{
//	    Backend:  types.BackendBounded,
//	    Capacity: 10,
//	})
func NewRepository(cfg types.Config, opts ...Option) (types.ClientRepository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	switch cfg.Backend {
	case types.BackendBounded:
		if cfg.EvictionPolicy() == types.EvictionStrict {
			opts = append(opts[:len(opts):len(opts)], memory.WithStrictEviction())
		}
		return memory.NewLimitedRepository(cfg.Capacity, opts...), nil
	default:
		return memory.NewRepository(opts...), nil
	}
}
