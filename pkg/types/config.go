package types

import "errors"

// Config selects a repository variant and its parameters.
type Config struct {
	Backend  string `json:"backend" yaml:"backend" mapstructure:"backend"`
	Capacity int    `json:"capacity" yaml:"capacity" mapstructure:"capacity"`
	Eviction string `json:"eviction,omitempty" yaml:"eviction,omitempty" mapstructure:"eviction"`
}

// Supported backend names.
const (
	BackendMemory  = "memory"  // unbounded map
	BackendBounded = "bounded" // fixed capacity, FIFO eviction
)

// Eviction policies for the bounded backend.
//
// EvictionLagged checks the size before inserting and removes the oldest entry
// only when the store already holds more than Capacity entries, so a store may
// hold Capacity+1 entries between saves. EvictionStrict inserts first and then
// evicts until the store holds at most Capacity entries.
const (
	EvictionLagged = "lagged"
	EvictionStrict = "strict"
)

// DefaultCapacity is used by the CLI when config.yaml does not set one.
const DefaultCapacity = 10

// Config validation errors.
var (
	ErrBackendEmpty     = errors.New("backend must not be empty")
	ErrBackendUnknown   = errors.New("unknown backend")
	ErrCapacityNegative = errors.New("capacity must not be negative")
	ErrEvictionUnknown  = errors.New("unknown eviction policy")
)

// knownBackends lists the backends that Validate accepts.
var knownBackends = map[string]bool{
	BackendMemory:  true,
	BackendBounded: true,
}

// knownEvictions lists the eviction policies that Validate accepts.
// The empty string selects EvictionLagged.
var knownEvictions = map[string]bool{
	"":             true,
	EvictionLagged: true,
	EvictionStrict: true,
}

// Validate checks that the Config is well-formed. It returns a sentinel error
// from this package on failure. Capacity and Eviction are ignored for the
// memory backend.
func (c Config) Validate() error {
	if c.Backend == "" {
		return ErrBackendEmpty
	}
	if !knownBackends[c.Backend] {
		return ErrBackendUnknown
	}
	if c.Backend != BackendBounded {
		return nil
	}
	if c.Capacity < 0 {
		return ErrCapacityNegative
	}
	if !knownEvictions[c.Eviction] {
		return ErrEvictionUnknown
	}
	return nil
}

// EvictionPolicy returns the configured policy, defaulting to EvictionLagged.
func (c Config) EvictionPolicy() string {
	if c.Eviction == "" {
		return EvictionLagged
	}
	return c.Eviction
}
