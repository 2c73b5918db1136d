package memory

import (
	"io"
	"log/slog"

	"github.com/mesh-intelligence/clients/pkg/types"
)

// Option configures a repository at construction time.
type Option func(*options)

type options struct {
	logger  *slog.Logger
	strict  bool
	onEvict func(types.Client)
}

func defaultOptions() options {
	return options{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithLogger sets the logger used for eviction and debug records.
// A nil logger is ignored.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithStrictEviction makes LimitedRepository evict after inserting, so the
// store never holds more than its capacity. Without it the store checks the
// size before inserting and may hold capacity+1 clients between saves.
// Ignored by Repository.
func WithStrictEviction() Option {
	return func(o *options) { o.strict = true }
}

// WithEvictHook registers fn to receive every client evicted by
// LimitedRepository. fn runs while the store is locked and must not call back
// into it. Ignored by Repository.
func WithEvictHook(fn func(types.Client)) Option {
	return func(o *options) { o.onEvict = fn }
}
