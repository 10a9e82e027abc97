package registry

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/atomic"
	"go.uber.org/zap"
)

// Lazy is a registry handle built on first use.
//
// The build runs at most once successfully: concurrent callers block on the
// first build and then share its result. A failed build is not cached, so a
// later call fetches again.
type Lazy struct {
	fetcher Fetcher
	prefix  string
	log     *zap.Logger

	mu    sync.Mutex
	built atomic.Pointer[Registry]
}

// Option configures a Lazy registry.
type Option func(*Lazy)

// WithPrefix sets the prefix stripped from symbol names.
func WithPrefix(prefix string) Option {
	return func(l *Lazy) {
		l.prefix = prefix
	}
}

// WithLogger sets the logger.
func WithLogger(log *zap.Logger) Option {
	return func(l *Lazy) {
		l.log = log
	}
}

// NewLazy creates a handle that builds its registry from fetcher.
func NewLazy(fetcher Fetcher, opts ...Option) *Lazy {
	l := &Lazy{
		fetcher: fetcher,
		prefix:  DefaultPrefix,
		log:     zap.NewNop(),
	}

	for _, o := range opts {
		o(l)
	}

	return l
}

// Load returns the built registry, fetching and building it on first call.
// Errors wrap ErrUnavailable.
func (l *Lazy) Load(ctx context.Context) (*Registry, error) {
	if r := l.built.Load(); r != nil {
		return r, nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if r := l.built.Load(); r != nil {
		return r, nil
	}

	start := time.Now()

	data, err := l.fetcher.Fetch(ctx)
	if err != nil {
		l.log.Warn("failed to fetch symbol registry", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	r, err := Extract(data, l.prefix)
	if err != nil {
		l.log.Warn("failed to build symbol registry", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	l.built.Store(r)
	l.log.Info("symbol registry built",
		zap.Int("symbols", r.Len()),
		zap.Int("bytes", len(data)),
		zap.Duration("elapsed", time.Since(start)))

	return r, nil
}

// Symbol returns the name registered for value, building the registry if needed.
func (l *Lazy) Symbol(value int64) (string, error) {
	r, err := l.Load(context.Background())
	if err != nil {
		return "", err
	}

	return r.Symbol(value)
}

// Lookup is like Symbol but reports a miss with a boolean.
func (l *Lazy) Lookup(value int64) (string, bool, error) {
	r, err := l.Load(context.Background())
	if err != nil {
		return "", false, err
	}

	name, ok := r.Lookup(value)

	return name, ok, nil
}
