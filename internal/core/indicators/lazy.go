package indicators

import (
	"context"
	"sync"
	"sync/atomic"

	perr "econlens/internal/platform/errors"
)

// Loader builds an Engine, typically from a csv file or a database table
type Loader func(ctx context.Context) (*Engine, error)

// Lazy loads the Engine on first use and then serves it forever
// a failed load is not cached so the next caller retries
type Lazy struct {
	load Loader
	mu   sync.Mutex
	eng  atomic.Pointer[Engine]
}

// NewLazy wraps load
func NewLazy(load Loader) *Lazy { return &Lazy{load: load} }

// Ready wraps an already built Engine
func Ready(e *Engine) *Lazy {
	l := &Lazy{}
	l.eng.Store(e)
	return l
}

// Get returns the Engine, loading it if needed
func (l *Lazy) Get(ctx context.Context) (*Engine, error) {
	if e := l.eng.Load(); e != nil {
		return e, nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if e := l.eng.Load(); e != nil {
		return e, nil
	}
	if l.load == nil {
		return nil, perr.Unavailablef("indicator dataset has no loader")
	}
	e, err := l.load(ctx)
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeUnavailable, "indicator dataset unavailable")
	}
	if e == nil {
		return nil, perr.Unavailablef("indicator dataset loader returned nothing")
	}
	l.eng.Store(e)
	return e, nil
}

// Loaded reports whether Get has succeeded
func (l *Lazy) Loaded() bool { return l.eng.Load() != nil }
