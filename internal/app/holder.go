package app

import (
	"context"
	"sync"

	"github.com/ziadkadry99/catalogview/internal/catalog"
)

// LoadFunc produces the catalog.
type LoadFunc func(ctx context.Context) ([]catalog.Item, error)

// CatalogHolder loads the catalog once and shares the immutable result
// between sessions.
type CatalogHolder struct {
	once  sync.Once
	done  chan struct{}
	mu    sync.RWMutex
	items []catalog.Item
	err   error
}

// NewCatalogHolder returns an empty holder.
func NewCatalogHolder() *CatalogHolder {
	return &CatalogHolder{done: make(chan struct{})}
}

// Start runs load in the background. Calls after the first are ignored.
func (h *CatalogHolder) Start(ctx context.Context, load LoadFunc) {
	h.once.Do(func() {
		go func() {
			items, err := load(ctx)
			h.set(items, err)
		}()
	})
}

// Set publishes a result directly. Calls after the first result are ignored.
func (h *CatalogHolder) Set(items []catalog.Item, err error) {
	h.once.Do(func() { h.set(items, err) })
}

func (h *CatalogHolder) set(items []catalog.Item, err error) {
	h.mu.Lock()
	if err != nil {
		items = nil
	}
	h.items, h.err = items, err
	h.mu.Unlock()
	close(h.done)
}

// Done is closed once the load has resolved.
func (h *CatalogHolder) Done() <-chan struct{} { return h.done }

// Snapshot returns the result without blocking; ready is false while loading.
func (h *CatalogHolder) Snapshot() (items []catalog.Item, ready bool, err error) {
	select {
	case <-h.done:
	default:
		return nil, false, nil
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.items, true, h.err
}

// Wait blocks until the load resolves or ctx is cancelled.
func (h *CatalogHolder) Wait(ctx context.Context) ([]catalog.Item, error) {
	select {
	case <-h.done:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.items, h.err
}

// Apply feeds the resolved result into a controller: Loaded on success,
// Failed on error. It is a no-op while loading.
func (h *CatalogHolder) Apply(c *Controller) bool {
	items, ready, err := h.Snapshot()
	if !ready {
		return false
	}
	if err != nil {
		c.Failed(err)
	} else {
		c.Loaded(items)
	}
	return true
}
