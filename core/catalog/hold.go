package catalog

import (
	"context"
	"fmt"
	"sync"
)

type writeLock struct {
	slot chan struct{}
	refs int
}

type writeLocks struct {
	mu   sync.Mutex
	byID map[string]*writeLock
}

// Hold reserves the product with the given id for one writer and returns
// the release function. A writer holds the product from reading it until
// its write is persisted or rolled back, so no write builds on a value the
// store has not confirmed. Hold blocks until the product is free or ctx is done.
func (c *Catalog) Hold(ctx context.Context, id string) (release func(), err error) {
	l := c.writers.acquire(id)
	select {
	case l.slot <- struct{}{}:
	case <-ctx.Done():
		c.writers.drop(id, l)
		return nil, fmt.Errorf("waiting for product %s: %w", id, ctx.Err())
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			<-l.slot
			c.writers.drop(id, l)
		})
	}, nil
}

// Held reports whether a writer currently holds id.
func (c *Catalog) Held(id string) bool {
	c.writers.mu.Lock()
	defer c.writers.mu.Unlock()
	l, ok := c.writers.byID[id]
	return ok && len(l.slot) > 0
}

func (w *writeLocks) acquire(id string) *writeLock {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.byID == nil {
		w.byID = make(map[string]*writeLock)
	}
	l, ok := w.byID[id]
	if !ok {
		l = &writeLock{slot: make(chan struct{}, 1)}
		w.byID[id] = l
	}
	l.refs++
	return l
}

func (w *writeLocks) drop(id string, l *writeLock) {
	w.mu.Lock()
	defer w.mu.Unlock()
	l.refs--
	if l.refs == 0 {
		delete(w.byID, id)
	}
}
