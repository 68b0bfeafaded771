package catalog

import (
	"sort"
	"strings"
	"sync"

	"warehouse-counter/core/domainerr"
)

// Catalog is the in-memory product index.
type Catalog struct {
	mu      sync.RWMutex
	byID    map[string]Product
	ordered []Product

	writers writeLocks
}

// New creates an empty catalog.
func New() *Catalog {
	return &Catalog{byID: make(map[string]Product)}
}

// Replace swaps the whole index for snap.
func (c *Catalog) Replace(snap Snapshot) {
	byID := make(map[string]Product, len(snap))
	for id, p := range snap {
		if p.ID == "" {
			p.ID = id
		}
		byID[p.ID] = p
	}

	c.mu.Lock()
	c.byID = byID
	c.reorder()
	c.mu.Unlock()
}

// Upsert inserts or replaces a single product in the local index.
func (c *Catalog) Upsert(p Product) {
	c.mu.Lock()
	c.byID[p.ID] = p
	c.reorder()
	c.mu.Unlock()
}

// Remove drops a product from the local index. Unknown ids are ignored.
func (c *Catalog) Remove(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.byID[id]; !ok {
		return
	}
	delete(c.byID, id)
	c.reorder()
}

// Get returns the product with the given id.
func (c *Catalog) Get(id string) (Product, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	p, ok := c.byID[id]
	return p, ok
}

// Len returns the number of products.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.byID)
}

// All returns every product ordered by code, then id.
func (c *Catalog) All() []Product {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Product, len(c.ordered))
	copy(out, c.ordered)
	return out
}

// LookupByCode resolves a scanned code. It tries, in order: exact code,
// exact alias, then an alias containing the scanned text. All comparisons
// ignore case.
func (c *Catalog) LookupByCode(code string) (Product, error) {
	code = strings.TrimSpace(code)
	if code != "" {
		c.mu.RLock()
		defer c.mu.RUnlock()

		for _, p := range c.ordered {
			if strings.EqualFold(p.Code, code) {
				return p, nil
			}
		}
		for _, p := range c.ordered {
			if p.Alias != "" && strings.EqualFold(p.Alias, code) {
				return p, nil
			}
		}
		upper := strings.ToUpper(code)
		for _, p := range c.ordered {
			if p.Alias != "" && strings.Contains(strings.ToUpper(p.Alias), upper) {
				return p, nil
			}
		}
	}
	return Product{}, domainerr.New(domainerr.KindScanNotFound, "no product matches code "+code)
}

// AllWithCodePrefix returns products whose code starts with prefix + ".",
// skipping excludeID, ordered by code.
func (c *Catalog) AllWithCodePrefix(prefix, excludeID string) []Product {
	head := strings.ToUpper(prefix) + "."

	c.mu.RLock()
	defer c.mu.RUnlock()

	var out []Product
	for _, p := range c.ordered {
		if p.ID == excludeID {
			continue
		}
		if strings.HasPrefix(strings.ToUpper(p.Code), head) {
			out = append(out, p)
		}
	}
	return out
}

// CodeOwner returns the product other than excludeID that already uses code.
func (c *Catalog) CodeOwner(code, excludeID string) (Product, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, p := range c.ordered {
		if p.ID != excludeID && strings.EqualFold(p.Code, code) {
			return p, true
		}
	}
	return Product{}, false
}

// Summary counts products per reconciliation state.
type Summary struct {
	Total      int `json:"total"`
	NotCounted int `json:"not_counted"`
	Partial    int `json:"partial"`
	Complete   int `json:"complete"`
}

// Summary returns the counting progress over the whole catalog.
func (c *Catalog) Summary() Summary {
	c.mu.RLock()
	defer c.mu.RUnlock()

	s := Summary{Total: len(c.ordered)}
	for _, p := range c.ordered {
		switch p.State() {
		case StateNotCounted:
			s.NotCounted++
		case StatePartial:
			s.Partial++
		case StateComplete:
			s.Complete++
		}
	}
	return s
}

// reorder rebuilds the ordered view. Callers hold the write lock.
func (c *Catalog) reorder() {
	ordered := make([]Product, 0, len(c.byID))
	for _, p := range c.byID {
		ordered = append(ordered, p)
	}
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].Code != ordered[j].Code {
			return ordered[i].Code < ordered[j].Code
		}
		return ordered[i].ID < ordered[j].ID
	})
	c.ordered = ordered
}
