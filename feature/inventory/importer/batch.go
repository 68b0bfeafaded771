package importer

import (
	"strings"

	"warehouse-counter/core/catalog"
	"warehouse-counter/core/codegen"
)

// Batch overlays the products created by a running import on the catalog,
// so codes generated for earlier rows count toward later ones.
type Batch struct {
	base  codegen.Source
	added []catalog.Product
}

// NewBatch creates an empty overlay on base.
func NewBatch(base codegen.Source) *Batch {
	return &Batch{base: base}
}

// Add records a product created by this import.
func (b *Batch) Add(p catalog.Product) {
	b.added = append(b.added, p)
}

// Has reports whether this import already created code.
func (b *Batch) Has(code string) bool {
	for _, p := range b.added {
		if strings.EqualFold(p.Code, code) {
			return true
		}
	}
	return false
}

// AllWithCodePrefix implements codegen.Source.
func (b *Batch) AllWithCodePrefix(prefix, excludeID string) []catalog.Product {
	out := b.base.AllWithCodePrefix(prefix, excludeID)
	head := strings.ToUpper(prefix) + "."
	for _, p := range b.added {
		if p.ID != excludeID && strings.HasPrefix(strings.ToUpper(p.Code), head) {
			out = append(out, p)
		}
	}
	return out
}
