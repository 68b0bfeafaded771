// Package matcher resolves free-text line items (invoice rows, manual entries)
// to catalog products without exact identifiers.
package matcher

import (
	"strings"

	"warehouse-counter/core/catalog"
	"warehouse-counter/core/textnorm"

	"go.uber.org/zap"
)

// MatchKind tells which tier produced a match.
type MatchKind string

const (
	ExactCode   MatchKind = "EXACT_CODE"
	PartialCode MatchKind = "PARTIAL_CODE"
	ExactName   MatchKind = "EXACT_NAME"
	PartialName MatchKind = "PARTIAL_NAME"
)

// Confidence orders kinds; higher is stronger.
func (k MatchKind) Confidence() int {
	switch k {
	case ExactCode:
		return 4
	case PartialCode:
		return 3
	case ExactName:
		return 2
	case PartialName:
		return 1
	}
	return 0
}

// Reference is the external description of a product.
type Reference struct {
	Name string
	Code string
}

// Candidate is a resolved reference.
type Candidate struct {
	Product    catalog.Product `json:"product"`
	Kind       MatchKind       `json:"match_kind"`
	Confidence int             `json:"confidence"`
}

// Lister is anything that can list products in catalog order.
type Lister interface {
	All() []catalog.Product
}

type entry struct {
	product catalog.Product
	code    string
	name    string
	alias   string
}

// Index holds folded keys for a fixed list of products. Build one per batch
// so the catalog is folded once, not once per line item.
type Index struct {
	entries []entry
	logger  *zap.Logger
}

// NewIndex folds the given products, keeping their order.
func NewIndex(products []catalog.Product, logger *zap.Logger) *Index {
	if logger == nil {
		logger = zap.NewNop()
	}
	entries := make([]entry, len(products))
	for i, p := range products {
		entries[i] = entry{
			product: p,
			code:    textnorm.Fold(p.Code),
			name:    textnorm.Fold(p.Name),
			alias:   textnorm.Fold(p.Alias),
		}
	}
	return &Index{entries: entries, logger: logger}
}

// FromCatalog builds an index over the catalog's current iteration order.
func FromCatalog(l Lister, logger *zap.Logger) *Index {
	return NewIndex(l.All(), logger)
}

// Match returns the first product of the strongest tier that matches ref:
// code equality, code containment, name/alias equality, then name/alias
// containment. Each tier scans the whole list before the next one is tried.
func (ix *Index) Match(ref Reference) (Candidate, bool) {
	code := textnorm.Fold(ref.Code)
	name := textnorm.Fold(ref.Name)

	if code != "" {
		if e, ok := ix.first(func(e entry) bool { return e.code == code }); ok {
			return ix.found(e, ExactCode, ref), true
		}
		if e, ok := ix.first(func(e entry) bool { return contains(e.code, code) }); ok {
			return ix.found(e, PartialCode, ref), true
		}
	}

	if name != "" {
		if e, ok := ix.first(func(e entry) bool { return e.name == name || e.alias == name }); ok {
			return ix.found(e, ExactName, ref), true
		}
		if e, ok := ix.first(func(e entry) bool { return contains(e.name, name) || contains(e.alias, name) }); ok {
			return ix.found(e, PartialName, ref), true
		}
	}

	ix.logger.Debug("No catalog match", zap.String("name", ref.Name), zap.String("code", ref.Code))
	return Candidate{}, false
}

func (ix *Index) first(pred func(entry) bool) (entry, bool) {
	for _, e := range ix.entries {
		if pred(e) {
			return e, true
		}
	}
	return entry{}, false
}

func (ix *Index) found(e entry, kind MatchKind, ref Reference) Candidate {
	ix.logger.Debug("Catalog match",
		zap.String("name", ref.Name),
		zap.String("code", ref.Code),
		zap.String("product", e.product.Code),
		zap.String("kind", string(kind)),
	)
	return Candidate{Product: e.product, Kind: kind, Confidence: kind.Confidence()}
}

// contains reports containment in either direction. Empty keys never match.
func contains(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}

// Match is a one-shot helper over a catalog.
func Match(l Lister, ref Reference) (Candidate, bool) {
	return FromCatalog(l, nil).Match(ref)
}
