package inventory

import (
	"context"
	"strings"

	"warehouse-counter/core/catalog"
	"warehouse-counter/core/codegen"
	"warehouse-counter/core/domainerr"
	"warehouse-counter/core/session"
	"warehouse-counter/core/textnorm"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Draft is the editable part of a product.
type Draft struct {
	Code          string          `json:"code"`
	Alias         string          `json:"alias"`
	Name          string          `json:"name"`
	Category      string          `json:"category"`
	Branch        string          `json:"branch"`
	TotalQuantity decimal.Decimal `json:"total_quantity"`
	// Regenerate replaces Code with a freshly generated one.
	Regenerate bool `json:"regenerate"`
}

// Target says whether Save creates or edits.
type Target interface {
	targetID() string
}

// NewProduct targets a product that does not exist yet.
type NewProduct struct{}

func (NewProduct) targetID() string { return "" }

// ExistingProduct targets the product with ID.
type ExistingProduct struct {
	ID string
}

func (t ExistingProduct) targetID() string { return t.ID }

// Save validates d and creates or updates the product. A new product without
// a code gets a generated one. An edited product keeps its code unless d
// carries another one or sets Regenerate. When the code turns out to be taken
// the catalog is refreshed from the store and the code checked (or
// regenerated) once more before giving up with CODE_COLLISION.
func (s *Service) Save(ctx context.Context, d Draft, target Target) (catalog.Product, error) {
	id := target.targetID()

	var existing catalog.Product
	if _, editing := target.(ExistingProduct); editing {
		release, err := s.catalog.Hold(ctx, id)
		if err != nil {
			return catalog.Product{}, err
		}
		defer release()

		var ok bool
		if existing, ok = s.catalog.Get(id); !ok {
			return catalog.Product{}, domainerr.New(domainerr.KindNotFound, "unknown product "+id)
		}
	}

	p, err := s.normalize(d, existing)
	if err != nil {
		return catalog.Product{}, err
	}

	generate := p.Code == "" || d.Regenerate
	for attempt := 0; ; attempt++ {
		if generate {
			code, err := s.codes.Next(s.catalog, codegen.Input{
				Category:  p.Category,
				Branch:    p.Branch,
				Name:      p.Name,
				ExcludeID: id,
			})
			if err != nil {
				return catalog.Product{}, err
			}
			p.Code = code
		}

		owner, taken := s.catalog.CodeOwner(p.Code, id)
		if !taken {
			break
		}
		if attempt > 0 {
			return catalog.Product{}, domainerr.New(domainerr.KindCodeCollision,
				"code "+p.Code+" is already used by "+owner.Name)
		}

		s.logger.Info("Code collision, refreshing catalog", zap.String("code", p.Code), zap.String("owner", owner.ID))
		if err := catalog.Refresh(ctx, s.store, s.catalog); err != nil {
			return catalog.Product{}, domainerr.Wrap(domainerr.KindPersistenceFailure, "failed to refresh catalog", err)
		}
	}

	if id == "" {
		return s.create(ctx, p)
	}
	return s.update(ctx, existing, p)
}

func (s *Service) create(ctx context.Context, p catalog.Product) (catalog.Product, error) {
	id, err := s.store.Create(ctx, p)
	if err != nil {
		return catalog.Product{}, domainerr.Wrap(domainerr.KindPersistenceFailure, "failed to create product "+p.Code, err)
	}
	p.ID = id
	s.catalog.Upsert(p)
	s.logger.Info("Product created", zap.String("id", id), zap.String("code", p.Code))
	return p, nil
}

func (s *Service) update(ctx context.Context, before, p catalog.Product) (catalog.Product, error) {
	if err := session.Persist(ctx, s.catalog, s.store, before, p, catalog.DetailsPatch(p)); err != nil {
		return before, err
	}
	s.logger.Info("Product updated", zap.String("id", p.ID), zap.String("code", p.Code))
	return p, nil
}

// normalize builds the product to save from d on top of existing.
func (s *Service) normalize(d Draft, existing catalog.Product) (catalog.Product, error) {
	p := existing
	p.Name = textnorm.ProductName(d.Name)
	if code := strings.ToUpper(strings.TrimSpace(d.Code)); code != "" || existing.ID == "" {
		p.Code = code
	}
	p.Alias = strings.TrimSpace(d.Alias)
	p.Category = strings.TrimSpace(d.Category)
	p.Branch = strings.TrimSpace(d.Branch)
	p.TotalQuantity = d.TotalQuantity

	if p.Name == "" {
		return p, domainerr.New(domainerr.KindInvalidInput, "name is required")
	}
	if p.TotalQuantity.IsNegative() {
		return p, domainerr.New(domainerr.KindInvalidInput, "total quantity cannot be negative")
	}
	if p.TotalQuantity.LessThan(p.CountedQuantity) {
		return p, domainerr.New(domainerr.KindInvalidInput,
			"total quantity "+p.TotalQuantity.String()+" is below the counted "+p.CountedQuantity.String())
	}
	return p, nil
}
