package session

import (
	"context"

	"warehouse-counter/core/catalog"
	"warehouse-counter/core/domainerr"
	"warehouse-counter/core/reconcile"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Counter applies count operations to products by id and persists them.
type Counter struct {
	catalog    *catalog.Catalog
	store      catalog.Store
	reconciler *reconcile.Reconciler
	logger     *zap.Logger
}

// NewCounter creates a counter.
func NewCounter(cat *catalog.Catalog, store catalog.Store, rec *reconcile.Reconciler, logger *zap.Logger) *Counter {
	return &Counter{catalog: cat, store: store, reconciler: rec, logger: logger}
}

// Count applies a count operation to the product with the given id.
func (c *Counter) Count(ctx context.Context, id string, dir reconcile.Direction, amount decimal.Decimal) (reconcile.Change, catalog.Product, error) {
	release, err := c.catalog.Hold(ctx, id)
	if err != nil {
		return reconcile.Change{}, catalog.Product{}, err
	}
	defer release()

	current, ok := c.catalog.Get(id)
	if !ok {
		return reconcile.Change{}, catalog.Product{}, domainerr.New(domainerr.KindNotFound, "unknown product "+id)
	}
	return c.apply(ctx, current, dir, amount)
}

// Reset clears the count of the product with the given id.
func (c *Counter) Reset(ctx context.Context, id string) (catalog.Product, error) {
	release, err := c.catalog.Hold(ctx, id)
	if err != nil {
		return catalog.Product{}, err
	}
	defer release()

	current, ok := c.catalog.Get(id)
	if !ok {
		return catalog.Product{}, domainerr.New(domainerr.KindNotFound, "unknown product "+id)
	}
	updated := c.reconciler.Reset(current)
	if err := Persist(ctx, c.catalog, c.store, current, updated, catalog.CountPatch(updated)); err != nil {
		return current, err
	}
	c.logger.Info("Count reset", zap.String("product", updated.Code), zap.String("id", updated.ID))
	return updated, nil
}

func (c *Counter) apply(ctx context.Context, current catalog.Product, dir reconcile.Direction, amount decimal.Decimal) (reconcile.Change, catalog.Product, error) {
	updated, err := c.reconciler.Apply(current, dir, amount)
	if err != nil {
		return reconcile.Change{}, current, err
	}
	if err := Persist(ctx, c.catalog, c.store, current, updated, catalog.CountPatch(updated)); err != nil {
		return reconcile.Change{}, current, err
	}

	change := c.reconciler.Describe(current, updated, dir, amount)
	c.logger.Info("Count applied",
		zap.String("product", updated.Code),
		zap.String("direction", dir.String()),
		zap.String("amount", amount.String()),
		zap.String("counted", updated.CountedQuantity.String()),
		zap.String("state", string(updated.State())),
	)
	return change, updated, nil
}

// Persist writes after to the catalog, then to the store. On a store error
// the catalog entry is rolled back to before, unless a newer snapshot has
// already replaced the optimistic value. Callers hold the product with
// Catalog.Hold from reading before until Persist returns.
func Persist(ctx context.Context, cat *catalog.Catalog, store catalog.Store, before, after catalog.Product, patch catalog.Patch) error {
	cat.Upsert(after)
	if err := store.Update(ctx, after.ID, patch); err != nil {
		if got, ok := cat.Get(after.ID); ok && sameQuantities(got, after) {
			cat.Upsert(before)
		}
		return domainerr.Wrap(domainerr.KindPersistenceFailure, "failed to persist product "+after.Code, err)
	}
	return nil
}

func sameQuantities(a, b catalog.Product) bool {
	return a.CountedQuantity.Equal(b.CountedQuantity) &&
		a.TotalQuantity.Equal(b.TotalQuantity) &&
		sameTime(a, b)
}

func sameTime(a, b catalog.Product) bool {
	if a.LastCountedAt == nil || b.LastCountedAt == nil {
		return a.LastCountedAt == b.LastCountedAt
	}
	return a.LastCountedAt.Equal(*b.LastCountedAt)
}
