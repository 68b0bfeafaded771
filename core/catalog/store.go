package catalog

import (
	"context"

	"go.uber.org/zap"
)

// Store is the storage collaborator the catalog is fed from.
// All calls may fail; failures are returned to the caller and never retried here.
type Store interface {
	// Snapshot reads the whole collection once.
	Snapshot(ctx context.Context) (Snapshot, error)
	// Subscribe streams a full snapshot on every change. The first value is
	// the current state. The channel closes when ctx is done.
	Subscribe(ctx context.Context) (<-chan Snapshot, error)
	// Create inserts a product and returns its generated id.
	Create(ctx context.Context, p Product) (string, error)
	// Update applies a partial record to an existing product.
	Update(ctx context.Context, id string, patch Patch) error
	// Delete removes a product. Deleting an absent id succeeds.
	Delete(ctx context.Context, id string) error
}

// Follow keeps cat in sync with store until ctx is done.
func Follow(ctx context.Context, store Store, cat *Catalog, logger *zap.Logger) error {
	updates, err := store.Subscribe(ctx)
	if err != nil {
		return err
	}
	for snap := range updates {
		cat.Replace(snap)
		logger.Debug("Catalog snapshot applied", zap.Int("products", len(snap)))
	}
	return ctx.Err()
}

// Refresh replaces the index with a freshly read snapshot.
func Refresh(ctx context.Context, store Store, cat *Catalog) error {
	snap, err := store.Snapshot(ctx)
	if err != nil {
		return err
	}
	cat.Replace(snap)
	return nil
}
