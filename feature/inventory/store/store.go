package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"warehouse-counter/core/catalog"
	"warehouse-counter/core/database"
	"warehouse-counter/core/domainerr"
	"warehouse-counter/feature/inventory/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

// writable lists the columns Update accepts.
var writable = map[string]bool{
	catalog.FieldCode:            true,
	catalog.FieldAlias:           true,
	catalog.FieldName:            true,
	catalog.FieldCategory:        true,
	catalog.FieldBranch:          true,
	catalog.FieldTotalQuantity:   true,
	catalog.FieldCountedQuantity: true,
	catalog.FieldLastCountedAt:   true,
}

// GormStore persists products in a SQL database and announces every write
// through a Notifier. It implements catalog.Store.
type GormStore struct {
	db       *gorm.DB
	notifier Notifier
	logger   *zap.Logger
	sf       singleflight.Group
	now      func() time.Time
}

// New creates a store. A nil notifier means a process-local one.
func New(db *gorm.DB, notifier Notifier, logger *zap.Logger) *GormStore {
	if notifier == nil {
		notifier = NewLocalNotifier()
	}
	return &GormStore{db: db, notifier: notifier, logger: logger, now: time.Now}
}

// Migrate creates or updates the products table.
func (s *GormStore) Migrate() error {
	if err := s.db.AutoMigrate(&models.ProductRecord{}); err != nil {
		return fmt.Errorf("failed to migrate products: %w", err)
	}
	return nil
}

// Verify checks that the products table has every column the store writes.
func (s *GormStore) Verify() error {
	table := models.ProductRecord{}.TableName()
	missing, err := database.MissingColumns(s.db, table, models.ColumnNames())
	if err != nil {
		return err
	}
	if len(missing) > 0 {
		return fmt.Errorf("table %s is missing columns %s", table, strings.Join(missing, ", "))
	}
	return nil
}

// Snapshot loads every product. Concurrent calls share one query.
func (s *GormStore) Snapshot(ctx context.Context) (catalog.Snapshot, error) {
	v, err, shared := s.sf.Do("snapshot", func() (any, error) {
		var records []models.ProductRecord
		if err := s.db.WithContext(ctx).Find(&records).Error; err != nil {
			return nil, fmt.Errorf("failed to load products: %w", err)
		}
		snap := make(catalog.Snapshot, len(records))
		for _, r := range records {
			snap[r.ID] = r.ToProduct()
		}
		return snap, nil
	})
	if err != nil {
		return nil, err
	}

	snap := v.(catalog.Snapshot)
	if shared {
		snap = copySnapshot(snap)
	}
	return snap, nil
}

// Subscribe delivers the current snapshot, then a fresh one after every
// announced change, until ctx is done.
func (s *GormStore) Subscribe(ctx context.Context) (<-chan catalog.Snapshot, error) {
	changes, err := s.notifier.Subscribe(ctx)
	if err != nil {
		return nil, err
	}
	first, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	out := make(chan catalog.Snapshot, 1)
	out <- first

	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case change, ok := <-changes:
				if !ok {
					return
				}
				snap, err := s.Snapshot(ctx)
				if err != nil {
					s.logger.Warn("Failed to reload catalog after change",
						zap.String("op", string(change.Op)),
						zap.String("product", change.ProductID),
						zap.Error(err))
					continue
				}
				select {
				case out <- snap:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out, nil
}

// Create inserts p, assigning a new id when it has none.
func (s *GormStore) Create(ctx context.Context, p catalog.Product) (string, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	rec := models.FromProduct(p)
	if err := s.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return "", fmt.Errorf("failed to create product %s: %w", p.Code, err)
	}
	s.announce(ctx, OpCreate, p.ID)
	return p.ID, nil
}

// Update writes the patched fields of product id.
func (s *GormStore) Update(ctx context.Context, id string, patch catalog.Patch) error {
	if len(patch) == 0 {
		return nil
	}
	values := make(map[string]any, len(patch)+1)
	for field, v := range patch {
		if !writable[field] {
			return domainerr.New(domainerr.KindInvalidInput, "field "+field+" cannot be updated")
		}
		values[field] = v
	}
	values["updated_at"] = s.now()

	res := s.db.WithContext(ctx).Model(&models.ProductRecord{}).Where("id = ?", id).Updates(values)
	if res.Error != nil {
		return fmt.Errorf("failed to update product %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return domainerr.New(domainerr.KindNotFound, "product "+id+" does not exist")
	}
	s.announce(ctx, OpUpdate, id)
	return nil
}

// Delete removes product id. Deleting an absent product succeeds.
func (s *GormStore) Delete(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.ProductRecord{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete product %s: %w", id, res.Error)
	}
	if res.RowsAffected > 0 {
		s.announce(ctx, OpDelete, id)
	}
	return nil
}

// announce publishes a change. The write already happened, so a failed
// announcement is only logged; other instances catch up on their next reload.
func (s *GormStore) announce(ctx context.Context, op Op, id string) {
	err := s.notifier.Publish(ctx, Change{Op: op, ProductID: id, At: s.now()})
	if err != nil {
		s.logger.Warn("Failed to announce catalog change",
			zap.String("op", string(op)),
			zap.String("product", id),
			zap.Error(err))
	}
}

func copySnapshot(in catalog.Snapshot) catalog.Snapshot {
	out := make(catalog.Snapshot, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
