package cmd

import (
	"context"
	"fmt"

	"warehouse-counter/core/broker"
	"warehouse-counter/core/catalog"
	"warehouse-counter/core/config"
	"warehouse-counter/core/database"
	"warehouse-counter/core/logger"
	"warehouse-counter/core/storage"
	"warehouse-counter/feature/inventory/store"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// runtime is what every command works with.
type runtime struct {
	cfg     *config.Config
	logger  *zap.Logger
	db      *gorm.DB
	store   *store.GormStore
	catalog *catalog.Catalog
	client  storage.Client
	redis   *redis.Client
}

// bootstrap loads the configuration, connects the database, the optional
// broker and the storage client, and loads the catalog.
func bootstrap(ctx context.Context) (*runtime, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	rt := &runtime{cfg: cfg, logger: l, db: db, catalog: catalog.New()}

	var notifier store.Notifier
	if cfg.Redis.Enabled {
		if rc, err := broker.Connect(cfg.Redis); err != nil {
			l.Warn("Redis unavailable, changes stay local to this process", zap.Error(err))
		} else {
			rt.redis = rc
			notifier = store.NewRedisNotifier(rc, cfg.Redis.Channel, l)
			l.Info("Connected to Redis", zap.String("channel", cfg.Redis.Channel))
		}
	}

	rt.store = store.New(db, notifier, l)
	if cfg.Database.AutoMigrate {
		err = rt.store.Migrate()
	} else {
		err = rt.store.Verify()
	}
	if err != nil {
		rt.close()
		return nil, err
	}

	if err := catalog.Refresh(ctx, rt.store, rt.catalog); err != nil {
		rt.close()
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	l.Info("Catalog loaded", zap.Int("products", rt.catalog.Len()), zap.String("driver", cfg.Database.Driver))

	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		rt.close()
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}
	rt.client = client

	return rt, nil
}

func (rt *runtime) close() {
	if rt.redis != nil {
		_ = rt.redis.Close()
	}
	if sqlDB, err := rt.db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	_ = rt.logger.Sync()
}
