package cmd

import (
	"context"
	"fmt"

	"orderdesk/internal/adapters/out/memory"
	"orderdesk/internal/adapters/out/postgres"
	"orderdesk/internal/core/domain/model/fleet"
	"orderdesk/internal/core/domain/model/inventory"
	"orderdesk/internal/core/ports"

	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Storage is an opened backend. Close releases its connections.
type Storage struct {
	UoWFactory ports.UnitOfWorkFactory
	Close      func() error
}

// OpenStorage opens the configured backend, seeded with the default stock
// and roster. The postgres schema is migrated first.
func OpenStorage(ctx context.Context, cfg Config) (Storage, error) {
	switch cfg.StorageDriver {
	case StoragePostgres:
		return openPostgres(ctx, cfg)
	default:
		store := memory.NewStore(inventory.Default(), fleet.DefaultRoster())
		return Storage{
			UoWFactory: store.NewUnitOfWorkFactory(),
			Close:      func() error { return nil },
		}, nil
	}
}

func openPostgres(ctx context.Context, cfg Config) (Storage, error) {
	db, err := gorm.Open(gorm_postgres.Open(cfg.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return Storage{}, fmt.Errorf("connect to postgres: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return Storage{}, err
	}

	if err := postgres.Migrate(db); err != nil {
		_ = sqlDB.Close()
		return Storage{}, err
	}
	if err := postgres.Seed(ctx, db, inventory.Default(), fleet.DefaultRoster()); err != nil {
		_ = sqlDB.Close()
		return Storage{}, err
	}

	return Storage{
		UoWFactory: postgres.NewGormUnitOfWorkFactory(db),
		Close:      sqlDB.Close,
	}, nil
}
