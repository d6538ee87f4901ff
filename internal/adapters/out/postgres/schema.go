package postgres

import (
	"context"
	"fmt"

	"orderdesk/internal/adapters/out/postgres/fleetrepo"
	"orderdesk/internal/adapters/out/postgres/inventoryrepo"
	"orderdesk/internal/adapters/out/postgres/orderrepo"
	"orderdesk/internal/adapters/out/postgres/sessionrepo"
	"orderdesk/internal/core/domain/model/fleet"
	"orderdesk/internal/core/domain/model/inventory"

	"gorm.io/gorm"
)

// Models lists every persisted DTO in migration order.
func Models() []any {
	return []any{
		&sessionrepo.SessionDTO{},
		&sessionrepo.CartLineDTO{},
		&sessionrepo.MessageDTO{},
		&inventoryrepo.StockDTO{},
		&fleetrepo.AgentDTO{},
		&orderrepo.OrderDTO{},
	}
}

// Migrate creates or updates the schema.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

// Seed stores the starting stock and roster. Rows that already exist are
// kept as they are.
func Seed(ctx context.Context, db *gorm.DB, stock *inventory.Stock, roster []*fleet.Agent) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := inventoryrepo.Seed(ctx, tx, stock); err != nil {
			return fmt.Errorf("seed inventory: %w", err)
		}
		if err := fleetrepo.Seed(ctx, tx, roster); err != nil {
			return fmt.Errorf("seed fleet: %w", err)
		}
		return nil
	})
}
