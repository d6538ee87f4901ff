package ports

import (
	"context"

	"orderdesk/internal/core/domain/model/inventory"
)

// InventoryRepository stores one level per catalog item id.
type InventoryRepository interface {
	// Get reads every level.
	Get(ctx context.Context) (*inventory.Stock, error)

	// GetForUpdate reads the levels of ids and keeps them locked until the
	// unit of work ends, so two checkouts cannot both take the last unit.
	GetForUpdate(ctx context.Context, ids []string) (*inventory.Stock, error)

	// Update writes back the levels of every id in stock.
	Update(ctx context.Context, stock *inventory.Stock) error
}
