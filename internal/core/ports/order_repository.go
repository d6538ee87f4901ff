package ports

import (
	"context"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
)

// OrderRepository stores confirmed orders.
type OrderRepository interface {
	// Add persists a newly confirmed order.
	Add(ctx context.Context, o *order.Order) error

	// Update persists a status change.
	Update(ctx context.Context, o *order.Order) error

	// Get returns errs.ErrObjectNotFound when the order does not exist.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllDispatchedByAgent returns the orders the agent is still delivering.
	GetAllDispatchedByAgent(ctx context.Context, agentID string) ([]*order.Order, error)

	// GetAllBySession returns the orders a session placed, oldest first.
	GetAllBySession(ctx context.Context, sessionID kernel.UUID) ([]*order.Order, error)
}
