package ports

import (
	"context"
	"time"

	"orderdesk/internal/core/domain/model/fleet"
)

// FleetRepository stores the delivery agents.
type FleetRepository interface {
	// GetAll returns every agent in roster order; dispatch tie-breaks depend on it.
	GetAll(ctx context.Context) ([]*fleet.Agent, error)

	// GetAllDueForRelease returns en route agents whose busy window ended at or before now.
	GetAllDueForRelease(ctx context.Context, now time.Time) ([]*fleet.Agent, error)

	// Update persists an agent's status and busy window.
	Update(ctx context.Context, agent *fleet.Agent) error
}
