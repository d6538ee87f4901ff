// Package commands contains business operations that modify system state.
// Every command is validated on construction, and every handler runs in its
// own unit of work: begin, load, mutate, persist, commit.
package commands

import (
	"context"

	"orderdesk/internal/core/ports"
)

// Unit of Work interfaces give each handler only the repositories it needs.
type (
	// TxManager handles transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	SessionRepoFactory interface {
		SessionRepository() ports.SessionRepository
	}

	InventoryRepoFactory interface {
		InventoryRepository() ports.InventoryRepository
	}

	FleetRepoFactory interface {
		FleetRepository() ports.FleetRepository
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// SessionUoW is used by commands that touch a single conversation.
	SessionUoW interface {
		TxManager
		SessionRepoFactory
	}

	SessionUoWFactory interface {
		Create() SessionUoW
	}

	// FleetUoW is used by commands that move agents and their orders.
	FleetUoW interface {
		TxManager
		FleetRepoFactory
		OrderRepoFactory
	}

	FleetUoWFactory interface {
		Create() FleetUoW
	}

	// UoW spans every aggregate; a checkout touches all of them.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   sessions := uow.SessionRepository()
	//   stock := uow.InventoryRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		SessionRepoFactory
		InventoryRepoFactory
		FleetRepoFactory
		OrderRepoFactory
	}

	UoWFactory interface {
		Create() UoW
	}
)
