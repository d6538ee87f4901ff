// Package queries contains read operations. Handlers open a unit of work,
// read through the repositories and always roll back.
package queries

import (
	"context"

	"orderdesk/internal/core/ports"
)

type (
	// ReadUoW is the read-only view of a unit of work.
	ReadUoW interface {
		Begin(ctx context.Context) error
		Rollback(ctx context.Context) error
		SessionRepository() ports.SessionRepository
		InventoryRepository() ports.InventoryRepository
		FleetRepository() ports.FleetRepository
		OrderRepository() ports.OrderRepository
	}

	ReadUoWFactory interface {
		Create() ReadUoW
	}
)

// read runs fn inside a unit of work that is never committed.
func read(ctx context.Context, factory ReadUoWFactory, fn func(uow ReadUoW) error) error {
	uow := factory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()
	return fn(uow)
}
