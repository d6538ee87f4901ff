package memory

import (
	"context"
	"errors"

	"orderdesk/internal/core/ports"
)

// ErrNoTransaction is returned by Commit without a matching Begin.
var ErrNoTransaction = errors.New("no active transaction")

type UnitOfWorkFactory struct {
	store *Store
}

func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

// UnitOfWork implements ports.UnitOfWork over a Store. Repositories used
// without Begin read and write the store directly, one call at a time.
type UnitOfWork struct {
	store *Store
	tx    *state
}

// Begin takes the store lock and copies the state. It blocks while
// another unit of work is open.
func (u *UnitOfWork) Begin(ctx context.Context) error {
	if u.tx != nil {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	u.store.mu.Lock()
	u.tx = u.store.state.clone()
	return nil
}

func (u *UnitOfWork) Commit(_ context.Context) error {
	if u.tx == nil {
		return ErrNoTransaction
	}
	u.store.state = u.tx
	u.tx = nil
	u.store.mu.Unlock()
	return nil
}

// Rollback drops the copy. Without an open transaction it does nothing.
func (u *UnitOfWork) Rollback(_ context.Context) error {
	if u.tx == nil {
		return nil
	}
	u.tx = nil
	u.store.mu.Unlock()
	return nil
}

func (u *UnitOfWork) SessionRepository() ports.SessionRepository {
	return &SessionRepository{uow: u}
}

func (u *UnitOfWork) InventoryRepository() ports.InventoryRepository {
	return &InventoryRepository{uow: u}
}

func (u *UnitOfWork) FleetRepository() ports.FleetRepository {
	return &FleetRepository{uow: u}
}

func (u *UnitOfWork) OrderRepository() ports.OrderRepository {
	return &OrderRepository{uow: u}
}

// with runs fn against the transaction copy, or against the store itself
// under its lock when no transaction is open.
func (u *UnitOfWork) with(fn func(st *state) error) error {
	if u.tx != nil {
		return fn(u.tx)
	}
	u.store.mu.Lock()
	defer u.store.mu.Unlock()
	return fn(u.store.state)
}
