package memory

import (
	"context"
	"fmt"
	"slices"
	"time"

	"orderdesk/internal/core/domain/model/cart"
	"orderdesk/internal/core/domain/model/fleet"
	"orderdesk/internal/core/domain/model/inventory"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/domain/model/session"
	"orderdesk/internal/pkg/errs"
)

type SessionRepository struct {
	uow *UnitOfWork
}

func (r *SessionRepository) Add(_ context.Context, s *session.Session) error {
	if err := s.Validate(); err != nil {
		return err
	}
	return r.uow.with(func(st *state) error {
		if _, ok := st.sessions[s.ID()]; ok {
			return errs.NewValueIsInvalidErrorWithCause("session", fmt.Errorf("%s already exists", s.ID()))
		}
		st.sessions[s.ID()] = sessionFromDomain(s)
		return nil
	})
}

func (r *SessionRepository) Update(_ context.Context, s *session.Session) error {
	if err := s.Validate(); err != nil {
		return err
	}
	return r.uow.with(func(st *state) error {
		if _, ok := st.sessions[s.ID()]; !ok {
			return errs.NewObjectNotFoundError("session", s.ID().String())
		}
		st.sessions[s.ID()] = sessionFromDomain(s)
		return nil
	})
}

func (r *SessionRepository) Get(_ context.Context, id kernel.UUID) (*session.Session, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	var s *session.Session
	err := r.uow.with(func(st *state) error {
		rec, ok := st.sessions[id]
		if !ok {
			return errs.NewObjectNotFoundError("session", id.String())
		}
		c, err := cart.Restore(slices.Clone(rec.lines), rec.address)
		if err != nil {
			return err
		}
		s, err = session.RestoreSession(id, c, slices.Clone(rec.transcript), rec.status, rec.pending)
		return err
	})
	return s, err
}

// GetForUpdate is Get: the store lock held by the unit of work already
// serializes writers.
func (r *SessionRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*session.Session, error) {
	return r.Get(ctx, id)
}

func sessionFromDomain(s *session.Session) sessionRecord {
	pending, _ := s.PendingSuggestion()
	return sessionRecord{
		status:     s.Status(),
		address:    s.Cart().Address(),
		pending:    pending,
		lines:      s.Cart().Lines(),
		transcript: s.Transcript(),
	}
}

type InventoryRepository struct {
	uow *UnitOfWork
}

func (r *InventoryRepository) Get(_ context.Context) (*inventory.Stock, error) {
	var stock *inventory.Stock
	err := r.uow.with(func(st *state) error {
		var err error
		stock, err = inventory.NewStock(st.stock)
		return err
	})
	return stock, err
}

// GetForUpdate needs no row locks here: an open unit of work already holds
// the whole store.
func (r *InventoryRepository) GetForUpdate(_ context.Context, ids []string) (*inventory.Stock, error) {
	var stock *inventory.Stock
	err := r.uow.with(func(st *state) error {
		levels := make(map[string]int, len(ids))
		for _, id := range ids {
			if level, ok := st.stock[id]; ok {
				levels[id] = level
			}
		}
		var err error
		stock, err = inventory.NewStock(levels)
		return err
	})
	return stock, err
}

func (r *InventoryRepository) Update(_ context.Context, stock *inventory.Stock) error {
	return r.uow.with(func(st *state) error {
		for id, level := range stock.Levels() {
			st.stock[id] = level
		}
		return nil
	})
}

type FleetRepository struct {
	uow *UnitOfWork
}

func (r *FleetRepository) GetAll(_ context.Context) ([]*fleet.Agent, error) {
	return r.find(func(agentRecord) bool { return true })
}

func (r *FleetRepository) GetAllDueForRelease(_ context.Context, now time.Time) ([]*fleet.Agent, error) {
	return r.find(func(rec agentRecord) bool {
		return rec.status == fleet.EnRoute && rec.busyUntil != nil && !rec.busyUntil.After(now)
	})
}

func (r *FleetRepository) Update(_ context.Context, a *fleet.Agent) error {
	if err := a.Validate(); err != nil {
		return err
	}
	return r.uow.with(func(st *state) error {
		for i := range st.agents {
			if st.agents[i].id == a.ID() {
				st.agents[i].status = a.Status()
				st.agents[i].busyUntil = a.BusyUntil()
				return nil
			}
		}
		return errs.NewObjectNotFoundError("agent", a.ID())
	})
}

func (r *FleetRepository) find(match func(agentRecord) bool) ([]*fleet.Agent, error) {
	var agents []*fleet.Agent
	err := r.uow.with(func(st *state) error {
		agents = make([]*fleet.Agent, 0, len(st.agents))
		for _, rec := range st.agents {
			if !match(rec) {
				continue
			}
			a, err := fleet.RestoreAgent(rec.id, rec.name, rec.vehicle, rec.capacity, rec.location, rec.status, rec.busyUntil)
			if err != nil {
				return err
			}
			agents = append(agents, a)
		}
		return nil
	})
	return agents, err
}

func agentFromDomain(a *fleet.Agent) agentRecord {
	return agentRecord{
		id:        a.ID(),
		name:      a.Name(),
		vehicle:   a.Vehicle(),
		capacity:  a.Capacity(),
		location:  a.Location(),
		status:    a.Status(),
		busyUntil: a.BusyUntil(),
	}
}

type OrderRepository struct {
	uow *UnitOfWork
}

func (r *OrderRepository) Add(_ context.Context, o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}
	return r.uow.with(func(st *state) error {
		st.orders = append(st.orders, orderFromDomain(o))
		return nil
	})
}

// Update only writes the status.
func (r *OrderRepository) Update(_ context.Context, o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}
	return r.uow.with(func(st *state) error {
		for i := range st.orders {
			if st.orders[i].id.IsEqual(o.ID()) {
				st.orders[i].status = o.Status().String()
				return nil
			}
		}
		return errs.NewObjectNotFoundError("order", o.ID().String())
	})
}

func (r *OrderRepository) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	orders, err := r.find(func(rec orderRecord) bool { return rec.id.IsEqual(id) })
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, errs.NewObjectNotFoundError("order", id.String())
	}
	return orders[0], nil
}

func (r *OrderRepository) GetAllDispatchedByAgent(_ context.Context, agentID string) ([]*order.Order, error) {
	return r.find(func(rec orderRecord) bool {
		return rec.agentID == agentID && rec.status == order.Dispatched.String()
	})
}

func (r *OrderRepository) GetAllBySession(_ context.Context, sessionID kernel.UUID) ([]*order.Order, error) {
	return r.find(func(rec orderRecord) bool { return rec.sessionID.IsEqual(sessionID) })
}

// find returns matches in insertion order, which is placement order.
func (r *OrderRepository) find(match func(orderRecord) bool) ([]*order.Order, error) {
	var orders []*order.Order
	err := r.uow.with(func(st *state) error {
		for _, rec := range st.orders {
			if !match(rec) {
				continue
			}
			status, err := order.ParseStatus(rec.status)
			if err != nil {
				return err
			}
			o, err := order.RestoreOrder(
				rec.id, rec.sessionID, slices.Clone(rec.receipt), rec.total, rec.agentID,
				rec.etaMinutes, rec.address, rec.destination, rec.placedAt, status,
			)
			if err != nil {
				return err
			}
			orders = append(orders, o)
		}
		return nil
	})
	return orders, err
}

func orderFromDomain(o *order.Order) orderRecord {
	return orderRecord{
		id:          o.ID(),
		sessionID:   o.SessionID(),
		receipt:     o.ReceiptLines(),
		total:       o.Total(),
		agentID:     o.AgentID(),
		etaMinutes:  o.ETAMinutes(),
		address:     o.Address(),
		destination: o.Destination(),
		placedAt:    o.PlacedAt(),
		status:      o.Status().String(),
	}
}
