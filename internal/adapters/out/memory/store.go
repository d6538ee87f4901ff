// Package memory keeps the order desk state in process. It backs the
// default storage driver and the acceptance tests.
//
// A unit of work holds the store lock from Begin until Commit or Rollback
// and works on a private copy of the state, so transactions are serialized
// and a rollback simply drops the copy.
package memory

import (
	"maps"
	"slices"
	"sync"
	"time"

	"orderdesk/internal/core/domain/model/cart"
	"orderdesk/internal/core/domain/model/fleet"
	"orderdesk/internal/core/domain/model/inventory"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/session"
)

type sessionRecord struct {
	status     session.Status
	address    string
	pending    string
	lines      []cart.Line
	transcript []session.Message
}

type agentRecord struct {
	id        string
	name      string
	vehicle   string
	capacity  fleet.Capacity
	location  kernel.Location
	status    fleet.Status
	busyUntil *time.Time
}

type orderRecord struct {
	id          kernel.UUID
	sessionID   kernel.UUID
	receipt     []string
	total       kernel.Money
	agentID     string
	etaMinutes  int
	address     string
	destination kernel.Location
	placedAt    time.Time
	status      string
}

type state struct {
	sessions map[kernel.UUID]sessionRecord
	stock    map[string]int
	agents   []agentRecord
	orders   []orderRecord
}

func (s *state) clone() *state {
	c := &state{
		sessions: make(map[kernel.UUID]sessionRecord, len(s.sessions)),
		stock:    maps.Clone(s.stock),
		agents:   slices.Clone(s.agents),
		orders:   make([]orderRecord, 0, len(s.orders)),
	}
	for id, rec := range s.sessions {
		rec.lines = slices.Clone(rec.lines)
		rec.transcript = slices.Clone(rec.transcript)
		c.sessions[id] = rec
	}
	for _, rec := range s.orders {
		rec.receipt = slices.Clone(rec.receipt)
		c.orders = append(c.orders, rec)
	}
	return c
}

// Store is the shared state behind every unit of work.
type Store struct {
	mu    sync.Mutex
	state *state
}

// NewStore seeds a store with stock levels and a roster. The roster order
// is kept for dispatch tie-breaks.
func NewStore(stock *inventory.Stock, roster []*fleet.Agent) *Store {
	st := &state{
		sessions: make(map[kernel.UUID]sessionRecord),
		stock:    make(map[string]int),
	}
	if stock != nil {
		st.stock = stock.Levels()
	}
	for _, a := range roster {
		st.agents = append(st.agents, agentFromDomain(a))
	}
	return &Store{state: st}
}

// NewUnitOfWorkFactory returns a factory whose units of work share s.
func (s *Store) NewUnitOfWorkFactory() *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: s}
}
