package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"orderdesk/internal/core/domain/model/catalog"
	"orderdesk/internal/core/domain/model/fleet"
	"orderdesk/internal/core/domain/model/inventory"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/domain/model/session"
	"orderdesk/internal/pkg/errs"
)

const (
	MessageEmptyCart      = "Your cart is empty!"
	MessageMissingAddress = "I still need a delivery address! Tell me where to deliver or set it directly."
	MessageNoDriver       = "No drivers available for this order size!"
	outOfStockPrefix      = "Order failed! Out of stock for: "
)

// Outcome classifies how a checkout attempt ended.
type Outcome int

const (
	OutcomeConfirmed Outcome = iota + 1
	OutcomeEmptyCart
	OutcomeMissingAddress
	OutcomeOutOfStock
	OutcomeNoDriver
)

var outcomeNames = map[Outcome]string{
	OutcomeConfirmed:      "confirmed",
	OutcomeEmptyCart:      "empty_cart",
	OutcomeMissingAddress: "missing_address",
	OutcomeOutOfStock:     "out_of_stock",
	OutcomeNoDriver:       "no_driver",
}

func (o Outcome) String() string {
	if name, ok := outcomeNames[o]; ok {
		return name
	}
	return "unknown"
}

// Receipt is what the customer is shown once an order is confirmed.
type Receipt struct {
	OrderID     kernel.UUID
	Lines       []string
	Total       kernel.Money
	Driver      string
	Vehicle     string
	ETAMinutes  int
	Destination kernel.Location
}

func (r Receipt) String() string {
	var b strings.Builder
	b.WriteString("ORDER CONFIRMED!\nReceipt:\n")
	for _, l := range r.Lines {
		b.WriteString("- ")
		b.WriteString(l)
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "Total: %s\n", r.Total)
	fmt.Fprintf(&b, "Driver: %s\nVehicle: %s\nETA: %d minutes", r.Driver, r.Vehicle, r.ETAMinutes)
	return b.String()
}

// Checkout is the result of OrderFinalizer.Finalize. Order, Agent and
// Receipt are set only when Outcome is OutcomeConfirmed.
type Checkout struct {
	Outcome Outcome
	Message string
	Missing []string
	Order   *order.Order
	Agent   *fleet.Agent
	Receipt *Receipt
}

// OrderFinalizer turns a session's cart into a confirmed order.
//
// Checkout is all-or-nothing: every line is checked against stock before
// anything is taken, and stock is only decremented once an agent has been
// found. A failed attempt leaves stock, fleet and cart untouched.
type OrderFinalizer struct {
	menu        *catalog.Catalog
	planner     *DispatchPlanner
	trackAgents bool
	now         func() time.Time
}

// NewOrderFinalizer builds a finalizer.
//
// Parameters:
//   - menu: prices every cart line
//   - planner: picks the agent and ETA
//   - trackAgents: mark the chosen agent en route until the ETA has passed
//
// Returns:
//   - *OrderFinalizer: the finalizer
//   - error: ErrValueIsRequired when menu or planner is nil
func NewOrderFinalizer(menu *catalog.Catalog, planner *DispatchPlanner, trackAgents bool) (*OrderFinalizer, error) {
	if menu == nil {
		return nil, errs.NewValueIsRequiredError("menu")
	}
	if planner == nil {
		return nil, errs.NewValueIsRequiredError("planner")
	}
	return &OrderFinalizer{
		menu:        menu,
		planner:     planner,
		trackAgents: trackAgents,
		now:         time.Now,
	}, nil
}

// WithClock replaces the wall clock, for tests.
func (f *OrderFinalizer) WithClock(now func() time.Time) *OrderFinalizer {
	f.now = now
	return f
}

// Finalize runs checkout for s against stock and agents, mutating them only
// on success. Business failures are reported through Checkout; an error
// means the inputs were inconsistent.
func (f *OrderFinalizer) Finalize(s *session.Session, stock *inventory.Stock, agents []*fleet.Agent) (Checkout, error) {
	if err := s.Validate(); err != nil {
		return Checkout{}, err
	}
	if stock == nil {
		return Checkout{}, errs.NewValueIsRequiredError("stock")
	}

	c := s.Cart()
	if c.IsEmpty() {
		return Checkout{Outcome: OutcomeEmptyCart, Message: MessageEmptyCart}, nil
	}
	if !c.HasAddress() {
		return Checkout{Outcome: OutcomeMissingAddress, Message: MessageMissingAddress}, nil
	}

	if err := s.BeginFinalize(); err != nil {
		return Checkout{}, err
	}

	lines := c.Lines()
	priced := make([]order.Line, 0, len(lines))
	var missing []string
	for _, l := range lines {
		entry, ok := f.menu.Get(l.Item)
		if !ok || !stock.Check(entry.ID(), l.Quantity) {
			missing = append(missing, l.Item)
			continue
		}
		priced = append(priced, order.Line{Item: l.Item, Quantity: l.Quantity, Amount: entry.Price().Times(l.Quantity)})
	}
	if len(missing) > 0 {
		return f.reopen(s, Checkout{
			Outcome: OutcomeOutOfStock,
			Message: outOfStockPrefix + strings.Join(missing, ", "),
			Missing: missing,
		})
	}

	plan, err := f.planner.Assign(c.Address(), lines, agents)
	if errors.Is(err, ErrNoEligibleAgent) {
		return f.reopen(s, Checkout{Outcome: OutcomeNoDriver, Message: MessageNoDriver})
	}
	if err != nil {
		return Checkout{}, err
	}

	for _, l := range lines {
		entry, _ := f.menu.Get(l.Item)
		if err := stock.Decrement(entry.ID(), l.Quantity); err != nil {
			return Checkout{}, err
		}
	}

	placedAt := f.now()
	o, err := order.NewOrder(kernel.NewUUID(), s.ID(), priced, plan.Agent.ID(), plan.ETAMinutes, c.Address(), plan.Destination, placedAt)
	if err != nil {
		return Checkout{}, err
	}
	if f.trackAgents {
		if err := plan.Agent.Dispatch(o.DeliverBy()); err != nil {
			return Checkout{}, err
		}
	}
	if err := s.Confirm(); err != nil {
		return Checkout{}, err
	}

	receipt := &Receipt{
		OrderID:     o.ID(),
		Lines:       o.ReceiptLines(),
		Total:       o.Total(),
		Driver:      plan.Agent.Name(),
		Vehicle:     plan.Agent.Vehicle(),
		ETAMinutes:  plan.ETAMinutes,
		Destination: plan.Destination,
	}
	return Checkout{
		Outcome: OutcomeConfirmed,
		Message: receipt.String(),
		Order:   o,
		Agent:   plan.Agent,
		Receipt: receipt,
	}, nil
}

func (f *OrderFinalizer) reopen(s *session.Session, result Checkout) (Checkout, error) {
	if err := s.Reopen(); err != nil {
		return Checkout{}, err
	}
	return result, nil
}
