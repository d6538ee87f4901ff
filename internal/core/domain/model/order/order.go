package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	ErrLinesAreRequired   = errs.NewValueIsRequiredError("lines")
	ErrAgentIsRequired    = errs.NewValueIsRequiredError("agent")
	ErrAddressIsRequired  = errs.NewValueIsRequiredError("address")
	ErrPlacedAtIsRequired = errs.NewValueIsRequiredError("placed at")
)

// Line is one priced receipt entry.
type Line struct {
	Item     string
	Quantity int
	Amount   kernel.Money
}

// String renders the line as it appears on the receipt: "2x fried chicken ($30.00)".
func (l Line) String() string {
	return fmt.Sprintf("%dx %s (%s)", l.Quantity, l.Item, l.Amount)
}

// Order is the aggregate root of a confirmed order.
//
// Order follows these invariants:
//   - Must have a valid identifier and the identifier of the session that placed it
//   - Receipt lines are stored as issued and never change
//   - Status transitions follow Dispatched -> Delivered
type Order struct {
	// id is the order number shown on the receipt
	id kernel.UUID

	// sessionID is the conversation that placed the order
	sessionID kernel.UUID

	// receipt holds the rendered receipt lines
	receipt []string

	// total is the sum of every line amount
	total kernel.Money

	// agentID is the dispatched delivery agent
	agentID string

	// etaMinutes is the promised delivery time
	etaMinutes int

	// address is the delivery address as given by the customer
	address string

	// destination is the geocoded grid point of address
	destination kernel.Location

	// placedAt is when checkout succeeded
	placedAt time.Time

	// status represents the current state in the order lifecycle
	status Status

	guard guard.ConstructorGuard
}

// NewOrder records a freshly confirmed order in Dispatched status.
//
// Parameters:
//   - id: order number
//   - sessionID: the session that placed the order
//   - lines: priced receipt lines, at least one
//   - agentID: the dispatched agent
//   - etaMinutes: promised delivery time in minutes
//   - address: delivery address
//   - destination: geocoded address
//   - placedAt: checkout time
//
// Returns:
//   - *Order: the order in Dispatched status with its total summed from lines
//   - error: ErrValueIsInvalid for malformed lines, ErrValueIsRequired for missing fields
//
// Example:
//
//	o, err := order.NewOrder(kernel.NewUUID(), sess.ID(), lines, "D1", 42, "12 Elm Street", dest, time.Now())
//	if err != nil {
//	    return err
//	}
func NewOrder(
	id, sessionID kernel.UUID,
	lines []Line,
	agentID string,
	etaMinutes int,
	address string,
	destination kernel.Location,
	placedAt time.Time,
) (*Order, error) {
	var total kernel.Money
	receipt := make([]string, 0, len(lines))
	var lineErrs []error
	for _, l := range lines {
		if l.Quantity < 1 || l.Amount < 0 || strings.TrimSpace(l.Item) == "" {
			lineErrs = append(lineErrs, errs.NewValueIsInvalidErrorWithCause("line", fmt.Errorf("%q is not a valid line", l.String())))
			continue
		}
		total += l.Amount
		receipt = append(receipt, l.String())
	}
	if err := errors.Join(lineErrs...); err != nil {
		return nil, err
	}

	return RestoreOrder(id, sessionID, receipt, total, agentID, etaMinutes, address, destination, placedAt, Dispatched)
}

// RestoreOrder reconstructs an Order from persistent storage.
//
// It applies the same field checks as NewOrder but takes the rendered receipt
// and total as stored, so a restored order reads back exactly as issued.
//
// Returns ErrValueIsRequired or ErrValueIsInvalid when a stored field is
// missing or malformed.
func RestoreOrder(
	id, sessionID kernel.UUID,
	receipt []string,
	total kernel.Money,
	agentID string,
	etaMinutes int,
	address string,
	destination kernel.Location,
	placedAt time.Time,
	status Status,
) (*Order, error) {
	o := &Order{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setSessionID(sessionID),
		o.setReceipt(receipt),
		o.setTotal(total),
		o.setAgent(agentID),
		o.setETA(etaMinutes),
		o.setAddress(address),
		o.setDestination(destination),
		o.setPlacedAt(placedAt),
		o.setStatus(status),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) SessionID() kernel.UUID {
	return o.sessionID
}

// ReceiptLines returns a copy of the receipt lines.
func (o *Order) ReceiptLines() []string {
	out := make([]string, len(o.receipt))
	copy(out, o.receipt)
	return out
}

func (o *Order) Total() kernel.Money {
	return o.total
}

func (o *Order) AgentID() string {
	return o.agentID
}

func (o *Order) ETAMinutes() int {
	return o.etaMinutes
}

func (o *Order) Address() string {
	return o.address
}

func (o *Order) Destination() kernel.Location {
	return o.destination
}

func (o *Order) PlacedAt() time.Time {
	return o.placedAt
}

// DeliverBy is placedAt plus the ETA.
func (o *Order) DeliverBy() time.Time {
	return o.placedAt.Add(time.Duration(o.etaMinutes) * time.Minute)
}

func (o *Order) Status() Status {
	return o.status
}

// Deliver marks the order as handed over.
//
// Returns an error if the order is not Dispatched.
func (o *Order) Deliver() error {
	next, err := o.status.Deliver()
	if err != nil {
		return err
	}
	o.status = next
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setSessionID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("session id", err)
	}
	o.sessionID = id
	return nil
}

func (o *Order) setReceipt(receipt []string) error {
	if len(receipt) == 0 {
		return ErrLinesAreRequired
	}
	o.receipt = append([]string(nil), receipt...)
	return nil
}

func (o *Order) setTotal(total kernel.Money) error {
	if total < 0 {
		return errs.NewValueIsOutOfRangeError("total", total, 0, "unbounded")
	}
	o.total = total
	return nil
}

func (o *Order) setAgent(agentID string) error {
	if strings.TrimSpace(agentID) == "" {
		return ErrAgentIsRequired
	}
	o.agentID = agentID
	return nil
}

func (o *Order) setETA(minutes int) error {
	if minutes < 0 {
		return errs.NewValueIsOutOfRangeError("eta", minutes, 0, "unbounded")
	}
	o.etaMinutes = minutes
	return nil
}

func (o *Order) setAddress(address string) error {
	if strings.TrimSpace(address) == "" {
		return ErrAddressIsRequired
	}
	o.address = address
	return nil
}

func (o *Order) setDestination(destination kernel.Location) error {
	if err := destination.Validate(); err != nil {
		return err
	}
	o.destination = destination
	return nil
}

func (o *Order) setPlacedAt(placedAt time.Time) error {
	if placedAt.IsZero() {
		return ErrPlacedAtIsRequired
	}
	o.placedAt = placedAt
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
