// Package cart holds the customer's accumulated, not yet finalized selection
// and the delivery address it should go to.
package cart

import (
	"errors"
	"fmt"
	"strings"

	"orderdesk/internal/pkg/errs"
)

// MaxQuantity caps a single cart line.
const MaxQuantity = 999

var (
	ErrItemIsRequired    = errs.NewValueIsRequiredError("item")
	ErrAddressIsRequired = errs.NewValueIsRequiredError("address")
)

// Line is one requested item with its quantity, in [1..MaxQuantity].
type Line struct {
	Item     string
	Quantity int
}

// NewLine validates a requested item.
func NewLine(item string, quantity int) (Line, error) {
	var qtyErr error
	if quantity < 1 || quantity > MaxQuantity {
		qtyErr = errs.NewValueIsOutOfRangeError("quantity", quantity, 1, MaxQuantity)
	}
	var itemErr error
	if strings.TrimSpace(item) == "" {
		itemErr = ErrItemIsRequired
	}
	if err := errors.Join(itemErr, qtyErr); err != nil {
		return Line{}, err
	}
	return Line{Item: item, Quantity: quantity}, nil
}

// String renders the line as "2x fried chicken".
func (l Line) String() string {
	return fmt.Sprintf("%dx %s", l.Quantity, l.Item)
}

// Cart keeps one line per item name in first-seen order.
type Cart struct {
	lines   []Line
	address string
}

// New returns an empty cart.
func New() *Cart {
	return &Cart{}
}

// Restore rebuilds a cart read from storage. Duplicate item names are merged.
func Restore(lines []Line, address string) (*Cart, error) {
	c := New()
	for _, l := range lines {
		if _, err := NewLine(l.Item, l.Quantity); err != nil {
			return nil, err
		}
	}
	c.Merge(lines)
	c.address = strings.TrimSpace(address)
	return c, nil
}

// Merge adds lines to the cart. A line for an item already in the cart
// increments its quantity instead of adding a second entry. Quantities stop
// at MaxQuantity and lines with nothing to add are skipped. The returned
// descriptors echo what was actually added, e.g. "3x coffee".
func (c *Cart) Merge(lines []Line) []string {
	added := make([]string, 0, len(lines))
	for _, in := range lines {
		i := c.indexOf(in.Item)
		if i < 0 {
			c.lines = append(c.lines, Line{Item: in.Item})
			i = len(c.lines) - 1
		}
		room := MaxQuantity - c.lines[i].Quantity
		qty := min(max(in.Quantity, 0), room)
		if qty == 0 {
			if c.lines[i].Quantity == 0 {
				c.lines = append(c.lines[:i], c.lines[i+1:]...)
			}
			continue
		}
		c.lines[i].Quantity += qty
		added = append(added, Line{Item: in.Item, Quantity: qty}.String())
	}
	return added
}

// SetAddress overwrites the delivery address; the last write wins.
func (c *Cart) SetAddress(address string) error {
	address = strings.TrimSpace(address)
	if address == "" {
		return ErrAddressIsRequired
	}
	c.address = address
	return nil
}

// Clear empties the cart and forgets the address.
func (c *Cart) Clear() {
	c.lines = nil
	c.address = ""
}

// Lines returns a copy of the cart lines in first-seen order.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) Address() string {
	return c.address
}

func (c *Cart) HasAddress() bool {
	return c.address != ""
}

func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Quantity returns how many of item are in the cart (0 when absent).
func (c *Cart) Quantity(item string) int {
	if i := c.indexOf(item); i >= 0 {
		return c.lines[i].Quantity
	}
	return 0
}

// TotalQuantity sums every line.
func (c *Cart) TotalQuantity() int {
	return TotalQuantity(c.lines)
}

// TotalQuantity sums the quantities of lines.
func TotalQuantity(lines []Line) int {
	total := 0
	for _, l := range lines {
		total += l.Quantity
	}
	return total
}

func (c *Cart) indexOf(item string) int {
	for i, l := range c.lines {
		if l.Item == item {
			return i
		}
	}
	return -1
}
