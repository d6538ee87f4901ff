package catalog

import (
	"errors"
	"strings"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"
)

var (
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	ErrIDIsRequired   = errs.NewValueIsRequiredError("id")
	ErrPriceIsInvalid = errs.NewValueIsInvalidError("price")

	ErrEntryIsNotConstructed = errors.New("Entry must be created via NewEntry constructor")
)

// Entry is one menu item. Name is the key used by the intent parser and the
// cart; ID is the stock identifier used by the inventory.
type Entry struct { //nolint:recvcheck // setters use pointer receivers
	name        string
	id          string
	price       kernel.Money
	description string
	guard       guard.ConstructorGuard
}

// NewEntry validates and builds a menu item. Names are stored lowercased so
// they compare equal to parser output.
func NewEntry(name, id string, price kernel.Money, description string) (Entry, error) {
	e := Entry{
		description: description,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(e.setName(name), e.setID(id), e.setPrice(price)); err != nil {
		return Entry{}, err
	}
	return e, nil
}

func (e Entry) Validate() error {
	return e.guard.Validate(ErrEntryIsNotConstructed)
}

func (e Entry) Name() string {
	return e.name
}

func (e Entry) ID() string {
	return e.id
}

func (e Entry) Price() kernel.Money {
	return e.price
}

func (e Entry) Description() string {
	return e.description
}

// SearchText is the lowercased "name description" document scored by the semantic fallback.
func (e Entry) SearchText() string {
	return strings.ToLower(e.name + " " + e.description)
}

func (e *Entry) setName(name string) error {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return ErrNameIsRequired
	}
	e.name = name
	return nil
}

func (e *Entry) setID(id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrIDIsRequired
	}
	e.id = id
	return nil
}

func (e *Entry) setPrice(price kernel.Money) error {
	if price < 0 {
		return ErrPriceIsInvalid
	}
	e.price = price
	return nil
}
