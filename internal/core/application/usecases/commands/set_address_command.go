package commands

import (
	"errors"
	"strings"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"
)

var (
	ErrSetAddressCommandIsNotConstructed = errors.New(
		"SetAddressCommand must be created via NewSetAddressCommand constructor",
	)
	ErrAddressIsRequired = errs.NewValueIsRequiredError("address")
)

// SetAddressCommand overrides the delivery address of a session directly,
// without going through the intent parser.
type SetAddressCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID
	address   string

	guard guard.ConstructorGuard
}

func NewSetAddressCommand(sessionID kernel.UUID, address string) (SetAddressCommand, error) {
	cmd := SetAddressCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setSessionID(sessionID),
		cmd.setAddress(address),
	); err != nil {
		return SetAddressCommand{}, err
	}
	return cmd, nil
}

func (c SetAddressCommand) Validate() error {
	return c.guard.Validate(ErrSetAddressCommandIsNotConstructed)
}

func (c SetAddressCommand) SessionID() kernel.UUID {
	return c.sessionID
}

func (c SetAddressCommand) Address() string {
	return c.address
}

func (c *SetAddressCommand) setSessionID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.sessionID = id
	return nil
}

func (c *SetAddressCommand) setAddress(address string) error {
	address = strings.TrimSpace(address)
	if address == "" {
		return ErrAddressIsRequired
	}
	c.address = address
	return nil
}
